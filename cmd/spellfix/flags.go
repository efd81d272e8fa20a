// Copyright 2024 Daniel Erat.
// All rights reserved.

package main

import "strings"

// repeatedFlag can be specified multiple times to supply string values.
type repeatedFlag []string

func (rf *repeatedFlag) String() string { return strings.Join(*rf, ",") }
func (rf *repeatedFlag) Set(v string) error {
	*rf = append(*rf, v)
	return nil
}
