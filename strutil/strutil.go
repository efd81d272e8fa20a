// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package strutil contains string helpers shared across the module.
package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// https://go.dev/blog/normalization#performing-magic
var normalizer = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

// Normalize normalizes characters using NFKD form.
// Unicode characters are decomposed (runes are broken into their components) and replaced for
// compatibility equivalence (characters that represent the same characters but have different
// visual representations, e.g. '9' and '⁹', are equal). Characters are also de-accented.
func Normalize(orig string) string {
	s, _, err := transform.String(normalizer, orig)
	if err != nil {
		return orig
	}
	return s
}

// Fold returns s normalized via Normalize and lowercased.
// Vocabulary words and input tokens are both passed through this function so
// that membership tests and distance computations see the same form.
func Fold(s string) string { return strings.ToLower(Normalize(s)) }

// IsLetters reports whether s is non-empty and consists entirely of letters.
func IsLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
