// Copyright 2024 Daniel Erat.
// All rights reserved.

package web

import (
	"strings"
	"testing"
)

const testPage = `<!DOCTYPE html>
<html>
<head>
<title>Test</title>
<style>body { color: red; }</style>
<script>var hidden = "nope";</script>
</head>
<body>
<h1>Heading</h1>
<p id="intro">Iranin  financal
banks</p>
<p>are strongss</p>
</body>
</html>`

func TestPage_Text(t *testing.T) {
	p, err := Parse(strings.NewReader(testPage))
	if err != nil {
		t.Fatal("Parse failed: ", err)
	}
	want := "Test Heading Iranin financal banks are strongss"
	if got := p.Text(); got != want {
		t.Errorf("Text() = %q; want %q", got, want)
	}
}

func TestPage_QueryText(t *testing.T) {
	p, err := Parse(strings.NewReader(testPage))
	if err != nil {
		t.Fatal("Parse failed: ", err)
	}
	if got, err := p.QueryText("#intro"); err != nil {
		t.Error("QueryText(#intro) failed: ", err)
	} else if want := "Iranin financal banks"; got != want {
		t.Errorf("QueryText(#intro) = %q; want %q", got, want)
	}

	if _, err := p.QueryText("#missing"); err == nil {
		t.Error("QueryText(#missing) didn't report an error")
	}
	if _, err := p.QueryText("!!!"); err == nil {
		t.Error("QueryText(!!!) didn't report an error")
	}
}
