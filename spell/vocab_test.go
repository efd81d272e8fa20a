// Copyright 2024 Daniel Erat.
// All rights reserved.

package spell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadVocabulary(t *testing.T) {
	v, err := ReadVocabulary(strings.NewReader("Strong\nBANKS \n\n financial\n"))
	if err != nil {
		t.Fatal("ReadVocabulary failed: ", err)
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %v; want 3", v.Len())
	}
	for _, w := range []string{"strong", "STRONG", "banks", "financial"} {
		if !v.Contains(w) {
			t.Errorf("Contains(%q) = false; want true", w)
		}
	}
	if v.Contains("iranian") {
		t.Error(`Contains("iranian") = true; want false`)
	}
}

func TestLoadVocabulary(t *testing.T) {
	p := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(p, []byte("alpha\nbeta\n"), 0644); err != nil {
		t.Fatal(err)
	}
	v, err := LoadVocabulary(p)
	if err != nil {
		t.Fatal("LoadVocabulary failed: ", err)
	}
	if !v.Contains("alpha") || !v.Contains("beta") {
		t.Errorf("loaded vocabulary is missing words")
	}

	if _, err := LoadVocabulary(filepath.Join(t.TempDir(), "bogus")); err == nil {
		t.Error("LoadVocabulary didn't report missing file")
	}
}

func TestVocabulary_Count(t *testing.T) {
	v := NewVocabulary([]string{"cat", "Cat", "car"})
	for _, tc := range []struct {
		word string
		want int
	}{
		{"cat", 2},
		{"CAT", 2},
		{"car", 1},
		{"dog", 0},
	} {
		if got := v.Count(tc.word); got != tc.want {
			t.Errorf("Count(%q) = %v; want %v", tc.word, got, tc.want)
		}
	}
}

func TestVocabulary_Candidates(t *testing.T) {
	v := NewVocabulary([]string{"strong", "banks", "financial", "iranian"})
	for _, tc := range []struct {
		token    string
		maxEdits int
		want     []string
	}{
		{"strongss", 2, []string{"strong"}},
		{"strongss", 1, nil},
		{"iranin", 2, []string{"iranian"}},
		{"financal", 2, []string{"financial"}},
		{"are", 2, nil},
		{"strong", 0, []string{"strong"}},
	} {
		if got := v.Candidates(tc.token, tc.maxEdits); !cmp.Equal(tc.want, got) {
			t.Errorf("Candidates(%q, %v) = %v; want %v", tc.token, tc.maxEdits, got, tc.want)
		}
	}
}

// TestVocabulary_CandidatesReplaceCost checks that replacements are charged
// double while searching for candidates: a single transposed pair costs 2, so
// it's excluded at a threshold of 1 but included at 2.
func TestVocabulary_CandidatesReplaceCost(t *testing.T) {
	v := NewVocabulary([]string{"ba"})
	if got := v.Candidates("ab", 1); len(got) != 0 {
		t.Errorf(`Candidates("ab", 1) = %v; want none`, got)
	}
	if got := v.Candidates("ab", 2); !cmp.Equal([]string{"ba"}, got) {
		t.Errorf(`Candidates("ab", 2) = %v; want ["ba"]`, got)
	}
}

// TestVocabulary_CandidatesCopied makes sure that callers can't clobber
// memoized candidate lists.
func TestVocabulary_CandidatesCopied(t *testing.T) {
	v := NewVocabulary([]string{"strong"})
	first := v.Candidates("strongss", 2)
	first[0] = "mangled"
	if got := v.Candidates("strongss", 2); !cmp.Equal([]string{"strong"}, got) {
		t.Errorf(`second Candidates("strongss", 2) = %v; want ["strong"]`, got)
	}
}

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	if v.Len() == 0 {
		t.Fatal("default vocabulary is empty")
	}
	for _, w := range []string{"the", "hello", "strong"} {
		if !v.Contains(w) {
			t.Errorf("Contains(%q) = false; want true", w)
		}
	}
	if v2 := DefaultVocabulary(); v2 != v {
		t.Error("DefaultVocabulary returned different instances")
	}
}
