// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package spell corrects misspelled words in text using a vocabulary and
// Levenshtein edit distances.
package spell

import (
	"math"
	"strings"

	"github.com/derat/spellfix/edit"
	"github.com/derat/spellfix/strutil"
)

// Misspelling describes a token that wasn't found in the vocabulary.
type Misspelling struct {
	// Word is the folded (lowercased) misspelled token.
	Word string `json:"word"`
	// Candidates lists the vocabulary words within the edit-distance threshold.
	Candidates []string `json:"candidates"`
	// Scores holds the score of each candidate, parallel to Candidates.
	Scores []float64 `json:"scores"`
	// Best is the highest-scoring candidate, or empty if there are none.
	Best string `json:"best"`
}

// config is filled in by Options passed to NewCorrector.
type config struct {
	maxEdits         int // candidate acceptance threshold
	scoreReplaceCost int // replacement cost used while scoring
}

// Option can be passed to NewCorrector to configure correction.
type Option func(*config)

// MaxEdits returns an Option setting the maximum edit distance (default 2)
// at which a vocabulary word is still accepted as a candidate.
func MaxEdits(n int) Option { return func(c *config) { c.maxEdits = n } }

// ScoreReplaceCost returns an Option setting the replacement cost (default 2)
// used when recomputing distances for candidate scoring. This knob is
// independent of the MaxEdits threshold.
func ScoreReplaceCost(n int) Option { return func(c *config) { c.scoreReplaceCost = n } }

// Corrector corrects misspelled words in a piece of text.
// All of the work happens in NewCorrector; a constructed Corrector is
// immutable and safe for concurrent use.
type Corrector struct {
	tokens []string // folded input tokens, in order
	vocab  *Vocabulary
	cfg    config
	missed []*Misspelling          // in order of first appearance
	byWord map[string]*Misspelling // keyed by Misspelling.Word
}

// NewCorrector tokenizes text, flags tokens that are missing from vocab,
// finds candidate replacements within the edit-distance threshold, scores
// them by vocabulary frequency and distance, and picks the best replacement
// for each flagged token. If vocab is nil, DefaultVocabulary is used.
func NewCorrector(text string, vocab *Vocabulary, opts ...Option) *Corrector {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	c := &Corrector{
		vocab:  vocab,
		cfg:    config{maxEdits: 2, scoreReplaceCost: 2},
		byWord: make(map[string]*Misspelling),
	}
	for _, o := range opts {
		o(&c.cfg)
	}

	// Each pass only reads the previous pass's output.
	c.findMisspelled(text)
	c.findCandidates()
	c.scoreCandidates()
	c.chooseBest()
	return c
}

// findMisspelled splits text into whitespace-separated tokens, folds them,
// and flags all-letter tokens that aren't in the vocabulary. Tokens
// containing digits or punctuation are carried through without ever being
// flagged. A token that appears several times is flagged once.
func (c *Corrector) findMisspelled(text string) {
	for _, tok := range strings.Fields(text) {
		tok = strutil.Fold(tok)
		c.tokens = append(c.tokens, tok)
		if !strutil.IsLetters(tok) || c.vocab.Contains(tok) {
			continue
		}
		if _, ok := c.byWord[tok]; ok {
			continue
		}
		m := &Misspelling{Word: tok}
		c.missed = append(c.missed, m)
		c.byWord[tok] = m
	}
}

// findCandidates fills in the candidate list of each flagged token.
func (c *Corrector) findCandidates() {
	for _, m := range c.missed {
		m.Candidates = c.vocab.Candidates(m.Word, c.cfg.maxEdits)
	}
}

// scoreCandidates computes a score for every candidate. A candidate that is
// frequent in the vocabulary and close to the misspelled token scores high:
// the score is sqrt(frequency * 1/(distance+1)), with the square root
// dampening the product without changing its ordering.
func (c *Corrector) scoreCandidates() {
	for _, m := range c.missed {
		for _, cand := range m.Candidates {
			tr := edit.NewTrace(m.Word, cand, edit.ReplaceCost(c.cfg.scoreReplaceCost))
			dist := float64(tr.Distance() + 1)
			freq := float64(c.vocab.Count(cand))
			m.Scores = append(m.Scores, math.Sqrt(freq/dist))
		}
	}
}

// chooseBest records each flagged token's highest-scoring candidate,
// breaking exact score ties in favor of the lexicographically smaller word.
// Tokens with no candidates are left without a best choice.
func (c *Corrector) chooseBest() {
	for _, m := range c.missed {
		best, bestScore := "", -1.0
		for i, cand := range m.Candidates {
			if s := m.Scores[i]; s > bestScore || (s == bestScore && cand < best) {
				best, bestScore = cand, s
			}
		}
		m.Best = best
	}
}

// Misspellings returns the flagged tokens in order of first appearance.
func (c *Corrector) Misspellings() []Misspelling {
	ms := make([]Misspelling, len(c.missed))
	for i, m := range c.missed {
		ms[i] = *m
	}
	return ms
}

// Corrected returns the folded tokens joined by single spaces, with each
// flagged token that has a best candidate replaced by it. Replacement is
// performed per token position, so a misspelling that happens to be a
// substring of another token never corrupts that token.
func (c *Corrector) Corrected() string {
	out := make([]string, len(c.tokens))
	for i, tok := range c.tokens {
		if m, ok := c.byWord[tok]; ok && m.Best != "" {
			out[i] = m.Best
		} else {
			out[i] = tok
		}
	}
	return strings.Join(out, " ")
}
