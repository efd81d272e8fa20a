// Copyright 2024 Daniel Erat.
// All rights reserved.

package spell

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/derat/spellfix/cache"
	"github.com/derat/spellfix/edit"
	"github.com/derat/spellfix/strutil"
)

// candCacheSize bounds the number of memoized candidate lookups per vocabulary.
const candCacheSize = 256

// candReplaceCost is the replacement cost used while looking for candidate
// words. Replacements are charged double so that a same-length substitution
// chain isn't favored over insert/delete chains of the same length.
const candReplaceCost = 2

// Vocabulary holds an ordered list of valid words along with how often each
// one occurs in the list. Words are folded (lowercased and de-accented) when
// the vocabulary is built, so membership tests are case-insensitive.
// A Vocabulary is immutable after construction and safe for concurrent use.
type Vocabulary struct {
	words  []string         // folded, original order
	counts map[string]int   // number of occurrences of each word in words
	byLen  map[int][]string // words bucketed by rune count, original order
	cands  *cache.LRU       // memoizes Candidates results
}

// NewVocabulary builds a vocabulary from the supplied word list.
// The original order (and any duplicates, which contribute to word
// frequencies) is preserved.
func NewVocabulary(words []string) *Vocabulary {
	v := &Vocabulary{
		counts: make(map[string]int, len(words)),
		byLen:  make(map[int][]string),
		cands:  cache.NewLRU(candCacheSize),
	}
	for _, w := range words {
		w = strutil.Fold(w)
		if w == "" {
			continue
		}
		v.words = append(v.words, w)
		v.counts[w]++
		n := utf8.RuneCountInString(w)
		v.byLen[n] = append(v.byLen[n], w)
	}
	return v
}

// ReadVocabulary reads a newline-delimited word list from r,
// one word per line with surrounding whitespace stripped.
func ReadVocabulary(r io.Reader) (*Vocabulary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewVocabulary(words), nil
}

// LoadVocabulary reads a newline-delimited word list from the file at path.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadVocabulary(f)
}

//go:embed words.txt
var defaultWords string

var defaultVocab struct {
	once sync.Once
	v    *Vocabulary
}

// DefaultVocabulary returns a vocabulary built from a small embedded list of
// common English words. The list is parsed on the first call and the same
// vocabulary is shared by all later calls.
func DefaultVocabulary() *Vocabulary {
	defaultVocab.once.Do(func() {
		v, err := ReadVocabulary(strings.NewReader(defaultWords))
		if err != nil {
			panic(fmt.Sprint("Failed reading embedded word list: ", err))
		}
		defaultVocab.v = v
	})
	return defaultVocab.v
}

// Len returns the number of words in the vocabulary, counting duplicates.
func (v *Vocabulary) Len() int { return len(v.words) }

// Words returns a copy of the folded word list in its original order.
func (v *Vocabulary) Words() []string { return append([]string(nil), v.words...) }

// Contains reports whether word is present in the vocabulary.
// The word is folded before the lookup.
func (v *Vocabulary) Contains(word string) bool {
	return v.counts[strutil.Fold(word)] > 0
}

// Count returns the number of times word occurs in the vocabulary.
func (v *Vocabulary) Count(word string) int { return v.counts[strutil.Fold(word)] }

// Candidates returns the vocabulary words whose edit distance from token is
// at most maxEdits. Distances use unit insert/delete costs and a replacement
// cost of 2. Only words whose length differs from the token's by at most
// maxEdits are examined, since insertions and deletions cost 1 apiece and the
// distance can never be smaller than the length difference. Results are
// ordered by word length and then by vocabulary order, and are memoized.
func (v *Vocabulary) Candidates(token string, maxEdits int) []string {
	token = strutil.Fold(token)
	key := fmt.Sprintf("%s\x00%d", token, maxEdits)
	if cached, ok := v.cands.Get(key); ok {
		return append([]string(nil), cached.([]string)...)
	}

	var cands []string
	n := utf8.RuneCountInString(token)
	for l := n - maxEdits; l <= n+maxEdits; l++ {
		for _, w := range v.byLen[l] {
			tr := edit.NewTrace(token, w, edit.ReplaceCost(candReplaceCost))
			if tr.Distance() <= maxEdits {
				cands = append(cands, w)
			}
		}
	}

	v.cands.Set(key, cands)
	return append([]string(nil), cands...)
}
