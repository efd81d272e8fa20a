// Copyright 2024 Daniel Erat.
// All rights reserved.

// Command spellfix corrects misspelled words in text using a vocabulary.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/derat/spellfix/spell"
	"github.com/derat/spellfix/web"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: [flag]... [FILE]\n"+
			"Corrects misspelled words in text read from FILE or stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	maxEdits := flag.Int("max-edits", 2, "Maximum edit distance for candidate words")
	sel := flag.String("select", "", "CSS selector choosing the page element to correct (with -url)")
	show := flag.Bool("show-candidates", false, "Print candidates and scores for each misspelling to stderr")
	urlFlag := flag.String("url", "", "Correct the text content of the HTML page at this URL instead of reading FILE")
	vocabPath := flag.String("vocab", "", "Path to a newline-delimited word list (default is an embedded English list)")
	var extraWords repeatedFlag
	flag.Var(&extraWords, "word", "Additional vocabulary word (can be repeated)")
	flag.Parse()

	os.Exit(func() int {
		vocab := spell.DefaultVocabulary()
		if *vocabPath != "" {
			var err error
			if vocab, err = spell.LoadVocabulary(*vocabPath); err != nil {
				fmt.Fprintln(os.Stderr, "Failed loading vocabulary:", err)
				return 1
			}
		}
		if len(extraWords) > 0 {
			vocab = spell.NewVocabulary(append(vocab.Words(), extraWords...))
		}

		var text string
		if *urlFlag != "" {
			if flag.NArg() != 0 {
				flag.Usage()
				return 2
			}
			page, err := web.Fetch(context.Background(), *urlFlag)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed fetching page:", err)
				return 1
			}
			if *sel != "" {
				if text, err = page.QueryText(*sel); err != nil {
					fmt.Fprintln(os.Stderr, "Failed querying page:", err)
					return 1
				}
			} else {
				text = page.Text()
			}
		} else {
			var r io.Reader
			switch flag.NArg() {
			case 0:
				r = os.Stdin
			case 1:
				f, err := os.Open(flag.Arg(0))
				if err != nil {
					fmt.Fprintln(os.Stderr, err)
					return 1
				}
				defer f.Close()
				r = f
			default:
				flag.Usage()
				return 2
			}
			b, err := io.ReadAll(r)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed reading text:", err)
				return 1
			}
			text = string(b)
		}

		corr := spell.NewCorrector(text, vocab, spell.MaxEdits(*maxEdits))
		fmt.Println(corr.Corrected())

		if *show {
			for _, m := range corr.Misspellings() {
				fmt.Fprintf(os.Stderr, "%s:\n", m.Word)
				for i, cand := range m.Candidates {
					marker := " "
					if cand == m.Best {
						marker = "*"
					}
					fmt.Fprintf(os.Stderr, " %s %s (%.3f)\n", marker, cand, m.Scores[i])
				}
			}
		}
		return 0
	}())
}
