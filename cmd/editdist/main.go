// Copyright 2024 Daniel Erat.
// All rights reserved.

// Command editdist prints the Levenshtein edit distance between two strings
// along with the matrices and operations behind it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/derat/spellfix/edit"
	"github.com/derat/spellfix/render"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage %v: [flag]... <SOURCE> <TARGET>\n"+
			"Computes the Levenshtein edit distance between two strings.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	insCost := flag.Int("insert-cost", 1, "Cost of inserting a character")
	delCost := flag.Int("delete-cost", 1, "Cost of deleting a character")
	repCost := flag.Int("replace-cost", 1, "Cost of replacing a character")
	open := flag.Bool("open", false, "Also open an HTML rendering of the trace in a browser")
	flag.Parse()

	os.Exit(func() int {
		if flag.NArg() != 2 {
			flag.Usage()
			return 2
		}
		tr := edit.NewTrace(flag.Arg(0), flag.Arg(1),
			edit.InsertCost(*insCost), edit.DeleteCost(*delCost), edit.ReplaceCost(*repCost))

		fmt.Println("Distance matrix:")
		for _, row := range tr.Matrix() {
			for j, v := range row {
				if j > 0 {
					fmt.Print(" ")
				}
				fmt.Printf("%3d", v)
			}
			fmt.Println()
		}

		fmt.Println("\nBacktrace:")
		for _, row := range tr.BacktraceASCII() {
			fmt.Println(string(row))
		}

		fmt.Println("\nMinimum edit distance:", tr.Distance())

		fmt.Println("\nOperation history:")
		for _, step := range tr.Operations() {
			fmt.Println("  " + render.Describe(step))
		}

		if *open {
			if err := render.OpenFile(tr); err != nil {
				fmt.Fprintln(os.Stderr, "Failed opening page:", err)
				return 1
			}
		}
		return 0
	}())
}
