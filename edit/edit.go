// Copyright 2024 Daniel Erat.
// All rights reserved.

// Package edit computes weighted Levenshtein edit distances between strings
// and reconstructs the sequence of operations that achieves them.
package edit

import "strings"

// Op identifies a single kind of edit operation.
type Op int

const (
	// NoEdit indicates that a character is carried over unchanged.
	NoEdit Op = iota
	// Insert indicates that a character from the target is inserted.
	Insert
	// Delete indicates that a character from the source is deleted.
	Delete
	// Replace indicates that a source character is replaced by a target character.
	Replace
)

// String returns a short lowercase name for op, e.g. "no_edit" or "insert".
func (op Op) String() string {
	switch op {
	case NoEdit:
		return "no_edit"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "unknown"
}

// symbol returns the single-character form of op used by BacktraceASCII.
func (op Op) symbol() rune {
	switch op {
	case Insert:
		return 'I'
	case Delete:
		return 'D'
	case Replace:
		return 'R'
	}
	return 'N'
}

// Step describes one operation in an edit script transforming a source string
// into a target string. Indexes are 1-based positions in the lowercased
// strings; an index (and the corresponding rune) is zero on the side that the
// operation doesn't consume, i.e. SrcIndex for Insert and DstIndex for Delete.
type Step struct {
	Op                 Op
	SrcIndex, DstIndex int
	SrcRune, DstRune   rune
}

// costs holds per-operation weights used when filling the distance matrix.
type costs struct{ ins, del, rep int }

// Option can be passed to NewTrace to configure operation costs.
type Option func(*costs)

// InsertCost returns an Option setting the cost of inserting a character.
func InsertCost(n int) Option { return func(c *costs) { c.ins = n } }

// DeleteCost returns an Option setting the cost of deleting a character.
func DeleteCost(n int) Option { return func(c *costs) { c.del = n } }

// ReplaceCost returns an Option setting the cost of replacing a character.
func ReplaceCost(n int) Option { return func(c *costs) { c.rep = n } }

// Trace holds the distance and backtrace matrices for a pair of strings.
// It is immutable once constructed and safe for concurrent reads.
type Trace struct {
	src, dst []rune // lowercased
	costs    costs
	dist     [][]int // (len(src)+1) x (len(dst)+1)
	back     [][]Op  // parallel to dist
}

// NewTrace lowercases source and target and fills the distance and backtrace
// matrices using the Wagner–Fischer algorithm. All costs default to 1.
//
// Ties between equally cheap transitions are broken in a fixed order:
// insertion wins over deletion, which wins over replacement.
func NewTrace(source, target string, opts ...Option) *Trace {
	tr := &Trace{
		src:   []rune(strings.ToLower(source)),
		dst:   []rune(strings.ToLower(target)),
		costs: costs{ins: 1, del: 1, rep: 1},
	}
	for _, o := range opts {
		o(&tr.costs)
	}
	tr.build()
	return tr
}

func (tr *Trace) build() {
	m, n := len(tr.src), len(tr.dst)
	tr.dist = make([][]int, m+1)
	tr.back = make([][]Op, m+1)
	for i := range tr.dist {
		tr.dist[i] = make([]int, n+1)
		tr.back[i] = make([]Op, n+1)
	}

	// The first column deletes every source prefix; the first row inserts
	// every target prefix. The corner cell gets tagged too, but the backwalk
	// stops before reaching it so only the rendering ever sees that value.
	for i := 0; i <= m; i++ {
		tr.dist[i][0] = i * tr.costs.del
		tr.back[i][0] = Delete
	}
	for j := 0; j <= n; j++ {
		tr.dist[0][j] = j * tr.costs.ins
		tr.back[0][j] = Insert
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if tr.src[i-1] == tr.dst[j-1] {
				// Equal runes carry the diagonal value over without
				// paying any cost, no matter what the costs are.
				tr.dist[i][j] = tr.dist[i-1][j-1]
				tr.back[i][j] = NoEdit
				continue
			}
			ins, del, rep := tr.dist[i][j-1], tr.dist[i-1][j], tr.dist[i-1][j-1]
			min := ins
			if del < min {
				min = del
			}
			if rep < min {
				min = rep
			}
			switch {
			case min == ins:
				tr.dist[i][j] = min + tr.costs.ins
				tr.back[i][j] = Insert
			case min == del:
				tr.dist[i][j] = min + tr.costs.del
				tr.back[i][j] = Delete
			default:
				tr.dist[i][j] = min + tr.costs.rep
				tr.back[i][j] = Replace
			}
		}
	}
}

// Source returns the lowercased source string.
func (tr *Trace) Source() string { return string(tr.src) }

// Target returns the lowercased target string.
func (tr *Trace) Target() string { return string(tr.dst) }

// Distance returns the total cost of transforming the source string into the
// target string.
func (tr *Trace) Distance() int { return tr.dist[len(tr.src)][len(tr.dst)] }

// Matrix returns a copy of the distance matrix. Row i, column j holds the
// minimum cost of transforming the first i source runes into the first j
// target runes.
func (tr *Trace) Matrix() [][]int {
	rows := make([][]int, len(tr.dist))
	for i, row := range tr.dist {
		rows[i] = append([]int(nil), row...)
	}
	return rows
}

// Operations returns the edit script transforming the source string into the
// target string, in forward order (i.e. starting at the beginning of the
// source). The script is recomputed on each call by walking the backtrace
// matrix from the bottom-right corner.
func (tr *Trace) Operations() []Step {
	var steps []Step
	i, j := len(tr.src), len(tr.dst)
	for i > 0 || j > 0 {
		switch tr.back[i][j] {
		case Insert:
			steps = append(steps, Step{Op: Insert, DstIndex: j, DstRune: tr.dst[j-1]})
			j--
		case Delete:
			steps = append(steps, Step{Op: Delete, SrcIndex: i, SrcRune: tr.src[i-1]})
			i--
		default: // Replace and NoEdit both consume a rune from each side.
			steps = append(steps, Step{
				Op:       tr.back[i][j],
				SrcIndex: i, SrcRune: tr.src[i-1],
				DstIndex: j, DstRune: tr.dst[j-1],
			})
			i--
			j--
		}
	}
	// The walk produced the script back-to-front.
	for a, b := 0, len(steps)-1; a < b; a, b = a+1, b-1 {
		steps[a], steps[b] = steps[b], steps[a]
	}
	return steps
}

// BacktraceASCII returns a printable copy of the backtrace matrix. Interior
// cells hold 'N', 'I', 'D' or 'R'; the first column is relabeled with the
// source runes, the first row with the target runes, and the corner with '#'.
func (tr *Trace) BacktraceASCII() [][]rune {
	m, n := len(tr.src), len(tr.dst)
	grid := make([][]rune, m+1)
	for i := range grid {
		grid[i] = make([]rune, n+1)
		for j := range grid[i] {
			grid[i][j] = tr.back[i][j].symbol()
		}
	}
	grid[0][0] = '#'
	for i := 1; i <= m; i++ {
		grid[i][0] = tr.src[i-1]
	}
	for j := 1; j <= n; j++ {
		grid[0][j] = tr.dst[j-1]
	}
	return grid
}
