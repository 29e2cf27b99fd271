// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"math"
	"math/bits"
	"slices"
	"sort"

	"github.com/aclements/go-moremath/mathx"
)

// Relabel maps the arbitrary labels of one or more grouping columns
// to dense 1-based integer codes. All columns must have the same
// length. The label space is shared across columns: the distinct
// labels of every column are pooled, sorted ascending, and assigned
// codes 1..G by rank. Relabel returns one code column per input
// column and the sorted label table, so labels[code-1] recovers the
// raw label for a code.
//
// The mapping depends only on the set of labels, not on row order,
// so any permutation of the rows yields the same label-to-code
// mapping.
func Relabel[L cmp.Ordered](factors [][]L) (codes [][]int, labels []L, err error) {
	if len(factors) == 0 {
		return nil, nil, ErrShape
	}
	n := len(factors[0])
	all := make([]L, 0, n*len(factors))
	for _, col := range factors {
		if len(col) != n {
			return nil, nil, ErrShape
		}
		all = append(all, col...)
	}
	slices.Sort(all)
	labels = slices.Compact(all)

	codes = make([][]int, len(factors))
	for j, col := range factors {
		cj := make([]int, n)
		for i, v := range col {
			k, _ := slices.BinarySearch(labels, v)
			cj[i] = k + 1
		}
		codes[j] = cj
	}
	return codes, labels, nil
}

// levelsUsed counts the distinct codes appearing in each code
// column. A factor's degrees of freedom derive from the levels it
// actually uses, not from the pooled label space.
func levelsUsed(codes [][]int, g int) []int {
	lv := make([]int, len(codes))
	seen := make([]bool, g+1)
	for j, col := range codes {
		for i := range seen {
			seen[i] = false
		}
		cnt := 0
		for _, v := range col {
			if !seen[v] {
				seen[v] = true
				cnt++
			}
		}
		lv[j] = cnt
	}
	return lv
}

// interactionTerms enumerates the nonempty factor subsets of a w-way
// design as bitmasks with bit j selecting factor j, restricted to
// subsets of at most maxOrder factors (maxOrder <= 0 or > w means
// w). Terms are ordered by ascending interaction order, ties by
// ascending factor indices, so all main effects come first.
func interactionTerms(w, maxOrder int) []uint {
	if maxOrder <= 0 || maxOrder > w {
		maxOrder = w
	}
	count := 0
	for k := 1; k <= maxOrder; k++ {
		count += int(mathx.Choose(w, k))
	}
	terms := make([]uint, 0, count)
	for m := uint(1); m < 1<<uint(w); m++ {
		if bits.OnesCount(m) <= maxOrder {
			terms = append(terms, m)
		}
	}
	sort.Slice(terms, func(i, j int) bool {
		oi, oj := bits.OnesCount(terms[i]), bits.OnesCount(terms[j])
		if oi != oj {
			return oi < oj
		}
		return terms[i] < terms[j]
	})
	return terms
}

// A cellTable accumulates per-cell count, sum, and sum of squares
// over the cross of w factors with a shared label space of g levels.
// Cells are indexed in mixed radix: factor j contributes its code
// times (g+1)^j, and a zero digit at position j means the cell is
// marginalized (summed) over factor j. Cells are only ever
// incremented, never overwritten.
type cellTable struct {
	w, g  int
	place []int // place[j] = (g+1)^j
	n     []float64
	sum   []float64
	sumSq []float64

	// rawSS memoizes the raw sum of squares per selection mask
	// for the lifetime of one AnovaN call.
	rawSS map[uint]float64
}

func newCellTable(w, g int) (*cellTable, error) {
	place := make([]int, w)
	size := 1
	for j := 0; j < w; j++ {
		place[j] = size
		if size > AnovaNMaxCells/(g+1) {
			return nil, ErrDesignTooLarge
		}
		size *= g + 1
	}
	return &cellTable{
		w:     w,
		g:     g,
		place: place,
		n:     make([]float64, size),
		sum:   make([]float64, size),
		sumSq: make([]float64, size),
		rawSS: make(map[uint]float64),
	}, nil
}

// add accumulates one observation into its fully specified cell.
// codes[j] must be the observation's 1-based code for factor j.
func (c *cellTable) add(codes []int, y float64) {
	idx := 0
	for j, v := range codes {
		idx += v * c.place[j]
	}
	c.n[idx]++
	c.sum[idx] += y
	c.sumSq[idx] += y * y
}

// marginalize folds each factor's levels into the zero digit of its
// radix position, one factor at a time, materializing every marginal
// cell. After it returns, cell 0 holds the grand totals. Within a
// pass, targets have a zero digit at the folded position and are
// never re-read as sources.
func (c *cellTable) marginalize() {
	for j := 0; j < c.w; j++ {
		step := c.place[j]
		for idx := range c.n {
			d := (idx / step) % (c.g + 1)
			if d == 0 || c.n[idx] == 0 {
				continue
			}
			t := idx - d*step
			c.n[t] += c.n[idx]
			c.sum[t] += c.sum[idx]
			c.sumSq[t] += c.sumSq[idx]
		}
	}
}

// selection returns the bitmask of factor positions with a nonzero
// digit in idx's mixed-radix expansion, identifying the granularity
// of the cell.
func (c *cellTable) selection(idx int) uint {
	var m uint
	for j := 0; j < c.w; j++ {
		if idx%(c.g+1) != 0 {
			m |= 1 << uint(j)
		}
		idx /= c.g + 1
	}
	return m
}

// rawSumSq computes the raw (uncorrected) sum of squares at the
// granularity selected by mask: the sum over that granularity's
// nonempty cells of sum²/count. Empty and degenerate cells are
// skipped, not counted as zero. Results are memoized per mask.
func (c *cellTable) rawSumSq(mask uint) float64 {
	if v, ok := c.rawSS[mask]; ok {
		return v
	}
	var ss float64
	for idx := range c.n {
		if c.n[idx] == 0 || c.selection(idx) != mask {
			continue
		}
		r := c.sum[idx] * c.sum[idx] / c.n[idx]
		if math.IsNaN(r) {
			continue
		}
		ss += r
	}
	c.rawSS[mask] = ss
	return ss
}

// effect computes the corrected sum of squares and degrees of
// freedom of the term selected by mask. The sum of squares is the
// inclusion-exclusion expansion Σ_{S⊆T} (-1)^|T\S| RawSS(S), which
// subtracts every lower-order effect from the term's raw sum. The
// degrees of freedom are the product of (levels-1) over the term's
// factors.
func (c *cellTable) effect(mask uint, levels []int) (ss float64, df int) {
	df = 1
	for j := 0; j < c.w; j++ {
		if mask&(1<<uint(j)) != 0 {
			df *= levels[j] - 1
		}
	}
	order := bits.OnesCount(mask)
	for s := mask; ; s = (s - 1) & mask {
		if (order-bits.OnesCount(s))%2 == 0 {
			ss += c.rawSumSq(s)
		} else {
			ss -= c.rawSumSq(s)
		}
		if s == 0 {
			break
		}
	}
	return ss, df
}
