// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"cmp"
	"fmt"
	"io"
	"math/bits"
	"strings"
)

// An AnovaTerm is the contribution of one main effect or interaction
// term to an n-way analysis of variance.
type AnovaTerm struct {
	// Factors are the 0-based indices of the factors
	// participating in this term, ascending. A main effect has
	// exactly one factor.
	Factors []int

	// Name labels the term for reporting. Factors are named by
	// letters in column order ("A", "B", ...) and interactions
	// join them with " x " ("A x B").
	Name string

	// SumSq is the term's sum of squares, corrected by
	// inclusion-exclusion so that lower-order effects are removed
	// from higher-order interaction sums.
	SumSq float64

	// DF is the term's degrees of freedom, the product of
	// (levels-1) over the participating factors. This structural
	// value follows balanced-design theory and is approximate for
	// unbalanced designs.
	DF int

	// MeanSq is SumSq / DF. It is NaN if DF is zero, which
	// happens only when a participating factor has a single
	// level.
	MeanSq float64

	// F is the term's F-statistic, MeanSq over the error mean
	// square.
	F float64

	// P is the probability of an F-statistic at least as large
	// under the null hypothesis that the term has no effect,
	// 1 - CDF_F(F; DF, DFError).
	P float64
}

// An AnovaNResult is the result of an n-way analysis of variance.
type AnovaNResult struct {
	// Terms holds one entry per requested main effect and
	// interaction term, ordered by ascending interaction order
	// and then by factor index.
	Terms []AnovaTerm

	// SSError and DFError are the residual (within-cells) sum of
	// squares and degrees of freedom. MSError is their quotient.
	SSError float64
	DFError int
	MSError float64

	// SSTotal is the total sum of squares about the grand mean
	// and DFTotal is the total degrees of freedom, one less than
	// the number of observations.
	SSTotal float64
	DFTotal int
}

// AnovaNMaxCells bounds the cross-factor cell table allocated by
// AnovaN. A design with L distinct labels across W factors needs
// (L+1)^W cells; AnovaN fails with ErrDesignTooLarge rather than
// allocate more than this.
var AnovaNMaxCells = 1 << 26

// AnovaN performs an n-way (multi-way) analysis of variance of the
// observations ys. Each element of factors is one grouping column of
// the same length as ys giving the level of that factor for each
// observation; labels may be arbitrary ordered values and need not be
// sequential. maxOrder caps the order of the interaction terms
// considered; if it is <= 0 or exceeds the number of factors, all
// 2^W-1 terms of the full factorial design are tested.
//
// Labels are pooled across all factors into a single ordered label
// space before indexing. This is harmless when factors use disjoint
// or parallel label ranges, but two factors sharing a label share a
// slot in the cell table's radix, which inflates the table; it does
// not affect the computed sums.
//
// This can fail with ErrSampleSize if ys is empty, ErrShape if the
// grouping columns do not match ys, ErrDesignTooLarge if the cell
// table would exceed AnovaNMaxCells, or ErrNoReplication if no fully
// crossed cell contains more than one observation, since the
// residual variance and hence the F-tests are then undefined.
func AnovaN[L cmp.Ordered](ys []float64, factors [][]L, maxOrder int) (*AnovaNResult, error) {
	n := len(ys)
	if n == 0 {
		return nil, ErrSampleSize
	}
	if len(factors) == 0 {
		return nil, ErrShape
	}
	for _, col := range factors {
		if len(col) != n {
			return nil, ErrShape
		}
	}

	codes, labels, err := Relabel(factors)
	if err != nil {
		return nil, err
	}
	w, g := len(factors), len(labels)
	levels := levelsUsed(codes, g)

	cells, err := newCellTable(w, g)
	if err != nil {
		return nil, err
	}
	row := make([]int, w)
	for i, y := range ys {
		for j := range codes {
			row[j] = codes[j][i]
		}
		cells.add(row, y)
	}

	// Residual degrees of freedom come from replication within
	// the fully crossed cells, which are exactly the cells
	// populated before marginalization.
	nonempty := 0
	for _, cn := range cells.n {
		if cn > 0 {
			nonempty++
		}
	}
	dfe := n - nonempty
	if dfe == 0 {
		return nil, ErrNoReplication
	}

	cells.marginalize()

	// Cell 0 is fully marginalized: the grand count, sum, and sum
	// of squares.
	sst := cells.sumSq[0] - cells.sum[0]*cells.sum[0]/cells.n[0]
	res := &AnovaNResult{
		DFError: dfe,
		SSTotal: sst,
		DFTotal: n - 1,
	}

	var ssModel float64
	for _, mask := range interactionTerms(w, maxOrder) {
		ss, df := cells.effect(mask, levels)
		ssModel += ss
		res.Terms = append(res.Terms, AnovaTerm{
			Factors: maskFactors(mask),
			Name:    termName(mask),
			SumSq:   ss,
			DF:      df,
		})
	}
	res.SSError = sst - ssModel
	res.MSError = res.SSError / float64(dfe)

	for i := range res.Terms {
		t := &res.Terms[i]
		if t.DF == 0 {
			t.MeanSq, t.F, t.P = nan, nan, nan
			continue
		}
		t.MeanSq = t.SumSq / float64(t.DF)
		t.F = t.MeanSq / res.MSError
		t.P = FDist{D1: float64(t.DF), D2: float64(dfe)}.Survival(t.F)
	}
	return res, nil
}

// maskFactors expands a term bitmask into the ascending indices of
// its factors.
func maskFactors(mask uint) []int {
	fs := make([]int, 0, bits.OnesCount(mask))
	for j := 0; mask != 0; j, mask = j+1, mask>>1 {
		if mask&1 != 0 {
			fs = append(fs, j)
		}
	}
	return fs
}

// termName names a term by its factor letters, e.g. "A x C" for a
// term over the first and third factors.
func termName(mask uint) string {
	var b strings.Builder
	for j := 0; mask != 0; j, mask = j+1, mask>>1 {
		if mask&1 == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" x ")
		}
		b.WriteByte(byte('A' + j))
	}
	return b.String()
}

// Fprint writes r as a fixed-width ANOVA table. The error row leads,
// followed by the tested terms in ascending interaction order.
func (r *AnovaNResult) Fprint(w io.Writer) {
	fmt.Fprintf(w, "%-22s%12s%6s%12s%10s%12s\n",
		"Source of Variation", "Sum Sqr", "df", "MeanSS", "Fval", "p-value")
	fmt.Fprintf(w, "%-22s%12.4f%6d%12.4f%10s%12s\n",
		"Error", r.SSError, r.DFError, r.MSError, "", "")
	for _, t := range r.Terms {
		fmt.Fprintf(w, "%-22s%12.4f%6d%12.4f%10.4f%12.6f\n",
			t.Name, t.SumSq, t.DF, t.MeanSq, t.F, t.P)
	}
}

func (r *AnovaNResult) String() string {
	var b strings.Builder
	r.Fprint(&b)
	return b.String()
}
