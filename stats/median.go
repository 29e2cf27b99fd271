// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "sort"

// Median returns the median of xs, the mean of the two middle order
// statistics for even-sized samples. It is NaN for an empty sample.
// xs is not modified.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return nan
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// MedianOver reduces a rectangular matrix along one dimension,
// returning the median of each column when dim is 0 and of each row
// when dim is 1. This can fail with ErrShape if the rows have uneven
// lengths or dim is not 0 or 1.
func MedianOver(m [][]float64, dim int) ([]float64, error) {
	if dim != 0 && dim != 1 {
		return nil, ErrShape
	}
	if len(m) == 0 {
		return nil, nil
	}
	cols := len(m[0])
	for _, row := range m {
		if len(row) != cols {
			return nil, ErrShape
		}
	}

	if dim == 1 {
		out := make([]float64, len(m))
		for i, row := range m {
			out[i] = Median(row)
		}
		return out, nil
	}

	out := make([]float64, cols)
	col := make([]float64, len(m))
	for j := 0; j < cols; j++ {
		for i, row := range m {
			col[i] = row[j]
		}
		out[j] = Median(col)
	}
	return out, nil
}
