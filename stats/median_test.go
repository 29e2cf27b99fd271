// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	require.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	require.Equal(t, 2.5, Median([]float64{4, 1, 2, 3}))
	require.Equal(t, 7.0, Median([]float64{7}))
	require.True(t, math.IsNaN(Median(nil)))

	// The input must not be reordered.
	xs := []float64{5, 1, 3}
	Median(xs)
	require.Equal(t, []float64{5, 1, 3}, xs)
}

func TestMedianOver(t *testing.T) {
	m := [][]float64{
		{1, 10, 100},
		{2, 20, 200},
		{3, 30, 300},
		{4, 40, 400},
	}

	cols, err := MedianOver(m, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{2.5, 25, 250}, cols)

	rows, err := MedianOver(m, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 20, 30, 40}, rows)

	empty, err := MedianOver(nil, 0)
	require.NoError(t, err)
	require.Nil(t, empty)
}

func TestMedianOverShape(t *testing.T) {
	ragged := [][]float64{{1, 2}, {3}}
	_, err := MedianOver(ragged, 0)
	require.ErrorIs(t, err, ErrShape)

	_, err = MedianOver(ragged, 2)
	require.ErrorIs(t, err, ErrShape)
}
