// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is a collection of possibly weighted data points.
type Sample struct {
	// Xs is the slice of sample values.
	Xs []float64

	// Weights[i] is the weight of sample Xs[i]. If Weights is
	// nil, all Xs have weight 1. Weights must have the same
	// length as Xs and all values must be non-negative.
	Weights []float64

	// Sorted indicates that Xs is sorted in ascending order.
	Sorted bool
}

// Weight returns the total weight of the sample, or the sample size
// if the sample is unweighted.
func (s Sample) Weight() float64 {
	if s.Weights == nil {
		return float64(len(s.Xs))
	}
	return floats.Sum(s.Weights)
}

// Sum returns the (weighted) sum of the sample.
func (s Sample) Sum() float64 {
	if s.Weights == nil {
		return floats.Sum(s.Xs)
	}
	var sum float64
	for i, x := range s.Xs {
		sum += x * s.Weights[i]
	}
	return sum
}

// Mean returns the arithmetic mean of the sample.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, s.Weights)
}

// GeoMean returns the geometric mean of the sample. It is NaN if any
// value is non-positive.
func (s Sample) GeoMean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	for _, x := range s.Xs {
		if x <= 0 {
			return nan
		}
	}
	return stat.GeometricMean(s.Xs, s.Weights)
}

// Variance returns the sample variance of the sample.
func (s Sample) Variance() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Variance(s.Xs, s.Weights)
}

// StdDev returns the sample standard deviation of the sample.
func (s Sample) StdDev() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.StdDev(s.Xs, s.Weights)
}

// Bounds returns the minimum and maximum values of the sample, or
// (inf, -inf) if the sample is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return inf, -inf
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Quantile returns the sample value X at which q*weight of the
// sample is <= X. q is a fraction in [0, 1]; out-of-range values are
// clamped.
//
// For unweighted samples this interpolates between order statistics
// using the quantile estimate type R-8, which is recommended as the
// approximately median-unbiased estimate. For weighted samples it
// returns the smallest value whose cumulative weight reaches
// q*weight.
func (s Sample) Quantile(q float64) float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	if !s.Sorted {
		s = *s.Copy().Sort()
	}

	if s.Weights == nil {
		n := len(s.Xs)
		// 1-based index of the quantile, R-8.
		h := (float64(n)+1.0/3)*q + 1.0/3
		if h < 1 {
			return s.Xs[0]
		}
		if h >= float64(n) {
			return s.Xs[n-1]
		}
		fl := math.Floor(h)
		i := int(fl) - 1
		return s.Xs[i] + (h-fl)*(s.Xs[i+1]-s.Xs[i])
	}

	if q < 0 {
		q = 0
	} else if q > 1 {
		q = 1
	}
	target := q * s.Weight()
	var cum float64
	for i, w := range s.Weights {
		cum += w
		if cum >= target {
			return s.Xs[i]
		}
	}
	return s.Xs[len(s.Xs)-1]
}

// Copy returns a copy of the Sample that shares no state with s.
func (s Sample) Copy() *Sample {
	xs := append([]float64(nil), s.Xs...)
	weights := []float64(nil)
	if s.Weights != nil {
		weights = append([]float64(nil), s.Weights...)
	}
	return &Sample{xs, weights, s.Sorted}
}

// Sort sorts the sample in place by value and returns s for method
// chaining. Weights move with their values.
func (s *Sample) Sort() *Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		s.Sorted = true
		return s
	}
	if s.Weights == nil {
		sort.Float64s(s.Xs)
	} else {
		sort.Stable(&sampleSorter{s.Xs, s.Weights})
	}
	s.Sorted = true
	return s
}

type sampleSorter struct {
	xs      []float64
	weights []float64
}

func (p *sampleSorter) Len() int {
	return len(p.xs)
}

func (p *sampleSorter) Less(i, j int) bool {
	return p.xs[i] < p.xs[j]
}

func (p *sampleSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.weights[i], p.weights[j] = p.weights[j], p.weights[i]
}
