// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestSampleQuantile(t *testing.T) {
	s := Sample{Xs: []float64{15, 20, 35, 40, 50}}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		-1:  15,
		0:   15,
		.05: 15,
		.30: 19.666666666666666,
		.40: 27,
		.95: 50,
		1:   50,
		2:   50,
	})
}

func TestSampleWeightedQuantile(t *testing.T) {
	s := Sample{
		Xs:      []float64{10, 20, 30},
		Weights: []float64{1, 2, 1},
	}
	testFunc(t, "Quantile", s.Quantile, map[float64]float64{
		0.1: 10,
		0.5: 20,
		0.9: 30,
		1:   30,
	})
}

func TestSampleMoments(t *testing.T) {
	s := Sample{Xs: []float64{2, 4, 4, 4, 5, 5, 7, 9}}
	if !aeq(5, s.Mean()) {
		t.Errorf("Mean = %v, want 5", s.Mean())
	}
	if !aeq(40, s.Sum()) || !aeq(8, s.Weight()) {
		t.Errorf("Sum, Weight = %v, %v; want 40, 8", s.Sum(), s.Weight())
	}
	if !aeq(32.0/7, s.Variance()) {
		t.Errorf("Variance = %v, want 32/7", s.Variance())
	}
	min, max := s.Bounds()
	if min != 2 || max != 9 {
		t.Errorf("Bounds = %v, %v; want 2, 9", min, max)
	}
}

func TestSampleSort(t *testing.T) {
	s := Sample{
		Xs:      []float64{3, 1, 2},
		Weights: []float64{30, 10, 20},
	}
	sorted := s.Copy().Sort()
	for i, want := range []float64{1, 2, 3} {
		if sorted.Xs[i] != want || sorted.Weights[i] != want*10 {
			t.Errorf("sorted[%d] = (%v, %v), want (%v, %v)",
				i, sorted.Xs[i], sorted.Weights[i], want, want*10)
		}
	}
	if s.Xs[0] != 3 {
		t.Errorf("Copy did not isolate the original sample")
	}
}

func TestMeanCI(t *testing.T) {
	var xs []float64
	naneq := func(a, b float64) bool {
		return aeq(a, b) || (math.IsNaN(a) && math.IsNaN(b)) ||
			(math.IsInf(a, -1) && math.IsInf(b, -1)) ||
			(math.IsInf(a, 1) && math.IsInf(b, 1))
	}
	check := func(conf, wmean, wlo, whi float64) {
		t.Helper()
		mean, lo, hi := MeanCI(xs, conf)
		if !(naneq(mean, wmean) && naneq(lo, wlo) && naneq(hi, whi)) {
			t.Errorf("for %v, want %v@[%v,%v], got %v@[%v,%v]", xs, wmean, wlo, whi, mean, lo, hi)
		}
	}

	xs = []float64{-8, 2, 3, 4, 5, 6}
	check(0, 2, 2, 2)
	check(0.95, 2, -3.351092806089359, 7.351092806089359)
	check(0.99, 2, -6.39357495385287, 10.39357495385287)
	check(1, 2, -inf, inf)

	xs = []float64{1}
	check(0, 1, 1, 1)
	check(0.95, 1, -inf, inf)
	check(1, 1, -inf, inf)

	xs = nil
	check(0, math.NaN(), math.NaN(), math.NaN())
	check(0.95, math.NaN(), math.NaN(), math.NaN())
	check(1, math.NaN(), math.NaN(), math.NaN())
}
