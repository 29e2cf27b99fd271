// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// MeanCI returns the sample mean of xs along with the bounds of its
// confidence interval at the given confidence level, based on the
// Student's t-distribution. A confidence of 0 returns the point
// estimate for all three values; a single-observation sample or a
// confidence of 1 yields an unbounded interval.
func MeanCI(xs []float64, confidence float64) (mean, lo, hi float64) {
	if len(xs) == 0 {
		return nan, nan, nan
	}
	mean = stat.Mean(xs, nil)
	if confidence <= 0 {
		return mean, mean, mean
	}
	n := len(xs)
	if n == 1 || confidence >= 1 {
		return mean, -inf, inf
	}
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(0.5 + confidence/2)
	d := t * stat.StdDev(xs, nil) / math.Sqrt(float64(n))
	return mean, mean - d, mean + d
}
