// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// An FDist is an F-distribution with D1 and D2 degrees of freedom.
// It is the null distribution of the ratio of two scaled chi-squared
// variates and hence of ANOVA F-statistics.
type FDist struct {
	D1, D2 float64
}

func (d FDist) dist() distuv.F {
	return distuv.F{D1: d.D1, D2: d.D2}
}

func (d FDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

func (d FDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

// Survival returns 1 - CDF(x), the upper tail probability. For an
// observed F-statistic this is the test's p-value.
func (d FDist) Survival(x float64) float64 {
	return d.dist().Survival(x)
}

func (d FDist) InvCDF(y float64) float64 {
	return d.dist().Quantile(y)
}

func (d FDist) Rand() float64 {
	return d.dist().Rand()
}

func (d FDist) Bounds() (float64, float64) {
	return 0, d.dist().Quantile(0.999)
}
