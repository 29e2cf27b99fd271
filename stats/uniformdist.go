// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// A UniformDist is a continuous uniform distribution on [Min, Max].
type UniformDist struct {
	Min, Max float64
}

func (d UniformDist) dist() distuv.Uniform {
	return distuv.Uniform{Min: d.Min, Max: d.Max}
}

func (d UniformDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

func (d UniformDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

func (d UniformDist) InvCDF(y float64) float64 {
	return d.dist().Quantile(y)
}

func (d UniformDist) Rand() float64 {
	return d.dist().Rand()
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.Min, d.Max
}
