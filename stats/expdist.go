// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// An ExponentialDist is an exponential distribution with rate
// parameter Rate.
type ExponentialDist struct {
	Rate float64
}

func (d ExponentialDist) dist() distuv.Exponential {
	return distuv.Exponential{Rate: d.Rate}
}

func (d ExponentialDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

func (d ExponentialDist) InvCDF(y float64) float64 {
	return d.dist().Quantile(y)
}

func (d ExponentialDist) Rand() float64 {
	return d.dist().Rand()
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, d.dist().Quantile(0.999)
}
