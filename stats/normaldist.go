// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/stat/distuv"

// A NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1)
var StdNormal = NormalDist{0, 1}

func (d NormalDist) dist() distuv.Normal {
	return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma}
}

func (d NormalDist) PDF(x float64) float64 {
	return d.dist().Prob(x)
}

func (d NormalDist) CDF(x float64) float64 {
	return d.dist().CDF(x)
}

func (d NormalDist) InvCDF(y float64) float64 {
	return d.dist().Quantile(y)
}

func (d NormalDist) Rand() float64 {
	return d.dist().Rand()
}

func (d NormalDist) Bounds() (float64, float64) {
	return d.Mu - 3*d.Sigma, d.Mu + 3*d.Sigma
}
