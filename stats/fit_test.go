// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	_ RandDist = NormalDist{}
	_ RandDist = FDist{}
	_ RandDist = ExponentialDist{}
	_ RandDist = UniformDist{}
)

func TestLookupDist(t *testing.T) {
	for _, name := range []string{"normal", "exponential", "uniform"} {
		require.NotNil(t, LookupDist(name), name)
	}
	require.Nil(t, LookupDist("zipf"))
}

func TestFitDistNormal(t *testing.T) {
	res, err := FitDist("normal", []float64{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	require.Equal(t, "normal", res.Name)
	require.Empty(t, res.Groups)
	require.Empty(t, res.GroupDists)

	d, ok := res.Dist.(NormalDist)
	require.True(t, ok)
	require.InDelta(t, 2.5, d.Mu, 1e-12)
	require.InDelta(t, math.Sqrt(5.0/3), d.Sigma, 1e-12)
}

func TestFitDistGrouped(t *testing.T) {
	xs := []float64{1, 2, 10, 20, 3, 30}
	groups := []string{"a", "a", "b", "b", "a", "b"}

	res, err := FitDist("normal", xs, groups)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, res.Groups)
	require.Len(t, res.GroupDists, 2)

	a := res.GroupDists[0].(NormalDist)
	require.InDelta(t, 2, a.Mu, 1e-12)
	b := res.GroupDists[1].(NormalDist)
	require.InDelta(t, 20, b.Mu, 1e-12)
}

func TestFitDistErrors(t *testing.T) {
	_, err := FitDist("zipf", []float64{1, 2}, nil)
	require.ErrorIs(t, err, ErrUnknownDist)

	_, err = FitDist("normal", []float64{1}, nil)
	require.ErrorIs(t, err, ErrSampleSize)

	_, err = FitDist("normal", []float64{1, 2, 3}, []string{"a", "b"})
	require.ErrorIs(t, err, ErrShape)

	// A group with a single observation cannot be fitted even if
	// the whole sample can.
	_, err = FitDist("normal", []float64{1, 2, 3}, []string{"a", "a", "b"})
	require.ErrorIs(t, err, ErrSampleSize)
	require.Contains(t, err.Error(), `group "b"`)
}

func TestFitDistExponential(t *testing.T) {
	res, err := FitDist("exponential", []float64{1, 2, 3}, nil)
	require.NoError(t, err)
	d := res.Dist.(ExponentialDist)
	require.InDelta(t, 0.5, d.Rate, 1e-12)

	_, err = FitDist("exponential", []float64{-1, -2}, nil)
	require.Error(t, err)
}

func TestFitDistUniform(t *testing.T) {
	res, err := FitDist("uniform", []float64{4, 1, 3}, nil)
	require.NoError(t, err)
	d := res.Dist.(UniformDist)
	require.Equal(t, 1.0, d.Min)
	require.Equal(t, 4.0, d.Max)
}

func TestRegisterDistDuplicate(t *testing.T) {
	require.Panics(t, func() {
		RegisterDist(&DistDef{Name: "normal", Fit: fitNormal})
	})
}

func TestFitDistUnknownIs(t *testing.T) {
	_, err := FitDist("cauchy", nil, nil)
	require.True(t, errors.Is(err, ErrUnknownDist))
}
