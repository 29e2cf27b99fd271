// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A DistDef describes the capabilities registered for a named
// distribution family. The CDF, PDF, inverse CDF, and random
// sampling capabilities come from the Dist values its Fit produces.
type DistDef struct {
	// Name identifies the family, e.g. "normal".
	Name string

	// Fit estimates the family's parameters from the sample xs
	// and returns the fitted distribution.
	Fit func(xs []float64) (Dist, error)
}

var distDefs = make(map[string]*DistDef)

// RegisterDist adds def to the distribution registry consulted by
// FitDist. It panics if a definition with the same name is already
// registered.
func RegisterDist(def *DistDef) {
	if _, ok := distDefs[def.Name]; ok {
		panic("duplicate distribution definition: " + def.Name)
	}
	distDefs[def.Name] = def
}

// LookupDist returns the registered definition of the named
// distribution family, or nil if there is none.
func LookupDist(name string) *DistDef {
	return distDefs[name]
}

func init() {
	RegisterDist(&DistDef{Name: "normal", Fit: fitNormal})
	RegisterDist(&DistDef{Name: "exponential", Fit: fitExponential})
	RegisterDist(&DistDef{Name: "uniform", Fit: fitUniform})
}

// A FitResult is the result of fitting a named distribution family
// to a sample. The group fields are empty unless grouped data was
// fitted.
type FitResult struct {
	// Name is the family that was fitted.
	Name string

	// Dist is the distribution fitted to the whole sample.
	Dist Dist

	// Groups holds the distinct group labels, sorted ascending,
	// when the sample was fitted per group. GroupDists[i] is the
	// distribution fitted to the observations labeled Groups[i].
	Groups     []string
	GroupDists []Dist
}

// FitDist fits the named distribution family to xs. If groups is
// non-nil it must have one label per observation; the family is then
// additionally fitted to each group's observations separately, and
// the result's group fields report the per-group fits in sorted
// label order.
//
// This can fail with ErrUnknownDist if no family is registered under
// name, ErrShape if groups does not match xs, or the family's own
// fitting error.
func FitDist(name string, xs []float64, groups []string) (*FitResult, error) {
	def := LookupDist(name)
	if def == nil {
		return nil, errors.Wrap(ErrUnknownDist, name)
	}
	d, err := def.Fit(xs)
	if err != nil {
		return nil, errors.Wrapf(err, "fit %s", name)
	}
	res := &FitResult{Name: name, Dist: d}
	if groups == nil {
		return res, nil
	}
	if len(groups) != len(xs) {
		return nil, ErrShape
	}

	codes, labels, err := Relabel([][]string{groups})
	if err != nil {
		return nil, err
	}
	byGroup := make([][]float64, len(labels))
	for i, c := range codes[0] {
		byGroup[c-1] = append(byGroup[c-1], xs[i])
	}
	res.Groups = labels
	res.GroupDists = make([]Dist, len(labels))
	for i, gxs := range byGroup {
		gd, err := def.Fit(gxs)
		if err != nil {
			return nil, errors.Wrapf(err, "fit %s, group %q", name, labels[i])
		}
		res.GroupDists[i] = gd
	}
	return res, nil
}

func fitNormal(xs []float64) (Dist, error) {
	if len(xs) < 2 {
		return nil, ErrSampleSize
	}
	mu, sigma := stat.MeanStdDev(xs, nil)
	return NormalDist{Mu: mu, Sigma: sigma}, nil
}

func fitExponential(xs []float64) (Dist, error) {
	if len(xs) == 0 {
		return nil, ErrSampleSize
	}
	mean := stat.Mean(xs, nil)
	if mean <= 0 {
		return nil, errors.New("exponential fit requires a positive mean")
	}
	return ExponentialDist{Rate: 1 / mean}, nil
}

func fitUniform(xs []float64) (Dist, error) {
	if len(xs) == 0 {
		return nil, ErrSampleSize
	}
	return UniformDist{Min: floats.Min(xs), Max: floats.Max(xs)}, nil
}
