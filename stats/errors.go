// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "errors"

var (
	// ErrSampleSize is returned when a sample is empty or too
	// small for the requested computation.
	ErrSampleSize = errors.New("sample is too small")

	// ErrShape is returned when a grouping column's length does
	// not match the observation vector, or no grouping columns
	// were given.
	ErrShape = errors.New("grouping does not match observations")

	// ErrDesignTooLarge is returned when the cross-factor cell
	// table would exceed AnovaNMaxCells entries.
	ErrDesignTooLarge = errors.New("factorial design is too large")

	// ErrNoReplication is returned when a design has no
	// replication within the fully crossed cells, leaving zero
	// error degrees of freedom and an undefined F-test.
	ErrNoReplication = errors.New("design has no replication")

	// ErrUnknownDist is returned when no distribution has been
	// registered under the requested name.
	ErrUnknownDist = errors.New("unknown distribution")
)
