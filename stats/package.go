// Copyright 2023 The Statbox Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats is a toolbox of statistical routines: distribution objects,
// hypothesis tests, and array reductions.
package stats // import "github.com/statbox/go-statbox/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
