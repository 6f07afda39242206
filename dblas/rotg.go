// Copyright 2026 go-blas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dblas

import "math"

// Safe scaling bounds for Drotg, from the binary64 exponent range:
// safmin = 2^max(minExp-1, 1-maxExp), safmax = 2^max(1-minExp, maxExp-1).
var (
	safmin = math.Ldexp(1, -1022)
	safmax = math.Ldexp(1, 1023)
)

// Drotg constructs the Givens rotation
//
//	| c s |   | a |   | r |
//	|-s c | * | b | = | 0 |
//
// returning the rotation pair (c, s), the rotated length r, and the
// reconstruction value z from which c and s can be recovered:
// z = s when |a| > |b|, otherwise 1/c, or 1 when c is 0.
//
// Special cases follow the reference BLAS: b == 0 gives (1, 0, a, 0)
// without flipping the sign of a negative a, and a == 0 gives (0, 1, b, 1).
// In the general case both inputs are scaled into [safmin, safmax] before
// the hypotenuse is formed, so r is computed without overflow or underflow,
// and r carries the sign of whichever input has larger magnitude.
func (Implementation) Drotg(a, b float64) (c, s, r, z float64) {
	anorm := math.Abs(a)
	bnorm := math.Abs(b)
	switch {
	case bnorm == 0:
		return 1, 0, a, 0
	case anorm == 0:
		return 0, 1, b, 1
	}

	scl := math.Min(safmax, math.Max(safmin, math.Max(anorm, bnorm)))
	sigma := 1.0
	if anorm > bnorm {
		if a < 0 {
			sigma = -1
		}
	} else {
		if b < 0 {
			sigma = -1
		}
	}
	r = sigma * (scl * math.Sqrt((a/scl)*(a/scl)+(b/scl)*(b/scl)))
	c = a / r
	s = b / r

	switch {
	case anorm > bnorm:
		z = s
	case c != 0:
		z = 1 / c
	default:
		z = 1
	}
	return c, s, r, z
}
