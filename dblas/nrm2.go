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

// Blue's scaling thresholds for IEEE-754 binary64, precomputed from the
// exponent range (min exponent -1021, max exponent 1024, 53 digits):
//
//	tsml = 2^ceil((minExp-1)/2)          magnitudes below are scaled up
//	tbig = 2^floor((maxExp-digits+1)/2)  magnitudes above are scaled down
//	ssml = 2^-floor((minExp-digits)/2)   the up-scale factor
//	sbig = 2^-ceil((maxExp+digits-1)/2)  the down-scale factor
var (
	tsml = math.Ldexp(1, -511)
	tbig = math.Ldexp(1, 486)
	ssml = math.Ldexp(1, 537)
	sbig = math.Ldexp(1, -538)
)

// Dnrm2 computes the Euclidean norm
//
//	sqrt(sum_i x[i]*x[i])
//
// over n elements of x at increment incX, which may be negative.
//
// The sum of squares is gathered in three accumulators following Blue's
// algorithm: values above tbig are scaled down by sbig before squaring,
// values below tsml are scaled up by ssml (until a big value is seen, at
// which point small values can no longer affect the result), and mid-range
// values are squared directly. The accumulators are then combined without
// the intermediate overflow or underflow a naive sum of squares would hit
// near the edges of the representable range.
func (Implementation) Dnrm2(n int, x []float64, incX int) float64 {
	if incX == 0 {
		panic(zeroIncX)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return 0
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}

	notbig := true
	var asml, amed, abig float64

	ix := 0
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	for i := 0; i < n; i++ {
		ax := math.Abs(x[ix])
		switch {
		case ax > tbig:
			abig += (ax * sbig) * (ax * sbig)
			notbig = false
		case ax < tsml:
			if notbig {
				asml += (ax * ssml) * (ax * ssml)
			}
		default:
			amed += ax * ax
		}
		ix += incX
	}

	// Combine the accumulators. The amed > 0 tests also admit NaN so that
	// a NaN gathered mid-range propagates into the scaled result.
	scl := 1.0
	var sumsq float64
	switch {
	case abig > 0:
		if amed > 0 || amed != amed {
			abig += (amed * sbig) * sbig
		}
		scl = 1 / sbig
		sumsq = abig
	case asml > 0:
		if amed > 0 || amed != amed {
			amed = math.Sqrt(amed)
			asml = math.Sqrt(asml) / ssml
			ymin, ymax := asml, amed
			if asml > amed {
				ymin, ymax = amed, asml
			}
			sumsq = ymax * ymax * (1 + (ymin/ymax)*(ymin/ymax))
		} else {
			scl = 1 / ssml
			sumsq = asml
		}
	default:
		sumsq = amed
	}
	return scl * math.Sqrt(sumsq)
}
