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

import (
	"math"

	"gonum.org/v1/gonum/blas"
)

// Rescaling thresholds for Drotmg. The diagonal scale factors are kept
// inside [rgamsq, gamsq] by repeated multiplication or division with
// gam^2; the literals are the reference routine's.
const (
	gam    = 4096.0
	gamsq  = 16777216.0
	rgamsq = 5.9604645e-8
)

// Drotm applies the modified Givens transformation H to n element pairs of
// x and y:
//
//	| x[i] |      | x[i] |
//	| y[i] |  = H | y[i] |
//
// The shape of H is encoded by p.Flag as produced by Drotmg: blas.Identity
// is a no-op, blas.Rescaling uses all four entries of p.H, blas.OffDiagonal
// takes the diagonal entries as 1, and blas.Diagonal takes the off-diagonal
// entries as 1 and -1.
func (Implementation) Drotm(n int, x []float64, incX int, y []float64, incY int, p blas.DrotmParams) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if p.Flag < blas.Identity || p.Flag > blas.Diagonal {
		panic(badFlag)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 || p.Flag == blas.Identity {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}

	h11, h21, h12, h22 := p.H[0], p.H[1], p.H[2], p.H[3]
	if incX == incY && incX > 0 {
		nsteps := n * incX
		switch p.Flag {
		case blas.Rescaling:
			for i := 0; i < nsteps; i += incX {
				w, z := x[i], y[i]
				x[i] = w*h11 + z*h12
				y[i] = w*h21 + z*h22
			}
		case blas.OffDiagonal:
			for i := 0; i < nsteps; i += incX {
				w, z := x[i], y[i]
				x[i] = w + z*h12
				y[i] = w*h21 + z
			}
		default:
			for i := 0; i < nsteps; i += incX {
				w, z := x[i], y[i]
				x[i] = w*h11 + z
				y[i] = -w + h22*z
			}
		}
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = (-n + 1) * incX
	}
	if incY < 0 {
		ky = (-n + 1) * incY
	}
	switch p.Flag {
	case blas.Rescaling:
		for i := 0; i < n; i++ {
			w, z := x[kx], y[ky]
			x[kx] = w*h11 + z*h12
			y[ky] = w*h21 + z*h22
			kx += incX
			ky += incY
		}
	case blas.OffDiagonal:
		for i := 0; i < n; i++ {
			w, z := x[kx], y[ky]
			x[kx] = w + z*h12
			y[ky] = w*h21 + z
			kx += incX
			ky += incY
		}
	default:
		for i := 0; i < n; i++ {
			w, z := x[kx], y[ky]
			x[kx] = w*h11 + z
			y[ky] = -w + h22*z
			kx += incX
			ky += incY
		}
	}
}

// Drotmg constructs the modified Givens transformation H and updated scale
// factors that zero the second component of the scaled 2-vector
// (sqrt(d1)*x1, sqrt(d2)*y1). It returns the parameter bundle for Drotm
// together with the updated d1, d2 and x1.
//
// A negative d1 (invalid as a squared scale) zeroes H, the scale factors
// and x1. When d2*y1 is zero there is nothing to eliminate and the identity
// flag is returned with the inputs passed through. Otherwise the branch
// with the larger weighted component wins: blas.OffDiagonal when
// |d1*x1*x1| > |d2*y1*y1|, blas.Diagonal otherwise (with d1 and d2
// exchanged through the update), falling back to the zeroed transform when
// the would-be determinant term is not positive.
//
// After the case selection, d1 and d2 are driven into [rgamsq, gamsq] by
// repeated gam^2 rescaling. Any rescale materializes the implicit unit
// entries of H and degrades the flag to blas.Rescaling, exactly as the
// reference routine does. Only the H entries implied by the final flag are
// stored; the rest are left zero.
func (Implementation) Drotmg(d1, d2, x1, y1 float64) (p blas.DrotmParams, rd1, rd2, rx1 float64) {
	var flag blas.Flag
	var h11, h21, h12, h22 float64

	if d1 < 0 {
		flag = blas.Rescaling
		d1, d2, x1 = 0, 0, 0
	} else {
		p2 := d2 * y1
		if p2 == 0 {
			p.Flag = blas.Identity
			return p, d1, d2, x1
		}
		p1 := d1 * x1
		q2 := p2 * y1
		q1 := p1 * x1

		if math.Abs(q1) > math.Abs(q2) {
			h21 = -y1 / x1
			h12 = p2 / p1
			u := 1 - h12*h21
			if u > 0 {
				flag = blas.OffDiagonal
				d1 /= u
				d2 /= u
				x1 *= u
			} else {
				// Rounding made the determinant term non-positive.
				flag = blas.Rescaling
				h11, h12, h21, h22 = 0, 0, 0, 0
				d1, d2, x1 = 0, 0, 0
			}
		} else {
			if q2 < 0 {
				flag = blas.Rescaling
				h11, h12, h21, h22 = 0, 0, 0, 0
				d1, d2, x1 = 0, 0, 0
			} else {
				flag = blas.Diagonal
				h11 = p1 / p2
				h22 = x1 / y1
				u := 1 + h11*h22
				d1, d2 = d2/u, d1/u
				x1 = y1 * u
			}
		}

		if d1 != 0 {
			for d1 <= rgamsq || d1 >= gamsq {
				if flag == blas.OffDiagonal {
					h11, h22 = 1, 1
					flag = blas.Rescaling
				} else {
					h21, h12 = -1, 1
					flag = blas.Rescaling
				}
				if d1 <= rgamsq {
					d1 *= gamsq
					x1 /= gam
					h11 /= gam
					h12 /= gam
				} else {
					d1 /= gamsq
					x1 *= gam
					h11 *= gam
					h12 *= gam
				}
			}
		}
		if d2 != 0 {
			for math.Abs(d2) <= rgamsq || math.Abs(d2) >= gamsq {
				if flag == blas.OffDiagonal {
					h11, h22 = 1, 1
					flag = blas.Rescaling
				} else {
					h21, h12 = -1, 1
					flag = blas.Rescaling
				}
				if math.Abs(d2) <= rgamsq {
					d2 *= gamsq
					h21 /= gam
					h22 /= gam
				} else {
					d2 /= gamsq
					h21 *= gam
					h22 *= gam
				}
			}
		}
	}

	switch {
	case flag < 0:
		p.H = [4]float64{h11, h21, h12, h22}
	case flag == 0:
		p.H[1] = h21
		p.H[2] = h12
	default:
		p.H[0] = h11
		p.H[3] = h22
	}
	p.Flag = flag
	return p, d1, d2, x1
}
