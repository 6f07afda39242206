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

// Daxpy computes
//
//	y = alpha*x + y
//
// over n elements of x and y at the given increments. When alpha is zero
// the routine returns without touching y. The unit-stride path accumulates
// in the reference BLAS four-way unrolled order.
func (Implementation) Daxpy(n int, alpha float64, x []float64, incX int, y []float64, incY int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if alpha == 0 {
		return
	}
	if incX == 1 && incY == 1 {
		m := n % 4
		for i := 0; i < m; i++ {
			y[i] += alpha * x[i]
		}
		for i := m; i < n; i += 4 {
			y[i] += alpha * x[i]
			y[i+1] += alpha * x[i+1]
			y[i+2] += alpha * x[i+2]
			y[i+3] += alpha * x[i+3]
		}
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		y[iy] += alpha * x[ix]
		ix += incX
		iy += incY
	}
}

// Daxpby computes
//
//	y = alpha*x + beta*y
//
// over n elements of x and y at the given increments. Unlike Daxpy, a zero
// alpha still scales y by beta; with a negative incY that scaling pass
// leaves y untouched, matching the reference routine.
func (Implementation) Daxpby(n int, alpha float64, x []float64, incX int, beta float64, y []float64, incY int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if alpha == 0 && beta != 0 {
		if incY == 1 {
			for i := 0; i < n; i++ {
				y[i] = beta * y[i]
			}
			return
		}
		nincy := n * incY
		for i := 0; i < nincy; i += incY {
			y[i] = beta * y[i]
		}
		return
	}
	if incX == 1 && incY == 1 {
		for i := 0; i < n; i++ {
			y[i] = beta*y[i] + alpha*x[i]
		}
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		y[iy] = beta*y[iy] + alpha*x[ix]
		ix += incX
		iy += incY
	}
}

// Dscal computes
//
//	x = alpha*x
//
// over n elements of x. The routine does nothing when incX is negative or
// alpha is exactly 1, matching the reference quick returns.
func (Implementation) Dscal(n int, alpha float64, x []float64, incX int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 || incX < 0 || alpha == 1 {
		return
	}
	if len(x) <= (n-1)*incX {
		panic(shortX)
	}
	if incX == 1 {
		m := n % 5
		if m != 0 {
			for i := 0; i < m; i++ {
				x[i] = alpha * x[i]
			}
			if n < 5 {
				return
			}
		}
		for i := m; i < n; i += 5 {
			x[i] = alpha * x[i]
			x[i+1] = alpha * x[i+1]
			x[i+2] = alpha * x[i+2]
			x[i+3] = alpha * x[i+3]
			x[i+4] = alpha * x[i+4]
		}
		return
	}
	nincx := n * incX
	for i := 0; i < nincx; i += incX {
		x[i] = alpha * x[i]
	}
}

// Dcopy copies n elements of x into y at the given increments.
func (Implementation) Dcopy(n int, x []float64, incX int, y []float64, incY int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if incX == 1 && incY == 1 {
		m := n % 7
		if m != 0 {
			for i := 0; i < m; i++ {
				y[i] = x[i]
			}
			if n < 7 {
				return
			}
		}
		for i := m; i < n; i += 7 {
			y[i] = x[i]
			y[i+1] = x[i+1]
			y[i+2] = x[i+2]
			y[i+3] = x[i+3]
			y[i+4] = x[i+4]
			y[i+5] = x[i+5]
			y[i+6] = x[i+6]
		}
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		y[iy] = x[ix]
		ix += incX
		iy += incY
	}
}

// Dswap exchanges n elements of x and y at the given increments.
func (Implementation) Dswap(n int, x []float64, incX int, y []float64, incY int) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if incX == 1 && incY == 1 {
		m := n % 3
		if m != 0 {
			for i := 0; i < m; i++ {
				x[i], y[i] = y[i], x[i]
			}
			if n < 3 {
				return
			}
		}
		for i := m; i < n; i += 3 {
			x[i], y[i] = y[i], x[i]
			x[i+1], y[i+1] = y[i+1], x[i+1]
			x[i+2], y[i+2] = y[i+2], x[i+2]
		}
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		x[ix], y[iy] = y[iy], x[ix]
		ix += incX
		iy += incY
	}
}

// Ddot computes the dot product
//
//	sum_i x[i] * y[i]
//
// over n elements of x and y at the given increments. It returns exactly 0
// when n is zero. Negative increments walk their vector backward; there is
// no negative-increment special case here, unlike Dasum.
func (Implementation) Ddot(n int, x []float64, incX int, y []float64, incY int) float64 {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
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
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	var sum float64
	if incX == 1 && incY == 1 {
		m := n % 5
		if m != 0 {
			for i := 0; i < m; i++ {
				sum += x[i] * y[i]
			}
			if n < 5 {
				return sum
			}
		}
		for i := m; i < n; i += 5 {
			sum += x[i]*y[i] + x[i+1]*y[i+1] + x[i+2]*y[i+2] +
				x[i+3]*y[i+3] + x[i+4]*y[i+4]
		}
		return sum
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		sum += x[ix] * y[iy]
		ix += incX
		iy += incY
	}
	return sum
}

// Dasum computes the sum of absolute values
//
//	sum_i |x[i]|
//
// over n elements of x. It returns 0 when incX is negative. That treatment
// is asymmetric with Ddot and Dnrm2 but is the documented reference
// behavior and is kept.
func (Implementation) Dasum(n int, x []float64, incX int) float64 {
	if incX == 0 {
		panic(zeroIncX)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 || incX < 0 {
		return 0
	}
	if len(x) <= (n-1)*incX {
		panic(shortX)
	}
	var sum float64
	if incX == 1 {
		m := n % 6
		if m != 0 {
			for i := 0; i < m; i++ {
				sum += math.Abs(x[i])
			}
			if n < 6 {
				return sum
			}
		}
		for i := m; i < n; i += 6 {
			sum += math.Abs(x[i]) + math.Abs(x[i+1]) + math.Abs(x[i+2]) +
				math.Abs(x[i+3]) + math.Abs(x[i+4]) + math.Abs(x[i+5])
		}
		return sum
	}
	nincx := n * incX
	for i := 0; i < nincx; i += incX {
		sum += math.Abs(x[i])
	}
	return sum
}

// Drot applies a plane rotation with cosine c and sine s to n element
// pairs of x and y:
//
//	x[i] = c*x[i] + s*y[i]
//	y[i] = c*y[i] - s*x[i]
func (Implementation) Drot(n int, x []float64, incX int, y []float64, incY int, c, s float64) {
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n < 0 {
		panic(negativeN)
	}
	if n == 0 {
		return
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if incX == 1 && incY == 1 {
		for i := 0; i < n; i++ {
			tmp := c*x[i] + s*y[i]
			y[i] = c*y[i] - s*x[i]
			x[i] = tmp
		}
		return
	}
	var ix, iy int
	if incX < 0 {
		ix = (-n + 1) * incX
	}
	if incY < 0 {
		iy = (-n + 1) * incY
	}
	for i := 0; i < n; i++ {
		tmp := c*x[ix] + s*y[iy]
		y[iy] = c*y[iy] - s*x[ix]
		x[ix] = tmp
		ix += incX
		iy += incY
	}
}
