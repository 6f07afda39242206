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

import "gonum.org/v1/gonum/blas"

// Dgemv computes
//
//	y = alpha*A*x + beta*y    if tA == blas.NoTrans
//	y = alpha*Aᵀ*x + beta*y   if tA == blas.Trans or blas.ConjTrans
//
// where A is an m×n column-major matrix. The vector lengths follow the
// operation: x has n elements and y has m under blas.NoTrans, and the
// reverse under transposition. Scaling by beta happens before the
// accumulation pass, so beta == 0 clears y regardless of its prior
// contents.
func (Implementation) Dgemv(tA blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if m < 0 {
		panic(negativeM)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, m) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if m == 0 || n == 0 {
		return
	}
	lenX, lenY := n, m
	if tA != blas.NoTrans {
		lenX, lenY = m, n
	}
	if len(a) < lda*(n-1)+m {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (lenX-1)*incX) || (incX < 0 && len(x) <= (1-lenX)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (lenY-1)*incY) || (incY < 0 && len(y) <= (1-lenY)*incY) {
		panic(shortY)
	}
	if alpha == 0 && beta == 1 {
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = (-lenX + 1) * incX
	}
	if incY < 0 {
		ky = (-lenY + 1) * incY
	}

	if beta != 1 {
		iy := ky
		if beta == 0 {
			for i := 0; i < lenY; i++ {
				y[iy] = 0
				iy += incY
			}
		} else {
			for i := 0; i < lenY; i++ {
				y[iy] = beta * y[iy]
				iy += incY
			}
		}
	}
	if alpha == 0 {
		return
	}

	if tA == blas.NoTrans {
		// y += alpha * A * x, one column of A per element of x.
		if incX == 1 && incY == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					temp := alpha * x[j]
					for i := 0; i < m; i++ {
						y[i] += temp * a[i+j*lda]
					}
				}
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			if x[jx] != 0 {
				temp := alpha * x[jx]
				iy := ky
				for i := 0; i < m; i++ {
					y[iy] += temp * a[i+j*lda]
					iy += incY
				}
			}
			jx += incX
		}
		return
	}

	// y += alpha * Aᵀ * x, one dot product per column of A.
	if incX == 1 && incY == 1 {
		for j := 0; j < n; j++ {
			var temp float64
			for i := 0; i < m; i++ {
				temp += a[i+j*lda] * x[i]
			}
			y[j] += alpha * temp
		}
		return
	}
	jy := ky
	for j := 0; j < n; j++ {
		var temp float64
		ix := kx
		for i := 0; i < m; i++ {
			temp += a[i+j*lda] * x[ix]
			ix += incX
		}
		y[jy] += alpha * temp
		jy += incY
	}
}

// Dger performs the rank-one update
//
//	A += alpha * x * yᵀ
//
// where A is an m×n column-major matrix, x has m elements and y has n.
// Columns whose driving element y[j] is exactly zero are skipped.
func (Implementation) Dger(m, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	if m < 0 {
		panic(negativeM)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, m) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if m == 0 || n == 0 {
		return
	}
	if len(a) < lda*(n-1)+m {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (m-1)*incX) || (incX < 0 && len(x) <= (1-m)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if alpha == 0 {
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = (-m + 1) * incX
	}
	if incY < 0 {
		ky = (-n + 1) * incY
	}
	if incX == 1 && incY == 1 {
		for j := 0; j < n; j++ {
			if y[j] != 0 {
				temp := alpha * y[j]
				for i := 0; i < m; i++ {
					a[i+j*lda] += temp * x[i]
				}
			}
		}
		return
	}
	jy := ky
	for j := 0; j < n; j++ {
		if y[jy] != 0 {
			temp := alpha * y[jy]
			ix := kx
			for i := 0; i < m; i++ {
				a[i+j*lda] += temp * x[ix]
				ix += incX
			}
		}
		jy += incY
	}
}

// Dsymv computes
//
//	y = alpha*A*x + beta*y
//
// where A is an n×n symmetric matrix of which only the triangle selected
// by ul is referenced. Each stored column contributes both its explicit
// elements and, through a second running sum, the mirrored elements of the
// unstored triangle, so the other triangle is never read.
func (Implementation) Dsymv(ul blas.Uplo, n int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, n) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+n {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if (incY > 0 && len(y) <= (n-1)*incY) || (incY < 0 && len(y) <= (1-n)*incY) {
		panic(shortY)
	}
	if alpha == 0 && beta == 1 {
		return
	}

	var kx, ky int
	if incX < 0 {
		kx = (-n + 1) * incX
	}
	if incY < 0 {
		ky = (-n + 1) * incY
	}

	if beta != 1 {
		iy := ky
		if beta == 0 {
			for i := 0; i < n; i++ {
				y[iy] = 0
				iy += incY
			}
		} else {
			for i := 0; i < n; i++ {
				y[iy] = beta * y[iy]
				iy += incY
			}
		}
	}
	if alpha == 0 {
		return
	}

	if incX == 1 && incY == 1 {
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				temp1 := alpha * x[j]
				var temp2 float64
				for i := 0; i < j; i++ {
					y[i] += temp1 * a[i+j*lda]
					temp2 += a[i+j*lda] * x[i]
				}
				y[j] += temp1*a[j+j*lda] + alpha*temp2
			}
			return
		}
		for j := 0; j < n; j++ {
			temp1 := alpha * x[j]
			var temp2 float64
			y[j] += temp1 * a[j+j*lda]
			for i := j + 1; i < n; i++ {
				y[i] += temp1 * a[i+j*lda]
				temp2 += a[i+j*lda] * x[i]
			}
			y[j] += alpha * temp2
		}
		return
	}

	jx, jy := kx, ky
	if ul == blas.Upper {
		for j := 0; j < n; j++ {
			temp1 := alpha * x[jx]
			var temp2 float64
			ix, iy := kx, ky
			for i := 0; i < j; i++ {
				y[iy] += temp1 * a[i+j*lda]
				temp2 += a[i+j*lda] * x[ix]
				ix += incX
				iy += incY
			}
			y[jy] += temp1*a[j+j*lda] + alpha*temp2
			jx += incX
			jy += incY
		}
		return
	}
	for j := 0; j < n; j++ {
		temp1 := alpha * x[jx]
		var temp2 float64
		y[jy] += temp1 * a[j+j*lda]
		ix, iy := jx, jy
		for i := j + 1; i < n; i++ {
			ix += incX
			iy += incY
			y[iy] += temp1 * a[i+j*lda]
			temp2 += a[i+j*lda] * x[ix]
		}
		y[jy] += alpha * temp2
		jx += incX
		jy += incY
	}
}

// Dsyr performs the symmetric rank-one update
//
//	A += alpha * x * xᵀ
//
// touching only the triangle of the n×n matrix A selected by ul. Columns
// with a zero driving element are skipped.
func (Implementation) Dsyr(ul blas.Uplo, n int, alpha float64, x []float64, incX int, a []float64, lda int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, n) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+n {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}
	if alpha == 0 {
		return
	}

	var kx int
	if incX < 0 {
		kx = (-n + 1) * incX
	}
	if incX == 1 {
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					temp := alpha * x[j]
					for i := 0; i <= j; i++ {
						a[i+j*lda] += x[i] * temp
					}
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			if x[j] != 0 {
				temp := alpha * x[j]
				for i := j; i < n; i++ {
					a[i+j*lda] += x[i] * temp
				}
			}
		}
		return
	}

	jx := kx
	if ul == blas.Upper {
		for j := 0; j < n; j++ {
			if x[jx] != 0 {
				temp := alpha * x[jx]
				ix := kx
				for i := 0; i <= j; i++ {
					a[i+j*lda] += x[ix] * temp
					ix += incX
				}
			}
			jx += incX
		}
		return
	}
	for j := 0; j < n; j++ {
		if x[jx] != 0 {
			temp := alpha * x[jx]
			ix := jx
			for i := j; i < n; i++ {
				a[i+j*lda] += x[ix] * temp
				ix += incX
			}
		}
		jx += incX
	}
}

// Dsyr2 performs the symmetric rank-two update
//
//	A += alpha * (x*yᵀ + y*xᵀ)
//
// touching only the triangle of the n×n matrix A selected by ul. A column
// is skipped when both of its driving elements are zero.
func (Implementation) Dsyr2(ul blas.Uplo, n int, alpha float64, x []float64, incX int, y []float64, incY int, a []float64, lda int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, n) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if incY == 0 {
		panic(zeroIncY)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+n {
		panic(shortA)
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

	var kx, ky int
	if incX < 0 {
		kx = (-n + 1) * incX
	}
	if incY < 0 {
		ky = (-n + 1) * incY
	}
	if incX == 1 && incY == 1 {
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				if x[j] != 0 || y[j] != 0 {
					temp1 := alpha * y[j]
					temp2 := alpha * x[j]
					for i := 0; i <= j; i++ {
						a[i+j*lda] += x[i]*temp1 + y[i]*temp2
					}
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			if x[j] != 0 || y[j] != 0 {
				temp1 := alpha * y[j]
				temp2 := alpha * x[j]
				for i := j; i < n; i++ {
					a[i+j*lda] += x[i]*temp1 + y[i]*temp2
				}
			}
		}
		return
	}

	jx, jy := kx, ky
	if ul == blas.Upper {
		for j := 0; j < n; j++ {
			if x[jx] != 0 || y[jy] != 0 {
				temp1 := alpha * y[jy]
				temp2 := alpha * x[jx]
				ix, iy := kx, ky
				for i := 0; i <= j; i++ {
					a[i+j*lda] += x[ix]*temp1 + y[iy]*temp2
					ix += incX
					iy += incY
				}
			}
			jx += incX
			jy += incY
		}
		return
	}
	for j := 0; j < n; j++ {
		if x[jx] != 0 || y[jy] != 0 {
			temp1 := alpha * y[jy]
			temp2 := alpha * x[jx]
			ix, iy := jx, jy
			for i := j; i < n; i++ {
				a[i+j*lda] += x[ix]*temp1 + y[iy]*temp2
				ix += incX
				iy += incY
			}
		}
		jx += incX
		jy += incY
	}
}

// Dtrmv computes the in-place triangular matrix-vector product
//
//	x = A*x    if tA == blas.NoTrans
//	x = Aᵀ*x   if tA == blas.Trans or blas.ConjTrans
//
// where A is an n×n triangular matrix with the triangle selected by ul.
// With d == blas.Unit the diagonal of A is not referenced and is taken to
// be 1. The columns are walked in dependency order: forward over an upper
// triangle without transposition, backward over a lower one, and the
// reverse for the transposed forms.
func (Implementation) Dtrmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if d != blas.NonUnit && d != blas.Unit {
		panic(badDiag)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, n) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+n {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}

	nonUnit := d == blas.NonUnit
	var kx int
	if incX < 0 {
		kx = (-n + 1) * incX
	}

	if tA == blas.NoTrans {
		if ul == blas.Upper {
			if incX == 1 {
				for j := 0; j < n; j++ {
					if x[j] != 0 {
						temp := x[j]
						for i := 0; i < j; i++ {
							x[i] += temp * a[i+j*lda]
						}
						if nonUnit {
							x[j] = temp * a[j+j*lda]
						}
					}
				}
				return
			}
			jx := kx
			for j := 0; j < n; j++ {
				if x[jx] != 0 {
					temp := x[jx]
					ix := kx
					for i := 0; i < j; i++ {
						x[ix] += temp * a[i+j*lda]
						ix += incX
					}
					if nonUnit {
						x[jx] = temp * a[j+j*lda]
					}
				}
				jx += incX
			}
			return
		}
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				if x[j] != 0 {
					temp := x[j]
					for i := n - 1; i > j; i-- {
						x[i] += temp * a[i+j*lda]
					}
					if nonUnit {
						x[j] = temp * a[j+j*lda]
					}
				}
			}
			return
		}
		kx += (n - 1) * incX
		jx := kx
		for j := n - 1; j >= 0; j-- {
			if x[jx] != 0 {
				temp := x[jx]
				ix := kx
				for i := n - 1; i > j; i-- {
					x[ix] += temp * a[i+j*lda]
					ix -= incX
				}
				if nonUnit {
					x[jx] = temp * a[j+j*lda]
				}
			}
			jx -= incX
		}
		return
	}

	// x = Aᵀ*x: dot products against the stored triangle, walked so that
	// each x element is read before it is overwritten.
	if ul == blas.Upper {
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				temp := x[j]
				if nonUnit {
					temp *= a[j+j*lda]
				}
				for i := j - 1; i >= 0; i-- {
					temp += a[i+j*lda] * x[i]
				}
				x[j] = temp
			}
			return
		}
		kx += (n - 1) * incX
		jx := kx
		for j := n - 1; j >= 0; j-- {
			temp := x[jx]
			ix := jx
			if nonUnit {
				temp *= a[j+j*lda]
			}
			for i := j - 1; i >= 0; i-- {
				ix -= incX
				temp += a[i+j*lda] * x[ix]
			}
			x[jx] = temp
			jx -= incX
		}
		return
	}
	if incX == 1 {
		for j := 0; j < n; j++ {
			temp := x[j]
			if nonUnit {
				temp *= a[j+j*lda]
			}
			for i := j + 1; i < n; i++ {
				temp += a[i+j*lda] * x[i]
			}
			x[j] = temp
		}
		return
	}
	jx := kx
	for j := 0; j < n; j++ {
		temp := x[jx]
		ix := jx
		if nonUnit {
			temp *= a[j+j*lda]
		}
		for i := j + 1; i < n; i++ {
			ix += incX
			temp += a[i+j*lda] * x[ix]
		}
		x[jx] = temp
		jx += incX
	}
}

// Dtrsv solves one of the triangular systems
//
//	A*x = b    if tA == blas.NoTrans
//	Aᵀ*x = b   if tA == blas.Trans or blas.ConjTrans
//
// in place, with b supplied in x and overwritten by the solution. A is an
// n×n triangular matrix with the triangle selected by ul; with
// d == blas.Unit its diagonal is taken to be 1 and no division happens.
// No test for singularity is performed: a zero diagonal element of a
// non-unit A yields Inf or NaN by IEEE division.
func (Implementation) Dtrsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, a []float64, lda int, x []float64, incX int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if d != blas.NonUnit && d != blas.Unit {
		panic(badDiag)
	}
	if n < 0 {
		panic(negativeN)
	}
	if lda < max(1, n) {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+n {
		panic(shortA)
	}
	if (incX > 0 && len(x) <= (n-1)*incX) || (incX < 0 && len(x) <= (1-n)*incX) {
		panic(shortX)
	}

	nonUnit := d == blas.NonUnit
	var kx int
	if incX < 0 {
		kx = (-n + 1) * incX
	}

	if tA == blas.NoTrans {
		if ul == blas.Upper {
			// Back substitution.
			if incX == 1 {
				for j := n - 1; j >= 0; j-- {
					if x[j] != 0 {
						if nonUnit {
							x[j] /= a[j+j*lda]
						}
						temp := x[j]
						for i := j - 1; i >= 0; i-- {
							x[i] -= temp * a[i+j*lda]
						}
					}
				}
				return
			}
			kx += (n - 1) * incX
			jx := kx
			for j := n - 1; j >= 0; j-- {
				if x[jx] != 0 {
					if nonUnit {
						x[jx] /= a[j+j*lda]
					}
					temp := x[jx]
					ix := jx
					for i := j - 1; i >= 0; i-- {
						ix -= incX
						x[ix] -= temp * a[i+j*lda]
					}
				}
				jx -= incX
			}
			return
		}
		// Forward substitution.
		if incX == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					if nonUnit {
						x[j] /= a[j+j*lda]
					}
					temp := x[j]
					for i := j + 1; i < n; i++ {
						x[i] -= temp * a[i+j*lda]
					}
				}
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			if x[jx] != 0 {
				if nonUnit {
					x[jx] /= a[j+j*lda]
				}
				temp := x[jx]
				ix := jx
				for i := j + 1; i < n; i++ {
					ix += incX
					x[ix] -= temp * a[i+j*lda]
				}
			}
			jx += incX
		}
		return
	}

	if ul == blas.Upper {
		// Aᵀ is lower triangular: forward substitution.
		if incX == 1 {
			for j := 0; j < n; j++ {
				temp := x[j]
				for i := 0; i < j; i++ {
					temp -= a[i+j*lda] * x[i]
				}
				if nonUnit {
					temp /= a[j+j*lda]
				}
				x[j] = temp
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			temp := x[jx]
			ix := kx
			for i := 0; i < j; i++ {
				temp -= a[i+j*lda] * x[ix]
				ix += incX
			}
			if nonUnit {
				temp /= a[j+j*lda]
			}
			x[jx] = temp
			jx += incX
		}
		return
	}
	// Aᵀ is upper triangular: back substitution.
	if incX == 1 {
		for j := n - 1; j >= 0; j-- {
			temp := x[j]
			for i := n - 1; i > j; i-- {
				temp -= a[i+j*lda] * x[i]
			}
			if nonUnit {
				temp /= a[j+j*lda]
			}
			x[j] = temp
		}
		return
	}
	kx += (n - 1) * incX
	jx := kx
	for j := n - 1; j >= 0; j-- {
		temp := x[jx]
		ix := kx
		for i := n - 1; i > j; i-- {
			temp -= a[i+j*lda] * x[ix]
			ix -= incX
		}
		if nonUnit {
			temp /= a[j+j*lda]
		}
		x[jx] = temp
		jx -= incX
	}
}
