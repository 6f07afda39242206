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

// Dgbmv computes
//
//	y = alpha*A*x + beta*y    if tA == blas.NoTrans
//	y = alpha*Aᵀ*x + beta*y   if tA == blas.Trans or blas.ConjTrans
//
// where A is an m×n band matrix with kL sub-diagonals and kU
// super-diagonals. A is stored column by column in a band array with
// leading dimension lda >= kL+kU+1: element (i, j) sits in band row
// kU+i-j of column j, so the main diagonal occupies band row kU.
// Elements outside the band are never referenced.
func (Implementation) Dgbmv(tA blas.Transpose, m, n, kL, kU int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if m < 0 {
		panic(negativeM)
	}
	if n < 0 {
		panic(negativeN)
	}
	if kL < 0 {
		panic(negativeKL)
	}
	if kU < 0 {
		panic(negativeKU)
	}
	if lda < kL+kU+1 {
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
	if len(a) < lda*(n-1)+kL+kU+1 {
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
		// y += alpha * A * x, walking the in-band rows of each column.
		jx := kx
		if incY == 1 {
			for j := 0; j < n; j++ {
				temp := alpha * x[jx]
				off := kU - j
				for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
					y[i] += temp * a[off+i+j*lda]
				}
				jx += incX
			}
			return
		}
		for j := 0; j < n; j++ {
			temp := alpha * x[jx]
			iy := ky
			off := kU - j
			for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
				y[iy] += temp * a[off+i+j*lda]
				iy += incY
			}
			jx += incX
			// The first in-band row advances with j once the top of the
			// band clears row 0, and the y cursor start moves with it.
			if j >= kU {
				ky += incY
			}
		}
		return
	}

	// y += alpha * Aᵀ * x, one banded dot product per column.
	jy := ky
	if incX == 1 {
		for j := 0; j < n; j++ {
			var temp float64
			off := kU - j
			for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
				temp += a[off+i+j*lda] * x[i]
			}
			y[jy] += alpha * temp
			jy += incY
		}
		return
	}
	for j := 0; j < n; j++ {
		var temp float64
		ix := kx
		off := kU - j
		for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
			temp += a[off+i+j*lda] * x[ix]
			ix += incX
		}
		y[jy] += alpha * temp
		jy += incY
		if j >= kU {
			kx += incX
		}
	}
}

// Dsbmv computes
//
//	y = alpha*A*x + beta*y
//
// where A is an n×n symmetric band matrix with k super-diagonals, of
// which only the triangle selected by ul is stored. With ul ==
// blas.Upper element (i, j), i <= j, sits in band row k+i-j of column j
// and the diagonal occupies band row k; with ul == blas.Lower element
// (i, j), i >= j, sits in band row i-j and the diagonal occupies band
// row 0. The leading dimension must satisfy lda >= k+1.
func (Implementation) Dsbmv(ul blas.Uplo, n, k int, alpha float64, a []float64, lda int, x []float64, incX int, beta float64, y []float64, incY int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
	}
	if k < 0 {
		panic(negativeK)
	}
	if lda < k+1 {
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
	if len(a) < lda*(n-1)+k+1 {
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

	if ul == blas.Upper {
		if incX == 1 && incY == 1 {
			for j := 0; j < n; j++ {
				temp1 := alpha * x[j]
				var temp2 float64
				off := k - j
				for i := max(0, j-k); i < j; i++ {
					y[i] += temp1 * a[off+i+j*lda]
					temp2 += a[off+i+j*lda] * x[i]
				}
				y[j] += temp1*a[k+j*lda] + alpha*temp2
			}
			return
		}
		jx, jy := kx, ky
		for j := 0; j < n; j++ {
			temp1 := alpha * x[jx]
			var temp2 float64
			ix, iy := kx, ky
			off := k - j
			for i := max(0, j-k); i < j; i++ {
				y[iy] += temp1 * a[off+i+j*lda]
				temp2 += a[off+i+j*lda] * x[ix]
				ix += incX
				iy += incY
			}
			y[jy] += temp1*a[k+j*lda] + alpha*temp2
			jx += incX
			jy += incY
			if j >= k {
				kx += incX
				ky += incY
			}
		}
		return
	}

	if incX == 1 && incY == 1 {
		for j := 0; j < n; j++ {
			temp1 := alpha * x[j]
			var temp2 float64
			y[j] += temp1 * a[j*lda]
			for i := j + 1; i <= min(n-1, j+k); i++ {
				y[i] += temp1 * a[i-j+j*lda]
				temp2 += a[i-j+j*lda] * x[i]
			}
			y[j] += alpha * temp2
		}
		return
	}
	jx, jy := kx, ky
	for j := 0; j < n; j++ {
		temp1 := alpha * x[jx]
		var temp2 float64
		y[jy] += temp1 * a[j*lda]
		ix, iy := jx, jy
		for i := j + 1; i <= min(n-1, j+k); i++ {
			ix += incX
			iy += incY
			y[iy] += temp1 * a[i-j+j*lda]
			temp2 += a[i-j+j*lda] * x[ix]
		}
		y[jy] += alpha * temp2
		jx += incX
		jy += incY
	}
}

// Dtbmv computes the in-place banded triangular matrix-vector product
//
//	x = A*x    if tA == blas.NoTrans
//	x = Aᵀ*x   if tA == blas.Trans or blas.ConjTrans
//
// where A is an n×n triangular band matrix with k diagonals beyond the
// main one, stored in the band layout described at Dsbmv for the
// triangle selected by ul. With d == blas.Unit the diagonal band row is
// not referenced and is taken to be all ones.
func (Implementation) Dtbmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int) {
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
	if k < 0 {
		panic(negativeK)
	}
	if lda < k+1 {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+k+1 {
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
						off := k - j
						for i := max(0, j-k); i < j; i++ {
							x[i] += temp * a[off+i+j*lda]
						}
						if nonUnit {
							x[j] *= a[k+j*lda]
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
					off := k - j
					for i := max(0, j-k); i < j; i++ {
						x[ix] += temp * a[off+i+j*lda]
						ix += incX
					}
					if nonUnit {
						x[jx] *= a[k+j*lda]
					}
				}
				jx += incX
				if j >= k {
					kx += incX
				}
			}
			return
		}
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				if x[j] != 0 {
					temp := x[j]
					for i := min(n-1, j+k); i > j; i-- {
						x[i] += temp * a[i-j+j*lda]
					}
					if nonUnit {
						x[j] *= a[j*lda]
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
				for i := min(n-1, j+k); i > j; i-- {
					x[ix] += temp * a[i-j+j*lda]
					ix -= incX
				}
				if nonUnit {
					x[jx] *= a[j*lda]
				}
			}
			jx -= incX
			if n-1-j >= k {
				kx -= incX
			}
		}
		return
	}

	// x = Aᵀ*x. The x cursor for the off-diagonal run starts one step
	// inside the band, so kx slides every column here rather than only
	// once the band clears the matrix edge.
	if ul == blas.Upper {
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				temp := x[j]
				if nonUnit {
					temp *= a[k+j*lda]
				}
				off := k - j
				for i := j - 1; i >= max(0, j-k); i-- {
					temp += a[off+i+j*lda] * x[i]
				}
				x[j] = temp
			}
			return
		}
		kx += (n - 1) * incX
		jx := kx
		for j := n - 1; j >= 0; j-- {
			temp := x[jx]
			kx -= incX
			ix := kx
			if nonUnit {
				temp *= a[k+j*lda]
			}
			off := k - j
			for i := j - 1; i >= max(0, j-k); i-- {
				temp += a[off+i+j*lda] * x[ix]
				ix -= incX
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
				temp *= a[j*lda]
			}
			for i := j + 1; i <= min(n-1, j+k); i++ {
				temp += a[i-j+j*lda] * x[i]
			}
			x[j] = temp
		}
		return
	}
	jx := kx
	for j := 0; j < n; j++ {
		temp := x[jx]
		kx += incX
		ix := kx
		if nonUnit {
			temp *= a[j*lda]
		}
		for i := j + 1; i <= min(n-1, j+k); i++ {
			temp += a[i-j+j*lda] * x[ix]
			ix += incX
		}
		x[jx] = temp
		jx += incX
	}
}

// Dtbsv solves one of the banded triangular systems
//
//	A*x = b    if tA == blas.NoTrans
//	Aᵀ*x = b   if tA == blas.Trans or blas.ConjTrans
//
// in place, with b supplied in x and overwritten by the solution. A is
// an n×n triangular band matrix with k diagonals beyond the main one,
// stored as described at Dsbmv for the triangle selected by ul; with
// d == blas.Unit the diagonal is taken to be 1. No test for
// singularity is performed.
func (Implementation) Dtbsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n, k int, a []float64, lda int, x []float64, incX int) {
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
	if k < 0 {
		panic(negativeK)
	}
	if lda < k+1 {
		panic(badLdA)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(a) < lda*(n-1)+k+1 {
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
			// Back substitution within the band.
			if incX == 1 {
				for j := n - 1; j >= 0; j-- {
					if x[j] != 0 {
						off := k - j
						if nonUnit {
							x[j] /= a[k+j*lda]
						}
						temp := x[j]
						for i := j - 1; i >= max(0, j-k); i-- {
							x[i] -= temp * a[off+i+j*lda]
						}
					}
				}
				return
			}
			kx += (n - 1) * incX
			jx := kx
			for j := n - 1; j >= 0; j-- {
				kx -= incX
				if x[jx] != 0 {
					ix := kx
					off := k - j
					if nonUnit {
						x[jx] /= a[k+j*lda]
					}
					temp := x[jx]
					for i := j - 1; i >= max(0, j-k); i-- {
						x[ix] -= temp * a[off+i+j*lda]
						ix -= incX
					}
				}
				jx -= incX
			}
			return
		}
		// Forward substitution within the band.
		if incX == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					if nonUnit {
						x[j] /= a[j*lda]
					}
					temp := x[j]
					for i := j + 1; i <= min(n-1, j+k); i++ {
						x[i] -= temp * a[i-j+j*lda]
					}
				}
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			kx += incX
			if x[jx] != 0 {
				ix := kx
				if nonUnit {
					x[jx] /= a[j*lda]
				}
				temp := x[jx]
				for i := j + 1; i <= min(n-1, j+k); i++ {
					x[ix] -= temp * a[i-j+j*lda]
					ix += incX
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
				off := k - j
				for i := max(0, j-k); i < j; i++ {
					temp -= a[off+i+j*lda] * x[i]
				}
				if nonUnit {
					temp /= a[k+j*lda]
				}
				x[j] = temp
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			temp := x[jx]
			ix := kx
			off := k - j
			for i := max(0, j-k); i < j; i++ {
				temp -= a[off+i+j*lda] * x[ix]
				ix += incX
			}
			if nonUnit {
				temp /= a[k+j*lda]
			}
			x[jx] = temp
			jx += incX
			if j >= k {
				kx += incX
			}
		}
		return
	}
	// Aᵀ is upper triangular: back substitution.
	if incX == 1 {
		for j := n - 1; j >= 0; j-- {
			temp := x[j]
			for i := min(n-1, j+k); i > j; i-- {
				temp -= a[i-j+j*lda] * x[i]
			}
			if nonUnit {
				temp /= a[j*lda]
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
		for i := min(n-1, j+k); i > j; i-- {
			temp -= a[i-j+j*lda] * x[ix]
			ix -= incX
		}
		if nonUnit {
			temp /= a[j*lda]
		}
		x[jx] = temp
		jx -= incX
		if n-1-j >= k {
			kx -= incX
		}
	}
}
