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

// Dspmv computes
//
//	y = alpha*A*x + beta*y
//
// where A is an n×n symmetric matrix in packed storage: the triangle
// selected by ul is laid out column by column in ap, which must hold at
// least n*(n+1)/2 elements. A cursor into ap advances by j+1 per column
// for the upper triangle and by n-j for the lower, so no index
// arithmetic on the full matrix shape is ever needed.
func (Implementation) Dspmv(ul blas.Uplo, n int, alpha float64, ap, x []float64, incX int, beta float64, y []float64, incY int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
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
	if len(ap) < n*(n+1)/2 {
		panic(shortAP)
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

	kk := 0
	if ul == blas.Upper {
		if incX == 1 && incY == 1 {
			for j := 0; j < n; j++ {
				temp1 := alpha * x[j]
				var temp2 float64
				k := kk
				for i := 0; i < j; i++ {
					y[i] += temp1 * ap[k]
					temp2 += ap[k] * x[i]
					k++
				}
				y[j] += temp1*ap[kk+j] + alpha*temp2
				kk += j + 1
			}
			return
		}
		jx, jy := kx, ky
		for j := 0; j < n; j++ {
			temp1 := alpha * x[jx]
			var temp2 float64
			ix, iy := kx, ky
			for k := kk; k < kk+j; k++ {
				y[iy] += temp1 * ap[k]
				temp2 += ap[k] * x[ix]
				ix += incX
				iy += incY
			}
			y[jy] += temp1*ap[kk+j] + alpha*temp2
			jx += incX
			jy += incY
			kk += j + 1
		}
		return
	}

	if incX == 1 && incY == 1 {
		for j := 0; j < n; j++ {
			temp1 := alpha * x[j]
			var temp2 float64
			y[j] += temp1 * ap[kk]
			k := kk + 1
			for i := j + 1; i < n; i++ {
				y[i] += temp1 * ap[k]
				temp2 += ap[k] * x[i]
				k++
			}
			y[j] += alpha * temp2
			kk += n - j
		}
		return
	}
	jx, jy := kx, ky
	for j := 0; j < n; j++ {
		temp1 := alpha * x[jx]
		var temp2 float64
		y[jy] += temp1 * ap[kk]
		ix, iy := jx, jy
		for k := kk + 1; k < kk+n-j; k++ {
			ix += incX
			iy += incY
			y[iy] += temp1 * ap[k]
			temp2 += ap[k] * x[ix]
		}
		y[jy] += alpha * temp2
		jx += incX
		jy += incY
		kk += n - j
	}
}

// Dspr performs the symmetric packed rank-one update
//
//	A += alpha * x * xᵀ
//
// where only the triangle selected by ul is stored, column by column,
// in ap. Columns with a zero driving element are skipped.
func (Implementation) Dspr(ul blas.Uplo, n int, alpha float64, x []float64, incX int, ap []float64) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
	}
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(ap) < n*(n+1)/2 {
		panic(shortAP)
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
	kk := 0
	if ul == blas.Upper {
		if incX == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					temp := alpha * x[j]
					k := kk
					for i := 0; i <= j; i++ {
						ap[k] += x[i] * temp
						k++
					}
				}
				kk += j + 1
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			if x[jx] != 0 {
				temp := alpha * x[jx]
				ix := kx
				for k := kk; k <= kk+j; k++ {
					ap[k] += x[ix] * temp
					ix += incX
				}
			}
			jx += incX
			kk += j + 1
		}
		return
	}

	if incX == 1 {
		for j := 0; j < n; j++ {
			if x[j] != 0 {
				temp := alpha * x[j]
				k := kk
				for i := j; i < n; i++ {
					ap[k] += x[i] * temp
					k++
				}
			}
			kk += n - j
		}
		return
	}
	jx := kx
	for j := 0; j < n; j++ {
		if x[jx] != 0 {
			temp := alpha * x[jx]
			ix := jx
			for k := kk; k < kk+n-j; k++ {
				ap[k] += x[ix] * temp
				ix += incX
			}
		}
		jx += incX
		kk += n - j
	}
}

// Dspr2 performs the symmetric packed rank-two update
//
//	A += alpha * (x*yᵀ + y*xᵀ)
//
// where only the triangle selected by ul is stored, column by column,
// in ap. A column is skipped when both of its driving elements are
// zero.
func (Implementation) Dspr2(ul blas.Uplo, n int, alpha float64, x []float64, incX int, y []float64, incY int, ap []float64) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if n < 0 {
		panic(negativeN)
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
	if len(ap) < n*(n+1)/2 {
		panic(shortAP)
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
	kk := 0
	if ul == blas.Upper {
		if incX == 1 && incY == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 || y[j] != 0 {
					temp1 := alpha * y[j]
					temp2 := alpha * x[j]
					k := kk
					for i := 0; i <= j; i++ {
						ap[k] += x[i]*temp1 + y[i]*temp2
						k++
					}
				}
				kk += j + 1
			}
			return
		}
		jx, jy := kx, ky
		for j := 0; j < n; j++ {
			if x[jx] != 0 || y[jy] != 0 {
				temp1 := alpha * y[jy]
				temp2 := alpha * x[jx]
				ix, iy := kx, ky
				for k := kk; k <= kk+j; k++ {
					ap[k] += x[ix]*temp1 + y[iy]*temp2
					ix += incX
					iy += incY
				}
			}
			jx += incX
			jy += incY
			kk += j + 1
		}
		return
	}

	if incX == 1 && incY == 1 {
		for j := 0; j < n; j++ {
			if x[j] != 0 || y[j] != 0 {
				temp1 := alpha * y[j]
				temp2 := alpha * x[j]
				k := kk
				for i := j; i < n; i++ {
					ap[k] += x[i]*temp1 + y[i]*temp2
					k++
				}
			}
			kk += n - j
		}
		return
	}
	jx, jy := kx, ky
	for j := 0; j < n; j++ {
		if x[jx] != 0 || y[jy] != 0 {
			temp1 := alpha * y[jy]
			temp2 := alpha * x[jx]
			ix, iy := jx, jy
			for k := kk; k < kk+n-j; k++ {
				ap[k] += x[ix]*temp1 + y[iy]*temp2
				ix += incX
				iy += incY
			}
		}
		jx += incX
		jy += incY
		kk += n - j
	}
}

// Dtpmv computes the in-place packed triangular matrix-vector product
//
//	x = A*x    if tA == blas.NoTrans
//	x = Aᵀ*x   if tA == blas.Trans or blas.ConjTrans
//
// where A is an n×n triangular matrix with the triangle selected by ul
// stored column by column in ap. With d == blas.Unit the diagonal
// entries of ap are not referenced and are taken to be 1.
func (Implementation) Dtpmv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, ap, x []float64, incX int) {
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
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(ap) < n*(n+1)/2 {
		panic(shortAP)
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
			kk := 0
			if incX == 1 {
				for j := 0; j < n; j++ {
					if x[j] != 0 {
						temp := x[j]
						k := kk
						for i := 0; i < j; i++ {
							x[i] += temp * ap[k]
							k++
						}
						if nonUnit {
							x[j] *= ap[kk+j]
						}
					}
					kk += j + 1
				}
				return
			}
			jx := kx
			for j := 0; j < n; j++ {
				if x[jx] != 0 {
					temp := x[jx]
					ix := kx
					for k := kk; k < kk+j; k++ {
						x[ix] += temp * ap[k]
						ix += incX
					}
					if nonUnit {
						x[jx] *= ap[kk+j]
					}
				}
				jx += incX
				kk += j + 1
			}
			return
		}
		// The lower triangle is walked backward, with the ap cursor
		// starting at the last stored element. The diagonal of column j
		// then sits n-j-1 slots behind the cursor.
		kk := n*(n+1)/2 - 1
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				if x[j] != 0 {
					temp := x[j]
					k := kk
					for i := n - 1; i > j; i-- {
						x[i] += temp * ap[k]
						k--
					}
					if nonUnit {
						x[j] *= ap[kk-n+j+1]
					}
				}
				kk -= n - j
			}
			return
		}
		kx += (n - 1) * incX
		jx := kx
		for j := n - 1; j >= 0; j-- {
			if x[jx] != 0 {
				temp := x[jx]
				ix := kx
				for k := kk; k > kk-(n-j-1); k-- {
					x[ix] += temp * ap[k]
					ix -= incX
				}
				if nonUnit {
					x[jx] *= ap[kk-n+j+1]
				}
			}
			jx -= incX
			kk -= n - j
		}
		return
	}

	if ul == blas.Upper {
		kk := n*(n+1)/2 - 1
		if incX == 1 {
			for j := n - 1; j >= 0; j-- {
				temp := x[j]
				if nonUnit {
					temp *= ap[kk]
				}
				k := kk - 1
				for i := j - 1; i >= 0; i-- {
					temp += ap[k] * x[i]
					k--
				}
				x[j] = temp
				kk -= j + 1
			}
			return
		}
		jx := kx + (n-1)*incX
		for j := n - 1; j >= 0; j-- {
			temp := x[jx]
			ix := jx
			if nonUnit {
				temp *= ap[kk]
			}
			for k := kk - 1; k >= kk-j; k-- {
				ix -= incX
				temp += ap[k] * x[ix]
			}
			x[jx] = temp
			jx -= incX
			kk -= j + 1
		}
		return
	}
	kk := 0
	if incX == 1 {
		for j := 0; j < n; j++ {
			temp := x[j]
			if nonUnit {
				temp *= ap[kk]
			}
			k := kk + 1
			for i := j + 1; i < n; i++ {
				temp += ap[k] * x[i]
				k++
			}
			x[j] = temp
			kk += n - j
		}
		return
	}
	jx := kx
	for j := 0; j < n; j++ {
		temp := x[jx]
		ix := jx
		if nonUnit {
			temp *= ap[kk]
		}
		for k := kk + 1; k < kk+n-j; k++ {
			ix += incX
			temp += ap[k] * x[ix]
		}
		x[jx] = temp
		jx += incX
		kk += n - j
	}
}

// Dtpsv solves one of the packed triangular systems
//
//	A*x = b    if tA == blas.NoTrans
//	Aᵀ*x = b   if tA == blas.Trans or blas.ConjTrans
//
// in place, with b supplied in x and overwritten by the solution. A is
// an n×n triangular matrix with the triangle selected by ul stored
// column by column in ap; with d == blas.Unit its diagonal is taken to
// be 1. No test for singularity is performed.
func (Implementation) Dtpsv(ul blas.Uplo, tA blas.Transpose, d blas.Diag, n int, ap, x []float64, incX int) {
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
	if incX == 0 {
		panic(zeroIncX)
	}
	if n == 0 {
		return
	}
	if len(ap) < n*(n+1)/2 {
		panic(shortAP)
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
			kk := n*(n+1)/2 - 1
			if incX == 1 {
				for j := n - 1; j >= 0; j-- {
					if x[j] != 0 {
						if nonUnit {
							x[j] /= ap[kk]
						}
						temp := x[j]
						k := kk - 1
						for i := j - 1; i >= 0; i-- {
							x[i] -= temp * ap[k]
							k--
						}
					}
					kk -= j + 1
				}
				return
			}
			jx := kx + (n-1)*incX
			for j := n - 1; j >= 0; j-- {
				if x[jx] != 0 {
					if nonUnit {
						x[jx] /= ap[kk]
					}
					temp := x[jx]
					ix := jx
					for k := kk - 1; k >= kk-j; k-- {
						ix -= incX
						x[ix] -= temp * ap[k]
					}
				}
				jx -= incX
				kk -= j + 1
			}
			return
		}
		// Forward substitution.
		kk := 0
		if incX == 1 {
			for j := 0; j < n; j++ {
				if x[j] != 0 {
					if nonUnit {
						x[j] /= ap[kk]
					}
					temp := x[j]
					k := kk + 1
					for i := j + 1; i < n; i++ {
						x[i] -= temp * ap[k]
						k++
					}
				}
				kk += n - j
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			if x[jx] != 0 {
				if nonUnit {
					x[jx] /= ap[kk]
				}
				temp := x[jx]
				ix := jx
				for k := kk + 1; k < kk+n-j; k++ {
					ix += incX
					x[ix] -= temp * ap[k]
				}
			}
			jx += incX
			kk += n - j
		}
		return
	}

	if ul == blas.Upper {
		// Aᵀ is lower triangular: forward substitution.
		kk := 0
		if incX == 1 {
			for j := 0; j < n; j++ {
				temp := x[j]
				k := kk
				for i := 0; i < j; i++ {
					temp -= ap[k] * x[i]
					k++
				}
				if nonUnit {
					temp /= ap[kk+j]
				}
				x[j] = temp
				kk += j + 1
			}
			return
		}
		jx := kx
		for j := 0; j < n; j++ {
			temp := x[jx]
			ix := kx
			for k := kk; k < kk+j; k++ {
				temp -= ap[k] * x[ix]
				ix += incX
			}
			if nonUnit {
				temp /= ap[kk+j]
			}
			x[jx] = temp
			jx += incX
			kk += j + 1
		}
		return
	}
	// Aᵀ is upper triangular: back substitution.
	kk := n*(n+1)/2 - 1
	if incX == 1 {
		for j := n - 1; j >= 0; j-- {
			temp := x[j]
			k := kk
			for i := n - 1; i > j; i-- {
				temp -= ap[k] * x[i]
				k--
			}
			if nonUnit {
				temp /= ap[kk-n+j+1]
			}
			x[j] = temp
			kk -= n - j
		}
		return
	}
	kx += (n - 1) * incX
	jx := kx
	for j := n - 1; j >= 0; j-- {
		temp := x[jx]
		ix := kx
		for k := kk; k > kk-(n-j-1); k-- {
			temp -= ap[k] * x[ix]
			ix -= incX
		}
		if nonUnit {
			temp /= ap[kk-n+j+1]
		}
		x[jx] = temp
		jx -= incX
		kk -= n - j
	}
}
