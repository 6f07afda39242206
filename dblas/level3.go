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

// Dgemm computes
//
//	C = alpha*op(A)*op(B) + beta*C
//
// where op(X) is X or Xᵀ according to the corresponding transpose
// argument, op(A) is m×k, op(B) is k×n and C is m×n, all column-major.
// When alpha is zero, or k is zero, neither A nor B is referenced and C
// is scaled by beta alone. A beta of zero clears C without reading it.
func (Implementation) Dgemm(tA, tB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if tB != blas.NoTrans && tB != blas.Trans && tB != blas.ConjTrans {
		panic(badTranspose)
	}
	if m < 0 {
		panic(negativeM)
	}
	if n < 0 {
		panic(negativeN)
	}
	if k < 0 {
		panic(negativeK)
	}
	notA := tA == blas.NoTrans
	notB := tB == blas.NoTrans
	if notA {
		if lda < max(1, m) {
			panic(badLdA)
		}
	} else {
		if lda < max(1, k) {
			panic(badLdA)
		}
	}
	if notB {
		if ldb < max(1, k) {
			panic(badLdB)
		}
	} else {
		if ldb < max(1, n) {
			panic(badLdB)
		}
	}
	if ldc < max(1, m) {
		panic(badLdC)
	}
	if m == 0 || n == 0 {
		return
	}
	// With k == 0 neither A nor B holds referenced elements, so their
	// lengths are unconstrained.
	if k > 0 {
		if notA {
			if len(a) < lda*(k-1)+m {
				panic(shortA)
			}
		} else {
			if len(a) < lda*(m-1)+k {
				panic(shortA)
			}
		}
		if notB {
			if len(b) < ldb*(n-1)+k {
				panic(shortB)
			}
		} else {
			if len(b) < ldb*(k-1)+n {
				panic(shortB)
			}
		}
	}
	if len(c) < ldc*(n-1)+m {
		panic(shortC)
	}
	if (alpha == 0 || k == 0) && beta == 1 {
		return
	}

	if alpha == 0 {
		if beta == 0 {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = 0
				}
			}
		} else {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
		}
		return
	}

	if notB {
		if notA {
			// C = alpha*A*B + beta*C.
			for j := 0; j < n; j++ {
				if beta == 0 {
					for i := 0; i < m; i++ {
						c[i+j*ldc] = 0
					}
				} else if beta != 1 {
					for i := 0; i < m; i++ {
						c[i+j*ldc] = beta * c[i+j*ldc]
					}
				}
				for l := 0; l < k; l++ {
					temp := alpha * b[l+j*ldb]
					for i := 0; i < m; i++ {
						c[i+j*ldc] += temp * a[i+l*lda]
					}
				}
			}
			return
		}
		// C = alpha*Aᵀ*B + beta*C.
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				var temp float64
				for l := 0; l < k; l++ {
					temp += a[l+i*lda] * b[l+j*ldb]
				}
				if beta == 0 {
					c[i+j*ldc] = alpha * temp
				} else {
					c[i+j*ldc] = alpha*temp + beta*c[i+j*ldc]
				}
			}
		}
		return
	}
	if notA {
		// C = alpha*A*Bᵀ + beta*C.
		for j := 0; j < n; j++ {
			if beta == 0 {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = 0
				}
			} else if beta != 1 {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
			for l := 0; l < k; l++ {
				temp := alpha * b[j+l*ldb]
				for i := 0; i < m; i++ {
					c[i+j*ldc] += temp * a[i+l*lda]
				}
			}
		}
		return
	}
	// C = alpha*Aᵀ*Bᵀ + beta*C.
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var temp float64
			for l := 0; l < k; l++ {
				temp += a[l+i*lda] * b[j+l*ldb]
			}
			if beta == 0 {
				c[i+j*ldc] = alpha * temp
			} else {
				c[i+j*ldc] = alpha*temp + beta*c[i+j*ldc]
			}
		}
	}
}

// Dgemmtr computes
//
//	C = alpha*op(A)*op(B) + beta*C
//
// like Dgemm with op(A) n×k and op(B) k×n, but touches only the
// triangle of the n×n matrix C selected by ul. The opposite triangle is
// neither read nor written. Unlike Dgemm there is no scalar quick
// return: with alpha == 0 and beta == 1 each triangle element is still
// multiplied by beta and stored back.
func (Implementation) Dgemmtr(ul blas.Uplo, tA, tB blas.Transpose, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if tB != blas.NoTrans && tB != blas.Trans && tB != blas.ConjTrans {
		panic(badTranspose)
	}
	if n < 0 {
		panic(negativeN)
	}
	if k < 0 {
		panic(negativeK)
	}
	notA := tA == blas.NoTrans
	notB := tB == blas.NoTrans
	if notA {
		if lda < max(1, n) {
			panic(badLdA)
		}
	} else {
		if lda < max(1, k) {
			panic(badLdA)
		}
	}
	if notB {
		if ldb < max(1, k) {
			panic(badLdB)
		}
	} else {
		if ldb < max(1, n) {
			panic(badLdB)
		}
	}
	if ldc < max(1, n) {
		panic(badLdC)
	}
	if n == 0 {
		return
	}
	if k > 0 {
		if notA {
			if len(a) < lda*(k-1)+n {
				panic(shortA)
			}
		} else {
			if len(a) < lda*(n-1)+k {
				panic(shortA)
			}
		}
		if notB {
			if len(b) < ldb*(n-1)+k {
				panic(shortB)
			}
		} else {
			if len(b) < ldb*(k-1)+n {
				panic(shortB)
			}
		}
	}
	if len(c) < ldc*(n-1)+n {
		panic(shortC)
	}

	upper := ul == blas.Upper
	if alpha == 0 {
		if beta == 0 {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			}
		} else {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
		}
		return
	}

	if notB {
		if notA {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				if beta == 0 {
					for i := istart; i <= istop; i++ {
						c[i+j*ldc] = 0
					}
				} else if beta != 1 {
					for i := istart; i <= istop; i++ {
						c[i+j*ldc] = beta * c[i+j*ldc]
					}
				}
				for l := 0; l < k; l++ {
					temp := alpha * b[l+j*ldb]
					for i := istart; i <= istop; i++ {
						c[i+j*ldc] += temp * a[i+l*lda]
					}
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			istart, istop := colTriangle(upper, j, n)
			for i := istart; i <= istop; i++ {
				var temp float64
				for l := 0; l < k; l++ {
					temp += a[l+i*lda] * b[l+j*ldb]
				}
				if beta == 0 {
					c[i+j*ldc] = alpha * temp
				} else {
					c[i+j*ldc] = alpha*temp + beta*c[i+j*ldc]
				}
			}
		}
		return
	}
	if notA {
		for j := 0; j < n; j++ {
			istart, istop := colTriangle(upper, j, n)
			if beta == 0 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			} else if beta != 1 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
			for l := 0; l < k; l++ {
				temp := alpha * b[j+l*ldb]
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] += temp * a[i+l*lda]
				}
			}
		}
		return
	}
	for j := 0; j < n; j++ {
		istart, istop := colTriangle(upper, j, n)
		for i := istart; i <= istop; i++ {
			var temp float64
			for l := 0; l < k; l++ {
				temp += a[l+i*lda] * b[j+l*ldb]
			}
			if beta == 0 {
				c[i+j*ldc] = alpha * temp
			} else {
				c[i+j*ldc] = alpha*temp + beta*c[i+j*ldc]
			}
		}
	}
}

// colTriangle returns the inclusive row range of column j that lies in
// the selected triangle of an n×n matrix.
func colTriangle(upper bool, j, n int) (istart, istop int) {
	if upper {
		return 0, j
	}
	return j, n - 1
}

// Dsymm computes
//
//	C = alpha*A*B + beta*C   if s == blas.Left
//	C = alpha*B*A + beta*C   if s == blas.Right
//
// where A is a symmetric matrix of which only the triangle selected by
// ul is referenced, B and C are m×n, and A is m×m or n×n according to
// the side.
func (Implementation) Dsymm(s blas.Side, ul blas.Uplo, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if s != blas.Left && s != blas.Right {
		panic(badSide)
	}
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if m < 0 {
		panic(negativeM)
	}
	if n < 0 {
		panic(negativeN)
	}
	ka := n
	if s == blas.Left {
		ka = m
	}
	if lda < max(1, ka) {
		panic(badLdA)
	}
	if ldb < max(1, m) {
		panic(badLdB)
	}
	if ldc < max(1, m) {
		panic(badLdC)
	}
	if m == 0 || n == 0 {
		return
	}
	if len(a) < lda*(ka-1)+ka {
		panic(shortA)
	}
	if len(b) < ldb*(n-1)+m {
		panic(shortB)
	}
	if len(c) < ldc*(n-1)+m {
		panic(shortC)
	}
	if alpha == 0 && beta == 1 {
		return
	}

	if alpha == 0 {
		if beta == 0 {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = 0
				}
			}
		} else {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
		}
		return
	}

	if s == blas.Left {
		// C = alpha*A*B + beta*C. Each stored column of A feeds both
		// the elements above the diagonal and, mirrored, those below.
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					temp1 := alpha * b[i+j*ldb]
					var temp2 float64
					for k := 0; k < i; k++ {
						c[k+j*ldc] += temp1 * a[k+i*lda]
						temp2 += a[k+i*lda] * b[k+j*ldb]
					}
					if beta == 0 {
						c[i+j*ldc] = temp1*a[i+i*lda] + alpha*temp2
					} else {
						c[i+j*ldc] = beta*c[i+j*ldc] + temp1*a[i+i*lda] + alpha*temp2
					}
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := m - 1; i >= 0; i-- {
				temp1 := alpha * b[i+j*ldb]
				var temp2 float64
				for k := i + 1; k < m; k++ {
					c[k+j*ldc] += temp1 * a[k+i*lda]
					temp2 += a[k+i*lda] * b[k+j*ldb]
				}
				if beta == 0 {
					c[i+j*ldc] = temp1*a[i+i*lda] + alpha*temp2
				} else {
					c[i+j*ldc] = beta*c[i+j*ldc] + temp1*a[i+i*lda] + alpha*temp2
				}
			}
		}
		return
	}

	// C = alpha*B*A + beta*C. Column j of C collects column j of B
	// scaled by the diagonal, then every other column of B scaled by
	// the matching stored element of A, reading whichever triangle
	// holds it.
	for j := 0; j < n; j++ {
		temp1 := alpha * a[j+j*lda]
		if beta == 0 {
			for i := 0; i < m; i++ {
				c[i+j*ldc] = temp1 * b[i+j*ldb]
			}
		} else {
			for i := 0; i < m; i++ {
				c[i+j*ldc] = beta*c[i+j*ldc] + temp1*b[i+j*ldb]
			}
		}
		for k := 0; k < j; k++ {
			if ul == blas.Upper {
				temp1 = alpha * a[k+j*lda]
			} else {
				temp1 = alpha * a[j+k*lda]
			}
			for i := 0; i < m; i++ {
				c[i+j*ldc] += temp1 * b[i+k*ldb]
			}
		}
		for k := j + 1; k < n; k++ {
			if ul == blas.Upper {
				temp1 = alpha * a[j+k*lda]
			} else {
				temp1 = alpha * a[k+j*lda]
			}
			for i := 0; i < m; i++ {
				c[i+j*ldc] += temp1 * b[i+k*ldb]
			}
		}
	}
}

// Dsyrk performs the symmetric rank-k update
//
//	C = alpha*A*Aᵀ + beta*C   if tA == blas.NoTrans
//	C = alpha*Aᵀ*A + beta*C   if tA == blas.Trans or blas.ConjTrans
//
// touching only the triangle of the n×n matrix C selected by ul. A is
// n×k under blas.NoTrans and k×n otherwise.
func (Implementation) Dsyrk(ul blas.Uplo, tA blas.Transpose, n, k int, alpha float64, a []float64, lda int, beta float64, c []float64, ldc int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if n < 0 {
		panic(negativeN)
	}
	if k < 0 {
		panic(negativeK)
	}
	notA := tA == blas.NoTrans
	if notA {
		if lda < max(1, n) {
			panic(badLdA)
		}
	} else {
		if lda < max(1, k) {
			panic(badLdA)
		}
	}
	if ldc < max(1, n) {
		panic(badLdC)
	}
	if n == 0 {
		return
	}
	if k > 0 {
		if notA {
			if len(a) < lda*(k-1)+n {
				panic(shortA)
			}
		} else {
			if len(a) < lda*(n-1)+k {
				panic(shortA)
			}
		}
	}
	if len(c) < ldc*(n-1)+n {
		panic(shortC)
	}
	if (alpha == 0 || k == 0) && beta == 1 {
		return
	}

	upper := ul == blas.Upper
	if alpha == 0 {
		if beta == 0 {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			}
		} else {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
		}
		return
	}

	if notA {
		// C += alpha * A * Aᵀ, one rank-one contribution per column
		// of A, skipping columns whose pivot row element is zero.
		for j := 0; j < n; j++ {
			istart, istop := colTriangle(upper, j, n)
			if beta == 0 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			} else if beta != 1 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
			for l := 0; l < k; l++ {
				if a[j+l*lda] != 0 {
					temp := alpha * a[j+l*lda]
					for i := istart; i <= istop; i++ {
						c[i+j*ldc] += temp * a[i+l*lda]
					}
				}
			}
		}
		return
	}
	// C += alpha * Aᵀ * A, one dot product per element of the triangle.
	for j := 0; j < n; j++ {
		istart, istop := colTriangle(upper, j, n)
		for i := istart; i <= istop; i++ {
			var temp float64
			for l := 0; l < k; l++ {
				temp += a[l+i*lda] * a[l+j*lda]
			}
			if beta == 0 {
				c[i+j*ldc] = alpha * temp
			} else {
				c[i+j*ldc] = alpha*temp + beta*c[i+j*ldc]
			}
		}
	}
}

// Dsyr2k performs the symmetric rank-2k update
//
//	C = alpha*(A*Bᵀ + B*Aᵀ) + beta*C   if tA == blas.NoTrans
//	C = alpha*(Aᵀ*B + Bᵀ*A) + beta*C   if tA == blas.Trans or blas.ConjTrans
//
// touching only the triangle of the n×n matrix C selected by ul. A and
// B are n×k under blas.NoTrans and k×n otherwise.
func (Implementation) Dsyr2k(ul blas.Uplo, tA blas.Transpose, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if n < 0 {
		panic(negativeN)
	}
	if k < 0 {
		panic(negativeK)
	}
	notA := tA == blas.NoTrans
	row := k
	if notA {
		row = n
	}
	if lda < max(1, row) {
		panic(badLdA)
	}
	if ldb < max(1, row) {
		panic(badLdB)
	}
	if ldc < max(1, n) {
		panic(badLdC)
	}
	if n == 0 {
		return
	}
	if k > 0 {
		if notA {
			if len(a) < lda*(k-1)+n {
				panic(shortA)
			}
			if len(b) < ldb*(k-1)+n {
				panic(shortB)
			}
		} else {
			if len(a) < lda*(n-1)+k {
				panic(shortA)
			}
			if len(b) < ldb*(n-1)+k {
				panic(shortB)
			}
		}
	}
	if len(c) < ldc*(n-1)+n {
		panic(shortC)
	}
	if (alpha == 0 || k == 0) && beta == 1 {
		return
	}

	upper := ul == blas.Upper
	if alpha == 0 {
		if beta == 0 {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			}
		} else {
			for j := 0; j < n; j++ {
				istart, istop := colTriangle(upper, j, n)
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
		}
		return
	}

	if notA {
		// C += alpha*(A*Bᵀ + B*Aᵀ), a paired rank-one contribution per
		// column of A and B, skipped when both pivot elements are zero.
		for j := 0; j < n; j++ {
			istart, istop := colTriangle(upper, j, n)
			if beta == 0 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = 0
				}
			} else if beta != 1 {
				for i := istart; i <= istop; i++ {
					c[i+j*ldc] = beta * c[i+j*ldc]
				}
			}
			for l := 0; l < k; l++ {
				if a[j+l*lda] != 0 || b[j+l*ldb] != 0 {
					temp1 := alpha * b[j+l*ldb]
					temp2 := alpha * a[j+l*lda]
					for i := istart; i <= istop; i++ {
						c[i+j*ldc] += a[i+l*lda]*temp1 + b[i+l*ldb]*temp2
					}
				}
			}
		}
		return
	}
	// C += alpha*(Aᵀ*B + Bᵀ*A), two dot products per element, each
	// scaled by alpha on its own before the sum.
	for j := 0; j < n; j++ {
		istart, istop := colTriangle(upper, j, n)
		for i := istart; i <= istop; i++ {
			var temp1, temp2 float64
			for l := 0; l < k; l++ {
				temp1 += a[l+i*lda] * b[l+j*ldb]
				temp2 += b[l+i*ldb] * a[l+j*lda]
			}
			if beta == 0 {
				c[i+j*ldc] = alpha*temp1 + alpha*temp2
			} else {
				c[i+j*ldc] = alpha*temp1 + alpha*temp2 + beta*c[i+j*ldc]
			}
		}
	}
}
