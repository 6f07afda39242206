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

// Dtrmm computes the in-place triangular matrix-matrix product
//
//	B = alpha*op(A)*B   if s == blas.Left
//	B = alpha*B*op(A)   if s == blas.Right
//
// where op(A) is A or Aᵀ according to tA, A is a triangular matrix with
// the triangle selected by ul, and B is m×n. A is m×m on the left and
// n×n on the right; with d == blas.Unit its diagonal is taken to be 1.
// When alpha is zero, B is set to zero without referencing A.
func (Implementation) Dtrmm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	if s != blas.Left && s != blas.Right {
		panic(badSide)
	}
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if d != blas.NonUnit && d != blas.Unit {
		panic(badDiag)
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
	if m == 0 || n == 0 {
		return
	}
	if len(a) < lda*(ka-1)+ka {
		panic(shortA)
	}
	if len(b) < ldb*(n-1)+m {
		panic(shortB)
	}

	if alpha == 0 {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				b[i+j*ldb] = 0
			}
		}
		return
	}

	nonUnit := d == blas.NonUnit
	if s == blas.Left {
		if tA == blas.NoTrans {
			// B = alpha*A*B.
			if ul == blas.Upper {
				for j := 0; j < n; j++ {
					for k := 0; k < m; k++ {
						if b[k+j*ldb] != 0 {
							temp := alpha * b[k+j*ldb]
							for i := 0; i < k; i++ {
								b[i+j*ldb] += temp * a[i+k*lda]
							}
							if nonUnit {
								temp *= a[k+k*lda]
							}
							b[k+j*ldb] = temp
						}
					}
				}
				return
			}
			for j := 0; j < n; j++ {
				for k := m - 1; k >= 0; k-- {
					if b[k+j*ldb] != 0 {
						temp := alpha * b[k+j*ldb]
						b[k+j*ldb] = temp
						if nonUnit {
							b[k+j*ldb] *= a[k+k*lda]
						}
						for i := k + 1; i < m; i++ {
							b[i+j*ldb] += temp * a[i+k*lda]
						}
					}
				}
			}
			return
		}
		// B = alpha*Aᵀ*B.
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				for i := m - 1; i >= 0; i-- {
					temp := b[i+j*ldb]
					if nonUnit {
						temp *= a[i+i*lda]
					}
					for k := 0; k < i; k++ {
						temp += a[k+i*lda] * b[k+j*ldb]
					}
					b[i+j*ldb] = alpha * temp
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				temp := b[i+j*ldb]
				if nonUnit {
					temp *= a[i+i*lda]
				}
				for k := i + 1; k < m; k++ {
					temp += a[k+i*lda] * b[k+j*ldb]
				}
				b[i+j*ldb] = alpha * temp
			}
		}
		return
	}

	if tA == blas.NoTrans {
		// B = alpha*B*A.
		if ul == blas.Upper {
			for j := n - 1; j >= 0; j-- {
				temp := alpha
				if nonUnit {
					temp *= a[j+j*lda]
				}
				for i := 0; i < m; i++ {
					b[i+j*ldb] = temp * b[i+j*ldb]
				}
				for k := 0; k < j; k++ {
					if a[k+j*lda] != 0 {
						temp = alpha * a[k+j*lda]
						for i := 0; i < m; i++ {
							b[i+j*ldb] += temp * b[i+k*ldb]
						}
					}
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			temp := alpha
			if nonUnit {
				temp *= a[j+j*lda]
			}
			for i := 0; i < m; i++ {
				b[i+j*ldb] = temp * b[i+j*ldb]
			}
			for k := j + 1; k < n; k++ {
				if a[k+j*lda] != 0 {
					temp = alpha * a[k+j*lda]
					for i := 0; i < m; i++ {
						b[i+j*ldb] += temp * b[i+k*ldb]
					}
				}
			}
		}
		return
	}
	// B = alpha*B*Aᵀ. Column k of B feeds the other columns before it
	// is scaled itself.
	if ul == blas.Upper {
		for k := 0; k < n; k++ {
			for j := 0; j < k; j++ {
				if a[j+k*lda] != 0 {
					temp := alpha * a[j+k*lda]
					for i := 0; i < m; i++ {
						b[i+j*ldb] += temp * b[i+k*ldb]
					}
				}
			}
			temp := alpha
			if nonUnit {
				temp *= a[k+k*lda]
			}
			if temp != 1 {
				for i := 0; i < m; i++ {
					b[i+k*ldb] = temp * b[i+k*ldb]
				}
			}
		}
		return
	}
	for k := n - 1; k >= 0; k-- {
		for j := k + 1; j < n; j++ {
			if a[j+k*lda] != 0 {
				temp := alpha * a[j+k*lda]
				for i := 0; i < m; i++ {
					b[i+j*ldb] += temp * b[i+k*ldb]
				}
			}
		}
		temp := alpha
		if nonUnit {
			temp *= a[k+k*lda]
		}
		if temp != 1 {
			for i := 0; i < m; i++ {
				b[i+k*ldb] = temp * b[i+k*ldb]
			}
		}
	}
}

// Dtrsm solves one of the triangular matrix equations
//
//	op(A)*X = alpha*B   if s == blas.Left
//	X*op(A) = alpha*B   if s == blas.Right
//
// in place, with B overwritten by the solution X. op(A) is A or Aᵀ
// according to tA, A is a triangular matrix with the triangle selected
// by ul, m×m on the left and n×n on the right, and B is m×n. With
// d == blas.Unit the diagonal of A is taken to be 1. When alpha is
// zero, B is set to zero without referencing A. No test for
// singularity is performed.
func (Implementation) Dtrsm(s blas.Side, ul blas.Uplo, tA blas.Transpose, d blas.Diag, m, n int, alpha float64, a []float64, lda int, b []float64, ldb int) {
	if s != blas.Left && s != blas.Right {
		panic(badSide)
	}
	if ul != blas.Upper && ul != blas.Lower {
		panic(badUplo)
	}
	if tA != blas.NoTrans && tA != blas.Trans && tA != blas.ConjTrans {
		panic(badTranspose)
	}
	if d != blas.NonUnit && d != blas.Unit {
		panic(badDiag)
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
	if m == 0 || n == 0 {
		return
	}
	if len(a) < lda*(ka-1)+ka {
		panic(shortA)
	}
	if len(b) < ldb*(n-1)+m {
		panic(shortB)
	}

	if alpha == 0 {
		for j := 0; j < n; j++ {
			for i := 0; i < m; i++ {
				b[i+j*ldb] = 0
			}
		}
		return
	}

	nonUnit := d == blas.NonUnit
	if s == blas.Left {
		if tA == blas.NoTrans {
			// Solve A*X = alpha*B.
			if ul == blas.Upper {
				for j := 0; j < n; j++ {
					if alpha != 1 {
						for i := 0; i < m; i++ {
							b[i+j*ldb] = alpha * b[i+j*ldb]
						}
					}
					for k := m - 1; k >= 0; k-- {
						if b[k+j*ldb] != 0 {
							if nonUnit {
								b[k+j*ldb] /= a[k+k*lda]
							}
							for i := 0; i < k; i++ {
								b[i+j*ldb] -= b[k+j*ldb] * a[i+k*lda]
							}
						}
					}
				}
				return
			}
			for j := 0; j < n; j++ {
				if alpha != 1 {
					for i := 0; i < m; i++ {
						b[i+j*ldb] = alpha * b[i+j*ldb]
					}
				}
				for k := 0; k < m; k++ {
					if b[k+j*ldb] != 0 {
						if nonUnit {
							b[k+j*ldb] /= a[k+k*lda]
						}
						for i := k + 1; i < m; i++ {
							b[i+j*ldb] -= b[k+j*ldb] * a[i+k*lda]
						}
					}
				}
			}
			return
		}
		// Solve Aᵀ*X = alpha*B.
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				for i := 0; i < m; i++ {
					temp := alpha * b[i+j*ldb]
					for k := 0; k < i; k++ {
						temp -= a[k+i*lda] * b[k+j*ldb]
					}
					if nonUnit {
						temp /= a[i+i*lda]
					}
					b[i+j*ldb] = temp
				}
			}
			return
		}
		for j := 0; j < n; j++ {
			for i := m - 1; i >= 0; i-- {
				temp := alpha * b[i+j*ldb]
				for k := i + 1; k < m; k++ {
					temp -= a[k+i*lda] * b[k+j*ldb]
				}
				if nonUnit {
					temp /= a[i+i*lda]
				}
				b[i+j*ldb] = temp
			}
		}
		return
	}

	if tA == blas.NoTrans {
		// Solve X*A = alpha*B.
		if ul == blas.Upper {
			for j := 0; j < n; j++ {
				if alpha != 1 {
					for i := 0; i < m; i++ {
						b[i+j*ldb] = alpha * b[i+j*ldb]
					}
				}
				for k := 0; k < j; k++ {
					if a[k+j*lda] != 0 {
						for i := 0; i < m; i++ {
							b[i+j*ldb] -= a[k+j*lda] * b[i+k*ldb]
						}
					}
				}
				if nonUnit {
					temp := 1 / a[j+j*lda]
					for i := 0; i < m; i++ {
						b[i+j*ldb] = temp * b[i+j*ldb]
					}
				}
			}
			return
		}
		for j := n - 1; j >= 0; j-- {
			if alpha != 1 {
				for i := 0; i < m; i++ {
					b[i+j*ldb] = alpha * b[i+j*ldb]
				}
			}
			for k := j + 1; k < n; k++ {
				if a[k+j*lda] != 0 {
					for i := 0; i < m; i++ {
						b[i+j*ldb] -= a[k+j*lda] * b[i+k*ldb]
					}
				}
			}
			if nonUnit {
				temp := 1 / a[j+j*lda]
				for i := 0; i < m; i++ {
					b[i+j*ldb] = temp * b[i+j*ldb]
				}
			}
		}
		return
	}
	// Solve X*Aᵀ = alpha*B. Each column is divided by the diagonal and
	// propagated to the remaining columns before its alpha scaling.
	if ul == blas.Upper {
		for k := n - 1; k >= 0; k-- {
			if nonUnit {
				temp := 1 / a[k+k*lda]
				for i := 0; i < m; i++ {
					b[i+k*ldb] = temp * b[i+k*ldb]
				}
			}
			for j := 0; j < k; j++ {
				if a[j+k*lda] != 0 {
					temp := a[j+k*lda]
					for i := 0; i < m; i++ {
						b[i+j*ldb] -= temp * b[i+k*ldb]
					}
				}
			}
			if alpha != 1 {
				for i := 0; i < m; i++ {
					b[i+k*ldb] = alpha * b[i+k*ldb]
				}
			}
		}
		return
	}
	for k := 0; k < n; k++ {
		if nonUnit {
			temp := 1 / a[k+k*lda]
			for i := 0; i < m; i++ {
				b[i+k*ldb] = temp * b[i+k*ldb]
			}
		}
		for j := k + 1; j < n; j++ {
			if a[j+k*lda] != 0 {
				temp := a[j+k*lda]
				for i := 0; i < m; i++ {
					b[i+j*ldb] -= temp * b[i+k*ldb]
				}
			}
		}
		if alpha != 1 {
			for i := 0; i < m; i++ {
				b[i+k*ldb] = alpha * b[i+k*ldb]
			}
		}
	}
}
