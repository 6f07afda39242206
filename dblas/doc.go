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

// Package dblas provides a pure Go, double-precision implementation of the
// reference BLAS kernels: Level 1 (vector-vector), Level 2 (matrix-vector)
// and Level 3 (matrix-matrix) routines, plus the DAXPBY and DGEMMTR
// extensions.
//
// Every routine is a method on the stateless Implementation handle, with
// mode selectors drawn from gonum's blas vocabulary:
//
//	import (
//		"gonum.org/v1/gonum/blas"
//
//		"github.com/ajroetker/go-blas/dblas"
//	)
//
//	var impl dblas.Implementation
//	impl.Dgemm(blas.NoTrans, blas.NoTrans, m, n, k, 1, a, lda, b, ldb, 0, c, ldc)
//
// The kernels reproduce the numerical behavior of the Fortran reference
// implementation, including its quick-return fast paths, its summation
// orders on the unit-stride paths, and the overflow/underflow-safe scaling
// used by Dnrm2, Drotg and Drotmg.
//
// # Matrix storage
//
// Matrices are dense column-major slices: element (i, j) of an m×n matrix
// lives at a[i+j*lda], where the leading dimension lda >= max(1, m) is the
// distance between columns. An lda larger than m addresses a sub-matrix of
// a larger allocation.
//
// Symmetric and triangular routines read (and write) only the triangle
// selected by blas.Upper or blas.Lower. With blas.Unit the diagonal is
// never read and is taken to be 1.
//
// Packed routines (Dsp*, Dtp*) store one triangle column by column in a
// slice of exactly n*(n+1)/2 elements. Upper packed places (i, j), i <= j,
// at ap[i+j*(j+1)/2]; lower packed places (i, j), i >= j, at
// ap[i+j*(2*n-j-1)/2].
//
// Banded routines (Dgb*, Dsb*, Dtb*) store diagonals as rows of a
// column-major array. For a general band with kL sub- and kU
// super-diagonals (lda >= kL+kU+1), element (i, j) with
// max(0, j-kU) <= i <= min(m-1, j+kL) lives at a[kU+i-j+j*lda]. Symmetric
// and triangular bands use a single bandwidth k and lda >= k+1.
//
// # Vector strides
//
// A vector argument is a slice plus an increment. The i-th logical element
// of x is x[i*incX] for positive incX; a negative increment walks the
// buffer backward starting from x[(-n+1)*incX]. Buffers must hold at least
// 1+(n-1)*|incX| elements. A handful of routines keep the reference
// implementation's asymmetric treatment of negative increments: Dasum
// returns 0 and Dscal does nothing when incX < 0, while Ddot, Dnrm2 and
// the rest traverse the vector backward.
//
// # Argument checking
//
// The reference kernels trust their inputs. Here each exported method
// begins with explicit checks that panic with a "blas: ..." message for
// arguments no valid caller can pass: negative dimensions, zero
// increments, unknown mode selectors, undersized slices and leading
// dimensions. Past those checks the kernels are total: any IEEE-754
// inputs, including NaN and Inf, produce the reference result by ordinary
// floating-point propagation.
package dblas
