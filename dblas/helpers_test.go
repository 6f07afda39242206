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
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/floats/scalar"
)

var impl Implementation

// Mode-selector sweeps shared by the matrix routine tests. ConjTrans is
// listed alongside Trans because the two are identical for float64 data.
var (
	uplos      = []blas.Uplo{blas.Upper, blas.Lower}
	transposes = []blas.Transpose{blas.NoTrans, blas.Trans, blas.ConjTrans}
	diags      = []blas.Diag{blas.NonUnit, blas.Unit}
	sides      = []blas.Side{blas.Left, blas.Right}
)

// testRNG returns a seeded random number generator for reproducible tests.
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// randFloats fills a fresh slice of length n with values in [-1, 1).
func randFloats(rng *rand.Rand, n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.Float64()*2 - 1
	}
	return s
}

// randDense returns a column-major rows×cols matrix of minimal length
// for the given leading dimension, fully filled with random values.
func randDense(rng *rand.Rand, rows, cols, ld int) []float64 {
	return randFloats(rng, ld*(cols-1)+rows)
}

// randPacked returns a packed triangle of an n×n matrix.
func randPacked(rng *rand.Rand, n int) []float64 {
	return randFloats(rng, n*(n+1)/2)
}

// randBandGeneral returns the band array of a random m×n matrix with kL
// sub-diagonals and kU super-diagonals. Array slots outside the band
// are set to NaN so that any read of them poisons the result.
func randBandGeneral(rng *rand.Rand, m, n, kL, kU, lda int) []float64 {
	a := make([]float64, lda*(n-1)+kL+kU+1)
	for i := range a {
		a[i] = math.NaN()
	}
	for j := 0; j < n; j++ {
		for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
			a[kU+i-j+j*lda] = rng.Float64()*2 - 1
		}
	}
	return a
}

// randBandSym returns the band array of a random symmetric or
// triangular n×n matrix with k diagonals beyond the main one on the
// side selected by ul. Slots outside the band are NaN.
func randBandSym(rng *rand.Rand, ul blas.Uplo, n, k, lda int) []float64 {
	a := make([]float64, lda*(n-1)+k+1)
	for i := range a {
		a[i] = math.NaN()
	}
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := max(0, j-k); i <= j; i++ {
				a[k+i-j+j*lda] = rng.Float64()*2 - 1
			}
		} else {
			for i := j; i <= min(n-1, j+k); i++ {
				a[i-j+j*lda] = rng.Float64()*2 - 1
			}
		}
	}
	return a
}

// poisonOpposite writes NaN over the strictly unstored triangle of an
// n×n matrix. Any read outside the stored triangle then surfaces as a
// NaN in the output.
func poisonOpposite(ul blas.Uplo, n int, a []float64, lda int) {
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if (ul == blas.Upper && i > j) || (ul == blas.Lower && i < j) {
				a[i+j*lda] = math.NaN()
			}
		}
	}
}

// wellCondTri builds a triangular matrix safe to solve against: small
// off-diagonal entries under a dominant diagonal. The unstored triangle
// is poisoned, as is the stored diagonal in the unit-diagonal case
// where it must never be read.
func wellCondTri(rng *rand.Rand, ul blas.Uplo, dg blas.Diag, n, lda int) []float64 {
	a := randDense(rng, n, n, lda)
	poisonOpposite(ul, n, a, lda)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			switch {
			case i == j && dg == blas.Unit:
				a[i+j*lda] = math.NaN()
			case i == j:
				a[i+j*lda] = 2 + rng.Float64()
			case (ul == blas.Upper && i < j) || (ul == blas.Lower && i > j):
				a[i+j*lda] *= 0.5
			}
		}
	}
	return a
}

// poisonPackedDiag writes NaN over the diagonal slots of a packed
// triangle for unit-diagonal tests.
func poisonPackedDiag(ul blas.Uplo, n int, ap []float64) {
	kk := 0
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			ap[kk+j] = math.NaN()
			kk += j + 1
		} else {
			ap[kk] = math.NaN()
			kk += n - j
		}
	}
}

// poisonBandDiag writes NaN over the stored diagonal slots of a
// triangular band matrix for unit-diagonal tests.
func poisonBandDiag(ul blas.Uplo, n, k int, a []float64, lda int) {
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			a[k+j*lda] = math.NaN()
		} else {
			a[j*lda] = math.NaN()
		}
	}
}

// wellCondTriBand is the band-storage counterpart of wellCondTri:
// halved off-diagonal entries inside the band, a dominant diagonal, and
// NaN on the stored diagonal when the unit-diagonal mode must skip it.
func wellCondTriBand(rng *rand.Rand, ul blas.Uplo, dg blas.Diag, n, k, lda int) []float64 {
	a := randBandSym(rng, ul, n, k, lda)
	for j := 0; j < n; j++ {
		diag := j * lda
		if ul == blas.Upper {
			diag = k + j*lda
			for i := max(0, j-k); i < j; i++ {
				a[k+i-j+j*lda] *= 0.5
			}
		} else {
			for i := j + 1; i <= min(n-1, j+k); i++ {
				a[i-j+j*lda] *= 0.5
			}
		}
		if dg == blas.Unit {
			a[diag] = math.NaN()
		} else {
			a[diag] = 2 + rng.Float64()
		}
	}
	return a
}

// strideLen returns the buffer length needed to hold n elements at the
// given increment.
func strideLen(n, inc int) int {
	if inc < 0 {
		inc = -inc
	}
	return (n-1)*inc + 1
}

// gather returns the n logical elements of a strided vector in the
// order the kernels visit them, starting from the wrap-around position
// for negative increments.
func gather(x []float64, n, inc int) []float64 {
	out := make([]float64, n)
	ix := 0
	if inc < 0 {
		ix = (-n + 1) * inc
	}
	for i := range out {
		out[i] = x[ix]
		ix += inc
	}
	return out
}

// scatter writes n logical elements back into a strided buffer.
func scatter(dst []float64, src []float64, n, inc int) {
	ix := 0
	if inc < 0 {
		ix = (-n + 1) * inc
	}
	for i := 0; i < n; i++ {
		dst[ix] = src[i]
		ix += inc
	}
}

// fullFromSym expands the stored triangle of a symmetric matrix into a
// full dense n×n column-major matrix with leading dimension n.
func fullFromSym(ul blas.Uplo, n int, a []float64, lda int) []float64 {
	m := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			var v float64
			if ul == blas.Upper {
				v = a[i+j*lda]
			} else {
				v = a[j+i*lda]
			}
			m[i+j*n] = v
			m[j+i*n] = v
		}
	}
	return m
}

// fullFromTri expands the stored triangle of a triangular matrix into a
// full dense n×n column-major matrix, zero outside the triangle and
// with an implicit unit diagonal materialized when d == blas.Unit.
func fullFromTri(ul blas.Uplo, d blas.Diag, n int, a []float64, lda int) []float64 {
	m := make([]float64, n*n)
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := 0; i < j; i++ {
				m[i+j*n] = a[i+j*lda]
			}
		} else {
			for i := j + 1; i < n; i++ {
				m[i+j*n] = a[i+j*lda]
			}
		}
		if d == blas.Unit {
			m[j+j*n] = 1
		} else {
			m[j+j*n] = a[j+j*lda]
		}
	}
	return m
}

// fullFromBand expands a general band array into a full dense m×n
// column-major matrix with leading dimension m.
func fullFromBand(m, n, kL, kU int, a []float64, lda int) []float64 {
	d := make([]float64, m*n)
	for j := 0; j < n; j++ {
		for i := max(0, j-kU); i <= min(m-1, j+kL); i++ {
			d[i+j*m] = a[kU+i-j+j*lda]
		}
	}
	return d
}

// fullFromSymBand expands a symmetric band array into a full dense n×n
// matrix.
func fullFromSymBand(ul blas.Uplo, n, k int, a []float64, lda int) []float64 {
	d := make([]float64, n*n)
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := max(0, j-k); i <= j; i++ {
				v := a[k+i-j+j*lda]
				d[i+j*n] = v
				d[j+i*n] = v
			}
		} else {
			for i := j; i <= min(n-1, j+k); i++ {
				v := a[i-j+j*lda]
				d[i+j*n] = v
				d[j+i*n] = v
			}
		}
	}
	return d
}

// fullFromTriBand expands a triangular band array into a full dense n×n
// matrix, materializing the unit diagonal when d == blas.Unit.
func fullFromTriBand(ul blas.Uplo, dg blas.Diag, n, k int, a []float64, lda int) []float64 {
	d := make([]float64, n*n)
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := max(0, j-k); i <= j; i++ {
				d[i+j*n] = a[k+i-j+j*lda]
			}
		} else {
			for i := j; i <= min(n-1, j+k); i++ {
				d[i+j*n] = a[i-j+j*lda]
			}
		}
		if dg == blas.Unit {
			d[j+j*n] = 1
		}
	}
	return d
}

// fullFromSymPacked expands a packed symmetric triangle into a full
// dense n×n matrix.
func fullFromSymPacked(ul blas.Uplo, n int, ap []float64) []float64 {
	d := make([]float64, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			var v float64
			if ul == blas.Upper {
				v = ap[i+j*(j+1)/2]
			} else {
				v = ap[j+i*(2*n-i-1)/2]
			}
			d[i+j*n] = v
			d[j+i*n] = v
		}
	}
	return d
}

// fullFromTriPacked expands a packed triangular matrix into a full
// dense n×n matrix, materializing the unit diagonal when d == blas.Unit.
func fullFromTriPacked(ul blas.Uplo, dg blas.Diag, n int, ap []float64) []float64 {
	d := make([]float64, n*n)
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := 0; i <= j; i++ {
				d[i+j*n] = ap[i+j*(j+1)/2]
			}
		} else {
			for i := j; i < n; i++ {
				d[i+j*n] = ap[i+j*(2*n-j-1)/2]
			}
		}
		if dg == blas.Unit {
			d[j+j*n] = 1
		}
	}
	return d
}

// packFromDense packs the selected triangle of a dense n×n matrix.
func packFromDense(ul blas.Uplo, n int, a []float64, lda int) []float64 {
	ap := make([]float64, n*(n+1)/2)
	k := 0
	if ul == blas.Upper {
		for j := 0; j < n; j++ {
			for i := 0; i <= j; i++ {
				ap[k] = a[i+j*lda]
				k++
			}
		}
	} else {
		for j := 0; j < n; j++ {
			for i := j; i < n; i++ {
				ap[k] = a[i+j*lda]
				k++
			}
		}
	}
	return ap
}

// bandFromDense extracts the band array of the selected triangle of a
// dense symmetric or triangular n×n matrix, with k stored diagonals
// beyond the main one.
func bandFromDense(ul blas.Uplo, n, k int, a []float64, lda, ldab int) []float64 {
	ab := make([]float64, ldab*(n-1)+k+1)
	for j := 0; j < n; j++ {
		if ul == blas.Upper {
			for i := max(0, j-k); i <= j; i++ {
				ab[k+i-j+j*ldab] = a[i+j*lda]
			}
		} else {
			for i := j; i <= min(n-1, j+k); i++ {
				ab[i-j+j*ldab] = a[i+j*lda]
			}
		}
	}
	return ab
}

// matCopy repacks a rows×cols column-major matrix to the minimal
// leading dimension rows.
func matCopy(rows, cols int, a []float64, lda int) []float64 {
	out := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out[i+j*rows] = a[i+j*lda]
		}
	}
	return out
}

// transposeDense returns the cols×rows transpose of a dense
// column-major matrix, with leading dimension cols.
func transposeDense(rows, cols int, a []float64, lda int) []float64 {
	t := make([]float64, rows*cols)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			t[j+i*cols] = a[i+j*lda]
		}
	}
	return t
}

// refGemv computes y = alpha*A*x + beta*y on a full dense m×n matrix
// with unit strides, clearing y when beta is zero.
func refGemv(m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) {
	for i := 0; i < m; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += a[i+j*lda] * x[j]
		}
		if beta == 0 {
			y[i] = alpha * sum
		} else {
			y[i] = alpha*sum + beta*y[i]
		}
	}
}

// refGemm computes C = alpha*A*B + beta*C on full dense column-major
// operands with no transposition, clearing C when beta is zero.
func refGemm(m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			var sum float64
			for l := 0; l < k; l++ {
				sum += a[i+l*lda] * b[l+j*ldb]
			}
			if beta == 0 {
				c[i+j*ldc] = alpha * sum
			} else {
				c[i+j*ldc] = alpha*sum + beta*c[i+j*ldc]
			}
		}
	}
}

// checkClose reports elements of got that differ from want by more than
// tol, absolutely for small magnitudes and relatively for large ones.
// NaN matches only NaN.
func checkClose(t *testing.T, name string, got, want []float64, tol float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch: got %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		g, w := got[i], want[i]
		if math.IsNaN(g) || math.IsNaN(w) {
			if !(math.IsNaN(g) && math.IsNaN(w)) {
				t.Errorf("%s: [%d] = %v, want %v", name, i, g, w)
			}
			continue
		}
		if !scalar.EqualWithinAbsOrRel(g, w, tol, tol) {
			t.Errorf("%s: [%d] = %v, want %v", name, i, g, w)
		}
	}
}

// checkExact reports elements of got that are not bit-identical to
// want. NaN payloads count as equal to each other.
func checkExact(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: length mismatch: got %d, want %d", name, len(got), len(want))
	}
	for i := range got {
		same := math.Float64bits(got[i]) == math.Float64bits(want[i]) ||
			(math.IsNaN(got[i]) && math.IsNaN(want[i]))
		if !same {
			t.Errorf("%s: [%d] = %v, want %v", name, i, got[i], want[i])
		}
	}
}

const (
	// defTol bounds rounding drift against naive references that sum
	// in a different order.
	defTol = 1e-13
)
