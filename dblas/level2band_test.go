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
	"fmt"
	"math"
	"slices"
	"testing"

	"gonum.org/v1/gonum/blas"
)

// Band shapes covering empty bands, one-sided bands, and bands wide
// enough to make the matrix dense. Out-of-band storage slots are filled
// with NaN by the generators, so any out-of-band read poisons the
// result and fails the comparison.
var bandDims = []struct{ m, n, kL, kU int }{
	{1, 1, 0, 0},
	{3, 5, 1, 1},
	{5, 3, 2, 1},
	{4, 4, 0, 2},
	{7, 6, 3, 0},
	{6, 7, 5, 4},
	{8, 8, 2, 3},
}

var bandStrides = []struct{ incX, incY int }{
	{1, 1}, {2, 1}, {1, -2}, {-2, 3},
}

func TestDgbmv(t *testing.T) {
	// Upper bidiagonal [1 4 0; 0 2 5; 0 0 3] times the ones vector.
	a := []float64{math.NaN(), 1, 4, 2, 5, 3}
	y := make([]float64, 3)
	impl.Dgbmv(blas.NoTrans, 3, 3, 0, 1, 1, a, 2, []float64{1, 1, 1}, 1, 0, y, 1)
	checkClose(t, "bidiagonal", y, []float64{5, 7, 3}, defTol)

	rng := testRNG()
	const alpha, beta = -1.5, 0.5
	for _, d := range bandDims {
		for _, tA := range transposes {
			for _, lda := range []int{d.kL + d.kU + 1, d.kL + d.kU + 3} {
				ab := randBandGeneral(rng, d.m, d.n, d.kL, d.kU, lda)
				full := fullFromBand(d.m, d.n, d.kL, d.kU, ab, lda)
				lenX, lenY := d.n, d.m
				if tA != blas.NoTrans {
					lenX, lenY = d.m, d.n
				}
				for _, s := range bandStrides {
					name := fmt.Sprintf("m=%d n=%d kL=%d kU=%d tA=%c lda=%d incX=%d incY=%d",
						d.m, d.n, d.kL, d.kU, tA, lda, s.incX, s.incY)
					x := randFloats(rng, strideLen(lenX, s.incX))
					y := randFloats(rng, strideLen(lenY, s.incY))
					xl := gather(x, lenX, s.incX)
					wl := gather(y, lenY, s.incY)
					if tA == blas.NoTrans {
						refGemv(d.m, d.n, alpha, full, d.m, xl, beta, wl)
					} else {
						at := transposeDense(d.m, d.n, full, d.m)
						refGemv(d.n, d.m, alpha, at, d.n, xl, beta, wl)
					}
					want := slices.Clone(y)
					scatter(want, wl, lenY, s.incY)
					impl.Dgbmv(tA, d.m, d.n, d.kL, d.kU, alpha, ab, lda, x, s.incX, beta, y, s.incY)
					checkClose(t, name, y, want, defTol)
				}
			}
		}
	}

	t.Run("QuickReturn", func(t *testing.T) {
		ab := []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}
		y := []float64{4, math.NaN()}
		want := slices.Clone(y)
		impl.Dgbmv(blas.NoTrans, 2, 2, 1, 0, 0, ab, 2, []float64{1, 2}, 1, 1, y, 1)
		checkExact(t, "y", y, want)
	})
	t.Run("EmptyDims", func(t *testing.T) {
		impl.Dgbmv(blas.NoTrans, 0, 2, 0, 0, 1, nil, 1, nil, 1, 2, nil, 1)
		impl.Dgbmv(blas.Trans, 2, 0, 0, 0, 1, nil, 1, nil, 1, 2, nil, 1)
	})
}

func TestDsbmv(t *testing.T) {
	rng := testRNG()
	const alpha, beta = 2, -0.25
	for _, ul := range uplos {
		for _, n := range []int{1, 2, 3, 6, 9} {
			for _, k := range []int{0, 1, 2, n - 1} {
				if k < 0 || k >= n {
					continue
				}
				for _, lda := range []int{k + 1, k + 4} {
					ab := randBandSym(rng, ul, n, k, lda)
					full := fullFromSymBand(ul, n, k, ab, lda)
					for _, s := range bandStrides {
						name := fmt.Sprintf("ul=%c n=%d k=%d lda=%d incX=%d incY=%d",
							ul, n, k, lda, s.incX, s.incY)
						x := randFloats(rng, strideLen(n, s.incX))
						y := randFloats(rng, strideLen(n, s.incY))
						xl := gather(x, n, s.incX)
						wl := gather(y, n, s.incY)
						refGemv(n, n, alpha, full, n, xl, beta, wl)
						want := slices.Clone(y)
						scatter(want, wl, n, s.incY)
						impl.Dsbmv(ul, n, k, alpha, ab, lda, x, s.incX, beta, y, s.incY)
						checkClose(t, name, y, want, defTol)
					}
				}
			}
		}
	}

	t.Run("BetaZeroClearsNaN", func(t *testing.T) {
		// Tridiagonal [2 1 0; 1 2 1; 0 1 2] in lower band storage.
		ab := []float64{2, 1, 2, 1, 2, math.NaN()}
		y := []float64{math.NaN(), math.NaN(), math.NaN()}
		impl.Dsbmv(blas.Lower, 3, 1, 1, ab, 2, []float64{1, 1, 1}, 1, 0, y, 1)
		checkClose(t, "y", y, []float64{3, 4, 3}, defTol)
	})
	t.Run("MatchesDsymv", func(t *testing.T) {
		// A dense symmetric matrix that is zero beyond the k-th diagonal
		// describes the same operator as its extracted band, so the band
		// and dense kernels must agree on it.
		rng := testRNG()
		const n, k, lda = 7, 2, 9
		a := randDense(rng, n, n, lda)
		poisonOpposite(blas.Upper, n, a, lda)
		for j := 0; j < n; j++ {
			for i := 0; i < j-k; i++ {
				a[i+j*lda] = 0
			}
		}
		ab := bandFromDense(blas.Upper, n, k, a, lda, k+1)
		x := randFloats(rng, n)
		yDense := randFloats(rng, n)
		yBand := slices.Clone(yDense)
		impl.Dsymv(blas.Upper, n, 2, a, lda, x, 1, -1, yDense, 1)
		impl.Dsbmv(blas.Upper, n, k, 2, ab, k+1, x, 1, -1, yBand, 1)
		checkClose(t, "band vs dense", yBand, yDense, defTol)
	})
}

func TestDtbmv(t *testing.T) {
	rng := testRNG()
	for _, ul := range uplos {
		for _, tA := range transposes {
			for _, dg := range diags {
				for _, n := range []int{1, 2, 3, 6, 9} {
					for _, k := range []int{0, 1, 2, n - 1} {
						if k < 0 || k >= n {
							continue
						}
						lda := k + 2
						ab := randBandSym(rng, ul, n, k, lda)
						if dg == blas.Unit {
							poisonBandDiag(ul, n, k, ab, lda)
						}
						full := fullFromTriBand(ul, dg, n, k, ab, lda)
						if tA != blas.NoTrans {
							full = transposeDense(n, n, full, n)
						}
						for _, inc := range []int{1, 2, -1, -3} {
							name := fmt.Sprintf("ul=%c tA=%c diag=%c n=%d k=%d inc=%d",
								ul, tA, dg, n, k, inc)
							x := randFloats(rng, strideLen(n, inc))
							xl := gather(x, n, inc)
							wl := make([]float64, n)
							refGemv(n, n, 1, full, n, xl, 0, wl)
							want := slices.Clone(x)
							scatter(want, wl, n, inc)
							impl.Dtbmv(ul, tA, dg, n, k, ab, lda, x, inc)
							checkClose(t, name, x, want, defTol)
						}
					}
				}
			}
		}
	}

	t.Run("NZero", func(t *testing.T) {
		impl.Dtbmv(blas.Upper, blas.NoTrans, blas.NonUnit, 0, 0, nil, 1, nil, 1)
	})
}

func TestDtbsv(t *testing.T) {
	rng := testRNG()
	for _, ul := range uplos {
		for _, tA := range transposes {
			for _, dg := range diags {
				for _, n := range []int{1, 2, 3, 6, 9} {
					for _, k := range []int{0, 1, 2, n - 1} {
						if k < 0 || k >= n {
							continue
						}
						lda := k + 1
						ab := wellCondTriBand(rng, ul, dg, n, k, lda)
						for _, inc := range []int{1, 2, -1, -3} {
							name := fmt.Sprintf("ul=%c tA=%c diag=%c n=%d k=%d inc=%d",
								ul, tA, dg, n, k, inc)
							want := randFloats(rng, strideLen(n, inc))
							x := slices.Clone(want)
							impl.Dtbmv(ul, tA, dg, n, k, ab, lda, x, inc)
							impl.Dtbsv(ul, tA, dg, n, k, ab, lda, x, inc)
							checkClose(t, name, x, want, 1e-10)
						}
					}
				}
			}
		}
	}

	t.Run("NZero", func(t *testing.T) {
		impl.Dtbsv(blas.Lower, blas.NoTrans, blas.NonUnit, 0, 0, nil, 1, nil, 1)
	})
}
