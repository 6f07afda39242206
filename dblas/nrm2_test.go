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
	"testing"
)

// relDiff returns the relative error of got against a nonzero want.
func relDiff(got, want float64) float64 {
	return math.Abs(got-want) / math.Abs(want)
}

func TestDnrm2(t *testing.T) {
	if got := impl.Dnrm2(2, []float64{3, 4}, 1); got != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := impl.Dnrm2(4, []float64{1, -1, 1, -1}, 1); got != 2 {
		t.Errorf("got %v, want 2", got)
	}
	if got := impl.Dnrm2(0, nil, 1); got != 0 {
		t.Errorf("n=0: got %v, want 0", got)
	}
	if got := impl.Dnrm2(3, []float64{0, 0, 0}, 1); got != 0 {
		t.Errorf("zero vector: got %v, want 0", got)
	}

	rng := testRNG()
	for _, n := range level1Sizes[1:] {
		x := randFloats(rng, n)
		var sum float64
		for _, v := range x {
			sum += v * v
		}
		want := math.Sqrt(sum)
		got := impl.Dnrm2(n, x, 1)
		if relDiff(got, want) > defTol {
			t.Errorf("n=%d: got %v, want %v", n, got, want)
		}
	}

	t.Run("MatchesDot", func(t *testing.T) {
		for _, n := range []int{1, 2, 7, 16, 64} {
			x := randFloats(rng, n)
			want := math.Sqrt(impl.Ddot(n, x, 1, x, 1))
			if got := impl.Dnrm2(n, x, 1); relDiff(got, want) > defTol {
				t.Errorf("n=%d: nrm2 = %v, sqrt(dot) = %v", n, got, want)
			}
		}
	})
}

func TestDnrm2Strided(t *testing.T) {
	x := []float64{3, 99, -4}
	if got := impl.Dnrm2(2, x, 2); got != 5 {
		t.Errorf("got %v, want 5", got)
	}

	// A negative increment visits the same elements in reverse, so the
	// result matches running the reversed vector forward exactly.
	rng := testRNG()
	for _, n := range []int{1, 2, 5, 9} {
		x := randFloats(rng, n)
		rev := make([]float64, n)
		for i, v := range x {
			rev[n-1-i] = v
		}
		got := impl.Dnrm2(n, x, -1)
		want := impl.Dnrm2(n, rev, 1)
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Errorf("n=%d: got %v, want %v", n, got, want)
		}
	}
}

func TestDnrm2Scaling(t *testing.T) {
	// Entries whose squares overflow. A naive sum of squares returns
	// +Inf here.
	x := []float64{1e160, -1e160, 1e160, -1e160}
	if got, want := impl.Dnrm2(4, x, 1), 2e160; relDiff(got, want) > defTol {
		t.Errorf("big: got %v, want %v", got, want)
	}

	// Entries whose squares underflow to zero. A naive sum returns 0.
	y := []float64{1e-170, 1e-170}
	if got, want := impl.Dnrm2(2, y, 1), math.Sqrt2*1e-170; relDiff(got, want) > defTol {
		t.Errorf("small: got %v, want %v", got, want)
	}

	// Once a big value is seen, small values cannot move the result.
	z := []float64{1e-300, 1e200, 1e-300}
	if got, want := impl.Dnrm2(3, z, 1), 1e200; relDiff(got, want) > defTol {
		t.Errorf("mixed: got %v, want %v", got, want)
	}

	// The smallest subnormal survives the up-scaling round trip.
	sub := math.Ldexp(1, -1074)
	if got := impl.Dnrm2(1, []float64{sub}, 1); got != sub {
		t.Errorf("subnormal: got %v, want %v", got, sub)
	}

	// Scaling the vector scales the norm, even across accumulator
	// regimes.
	rng := testRNG()
	base := randFloats(rng, 8)
	ref := impl.Dnrm2(8, base, 1)
	for _, c := range []float64{1e150, 1e-150} {
		scaled := make([]float64, 8)
		for i, v := range base {
			scaled[i] = c * v
		}
		if got, want := impl.Dnrm2(8, scaled, 1), c*ref; relDiff(got, want) > defTol {
			t.Errorf("c=%g: got %v, want %v", c, got, want)
		}
	}
}

func TestDnrm2SpecialValues(t *testing.T) {
	if got := impl.Dnrm2(3, []float64{1, math.NaN(), 2}, 1); !math.IsNaN(got) {
		t.Errorf("NaN input: got %v, want NaN", got)
	}
	if got := impl.Dnrm2(3, []float64{1e300, math.NaN(), 1}, 1); !math.IsNaN(got) {
		t.Errorf("NaN beside big: got %v, want NaN", got)
	}
	if got := impl.Dnrm2(2, []float64{1, math.Inf(-1)}, 1); !math.IsInf(got, 1) {
		t.Errorf("Inf input: got %v, want +Inf", got)
	}
}
