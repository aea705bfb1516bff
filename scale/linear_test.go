// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestLinearScale(t *testing.T) {
	s := NewLinear()
	s.SetDomain(0, 100)
	s.SetRange(0, 500)

	check := func(x, want float64) {
		t.Helper()
		if got := s.Scale(x); !approx(got, want) {
			t.Errorf("Scale(%v) = %v, want %v", x, got, want)
		}
	}
	check(0, 0)
	check(50, 250)
	check(100, 500)
	check(-10, -50) // extrapolation beyond the domain

	// Reversed range flips the mapping.
	s.SetRange(500, 0)
	check(0, 500)
	check(100, 0)
}

func TestLinearRoundTrip(t *testing.T) {
	domains := [][2]float64{{0, 1}, {-10, 10}, {3, 7}, {-1e6, 1e6}, {0.001, 0.002}}
	ranges := [][2]float64{{0, 1}, {0, 640}, {640, 0}, {-100, 100}}

	for _, d := range domains {
		for _, r := range ranges {
			s := NewLinear()
			s.SetDomain(d[0], d[1])
			s.SetRange(r[0], r[1])
			for frac := 0.0; frac <= 1; frac += 0.25 {
				x := d[0] + frac*(d[1]-d[0])
				if got := s.Invert(s.Scale(x)); !approx(got, x) {
					t.Errorf("domain %v range %v: Invert(Scale(%v)) = %v", d, r, x, got)
				}
				y := r[0] + frac*(r[1]-r[0])
				if got := s.Scale(s.Invert(y)); !approx(got, y) {
					t.Errorf("domain %v range %v: Scale(Invert(%v)) = %v", d, r, y, got)
				}
			}
		}
	}
}

func TestLinearSingleValueDomain(t *testing.T) {
	s := NewLinear()
	if err := s.SetDomain(5, 5); err != nil {
		t.Fatalf("SetDomain(5, 5) = %v", err)
	}
	min, max := s.Domain()
	if min != 4 || max != 6 {
		t.Errorf("domain after SetDomain(5, 5) = [%v, %v], want [4, 6]", min, max)
	}
}

func TestLinearNice(t *testing.T) {
	check := func(min, max, wantMin, wantMax float64) {
		t.Helper()
		s := NewLinear()
		s.SetDomain(min, max)
		s.Nice()
		gotMin, gotMax := s.Domain()
		if !approx(gotMin, wantMin) || !approx(gotMax, wantMax) {
			t.Errorf("Nice of [%v, %v] = [%v, %v], want [%v, %v]", min, max, gotMin, gotMax, wantMin, wantMax)
		}
	}

	check(0.13, 9.7, 0, 10)
	check(17, 83, 10, 90)
	check(0, 100, 0, 100) // already nice
	// A reversed domain widens outward in its own orientation.
	check(83, 17, 90, 10)

	// Nice never narrows the domain.
	s := NewLinear()
	s.SetDomain(-3.7, 42.1)
	s.Nice()
	min, max := s.Domain()
	if min > -3.7 || max < 42.1 {
		t.Errorf("Nice narrowed [-3.7, 42.1] to [%v, %v]", min, max)
	}
}

func TestLinearExtent(t *testing.T) {
	s := NewLinear()
	if _, _, ok := s.Extent(); ok {
		t.Errorf("Extent() ok on untrained scale")
	}

	for _, v := range []float64{5, 80, 42, math.NaN(), math.Inf(1), 0} {
		s.Include(v)
	}
	min, max, ok := s.Extent()
	if !ok || min != 0 || max != 80 {
		t.Errorf("Extent() = %v, %v, %v, want 0, 80, true", min, max, ok)
	}

	checkClamp := func(min, max, wantMin, wantMax float64) {
		t.Helper()
		gotMin, gotMax := s.ClampedDomain(min, max)
		if gotMin != wantMin || gotMax != wantMax {
			t.Errorf("ClampedDomain(%v, %v) = [%v, %v], want [%v, %v]", min, max, gotMin, gotMax, wantMin, wantMax)
		}
	}
	checkClamp(-10, 50, 0, 50)
	checkClamp(20, 200, 20, 80)
	checkClamp(20, 50, 20, 50)
	// A proposal entirely outside the data falls back to the extent.
	checkClamp(100, 200, 0, 80)
}

func TestClampedDomainUntrained(t *testing.T) {
	s := NewLinear()
	if min, max := s.ClampedDomain(-5, 5); min != -5 || max != 5 {
		t.Errorf("ClampedDomain(-5, 5) on untrained scale = [%v, %v]", min, max)
	}
}
