// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"math"
	"testing"
)

func TestShortScale(t *testing.T) {
	check := func(prec int, x float64, want string) {
		t.Helper()
		f, err := ShortScale(prec)
		if err != nil {
			t.Fatal(err)
		}
		if got := f(x); got != want {
			t.Errorf("ShortScale(%d)(%v) = %q, want %q", prec, x, got, want)
		}
	}

	check(3, 0, "0.000")
	check(3, 500, "500.000")
	check(3, 1000, "1.000K")
	check(3, 2500000, "2.500M")
	check(3, 7.2e9, "7.200B")
	check(3, 3e12, "3.000T")
	check(0, 4e14, "400T")
	check(0, -2600, "-3K")

	// Rounding must not produce a four-digit mantissa: 999999 is
	// "999.999K" at precision 3, but at precision 0 it rounds to
	// 1000 and must bump to the next tier.
	check(3, 999999, "999.999K")
	check(0, 999999, "1M")
	check(1, 999960, "1.0M")

	// Magnitudes outside the suffix ladder fall back to
	// scientific notation.
	check(3, 1e15, "10¹⁵")
	check(3, 2e16, "2×10¹⁶")
	check(3, 0.0001, "10⁻⁴")
	check(0, 0.5, "5×10⁻¹")

	// Non-finite values format directly.
	check(3, math.NaN(), "NaN")
	check(3, math.Inf(1), "+Inf")
}

func TestSISuffix(t *testing.T) {
	check := func(prec int, x float64, want string) {
		t.Helper()
		f, err := SISuffix(prec)
		if err != nil {
			t.Fatal(err)
		}
		if got := f(x); got != want {
			t.Errorf("SISuffix(%d)(%v) = %q, want %q", prec, x, got, want)
		}
	}

	check(1, 0, "0")
	check(1, 1500, "1.5k")
	check(1, 2.5e6, "2.5M")
	check(0, 3e9, "3G")
	check(1, 0.001, "1m")
	check(1, 0.0000025, "2.5µ")
	check(1, 42, "42")
	check(1, -1500, "-1.5k")
	check(1, math.NaN(), "NaN")

	// Rounding must not leave a value at 1000 of one prefix when it
	// belongs in the next: 999960 at precision 1 rounds the scaled
	// value to 1000, so it must render "1M", not "1000k".
	check(1, 999960, "1M")
	check(1, 999.99, "1k")
	check(1, 0.00099996, "1m")
	check(1, -999960, "-1M")
	// At yotta there is no next prefix to bump to.
	check(1, 9.9996e26, "1000Y")
}
