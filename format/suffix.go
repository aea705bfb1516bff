// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"math"
	"strconv"
	"strings"
)

// siPrefixes are the standard metric magnitude prefixes, from yocto
// (1e-24) to yotta (1e24), in ascending order of magnitude.
var siPrefixes = []string{"y", "z", "a", "f", "p", "n", "µ", "m", "", "k", "M", "G", "T", "P", "E", "Z", "Y"}

// siZero is the index of the empty prefix in siPrefixes.
const siZero = 8

// SISuffix returns a formatter that renders values with a standard SI
// magnitude prefix: 1500 becomes "1.5k". The scaled value keeps at
// most prec digits after the decimal point.
func SISuffix(prec int) (Func, error) {
	if err := checkPrecision(prec); err != nil {
		return nil, err
	}
	return func(x float64) string {
		if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}
		tier := int(math.Floor(float64(exponent10(math.Abs(x))) / 3))
		if tier < -siZero {
			tier = -siZero
		} else if tier > len(siPrefixes)-1-siZero {
			tier = len(siPrefixes) - 1 - siZero
		}
		scaled := roundTo(x/math.Pow10(3*tier), prec)
		// Rounding can carry the scaled value to 1000; bump to
		// the next prefix so 999960 renders "1M", not "1000k".
		if math.Abs(scaled) >= 1000 && tier < len(siPrefixes)-1-siZero {
			tier++
			scaled = roundTo(x/math.Pow10(3*tier), prec)
		}
		return strconv.FormatFloat(scaled, 'f', -1, 64) + siPrefixes[tier+siZero]
	}, nil
}

// shortSuffixes is the short-scale suffix ladder: thousand, million,
// billion, trillion, quadrillion.
var shortSuffixes = [...]string{"K", "M", "B", "T", "Q"}

// ShortScale returns a formatter that renders values with short-scale
// suffixes: 1000 becomes "1.000K" (at prec 3). Magnitudes below
// 10^-prec or at or above 10^15 fall back to scientific notation,
// which guards against absurdly long decimal expansions. If
// fixed-precision rounding pushes the scaled value up to 1000, the
// value is bumped to the next suffix tier so 999999 never renders as
// "1000K".
func ShortScale(prec int) (Func, error) {
	if err := checkPrecision(prec); err != nil {
		return nil, err
	}
	fixed, err := Fixed(prec)
	if err != nil {
		return nil, err
	}
	exp, err := Exponential(prec)
	if err != nil {
		return nil, err
	}
	return func(x float64) string {
		abs := math.Abs(x)
		if x != 0 && !math.IsNaN(x) && (abs < math.Pow10(-prec) || abs >= 1e15) {
			return exp(x)
		}

		// Largest tier whose divisor still fits the value.
		idx := -1
		for idx+1 < len(shortSuffixes) && abs >= math.Pow(1000, float64(idx+2)) {
			idx++
		}

		s := fixed(x / math.Pow(1000, float64(idx+1)))
		if overflowsTier(s) {
			// Rounding carried into a fourth integer digit.
			if idx+1 < len(shortSuffixes) {
				idx++
				s = fixed(x / math.Pow(1000, float64(idx+1)))
			} else {
				return exp(x)
			}
		}
		if idx >= 0 {
			s += shortSuffixes[idx]
		}
		return s
	}, nil
}

// overflowsTier reports whether a fixed-format value has reached four
// integer digits, meaning it belongs in the next suffix tier.
func overflowsTier(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		s = s[:dot]
	}
	return len(s) > 3
}
