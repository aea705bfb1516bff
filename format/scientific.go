// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"math"
	"strconv"
	"strings"
)

// superscripts maps the characters of an exponent to their unicode
// superscript forms. It is a fixed table, never mutated.
var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '.': '·',
}

// Exponential returns a formatter that renders values in scientific
// notation with unicode superscript exponents: 2500 becomes "2.5×10³".
// The mantissa is rounded to at most prec digits after the decimal
// point. Zero, NaN and infinities are rendered directly; values whose
// exponent is zero are rendered without the ×10ⁿ suffix; a mantissa
// that rounds to exactly 1 is dropped, so 1000 renders as "10³"
// rather than "1×10³".
func Exponential(prec int) (Func, error) {
	if err := checkPrecision(prec); err != nil {
		return nil, err
	}
	return func(x float64) string {
		// The exponent math below is undefined or degenerate
		// for these.
		if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'f', -1, 64)
		}

		sign := ""
		if x < 0 {
			sign = "-"
			x = -x
		}
		e := exponent10(x)
		m := roundTo(x/math.Pow10(e), prec)

		if e == 0 {
			return sign + strconv.FormatFloat(m, 'f', -1, 64)
		}
		if m == 1 {
			return sign + "10" + superscript(strconv.Itoa(e))
		}
		mantissa := strconv.FormatFloat(m, 'f', -1, 64)
		return sign + mantissa + "×10" + superscript(strconv.Itoa(e))
	}, nil
}

// exponent10 returns the decimal exponent of x > 0, the e such that
// x = m×10^e with 1 <= m < 10. It reads the exponent off x's decimal
// string representation rather than using math.Log10, which can round
// just below integer values (math.Log10(1000) may be 2.999...96,
// flooring to the wrong exponent).
func exponent10(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	e, err := strconv.Atoi(s[strings.IndexByte(s, 'e')+1:])
	if err != nil {
		panic("malformed exponent in " + s)
	}
	return e
}

func superscript(s string) string {
	return strings.Map(func(r rune) rune {
		if sup, ok := superscripts[r]; ok {
			return sup
		}
		return r
	}, s)
}
