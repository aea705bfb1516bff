// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format provides formatters that render numbers and times
// into compact axis label strings.
//
// A formatter is a pure function from a value to a string. Formatter
// constructors validate their configuration eagerly and return an
// error rather than a partially usable formatter, so a bad axis
// configuration fails when the chart is built, not when a tick
// happens to be drawn. Constructed formatters are immutable and safe
// to share.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Func formats a numeric value for display.
type Func func(float64) string

// Default precisions for formatter constructors.
const (
	DefaultPrecision           = 3
	DefaultCurrencyPrecision   = 2
	DefaultPercentagePrecision = 0
)

// maxPrecision is the largest supported decimal precision, matching
// the precision range of fixed-decimal stringification.
const maxPrecision = 20

func checkPrecision(prec int) error {
	if prec < 0 || prec > maxPrecision {
		return fmt.Errorf("precision %d out of range [0, %d]", prec, maxPrecision)
	}
	return nil
}

// Fixed returns a formatter that renders values with exactly prec
// digits after the decimal point.
func Fixed(prec int) (Func, error) {
	if err := checkPrecision(prec); err != nil {
		return nil, err
	}
	return func(x float64) string {
		return strconv.FormatFloat(x, 'f', prec, 64)
	}, nil
}

// General returns a formatter that renders values with at most prec
// digits after the decimal point, trimming trailing zeros.
func General(prec int) (Func, error) {
	if err := checkPrecision(prec); err != nil {
		return nil, err
	}
	return func(x float64) string {
		return strconv.FormatFloat(roundTo(x, prec), 'f', -1, 64)
	}, nil
}

// Identity returns a formatter that renders values in their shortest
// exact representation.
func Identity() Func {
	return func(x float64) string {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
}

// Percentage returns a formatter that renders values as percentages:
// 0.1 becomes "10%". prec is the number of digits after the decimal
// point.
func Percentage(prec int) (Func, error) {
	fixed, err := Fixed(prec)
	if err != nil {
		return nil, err
	}
	return func(x float64) string {
		return fixed(undrift(x, x*100)) + "%"
	}, nil
}

// Currency returns a formatter that renders values as amounts of
// money with the given symbol. If prefix is true the symbol precedes
// the value, otherwise it follows. The sign is applied outside the
// symbol, so -5 with a "$" prefix renders as "-$5.00".
func Currency(prec int, symbol string, prefix bool) (Func, error) {
	fixed, err := Fixed(prec)
	if err != nil {
		return nil, err
	}
	return func(x float64) string {
		s := fixed(math.Abs(x))
		if s == "" {
			return s
		}
		if prefix {
			s = symbol + s
		} else {
			s += symbol
		}
		if x < 0 {
			s = "-" + s
		}
		return s
	}, nil
}

// roundTo rounds x to at most prec digits after the decimal point.
func roundTo(x float64, prec int) float64 {
	pow := math.Pow10(prec)
	return math.Round(x*pow) / pow
}

// undrift corrects scaled for binary floating-point representation
// error in x*k products, such as 0.1*100 = 10.000000000000002. It
// re-rounds scaled through the power of ten given by the number of
// fractional digits in x's shortest decimal representation. This is a
// pragmatic workaround rather than a principled algorithm; it is
// isolated here so a decimal-based reimplementation can replace the
// technique without touching callers.
func undrift(x, scaled float64) float64 {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return scaled
	}
	pow := math.Pow10(len(s) - dot - 1)
	return math.Round(scaled*pow) / pow
}
