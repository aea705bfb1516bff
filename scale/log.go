// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"
	"math"
)

// DefaultMinTicks is the minimum tick count below which a log scale
// abandons power-of-base ticks for linear-density ticks.
const DefaultMinTicks = 4

// Log is a continuous scale that maps its domain to its range through
// the logarithm. Domain bounds must be strictly positive. The zero
// domain is [1, base].
type Log struct {
	quantitative
	base     float64
	minTicks int
}

// NewLog returns a new logarithmic scale with the given tick base,
// typically 10. The base must be positive and not 1. minTicks is the
// minimum number of ticks the scale will generate; 0 means
// DefaultMinTicks.
func NewLog(base float64, minTicks int) (*Log, error) {
	if base <= 0 || base == 1 {
		return nil, fmt.Errorf("invalid log scale base %v", base)
	}
	if minTicks < 0 {
		return nil, fmt.Errorf("invalid minimum tick count %d", minTicks)
	}
	if minTicks == 0 {
		minTicks = DefaultMinTicks
	}
	s := &Log{base: base, minTicks: minTicks}
	s.quantitative = newQuantitative(logTransform{}, 1, base, LogTicks{Base: base, MinTicks: minTicks})
	return s, nil
}

// Base returns the tick base of s.
func (s *Log) Base() float64 { return s.base }

// SetDomain sets the domain of s. Both bounds must be strictly
// positive; otherwise SetDomain returns an error and the previous
// domain is retained. A degenerate domain [v, v] is expanded
// multiplicatively to [v/base, v*base], placing v at the geometric
// midpoint.
func (s *Log) SetDomain(min, max float64) error {
	if min <= 0 || max <= 0 {
		return domainError("log scale bounds must be positive, got [%v, %v]", min, max)
	}
	if min == max {
		min, max = min/s.base, max*s.base
	}
	s.dmin, s.dmax = min, max
	return nil
}

// Nice widens the domain outward to integer powers of the base.
func (s *Log) Nice() {
	if s.dmin <= 0 || s.dmax <= 0 || s.dmin > s.dmax {
		return
	}
	s.dmin = math.Pow(s.base, math.Floor(logBase(s.dmin, s.base)))
	s.dmax = math.Pow(s.base, math.Ceil(logBase(s.dmax, s.base)))
}

// Include widens the recorded data extent to cover v. Values a log
// scale cannot represent (non-positive, NaN, infinite) are ignored.
func (s *Log) Include(v float64) {
	if v <= 0 {
		return
	}
	s.quantitative.Include(v)
}

var _ Quantitative = (*Log)(nil)
