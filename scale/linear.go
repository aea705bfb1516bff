// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// DefaultMaxTicks is the maximum tick count requested by a linear
// scale's default tick generator.
const DefaultMaxTicks = 10

// Linear is a continuous scale that maps its domain to its range
// proportionally. The zero domain is [0, 1].
type Linear struct {
	quantitative
	maxTicks int
}

// NewLinear returns a new linear scale with domain [0, 1] and range
// [0, 1].
func NewLinear() *Linear {
	s := &Linear{maxTicks: DefaultMaxTicks}
	s.quantitative = newQuantitative(identity{}, 0, 1, LinearTicks{Max: DefaultMaxTicks})
	return s
}

// SetDomain sets the domain of s. A degenerate domain [v, v] is
// expanded additively to [v-1, v+1]. SetDomain always succeeds for a
// linear scale.
func (s *Linear) SetDomain(min, max float64) error {
	if min == max {
		min, max = min-1, max+1
	}
	s.dmin, s.dmax = min, max
	return nil
}

// Nice widens the domain outward to multiples of the tick step that
// would be chosen for the current domain.
func (s *Linear) Nice() {
	min, max := s.dmin, s.dmax
	reversed := min > max
	if reversed {
		min, max = max, min
	}
	if min == max || math.IsNaN(min) || math.IsNaN(max) {
		return
	}
	l, ok := linearLevel(min, max, s.maxTicks, nil)
	if !ok {
		return
	}
	step := tickStep(l)
	min = math.Floor(min/step) * step
	max = math.Ceil(max/step) * step
	if reversed {
		s.dmin, s.dmax = max, min
	} else {
		s.dmin, s.dmax = min, max
	}
}

var _ Quantitative = (*Linear)(nil)
