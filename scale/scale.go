// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides invertible mappings from numeric data
// domains to display ranges, with tick generation for axis labeling.
//
// A scale maps a domain [min, max] (data space) to a range [lo, hi]
// (display space, typically pixels) through an invertible transform.
// Linear scales map directly; Log scales map through the logarithm.
// Both produce tick values suitable for axis marks, via a replaceable
// TickGenerator strategy.
package scale

import (
	"fmt"
	"math"
)

// Quantitative is a continuous scale between a numeric domain and a
// numeric range.
//
// A Quantitative scale is mutable (domain, range, tick generator) and
// must not be mutated by more than one goroutine without external
// synchronization. The mapping operations themselves are pure.
type Quantitative interface {
	// Domain returns the current domain bounds.
	Domain() (min, max float64)

	// SetDomain sets the domain. If min == max, the domain is
	// expanded around the degenerate point so the scale has
	// nonzero extent; the expansion rule depends on the scale
	// type. If the domain is invalid for the scale type,
	// SetDomain returns an error and the previous domain is
	// retained.
	SetDomain(min, max float64) error

	// Range and SetRange access the output range. The range is
	// any pair of reals; no ordering is required.
	Range() (lo, hi float64)
	SetRange(lo, hi float64)

	// Scale maps a domain value to a range value. It is monotonic
	// wherever the underlying transform is monotonic.
	Scale(x float64) float64

	// Invert maps a range value back to a domain value. It is the
	// inverse of Scale up to floating-point error.
	Invert(y float64) float64

	// Ticks returns tick values spanning the domain, produced by
	// the installed TickGenerator. The result is computed fresh
	// on every call.
	Ticks() []float64

	// SetTickGenerator replaces the tick generation strategy.
	SetTickGenerator(g TickGenerator)

	// Nice widens the domain outward to round bounds appropriate
	// for the scale's transform. It never narrows the domain.
	Nice()

	// Include widens the scale's recorded data extent to cover v.
	// NaN and infinite values are ignored, as are values the
	// scale cannot represent.
	Include(v float64)

	// Extent returns the recorded data extent. ok is false if no
	// values have been included.
	Extent() (min, max float64, ok bool)

	// ClampedDomain clamps a proposed domain to the recorded data
	// extent, for pan/zoom interactions that must not drift
	// beyond the data. If no extent is recorded, the proposal is
	// returned unchanged.
	ClampedDomain(min, max float64) (float64, float64)
}

// quantitative holds the machinery shared by all continuous scales.
type quantitative struct {
	t          Transform
	dmin, dmax float64
	rlo, rhi   float64
	gen        TickGenerator

	// Data extent recorded by Include. NaN until trained.
	dataMin, dataMax float64
}

func newQuantitative(t Transform, dmin, dmax float64, gen TickGenerator) quantitative {
	return quantitative{
		t:    t,
		dmin: dmin, dmax: dmax,
		rlo: 0, rhi: 1,
		gen:     gen,
		dataMin: math.NaN(), dataMax: math.NaN(),
	}
}

func (q *quantitative) Domain() (min, max float64) {
	return q.dmin, q.dmax
}

func (q *quantitative) Range() (lo, hi float64) {
	return q.rlo, q.rhi
}

func (q *quantitative) SetRange(lo, hi float64) {
	q.rlo, q.rhi = lo, hi
}

func (q *quantitative) Scale(x float64) float64 {
	t0, t1 := q.t.Forward(q.dmin), q.t.Forward(q.dmax)
	return q.rlo + (q.t.Forward(x)-t0)/(t1-t0)*(q.rhi-q.rlo)
}

func (q *quantitative) Invert(y float64) float64 {
	t0, t1 := q.t.Forward(q.dmin), q.t.Forward(q.dmax)
	return q.t.Inverse(t0 + (y-q.rlo)/(q.rhi-q.rlo)*(t1-t0))
}

func (q *quantitative) Ticks() []float64 {
	return q.gen.Ticks(q.dmin, q.dmax)
}

func (q *quantitative) SetTickGenerator(g TickGenerator) {
	q.gen = g
}

func (q *quantitative) Include(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	if math.IsNaN(q.dataMin) {
		q.dataMin, q.dataMax = v, v
	} else {
		q.dataMin = math.Min(q.dataMin, v)
		q.dataMax = math.Max(q.dataMax, v)
	}
}

func (q *quantitative) Extent() (min, max float64, ok bool) {
	if math.IsNaN(q.dataMin) {
		return 0, 0, false
	}
	return q.dataMin, q.dataMax, true
}

func (q *quantitative) ClampedDomain(min, max float64) (float64, float64) {
	if math.IsNaN(q.dataMin) {
		return min, max
	}
	min = math.Max(min, q.dataMin)
	max = math.Min(max, q.dataMax)
	if min > max {
		return q.dataMin, q.dataMax
	}
	return min, max
}

// domainError reports an invalid domain for a scale type.
func domainError(format string, args ...interface{}) error {
	return fmt.Errorf("invalid scale domain: "+format, args...)
}
