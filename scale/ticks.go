// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// A TickGenerator produces tick values covering a domain. It is the
// replaceable tick strategy installed in a Quantitative scale: Linear
// scales install LinearTicks, Log scales install LogTicks, and a
// caller can install a TickFunc for custom placement.
type TickGenerator interface {
	Ticks(min, max float64) []float64
}

// TickFunc adapts a function to the TickGenerator interface.
type TickFunc func(min, max float64) []float64

func (f TickFunc) Ticks(min, max float64) []float64 { return f(min, max) }

// LinearTicks generates ticks at multiples of 1, 2 or 5 times a power
// of ten, choosing the finest such step that produces at most Max
// ticks (and, if Pred is set, satisfies Pred).
type LinearTicks struct {
	// Max is the maximum number of ticks to generate.
	Max int

	// Pred, if non-nil, accepts or rejects a candidate tick set.
	// Rejecting forces a coarser step. Pred must be monotonic:
	// if it rejects a tick set, it must reject all denser sets.
	Pred func(ticks []float64) bool
}

func (g LinearTicks) Ticks(min, max float64) []float64 {
	if min > max {
		min, max = max, min
	}
	if min == max || math.IsNaN(min) || math.IsNaN(max) {
		return []float64{min}
	}

	l, ok := linearLevel(min, max, g.Max, g.Pred)
	if !ok {
		return []float64{min, max}
	}
	return ticksAtLevel(min, max, l)
}

// linearLevel returns the lowest ladder level that yields at most
// maxTicks ticks in [min, max] and satisfies pred, using the level
// search from go-moremath.
func linearLevel(min, max float64, maxTicks int, pred func([]float64) bool) (int, bool) {
	o := moremath.TickOptions{Max: maxTicks}
	t := levelTicker{
		min: min, max: max,
		maxTicks: maxTicks,
		pred:     pred,
	}
	return o.FindLevel(t, guessLevel(min, max))
}

// levelTicker adapts the ladder-level tick functions to go-moremath's
// Ticker interface. A level rejected by pred reports a count above
// maxTicks so FindLevel moves to a coarser level; because pred is
// monotonic, CountTicks stays weakly decreasing as Ticker requires.
type levelTicker struct {
	min, max float64
	maxTicks int
	pred     func(ticks []float64) bool
}

func (t levelTicker) CountTicks(level int) int {
	n := tickCount(t.min, t.max, level)
	if n <= t.maxTicks && t.pred != nil && !t.pred(ticksAtLevel(t.min, t.max, level)) {
		return t.maxTicks + 1
	}
	return n
}

func (t levelTicker) TicksAtLevel(level int) interface{} {
	return ticksAtLevel(t.min, t.max, level)
}

// ticksAtLeast returns ticks on the 1-2-5 ladder at the coarsest step
// that still yields at least n ticks in [min, max]. It is the
// linear-density fallback used when a log scale's power-of-base ticks
// would under-label the axis.
func ticksAtLeast(min, max float64, n int) []float64 {
	if min > max {
		min, max = max, min
	}
	if min == max || math.IsNaN(min) || math.IsNaN(max) {
		return []float64{min}
	}
	if n <= 1 {
		return []float64{min}
	}

	// Find the lowest level with fewer than n ticks; one level
	// finer is the coarsest step with at least n.
	l, ok := linearLevel(min, max, n-1, nil)
	if !ok {
		// Degenerate width; space n ticks evenly.
		ticks := make([]float64, n)
		for i := range ticks {
			ticks[i] = min + float64(i)*(max-min)/float64(n-1)
		}
		return ticks
	}
	return ticksAtLevel(min, max, l-1)
}

// tickStep returns the tick spacing at a ladder level. Consecutive
// levels step through 1, 2, 5 times successive powers of ten.
func tickStep(level int) float64 {
	k, m := level/3, level%3
	if m < 0 {
		k, m = k-1, m+3
	}
	return mults[m] * math.Pow(10, float64(k))
}

var mults = [3]float64{1, 2, 5}

// guessLevel returns a ladder level whose step is near the domain
// width, a good starting point for FindLevel's search.
func guessLevel(min, max float64) int {
	return 3 * int(math.Floor(math.Log10(max-min)))
}

const tickEps = 1e-9

func tickIndexes(min, max float64, level int) (i0, i1 int64) {
	step := tickStep(level)
	i0 = int64(math.Ceil(min/step - tickEps))
	i1 = int64(math.Floor(max/step + tickEps))
	return
}

func tickCount(min, max float64, level int) int {
	i0, i1 := tickIndexes(min, max, level)
	if i1 < i0 {
		return 0
	}
	return int(i1 - i0 + 1)
}

func ticksAtLevel(min, max float64, level int) []float64 {
	i0, i1 := tickIndexes(min, max, level)
	if i1 < i0 {
		return nil
	}
	step := tickStep(level)
	ticks := make([]float64, 0, i1-i0+1)
	for i := i0; i <= i1; i++ {
		ticks = append(ticks, float64(i)*step)
	}
	return ticks
}

// LogTicks generates ticks at integer powers of Base spanning the
// domain. If that yields fewer than MinTicks ticks, it falls back to
// linear-density ticks so narrow domains are not under-labeled.
type LogTicks struct {
	Base     float64
	MinTicks int
}

func (g LogTicks) Ticks(min, max float64) []float64 {
	i := math.Floor(logBase(min, g.Base))
	j := math.Ceil(logBase(max, g.Base))

	var ticks []float64
	if i <= j {
		for e := i; e <= j; e++ {
			ticks = append(ticks, math.Pow(g.Base, e))
		}
	} else {
		// Reversed or collapsed exponent range. Step downward
		// so we still terminate with a non-empty tick set.
		for e := i; e >= j; e-- {
			ticks = append(ticks, math.Pow(g.Base, e))
		}
	}

	if len(ticks) < g.MinTicks {
		return ticksAtLeast(min, max, g.MinTicks)
	}
	return ticks
}

// logBase returns log_base(x), snapped to the nearest integer when
// within rounding error of one so that exact powers of the base floor
// and ceil cleanly.
func logBase(x, base float64) float64 {
	l := math.Log(x) / math.Log(base)
	if r := math.Round(l); math.Abs(l-r) < 1e-9 {
		return r
	}
	return l
}
