// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis lays out and renders a single chart axis from a scale
// and a formatter. It is the consumer boundary of the scale and
// format packages; it contributes no numeric algorithms of its own.
package axis

import (
	"io"
	"math"

	"github.com/ajstarks/svgo"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/aclements/go-chart/format"
	"github.com/aclements/go-chart/scale"
)

// A Tick is a labeled position on an axis.
type Tick struct {
	// Value is the tick's domain value.
	Value float64

	// Pos is the tick's position in range (pixel) coordinates.
	Pos float64

	// Label is the formatted tick value.
	Label string
}

// An Axis pairs a scale with a label formatter. The axis positions
// ticks using the scale's range, so the caller should set the range
// to the axis's pixel extent before layout.
type Axis struct {
	Scale  scale.Quantitative
	Format format.Func

	// LabelSep is the minimum pixel separation between adjacent
	// labels. Zero means a default separation.
	LabelSep float64
}

const defaultLabelSep = 4

// labelFace is the face used to measure labels. Axis output is SVG,
// so this is an estimate in the manner of a fixed-width screen font
// rather than a text-shaping pass.
var labelFace font.Face = basicfont.Face7x13

// New returns an axis for s labeled with f.
func New(s scale.Quantitative, f format.Func) *Axis {
	return &Axis{Scale: s, Format: f}
}

// Ticks returns the scale's ticks with positions and labels. If
// adjacent labels would overlap at the scale's current range, ticks
// are thinned to every second, third, etc. until the labels fit.
func (a *Axis) Ticks() []Tick {
	vals := a.Scale.Ticks()
	for stride := 1; ; stride++ {
		cand := thin(vals, stride)
		if stride >= len(vals) || a.LabelsFit(cand) {
			return a.layout(cand)
		}
	}
}

func thin(vals []float64, stride int) []float64 {
	if stride <= 1 {
		return vals
	}
	var out []float64
	for i := 0; i < len(vals); i += stride {
		out = append(out, vals[i])
	}
	return out
}

// LabelsFit reports whether the labels for ticks, centered at their
// scaled positions, leave at least LabelSep pixels between neighbors.
// It satisfies the monotonicity contract of scale.LinearTicks.Pred,
// so it can be installed there to fold label fitting into tick
// selection.
func (a *Axis) LabelsFit(ticks []float64) bool {
	sep := a.LabelSep
	if sep == 0 {
		sep = defaultLabelSep
	}
	prev := math.Inf(-1)
	for _, t := range asc(ticks, a.Scale) {
		w := float64(font.MeasureString(labelFace, a.Format(t.Value)).Ceil())
		if t.Pos-w/2 < prev+sep {
			return false
		}
		prev = t.Pos + w/2
	}
	return true
}

func (a *Axis) layout(vals []float64) []Tick {
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Pos: a.Scale.Scale(v), Label: a.Format(v)}
	}
	return ticks
}

// asc returns ticks laid out in ascending position order, which the
// overlap check needs even when the range is reversed.
func asc(vals []float64, s scale.Quantitative) []Tick {
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Pos: s.Scale(v)}
	}
	for i := 1; i < len(ticks); i++ {
		for j := i; j > 0 && ticks[j].Pos < ticks[j-1].Pos; j-- {
			ticks[j], ticks[j-1] = ticks[j-1], ticks[j]
		}
	}
	return ticks
}

// RenderSVG writes a horizontal axis as a standalone SVG document.
// The axis line spans the scale's range at the top of the image with
// tick marks and labels below it.
func (a *Axis) RenderSVG(w io.Writer, width, height int) {
	const tickLen = 6

	canvas := svg.New(w)
	canvas.Start(width, height)

	lo, hi := a.Scale.Range()
	if lo > hi {
		lo, hi = hi, lo
	}
	y := height / 3
	canvas.Line(int(lo), y, int(hi), y, "stroke:#888;stroke-width:2")
	for _, tick := range a.Ticks() {
		x := int(tick.Pos)
		canvas.Line(x, y, x, y+tickLen, "stroke:#888;stroke-width:2")
		canvas.Text(x, y+tickLen, tick.Label, `text-anchor="middle" dy="1em" fill="#666"`)
	}
	canvas.End()
}
