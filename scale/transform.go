// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// A Transform is an invertible map between a scale's domain and the
// intermediate space the scale interpolates in. Inverse must be the
// mathematical inverse of Forward wherever Forward is defined.
type Transform interface {
	Forward(x float64) float64
	Inverse(y float64) float64
}

// identity is the transform of a linear scale.
type identity struct{}

func (identity) Forward(x float64) float64 { return x }
func (identity) Inverse(y float64) float64 { return y }

// logTransform maps through the natural logarithm. The base of a
// logarithmic scale affects only tick placement, not the mapping
// itself, so the transform does not carry it.
type logTransform struct{}

func (logTransform) Forward(x float64) float64 { return math.Log(x) }
func (logTransform) Inverse(y float64) float64 { return math.Exp(y) }
