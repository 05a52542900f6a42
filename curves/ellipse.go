// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package curves contains the closed-form curves the forms are built from.
// All of them are pure functions of a parameter and, for the animated ones,
// a tick.
package curves

import (
	"math"

	"honnef.co/go/curve"
)

// Ellipse is an axis-aligned ellipse centered on the origin.
type Ellipse struct {
	RX float64
	RY float64
}

// Point returns the point at the given angle, in radians.
func (e Ellipse) Point(angle float64) curve.Point {
	sin, cos := math.Sincos(angle)
	return curve.Pt(e.RX*cos, e.RY*sin)
}

// Deriv returns the derivative of [Ellipse.Point] with respect to the angle.
func (e Ellipse) Deriv(angle float64) curve.Vec2 {
	sin, cos := math.Sincos(angle)
	return curve.Vec(-e.RX*sin, e.RY*cos)
}

// Eval is the same as Point.
func (e Ellipse) Eval(angle float64) curve.Point { return e.Point(angle) }

// Sample returns divisions+1 points, interpolating the angle linearly from
// start to end. The angles are used as given: start may be larger than end,
// and either may span multiple revolutions.
func (e Ellipse) Sample(start, end float64, divisions int) []curve.Point {
	delta := end - start
	out := make([]curve.Point, divisions+1)
	for i := range out {
		t := float64(i) / float64(divisions)
		out[i] = e.Point(start + delta*t)
	}
	return out
}

// BoundingBox returns the ellipse's axis-aligned bounding box.
func (e Ellipse) BoundingBox() curve.Rect {
	rx, ry := math.Abs(e.RX), math.Abs(e.RY)
	return curve.Rect{X0: -rx, Y0: -ry, X1: rx, Y1: ry}
}

// Shape returns the ellipse as a [curve.Ellipse].
func (e Ellipse) Shape() curve.Ellipse {
	return curve.NewEllipse(curve.Pt(0, 0), curve.Vec(e.RX, e.RY), 0)
}
