// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package clip implements Cohen-Sutherland line clipping.
package clip

import "honnef.co/go/curve"

// Outcode classifies a point relative to a clip rectangle.
type Outcode uint8

const (
	Inside Outcode = 0
	Left   Outcode = 1 << (iota - 1)
	Right
	Bottom
	Top
)

// Code computes pt's outcode relative to r. Points on the boundary are
// inside.
func Code(pt curve.Point, r curve.Rect) Outcode {
	var code Outcode
	if pt.X < r.MinX() {
		code |= Left
	} else if pt.X > r.MaxX() {
		code |= Right
	}
	if pt.Y < r.MinY() {
		code |= Bottom
	} else if pt.Y > r.MaxY() {
		code |= Top
	}
	return code
}

// Segment clips the segment from p0 to p1 to r. It reports false if no part
// of the segment lies within r. The direction of the segment is preserved.
func Segment(p0, p1 curve.Point, r curve.Rect) (curve.Line, bool) {
	minX, maxX := r.MinX(), r.MaxX()
	minY, maxY := r.MinY(), r.MaxY()
	c0 := Code(p0, r)
	c1 := Code(p1, r)
	for {
		if c0|c1 == 0 {
			return curve.Line{P0: p0, P1: p1}, true
		}
		if c0&c1 != 0 {
			return curve.Line{}, false
		}

		out := max(c0, c1)
		var pt curve.Point
		switch {
		case out&Top != 0:
			pt = curve.Pt(p0.X+(p1.X-p0.X)*(maxY-p0.Y)/(p1.Y-p0.Y), maxY)
		case out&Bottom != 0:
			pt = curve.Pt(p0.X+(p1.X-p0.X)*(minY-p0.Y)/(p1.Y-p0.Y), minY)
		case out&Right != 0:
			pt = curve.Pt(maxX, p0.Y+(p1.Y-p0.Y)*(maxX-p0.X)/(p1.X-p0.X))
		case out&Left != 0:
			pt = curve.Pt(minX, p0.Y+(p1.Y-p0.Y)*(minX-p0.X)/(p1.X-p0.X))
		}

		if out == c0 {
			p0 = pt
			c0 = Code(p0, r)
		} else {
			p1 = pt
			c1 = Code(p1, r)
		}
	}
}
