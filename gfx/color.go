// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gfx converts colors to the premultiplied linear form stored in
// vertices and draw records.
package gfx

import (
	"honnef.co/go/color"
	"honnef.co/go/solidlight/smath"
)

// Premul32 returns c in linear sRGB with premultiplied alpha, after scaling
// its alpha by opacity. A nil color is opaque white.
func Premul32(c *color.Color, opacity float64) [4]float32 {
	r, g, b, a := 1.0, 1.0, 1.0, 1.0
	if c != nil {
		cc := c.Convert(color.LinearSRGB)
		r = float64(cc.Values[0])
		g = float64(cc.Values[1])
		b = float64(cc.Values[2])
		a = float64(cc.Alpha)
	}
	a *= opacity

	return [4]float32{
		float32(r * a),
		float32(g * a),
		float32(b * a),
		float32(a),
	}
}

// Premul16 is like Premul32 but returns half floats.
func Premul16(c *color.Color, opacity float64) [4]uint16 {
	c32 := Premul32(c, opacity)
	return [4]uint16{
		smath.Float16(c32[0]),
		smath.Float16(c32[1]),
		smath.Float16(c32[2]),
		smath.Float16(c32[3]),
	}
}
