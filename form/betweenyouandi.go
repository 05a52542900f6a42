// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package form

import (
	"math"

	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/clip"
	"honnef.co/go/solidlight/curves"
	"honnef.co/go/solidlight/smath"
)

// BetweenYouAndI wipes an ellipse in or out from top to bottom. Each frame
// consists of the visible part of the ellipse, a travelling wave and a
// rotating chord. The direction of the wipe flips at the end of every cycle.
type BetweenYouAndI struct {
	tick            int
	width           float64
	height          float64
	wipingInEllipse bool
}

func NewBetweenYouAndI(width, height float64, wipingInEllipse bool) BetweenYouAndI {
	return BetweenYouAndI{
		width:           width,
		height:          height,
		wipingInEllipse: wipingInEllipse,
	}
}

func (f BetweenYouAndI) Tick() int { return f.tick }

// WipingInEllipse reports whether the ellipse is currently being drawn, as
// opposed to erased.
func (f BetweenYouAndI) WipingInEllipse() bool { return f.wipingInEllipse }

// Bounds returns the box the ellipse is inscribed in.
func (f BetweenYouAndI) Bounds() curve.Rect {
	rx, ry := f.width/2, f.height/2
	return curve.Rect{X0: -rx, Y0: -ry, X1: rx, Y1: ry}
}

func (f BetweenYouAndI) ellipsePoints(ratio, wipeY float64) []curve.Point {
	ry := f.height / 2
	theta := math.Acos(smath.Clamp(wipeY/ry, -1, 1))
	start, end := theta, -theta
	if !f.wipingInEllipse {
		start, end = -theta, theta-smath.TwoPi
	}

	// The horizontal radius shrinks by one unit over the first half of the
	// cycle and recovers over the second.
	rx := f.width / 2
	if ratio < 0.5 {
		rx = smath.Lerp(rx, rx-1, ratio*2)
	} else {
		rx = smath.Lerp(rx-1, rx, ratio*2-1)
	}

	e := curves.Ellipse{RX: rx, RY: ry}
	return e.Sample(start+smath.HalfPi, end+smath.HalfPi, betweenYouAndIDivisions)
}

func (f BetweenYouAndI) wavePoints(ratio, wipeY, wipeExtent float64) []curve.Point {
	rx := f.width / 2
	k := math.Pi / f.height
	omega := 2 * math.Pi * 2
	out := make([]curve.Point, betweenYouAndIDivisions+1)
	if f.wipingInEllipse {
		dy := (f.height - wipeExtent) / betweenYouAndIDivisions
		for i := range out {
			y := float64(i) * dy
			out[i] = curve.Pt(rx*math.Sin(k*y+omega*ratio), wipeY-y)
		}
	} else {
		dy := wipeExtent / betweenYouAndIDivisions
		for i := range out {
			y := float64(i) * dy
			out[i] = curve.Pt(rx*math.Sin(-k*y+omega*ratio), wipeY+y)
		}
	}
	return out
}

func (f BetweenYouAndI) chord(ratio, wipeY float64) (curve.Line, bool) {
	box := f.Bounds()
	if f.wipingInEllipse {
		box.Y1 = wipeY
	} else {
		box.Y0 = wipeY
	}
	phi := -smath.QuarterPi + math.Pi*ratio
	sin, cos := math.Sincos(phi)
	p := curve.Pt(f.width*cos, f.height*sin)
	return clip.Segment(p, curve.Pt(-p.X, -p.Y), box)
}

func (f BetweenYouAndI) Next() (BetweenYouAndI, []solidlight.Polyline) {
	ratio := smath.TickRatio(f.tick, BetweenYouAndIMaxTicks)
	wipeExtent := f.height * ratio
	wipeY := f.height/2 - wipeExtent

	lines := []solidlight.Polyline{
		solidlight.Line(f.ellipsePoints(ratio, wipeY)),
		solidlight.Line(f.wavePoints(ratio, wipeY, wipeExtent)),
	}
	if l, ok := f.chord(ratio, wipeY); ok {
		lines = append(lines, solidlight.Line([]curve.Point{l.P0, l.P1}))
	}

	f.tick++
	if f.tick > BetweenYouAndIMaxTicks {
		f.tick = 0
		f.wipingInEllipse = !f.wipingInEllipse
	}
	return f, lines
}

func (f *BetweenYouAndI) Advance() ([]solidlight.Polyline, error) {
	next, lines := f.Next()
	*f = next
	return lines, nil
}
