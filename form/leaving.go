// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package form

import (
	"fmt"
	"math"
	"slices"

	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/curves"
	"honnef.co/go/solidlight/intersect"
	"honnef.co/go/solidlight/smath"
)

// Leaving is an elliptical arc that grows, or shrinks, by one revolution per
// cycle. A short travelling wave is spliced onto the arc's moving tip; the
// splice point is the intersection of the ellipse and the wave.
type Leaving struct {
	tick    int
	ellipse curves.Ellipse
	growing bool
	start   float64
	end     float64

	// Converged splice parameters of the previous frame.
	estimate    [2]float64
	hasEstimate bool
}

func NewLeaving(rx, ry float64, growing bool) Leaving {
	f := Leaving{ellipse: curves.Ellipse{RX: rx, RY: ry}}
	f.reset(growing)
	return f
}

func (f *Leaving) reset(growing bool) {
	f.tick = 0
	f.growing = growing
	f.start = -smath.HalfPi
	if growing {
		f.end = -smath.HalfPi
	} else {
		f.end = -smath.HalfPi - smath.TwoPi
	}
	f.estimate = [2]float64{}
	f.hasEstimate = false
}

func (f Leaving) Tick() int     { return f.tick }
func (f Leaving) Growing() bool { return f.growing }

// waveRadiusRatio scales the wave's length. The wave grows out of the tip in
// the first quarter of the cycle and retracts into it in the last.
func waveRadiusRatio(ratio float64) float64 {
	switch {
	case ratio <= 0.25:
		return ratio * 4
	case ratio >= 0.75:
		return (1 - ratio) * 4
	default:
		return 1
	}
}

func waveAngleOffset(ratio float64) float64 {
	switch {
	case ratio <= 0.25:
		return -(1 - ratio*4) * smath.QuarterPi
	case ratio >= 0.75:
		return (ratio - 0.75) * 4 * smath.QuarterPi
	default:
		return 0
	}
}

func (f Leaving) oscillationAngle(ratio float64) float64 {
	const period = LeavingMaxTicks / 50
	s := math.Sin(smath.TwoPi * float64(f.tick%period) / period)
	return s * smath.Radians(5) * math.Abs(math.Sin(smath.TwoPi*ratio))
}

// spliceWave is a sine wave that starts at tip and travels in direction
// angle. Its parameter is the distance along that direction.
type spliceWave struct {
	tip   curve.Point
	angle float64
	a     float64
	k     float64
	phase float64
}

func (w spliceWave) offset(s float64) float64 {
	return w.a * (math.Sin(w.k*s+w.phase) - math.Sin(w.phase))
}

func (w spliceWave) Eval(s float64) curve.Point {
	aff := curve.Rotate(w.angle).ThenTranslate(curve.Vec2(w.tip))
	return curve.Pt(s, w.offset(s)).Transform(aff)
}

func (w spliceWave) Deriv(s float64) curve.Vec2 {
	d := curve.Pt(1, w.a*w.k*math.Cos(w.k*s+w.phase))
	return curve.Vec2(d.Transform(curve.Rotate(w.angle)))
}

func (w spliceWave) sample(from, to float64, divisions int) []curve.Point {
	out := make([]curve.Point, divisions+1)
	ds := (to - from) / float64(divisions)
	for i := range out {
		out[i] = w.Eval(from + ds*float64(i))
	}
	return out
}

// Next returns the frame for the current tick. If the splice point cannot be
// found, Next returns an error wrapping [intersect.ErrNoConvergence] and the
// receiver is returned unchanged.
func (f Leaving) Next() (Leaving, []solidlight.Polyline, error) {
	prev := f
	ratio := smath.TickRatio(f.tick, LeavingMaxTicks)
	oscillation := f.oscillationAngle(ratio)

	delta := smath.TwoPi / LeavingMaxTicks
	moving := f.start
	if f.growing {
		f.end -= delta
		moving = f.end
	} else {
		f.start -= delta
	}
	theta := moving + oscillation

	amplitude := 0.2 * math.Abs(math.Sin(smath.TwoPi*ratio))
	frequency := 12 * math.Abs(math.Sin(smath.TwoPi*ratio))
	angle := theta + math.Pi + waveAngleOffset(ratio)
	wave := spliceWave{
		tip:   f.ellipse.Point(theta),
		angle: angle,
		a:     amplitude,
		k:     smath.TwoPi / f.ellipse.RY,
		phase: smath.TwoPi * frequency * ratio,
	}
	sin, cos := math.Sincos(angle)
	length := waveRadiusRatio(ratio) * math.Hypot(f.ellipse.RX*cos, f.ellipse.RY*sin)

	est := [2]float64{theta, 0}
	if f.hasEstimate {
		est = f.estimate
	}
	t1, s, err := intersect.Solve(f.ellipse, wave, est[0], est[1])
	if err != nil {
		return prev, nil, fmt.Errorf("leaving: splice at tick %d: %w", prev.tick, err)
	}
	f.estimate = [2]float64{t1, s}
	f.hasEstimate = true

	wavePts := wave.sample(s, length, leavingWaveDivisions)[1:]
	var pts []curve.Point
	if f.growing {
		pts = f.ellipse.Sample(f.start, t1, leavingEllipseDivisions)
		pts = append(pts, wavePts...)
	} else {
		slices.Reverse(wavePts)
		pts = append(wavePts, f.ellipse.Sample(t1, f.end, leavingEllipseDivisions)...)
	}

	f.tick++
	if f.tick > LeavingMaxTicks {
		f.reset(!f.growing)
	}
	return f, []solidlight.Polyline{solidlight.Line(pts)}, nil
}

func (f *Leaving) Advance() ([]solidlight.Polyline, error) {
	next, lines, err := f.Next()
	if err != nil {
		return nil, err
	}
	*f = next
	return lines, nil
}
