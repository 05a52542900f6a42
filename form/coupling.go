// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package form

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/curves"
	"honnef.co/go/solidlight/smath"
)

// Coupling is a pair of circle waves that take turns shrinking away and
// growing back. The second ring runs half a cycle behind the first and is
// mirrored horizontally.
type Coupling struct {
	tick  int
	outer float64
	inner float64
	ringA curves.CircleWave
	ringB curves.CircleWave
}

func NewCoupling(outerRadius, innerRadius float64) Coupling {
	a := (outerRadius - innerRadius) * 0.4
	return Coupling{
		outer: outerRadius,
		inner: innerRadius,
		ringA: curves.CircleWave{
			A:                a,
			F:                3.5,
			S:                0.001,
			SmallF:           0.001,
			RotationPhase:    math.Pi,
			OscillationPhase: math.Pi,
		},
		ringB: curves.CircleWave{
			A:                a,
			F:                3.5,
			S:                0.001,
			SmallF:           0.001,
			RotationPhase:    math.Pi / 2,
			OscillationPhase: math.Pi,
		},
	}
}

func (f Coupling) Tick() int { return f.tick }

// ring returns a ring's radius and opacity at the given point of its cycle.
// visible is false while the ring is hidden.
//
//	quarter 0: outer radius, fading out
//	quarter 1: hidden
//	quarter 2: inner radius, fading in
//	quarter 3: growing from inner to outer radius
func (f Coupling) ring(ratio float64) (radius, opacity float64, visible bool) {
	q, t := smath.Quarter(ratio)
	switch q {
	case 0:
		return f.outer, 1 - t, true
	case 1:
		return 0, 0, false
	case 2:
		return f.inner, t, true
	case 3:
		return smath.Lerp(f.inner, f.outer, t), 1, true
	default:
		panic(fmt.Sprintf("unhandled value %d", q))
	}
}

func (f Coupling) Next() (Coupling, []solidlight.Polyline) {
	ratio := smath.TickRatio(f.tick, CouplingMaxTicks)
	var lines []solidlight.Polyline
	if r, opacity, ok := f.ring(ratio); ok {
		lines = append(lines, solidlight.Polyline{
			Points:  f.ringA.Sample(r, couplingDivisions, f.tick),
			Opacity: opacity,
		})
	}
	if r, opacity, ok := f.ring(math.Mod(ratio+0.5, 1)); ok {
		pts := f.ringB.Sample(r, couplingDivisions, f.tick)
		for i, pt := range pts {
			pts[i] = curve.Pt(-pt.X, pt.Y)
		}
		lines = append(lines, solidlight.Polyline{
			Points:  pts,
			Opacity: opacity,
		})
	}

	f.tick++
	if f.tick > CouplingMaxTicks {
		f.tick = 0
	}
	return f, lines
}

func (f *Coupling) Advance() ([]solidlight.Polyline, error) {
	next, lines := f.Next()
	*f = next
	return lines, nil
}
