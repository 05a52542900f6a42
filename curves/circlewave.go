package curves

import (
	"math"

	"honnef.co/go/curve"
)

// CircleWave is a circle whose radius is modulated by a rotating, oscillating
// sine wave.
//
// See https://www.ericforman.com/blog/making-of-solid-light-for-anthony-mccall
type CircleWave struct {
	// Amplitude of the radial wave.
	A float64
	// Number of wave periods per revolution.
	F float64
	// Rotation speed, in radians per tick.
	S float64
	// Oscillation speed, in radians per tick.
	SmallF float64

	RotationPhase    float64
	OscillationPhase float64
}

// Radius returns the modulated radius at angle theta.
func (cw CircleWave) Radius(r, theta float64, tick int) float64 {
	t := float64(tick)
	return r + cw.A*math.Sin(cw.F*theta+cw.S*t+cw.RotationPhase)*math.Cos(cw.SmallF*t+cw.OscillationPhase)
}

// Point returns the point at angle theta. The x axis is stretched by 1.1.
func (cw CircleWave) Point(r, theta float64, tick int) curve.Point {
	ar := cw.Radius(r, theta, tick)
	sin, cos := math.Sincos(theta)
	return curve.Pt(1.1*ar*cos, ar*sin)
}

// Sample returns divisions+1 points spanning one full turn around a circle of
// base radius r.
func (cw CircleWave) Sample(r float64, divisions int, tick int) []curve.Point {
	delta := 2 * math.Pi / float64(divisions)
	out := make([]curve.Point, divisions+1)
	for i := range out {
		out[i] = cw.Point(r, delta*float64(i), tick)
	}
	return out
}
