package curves

import (
	"math"

	"honnef.co/go/curve"
)

// TravellingWave is a sine wave travelling along a straight axis. The wave
// spans Width horizontally, or Height vertically, and has an amplitude of
// Height/2.
type TravellingWave struct {
	Center curve.Point
	Width  float64
	Height float64
	// Vertical waves travel along the y axis and displace x.
	Vertical   bool
	Phase      float64
	Wavelength float64
	Frequency  float64
	// Speed scales ticks into the wave's time.
	Speed float64
}

// Offset returns the wave's displacement at distance x along its axis.
func (tw TravellingWave) Offset(x float64, tick int) float64 {
	k := 2 * math.Pi / tw.Wavelength
	omega := 2 * math.Pi * tw.Frequency
	return tw.Height / 2 * math.Sin(k*x-omega*float64(tick)*tw.Speed+tw.Phase)
}

// Sample returns divisions+1 points along the wave.
func (tw TravellingWave) Sample(divisions int, tick int) []curve.Point {
	length := tw.Width
	if tw.Vertical {
		length = tw.Height
	}
	dx := length / float64(divisions)
	out := make([]curve.Point, divisions+1)
	for i := range out {
		x := dx * float64(i)
		y := tw.Offset(x, tick)
		if tw.Vertical {
			out[i] = curve.Pt(tw.Center.X+y, tw.Center.Y-tw.Height/2+x)
		} else {
			out[i] = curve.Pt(tw.Center.X-tw.Width/2+x, tw.Center.Y+y)
		}
	}
	return out
}
