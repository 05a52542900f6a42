// Package smath contains the small amount of shared math used by the forms,
// the tessellators and the frame encoding.
package smath

import (
	"math"
	"structs"

	"golang.org/x/exp/constraints"
	"honnef.co/go/curve"
)

const (
	TwoPi     = 2 * math.Pi
	HalfPi    = math.Pi / 2
	QuarterPi = math.Pi / 4
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg / 180 * math.Pi
}

func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// TickRatio returns tick/maxTicks, the normalized position of a tick within
// one animation cycle.
func TickRatio(tick, maxTicks int) float64 {
	return float64(tick) / float64(maxTicks)
}

// Quarter returns which quarter of a cycle ratio falls into, together with
// the position inside that quarter, in [0, 1]. A ratio of exactly 1 is the
// end of the last quarter.
func Quarter(ratio float64) (int, float64) {
	if ratio >= 1 {
		return 3, 1
	}
	q := int(ratio * 4)
	return q, ratio*4 - float64(q)
}

// Transform is the GPU-side form of a 2D affine transform.
type Transform struct {
	_ structs.HostLayout

	Matrix      [4]float32
	Translation [2]float32
}

var Identity = Transform{
	Matrix: [4]float32{1, 0, 0, 1},
}

func (t Transform) Mul(other Transform) Transform {
	return Transform{
		Matrix: [4]float32{
			t.Matrix[0]*other.Matrix[0] + t.Matrix[2]*other.Matrix[1],
			t.Matrix[1]*other.Matrix[0] + t.Matrix[3]*other.Matrix[1],
			t.Matrix[0]*other.Matrix[2] + t.Matrix[2]*other.Matrix[3],
			t.Matrix[1]*other.Matrix[2] + t.Matrix[3]*other.Matrix[3],
		},
		Translation: [2]float32{
			t.Matrix[0]*other.Translation[0] +
				t.Matrix[2]*other.Translation[1] +
				t.Translation[0],
			t.Matrix[1]*other.Translation[0] +
				t.Matrix[3]*other.Translation[1] +
				t.Translation[1],
		},
	}
}

func TransformFromAffine(transform curve.Affine) Transform {
	c := transform.Coefficients()
	return Transform{
		Matrix:      [4]float32{float32(c[0]), float32(c[1]), float32(c[2]), float32(c[3])},
		Translation: [2]float32{float32(c[4]), float32(c[5])},
	}
}

// Float16 converts an f32 to IEEE-754 binary16 format represented as the
// bits of a u16. This implementation was adapted from Fabian Giesen's
// float_to_half_fast3 function, which can be found at
// <https://gist.github.com/rygorous/2156668#file-gistfile1-cpp-L285>.
func Float16(val float32) uint16 {
	const inf32 uint32 = 255 << 23
	const inf16 uint32 = 31 << 23
	const magic uint32 = 15 << 23
	const signMask uint32 = 0x8000_0000
	const roundMask uint32 = ^uint32(0xfff)

	u := math.Float32bits(val)
	sign := u & signMask
	u = u ^ sign

	// NOTE all the integer compares in this function can be safely
	// compiled into signed compares since all operands are below
	// 0x80000000.

	var output uint16
	if u >= inf32 {
		// NaN -> qNaN and Inf->Inf
		if u > inf32 {
			output = 0x7E00
		} else {
			output = 0x7C00
		}
	} else {
		// (De)normalized number or zero
		u := u & roundMask
		u = math.Float32bits(math.Float32frombits(u) * math.Float32frombits(magic))
		u = u - roundMask

		// Clamp to signed infinity if exponent overflowed
		if u > inf16 {
			u = inf16
		}
		output = uint16(u >> 13)
	}
	return output | uint16(sign>>16)
}

func AlignUp[T constraints.Integer](n, alignment T) T {
	return (n + alignment - 1) & -alignment
}
