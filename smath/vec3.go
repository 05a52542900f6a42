package smath

import (
	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/curve"
)

// Lift returns pt on the plane z.
func Lift(pt curve.Point, z float64) r3.Vec { return r3.Vec{X: pt.X, Y: pt.Y, Z: z} }

// Float32 returns v in the layout used by vertex buffers.
func Float32(v r3.Vec) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
