// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package tessellate turns polylines into triangle meshes.
//
// Ribbons are polylines of uniform thickness, drawn in the plane of the
// curve. Membranes are the ruled surfaces between a curve and the projector
// that draws it. Both functions are pure and degenerate polylines, those with
// fewer than two points, produce empty meshes.
package tessellate

import (
	"fmt"
	"math"
	"structs"

	"honnef.co/go/color"
	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/gfx"
)

type RibbonVertex struct {
	_ structs.HostLayout

	Position [3]float32
	// Premultiplied linear sRGB.
	Color [4]float32
}

type RibbonMesh struct {
	Vertices []RibbonVertex
	Indices  []uint16
}

func (m RibbonMesh) Empty() bool { return len(m.Indices) == 0 }

// Ribbon tessellates pl as an opaque white line of the given thickness.
//
// Each point contributes two vertices, offset along the point's miter
// normal. The resulting triangles wind clockwise in a y-up coordinate
// system.
func Ribbon(pl solidlight.Polyline, thickness float64) RibbonMesh {
	return RibbonColored(pl, thickness, nil)
}

// RibbonColored is like Ribbon but colors the vertices with c, scaled by
// the polyline's opacity. A nil color is white.
func RibbonColored(pl solidlight.Polyline, thickness float64, c *color.Color) RibbonMesh {
	n := len(pl.Points)
	if n < 2 {
		return RibbonMesh{}
	}
	checkVertexCount(2 * n)

	col := gfx.Premul32(c, pl.Opacity)
	normals := miterNormals(pl.Points)
	mesh := RibbonMesh{
		Vertices: make([]RibbonVertex, 0, 2*n),
		Indices:  make([]uint16, 0, 6*(n-1)),
	}
	for i, pt := range pl.Points {
		off := normals[i].miter.Mul(thickness / 2 * normals[i].length)
		v0 := pt.Translate(off.Negate())
		v1 := pt.Translate(off)
		mesh.Vertices = append(mesh.Vertices,
			RibbonVertex{Position: [3]float32{float32(v0.X), float32(v0.Y), 0}, Color: col},
			RibbonVertex{Position: [3]float32{float32(v1.X), float32(v1.Y), 0}, Color: col},
		)
	}
	for i := range n - 1 {
		j := uint16(2 * i)
		mesh.Indices = append(mesh.Indices,
			j, j+1, j+2,
			j+2, j+1, j+3,
		)
	}
	return mesh
}

type miterNormal struct {
	miter  curve.Vec2
	length float64
}

// perp returns v rotated by 90° counter-clockwise.
func perp(v curve.Vec2) curve.Vec2 { return curve.Vec(-v.Y, v.X) }

// directions returns the unit direction of every segment. Zero-length
// segments take the direction of the segment before them, or after them if
// there is none before.
func directions(pts []curve.Point) []curve.Vec2 {
	dirs := make([]curve.Vec2, len(pts)-1)
	first := -1
	for i := range dirs {
		d := pts[i+1].Sub(pts[i])
		if h := d.Hypot(); h > 0 && !math.IsInf(h, 0) {
			dirs[i] = d.Div(h)
			if first == -1 {
				first = i
			}
		} else if first != -1 {
			dirs[i] = dirs[i-1]
		}
	}
	if first == -1 {
		// All points coincide; any direction is as good as another.
		first = 0
		dirs[0] = curve.Vec(1, 0)
	}
	for i := range first {
		dirs[i] = dirs[first]
	}
	return dirs
}

func miterNormals(pts []curve.Point) []miterNormal {
	dirs := directions(pts)
	out := make([]miterNormal, len(pts))
	out[0] = miterNormal{perp(dirs[0]), 1}
	out[len(pts)-1] = miterNormal{perp(dirs[len(dirs)-1]), 1}
	for i := 1; i < len(pts)-1; i++ {
		a, b := dirs[i-1], dirs[i]
		tangent := a.Add(b)
		h := tangent.Hypot()
		if h == 0 {
			// The line doubles back on itself and the miter is infinitely
			// long.
			out[i] = miterNormal{perp(a), 1}
			continue
		}
		miter := perp(tangent.Div(h))
		out[i] = miterNormal{miter, 1 / miter.Dot(perp(a))}
	}
	return out
}

func checkVertexCount(n int) {
	if n > math.MaxUint16+1 {
		panic(fmt.Sprintf("mesh has %d vertices, more than 16-bit indices can address", n))
	}
}
