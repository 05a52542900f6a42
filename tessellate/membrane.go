// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package tessellate

import (
	"structs"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/smath"
)

type MembraneVertex struct {
	_ structs.HostLayout

	Position [3]float32
	Normal   [3]float32
	// U runs along the curve from 0 to 1, V from the curve (0) to the apex
	// (1).
	UV [2]float32
}

type MembraneMesh struct {
	Vertices []MembraneVertex
	Indices  []uint16
}

func (m MembraneMesh) Empty() bool { return len(m.Indices) == 0 }

type MembraneOpts struct {
	// DoubleSided adds a second copy of the surface with reversed winding and
	// negated normals, so that it can be lit from both sides with back-face
	// culling enabled.
	DoubleSided bool
}

// Membrane tessellates the surface between pl, lying in the z=0 plane, and
// apex.
//
// Every curve point contributes two vertices: the point itself and a copy of
// the apex. Each segment of the curve forms one triangle with the apex.
// Vertex normals are the unweighted sum of the normals of the faces sharing
// the vertex. Vertices that belong to no face, such as the last apex copy,
// borrow the normal of the closest preceding vertex of the same kind.
func Membrane(pl solidlight.Polyline, apex r3.Vec, opts MembraneOpts) MembraneMesh {
	n := len(pl.Points)
	if n < 2 {
		return MembraneMesh{}
	}
	numVerts := 2 * n
	numIndices := 3 * (n - 1)
	if opts.DoubleSided {
		numVerts *= 2
		numIndices *= 2
	}
	checkVertexCount(numVerts)

	positions := make([]r3.Vec, 0, 2*n)
	for _, pt := range pl.Points {
		positions = append(positions, smath.Lift(pt, 0), apex)
	}

	mesh := MembraneMesh{
		Vertices: make([]MembraneVertex, 0, numVerts),
		Indices:  make([]uint16, 0, numIndices),
	}
	for i := range n - 1 {
		j := uint16(2 * i)
		mesh.Indices = append(mesh.Indices, j, j+1, j+2)
	}

	sums := make([]r3.Vec, len(positions))
	for i := 0; i < len(mesh.Indices); i += 3 {
		ia, ib, ic := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		face := r3.Cross(r3.Sub(positions[ia], positions[ib]), r3.Sub(positions[ic], positions[ib]))
		sums[ia] = r3.Add(sums[ia], face)
		sums[ib] = r3.Add(sums[ib], face)
		sums[ic] = r3.Add(sums[ic], face)
	}
	normals := vertexNormals(sums)

	for i, pos := range positions {
		u := float32(i/2) / float32(n-1)
		v := float32(i % 2)
		mesh.Vertices = append(mesh.Vertices, MembraneVertex{
			Position: smath.Float32(pos),
			Normal:   smath.Float32(normals[i]),
			UV:       [2]float32{u, v},
		})
	}

	if opts.DoubleSided {
		base := uint16(len(positions))
		for _, v := range mesh.Vertices[:len(positions)] {
			v.Normal = [3]float32{-v.Normal[0], -v.Normal[1], -v.Normal[2]}
			mesh.Vertices = append(mesh.Vertices, v)
		}
		for i := range n - 1 {
			j := base + uint16(2*i)
			mesh.Indices = append(mesh.Indices, j, j+2, j+1)
		}
	}
	return mesh
}

// vertexNormals normalizes the accumulated face normals. Vertices
// alternate between curve points and apex copies.
func vertexNormals(sums []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(sums))
	for i, s := range sums {
		if r3.Norm2(s) > 0 {
			out[i] = r3.Unit(s)
			continue
		}
		switch {
		case i >= 2:
			out[i] = out[i-2]
		case i+1 < len(sums) && r3.Norm2(sums[i+1]) > 0:
			out[i] = r3.Unit(sums[i+1])
		default:
			out[i] = r3.Vec{Z: 1}
		}
	}
	return out
}
