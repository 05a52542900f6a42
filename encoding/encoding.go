// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package encoding collects the meshes of a frame into flat streams.
//
// An Encoding holds one stream per vertex and index type, a stream of
// transforms, and a stream of draws referencing ranges of the other streams.
// Encodings can be built independently, for example one per form, and then
// appended to each other under a transform. [Resolve] packs an encoding into
// a single byte slice ready to be uploaded.
package encoding

import (
	"slices"

	"honnef.co/go/solidlight/smath"
	"honnef.co/go/solidlight/tessellate"
)

type Encoding struct {
	RibbonVertices   []tessellate.RibbonVertex
	RibbonIndices    []uint16
	MembraneVertices []tessellate.MembraneVertex
	MembraneIndices  []uint16
	Transforms       []smath.Transform
	Draws            []Draw
	Flags            uint32
}

const (
	forceNextTransform uint32 = 1
)

func (enc *Encoding) IsEmpty() bool {
	return len(enc.Draws) == 0
}

func (enc *Encoding) Reset() {
	enc.RibbonVertices = enc.RibbonVertices[:0]
	enc.RibbonIndices = enc.RibbonIndices[:0]
	enc.MembraneVertices = enc.MembraneVertices[:0]
	enc.MembraneIndices = enc.MembraneIndices[:0]
	enc.Transforms = enc.Transforms[:0]
	enc.Draws = enc.Draws[:0]
	enc.Flags = 0
}

// Append appends other's streams, applying transform to other's
// transforms.
func (enc *Encoding) Append(other *Encoding, transform smath.Transform) {
	offsets := enc.StreamOffsets()
	enc.RibbonVertices = append(enc.RibbonVertices, other.RibbonVertices...)
	enc.RibbonIndices = append(enc.RibbonIndices, other.RibbonIndices...)
	enc.MembraneVertices = append(enc.MembraneVertices, other.MembraneVertices...)
	enc.MembraneIndices = append(enc.MembraneIndices, other.MembraneIndices...)
	if transform != smath.Identity {
		enc.Transforms = slices.Grow(enc.Transforms, len(other.Transforms))
		for _, t := range other.Transforms {
			enc.Transforms = append(enc.Transforms, transform.Mul(t))
		}
	} else {
		enc.Transforms = append(enc.Transforms, other.Transforms...)
	}

	enc.Draws = slices.Grow(enc.Draws, len(other.Draws))
	for _, d := range other.Draws {
		d.Transform += uint32(offsets.Transforms)
		switch d.Kind {
		case DrawKindRibbon:
			d.FirstIndex += uint32(offsets.RibbonIndices)
			d.BaseVertex += uint32(offsets.RibbonVertices)
		case DrawKindMembrane:
			d.FirstIndex += uint32(offsets.MembraneIndices)
			d.BaseVertex += uint32(offsets.MembraneVertices)
		}
		enc.Draws = append(enc.Draws, d)
	}
	// The next draw must not silently reuse other's last transform.
	enc.Flags |= forceNextTransform
}

func (enc *Encoding) StreamOffsets() StreamOffsets {
	return StreamOffsets{
		RibbonVertices:   len(enc.RibbonVertices),
		RibbonIndices:    len(enc.RibbonIndices),
		MembraneVertices: len(enc.MembraneVertices),
		MembraneIndices:  len(enc.MembraneIndices),
		Transforms:       len(enc.Transforms),
		Draws:            len(enc.Draws),
	}
}

// EncodeTransform sets the transform of subsequent draws. It reports
// whether a new transform had to be added to the stream.
func (enc *Encoding) EncodeTransform(transform smath.Transform) bool {
	if enc.Flags&forceNextTransform != 0 || len(enc.Transforms) == 0 || enc.Transforms[len(enc.Transforms)-1] != transform {
		enc.Transforms = append(enc.Transforms, transform)
		enc.Flags &^= forceNextTransform
		return true
	} else {
		return false
	}
}

func (enc *Encoding) currentTransform() uint32 {
	if len(enc.Transforms) == 0 || enc.Flags&forceNextTransform != 0 {
		enc.EncodeTransform(smath.Identity)
	}
	return uint32(len(enc.Transforms) - 1)
}

// EncodeRibbon adds a draw of m. It reports false, and adds nothing, if m
// is empty.
func (enc *Encoding) EncodeRibbon(m tessellate.RibbonMesh) bool {
	if m.Empty() {
		return false
	}
	enc.Draws = append(enc.Draws, Draw{
		Kind:       DrawKindRibbon,
		Transform:  enc.currentTransform(),
		FirstIndex: uint32(len(enc.RibbonIndices)),
		IndexCount: uint32(len(m.Indices)),
		BaseVertex: uint32(len(enc.RibbonVertices)),
		// Ribbon colors already include the line's opacity.
		Opacity: smath.Float16(1),
	})
	enc.RibbonVertices = append(enc.RibbonVertices, m.Vertices...)
	enc.RibbonIndices = append(enc.RibbonIndices, m.Indices...)
	return true
}

// EncodeMembrane adds a draw of m at the given opacity. It reports false,
// and adds nothing, if m is empty.
func (enc *Encoding) EncodeMembrane(m tessellate.MembraneMesh, opacity float64) bool {
	if m.Empty() {
		return false
	}
	enc.Draws = append(enc.Draws, Draw{
		Kind:       DrawKindMembrane,
		Transform:  enc.currentTransform(),
		FirstIndex: uint32(len(enc.MembraneIndices)),
		IndexCount: uint32(len(m.Indices)),
		BaseVertex: uint32(len(enc.MembraneVertices)),
		Opacity:    smath.Float16(float32(opacity)),
	})
	enc.MembraneVertices = append(enc.MembraneVertices, m.Vertices...)
	enc.MembraneIndices = append(enc.MembraneIndices, m.Indices...)
	return true
}

type StreamOffsets struct {
	// Current length of ribbon vertex stream.
	RibbonVertices int
	// Current length of ribbon index stream.
	RibbonIndices int
	// Current length of membrane vertex stream.
	MembraneVertices int
	// Current length of membrane index stream.
	MembraneIndices int
	// Current length of transform stream.
	Transforms int
	// Current length of draw stream.
	Draws int
}
