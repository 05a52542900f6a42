// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"slices"
	"structs"
	"unsafe"

	"honnef.co/go/safeish"
	"honnef.co/go/solidlight/smath"
)

// Layout describes where Resolve placed each stream. Bases are in 32-bit
// words from the start of the packed data.
type Layout struct {
	_ structs.HostLayout

	// Number of draws.
	NumDraws uint32
	// Start of ribbon vertex stream.
	RibbonVertexBase uint32
	// Start of ribbon index stream.
	RibbonIndexBase uint32
	// Start of membrane vertex stream.
	MembraneVertexBase uint32
	// Start of membrane index stream.
	MembraneIndexBase uint32
	// Start of transform stream.
	TransformBase uint32
	// Start of draw stream.
	DrawBase uint32
}

// RibbonIndicesSize returns the size of the ribbon index stream in bytes,
// including padding.
func (l *Layout) RibbonIndicesSize() uint32 {
	return (l.MembraneVertexBase - l.RibbonIndexBase) * 4
}

// MembraneIndicesSize returns the size of the membrane index stream in
// bytes, including padding.
func (l *Layout) MembraneIndicesSize() uint32 {
	return (l.TransformBase - l.MembraneIndexBase) * 4
}

// Resolve packs enc into data, reusing data's storage, and returns the
// layout of the packed streams. Every stream starts on a word boundary.
func Resolve(enc *Encoding, data []byte) (Layout, []byte) {
	data = data[:0]
	size := bufferSize(enc)
	data = slices.Grow(data, size)

	layout := Layout{NumDraws: uint32(len(enc.Draws))}
	layout.RibbonVertexBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](enc.RibbonVertices)...)
	layout.RibbonIndexBase = sizeToWords(len(data))
	data = appendPadded(data, safeish.SliceCast[[]byte](enc.RibbonIndices))
	layout.MembraneVertexBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](enc.MembraneVertices)...)
	layout.MembraneIndexBase = sizeToWords(len(data))
	data = appendPadded(data, safeish.SliceCast[[]byte](enc.MembraneIndices))
	layout.TransformBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](enc.Transforms)...)
	layout.DrawBase = sizeToWords(len(data))
	data = append(data, safeish.SliceCast[[]byte](enc.Draws)...)

	if size != len(data) {
		panic("invalid encoding")
	}
	return layout, data
}

func appendPadded(data, b []byte) []byte {
	data = append(data, b...)
	for n := smath.AlignUp(len(data), 4); len(data) < n; {
		data = append(data, 0)
	}
	return data
}

func bufferSize(enc *Encoding) int {
	return sliceSizeInBytes(enc.RibbonVertices) +
		smath.AlignUp(sliceSizeInBytes(enc.RibbonIndices), 4) +
		sliceSizeInBytes(enc.MembraneVertices) +
		smath.AlignUp(sliceSizeInBytes(enc.MembraneIndices), 4) +
		sliceSizeInBytes(enc.Transforms) +
		sliceSizeInBytes(enc.Draws)
}

func sizeToWords(n int) uint32 {
	return uint32(n / 4)
}

func sliceSizeInBytes[E any, T ~[]E](slice T) int {
	return len(slice) * int(unsafe.Sizeof(*new(E)))
}
