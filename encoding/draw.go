// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package encoding

import (
	"fmt"
	"structs"
)

type DrawKind uint32

const (
	// No operation.
	DrawKindNop DrawKind = 0

	// Thick line in the drawing plane.
	DrawKindRibbon DrawKind = 1

	// Surface between a curve and its projector.
	DrawKindMembrane DrawKind = 2
)

func (kind DrawKind) String() string {
	switch kind {
	case DrawKindNop:
		return "nop"
	case DrawKindRibbon:
		return "ribbon"
	case DrawKindMembrane:
		return "membrane"
	default:
		panic(fmt.Sprintf("unhandled value %d", kind))
	}
}

// Draw is one indexed draw call. Indices and vertices are relative to the
// stream of the draw's kind.
type Draw struct {
	_ structs.HostLayout

	Kind DrawKind
	// Index into the transform stream.
	Transform  uint32
	FirstIndex uint32
	IndexCount uint32
	BaseVertex uint32
	// Half float.
	Opacity uint16
	_       uint16
}
