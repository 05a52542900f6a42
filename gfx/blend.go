// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import "fmt"

// Compose is the function used to combine a mesh's fragments with what has
// already been drawn. The zero value is the sane default.
type Compose uint8

const (
	// The source is placed over the destination.
	ComposeSrcOver Compose = 0
	// Only the source will be present.
	ComposeCopy Compose = 1
	// The sum of the source image and destination image is displayed. Light
	// cones drawn this way brighten where they overlap.
	ComposePlus Compose = 2
)

func (c Compose) String() string {
	switch c {
	case ComposeSrcOver:
		return "SrcOver"
	case ComposeCopy:
		return "Copy"
	case ComposePlus:
		return "Plus"
	default:
		panic(fmt.Sprintf("unhandled value %d", c))
	}
}
