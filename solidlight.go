// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package solidlight animates the four solid light forms and turns their
// curves into triangle meshes.
//
// # Forms
//
// A [Form] owns a tick counter and a handful of fixed geometric parameters.
// Each call to [Form.Advance] moves the form forward by exactly one frame and
// returns the polylines making up its current shape. Advancement is driven by
// call count, not wall-clock time, so replaying the same number of calls
// always yields the same geometry. The four forms live in package form.
//
// # Geometry
//
// Package tessellate converts polylines into ribbon meshes (thick lines drawn
// on the screen) and membrane meshes (the surface between a curve and the
// projector that draws it). Package encoding collects a frame's meshes into
// streams ready for upload, and package installation wires forms, placements
// and tessellation together.
//
// All points are [curve.Point] values.
package solidlight

import "honnef.co/go/curve"

// Polyline is an ordered sequence of points. The order defines the direction
// of the line, which determines winding and miter direction when it is
// tessellated.
type Polyline struct {
	Points []curve.Point
	// Opacity in [0, 1]. Forms that don't fade their lines use 1.
	Opacity float64
}

// Line returns an opaque polyline.
func Line(pts []curve.Point) Polyline {
	return Polyline{Points: pts, Opacity: 1}
}

// Len returns the number of points.
func (pl Polyline) Len() int { return len(pl.Points) }

// Form is an animated shape. Advance is the only way to observe or mutate
// its state.
type Form interface {
	Advance() ([]Polyline, error)
}
