// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package installation

import (
	"fmt"
	"log/slog"

	"honnef.co/go/color"
	"honnef.co/go/solidlight/profiler"
)

// Mode selects what an installation produces each frame.
type Mode int

const (
	// ModeDrawing draws the forms' lines as ribbons in the plane.
	ModeDrawing Mode = iota
	// ModeProjection additionally produces the membrane between every line
	// and its projector.
	ModeProjection
)

// ModeFromInt converts a stored mode back to a Mode. It panics if v is not a
// valid mode.
func ModeFromInt(v int) Mode {
	switch m := Mode(v); m {
	case ModeDrawing, ModeProjection:
		return m
	default:
		panic(fmt.Sprintf("unhandled value %d", v))
	}
}

func (m Mode) String() string {
	switch m {
	case ModeDrawing:
		return "2D drawing"
	case ModeProjection:
		return "3D projection"
	default:
		panic(fmt.Sprintf("unhandled value %d", m))
	}
}

const (
	DefaultLineThickness     = 0.1
	DefaultProjectorDistance = 10
)

type Config struct {
	Mode Mode
	// Width of ribbons, in scene units. Defaults to DefaultLineThickness.
	LineThickness float64
	// Height of the projectors above the drawing plane. Defaults to
	// DefaultProjectorDistance.
	ProjectorDistance    float64
	DoubleSidedMembranes bool
	// Color of the lines. Nil means white.
	Color *color.Color
	// Logger receives dropped frames and installation switches. Nil means
	// slog.Default().
	Logger *slog.Logger
	// Profiler times each frame. Nil disables profiling.
	Profiler *profiler.Profiler
}

func (cfg Config) withDefaults() Config {
	if cfg.LineThickness == 0 {
		cfg.LineThickness = DefaultLineThickness
	}
	if cfg.ProjectorDistance == 0 {
		cfg.ProjectorDistance = DefaultProjectorDistance
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}
