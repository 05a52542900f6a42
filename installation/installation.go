// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package installation assembles forms into the four installations and
// turns their frames into encodings.
//
// An installation owns one or two forms, each with a fixed placement in the
// scene. Rendering a frame advances every form once, tessellates the
// resulting lines in the form's own coordinate system and appends them to an
// encoding under the form's placement.
package installation

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/encoding"
	"honnef.co/go/solidlight/form"
	"honnef.co/go/solidlight/smath"
	"honnef.co/go/solidlight/tessellate"
)

type ID int

const (
	DoublingBack   ID = 1
	Coupling       ID = 2
	BetweenYouAndI ID = 3
	Leaving        ID = 4
)

// AllIDs lists every installation in display order.
var AllIDs = []ID{DoublingBack, Coupling, BetweenYouAndI, Leaving}

// IDFromInt converts a stored installation number to an ID. It panics if v
// names no installation.
func IDFromInt(v int) ID {
	switch id := ID(v); id {
	case DoublingBack, Coupling, BetweenYouAndI, Leaving:
		return id
	default:
		panic(fmt.Sprintf("unhandled value %d", v))
	}
}

func (id ID) String() string {
	switch id {
	case DoublingBack:
		return "Doubling Back"
	case Coupling:
		return "Coupling"
	case BetweenYouAndI:
		return "Between You and I"
	case Leaving:
		return "Leaving"
	default:
		panic(fmt.Sprintf("unhandled value %d", id))
	}
}

// Placement is a form together with its position in the scene.
type Placement struct {
	Form      solidlight.Form
	Transform curve.Affine
}

type Installation struct {
	id         ID
	cfg        Config
	placements []Placement
	// scratch encoding for a single placement
	local encoding.Encoding

	frames  int
	dropped int
}

func placements(id ID) []Placement {
	switch id {
	case DoublingBack:
		f := form.NewDoublingBack(6, 4)
		return []Placement{{Form: &f, Transform: curve.Identity}}
	case Coupling:
		f := form.NewCoupling(2, 1)
		return []Placement{{Form: &f, Transform: curve.Identity}}
	case BetweenYouAndI:
		f1 := form.NewBetweenYouAndI(3, 4, false)
		f2 := form.NewBetweenYouAndI(3, 4, true)
		rot := curve.Rotate(-math.Pi / 2)
		return []Placement{
			{Form: &f1, Transform: rot.Mul(curve.Translate(curve.Vec(0, -2.5)))},
			{Form: &f2, Transform: rot.Mul(curve.Translate(curve.Vec(0, 2.5)))},
		}
	case Leaving:
		f1 := form.NewLeaving(2, 1.6, true)
		f2 := form.NewLeaving(2, 1.6, false)
		return []Placement{
			{Form: &f1, Transform: curve.Translate(curve.Vec(-2.5, 0))},
			{Form: &f2, Transform: curve.Translate(curve.Vec(2.5, 0))},
		}
	default:
		panic(fmt.Sprintf("unhandled value %d", id))
	}
}

// New returns the installation id with freshly constructed forms.
func New(id ID, cfg Config) *Installation {
	return &Installation{
		id:         id,
		cfg:        cfg.withDefaults(),
		placements: placements(id),
	}
}

func (inst *Installation) ID() ID { return inst.id }

func (inst *Installation) Mode() Mode { return inst.cfg.Mode }

func (inst *Installation) SetMode(m Mode) { inst.cfg.Mode = m }

func (inst *Installation) Placements() []Placement { return inst.placements }

// Projector returns the position of the projector drawing the forms, in the
// forms' own coordinate system.
func (inst *Installation) Projector() r3.Vec {
	return r3.Vec{Z: inst.cfg.ProjectorDistance}
}

// Stats returns the number of rendered and dropped frames.
func (inst *Installation) Stats() (frames, dropped int) {
	return inst.frames, inst.dropped
}

// Render advances every form by one frame and encodes the result into enc,
// replacing its contents. If a form fails to produce its frame, the error is
// logged and returned and enc is left empty.
//
// Forms placed before the failing one stay advanced and the failing form
// keeps its state, so the forms of a multi-form installation fall out of
// step. Forms are deterministic: a form that failed once fails on every
// later frame too, and every later frame is dropped until the schedule
// moves on to the next installation.
func (inst *Installation) Render(enc *encoding.Encoding) error {
	pg := inst.cfg.Profiler.Start("frame")
	defer pg.End()

	enc.Reset()
	opts := tessellate.MembraneOpts{DoubleSided: inst.cfg.DoubleSidedMembranes}
	for i, p := range inst.placements {
		apg := pg.Start("advance")
		lines, err := p.Form.Advance()
		apg.End()
		if err != nil {
			inst.dropped++
			enc.Reset()
			inst.cfg.Logger.Warn("dropping frame",
				slog.String("installation", inst.id.String()),
				slog.Int("form", i),
				slog.Int("frame", inst.frames),
				slog.Any("err", err))
			return fmt.Errorf("%s: %w", inst.id, err)
		}

		tpg := pg.Start("tessellate")
		inst.local.Reset()
		for _, l := range lines {
			inst.local.EncodeRibbon(tessellate.RibbonColored(l, inst.cfg.LineThickness, inst.cfg.Color))
			if inst.cfg.Mode == ModeProjection {
				inst.local.EncodeMembrane(tessellate.Membrane(l, inst.Projector(), opts), l.Opacity)
			}
		}
		enc.Append(&inst.local, smath.TransformFromAffine(p.Transform))
		tpg.End()
	}
	inst.frames++
	return nil
}
