// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package form

import (
	"honnef.co/go/curve"
	"honnef.co/go/solidlight"
	"honnef.co/go/solidlight/curves"
	"honnef.co/go/solidlight/smath"
)

// DoublingBack is a pair of travelling waves, one horizontal and one
// vertical, that share a tick counter. The counter never resets.
type DoublingBack struct {
	tick       int
	horizontal curves.TravellingWave
	vertical   curves.TravellingWave
}

func NewDoublingBack(width, height float64) DoublingBack {
	wavelength := width * 4 / 3
	return DoublingBack{
		horizontal: curves.TravellingWave{
			Width:      width,
			Height:     height,
			Phase:      smath.Radians(160),
			Wavelength: wavelength,
			Frequency:  1,
			Speed:      0.0001,
		},
		vertical: curves.TravellingWave{
			Center:     curve.Pt(width/2-height/2, 0),
			Width:      width,
			Height:     height,
			Vertical:   true,
			Phase:      smath.Radians(250),
			Wavelength: wavelength,
			Frequency:  1,
			Speed:      0.0001,
		},
	}
}

func (f DoublingBack) Tick() int { return f.tick }

func (f DoublingBack) Next() (DoublingBack, []solidlight.Polyline) {
	lines := []solidlight.Polyline{
		solidlight.Line(f.horizontal.Sample(doublingBackDivisions, f.tick)),
		solidlight.Line(f.vertical.Sample(doublingBackDivisions, f.tick)),
	}
	f.tick++
	return f, lines
}

func (f *DoublingBack) Advance() ([]solidlight.Polyline, error) {
	next, lines := f.Next()
	*f = next
	return lines, nil
}
