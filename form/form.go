// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package form implements the four animated light forms.
//
// Every form is a small value type. Next computes the frame for the current
// tick and returns the successor state alongside it, leaving the receiver
// untouched; Advance does the same in place and implements [solidlight.Form].
// Forms that cycle render the ticks 0 through their MaxTicks inclusive and
// then reset.
package form

import "honnef.co/go/solidlight"

const (
	CouplingMaxTicks       = 10000
	BetweenYouAndIMaxTicks = 10000
	LeavingMaxTicks        = 10000
)

const (
	doublingBackDivisions   = 200
	couplingDivisions       = 200
	betweenYouAndIDivisions = 127
	leavingEllipseDivisions = 100
	leavingWaveDivisions    = 50
)

var (
	_ solidlight.Form = (*DoublingBack)(nil)
	_ solidlight.Form = (*Coupling)(nil)
	_ solidlight.Form = (*BetweenYouAndI)(nil)
	_ solidlight.Form = (*Leaving)(nil)
)
