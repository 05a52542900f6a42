// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package installation

import (
	"errors"
	"log/slog"
	"slices"

	"honnef.co/go/solidlight/encoding"
)

// FramesPerSecond converts switch intervals to frames.
const FramesPerSecond = 60

// Settings are the user's choices for cycling through installations.
type Settings struct {
	// Installations to show, in order.
	EnabledForms []ID
	// Seconds after which the next enabled installation is shown.
	SwitchInterval int
}

func DefaultSettings() Settings {
	return Settings{
		EnabledForms:   slices.Clone(AllIDs),
		SwitchInterval: 30,
	}
}

var (
	ErrNoForms         = errors.New("no installation enabled")
	ErrInvalidInterval = errors.New("switch interval must be positive")
)

func (s Settings) Validate() error {
	if len(s.EnabledForms) == 0 {
		return ErrNoForms
	}
	if s.SwitchInterval <= 0 {
		return ErrInvalidInterval
	}
	for _, id := range s.EnabledForms {
		IDFromInt(int(id))
	}
	return nil
}

// Schedule shows the enabled installations in turn. Every switch starts the
// next installation from scratch.
type Schedule struct {
	settings Settings
	cfg      Config
	index    int
	frames   int
	current  *Installation
}

func NewSchedule(settings Settings, cfg Config) (*Schedule, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()
	settings.EnabledForms = slices.Clone(settings.EnabledForms)
	return &Schedule{
		settings: settings,
		cfg:      cfg,
		current:  New(settings.EnabledForms[0], cfg),
	}, nil
}

func (s *Schedule) Current() *Installation { return s.current }

// SetMode changes the mode of the current and all future installations.
func (s *Schedule) SetMode(m Mode) {
	s.cfg.Mode = m
	s.current.SetMode(m)
}

// Switch moves on to the next enabled installation.
func (s *Schedule) Switch() {
	s.index = (s.index + 1) % len(s.settings.EnabledForms)
	s.frames = 0
	prev := s.current.ID()
	s.current = New(s.settings.EnabledForms[s.index], s.cfg)
	s.cfg.Logger.Info("switching installation",
		slog.String("from", prev.String()),
		slog.String("to", s.current.ID().String()))
}

// Render renders a frame of the current installation, switching to the next
// one once the switch interval has elapsed. Dropped frames count towards the
// interval.
func (s *Schedule) Render(enc *encoding.Encoding) error {
	err := s.current.Render(enc)
	s.frames++
	if s.frames >= s.settings.SwitchInterval*FramesPerSecond {
		s.Switch()
	}
	return err
}
