// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package profiler measures how long the stages of a frame take.
//
// A nil *Profiler and a nil *Group are valid and do nothing, so callers never
// have to check whether profiling is enabled.
package profiler

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

type ProfilerGroup interface {
	Start(label string) ProfilerGroup
	End()
}

// Profiler hands out groups and logs their timings once a top-level group
// ends.
type Profiler struct {
	logger *slog.Logger
	level  slog.Level

	// free list of profiler groups
	freeGroups []*Group
}

// NewProfiler returns a profiler that logs to logger at debug level.
func NewProfiler(logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Profiler{
		logger: logger,
		level:  slog.LevelDebug,
	}
}

func NewNopProfiler() *Profiler {
	return nil
}

func (p *Profiler) Start(label string) *Group {
	if p == nil {
		return nil
	}
	g := p.getGroup()
	g.profiler = p
	g.Label = label
	g.cpuStart = time.Now()
	return g
}

func (p *Profiler) getGroup() *Group {
	if len(p.freeGroups) > 0 {
		g := p.freeGroups[len(p.freeGroups)-1]
		p.freeGroups = p.freeGroups[:len(p.freeGroups)-1]
		clear(g.children)
		g.children = g.children[:0]
		g.cpuEnd = time.Time{}
		g.parent = nil
		return g
	} else {
		return &Group{}
	}
}

func (p *Profiler) release(g *Group) {
	for _, cg := range g.children {
		p.release(cg)
	}
	p.freeGroups = append(p.freeGroups, g)
}

func (p *Profiler) report(g *Group, path []string) {
	path = append(path, g.Label)
	p.logger.Log(context.Background(), p.level, "profile",
		slog.String("group", strings.Join(path, "/")),
		slog.Duration("cpu", g.Duration()))
	for _, cg := range g.children {
		p.report(cg, path)
	}
}

type Group struct {
	Label    string
	cpuStart time.Time
	cpuEnd   time.Time
	children []*Group
	profiler *Profiler
	parent   *Group
}

// End stops the group's clock. Ending a top-level group logs the timings of
// the whole tree and invalidates it.
func (g *Group) End() {
	if g == nil {
		return
	}

	if !g.cpuEnd.IsZero() {
		panic("trying to end same group twice")
	}
	g.cpuEnd = time.Now()
	if g.parent == nil {
		g.profiler.report(g, nil)
		g.profiler.release(g)
	}
}

// Duration returns how long the group ran, or has been running so far.
func (g *Group) Duration() time.Duration {
	if g == nil {
		return 0
	}
	if g.cpuEnd.IsZero() {
		return time.Since(g.cpuStart)
	}
	return g.cpuEnd.Sub(g.cpuStart)
}

func (g *Group) Start(label string) ProfilerGroup {
	if g == nil {
		return (*Group)(nil)
	}
	return g.Nest(label)
}

func (g *Group) Nest(label string) *Group {
	if g == nil {
		return nil
	}
	cg := g.profiler.getGroup()
	cg.profiler = g.profiler
	cg.Label = label
	cg.cpuStart = time.Now()
	cg.parent = g
	g.children = append(g.children, cg)
	return cg
}
