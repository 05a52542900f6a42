package profiler

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNop(t *testing.T) {
	p := NewNopProfiler()
	g := p.Start("frame")
	var pg ProfilerGroup = g
	child := pg.Start("tessellate")
	child.End()
	g.End()
	if d := g.Duration(); d != 0 {
		t.Errorf("nil group has duration %v", d)
	}
}

func TestLogsTree(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := NewProfiler(logger)

	for range 2 {
		buf.Reset()
		g := p.Start("frame")
		c := g.Start("advance")
		c.End()
		g.Nest("encode").End()
		g.End()

		out := buf.String()
		for _, want := range []string{"group=frame ", "group=frame/advance ", "group=frame/encode "} {
			if !strings.Contains(out, want) {
				t.Errorf("output %q does not contain %q", out, want)
			}
		}
		if n := strings.Count(out, "\n"); n != 3 {
			t.Errorf("got %d lines, want 3", n)
		}
	}
	if n := len(p.freeGroups); n != 3 {
		t.Errorf("got %d free groups, want 3", n)
	}
}

func TestEndTwice(t *testing.T) {
	p := NewProfiler(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	g := p.Start("frame")
	c := g.Nest("child")
	c.End()
	defer func() {
		if recover() == nil {
			t.Error("ending a group twice did not panic")
		}
	}()
	c.End()
}
