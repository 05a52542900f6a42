// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Command dump-frames renders frames of an installation and writes their
// resolved buffers to disk, one file per frame, together with a description
// of the vertex layouts and pipeline state needed to draw them.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"honnef.co/go/solidlight/encoding"
	"honnef.co/go/solidlight/gpu"
	"honnef.co/go/solidlight/installation"
	"honnef.co/go/solidlight/profiler"
	"honnef.co/go/wgpu"
)

// describePipelines writes the pipeline state a consumer needs to draw the
// dumped frames.
func describePipelines(doubleSided bool) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "index format: %v\n", gpu.IndexFormat)
	for _, kind := range []encoding.DrawKind{encoding.DrawKindRibbon, encoding.DrawKindMembrane} {
		vbl := gpu.VertexBufferLayout(kind)
		ps := gpu.PrimitiveState(kind, doubleSided)
		cts := gpu.ColorTargetState(kind, wgpu.TextureFormatBGRA8Unorm)
		fmt.Fprintf(&buf, "%s:\n", kind)
		fmt.Fprintf(&buf, "\tstride: %d\n", vbl.ArrayStride)
		for _, attr := range vbl.Attributes {
			fmt.Fprintf(&buf, "\tlocation %d: format %v, offset %d\n", attr.ShaderLocation, attr.Format, attr.Offset)
		}
		fmt.Fprintf(&buf, "\tfront face: %v, cull mode: %v\n", ps.FrontFace, ps.CullMode)
		fmt.Fprintf(&buf, "\tblend: src %v, dst %v\n", cts.Blend.Color.SrcFactor, cts.Blend.Color.DstFactor)
	}
	return buf.Bytes()
}

func main() {
	var (
		id          int
		frames      int
		mode        int
		out         string
		doubleSided bool
		profile     bool
		verbose     bool
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-v] [-installation n] [-frames n] -out <dir>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.IntVar(&id, "installation", int(installation.DoublingBack), "Installation `number` (1-4)")
	flag.IntVar(&frames, "frames", 60, "Number of frames to render")
	flag.IntVar(&mode, "mode", int(installation.ModeDrawing), "0 for drawing, 1 for projection")
	flag.StringVar(&out, "out", "./out", "Path to output `directory`")
	flag.BoolVar(&doubleSided, "double-sided", false, "Emit back faces for membranes")
	flag.BoolVar(&profile, "profile", false, "Log frame timings")
	flag.BoolVar(&verbose, "v", false, "Be verbose")
	flag.Parse()

	if len(flag.Args()) != 0 || frames < 0 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if verbose || profile {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	dief := func(f string, v ...any) {
		logger.Error(fmt.Sprintf(f, v...))
		os.Exit(1)
	}

	if id < 1 || id > len(installation.AllIDs) {
		dief("no installation %d", id)
	}
	if mode != int(installation.ModeDrawing) && mode != int(installation.ModeProjection) {
		dief("no mode %d", mode)
	}

	cfg := installation.Config{
		Mode:                 installation.ModeFromInt(mode),
		DoubleSidedMembranes: doubleSided,
		Logger:               logger,
	}
	if profile {
		cfg.Profiler = profiler.NewProfiler(logger)
	}
	inst := installation.New(installation.IDFromInt(id), cfg)

	if err := os.MkdirAll(out, 0777); err != nil {
		dief("couldn't create output directory: %s", err)
	}
	if err := os.WriteFile(filepath.Join(out, "pipelines.txt"), describePipelines(doubleSided), 0666); err != nil {
		dief("couldn't write pipeline description: %s", err)
	}

	var (
		enc  encoding.Encoding
		data []byte
	)
	for i := range frames {
		if err := inst.Render(&enc); err != nil {
			// Already logged by the installation.
			continue
		}
		var layout encoding.Layout
		layout, data = encoding.Resolve(&enc, data)
		name := filepath.Join(out, fmt.Sprintf("frame-%05d.bin", i))
		if err := os.WriteFile(name, data, 0666); err != nil {
			dief("couldn't write frame: %s", err)
		}
		if verbose {
			logger.Debug("wrote frame",
				slog.String("file", name),
				slog.Int("bytes", len(data)),
				slog.Uint64("draws", uint64(layout.NumDraws)))
		}
	}

	rendered, dropped := inst.Stats()
	logger.Info("done",
		slog.String("installation", inst.ID().String()),
		slog.String("mode", inst.Mode().String()),
		slog.Int("frames", rendered),
		slog.Int("dropped", dropped))
}
