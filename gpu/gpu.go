// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package gpu describes how the streams produced by package encoding are
// fed to WebGPU render pipelines.
package gpu

import (
	"fmt"
	"unsafe"

	"honnef.co/go/solidlight/encoding"
	"honnef.co/go/solidlight/gfx"
	"honnef.co/go/solidlight/tessellate"
	"honnef.co/go/wgpu"
)

const IndexFormat = wgpu.IndexFormatUint16

// PrimitiveState returns the primitive state for drawing meshes of the given
// kind.
//
// Ribbons wind clockwise, but placements may mirror them, so they are never
// culled. Single-sided membranes are visible from both sides; double-sided
// membranes carry a copy for each side and cull back faces.
func PrimitiveState(kind encoding.DrawKind, doubleSided bool) wgpu.PrimitiveState {
	switch kind {
	case encoding.DrawKindRibbon:
		return wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: ^wgpu.IndexFormat(0),
			FrontFace:        wgpu.FrontFaceCW,
			CullMode:         wgpu.CullModeNone,
		}
	case encoding.DrawKindMembrane:
		ps := wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: ^wgpu.IndexFormat(0),
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeNone,
		}
		if doubleSided {
			ps.CullMode = wgpu.CullModeBack
		}
		return ps
	default:
		panic(fmt.Sprintf("unhandled value %d", kind))
	}
}

// VertexBufferLayout returns the layout of the vertex stream of the given
// kind. Shader locations are assigned in field order.
func VertexBufferLayout(kind encoding.DrawKind) wgpu.VertexBufferLayout {
	switch kind {
	case encoding.DrawKindRibbon:
		var v tessellate.RibbonVertex
		return wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(v)),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.Position)), ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x4, Offset: uint64(unsafe.Offsetof(v.Color)), ShaderLocation: 1},
			},
		}
	case encoding.DrawKindMembrane:
		var v tessellate.MembraneVertex
		return wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(v)),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.Position)), ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(v.Normal)), ShaderLocation: 1},
				{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(unsafe.Offsetof(v.UV)), ShaderLocation: 2},
			},
		}
	default:
		panic(fmt.Sprintf("unhandled value %d", kind))
	}
}

// BlendState returns the blend state implementing compose for premultiplied
// colors.
func BlendState(compose gfx.Compose) wgpu.BlendState {
	var c wgpu.BlendComponent
	switch compose {
	case gfx.ComposeSrcOver:
		c = wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		}
	case gfx.ComposeCopy:
		c = wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorZero,
		}
	case gfx.ComposePlus:
		c = wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOne,
		}
	default:
		panic(fmt.Sprintf("unhandled value %d", compose))
	}
	return wgpu.BlendState{Color: c, Alpha: c}
}

// ColorTargetState returns the color target for drawing meshes of the given
// kind into a texture of the given format. Ribbons are composited over the
// scene, membranes add up like light.
func ColorTargetState(kind encoding.DrawKind, format wgpu.TextureFormat) wgpu.ColorTargetState {
	var compose gfx.Compose
	switch kind {
	case encoding.DrawKindRibbon:
		compose = gfx.ComposeSrcOver
	case encoding.DrawKindMembrane:
		compose = gfx.ComposePlus
	default:
		panic(fmt.Sprintf("unhandled value %d", kind))
	}
	blend := BlendState(compose)
	return wgpu.ColorTargetState{
		Format:    format,
		Blend:     &blend,
		WriteMask: wgpu.ColorWriteMaskAll,
	}
}
