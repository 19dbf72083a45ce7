// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/splat"

// Renderer draws a point cloud into a render target.
//
// Renderers are stateless between Render calls, allowing the same
// renderer to be used with different targets and clouds.
//
// Thread Safety: Renderers are NOT thread-safe. Each renderer should be
// used from a single goroutine, or external synchronization must be used.
// Concurrent exports should use one renderer per goroutine; the
// underlying projection engine itself is reentrant.
type Renderer interface {
	// Render projects the cloud through view, maps it into rect, and
	// splats the surviving points into the target. The returned
	// Result counts drawn and skipped points.
	//
	// Inputs are not modified and may be rendered again to other
	// targets. Options are per-call projection options (point radius,
	// depth sorting, bin count).
	Render(target RenderTarget, cloud *splat.Cloud, view splat.View, rect splat.Rect, opts ...splat.Option) (splat.Result, error)

	// Flush ensures all pending rendering operations are complete.
	// For CPU renderers this is a no-op as operations are synchronous.
	Flush() error
}

// RendererCapabilities describes the features supported by a renderer.
type RendererCapabilities struct {
	// IsGPU indicates if this is a hardware-accelerated renderer.
	IsGPU bool

	// SupportsDepthSort indicates whether back-to-front emission is
	// available.
	SupportsDepthSort bool

	// SupportsSupersampling indicates whether the renderer can render
	// at a higher resolution and downsample.
	SupportsSupersampling bool
}

// CapableRenderer is an optional interface for renderers that can
// report their capabilities.
type CapableRenderer interface {
	Renderer

	// Capabilities returns the renderer's capabilities.
	Capabilities() RendererCapabilities
}

// NewRenderer selects a renderer for the given device handle.
//
// A nil handle, or one without a usable device (NullDeviceHandle during
// static figure export), selects the CPU SoftwareRenderer directly.
// When the host does provide a device, it is shared with a registered
// accelerator via splat.SetAcceleratorDeviceProvider and the returned
// renderer splats through the accelerator-first path, falling back to
// CPU transparently.
func NewRenderer(device DeviceHandle, opts ...SoftwareOption) Renderer {
	if device == nil || device.Device() == nil {
		splat.Logger().Debug("render: no GPU device, using CPU renderer")
		return NewSoftwareRenderer(opts...)
	}
	if err := splat.SetAcceleratorDeviceProvider(device); err != nil {
		splat.Logger().Warn("render: accelerator rejected device provider", "error", err)
	}
	return NewSoftwareRenderer(opts...)
}
