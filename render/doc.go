// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render turns projected point clouds into pixels.
//
// It provides the RenderTarget abstraction shared by CPU and hardware
// paths, and SoftwareRenderer, the pure-Go splatter used for static
// figure export when no hardware backend is registered.
//
// Rendering is accelerator-first: if a backend registered via
// splat.RegisterAccelerator can splat the cloud, it is used; otherwise
// rendering transparently falls back to the CPU engine in package splat.
package render
