// Package splat projects 3D point clouds onto 2D surfaces on the CPU.
//
// # Overview
//
// splat is the software projection engine of a point-cloud viewer in the
// GoGPU ecosystem. It is the fallback path used when hardware rasterization
// is unavailable, most importantly during static figure export. A single
// call transforms up to roughly a million points through a model-view-
// projection matrix, culls them against the view frustum, gates them on
// alpha and visibility, and emits the survivors as 2D draw instructions.
//
// # Quick Start
//
//	import "github.com/gogpu/splat"
//
//	cloud := &splat.Cloud{
//	    Positions: positions, // 3 x float32 per point
//	    Colors:    colors,    // 4 x uint8 (RGBA) per point
//	}
//	view := splat.View{MVP: mvp, Width: 1920, Height: 1080}
//	rect := splat.Rect{X: 0, Y: 0, Width: 800, Height: 600}
//
//	res := splat.Project(cloud, view, rect, func(p splat.Projected) {
//	    drawDisk(p.X, p.Y, p.Radius, p.R, p.G, p.B, p.Alpha)
//	}, splat.WithDepthSort())
//
// # Depth Ordering
//
// Correct blending of translucent points requires drawing farthest points
// first. Instead of a full comparison sort, splat buckets points into a
// fixed number of depth bins in O(n) and emits the bins back to front.
// Above a configurable point-count ceiling the engine degrades to plain
// input-order emission, trading blend correctness for bounded latency.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Cloud, View, Rect, Matrix4, Project, Projected
//   - render/: RenderTarget abstraction and the software splatter
//   - Accelerator seam: hardware backends register via RegisterAccelerator
//
// # Coordinate System
//
// Output uses standard raster coordinates: origin at top-left, X right,
// Y down. Matrices are column-major, following the WebGPU/OpenGL
// convention used across GoGPU.
package splat

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
