// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/splat"
)

// SoftwareRenderer is the CPU splatter used for static figure export.
//
// Each surviving point becomes an anti-aliased disk blended source-over
// into the target. Emission order comes from the projection engine, so
// enabling splat.WithDepthSort yields correct back-to-front blending for
// translucent clouds.
//
// Performance characteristics:
//   - Single-threaded, O(n + covered pixels)
//   - Memory: one packed buffer on the depth-sorted path, plus a
//     temporary image when supersampling is enabled
//
// Example:
//
//	renderer := render.NewSoftwareRenderer(render.WithSupersample(2))
//	target := render.NewPixmapTarget(800, 600)
//	target.Clear(color.Black)
//
//	res, err := renderer.Render(target, cloud, view,
//	    splat.R(0, 0, 800, 600), splat.WithDepthSort())
type SoftwareRenderer struct {
	supersample int
}

// SoftwareOption configures a SoftwareRenderer during creation.
type SoftwareOption func(*SoftwareRenderer)

// WithSupersample renders at factor times the target resolution and
// downsamples with Catmull-Rom filtering. Factors outside [1, 4] are
// clamped. Supersampling multiplies memory and time by factor squared;
// 2 is usually enough for print-quality figures.
func WithSupersample(factor int) SoftwareOption {
	return func(r *SoftwareRenderer) {
		if factor < 1 {
			factor = 1
		}
		if factor > 4 {
			factor = 4
		}
		r.supersample = factor
	}
}

// NewSoftwareRenderer creates a new CPU-based splatting renderer.
func NewSoftwareRenderer(opts ...SoftwareOption) *SoftwareRenderer {
	r := &SoftwareRenderer{supersample: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render projects and splats the cloud into the target.
//
// A registered hardware accelerator is tried first; on
// splat.ErrFallbackToCPU or any other error, rendering transparently
// falls back to the CPU path.
//
// Returns an error only for unusable targets. Degenerate cloud or view
// inputs yield a zero Result without error, matching the projection
// engine's best-effort contract.
func (r *SoftwareRenderer) Render(target RenderTarget, cloud *splat.Cloud, view splat.View, rect splat.Rect, opts ...splat.Option) (splat.Result, error) {
	if target == nil {
		return splat.Result{}, errors.New("render: nil target")
	}
	pixels := target.Pixels()
	if pixels == nil {
		return splat.Result{}, errors.New("render: target does not support CPU rendering")
	}

	width := target.Width()
	height := target.Height()
	stride := target.Stride()

	if a := splat.Accelerator(); a != nil && a.CanAccelerate(splat.AccelSplat) {
		st := splat.SplatTarget{Data: pixels, Width: width, Height: height, Stride: stride}
		res, err := a.Splat(st, cloud, view, rect, opts...)
		if err == nil {
			ferr := a.Flush(st)
			if ferr == nil {
				return res, nil
			}
			splat.Logger().Warn("render: accelerator flush failed, falling back to CPU",
				"accelerator", a.Name(), "error", ferr)
		} else if !errors.Is(err, splat.ErrFallbackToCPU) {
			splat.Logger().Warn("render: accelerator splat failed, falling back to CPU",
				"accelerator", a.Name(), "error", err)
		}
	}

	if r.supersample > 1 {
		return r.renderSupersampled(pixels, width, height, stride, cloud, view, rect, opts)
	}

	res := splat.Project(cloud, view, rect, func(p splat.Projected) {
		splatPoint(pixels, width, height, stride, p)
	}, opts...)
	return res, nil
}

// renderSupersampled splats into a scaled temporary image and composites
// it over the target with Catmull-Rom downsampling.
func (r *SoftwareRenderer) renderSupersampled(pixels []byte, width, height, stride int, cloud *splat.Cloud, view splat.View, rect splat.Rect, opts []splat.Option) (splat.Result, error) {
	k := float64(r.supersample)
	tmp := image.NewRGBA(image.Rect(0, 0, width*r.supersample, height*r.supersample))
	srect := splat.Rect{X: rect.X * k, Y: rect.Y * k, Width: rect.Width * k, Height: rect.Height * k}

	res := splat.Project(cloud, view, srect, func(p splat.Projected) {
		p.Radius *= k
		splatPoint(tmp.Pix, tmp.Rect.Dx(), tmp.Rect.Dy(), tmp.Stride, p)
	}, opts...)

	dst := &image.RGBA{Pix: pixels, Stride: stride, Rect: image.Rect(0, 0, width, height)}
	draw.CatmullRom.Scale(dst, dst.Rect, tmp, tmp.Bounds(), draw.Over, nil)
	return res, nil
}

// Flush ensures all rendering is complete.
// For the software renderer, this is a no-op as operations are synchronous.
func (r *SoftwareRenderer) Flush() error {
	return nil
}

// Capabilities returns the renderer's capabilities.
func (r *SoftwareRenderer) Capabilities() RendererCapabilities {
	return RendererCapabilities{
		IsGPU:                 false,
		SupportsDepthSort:     true,
		SupportsSupersampling: true,
	}
}

// splatPoint blends one anti-aliased disk into the pixel buffer.
// Coverage falls off linearly over the last pixel of the radius; the
// buffer holds alpha-premultiplied RGBA, so the blend is
// out = src*a + dst*(1-a) on every channel.
func splatPoint(pix []byte, width, height, stride int, p splat.Projected) {
	radius := p.Radius
	if radius < 0.5 {
		// Sub-pixel points still cover their center pixel.
		radius = 0.5
	}
	alpha := float64(p.Alpha)
	if alpha > 1 {
		alpha = 1
	}
	if alpha <= 0 {
		return
	}

	minX := int(math.Floor(p.X - radius))
	maxX := int(math.Ceil(p.X + radius))
	minY := int(math.Floor(p.Y - radius))
	maxY := int(math.Ceil(p.Y + radius))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}

	for y := minY; y <= maxY; y++ {
		rowOffset := y * stride
		dy := float64(y) + 0.5 - p.Y
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - p.X
			cov := radius - math.Sqrt(dx*dx+dy*dy) + 0.5
			if cov <= 0 {
				continue
			}
			if cov > 1 {
				cov = 1
			}

			av := uint32(cov*alpha*255 + 0.5)
			if av == 0 {
				continue
			}
			inv := 255 - av

			offset := rowOffset + x*4
			pix[offset] = uint8((uint32(p.R)*av + uint32(pix[offset])*inv + 127) / 255)
			pix[offset+1] = uint8((uint32(p.G)*av + uint32(pix[offset+1])*inv + 127) / 255)
			pix[offset+2] = uint8((uint32(p.B)*av + uint32(pix[offset+2])*inv + 127) / 255)
			pix[offset+3] = uint8((255*av + uint32(pix[offset+3])*inv + 127) / 255)
		}
	}
}

// Ensure SoftwareRenderer implements Renderer and CapableRenderer.
var (
	_ Renderer        = (*SoftwareRenderer)(nil)
	_ CapableRenderer = (*SoftwareRenderer)(nil)
)
