package splat

import "math"

// Defaults and limits for projection configuration. Out-of-range values
// are clamped, never rejected: the engine runs inside a best-effort
// export path where partial degradation beats aborting the export.
const (
	// DefaultPointRadius is the splat radius in destination pixels.
	DefaultPointRadius = 1.5

	// DefaultDepthBins is the default number of depth buckets.
	DefaultDepthBins = 256

	// MinDepthBins and MaxDepthBins bound the bucket count.
	MinDepthBins = 16
	MaxDepthBins = 1024

	// DefaultMaxSortedPoints is the largest cloud the depth binner
	// will order. Bigger clouds draw in input order instead.
	DefaultMaxSortedPoints = 200000

	// MinVisibleAlpha is the threshold below which a point is
	// treated as invisible and skipped.
	MinVisibleAlpha = 0.01
)

// Option configures a single Project call.
// Use functional options to customize projection behavior.
//
// Example:
//
//	// Default: input order, 1.5px points
//	splat.Project(cloud, view, rect, visit)
//
//	// Back-to-front with coarse depth buckets
//	splat.Project(cloud, view, rect, visit,
//	    splat.WithDepthSort(), splat.WithDepthBins(64))
type Option func(*config)

// config holds the resolved configuration for one Project call.
type config struct {
	radius          float64
	sortByDepth     bool
	depthBins       int
	maxSortedPoints int
}

// defaultConfig returns the default projection configuration.
func defaultConfig() config {
	return config{
		radius:          DefaultPointRadius,
		depthBins:       DefaultDepthBins,
		maxSortedPoints: DefaultMaxSortedPoints,
	}
}

// WithPointRadius sets the splat radius in destination pixels.
// Non-finite or negative values fall back to DefaultPointRadius.
func WithPointRadius(radius float64) Option {
	return func(c *config) {
		if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
			radius = DefaultPointRadius
		}
		c.radius = radius
	}
}

// WithDepthSort requests approximate back-to-front emission via depth
// binning. The binning assumes the GoGPU camera convention: right-handed,
// camera looking down -Z, with larger NDC Z meaning farther from the
// camera (what Perspective produces). Integrating a camera with a
// different depth convention requires remapping NDC Z first.
//
// When the cloud exceeds the sorted-points ceiling the request silently
// degrades to input-order emission; see WithMaxSortedPoints.
func WithDepthSort() Option {
	return func(c *config) {
		c.sortByDepth = true
	}
}

// WithDepthBins sets the number of depth buckets used by the binned
// path. Values outside [MinDepthBins, MaxDepthBins] are clamped.
func WithDepthBins(bins int) Option {
	return func(c *config) {
		if bins < MinDepthBins {
			bins = MinDepthBins
		}
		if bins > MaxDepthBins {
			bins = MaxDepthBins
		}
		c.depthBins = bins
	}
}

// WithMaxSortedPoints sets the largest point count the depth binner will
// handle; larger clouds draw in input order for bounded latency.
// Negative values are clamped to zero.
func WithMaxSortedPoints(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxSortedPoints = n
	}
}
