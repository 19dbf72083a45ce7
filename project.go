package splat

import "github.com/chewxy/math32"

// Projected is one surviving point in destination pixel space. Values
// are only valid for the duration of the visitor call; the engine reuses
// nothing across calls and persists nothing.
type Projected struct {
	// X, Y are the final destination pixel coordinates.
	X, Y float64

	// R, G, B are the point color channels.
	R, G, B uint8

	// Alpha is the resolved opacity in [0, 1].
	Alpha float32

	// Radius is the splat radius in destination pixels.
	Radius float64

	// Index is the point's index in the source cloud.
	Index int
}

// PointVisitor receives one emitted point per call.
type PointVisitor func(p Projected)

// Result summarizes a Project call. Drawn+Skipped equals the cloud's
// point count for every call with usable inputs.
type Result struct {
	// Drawn is the number of points handed to the visitor.
	Drawn int

	// Skipped counts points rejected by the visibility gate, the
	// frustum test, or a degenerate projection.
	Skipped int
}

// Project transforms every point of cloud through view, culls against
// the frustum, gates on alpha and visibility, maps survivors into rect
// (letterboxed, aspect preserved), and invokes visit once per survivor.
//
// With WithDepthSort and a cloud no larger than the sorted-points
// ceiling, points are emitted approximately back to front using O(n)
// depth binning; otherwise emission order equals input order.
//
// Project is pure and synchronous: it holds no state across calls,
// allocates only call-local buffers on the binned path, and treats all
// inputs as read-only. Concurrent calls need no coordination.
//
// Missing required inputs (empty cloud, zero matrix, non-positive
// viewport or rect, nil visitor) yield Result{} without error: one bad
// panel must not abort a whole figure export.
func Project(cloud *Cloud, view View, rect Rect, visit PointVisitor, opts ...Option) Result {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := cloud.Len()
	if n == 0 || visit == nil || !view.valid() || rect.IsEmpty() {
		return Result{}
	}

	pr := projector{
		cloud: cloud,
		mvp:   view.MVP,
		vpW:   view.Width,
		vpH:   view.Height,
		fit:   fitViewport(view.Width, view.Height, rect),
	}

	if cfg.sortByDepth {
		if n <= cfg.maxSortedPoints {
			return projectBinned(&pr, n, cfg, visit)
		}
		Logger().Debug("splat: cloud exceeds sorted ceiling, drawing in input order",
			"points", n, "maxSortedPoints", cfg.maxSortedPoints)
	}
	return projectDirect(&pr, n, cfg, visit)
}

// projector carries the per-call projection state shared by both passes
// of the binned path. Both passes call the same point method, so their
// accept/reject decisions cannot diverge.
type projector struct {
	cloud    *Cloud
	mvp      Matrix4
	vpW, vpH float64
	fit      viewportFit
}

// point runs the visibility gate, transform, perspective divide and
// frustum test for point i. On success it returns the destination pixel
// coordinates, the NDC depth and the resolved alpha.
func (p *projector) point(i int) (px, py float64, ndcZ, alpha float32, ok bool) {
	c := p.cloud
	if c.maskedAt(i) {
		return
	}
	alpha = c.alphaAt(i)
	if alpha < MinVisibleAlpha {
		return
	}

	x := c.Positions[i*3]
	y := c.Positions[i*3+1]
	z := c.Positions[i*3+2]
	cx, cy, cz, cw := p.mvp.TransformPoint(x, y, z)
	if cw == 0 || math32.IsNaN(cw) || math32.IsInf(cw, 0) {
		return
	}

	ndcX := cx / cw
	ndcY := cy / cw
	ndcZ = cz / cw
	// Inverted range tests so NaN fails the frustum check.
	if !(ndcX >= -1 && ndcX <= 1) || !(ndcY >= -1 && ndcY <= 1) || !(ndcZ >= -1 && ndcZ <= 1) {
		return
	}

	// NDC to source-viewport pixels, Y flipped for raster convention.
	vx := (float64(ndcX)*0.5 + 0.5) * p.vpW
	vy := (float64(-ndcY)*0.5 + 0.5) * p.vpH
	px, py = p.fit.apply(vx, vy)
	ok = true
	return
}

// emit builds the Projected record for a surviving point.
func (p *projector) emit(i int, px, py float64, alpha float32, radius float64) Projected {
	colors := p.cloud.Colors
	return Projected{
		X:      px,
		Y:      py,
		R:      colors[i*4],
		G:      colors[i*4+1],
		B:      colors[i*4+2],
		Alpha:  alpha,
		Radius: radius,
		Index:  i,
	}
}

// projectDirect is the single-pass path: survivors go straight to the
// visitor in input order, with no intermediate buffer.
func projectDirect(p *projector, n int, cfg config, visit PointVisitor) Result {
	drawn := 0
	for i := 0; i < n; i++ {
		px, py, _, alpha, ok := p.point(i)
		if !ok {
			continue
		}
		visit(p.emit(i, px, py, alpha, cfg.radius))
		drawn++
	}
	return Result{Drawn: drawn, Skipped: n - drawn}
}

// projectBinned is the two-pass counting sort. The first pass counts
// survivors per depth bucket, a prefix sum turns counts into offsets,
// and the second pass packs Projected records into one pre-sized buffer.
// Buckets are then emitted from the highest index (farthest) down, so
// translucent points blend back to front.
func projectBinned(p *projector, n int, cfg config, visit PointVisitor) Result {
	bins := cfg.depthBins

	// Count pass.
	counts := make([]int32, bins)
	total := 0
	for i := 0; i < n; i++ {
		_, _, ndcZ, _, ok := p.point(i)
		if !ok {
			continue
		}
		counts[depthBin(ndcZ, bins)]++
		total++
	}
	if total == 0 {
		return Result{Skipped: n}
	}

	// Exclusive prefix sum: counts become bucket start offsets.
	offsets := make([]int32, bins)
	var sum int32
	for b := 0; b < bins; b++ {
		offsets[b] = sum
		sum += counts[b]
	}

	// Fill pass. One buffer sized by the count pass; writes are slotted
	// by precomputed offsets, so no per-point allocation happens.
	packed := make([]Projected, total)
	cursor := make([]int32, bins)
	for i := 0; i < n; i++ {
		px, py, ndcZ, alpha, ok := p.point(i)
		if !ok {
			continue
		}
		b := depthBin(ndcZ, bins)
		packed[offsets[b]+cursor[b]] = p.emit(i, px, py, alpha, cfg.radius)
		cursor[b]++
	}

	// Larger NDC Z is farther from the camera, so walking buckets from
	// the top down realizes back-to-front order. Within a bucket,
	// points keep their write order.
	for b := bins - 1; b >= 0; b-- {
		end := offsets[b] + counts[b]
		for s := offsets[b]; s < end; s++ {
			visit(packed[s])
		}
	}
	return Result{Drawn: total, Skipped: n - total}
}

// depthBin maps an NDC depth in [-1, 1] to a bucket index in [0, bins).
func depthBin(ndcZ float32, bins int) int {
	b := int(math32.Floor((ndcZ + 1) * 0.5 * float32(bins)))
	if b < 0 {
		return 0
	}
	if b >= bins {
		return bins - 1
	}
	return b
}
