package splat

// Cloud is a point cloud handed to the engine by its owner.
//
// All slices are flat, tightly packed, and remain owned by the caller:
// the engine never mutates or retains them. Positions holds three float32
// values (x, y, z) per point and Colors four uint8 values (R, G, B, A)
// per point. Transparency and Visibility are optional per-point channels;
// when nil the corresponding gate is disabled.
type Cloud struct {
	// Positions holds xyz triples, 3 values per point.
	Positions []float32

	// Colors holds RGBA quadruples, 4 values per point.
	Colors []uint8

	// Transparency optionally overrides the color alpha channel,
	// one value per point in [0, 1].
	Transparency []float32

	// Visibility is an optional mask; a point is visible iff its
	// value is > 0. The surrounding viewer uses this for
	// level-of-detail gating.
	Visibility []float32
}

// Len returns the number of usable points: the shorter of the position
// and color channels decides.
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	n := len(c.Positions) / 3
	if m := len(c.Colors) / 4; m < n {
		n = m
	}
	return n
}

// alphaAt resolves the alpha for point i. An explicit transparency value
// wins over the color alpha channel.
func (c *Cloud) alphaAt(i int) float32 {
	if i < len(c.Transparency) {
		return c.Transparency[i]
	}
	return float32(c.Colors[i*4+3]) / 255
}

// maskedAt reports whether the visibility mask hides point i.
func (c *Cloud) maskedAt(i int) bool {
	return i < len(c.Visibility) && c.Visibility[i] <= 0
}
