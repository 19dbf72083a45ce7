package splat

// Rect is a destination rectangle in output pixel space.
type Rect struct {
	X, Y, Width, Height float64
}

// R is a convenience function to create a Rect.
func R(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// IsEmpty returns true if the rectangle has no drawable area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// viewportFit maps source-viewport pixels into a destination rectangle
// with a single uniform scale, centering the result on the padded axis.
// Using one scale for both axes preserves the aspect ratio by
// construction; content is letterboxed or pillarboxed, never distorted.
type viewportFit struct {
	scale            float64
	offsetX, offsetY float64
}

// fitViewport computes the uniform scale and centering offsets that map a
// vpW x vpH viewport into rect.
func fitViewport(vpW, vpH float64, rect Rect) viewportFit {
	scale := rect.Width / vpW
	if s := rect.Height / vpH; s < scale {
		scale = s
	}
	return viewportFit{
		scale:   scale,
		offsetX: rect.X + (rect.Width-vpW*scale)/2,
		offsetY: rect.Y + (rect.Height-vpH*scale)/2,
	}
}

// apply maps a source-viewport pixel to destination pixel space.
func (f viewportFit) apply(x, y float64) (float64, float64) {
	return f.offsetX + x*f.scale, f.offsetY + y*f.scale
}
