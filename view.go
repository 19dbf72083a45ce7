package splat

// View captures the camera state a point cloud was rendered with: the
// combined model-view-projection matrix and the pixel dimensions of the
// viewport the matrix was built for. Both come from the interactive
// renderer at capture time and must match, or projected positions drift.
type View struct {
	// MVP is the combined model-view-projection matrix, column-major.
	MVP Matrix4

	// Width and Height are the source viewport dimensions in pixels.
	Width, Height float64
}

// NewView builds a View from a matrix and viewport dimensions.
func NewView(mvp Matrix4, width, height float64) View {
	return View{MVP: mvp, Width: width, Height: height}
}

// valid reports whether the view carries enough state to project with.
func (v View) valid() bool {
	return v.Width > 0 && v.Height > 0 && !v.MVP.IsZero()
}
