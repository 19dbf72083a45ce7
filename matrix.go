package splat

import "github.com/chewxy/math32"

// Matrix4 represents a 4x4 transformation matrix in column-major order,
// the layout WebGPU and OpenGL use for uniform buffers:
//
//	| m0  m4  m8   m12 |
//	| m1  m5  m9   m13 |
//	| m2  m6  m10  m14 |
//	| m3  m7  m11  m15 |
//
// Element (row r, column c) is stored at index c*4+r, so the translation
// lives in m12..m14. Transforming a column vector v computes
//
//	out[r] = Σ_c m[c*4+r] * v[c]
//
// Keeping the layout explicit in the type avoids the transpose bugs that
// bare 16-element buffers invite.
type Matrix4 [16]float32

// Identity4 returns the identity transformation matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate3 creates a translation matrix.
func Translate3(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale3 creates a scaling matrix.
func Scale3(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Perspective creates a right-handed perspective projection with the
// camera looking down -Z. fovy is the vertical field of view in radians.
// Depth maps to NDC [-1, 1] with the near plane at -1, so farther points
// get larger NDC Z values.
func Perspective(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / math32.Tan(fovy/2)
	var m Matrix4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// Orthographic creates a right-handed orthographic projection mapping the
// given box to NDC [-1, 1] on each axis.
func Orthographic(left, right, bottom, top, near, far float32) Matrix4 {
	var m Matrix4
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// LookAt creates a view matrix placing the camera at eye, looking toward
// center, with up defining the camera roll.
func LookAt(eye, center, up Vec3) Matrix4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Matrix4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1,
	}
}

// Mul multiplies two matrices (m * other), so other is applied first.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// TransformPoint transforms the point (x, y, z, 1) and returns the
// homogeneous clip-space result before the perspective divide.
func (m Matrix4) TransformPoint(x, y, z float32) (cx, cy, cz, cw float32) {
	cx = m[0]*x + m[4]*y + m[8]*z + m[12]
	cy = m[1]*x + m[5]*y + m[9]*z + m[13]
	cz = m[2]*x + m[6]*y + m[10]*z + m[14]
	cw = m[3]*x + m[7]*y + m[11]*z + m[15]
	return
}

// IsZero returns true if every element is zero. A zero matrix is never a
// usable projection, so the engine treats it as an absent matrix.
func (m Matrix4) IsZero() bool {
	for _, v := range m {
		if v != 0 {
			return false
		}
	}
	return true
}
