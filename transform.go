package softrast

import "github.com/chewxy/math32"

// Transform holds the inputs used to build a model matrix: a world position, a rotation in degrees (X = pitch, Y = yaw, Z = roll),
// and a pivot point (in local space) that the rotation happens around.
type Transform struct {
	Position Vector3
	Rotation Vector3
	Pivot    Vector3
}

// Matrix returns the model matrix for the Transform.
func (t Transform) Matrix() Matrix4 {
	return NewModelMatrix(t.Position, t.Pivot, t.Rotation)
}

// NewMatrix4RotateFromEuler returns a rotation Matrix4 built from the Euler angles provided (in degrees; X = pitch, Y = yaw, Z = roll).
func NewMatrix4RotateFromEuler(rotation Vector3) Matrix4 {

	cx := math32.Cos(ToRadians(rotation.X))
	sx := math32.Sin(ToRadians(rotation.X))
	cy := math32.Cos(ToRadians(rotation.Y))
	sy := math32.Sin(ToRadians(rotation.Y))
	cz := math32.Cos(ToRadians(rotation.Z))
	sz := math32.Sin(ToRadians(rotation.Z))

	mat := NewMatrix4()

	mat[0][0] = cy * cz
	mat[0][1] = cx*sz + sx*sy*cz
	mat[0][2] = sx*sz - cx*sy*cz

	mat[1][0] = -cy * sz
	mat[1][1] = cx*cz - sx*sy*sz
	mat[1][2] = sx*cz + cx*sy*sz

	mat[2][0] = sy
	mat[2][1] = -sx * cy
	mat[2][2] = cx * cy

	return mat

}

// NewModelMatrix builds a model matrix that rotates a vertex around the pivot point given, and then moves it to the world position.
func NewModelMatrix(position, pivot, rotation Vector3) Matrix4 {

	mat := NewMatrix4Translate(-pivot.X, -pivot.Y, -pivot.Z)
	mat = mat.Mult(NewMatrix4RotateFromEuler(rotation))
	mat = mat.Mult(NewMatrix4Translate(pivot.X, pivot.Y, pivot.Z))
	return mat.Mult(NewMatrix4Translate(position.X, position.Y, position.Z))

}

// NewViewMatrix builds the view matrix for a camera at the given position, rotated by the given pitch (X) and yaw (Y), in degrees.
// Roll is ignored. The camera's frame has the rows right, up, and back (the direction it looks towards); the view matrix is
// that frame's inverse, so the basis vectors end up in the columns.
func NewViewMatrix(position, rotation Vector3) Matrix4 {

	cx := math32.Cos(ToRadians(rotation.X))
	sx := math32.Sin(ToRadians(rotation.X))
	cy := math32.Cos(ToRadians(rotation.Y))
	sy := math32.Sin(ToRadians(rotation.Y))

	forward := Vector3{-sy * cx, -sx, -cy * cx}.Unit()
	right := forward.Cross(WorldUp).Unit()
	up := right.Cross(forward)
	back := forward.Invert()

	mat := NewMatrix4()
	for i, axis := range [3]Vector3{right, up, back} {
		mat[0][i] = axis.X
		mat[1][i] = axis.Y
		mat[2][i] = axis.Z
		mat[3][i] = -position.Dot(axis)
	}

	return mat

}

// NewProjectionPerspective returns a perspective projection Matrix4 for the vertical field of view (in degrees), near and far planes,
// and view size given. The aspect ratio is height / width; clip-space W carries the view-space depth.
func NewProjectionPerspective(fovy, near, far, viewWidth, viewHeight float32) Matrix4 {

	f := 1 / math32.Tan(ToRadians(fovy*0.5))
	aspect := viewHeight / viewWidth
	q := far / (far - near)

	return Matrix4{
		{f * aspect, 0, 0, 0},
		{0, -f, 0, 0},
		{0, 0, q, 1},
		{0, 0, -near * q, 0},
	}

}

// NewMVP combines the model, view, and projection matrices provided into a single model-view-projection matrix,
// such that a local vertex v ends up in clip space as v * model * view * projection.
func NewMVP(model, view, projection Matrix4) Matrix4 {
	return model.Mult(view).Mult(projection)
}

// NormalMatrix returns the matrix used to take normals from local space into world space for the model matrix given: its inverse-transpose.
// Unlike the model matrix itself, this stays correct under non-uniform scaling.
func NormalMatrix(model Matrix4) Matrix4 {
	return model.InvertedGeneral().Transposed()
}
