package softrast

// Camera represents a pinhole camera (where you look from) in softrast. A Camera is a plain value owned by the caller and
// passed into each draw call; it holds no render state of its own.
type Camera struct {
	Position    Vector3 // The world position of the Camera.
	Rotation    Vector3 // The rotation of the Camera in degrees; X is pitch, Y is yaw, and Z is roll (which the view matrix ignores).
	FieldOfView float32 // The vertical field of view in degrees.
	Near        float32 // The near clipping plane distance.
	Far         float32 // The far clipping plane distance; depth is normalized against this value.
}

// NewCamera returns a Camera at the origin with a 75 degree vertical field of view, a near plane of 0.01, and a far plane of 150.
func NewCamera() Camera {
	return Camera{
		FieldOfView: 75,
		Near:        0.01,
		Far:         150,
	}
}

// ViewMatrix returns the Camera's view matrix, which takes world-space positions into the Camera's view space.
func (camera Camera) ViewMatrix() Matrix4 {
	return NewViewMatrix(camera.Position, camera.Rotation)
}

// Projection returns the Camera's perspective projection matrix for a view of the given size.
func (camera Camera) Projection(width, height int) Matrix4 {
	return NewProjectionPerspective(camera.FieldOfView, camera.Near, camera.Far, float32(width), float32(height))
}

// Transform returns the Camera's world transform (the inverse of its view matrix).
func (camera Camera) Transform() Matrix4 {
	return camera.ViewMatrix().Inverted()
}

// Forward returns the direction the Camera looks towards in world space.
func (camera Camera) Forward() Vector3 {
	return camera.Transform().RowAsVector3(2).Unit()
}

// Right returns the Camera's right direction in world space.
func (camera Camera) Right() Vector3 {
	return camera.Transform().RowAsVector3(0).Unit()
}

// Move moves the Camera by the x, y, and z values provided.
func (camera *Camera) Move(x, y, z float32) {
	camera.Position = camera.Position.Add(Vector3{x, y, z})
}

// Rotate rotates the Camera by the pitch, yaw, and roll values provided (in degrees).
func (camera *Camera) Rotate(pitch, yaw, roll float32) {
	camera.Rotation = camera.Rotation.Add(Vector3{pitch, yaw, roll})
}
