package softrast

import (
	"strconv"

	"github.com/chewxy/math32"
)

// WorldUp is the up vector used when building the camera basis (+Y).
var WorldUp = Vector3{0, 1, 0}

// Vector2 represents a 2D Vector; in softrast it's used for texture coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vector3 represents a 3D Vector, which can be used for usual 3D applications (position, direction, normals, etc).
// Any Vector3 functions that modify the calling Vector3 return copies of the modified Vector3, meaning you can do method-chaining easily.
// Vectors are most efficient when copied, so try not to store pointers to them.
type Vector3 struct {
	X float32 // The X (1st) component of the Vector3
	Y float32 // The Y (2nd) component of the Vector3
	Z float32 // The Z (3rd) component of the Vector3
}

// NewVector3 creates a new Vector3 with the specified x, y, and z components.
func NewVector3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector3 provided.
func (vec Vector3) Add(other Vector3) Vector3 {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector3, with the other Vector3 subtracted from it.
func (vec Vector3) Sub(other Vector3) Vector3 {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector3, indicating the cross product of the calling Vector3 and the provided Other Vector3.
func (vec Vector3) Cross(other Vector3) Vector3 {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of a Vector3 and another Vector3.
func (vec Vector3) Dot(other Vector3) float32 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector3 with all components negated.
func (vec Vector3) Invert() Vector3 {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector3.
func (vec Vector3) Magnitude() float32 {
	return math32.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector3; this is faster than Magnitude() as it avoids using a square root.
func (vec Vector3) MagnitudeSquared() float32 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector3, normalized (set to be of unit length).
// A zero-length Vector3 can't be normalized, so it is returned unchanged.
func (vec Vector3) Unit() Vector3 {
	l := vec.Magnitude()
	if l < 1e-8 {
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector3 by the given scalar (ignoring W), returning a copy with the result.
func (vec Vector3) Scale(scalar float32) Vector3 {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// MultComp multiplies the Vector3 by the other Vector3 component-wise.
func (vec Vector3) MultComp(other Vector3) Vector3 {
	vec.X *= other.X
	vec.Y *= other.Y
	vec.Z *= other.Z
	return vec
}

// Lerp linearly interpolates between the calling Vector3 and the other Vector3 by the percentage given.
func (vec Vector3) Lerp(other Vector3, percent float32) Vector3 {
	vec.X += (other.X - vec.X) * percent
	vec.Y += (other.Y - vec.Y) * percent
	vec.Z += (other.Z - vec.Z) * percent
	return vec
}

// IsZero returns true if all components of the Vector3 are exactly zero.
func (vec Vector3) IsZero() bool {
	return vec.X == 0 && vec.Y == 0 && vec.Z == 0
}

// Equals returns true if the two Vector3s are close enough in all values (within 0.0001).
func (vec Vector3) Equals(other Vector3) bool {

	eps := float32(0.0001)

	if math32.Abs(vec.X-other.X) > eps || math32.Abs(vec.Y-other.Y) > eps || math32.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

func (vec Vector3) String() string {
	return "{" + strconv.FormatFloat(float64(vec.X), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Y), 'f', -1, 32) + ", " +
		strconv.FormatFloat(float64(vec.Z), 'f', -1, 32) + "}"
}

// Vector4 represents a homogeneous 4D Vector; the output of a clip-space transform.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vector3 returns the X, Y, and Z components of the Vector4, dropping W.
func (vec Vector4) Vector3() Vector3 {
	return Vector3{X: vec.X, Y: vec.Y, Z: vec.Z}
}
