package softrast

import (
	"errors"
	"fmt"
)

// MaxTriangleCount is the maximum number of triangles a Model can hold.
const MaxTriangleCount = 1024

// ErrTooManyTriangles is returned when a Model would hold more than MaxTriangleCount triangles.
var ErrTooManyTriangles = errors.New("softrast: too many triangles")

// Triangle is three local-space vertex positions.
type Triangle [3]Vector3

// IsZero returns true if all three vertices of the Triangle are at the origin. Zero triangles are skipped when drawing.
func (tri Triangle) IsZero() bool {
	return tri[0].IsZero() && tri[1].IsZero() && tri[2].IsZero()
}

// Normal returns the unnormalized cross product of the Triangle's edges, (v2 - v1) x (v3 - v1).
func (tri Triangle) Normal() Vector3 {
	return tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
}

// Center returns the centroid of the Triangle.
func (tri Triangle) Center() Vector3 {
	return tri[0].Add(tri[1]).Add(tri[2]).Scale(1.0 / 3.0)
}

// ModelOptions configures a new Model.
type ModelOptions struct {
	Position Vector3
	Rotation Vector3        // Rotation in degrees; X is pitch, Y is yaw, Z is roll.
	Pivot    Vector3        // The local-space point the Model rotates around.
	Scale    Vector3        // Per-axis scale baked into the vertices on creation; a zero Scale is treated as (1, 1, 1).
	Color    Color          // The base color handed to the Model's Shader; a zero Color is treated as opaque white.
	Shader   Shader         // The Shader used to color the Model's triangles; nil uses FlatLitShader.
	Terrain  TerrainOptions // Options for ShapeTerrain; a zero value uses DefaultTerrainOptions().
}

// Model is a bounded list of triangles drawn with a shared position, rotation, base color, and shader.
// Models are created once and then mutated in place (i.e. Rotation changed) as the scene updates.
type Model struct {
	Triangles []Triangle
	Position  Vector3
	Rotation  Vector3
	Pivot     Vector3 // The local-space point the Model rotates around.
	Color     Color
	Shader    Shader
}

// NewModel creates a new Model with triangles generated for the Shape given.
func NewModel(shape Shape, options ModelOptions) (*Model, error) {

	var tris []Triangle

	switch shape {
	case ShapeCube:
		tris = cubeTriangles()
	case ShapePyramid:
		tris = pyramidTriangles()
	case ShapeIcoSphere:
		tris = icoSphereTriangles()
	case ShapeTerrain:
		terrain := options.Terrain
		if terrain == (TerrainOptions{}) {
			terrain = DefaultTerrainOptions()
		}
		tris = terrainTriangles(terrain)
	}

	model, err := NewModelFromTriangles(tris, options)
	if err != nil {
		return nil, fmt.Errorf("softrast: %s model: %w", shape, err)
	}
	return model, nil

}

// NewModelFromTriangles creates a new Model from a copy of the triangles given, scaling and winding-normalizing the copy.
// More than MaxTriangleCount triangles returns ErrTooManyTriangles.
func NewModelFromTriangles(tris []Triangle, options ModelOptions) (*Model, error) {

	if len(tris) > MaxTriangleCount {
		return nil, fmt.Errorf("softrast: %d triangles, limit is %d: %w", len(tris), MaxTriangleCount, ErrTooManyTriangles)
	}

	scale := options.Scale
	if scale.IsZero() {
		scale = Vector3{1, 1, 1}
	}

	color := options.Color
	if color == (Color{}) {
		color = NewColor(1, 1, 1, 1)
	}

	model := &Model{
		Triangles: make([]Triangle, len(tris)),
		Position:  options.Position,
		Rotation:  options.Rotation,
		Pivot:     options.Pivot,
		Color:     color,
		Shader:    options.Shader,
	}

	for i, tri := range tris {
		for v := range tri {
			tri[v] = tri[v].MultComp(scale)
		}
		model.Triangles[i] = tri
	}

	NormalizeWinding(model.Triangles)

	Logger().Debug("model created", "triangles", len(model.Triangles), "position", model.Position.String())

	return model, nil

}

// NormalizeWinding reorders the vertices of each non-zero triangle so that (v2 - v1) x (v3 - v1) points towards the local origin,
// giving every face of a mesh that is star-shaped around its origin the same winding. Zero triangles are left alone.
func NormalizeWinding(tris []Triangle) {
	for i := range tris {
		if tris[i].IsZero() {
			continue
		}
		if tris[i].Normal().Dot(tris[i].Center()) > 0 {
			tris[i][1], tris[i][2] = tris[i][2], tris[i][1]
		}
	}
}

// Transform returns the Model's position, rotation, and pivot as a Transform.
func (model *Model) Transform() Transform {
	return Transform{
		Position: model.Position,
		Rotation: model.Rotation,
		Pivot:    model.Pivot,
	}
}

// Rotate rotates the Model by the pitch, yaw, and roll values provided (in degrees).
func (model *Model) Rotate(pitch, yaw, roll float32) {
	model.Rotation = model.Rotation.Add(Vector3{pitch, yaw, roll})
}

// Move moves the Model by the x, y, and z values provided.
func (model *Model) Move(x, y, z float32) {
	model.Position = model.Position.Add(Vector3{x, y, z})
}
