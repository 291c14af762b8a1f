package softrast

import (
	"errors"
	"testing"
)

func TestNewModelShapes(t *testing.T) {

	tests := []struct {
		shape Shape
		count int
	}{
		{ShapeNone, 0},
		{ShapeCube, 12},
		{ShapePyramid, 6},
		{ShapeIcoSphere, 20},
		{ShapeTerrain, 19 * 19 * 2},
	}

	for _, test := range tests {

		t.Run(test.shape.String(), func(t *testing.T) {

			model, err := NewModel(test.shape, ModelOptions{})
			if err != nil {
				t.Fatal(err)
			}

			if len(model.Triangles) != test.count {
				t.Fatalf("got %d triangles, want %d", len(model.Triangles), test.count)
			}

			if model.Color != NewColor(1, 1, 1, 1) {
				t.Fatalf("zero color wasn't defaulted to white: %+v", model.Color)
			}

		})

	}

}

func TestNormalizeWinding(t *testing.T) {

	for _, shape := range []Shape{ShapeCube, ShapePyramid, ShapeIcoSphere} {

		model, err := NewModel(shape, ModelOptions{})
		if err != nil {
			t.Fatal(err)
		}

		for i, tri := range model.Triangles {
			if d := tri.Normal().Dot(tri.Center()); d >= 0 {
				t.Fatalf("%s triangle %d faces outward (%f)", shape, i, d)
			}
		}

	}

	// Reversing a triangle and normalizing again brings it back.
	tris := []Triangle{
		{{-1, 0, 1}, {0, 1, 1}, {1, 0, 1}},
		{},
	}
	reversed := []Triangle{
		{tris[0][0], tris[0][2], tris[0][1]},
		{},
	}

	NormalizeWinding(tris)
	NormalizeWinding(reversed)

	if tris[0] != reversed[0] {
		t.Fatalf("windings differ after normalizing: %v, %v", tris[0], reversed[0])
	}

	if !tris[1].IsZero() {
		t.Fatal("zero triangle was modified")
	}

}

func TestModelScale(t *testing.T) {

	model, err := NewModel(ShapeCube, ModelOptions{Scale: Vector3{2, 4, 6}})
	if err != nil {
		t.Fatal(err)
	}

	for _, tri := range model.Triangles {
		for _, v := range tri {
			if !approx(absf(v.X), 1) || !approx(absf(v.Y), 2) || !approx(absf(v.Z), 3) {
				t.Fatalf("vertex %s wasn't scaled", v)
			}
		}
	}

	// The source triangles are copied, not scaled in place.
	src := cubeTriangles()
	if _, err := NewModelFromTriangles(src, ModelOptions{Scale: Vector3{3, 3, 3}}); err != nil {
		t.Fatal(err)
	}
	if src[0][0] != v3(-0.5, -0.5, 0.5) {
		t.Fatal("NewModelFromTriangles modified its input")
	}

}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func TestModelTooManyTriangles(t *testing.T) {

	tris := make([]Triangle, MaxTriangleCount+1)
	if _, err := NewModelFromTriangles(tris, ModelOptions{}); !errors.Is(err, ErrTooManyTriangles) {
		t.Fatalf("got %v, want ErrTooManyTriangles", err)
	}

	if _, err := NewModelFromTriangles(tris[:MaxTriangleCount], ModelOptions{}); err != nil {
		t.Fatalf("exactly MaxTriangleCount triangles failed: %v", err)
	}

	_, err := NewModel(ShapeTerrain, ModelOptions{Terrain: TerrainOptions{Size: 30, CellSize: 1}})
	if !errors.Is(err, ErrTooManyTriangles) {
		t.Fatalf("oversized terrain returned %v, want ErrTooManyTriangles", err)
	}

}

func TestModelMoveRotate(t *testing.T) {

	model, err := NewModel(ShapeCube, ModelOptions{Position: Vector3{1, 2, 3}})
	if err != nil {
		t.Fatal(err)
	}

	model.Move(1, 0, -1)
	model.Rotate(0, 0.5, 0)
	model.Rotate(0, 0.5, 0)

	tf := model.Transform()
	if !tf.Position.Equals(Vector3{2, 2, 2}) || !tf.Rotation.Equals(Vector3{0, 1, 0}) {
		t.Fatalf("transform = %+v", tf)
	}

}

func TestTerrainOptions(t *testing.T) {

	if tris := terrainTriangles(TerrainOptions{Size: 1, CellSize: 1}); tris != nil {
		t.Fatal("a one-vertex grid produced triangles")
	}

	tris := terrainTriangles(TerrainOptions{Size: 3, CellSize: 2})
	if len(tris) != 8 {
		t.Fatalf("3x3 grid produced %d triangles, want 8", len(tris))
	}

	for _, tri := range tris {
		for _, v := range tri {
			if v.Y != 0 || v.X < 0 || v.X > 4 || v.Z < 0 || v.Z > 4 {
				t.Fatalf("grid vertex %s out of range", v)
			}
		}
	}

}

func TestModelPivot(t *testing.T) {

	model, err := NewModel(ShapeCube, ModelOptions{
		Position: Vector3{0, 1, 0},
		Rotation: Vector3{0, 180, 0},
		Pivot:    Vector3{1, 0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}

	if !model.Transform().Pivot.Equals(Vector3{1, 0, 0}) {
		t.Fatalf("pivot = %s, want (1, 0, 0)", model.Pivot)
	}

	// Half a turn around a pivot at (1, 0, 0) carries the local origin to (2, 0, 0).
	if got := model.Transform().Matrix().MultVec(Vector3{}); !got.Equals(Vector3{2, 1, 0}) {
		t.Fatalf("local origin in world space = %s, want (2, 1, 0)", got)
	}

}
