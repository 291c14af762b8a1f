package softrast

import (
	"testing"

	"github.com/chewxy/math32"
)

func approx(a, b float32) bool {
	return math32.Abs(a-b) < 1e-4
}

func TestProjectionPerspective(t *testing.T) {

	proj := NewProjectionPerspective(90, 0.5, 100, 200, 100)

	// tan(45) = 1, so f = 1; the aspect ratio is height / width.
	f := float32(1)
	q := float32(100) / (100 - 0.5)

	want := Matrix4{
		{f * 0.5, 0, 0, 0},
		{0, -f, 0, 0},
		{0, 0, q, 1},
		{0, 0, -0.5 * q, 0},
	}

	if !proj.Equals(want) {
		t.Fatalf("projection =\n%s\nwant\n%s", proj, want)
	}

	// Clip-space W carries view depth, and clip Z runs from 0 at the near plane to far at the far plane.
	near := proj.MultVecW(Vector3{0, 0, 0.5})
	if !approx(near.Z, 0) || !approx(near.W, 0.5) {
		t.Errorf("near plane point = %v", near)
	}

	far := proj.MultVecW(Vector3{0, 0, 100})
	if math32.Abs(far.Z-100) > 1e-3 || !approx(far.W, 100) {
		t.Errorf("far plane point = %v", far)
	}

}

func TestViewMatrix(t *testing.T) {

	// An unrotated camera looks down +Z.
	view := NewViewMatrix(Vector3{0, 0, -5}, Vector3{})

	if got := view.MultVec(Vector3{0, 0, 0}); !got.Equals(Vector3{0, 0, 5}) {
		t.Fatalf("origin in view space = %s, want (0, 0, 5)", got)
	}

	if got := view.MultVec(Vector3{1, 2, -5}); !got.Equals(Vector3{1, 2, 0}) {
		t.Fatalf("point beside the camera in view space = %s, want (1, 2, 0)", got)
	}

	// After 90 degrees of yaw, the camera looks down +X.
	turned := NewViewMatrix(Vector3{}, Vector3{0, 90, 0})
	if got := turned.MultVec(Vector3{3, 0, 0}); !approx(got.Z, 3) {
		t.Fatalf("point after yawing in view space = %s, want Z = 3", got)
	}

	cam := NewCamera()
	cam.Rotation = Vector3{0, 90, 0}
	if got := cam.Forward(); !got.Equals(Vector3{1, 0, 0}) {
		t.Fatalf("camera forward after yawing = %s, want (1, 0, 0)", got)
	}

	// Pitch tilts the view towards +Y (down on screen) whatever the yaw.
	cam.Rotation = Vector3{45, 90, 0}
	if got := cam.Forward(); !got.Equals(Vector3{0.70710677, 0.70710677, 0}) {
		t.Fatalf("camera forward after pitching = %s", got)
	}
	if got := cam.Right(); !got.Equals(Vector3{0, 0, -1}) {
		t.Fatalf("camera right after pitching = %s, want (0, 0, -1)", got)
	}

	// The view matrix stays a rigid transform, so inverting it gets the camera's position back.
	cam.Position = Vector3{2, -3, 7}
	cam.Rotation = Vector3{-30, 125, 0}
	rigid := cam.ViewMatrix()
	for i := 0; i < 3; i++ {
		if !approx(rigid.RowAsVector3(i).Magnitude(), 1) {
			t.Fatalf("view row %d is not unit length", i)
		}
	}
	if got := rigid.MultVec(cam.Position); !got.Equals(Vector3{}) {
		t.Fatalf("camera position in view space = %s, want the origin", got)
	}
	if got := cam.Transform().RowAsVector3(3); !got.Equals(cam.Position) {
		t.Fatalf("camera transform position = %s, want %s", got, cam.Position)
	}

}

func TestCameraDirections(t *testing.T) {

	cam := NewCamera()
	cam.Position = Vector3{4, -2, 9}

	if got := cam.Forward(); !got.Equals(Vector3{0, 0, 1}) {
		t.Errorf("forward = %s, want (0, 0, 1)", got)
	}

	if got := cam.Right(); !got.Equals(Vector3{1, 0, 0}) {
		t.Errorf("right = %s, want (1, 0, 0)", got)
	}

	if got := cam.Transform().RowAsVector3(3); !got.Equals(cam.Position) {
		t.Errorf("camera transform position = %s, want %s", got, cam.Position)
	}

	cam.Move(1, 1, 1)
	cam.Rotate(0, 10, 0)

	if !cam.Position.Equals(Vector3{5, -1, 10}) || !cam.Rotation.Equals(Vector3{0, 10, 0}) {
		t.Errorf("camera after Move and Rotate = %s, %s", cam.Position, cam.Rotation)
	}

}

func TestModelMatrixPivot(t *testing.T) {

	// Rotating 180 degrees of yaw around a pivot at (1, 0, 0) maps the origin to (2, 0, 0), before translation.
	mat := NewModelMatrix(Vector3{0, 10, 0}, Vector3{1, 0, 0}, Vector3{0, 180, 0})

	got := mat.MultVec(Vector3{0, 0, 0})
	want := Vector3{2, 10, 0}

	if !got.Equals(want) {
		t.Fatalf("rotated point = %s, want %s", got, want)
	}

	// The pivot itself doesn't move with rotation.
	if got := mat.MultVec(Vector3{1, 0, 0}); !got.Equals(Vector3{1, 10, 0}) {
		t.Fatalf("pivot = %s, want (1, 10, 0)", got)
	}

	// No rotation leaves only the translation.
	plain := Transform{Position: Vector3{3, 4, 5}}.Matrix()
	if got := plain.MultVec(Vector3{1, 1, 1}); !got.Equals(Vector3{4, 5, 6}) {
		t.Fatalf("translated point = %s, want (4, 5, 6)", got)
	}

}

func TestRotationIsOrthonormal(t *testing.T) {

	rot := NewMatrix4RotateFromEuler(Vector3{33, -71, 12})

	for i := 0; i < 3; i++ {
		if !approx(rot.RowAsVector3(i).Magnitude(), 1) {
			t.Fatalf("row %d is not unit length", i)
		}
		for j := i + 1; j < 3; j++ {
			if !approx(rot.RowAsVector3(i).Dot(rot.RowAsVector3(j)), 0) {
				t.Fatalf("rows %d and %d are not orthogonal", i, j)
			}
		}
	}

}

func TestMVPOrder(t *testing.T) {

	model := NewModelMatrix(Vector3{1, 2, 3}, Vector3{}, Vector3{10, 20, 30})
	view := NewViewMatrix(Vector3{0, -1, -6}, Vector3{5, 15, 0})
	proj := NewProjectionPerspective(75, 0.01, 150, 225, 200)

	v := Vector3{0.5, -0.5, 0.5}

	stepped := proj.MultVecW(view.MultVec(model.MultVec(v)))
	combined := NewMVP(model, view, proj).MultVecW(v)

	if !stepped.Vector3().Equals(combined.Vector3()) || !approx(stepped.W, combined.W) {
		t.Fatalf("MVP = %v, stepwise = %v", combined, stepped)
	}

}

func TestNormalMatrix(t *testing.T) {

	// Under non-uniform scale, transforming a normal by the model matrix tilts it; the normal matrix keeps it perpendicular.
	model := NewMatrix4Scale(4, 1, 1).Mult(NewMatrix4RotateFromEuler(Vector3{0, 0, 0}))

	tri := Triangle{{0, 0, 0}, {1, 1, 0}, {0, 0, 1}}
	normal := tri.Normal()

	worldEdge := model.MultDir(tri[1].Sub(tri[0]))
	worldNormal := NormalMatrix(model).MultDir(normal)

	if !approx(worldEdge.Dot(worldNormal), 0) {
		t.Fatalf("normal %s isn't perpendicular to edge %s", worldNormal, worldEdge)
	}

}
