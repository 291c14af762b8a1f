package softrast

import (
	"testing"
)

func BenchmarkMatrixInversion(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4RotateFromEuler(Vector3{12, 57, 0}).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.Inverted()
	}

}

func BenchmarkMatrixInversionGeneral(b *testing.B) {

	b.ReportAllocs()

	mat := NewMatrix4RotateFromEuler(Vector3{12, 57, 0}).Mult(NewMatrix4Scale(2, 1, 3)).Mult(NewMatrix4Translate(1, 4, -12))

	for i := 0; i < b.N; i++ {
		mat.InvertedGeneral()
	}

}

func TestMatrixInversion(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4RotateFromEuler(Vector3{0, 5.7, 0}),
		NewMatrix4Translate(-10, 0.1, 3232.1976),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4RotateFromEuler(Vector3{45, 0, 19})),
		NewViewMatrix(Vector3{3, -2, 7}, Vector3{-20, 135, 0}),
	}

	for i, mat := range matrices {

		// Inverted() is only valid for rigid transforms; for those, matrix * inverse should be identity.
		if !mat.Mult(mat.Inverted()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.Inverted() is not identity")
		}

		if !mat.Inverted().Equals(mat.InvertedGeneral()) {
			t.Fatal("failed on matrix #", i, ": rigid and general inverses differ")
		}

	}

}

func TestMatrixInversionGeneral(t *testing.T) {

	matrices := []Matrix4{
		NewMatrix4Scale(10, 0.1, -0.45),
		NewMatrix4Translate(-1, -1, -1).Mult(NewMatrix4RotateFromEuler(Vector3{10, 0, 33})).Mult(NewMatrix4Scale(10, 1, 2)),
		NewModelMatrix(Vector3{1, 2, 3}, Vector3{0.5, 0, 0}, Vector3{30, 60, 90}),
	}

	for i, mat := range matrices {
		if !mat.Mult(mat.InvertedGeneral()).IsIdentity() {
			t.Fatal("failed on matrix #", i, ": matrix * matrix.InvertedGeneral() is not identity")
		}
	}

	// Singular matrices have no inverse; the identity comes back instead.
	if !NewMatrix4Scale(1, 0, 1).InvertedGeneral().IsIdentity() {
		t.Fatal("singular matrix should invert to identity")
	}

}

func TestMatrixTranspose(t *testing.T) {

	mat := Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
		{13, 14, 15, 16},
	}

	tr := mat.Transposed()

	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if tr[r][c] != mat[c][r] {
				t.Fatalf("transposed[%d][%d] = %f, want %f", r, c, tr[r][c], mat[c][r])
			}
		}
	}

	if !tr.Transposed().Equals(mat) {
		t.Fatal("transposing twice should give back the original matrix")
	}

}

func TestMatrixMultOrder(t *testing.T) {

	// a.Mult(b) applies a first, then b.
	scale := NewMatrix4Scale(2, 2, 2)
	move := NewMatrix4Translate(1, 0, 0)

	if got := scale.Mult(move).MultVec(Vector3{1, 0, 0}); !got.Equals(Vector3{3, 0, 0}) {
		t.Fatalf("scale then move = %s, want (3, 0, 0)", got)
	}

	if got := move.Mult(scale).MultVec(Vector3{1, 0, 0}); !got.Equals(Vector3{4, 0, 0}) {
		t.Fatalf("move then scale = %s, want (4, 0, 0)", got)
	}

	if got := move.MultDir(Vector3{0, 1, 0}); !got.Equals(Vector3{0, 1, 0}) {
		t.Fatalf("MultDir should ignore translation, got %s", got)
	}

}
