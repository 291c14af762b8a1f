package softrast

import (
	"context"
	"log/slog"
	"testing"
)

func TestDrawDebugText(t *testing.T) {

	fb, err := NewFramebuffer(80, 40)
	if err != nil {
		t.Fatal(err)
	}
	fb.Fill(0, 0, 255)

	DrawDebugText(fb, "Hi\nthere", 2, 2, NewColor(1, 1, 1, 1))

	white, black := 0, 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 80; x++ {
			switch r, g, b := fb.Pixel(x, y); {
			case r == 255 && g == 255 && b == 255:
				white++
			case r == 0 && g == 0 && b == 0:
				black++
			}
		}
	}

	if white == 0 || black == 0 {
		t.Fatalf("text drew %d white and %d outline pixels", white, black)
	}

	// The second line sits below the first.
	lower := false
	for x := 0; x < 80; x++ {
		if r, _, _ := fb.Pixel(x, 22); r == 255 {
			lower = true
		}
	}
	if !lower {
		t.Fatal("second line wasn't drawn")
	}

}

func TestDrawDebugRenderInfo(t *testing.T) {

	r, fb, _ := newTestRenderer(t, 200, 80)
	r.DrawModel(newTestCamera(), newTestCube(t, Vector3{}), DrawOptions{})
	r.DrawDebugRenderInfo(fb, NewColor(1, 1, 1, 1))

	white := 0
	for y := 0; y < 80; y++ {
		for x := 0; x < 200; x++ {
			if cr, cg, cb := fb.Pixel(x, y); cr == 255 && cg == 255 && cb == 255 {
				white++
			}
		}
	}

	if white == 0 {
		t.Fatal("debug info wasn't drawn")
	}

}

func TestSetLogger(t *testing.T) {

	defer SetLogger(nil)

	SetLogger(slog.New(slog.NewTextHandler(&testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if !Logger().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("logger wasn't set")
	}

	if _, err := NewModel(ShapeCube, ModelOptions{}); err != nil {
		t.Fatal(err)
	}

	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) didn't restore the silent logger")
	}

}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
