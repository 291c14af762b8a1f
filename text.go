package softrast

import (
	"fmt"
	"image"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawDebugText draws the text given into the Framebuffer with its top-left corner at x, y, using a 7x13 bitmap font with a
// one-pixel black outline. Newlines start a new line.
func DrawDebugText(fb *Framebuffer, txt string, x, y int, color Color) {

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil()
	ascent := face.Metrics().Ascent.Ceil()

	outline := &font.Drawer{
		Dst:  fb.Image(),
		Src:  image.NewUniform(NewColor(0, 0, 0, 1).ToRGBA()),
		Face: face,
	}

	fg := &font.Drawer{
		Dst:  fb.Image(),
		Src:  image.NewUniform(color.ToRGBA()),
		Face: face,
	}

	for i, line := range strings.Split(txt, "\n") {

		baseline := y + ascent + i*lineHeight

		for oy := -1; oy < 2; oy++ {
			for ox := -1; ox < 2; ox++ {
				if ox == 0 && oy == 0 {
					continue
				}
				outline.Dot = fixed.P(x+ox, baseline+oy)
				outline.DrawString(line)
			}
		}

		fg.Dot = fixed.P(x, baseline)
		fg.DrawString(line)

	}

}

// DrawDebugRenderInfo draws the Renderer's DebugInfo into the top-left corner of the Framebuffer.
func (r *Renderer) DrawDebugRenderInfo(fb *Framebuffer, color Color) {

	m := r.DebugInfo.FrameTime.Round(time.Microsecond).Microseconds()
	ft := fmt.Sprintf("%.2fms", float32(m)/1000)

	debugText := fmt.Sprintf(
		"Frame-time: %s\nRendered triangles: %d/%d\nClipped: %d Culled: %d\nPixels: %d",
		ft,
		r.DebugInfo.DrawnTris,
		r.DebugInfo.TotalTris,
		r.DebugInfo.ClippedTris,
		r.DebugInfo.CulledTris,
		r.DebugInfo.PixelsWritten,
	)

	DrawDebugText(fb, debugText, 2, 2, color)

}
