package softrast

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSize is returned when a Framebuffer or DepthBuffer is requested with a non-positive size.
var ErrInvalidSize = errors.New("softrast: invalid buffer size")

// DepthFar is the depth value that represents "infinitely far away"; DepthBuffer.Clear sets every cell to it.
const DepthFar = ^uint32(0)

// Target is a minimal pixel target for software rendering.
//
// Implementations should drop out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, r, g, b uint8)
}

// Filler is optionally implemented by Targets that can fill themselves with a single color faster than pixel by pixel.
type Filler interface {
	Fill(r, g, b uint8)
}

// Framebuffer is a Target backed by an *image.RGBA, so it can be encoded, drawn on with image/draw, or uploaded to a GPU texture as-is.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer returns a new Framebuffer of the given size, or an error wrapping ErrInvalidSize.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		Logger().Error("framebuffer allocation failed", "width", width, "height", height)
		return nil, fmt.Errorf("softrast: framebuffer %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// Size returns the width and height of the Framebuffer.
func (fb *Framebuffer) Size() (w, h int) {
	b := fb.img.Bounds()
	return b.Dx(), b.Dy()
}

// SetPixel sets the pixel at x, y to the opaque color given. Out-of-range writes are ignored.
func (fb *Framebuffer) SetPixel(x, y int, r, g, b uint8) {
	w, h := fb.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := fb.img.PixOffset(x, y)
	pix := fb.img.Pix[i : i+4 : i+4]
	pix[0] = r
	pix[1] = g
	pix[2] = b
	pix[3] = 0xFF
}

// Pixel returns the color of the pixel at x, y, or black if the coordinates are out of range.
func (fb *Framebuffer) Pixel(x, y int) (r, g, b uint8) {
	w, h := fb.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return 0, 0, 0
	}
	i := fb.img.PixOffset(x, y)
	return fb.img.Pix[i], fb.img.Pix[i+1], fb.img.Pix[i+2]
}

// Fill sets every pixel in the Framebuffer to the opaque color given.
func (fb *Framebuffer) Fill(r, g, b uint8) {
	pix := fb.img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = r, g, b, 0xFF
	// Double the filled region each pass.
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

// Image returns the backing *image.RGBA of the Framebuffer.
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// DepthBuffer stores one depth value per pixel; smaller values are nearer to the camera.
type DepthBuffer struct {
	Width, Height int
	Values        []uint32
}

// NewDepthBuffer returns a new, cleared DepthBuffer of the given size, or an error wrapping ErrInvalidSize.
func NewDepthBuffer(width, height int) (*DepthBuffer, error) {
	if width <= 0 || height <= 0 {
		Logger().Error("depth buffer allocation failed", "width", width, "height", height)
		return nil, fmt.Errorf("softrast: depth buffer %dx%d: %w", width, height, ErrInvalidSize)
	}
	db := &DepthBuffer{
		Width:  width,
		Height: height,
		Values: make([]uint32, width*height),
	}
	db.Clear()
	return db, nil
}

// Clear resets every cell of the DepthBuffer to DepthFar.
func (db *DepthBuffer) Clear() {
	for i := range db.Values {
		db.Values[i] = DepthFar
	}
}

// At returns the depth stored for the pixel at x, y; out-of-range coordinates return DepthFar.
func (db *DepthBuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= db.Width || y >= db.Height {
		return DepthFar
	}
	return db.Values[y*db.Width+x]
}

// testAndSet writes depth into the cell at x, y if it is strictly nearer than the stored value, reporting whether it did.
func (db *DepthBuffer) testAndSet(x, y int, depth uint32) bool {
	if x < 0 || y < 0 || x >= db.Width || y >= db.Height {
		return false
	}
	i := y*db.Width + x
	if depth >= db.Values[i] {
		return false
	}
	db.Values[i] = depth
	return true
}
