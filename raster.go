package softrast

import "math"

const (
	minClipW     = 1e-4
	edgeEpsilon  = -1e-6
	minRasterDet = 1e-6
)

// screenVertex is a clip vertex after the perspective divide and viewport mapping.
type screenVertex struct {
	X, Y       float32 // Pixel coordinates.
	InvW       float32 // 1 / W
	ZOverW     float32 // Clip-space Z / W
	WorldOverW Vector3 // World position / W, for perspective-correct interpolation.
}

// ScreenPoint maps a point in normalized device coordinates to pixel coordinates in a view of the given size, clamped to the view.
// NDC Y points up, while pixel Y points down.
func ScreenPoint(ndcX, ndcY float32, width, height int) (x, y float32) {
	x = (ndcX*0.5 + 0.5) * float32(width)
	y = (1 - (ndcY*0.5 + 0.5)) * float32(height)
	return clamp(x, 0, float32(width-1)), clamp(y, 0, float32(height-1))
}

func toScreen(v ClipVertex, width, height int) screenVertex {
	if v.W <= minClipW {
		x, y := ScreenPoint(0, 0, width, height)
		return screenVertex{X: x, Y: y}
	}
	invW := 1 / v.W
	x, y := ScreenPoint(v.Position.X*invW, v.Position.Y*invW, width, height)
	return screenVertex{
		X:          x,
		Y:          y,
		InvW:       invW,
		ZOverW:     v.Position.Z * invW,
		WorldOverW: v.World.Scale(invW),
	}
}

// edgeFunction returns twice the signed area of the triangle a, b, p.
func edgeFunction(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// signedArea returns twice the signed pixel-space area of the triangle; front faces are positive.
func signedArea(a, b, c screenVertex) float32 {
	return edgeFunction(a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

// quantizeDepth maps a normalized depth in 0 to 1 onto the full uint32 range.
func quantizeDepth(d float32) uint32 {
	return uint32(float64(clamp(d, 0, 1)) * math.MaxUint32)
}

// rasterJob holds what is constant across every fan sub-triangle of one clipped triangle.
type rasterJob struct {
	color    Color
	normal   Vector3
	far      float32
	fragment FragmentShader
	cull     bool
}

// rasterPolygon perspective-divides the clipped polygon, splits it into a fan, and fills (or outlines) each piece.
func (r *Renderer) rasterPolygon(poly *ClipPolygon, job rasterJob, wireframe bool) {

	width, height := r.target.Size()

	var verts [MaxClipVertices]screenVertex
	for i := 0; i < poly.Count; i++ {
		verts[i] = toScreen(poly.Vertices[i], width, height)
	}

	for i := 1; i < poly.Count-1; i++ {

		a, b, c := verts[0], verts[i], verts[i+1]

		if job.cull && signedArea(a, b, c) <= 0 {
			r.DebugInfo.CulledTris++
			continue
		}

		if wireframe {
			r.outlineTriangle(a, b, c)
		} else {
			r.fillTriangle(a, b, c, job, width, height)
		}

	}

}

func (r *Renderer) outlineTriangle(a, b, c screenVertex) {
	ax, ay := int(a.X), int(a.Y)
	bx, by := int(b.X), int(b.Y)
	cx, cy := int(c.X), int(c.Y)
	r.line(ax, ay, bx, by, 255, 0, 0)
	r.line(bx, by, cx, cy, 0, 255, 0)
	r.line(cx, cy, ax, ay, 0, 0, 255)
	r.target.SetPixel(ax, ay, 255, 255, 255)
	r.target.SetPixel(bx, by, 255, 255, 255)
	r.target.SetPixel(cx, cy, 255, 255, 255)
}

// line draws a line with Bresenham's algorithm; the Target drops any pixels out of range.
func (r *Renderer) line(x0, y0, x1, y1 int, cr, cg, cb uint8) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		r.target.SetPixel(x0, y0, cr, cg, cb)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(a, b, c screenVertex, job rasterJob, width, height int) {

	det := signedArea(a, b, c)
	if det > -minRasterDet && det < minRasterDet {
		return
	}
	invDet := 1 / det

	minX := clamp(int(min3(a.X, b.X, c.X)), 0, width-1)
	maxX := clamp(int(max3(a.X, b.X, c.X))+1, 0, width-1)
	minY := clamp(int(min3(a.Y, b.Y, c.Y)), 0, height-1)
	maxY := clamp(int(max3(a.Y, b.Y, c.Y))+1, 0, height-1)

	cr, cg, cb := job.color.RGB8()

	for y := minY; y <= maxY; y++ {

		py := float32(y) + 0.5

		for x := minX; x <= maxX; x++ {

			px := float32(x) + 0.5

			w0 := edgeFunction(b.X, b.Y, c.X, c.Y, px, py) * invDet
			w1 := edgeFunction(c.X, c.Y, a.X, a.Y, px, py) * invDet
			w2 := edgeFunction(a.X, a.Y, b.X, b.Y, px, py) * invDet

			if w0 < edgeEpsilon || w1 < edgeEpsilon || w2 < edgeEpsilon {
				continue
			}

			if r.depth == nil {
				r.target.SetPixel(x, y, cr, cg, cb)
				r.DebugInfo.PixelsWritten++
				continue
			}

			invW := w0*a.InvW + w1*b.InvW + w2*c.InvW
			if invW <= 0 {
				continue
			}

			z := (w0*a.ZOverW + w1*b.ZOverW + w2*c.ZOverW) / invW

			if !r.depth.testAndSet(x, y, quantizeDepth(z/job.far)) {
				continue
			}

			if job.fragment != nil {
				world := a.WorldOverW.Scale(w0).Add(b.WorldOverW.Scale(w1)).Add(c.WorldOverW.Scale(w2)).Scale(1 / invW)
				fc := job.fragment.ShadeFragment(FragmentInput{
					Color:    job.color,
					Position: world,
					Normal:   job.normal,
				})
				fr, fg, fb := fc.RGB8()
				r.target.SetPixel(x, y, fr, fg, fb)
			} else {
				r.target.SetPixel(x, y, cr, cg, cb)
			}

			r.DebugInfo.PixelsWritten++

		}

	}

}
