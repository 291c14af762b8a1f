package softrast

import "time"

// DebugInfo contains some basic information about the rendering process since the last Clear.
type DebugInfo struct {
	FrameTime        time.Duration // Amount of CPU time spent drawing in the previous frame (between the last two calls to Clear).
	currentFrameTime time.Duration
	TotalTris        int // Total number of non-zero triangles submitted
	DrawnTris        int // Number of triangles that reached the rasterizer
	ClippedTris      int // Number of triangles rejected by the clipper
	CulledTris       int // Number of fan pieces rejected by backface culling
	PixelsWritten    int // Number of pixels written by filled triangles
}

// DrawOptions controls how a single DrawTriangle or DrawModel call renders.
type DrawOptions struct {
	Shading       ShadingMode
	Shader        Shader         // Used by ShadingLit; nil falls back to the Model's Shader, then FlatLitShader.
	Fragment      FragmentShader // Run per pixel after the depth test; ignored without a DepthBuffer or in wireframe.
	Wireframe     bool           // Draws each triangle's edges (red, green, blue) and vertices (white) instead of filling it.
	CullBackfaces bool           // Skips triangles facing away from the camera; always on for ShadingNormals.
}

// Renderer draws triangles into a Target, optionally depth testing against a DepthBuffer.
// A Renderer isn't safe for concurrent use; one goroutine should own it (and its Target and DepthBuffer) for a whole frame.
type Renderer struct {
	Light     Vector3 // The direction towards the light; normalized when used.
	DebugInfo DebugInfo

	target Target
	depth  *DepthBuffer
}

// NewRenderer returns a new Renderer that draws into the target given. If depth is nil, triangles are filled in
// draw order without any depth testing.
func NewRenderer(target Target, depth *DepthBuffer) *Renderer {
	return &Renderer{
		Light:  Vector3{0, -1, -1}.Unit(),
		target: target,
		depth:  depth,
	}
}

// Target returns the Renderer's Target.
func (r *Renderer) Target() Target {
	return r.target
}

// DepthBuffer returns the Renderer's DepthBuffer (which may be nil).
func (r *Renderer) DepthBuffer() *DepthBuffer {
	return r.depth
}

// Clear fills the Target with the color given, resets the DepthBuffer to infinitely far, and starts a new DebugInfo frame.
func (r *Renderer) Clear(c Color) {

	cr, cg, cb := c.RGB8()

	if filler, ok := r.target.(Filler); ok {
		filler.Fill(cr, cg, cb)
	} else {
		w, h := r.target.Size()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r.target.SetPixel(x, y, cr, cg, cb)
			}
		}
	}

	if r.depth != nil {
		r.depth.Clear()
	}

	r.DebugInfo = DebugInfo{FrameTime: r.DebugInfo.currentFrameTime}

}

// DrawTriangle draws a single local-space triangle placed in the world by the Transform given, as seen by the camera.
func (r *Renderer) DrawTriangle(camera Camera, transform Transform, tri Triangle, color Color, options DrawOptions) {

	if tri.IsZero() {
		return
	}

	start := time.Now()

	w, h := r.target.Size()
	model := transform.Matrix()
	mvp := NewMVP(model, camera.ViewMatrix(), camera.Projection(w, h))

	r.drawTriangle(camera, model, NormalMatrix(model), mvp, tri, color, options, options.Shader)

	r.DebugInfo.currentFrameTime += time.Since(start)

}

// DrawModel draws every triangle of the Model with the Model's transform. A Shader set in options overrides the Model's own.
func (r *Renderer) DrawModel(camera Camera, model *Model, options DrawOptions) {

	if model == nil {
		return
	}

	start := time.Now()

	w, h := r.target.Size()
	modelMatrix := model.Transform().Matrix()
	normalMatrix := NormalMatrix(modelMatrix)
	mvp := NewMVP(modelMatrix, camera.ViewMatrix(), camera.Projection(w, h))

	shader := options.Shader
	if shader == nil {
		shader = model.Shader
	}

	for _, tri := range model.Triangles {
		if tri.IsZero() {
			continue
		}
		r.drawTriangle(camera, modelMatrix, normalMatrix, mvp, tri, model.Color, options, shader)
	}

	r.DebugInfo.currentFrameTime += time.Since(start)

}

func (r *Renderer) drawTriangle(camera Camera, model, normalMatrix, mvp Matrix4, tri Triangle, base Color, options DrawOptions, shader Shader) {

	r.DebugInfo.TotalTris++

	var in [3]ClipVertex
	for i, v := range tri {
		clip := mvp.MultVecW(v)
		in[i] = ClipVertex{
			Position: clip.Vector3(),
			W:        clip.W,
			World:    model.MultVec(v),
		}
	}

	var poly ClipPolygon
	if ClipTriangle(in, &poly) == 0 {
		r.DebugInfo.ClippedTris++
		return
	}

	r.DebugInfo.DrawnTris++

	// The winding pass leaves the cross product pointing inwards, so the outward normal is its inverse.
	normal := normalMatrix.MultDir(tri.Normal()).Invert().Unit()

	job := rasterJob{
		normal: normal,
		far:    camera.Far,
		cull:   options.CullBackfaces,
	}

	switch options.Shading {
	case ShadingNormals:
		job.color = normalColor(normal)
		job.cull = true
	case ShadingUnlit:
		job.color = base
	default:
		if shader == nil {
			shader = FlatLitShader{}
		}
		job.color = shader.Shade(ShadeInput{
			Normal:   normal,
			Position: model.MultVec(tri.Center()),
			LightDir: r.Light.Unit(),
			Base:     base,
		})
	}

	if !options.Wireframe {
		job.fragment = options.Fragment
	}

	r.rasterPolygon(&poly, job, options.Wireframe)

}

// DrawLine draws a line between two pixel coordinates in the color given. Pixels outside the Target are dropped.
func (r *Renderer) DrawLine(x0, y0, x1, y1 int, c Color) {
	cr, cg, cb := c.RGB8()
	r.line(x0, y0, x1, y1, cr, cg, cb)
}

// DrawPoint sets a single pixel to the color given. Pixels outside the Target are dropped.
func (r *Renderer) DrawPoint(x, y int, c Color) {
	w, h := r.target.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	cr, cg, cb := c.RGB8()
	r.target.SetPixel(x, y, cr, cg, cb)
}
