package softrast

// MaxClipVertices is the most vertices a clipped triangle can have; each of the six frustum planes adds at most one.
const MaxClipVertices = 9

// ClipVertex is a vertex in homogeneous clip space, before the perspective divide.
type ClipVertex struct {
	Position Vector3 // Clip-space X, Y, and Z.
	W        float32
	World    Vector3 // The world-space position, carried along for fragment shading.
}

func (v ClipVertex) lerp(other ClipVertex, t float32) ClipVertex {
	return ClipVertex{
		Position: v.Position.Lerp(other.Position, t),
		W:        v.W + (other.W-v.W)*t,
		World:    v.World.Lerp(other.World, t),
	}
}

// ClipPolygon is a convex polygon produced by ClipTriangle. Only the first Count vertices are valid.
type ClipPolygon struct {
	Vertices [MaxClipVertices]ClipVertex
	Count    int
}

type clipPlane func(v ClipVertex) float32

// The six frustum planes as boundary functions; a vertex is inside a plane when its value is >= 0.
var clipPlanes = [6]clipPlane{
	func(v ClipVertex) float32 { return v.W + v.Position.X },
	func(v ClipVertex) float32 { return v.W - v.Position.X },
	func(v ClipVertex) float32 { return v.W + v.Position.Y },
	func(v ClipVertex) float32 { return v.W - v.Position.Y },
	func(v ClipVertex) float32 { return v.W + v.Position.Z },
	func(v ClipVertex) float32 { return v.W - v.Position.Z },
}

// ClipTriangle clips a clip-space triangle against the view frustum, writing the resulting convex polygon (in the same winding order)
// to out and returning its vertex count. A triangle with any vertex at or behind W = 0, or lying fully outside the frustum, returns 0.
func ClipTriangle(in [3]ClipVertex, out *ClipPolygon) int {

	out.Count = 0

	for _, v := range in {
		if v.W <= 0 {
			return 0
		}
	}

	var scratch ClipPolygon

	src, dst := out, &scratch
	src.Vertices[0], src.Vertices[1], src.Vertices[2] = in[0], in[1], in[2]
	src.Count = 3

	for _, plane := range clipPlanes {

		dst.Count = 0

		prev := src.Vertices[src.Count-1]
		prevD := plane(prev)

		for i := 0; i < src.Count; i++ {

			curr := src.Vertices[i]
			currD := plane(curr)

			if (prevD >= 0) != (currD >= 0) && dst.Count < MaxClipVertices {
				t := prevD / (prevD - currD)
				dst.Vertices[dst.Count] = prev.lerp(curr, t)
				dst.Count++
			}

			if currD >= 0 && dst.Count < MaxClipVertices {
				dst.Vertices[dst.Count] = curr
				dst.Count++
			}

			prev, prevD = curr, currD

		}

		if dst.Count < 3 {
			out.Count = 0
			return 0
		}

		src, dst = dst, src

	}

	// Six planes means an even number of swaps, so the result already sits in out.
	return src.Count

}
