package softrast

// DefaultAmbient is the brightness floor FlatLitShader uses when its Ambient is left at zero.
const DefaultAmbient = 0.21

// ShadeInput is what a Shader receives for each triangle drawn.
type ShadeInput struct {
	Normal   Vector3 // The outward face normal in world space, normalized.
	UV       Vector2 // Unused; always zero.
	Position Vector3 // The triangle's centroid in world space.
	LightDir Vector3 // The direction towards the light, normalized.
	Base     Color   // The base color of the triangle.
}

// Shader computes the color of a whole triangle once per draw.
type Shader interface {
	Shade(input ShadeInput) Color
}

// ShaderFunc is an adapter to allow the use of an ordinary function as a Shader.
type ShaderFunc func(input ShadeInput) Color

// Shade calls f(input).
func (f ShaderFunc) Shade(input ShadeInput) Color {
	return f(input)
}

// FlatLitShader lights a triangle by the angle between its normal and the light direction, never going darker than Ambient.
type FlatLitShader struct {
	Ambient float32 // The brightness floor; zero uses DefaultAmbient.
}

func (s FlatLitShader) Shade(input ShadeInput) Color {
	ambient := s.Ambient
	if ambient == 0 {
		ambient = DefaultAmbient
	}
	brightness := clamp(input.Normal.Dot(input.LightDir), 0, 1) + ambient
	if brightness > 1 {
		brightness = 1
	}
	out := input.Base.Mult(brightness)
	out.A = 1
	return out
}

// FragmentInput is what a FragmentShader receives for each pixel that passes the depth test.
type FragmentInput struct {
	Color    Color   // The triangle's color, as returned by its Shader.
	UV       Vector2 // Unused; always zero.
	Position Vector3 // The perspective-correct interpolated world position of the pixel.
	Normal   Vector3 // The outward face normal in world space.
}

// FragmentShader computes the final color of a single pixel.
type FragmentShader interface {
	ShadeFragment(input FragmentInput) Color
}

// FragmentFunc is an adapter to allow the use of an ordinary function as a FragmentShader.
type FragmentFunc func(input FragmentInput) Color

// ShadeFragment calls f(input).
func (f FragmentFunc) ShadeFragment(input FragmentInput) Color {
	return f(input)
}

// PositionTintFragment tints each pixel by multiplying the triangle's color by the pixel's world position, channel by channel (X with R,
// Y with G, Z with B). Useful for checking that depth interpolation is perspective-correct.
var PositionTintFragment = FragmentFunc(func(input FragmentInput) Color {
	return input.Color.MultRGB(input.Position).Clamped()
})

// ShadingMode selects how DrawTriangle colors a triangle.
type ShadingMode int

const (
	ShadingLit     ShadingMode = iota // Colors triangles with the draw's Shader (or FlatLitShader if there is none).
	ShadingNormals                    // Colors triangles by their world normal mapped into 0 to 1; backfaces are always rejected.
	ShadingUnlit                      // Colors triangles with their base color.
)

func (mode ShadingMode) String() string {
	switch mode {
	case ShadingNormals:
		return "normals"
	case ShadingUnlit:
		return "unlit"
	}
	return "lit"
}

// normalColor maps a unit normal into a color, n * 0.5 + 0.5.
func normalColor(normal Vector3) Color {
	return Color{
		R: normal.X*0.5 + 0.5,
		G: normal.Y*0.5 + 0.5,
		B: normal.Z*0.5 + 0.5,
		A: 1,
	}
}
