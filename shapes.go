package softrast

import "github.com/chewxy/math32"

// Shape selects the procedural mesh NewModel generates.
type Shape int

const (
	ShapeNone      Shape = iota // No triangles; the Model starts empty.
	ShapeCube                   // A unit cube centered on the origin (12 triangles).
	ShapePyramid                // A square pyramid with its apex at (0, 0.5, 0) (6 triangles).
	ShapeIcoSphere              // An icosahedron with its vertices on the unit sphere (20 triangles).
	ShapeTerrain                // A flat grid in the X-Z plane (see TerrainOptions).
)

func (shape Shape) String() string {
	switch shape {
	case ShapeCube:
		return "cube"
	case ShapePyramid:
		return "pyramid"
	case ShapeIcoSphere:
		return "icosphere"
	case ShapeTerrain:
		return "terrain"
	}
	return "none"
}

// TerrainOptions controls the grid generated for ShapeTerrain.
type TerrainOptions struct {
	Size     int     // The number of vertices along each side of the grid; the grid has (Size-1)² cells.
	CellSize float32 // The width and depth of each cell.
}

// DefaultTerrainOptions returns a 20x20 vertex grid with 1.5 unit cells.
func DefaultTerrainOptions() TerrainOptions {
	return TerrainOptions{
		Size:     20,
		CellSize: 1.5,
	}
}

func v3(x, y, z float32) Vector3 { return Vector3{x, y, z} }

func cubeTriangles() []Triangle {
	return []Triangle{
		// Front
		{v3(-0.5, -0.5, 0.5), v3(0.5, -0.5, 0.5), v3(0.5, 0.5, 0.5)},
		{v3(-0.5, -0.5, 0.5), v3(0.5, 0.5, 0.5), v3(-0.5, 0.5, 0.5)},
		// Back
		{v3(0.5, -0.5, -0.5), v3(-0.5, -0.5, -0.5), v3(-0.5, 0.5, -0.5)},
		{v3(0.5, -0.5, -0.5), v3(-0.5, 0.5, -0.5), v3(0.5, 0.5, -0.5)},
		// Top
		{v3(-0.5, 0.5, -0.5), v3(-0.5, 0.5, 0.5), v3(0.5, 0.5, 0.5)},
		{v3(-0.5, 0.5, -0.5), v3(0.5, 0.5, 0.5), v3(0.5, 0.5, -0.5)},
		// Bottom
		{v3(-0.5, -0.5, -0.5), v3(0.5, -0.5, -0.5), v3(0.5, -0.5, 0.5)},
		{v3(-0.5, -0.5, -0.5), v3(0.5, -0.5, 0.5), v3(-0.5, -0.5, 0.5)},
		// Right
		{v3(0.5, -0.5, -0.5), v3(0.5, -0.5, 0.5), v3(0.5, 0.5, 0.5)},
		{v3(0.5, -0.5, -0.5), v3(0.5, 0.5, 0.5), v3(0.5, 0.5, -0.5)},
		// Left
		{v3(-0.5, -0.5, 0.5), v3(-0.5, -0.5, -0.5), v3(-0.5, 0.5, -0.5)},
		{v3(-0.5, -0.5, 0.5), v3(-0.5, 0.5, -0.5), v3(-0.5, 0.5, 0.5)},
	}
}

func pyramidTriangles() []Triangle {
	apex := v3(0, 0.5, 0)
	return []Triangle{
		{v3(-0.5, -0.5, -0.5), v3(0.5, -0.5, -0.5), v3(0.5, -0.5, 0.5)},
		{v3(-0.5, -0.5, -0.5), v3(0.5, -0.5, 0.5), v3(-0.5, -0.5, 0.5)},
		{v3(-0.5, -0.5, 0.5), v3(0.5, -0.5, 0.5), apex},
		{v3(0.5, -0.5, 0.5), v3(0.5, -0.5, -0.5), apex},
		{v3(0.5, -0.5, -0.5), v3(-0.5, -0.5, -0.5), apex},
		{v3(-0.5, -0.5, -0.5), v3(-0.5, -0.5, 0.5), apex},
	}
}

var icoFaces = [20][3]int{
	{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
	{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
	{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
	{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
}

func icoSphereTriangles() []Triangle {

	phi := (1 + math32.Sqrt(5)) * 0.5

	verts := [12]Vector3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	for i := range verts {
		verts[i] = verts[i].Unit()
	}

	tris := make([]Triangle, 0, len(icoFaces))
	for _, f := range icoFaces {
		tris = append(tris, Triangle{verts[f[0]], verts[f[1]], verts[f[2]]})
	}
	return tris

}

func terrainTriangles(opt TerrainOptions) []Triangle {

	if opt.Size < 2 {
		return nil
	}

	cells := opt.Size - 1
	s := opt.CellSize
	tris := make([]Triangle, 0, cells*cells*2)

	for x := 0; x < cells; x++ {
		for z := 0; z < cells; z++ {
			x0, x1 := float32(x)*s, float32(x+1)*s
			z0, z1 := float32(z)*s, float32(z+1)*s
			tris = append(tris,
				Triangle{v3(x0, 0, z0), v3(x0, 0, z1), v3(x1, 0, z0)},
				Triangle{v3(x1, 0, z0), v3(x0, 0, z1), v3(x1, 0, z1)},
			)
		}
	}

	return tris

}
