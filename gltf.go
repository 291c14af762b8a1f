package softrast

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrMeshNotFound is returned when GLTFLoadOptions.MeshName names a mesh the document doesn't have.
var ErrMeshNotFound = errors.New("softrast: mesh not found")

// GLTFLoadOptions alters how a glTF document is read into triangles.
type GLTFLoadOptions struct {
	MeshName string  // If set, only the mesh with this name is loaded; otherwise, the triangles of every mesh are returned together.
	Scale    float32 // Uniform scale applied to loaded positions; zero is treated as 1.
	// FlipY negates the Y coordinate of loaded positions. glTF is Y-up, while softrast's world has up at -Y.
	FlipY bool
}

// DefaultGLTFLoadOptions creates an instance of GLTFLoadOptions with some sensible defaults.
func DefaultGLTFLoadOptions() *GLTFLoadOptions {
	return &GLTFLoadOptions{
		Scale: 1,
		FlipY: true,
	}
}

// LoadGLTFFile loads the triangles of a .gltf or .glb file from the filepath given. Passing nil for loadOptions uses DefaultGLTFLoadOptions().
// The result can be passed to NewModelFromTriangles.
func LoadGLTFFile(path string, loadOptions *GLTFLoadOptions) ([]Triangle, error) {

	fileData, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("softrast: read gltf %s: %w", path, err)
	}

	return LoadGLTFData(fileData, loadOptions)

}

// LoadGLTFData loads the triangles of a .gltf or .glb document from the byte data given. Passing nil for loadOptions uses DefaultGLTFLoadOptions().
// Only triangle-list primitives are read; other primitive modes are skipped (and logged as a warning). Node transforms are not applied.
func LoadGLTFData(data []byte, loadOptions *GLTFLoadOptions) ([]Triangle, error) {

	if loadOptions == nil {
		loadOptions = DefaultGLTFLoadOptions()
	}

	scale := loadOptions.Scale
	if scale == 0 {
		scale = 1
	}

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("softrast: decode gltf: %w", err)
	}

	tris := []Triangle{}
	found := false

	for _, mesh := range doc.Meshes {

		if loadOptions.MeshName != "" && mesh.Name != loadOptions.MeshName {
			continue
		}

		found = true

		for pi, prim := range mesh.Primitives {

			if prim.Mode != gltf.PrimitiveTriangles {
				Logger().Warn("skipping non-triangle gltf primitive", "mesh", mesh.Name, "primitive", pi, "mode", prim.Mode)
				continue
			}

			posAccessor, exists := prim.Attributes[gltf.POSITION]
			if !exists {
				Logger().Warn("skipping gltf primitive without positions", "mesh", mesh.Name, "primitive", pi)
				continue
			}

			vertPos, err := modeler.ReadPosition(doc, doc.Accessors[posAccessor], nil)
			if err != nil {
				return nil, fmt.Errorf("softrast: gltf mesh %q positions: %w", mesh.Name, err)
			}

			positions := make([]Vector3, len(vertPos))
			for i, p := range vertPos {
				pos := Vector3{p[0], p[1], p[2]}.Scale(scale)
				if loadOptions.FlipY {
					pos.Y = -pos.Y
				}
				positions[i] = pos
			}

			var indices []uint32

			if prim.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("softrast: gltf mesh %q indices: %w", mesh.Name, err)
				}
			} else {
				indices = make([]uint32, len(positions))
				for i := range indices {
					indices[i] = uint32(i)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
				if a >= len(positions) || b >= len(positions) || c >= len(positions) {
					return nil, fmt.Errorf("softrast: gltf mesh %q: index out of range", mesh.Name)
				}
				tris = append(tris, Triangle{positions[a], positions[b], positions[c]})
			}

		}

	}

	if loadOptions.MeshName != "" && !found {
		return nil, fmt.Errorf("softrast: gltf mesh %q: %w", loadOptions.MeshName, ErrMeshNotFound)
	}

	Logger().Debug("gltf loaded", "meshes", len(doc.Meshes), "triangles", len(tris))

	return tris, nil

}
