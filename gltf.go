package gasket

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

var errNoPositions = errors.New("gltf document has no mesh primitive with positions")

// ExportGLTF writes the VertexBuffer as a glTF 2.0 document: a single node holding a mesh with one
// non-indexed triangle-list primitive, whose positions lie on the Z = 0 plane, and a material colored
// with FillColor(). If binary is true, the document is written as a .glb; otherwise it's written as
// JSON with the vertex data embedded.
func ExportGLTF(vb VertexBuffer, w io.Writer, binary bool) error {

	doc := newGLTFDocument(vb)

	if !binary {
		for _, buffer := range doc.Buffers {
			buffer.EmbeddedResource()
		}
	}

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = binary
	return encoder.Encode(doc)

}

// SaveGLTF exports the VertexBuffer to the file at the path given; a path ending in ".glb" is
// written as a binary glTF file, anything else as JSON.
func SaveGLTF(vb VertexBuffer, path string) error {

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := ExportGLTF(vb, f, strings.EqualFold(filepath.Ext(path), ".glb")); err != nil {
		f.Close()
		return err
	}

	return f.Close()

}

func newGLTFDocument(vb VertexBuffer) *gltf.Document {

	doc := gltf.NewDocument()

	positions := make([][3]float32, 0, vb.VertexCount())
	for i := 0; i < vb.VertexCount(); i++ {
		positions = append(positions, [3]float32{vb[i*2], vb[i*2+1], 0})
	}

	fill := FillColor()

	doc.Materials = []*gltf.Material{
		{
			Name:        "gasket",
			DoubleSided: true,
			PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
				BaseColorFactor: &[4]float64{float64(fill.R), float64(fill.G), float64(fill.B), float64(fill.A)},
				MetallicFactor:  gltf.Float(0),
			},
		},
	}

	doc.Meshes = []*gltf.Mesh{
		{
			Name: "gasket",
			Primitives: []*gltf.Primitive{
				{
					Mode:     gltf.PrimitiveTriangles,
					Material: gltf.Index(0),
					Attributes: map[string]int{
						gltf.POSITION: modeler.WritePosition(doc, positions),
					},
				},
			},
		},
	}

	doc.Nodes = []*gltf.Node{{Name: "gasket", Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	return doc

}

// LoadGLTFVertices reads back the positions of the first mesh primitive of a glTF document, as
// written by ExportGLTF, dropping the Z component.
func LoadGLTFVertices(r io.Reader) (VertexBuffer, error) {

	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, err
	}

	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return nil, errNoPositions
	}

	accessor, ok := doc.Meshes[0].Primitives[0].Attributes[gltf.POSITION]
	if !ok {
		return nil, errNoPositions
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[accessor], nil)
	if err != nil {
		return nil, err
	}

	vb := make(VertexBuffer, 0, len(positions)*2)
	for _, p := range positions {
		vb = append(vb, p[0], p[1])
	}

	return vb, nil

}
