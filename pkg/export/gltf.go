package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/doorgeom/pkg/mesh"
	"github.com/taigrr/doorgeom/pkg/scene"
)

// Document builds a glTF document from the visible parts of s.
//
// Each part becomes one mesh and one node named after the part. Vertices
// are not shared between triangles so every triangle keeps its own color.
// Part nodes carry the open transform as their matrix and hang off a root
// node named "door" that converts to glTF axes and units.
func Document(s scene.Snapshot) (*gltf.Document, error) {
	parts := s.VisibleParts()
	if len(parts) == 0 {
		return nil, ErrEmptyScene
	}

	doc := gltf.NewDocument()
	opaque := addMaterial(doc, "opaque", gltf.AlphaOpaque)
	translucent := -1

	root := &gltf.Node{Name: "door", Matrix: zUpToYUp}
	for _, p := range parts {
		if p.Mesh.TriangleCount() == 0 {
			continue
		}
		material := opaque
		if p.Mesh.TriangleColor(0).A < 255 {
			if translucent < 0 {
				translucent = addMaterial(doc, "translucent", gltf.AlphaBlend)
			}
			material = translucent
		}

		meshIdx := len(doc.Meshes)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name:       p.Name,
			Primitives: []*gltf.Primitive{primitive(doc, p.Mesh, material)},
		})
		node := &gltf.Node{
			Name: p.Name,
			Mesh: gltf.Index(meshIdx),
			Extras: map[string]any{
				"kind":  p.Kind.String(),
				"group": p.Group.String(),
			},
		}
		// Closed parts keep the default matrix.
		if m := p.Transform.Matrix(); !m.IsIdentity() {
			node.Matrix = m
		}
		root.Children = append(root.Children, len(doc.Nodes))
		doc.Nodes = append(doc.Nodes, node)
	}
	if len(root.Children) == 0 {
		return nil, ErrEmptyScene
	}

	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, root)
	return doc, nil
}

func addMaterial(doc *gltf.Document, name string, mode gltf.AlphaMode) int {
	metallic, roughness := 0.0, 0.8
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name:      name,
		AlphaMode: mode,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			MetallicFactor:  &metallic,
			RoughnessFactor: &roughness,
		},
	})
	return len(doc.Materials) - 1
}

// primitive writes the unshared positions, colors and indices of b.
func primitive(doc *gltf.Document, b *mesh.Buffer, material int) *gltf.Primitive {
	n := b.TriangleCount()
	positions := make([][3]float32, 0, n*3)
	colors := make([][4]uint8, 0, n*3)
	indices := make([]uint32, 0, n*3)
	for i := range n {
		c := b.TriangleColor(i)
		for _, vi := range b.Triangle(i) {
			v := b.Vertex(vi)
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, [3]float32{float32(v.X), float32(v.Y), float32(v.Z)})
			colors = append(colors, [4]uint8{c.R, c.G, c.B, c.A})
		}
	}
	return &gltf.Primitive{
		Mode:     gltf.PrimitiveTriangles,
		Material: gltf.Index(material),
		Indices:  gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.COLOR_0:  modeler.WriteColor(doc, colors),
		},
	}
}

// SaveGLB writes the visible parts of s to path as binary glTF.
func SaveGLB(path string, s scene.Snapshot) error {
	doc, err := Document(s)
	if err != nil {
		return err
	}
	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("save glb: %w", err)
	}
	return nil
}
