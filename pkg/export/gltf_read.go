package export

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/mesh"
)

// ReadGLB loads every triangle mesh reachable from the default scene of a
// glTF or GLB file. Node transforms are applied and the result is converted
// back to Z-up millimeters, so a file written by SaveGLB reads back in
// scene coordinates. Buffers are named after their nodes.
func ReadGLB(path string) ([]*mesh.Buffer, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return readDocument(doc)
}

func readDocument(doc *gltf.Document) ([]*mesh.Buffer, error) {
	var roots []int
	switch {
	case doc.Scene != nil && *doc.Scene < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	}

	var out []*mesh.Buffer
	var walk func(idx int, parent math3d.Mat4) error
	walk = func(idx int, parent math3d.Mat4) error {
		if idx < 0 || idx >= len(doc.Nodes) {
			return fmt.Errorf("node %d out of range", idx)
		}
		node := doc.Nodes[idx]
		world := parent.Mul(localMatrix(node))
		if node.Mesh != nil {
			b, err := readMesh(doc, *node.Mesh)
			if err != nil {
				return fmt.Errorf("node %q: %w", node.Name, err)
			}
			b = b.Transform(yUpToZUp.Mul(world))
			b.Name = node.Name
			out = append(out, b)
		}
		for _, child := range node.Children {
			if err := walk(child, world); err != nil {
				return err
			}
		}
		return nil
	}
	for _, idx := range roots {
		if err := walk(idx, math3d.Identity()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// localMatrix returns the node matrix, or its TRS composition when no
// matrix is set.
func localMatrix(n *gltf.Node) math3d.Mat4 {
	m := math3d.Mat4(n.MatrixOrDefault())
	if m != math3d.Mat4(gltf.DefaultMatrix) {
		return m
	}
	t := n.TranslationOrDefault()
	q := n.RotationOrDefault()
	s := n.ScaleOrDefault()
	return math3d.Translate(math3d.V3(t[0], t[1], t[2])).
		Mul(quatMatrix(q)).
		Mul(math3d.Scale(math3d.V3(s[0], s[1], s[2])))
}

// quatMatrix converts an x, y, z, w unit quaternion to a rotation matrix.
func quatMatrix(q [4]float64) math3d.Mat4 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return math3d.Mat4{
		1 - 2*(y*y+z*z), 2 * (x*y + z*w), 2 * (x*z - y*w), 0,
		2 * (x*y - z*w), 1 - 2*(x*x+z*z), 2 * (y*z + x*w), 0,
		2 * (x*z + y*w), 2 * (y*z - x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}

// readMesh merges the triangle primitives of a mesh. Each triangle takes
// the color of its first vertex; meshes without colors are painted white.
func readMesh(doc *gltf.Document, idx int) (*mesh.Buffer, error) {
	if idx < 0 || idx >= len(doc.Meshes) {
		return nil, fmt.Errorf("mesh %d out of range", idx)
	}
	m := doc.Meshes[idx]
	out := mesh.New(m.Name)
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}
		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return nil, fmt.Errorf("read positions: %w", err)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, fmt.Errorf("read indices: %w", err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		var colors [][4]uint8
		if colIdx, ok := prim.Attributes[gltf.COLOR_0]; ok {
			colors, err = modeler.ReadColor(doc, doc.Accessors[colIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("read colors: %w", err)
			}
		}

		base := len(out.Vertices)
		for _, p := range positions {
			out.Vertices = append(out.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}
		for i := 0; i+2 < len(indices); i += 3 {
			tri := [3]int{base + int(indices[i]), base + int(indices[i+1]), base + int(indices[i+2])}
			for _, v := range tri {
				if v >= len(out.Vertices) {
					return nil, fmt.Errorf("index %d out of range", v-base)
				}
			}
			out.Triangles = append(out.Triangles, tri)
			c := mesh.Gray(1)
			if first := int(indices[i]); first < len(colors) {
				k := colors[first]
				c = mesh.Color{
					R: float64(k[0]) / 255,
					G: float64(k[1]) / 255,
					B: float64(k[2]) / 255,
					A: float64(k[3]) / 255,
				}
			}
			out.Colors = append(out.Colors, c)
		}
	}
	return out, nil
}
