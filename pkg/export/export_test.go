package export

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/math3d"
	"github.com/taigrr/doorgeom/pkg/scene"
)

func defaultScene(t *testing.T) *scene.Assembler {
	t.Helper()
	a := scene.NewDefault()
	if err := a.SetConfiguration(door.Default()); err != nil {
		t.Fatal(err)
	}
	return a
}

func TestAxisConversion(t *testing.T) {
	if !zUpToYUp.Mul(yUpToZUp).IsIdentity() {
		t.Fatal("axis matrices are not inverses")
	}
	tests := []struct {
		name string
		in   math3d.Vec3
		want math3d.Vec3
	}{
		{"up", math3d.V3(0, 0, 1000), math3d.V3(0, 1, 0)},
		{"front", math3d.V3(0, 1000, 0), math3d.V3(0, 0, 1)},
		{"side", math3d.V3(1000, 0, 0), math3d.V3(-1, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := zUpToYUp.MulVec3(tc.in); !got.ApproxEqual(tc.want, 1e-12) {
				t.Errorf("zUpToYUp(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	s := defaultScene(t).Snapshot()
	doc, err := Document(s)
	if err != nil {
		t.Fatal(err)
	}
	visible := len(s.VisibleParts())
	if len(doc.Meshes) != visible {
		t.Errorf("meshes = %d, want %d", len(doc.Meshes), visible)
	}
	if len(doc.Nodes) != visible+1 {
		t.Fatalf("nodes = %d, want %d", len(doc.Nodes), visible+1)
	}
	root := doc.Nodes[len(doc.Nodes)-1]
	if root.Name != "door" || len(root.Children) != visible {
		t.Errorf("root = %q with %d children", root.Name, len(root.Children))
	}
	if got := doc.Scenes[0].Nodes; len(got) != 1 || got[0] != len(doc.Nodes)-1 {
		t.Errorf("scene nodes = %v", got)
	}
	// The wall is translucent.
	if len(doc.Materials) != 2 {
		t.Errorf("materials = %d, want opaque and translucent", len(doc.Materials))
	}
	for _, m := range doc.Meshes {
		p := m.Primitives[0]
		if _, ok := p.Attributes["COLOR_0"]; !ok {
			t.Errorf("mesh %q has no vertex colors", m.Name)
		}
	}
	for _, n := range doc.Nodes[:visible] {
		if n.MatrixOrDefault() != gltf.DefaultMatrix {
			t.Errorf("closed node %q has matrix %v", n.Name, n.Matrix)
		}
	}
}

func TestDocumentSkipsHiddenGroups(t *testing.T) {
	a := defaultScene(t)
	a.SetVisible(scene.GroupWall, false)
	doc, err := Document(a.Snapshot())
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range doc.Meshes {
		if m.Name == "wall-left" || m.Name == "wall-right" {
			t.Errorf("hidden part %q exported", m.Name)
		}
	}
	if len(doc.Materials) != 1 {
		t.Errorf("materials = %d, want only opaque", len(doc.Materials))
	}
}

func TestEmptyScene(t *testing.T) {
	a := defaultScene(t)
	for _, g := range scene.Groups {
		a.SetVisible(g, false)
	}
	dir := t.TempDir()
	if err := SaveGLB(filepath.Join(dir, "x.glb"), a.Snapshot()); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("SaveGLB err = %v, want ErrEmptyScene", err)
	}
	if err := SaveSTL(filepath.Join(dir, "x.stl"), a.Snapshot()); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("SaveSTL err = %v, want ErrEmptyScene", err)
	}
	if err := SaveGLB(filepath.Join(dir, "y.glb"), scene.NewDefault().Snapshot()); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("unbuilt scene err = %v, want ErrEmptyScene", err)
	}
}

func TestGLBRoundTrip(t *testing.T) {
	for _, open := range []bool{false, true} {
		name := "closed"
		if open {
			name = "open"
		}
		t.Run(name, func(t *testing.T) {
			a := defaultScene(t)
			if open {
				a.ToggleOpen()
			}
			s := a.Snapshot()
			path := filepath.Join(t.TempDir(), "door.glb")
			if err := SaveGLB(path, s); err != nil {
				t.Fatal(err)
			}

			got, err := ReadGLB(path)
			if err != nil {
				t.Fatal(err)
			}
			parts := s.VisibleParts()
			if len(got) != len(parts) {
				t.Fatalf("read %d meshes, want %d", len(got), len(parts))
			}
			for i, p := range parts {
				b := got[i]
				if b.Name != p.Name {
					t.Errorf("mesh %d name = %q, want %q", i, b.Name, p.Name)
				}
				if b.TriangleCount() != p.Mesh.TriangleCount() {
					t.Errorf("%s triangles = %d, want %d", p.Name, b.TriangleCount(), p.Mesh.TriangleCount())
				}
				wantLo, wantHi := worldMesh(p).Bounds()
				lo, hi := b.Bounds()
				// float32 positions in millimeters
				if !lo.ApproxEqual(wantLo, 0.01) || !hi.ApproxEqual(wantHi, 0.01) {
					t.Errorf("%s bounds = %v..%v, want %v..%v", p.Name, lo, hi, wantLo, wantHi)
				}
				want := p.Mesh.TriangleColor(0)
				c := b.Colors[0].ToRGBA()
				if c != want {
					t.Errorf("%s color = %v, want %v", p.Name, c, want)
				}
			}
		})
	}
}

func TestReadGLBMissing(t *testing.T) {
	if _, err := ReadGLB(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestQuatMatrix(t *testing.T) {
	h := math.Sqrt(0.5)
	m := quatMatrix([4]float64{0, 0, h, h})
	if !m.ApproxEqual(math3d.RotateZ(math.Pi/2), 1e-12) {
		t.Errorf("quarter turn about Z = %v", m)
	}
	if !quatMatrix([4]float64{0, 0, 0, 1}).IsIdentity() {
		t.Error("identity quaternion is not the identity matrix")
	}
}

func TestSaveSTL(t *testing.T) {
	a := defaultScene(t)
	s := a.Snapshot()

	tests := []struct {
		name   string
		groups []scene.Group
		want   int
	}{
		{"visible", nil, totalTriangles(s.VisibleParts())},
		{"frame only", []scene.Group{scene.GroupFrame}, 12 * 12},
		{"wall and frame", []scene.Group{scene.GroupWall, scene.GroupFrame}, 2*24 + 12*12},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "door.stl")
			if err := SaveSTL(path, s, tc.groups...); err != nil {
				t.Fatal(err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if want := int64(84 + 50*tc.want); info.Size() != want {
				t.Errorf("size = %d, want %d for %d triangles", info.Size(), want, tc.want)
			}
		})
	}
}

func TestTrianglesFollowOpen(t *testing.T) {
	a := defaultScene(t)
	a.ToggleOpen()
	maxY := math.Inf(-1)
	for _, tri := range Triangles(a.Snapshot(), scene.GroupBlade) {
		for _, v := range tri {
			maxY = math.Max(maxY, v.Y)
		}
	}
	if maxY < 500 {
		t.Errorf("open leaf reaches y %v, want it swung forward", maxY)
	}
}

func totalTriangles(parts []scene.Part) int {
	n := 0
	for _, p := range parts {
		n += p.Mesh.TriangleCount()
	}
	return n
}
