package dimension

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/profile"
)

func TestDefaultCatalogFrameTypes(t *testing.T) {
	c := Default()
	tests := []struct {
		frameType string
		kind      profile.Kind
		depth     int
		sidePost  int
		flush     bool
	}{
		{"SD1", profile.DoubleTrim, 77, 80, true},
		{"SD2", profile.SingleTrim, 84, 80, true},
		{"SD3/ID", profile.Centered, 92, 44, false},
	}
	for _, tt := range tests {
		t.Run(tt.frameType, func(t *testing.T) {
			kind, ok := c.Profile(tt.frameType)
			if !ok || kind != tt.kind {
				t.Errorf("Profile() = %v, %v, want %v", kind, ok, tt.kind)
			}
			if d, _ := c.FrameDepth(tt.frameType); d != tt.depth {
				t.Errorf("FrameDepth() = %d, want %d", d, tt.depth)
			}
			if got := c.SidePostWidth(tt.frameType); got != tt.sidePost {
				t.Errorf("SidePostWidth() = %d, want %d", got, tt.sidePost)
			}
			if got := c.IsLeafFlush(tt.frameType); got != tt.flush {
				t.Errorf("IsLeafFlush() = %v, want %v", got, tt.flush)
			}
		})
	}
	if len(c.FrameTypes()) != 3 {
		t.Errorf("FrameTypes() = %v", c.FrameTypes())
	}
}

func TestFrameSize(t *testing.T) {
	c := Default()
	tests := []struct {
		frameType string
		w, h      int
	}{
		{"SD1", 1080, 2140},
		{"SD2", 1100, 2150},
		{"SD3/ID", 990, 2090},
		{"unknown", 1010, 2110},
	}
	for _, tt := range tests {
		if got := c.FrameWidth(tt.frameType, 1010); got != tt.w {
			t.Errorf("FrameWidth(%s) = %d, want %d", tt.frameType, got, tt.w)
		}
		if got := c.FrameHeight(tt.frameType, 2110); got != tt.h {
			t.Errorf("FrameHeight(%s) = %d, want %d", tt.frameType, got, tt.h)
		}
	}
}

func TestLeafSize(t *testing.T) {
	c := Default()
	tests := []struct {
		name      string
		frameType string
		leaves    int
		blade     string
		airGap    int
		w, h      int
		ok        bool
	}{
		{"SD1 single", "SD1", 1, "SDI_ROCA", 22, 952, 2055, true},
		{"SD1 double", "SD1", 2, "SDI_ROCA", 22, 948, 2055, true},
		{"SD1 ignores blade", "SD1", 1, "anything", 22, 952, 2055, true},
		{"SD3 roca", "SD3/ID", 1, "SDI_ROCA", 22, 927, 2036, true},
		{"SD3 snapin", "SD3/ID", 1, "SDI_SNAPIN", 8, 928, 2050, true},
		{"SD3 two leaves", "SD3/ID", 2, "SDI_ROCA", 22, 0, 0, false},
		{"SD3 unknown blade", "SD3/ID", 1, "GLASS", 22, 0, 0, false},
		{"unknown frame", "SD9", 1, "SDI_ROCA", 22, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := c.FrameWidth(tt.frameType, 1010)
			kh := c.FrameHeight(tt.frameType, 2110)
			w, okW := c.LeafWidth(tt.frameType, kb, tt.leaves, tt.blade)
			h, okH := c.LeafHeight(tt.frameType, kh, tt.leaves, tt.blade, tt.airGap)
			if okW != tt.ok || okH != tt.ok {
				t.Fatalf("ok = %v/%v, want %v", okW, okH, tt.ok)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("leaf = %dx%d, want %dx%d", w, h, tt.w, tt.h)
			}
		})
	}
}

func TestLeafTooSmall(t *testing.T) {
	if _, ok := Default().LeafWidth("SD1", 100, 1, ""); ok {
		t.Error("a 100 mm frame cannot hold a leaf")
	}
}

func TestThresholdLength(t *testing.T) {
	c := Default()
	if got, ok := c.ThresholdLength("SD1", 1080, 1); !ok || got != 920 {
		t.Errorf("SD1 = %d, %v, want 920", got, ok)
	}
	if got, ok := c.ThresholdLength("SD3/ID", 990, 1); !ok || got != 934 {
		t.Errorf("SD3/ID = %d, %v, want 934", got, ok)
	}
	if _, ok := c.ThresholdLength("SD3/ID", 990, 2); ok {
		t.Error("SD3/ID has no two-leaf threshold")
	}
}

func TestHingeCount(t *testing.T) {
	c := Default()
	if n, ok := c.HingeCount("SDI", "SDI_ROCA", 1); !ok || n != 2 {
		t.Errorf("HingeCount = %d, %v, want 2", n, ok)
	}
	if n, ok := c.HingeCount("SDI", "SDI_EXCEL", 2); !ok || n != 6 {
		t.Errorf("HingeCount = %d, %v, want 6", n, ok)
	}
	if _, ok := c.HingeCount("BRANN", "SDI_ROCA", 1); ok {
		t.Error("unknown door type should have no catalog count")
	}
}

func TestSupports(t *testing.T) {
	c := Default()
	tests := []struct {
		name   string
		mutate func(*door.Config)
		want   bool
	}{
		{"default", func(*door.Config) {}, true},
		{"two leaves", func(cfg *door.Config) { cfg.Leaves = 2 }, true},
		{"threshold", func(cfg *door.Config) { cfg.ThresholdType = "hc20" }, true},
		{"centered two leaves", func(cfg *door.Config) { cfg.FrameType = "SD3/ID"; cfg.Leaves = 2 }, false},
		{"centered threshold", func(cfg *door.Config) { cfg.FrameType = "SD3/ID"; cfg.ThresholdType = "hcid" }, true},
		{"unknown frame", func(cfg *door.Config) { cfg.FrameType = "XX" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := door.Default()
			tt.mutate(&cfg)
			if got := c.Supports(cfg); got != tt.want {
				t.Errorf("Supports() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	data := []byte(`
frame_types:
  K1:
    profile: single-trim
    depth: 60
    width_offset: 10
    side_post: 50
    leaves:
      1: {width: 40, height: 20}
`)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if kind, _ := c.Profile("K1"); kind != profile.SingleTrim {
		t.Errorf("Profile() = %v", kind)
	}
	if w, ok := c.LeafWidth("K1", 900, 1, ""); !ok || w != 860 {
		t.Errorf("LeafWidth() = %d, %v", w, ok)
	}
}

func TestParseRejects(t *testing.T) {
	tests := map[string]string{
		"empty":        "hinges: {}",
		"bad profile":  "frame_types: {K: {profile: round, depth: 1, side_post: 1}}",
		"no depth":     "frame_types: {K: {profile: centered, side_post: 1}}",
		"no side post": "frame_types: {K: {profile: centered, depth: 10}}",
		"bad yaml":     "frame_types: [",
	}
	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(src)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
