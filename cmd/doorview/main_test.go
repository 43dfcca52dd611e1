package main

import (
	"errors"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/settings"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"800x600", 800, 600, false},
		{"64X48", 64, 48, false},
		{"800", 0, 0, true},
		{"0x10", 0, 0, true},
		{"10x-1", 0, 0, true},
		{"axb", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestBuildSceneDefaults(t *testing.T) {
	asm, err := buildScene(options{quality: "medium"}, discard())
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	if got := asm.Settings().Name; got != settings.Medium.Name {
		t.Errorf("settings = %q, want %q", got, settings.Medium.Name)
	}
	if asm.IsOpen() {
		t.Error("door should start closed")
	}
	if len(asm.Snapshot().Parts) == 0 {
		t.Error("no parts built")
	}
}

func TestBuildSceneFromFile(t *testing.T) {
	cfg := door.Default()
	cfg.Width = 1100
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "door.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	asm, err := buildScene(options{config: path, quality: "low", open: true}, discard())
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}
	if asm.Config().Width != 1100 {
		t.Errorf("width = %d, want 1100", asm.Config().Width)
	}
	if !asm.IsOpen() {
		t.Error("-open should open the door")
	}
}

func TestBuildSceneErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("leaves: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts options
	}{
		{"missing config", options{config: filepath.Join(dir, "nope.yaml"), quality: "high"}},
		{"invalid config", options{config: bad, quality: "high"}},
		{"unknown quality", options{quality: "ultra"}},
		{"missing settings", options{settings: filepath.Join(dir, "nope.yaml")}},
		{"missing catalog", options{catalog: filepath.Join(dir, "nope.yaml"), quality: "high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := buildScene(tt.opts, discard()); err == nil {
				t.Error("expected error")
			}
		})
	}

	_, err := buildScene(options{quality: "ultra"}, discard())
	if !errors.Is(err, settings.ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestWriteOutputs(t *testing.T) {
	asm, err := buildScene(options{quality: "low"}, discard())
	if err != nil {
		t.Fatalf("buildScene: %v", err)
	}

	dir := t.TempDir()
	opts := options{
		glb:  filepath.Join(dir, "door.glb"),
		stl:  filepath.Join(dir, "door.stl"),
		png:  filepath.Join(dir, "door.png"),
		size: "64x48",
	}
	if err := writeOutputs(asm.Snapshot(), asm.Settings(), opts, discard()); err != nil {
		t.Fatalf("writeOutputs: %v", err)
	}

	for _, p := range []string{opts.glb, opts.stl} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}

	f, err := os.Open(opts.png)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("png size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
}

func TestWriteOutputsBadSize(t *testing.T) {
	asm, err := buildScene(options{quality: "low"}, discard())
	if err != nil {
		t.Fatal(err)
	}
	opts := options{png: filepath.Join(t.TempDir(), "door.png"), size: "big"}
	if err := writeOutputs(asm.Snapshot(), asm.Settings(), opts, discard()); err == nil {
		t.Error("expected size error")
	}
}
