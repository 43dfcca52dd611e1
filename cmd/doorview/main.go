// doorview - parametric door preview and export
// Builds a door scene from a YAML configuration and either shows it in the
// terminal or writes it to GLB, STL and PNG files.
//
// Controls:
//
//	Arrows  - Orbit the camera
//	+/-     - Zoom in/out
//	W/F/B   - Toggle wall, frame and blade visibility
//	O       - Open or close the door
//	X       - Toggle wireframe mode
//	1/2/3   - Low, medium and high quality
//	R       - Reframe the view
//	Q/Esc   - Quit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/doorgeom/pkg/dimension"
	"github.com/taigrr/doorgeom/pkg/door"
	"github.com/taigrr/doorgeom/pkg/export"
	"github.com/taigrr/doorgeom/pkg/render"
	"github.com/taigrr/doorgeom/pkg/scene"
	"github.com/taigrr/doorgeom/pkg/settings"
)

type options struct {
	config    string
	catalog   string
	quality   string
	settings  string
	open      bool
	glb       string
	stl       string
	png       string
	size      string
	wireframe bool
	verbose   bool
	fps       int
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "Door configuration (YAML); defaults to a single-leaf SD1 door")
	flag.StringVar(&opts.catalog, "catalog", "", "Dimension catalog override (YAML)")
	flag.StringVar(&opts.quality, "quality", "high", "Quality preset: low, medium or high")
	flag.StringVar(&opts.settings, "settings", "", "Quality settings file (YAML); overrides -quality")
	flag.BoolVar(&opts.open, "open", false, "Swing the door fully open")
	flag.StringVar(&opts.glb, "glb", "", "Write the visible parts as binary glTF")
	flag.StringVar(&opts.stl, "stl", "", "Write the visible parts as binary STL")
	flag.StringVar(&opts.png, "png", "", "Render the scene to a PNG image")
	flag.StringVar(&opts.size, "size", "800x600", "PNG size as WIDTHxHEIGHT")
	flag.BoolVar(&opts.wireframe, "wireframe", false, "Render the PNG as wireframe")
	flag.BoolVar(&opts.verbose, "v", false, "Log debug output to stderr")
	flag.IntVar(&opts.fps, "fps", 30, "Target FPS of the terminal preview")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "doorview - parametric door preview and export\n\n")
		fmt.Fprintf(os.Stderr, "Usage: doorview [options]\n\n")
		fmt.Fprintf(os.Stderr, "With -glb, -stl or -png the files are written and doorview exits.\n")
		fmt.Fprintf(os.Stderr, "Otherwise the door is shown in the terminal.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows  - Orbit\n")
		fmt.Fprintf(os.Stderr, "  +/-     - Zoom\n")
		fmt.Fprintf(os.Stderr, "  W/F/B   - Toggle wall, frame, blade\n")
		fmt.Fprintf(os.Stderr, "  O       - Open/close\n")
		fmt.Fprintf(os.Stderr, "  X       - Toggle wireframe\n")
		fmt.Fprintf(os.Stderr, "  1/2/3   - Quality low/medium/high\n")
		fmt.Fprintf(os.Stderr, "  R       - Reframe\n")
		fmt.Fprintf(os.Stderr, "  Q/Esc   - Quit\n")
	}
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	scene.SetLogger(logger)

	asm, err := buildScene(opts, logger)
	if err != nil {
		return err
	}

	if opts.glb == "" && opts.stl == "" && opts.png == "" {
		return preview(asm, opts.fps)
	}
	return writeOutputs(asm.Snapshot(), asm.Settings(), opts, logger)
}

// buildScene loads the configuration, catalog and quality settings and
// assembles the door.
func buildScene(opts options, logger *slog.Logger) (*scene.Assembler, error) {
	cfg := door.Default()
	if opts.config != "" {
		var err error
		if cfg, err = door.Load(opts.config); err != nil {
			return nil, err
		}
	}

	cat := dimension.Default()
	if opts.catalog != "" {
		var err error
		if cat, err = dimension.Load(opts.catalog); err != nil {
			return nil, err
		}
	}

	var s settings.Settings
	var err error
	if opts.settings != "" {
		s, err = settings.Load(opts.settings)
	} else {
		s, err = settings.ByName(opts.quality)
	}
	if err != nil {
		return nil, err
	}

	if !cat.Supports(cfg) {
		logger.Warn("configuration not fully supported by the catalog; some parts are omitted",
			"frame_type", cfg.FrameType, "leaves", cfg.Leaves, "blade_type", cfg.BladeType)
	}

	asm, err := scene.New(cat, cat, s)
	if err != nil {
		return nil, err
	}
	if err := asm.SetConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("build door: %w", err)
	}
	if opts.open {
		asm.SetOpenAngle(scene.OpenAngle)
	}
	return asm, nil
}

func writeOutputs(snap scene.Snapshot, s settings.Settings, opts options, logger *slog.Logger) error {
	if opts.glb != "" {
		if err := export.SaveGLB(opts.glb, snap); err != nil {
			return err
		}
		logger.Info("wrote glb", "path", opts.glb, "parts", len(snap.VisibleParts()))
	}
	if opts.stl != "" {
		if err := export.SaveSTL(opts.stl, snap); err != nil {
			return err
		}
		logger.Info("wrote stl", "path", opts.stl)
	}
	if opts.png != "" {
		w, h, err := parseSize(opts.size)
		if err != nil {
			return err
		}
		fb := render.RenderImage(snap, w, h, s.Background.ToRGBA(), opts.wireframe)
		if err := fb.SavePNG(opts.png); err != nil {
			return err
		}
		logger.Info("wrote png", "path", opts.png, "width", w, "height", h)
	}
	return nil
}

// parseSize parses WIDTHxHEIGHT.
func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
