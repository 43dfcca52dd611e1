package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/doorgeom/pkg/render"
	"github.com/taigrr/doorgeom/pkg/scene"
	"github.com/taigrr/doorgeom/pkg/settings"
)

const (
	orbitStep = 0.08
	zoomStep  = 1.2
)

// keys lists the key names the viewer reacts to, matched in order.
var keys = []string{
	"ctrl+c", "escape", "q",
	"left", "right", "up", "down",
	"+", "=", "-", "_",
	"w", "f", "b", "o", "x", "r",
	"1", "2", "3",
}

// viewer is the interactive preview state. It is driven from a single
// goroutine.
type viewer struct {
	asm   *scene.Assembler
	swing *scene.SwingAnimator

	cam    *render.Camera
	fb     *render.Framebuffer
	raster *render.Rasterizer

	// zoom eases the camera distance toward zoomTarget.
	zoom       harmonica.Spring
	zoomVel    float64
	zoomTarget float64

	wireframe bool
	message   string
}

func newViewer(asm *scene.Assembler, fps, width, height int) *viewer {
	v := &viewer{
		asm:   asm,
		swing: scene.NewSwingAnimator(fps),
		cam:   render.NewCamera(),
		fb:    render.NewFramebuffer(0, 0),
		zoom:  harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
	v.swing.Angle = asm.OpenAngle()
	v.swing.SetOpen(asm.IsOpen())
	v.raster = render.NewRasterizer(v.cam, v.fb)
	v.resize(width, height)
	v.reframe()
	return v
}

// resize fits the framebuffer to a terminal of width x height cells,
// keeping the bottom row for the status line.
func (v *viewer) resize(width, height int) {
	v.fb.Resize(width, max(0, height-1)*2)
	v.raster.Resize()
	if v.fb.Height > 0 {
		v.cam.SetAspectRatio(float64(v.fb.Width) / float64(v.fb.Height))
	}
}

// reframe aims the camera at whatever is visible.
func (v *viewer) reframe() {
	if box, ok := render.SnapshotBounds(v.asm.Snapshot()); ok {
		v.cam.Frame(box.Min, box.Max)
	}
	v.zoomTarget = v.cam.Distance
	v.zoomVel = 0
}

// press handles one key and reports whether the viewer should quit.
func (v *viewer) press(key string) bool {
	v.message = ""
	switch key {
	case "ctrl+c", "escape", "q":
		return true
	case "left":
		v.cam.Orbit(-orbitStep, 0)
	case "right":
		v.cam.Orbit(orbitStep, 0)
	case "up":
		v.cam.Orbit(0, orbitStep)
	case "down":
		v.cam.Orbit(0, -orbitStep)
	case "+", "=":
		v.zoomTarget /= zoomStep
	case "-", "_":
		v.zoomTarget *= zoomStep
	case "w":
		v.asm.ToggleVisibility(scene.GroupWall)
	case "f":
		v.asm.ToggleVisibility(scene.GroupFrame)
	case "b":
		v.asm.ToggleVisibility(scene.GroupBlade)
	case "o":
		v.swing.Toggle()
	case "x":
		v.wireframe = !v.wireframe
	case "r":
		v.reframe()
	case "1", "2", "3":
		preset := map[string]settings.Settings{"1": settings.Low, "2": settings.Medium, "3": settings.High}[key]
		if err := v.asm.SetSettings(preset); err != nil {
			v.message = err.Error()
		}
	}
	return false
}

// handle dispatches a terminal event.
func (v *viewer) handle(ev uv.Event) bool {
	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		v.resize(ev.Width, ev.Height)
	case uv.KeyPressEvent:
		for _, k := range keys {
			if ev.MatchString(k) {
				return v.press(k)
			}
		}
	}
	return false
}

// update advances the swing and zoom animations by one frame.
func (v *viewer) update() {
	if !v.swing.Settled() {
		v.asm.SetOpenAngle(v.swing.Update())
	}
	d, vel := v.zoom.Update(v.cam.Distance, v.zoomVel, v.zoomTarget)
	v.zoomVel = vel
	v.cam.SetDistance(d)
}

// frame renders the scene into the framebuffer.
func (v *viewer) frame() {
	v.fb.Clear(v.asm.Settings().Background.ToRGBA())
	v.raster.ClearDepth()
	v.raster.DrawSnapshot(v.asm.Snapshot(), v.wireframe)
}

// status describes the view for the bottom row.
func (v *viewer) status() string {
	cfg := v.asm.Config()
	var hidden []string
	for _, g := range scene.Groups {
		if !v.asm.Visible(g) {
			hidden = append(hidden, g.String())
		}
	}
	s := fmt.Sprintf(" %s %dx%d %d leaf  open %2.0f°  %s",
		cfg.FrameType, cfg.Width, cfg.Height, cfg.Leaves, v.asm.OpenAngle(), v.asm.Settings().Name)
	if len(hidden) > 0 {
		s += "  hidden: " + strings.Join(hidden, ",")
	}
	if v.wireframe {
		s += "  wireframe"
	}
	if v.message != "" {
		s += "  " + v.message
	}
	return s
}

// Draw implements uv.Drawable: the scene above, the status line in the
// bottom row.
func (v *viewer) Draw(scr uv.Screen, area uv.Rectangle) {
	if area.Max.Y <= area.Min.Y {
		return
	}
	img := area
	img.Max.Y--
	v.fb.Draw(scr, img)

	bar := area
	bar.Min.Y = area.Max.Y - 1
	render.StatusLine{
		Text: v.status(),
		Fg:   render.RGB(230, 230, 230),
		Bg:   render.RGB(20, 20, 24),
	}.Draw(scr, bar)
}
