package profile

import "github.com/taigrr/doorgeom/pkg/mesh"

// trimSet is a left post, right post and header of one trim ring at depth y.
func trimSet(f Frame, y float64) []mesh.Box {
	kb, kh := f.Width, f.Height
	return []mesh.Box{
		box(-kb/2, y, 0, trimWidth, trimThickness, kh),
		box(kb/2-trimWidth, y, 0, trimWidth, trimThickness, kh),
		box(-kb/2+trimWidth, y, kh-trimWidth, kb-2*trimWidth, trimThickness, trimWidth),
	}
}

// bridgeSet runs along the inner edge of the trims from y over depth d.
func bridgeSet(f Frame, y, d float64) []mesh.Box {
	kb, kh := f.Width, f.Height
	return []mesh.Box{
		box(-kb/2+trimWidth-bridgeWidth, y, 0, bridgeWidth, d, kh-trimWidth+bridgeWidth),
		box(kb/2-trimWidth, y, 0, bridgeWidth, d, kh-trimWidth+bridgeWidth),
		box(-kb/2+trimWidth, y, kh-trimWidth, kb-2*trimWidth, d, bridgeWidth),
	}
}

// stopSet is the rebate the leaf closes against; its front face meets
// the leaf's back face.
func stopSet(f Frame, leaf float64) []mesh.Box {
	kb, kh := f.Width, f.Height
	front := f.WallThickness/2 + trimThickness - leaf
	y := front - stopDepth
	return []mesh.Box{
		box(-kb/2+trimWidth, y, 0, stopWidth, stopDepth, kh-trimWidth),
		box(kb/2-trimWidth-stopWidth, y, 0, stopWidth, stopDepth, kh-trimWidth),
		box(-kb/2+trimWidth, y, kh-trimWidth-stopWidth, kb-2*trimWidth, stopDepth, stopWidth),
	}
}

func doubleTrimParts(f Frame, leaf float64) []mesh.Box {
	w := f.WallThickness
	parts := make([]mesh.Box, 0, 12)
	parts = append(parts, trimSet(f, w/2)...)
	parts = append(parts, trimSet(f, -w/2-trimThickness)...)
	parts = append(parts, bridgeSet(f, -w/2, w)...)
	parts = append(parts, stopSet(f, leaf)...)
	return parts
}

// The single-trim leg reaches from the front wall face back over the
// frame depth minus the trim.
func singleTrimParts(f Frame, leaf float64) []mesh.Box {
	leg := f.Depth - trimThickness
	parts := make([]mesh.Box, 0, 9)
	parts = append(parts, trimSet(f, f.WallThickness/2)...)
	parts = append(parts, bridgeSet(f, f.WallThickness/2-leg, leg)...)
	parts = append(parts, stopSet(f, leaf)...)
	return parts
}
