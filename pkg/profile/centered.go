package profile

import "github.com/taigrr/doorgeom/pkg/mesh"

// centeredParts builds a body of width sidePost-stopWidth over the full
// frame depth, a bridging strip along its inner edge and a stop block
// running from the back of the frame to the leaf's back face.
func centeredParts(f Frame, leaf float64) []mesh.Box {
	kb, kh, kd := f.Width, f.Height, f.Depth
	body := f.SidePostWidth - stopWidth
	back := -kd / 2
	inner := body + bridgeWidth // body plus bridge, measured from the frame edge
	stop := kd - leaf

	return []mesh.Box{
		box(-kb/2, back, 0, body, kd, kh),
		box(kb/2-body, back, 0, body, kd, kh),
		box(-kb/2+body, back, kh-body, kb-2*body, kd, body),

		box(-kb/2+body, back, 0, bridgeWidth, kd, kh-inner),
		box(kb/2-inner, back, 0, bridgeWidth, kd, kh-inner),
		box(-kb/2+body, back, kh-inner, kb-2*body, kd, bridgeWidth),

		box(-kb/2+inner, back, 0, stopWidth, stop, kh-inner-stopWidth),
		box(kb/2-inner-stopWidth, back, 0, stopWidth, stop, kh-inner-stopWidth),
		box(-kb/2+inner, back, kh-inner-stopWidth, kb-2*inner, stop, stopWidth),
	}
}
