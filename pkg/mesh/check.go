package mesh

import (
	"fmt"
	"math"

	"github.com/taigrr/doorgeom/pkg/math3d"
)

// Builders panic on degenerate input. Sizes come from the scene assembler,
// which clamps them, so a bad value here is a bug upstream.

func mustExtent(what string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		panic(fmt.Sprintf("mesh: invalid %s %v", what, v))
	}
}

func mustPoint(what string, p math3d.Vec3) {
	if !p.IsFinite() {
		panic(fmt.Sprintf("mesh: invalid %s %v", what, p))
	}
}

func mustSegments(what string, n, least int) {
	if n < least {
		panic(fmt.Sprintf("mesh: %s must be at least %d, got %d", what, least, n))
	}
}
