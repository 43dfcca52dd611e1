package door

import (
	"strings"

	"github.com/taigrr/doorgeom/pkg/mesh"
)

// ralColors maps the RAL codes offered for frames and leaves to linear RGB.
var ralColors = map[string]mesh.Color{
	"RAL 9010": mesh.RGB(0.945, 0.925, 0.882),
	"RAL 9016": mesh.RGB(0.965, 0.965, 0.965),
	"RAL 9001": mesh.RGB(0.914, 0.878, 0.824),
	"RAL 9002": mesh.RGB(0.843, 0.843, 0.824),
	"RAL 9005": mesh.RGB(0.039, 0.039, 0.039),
	"RAL 7016": mesh.RGB(0.220, 0.243, 0.259),
	"RAL 7035": mesh.RGB(0.800, 0.812, 0.800),
	"RAL 7040": mesh.RGB(0.612, 0.627, 0.655),
	"RAL 1013": mesh.RGB(0.918, 0.902, 0.792),
	"RAL 1015": mesh.RGB(0.902, 0.839, 0.710),
}

// FallbackColor is used for unknown RAL codes.
var FallbackColor = mesh.Gray(0.8)

// RAL returns the color of a RAL code such as "RAL 9010" or "9010".
func RAL(code string) (mesh.Color, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !strings.HasPrefix(code, "RAL") {
		code = "RAL " + code
	}
	code = "RAL " + strings.TrimSpace(strings.TrimPrefix(code, "RAL"))
	c, ok := ralColors[code]
	return c, ok
}

// ColorOrDefault returns the RAL color of code or FallbackColor.
func ColorOrDefault(code string) mesh.Color {
	if c, ok := RAL(code); ok {
		return c
	}
	return FallbackColor
}
