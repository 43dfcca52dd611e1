package door

import "strings"

// airGaps is the leaf floor clearance for each threshold type.
var airGaps = map[string]int{
	ThresholdNone:       22,
	"slepelist":         22,
	"anslag_37":         22,
	"anslag_kjorbar_25": 13,
	"hc20":              8,
	"hcid":              18,
}

// DefaultAirGap is used for unknown threshold types.
const DefaultAirGap = 22

// EffectiveAirGap returns the floor clearance implied by the threshold
// type, or the configured AirGap when the type is ThresholdAirGap.
func (c Config) EffectiveAirGap() int {
	kind := strings.ToLower(c.ThresholdType)
	if kind == ThresholdAirGap {
		return c.AirGap
	}
	if g, ok := airGaps[kind]; ok {
		return g
	}
	return DefaultAirGap
}
