// Package dimension derives manufacturing dimensions from a nominal door
// opening.
//
// Lookups that have no catalog data report ok=false. Callers omit the
// geometry that depends on such a value rather than failing.
package dimension

// Engine maps nominal sizes to frame, leaf and threshold dimensions.
// All values are millimeters.
type Engine interface {
	FrameWidth(frameType string, nominalWidth int) int
	FrameHeight(frameType string, nominalHeight int) int
	// LeafWidth is the combined width of all leaves.
	LeafWidth(frameType string, frameWidth, leaves int, bladeType string) (int, bool)
	LeafHeight(frameType string, frameHeight, leaves int, bladeType string, airGap int) (int, bool)
	ThresholdLength(frameType string, frameWidth, leaves int) (int, bool)
	SidePostWidth(frameType string) int
	IsLeafFlush(frameType string) bool
}
