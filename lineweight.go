package dxf

import "strconv"

// LineWeight represents the line weight (plot pen width) of a graphical
// entity or table entry, as encoded on group code 370/371 in hundredths of
// a millimeter, with three sentinel values (spec.md §4.1, Open Question
// resolved in DESIGN.md).
type LineWeight int16

// Sentinel line weights.
const (
	LineWeightByLayer LineWeight = -1
	LineWeightByBlock LineWeight = -2
	LineWeightDefault LineWeight = -3
)

// lineWeightSteps lists the fixed set of explicit line weights AutoCAD's
// UI offers, in hundredths of a millimeter.
var lineWeightSteps = []LineWeight{
	0, 5, 9, 13, 15, 18, 20, 25, 30, 35, 40, 50, 53,
	60, 70, 80, 90, 100, 106, 120, 140, 158, 200, 211,
}

// IsSentinel reports whether w is one of the By-Layer/By-Block/Default
// markers rather than an explicit width.
func (w LineWeight) IsSentinel() bool {
	switch w {
	case LineWeightByLayer, LineWeightByBlock, LineWeightDefault:
		return true
	default:
		return false
	}
}

// Nearest snaps an arbitrary hundredths-of-a-millimeter width to the
// closest of the fixed line weight steps AutoCAD actually supports.
func (w LineWeight) Nearest() LineWeight {
	if w.IsSentinel() {
		return w
	}
	best := lineWeightSteps[0]
	bestDiff := absInt16(int16(w) - int16(best))
	for _, step := range lineWeightSteps[1:] {
		diff := absInt16(int16(w) - int16(step))
		if diff < bestDiff {
			best, bestDiff = step, diff
		}
	}
	return best
}

func absInt16(x int16) int16 {
	if x < 0 {
		return -x
	}
	return x
}

func (w LineWeight) String() string {
	switch w {
	case LineWeightByLayer:
		return "ByLayer"
	case LineWeightByBlock:
		return "ByBlock"
	case LineWeightDefault:
		return "Default"
	default:
		return strconv.Itoa(int(w))
	}
}
