package dxf

// valueKind classifies the Value implementation a group code's payload
// must decode to. The ranges below are the DXF group-code-to-value-type
// table (spec.md §4.1), the same classification
// original_source/src/io/dxf/group_code_value.rs implements as
// GroupCodeValueType::from_raw_code.
type valueKind int

const (
	kindString valueKind = iota
	kindFloat64
	kindInt16
	kindByte // 8-bit integer, decoded the same as Int16 in this library
	kindInt32
	kindInt64
	kindBool
	kindBinary
	kindHandle
	kindNone
)

// classifyCode returns the value kind a group code implies.
func classifyCode(code uint16) valueKind {
	c := int(code)
	switch {
	case c >= 0 && c <= 9, c >= 100 && c <= 109, c >= 300 && c <= 309, c == 999:
		return kindString
	case c >= 10 && c <= 59, c >= 110 && c <= 149, c >= 210 && c <= 239, c >= 460 && c <= 469:
		return kindFloat64
	case c >= 60 && c <= 79, c >= 170 && c <= 179, c >= 270 && c <= 279, c >= 370 && c <= 389, c >= 400 && c <= 409:
		return kindInt16
	case c >= 280 && c <= 289:
		return kindByte
	case c >= 90 && c <= 99, c >= 420 && c <= 429, c >= 440 && c <= 449, c >= 450 && c <= 459:
		return kindInt32
	case c >= 160 && c <= 169:
		return kindInt64
	case c >= 290 && c <= 299:
		return kindBool
	case c >= 310 && c <= 319:
		return kindBinary
	case c >= 320 && c <= 369, c >= 390 && c <= 399, c >= 480 && c <= 481:
		return kindHandle
	case c >= 410 && c <= 419, c >= 430 && c <= 439, c >= 470 && c <= 479:
		return kindString
	// XData (1000-series) group codes.
	case c == 1004:
		return kindBinary
	case c == 1005:
		return kindHandle
	case c >= 1000 && c <= 1009:
		return kindString
	case c >= 1010 && c <= 1059:
		return kindFloat64
	case c >= 1060 && c <= 1070:
		return kindInt16
	case c == 1071:
		return kindInt32
	default:
		return kindNone
	}
}

// isCoordinateCode reports whether code is one of the X/Y/Z components of a
// 3D point, grouped together by coordinateGroup so the codec layer can
// assemble (x, y, z) triples from consecutive records.
func isCoordinateCode(code uint16) bool {
	c := int(code)
	switch {
	case c >= 10 && c <= 18, c >= 20 && c <= 28, c >= 30 && c <= 38:
		return true
	case c >= 110 && c <= 112, c >= 120 && c <= 122, c >= 130 && c <= 132:
		return true
	case c == 210 || c == 220 || c == 230:
		return true
	case c >= 1010 && c <= 1013, c >= 1020 && c <= 1023, c >= 1030 && c <= 1033:
		return true
	default:
		return false
	}
}

// coordinateAxis returns 0/1/2 for X/Y/Z given one of the codes
// isCoordinateCode accepts.
func coordinateAxis(code uint16) int {
	c := int(code)
	switch {
	case c >= 10 && c <= 18, c >= 110 && c <= 112, c == 210, c >= 1010 && c <= 1013:
		return 0
	case c >= 20 && c <= 28, c >= 120 && c <= 122, c == 220, c >= 1020 && c <= 1023:
		return 1
	default:
		return 2
	}
}

// coordinateGroup returns the point-slot index for a coordinate code, so
// that e.g. codes 10/20/30 (primary point) and 11/21/31 (secondary point)
// are recognized as belonging to different points.
func coordinateGroup(code uint16) int {
	c := int(code)
	switch {
	case c >= 10 && c <= 18:
		return c - 10
	case c >= 20 && c <= 28:
		return c - 20
	case c >= 30 && c <= 38:
		return c - 30
	case c >= 110 && c <= 112:
		return 10 + (c - 110)
	case c >= 120 && c <= 122:
		return 10 + (c - 120)
	case c >= 130 && c <= 132:
		return 10 + (c - 130)
	case c == 210 || c == 220 || c == 230:
		return 21
	case c >= 1010 && c <= 1013:
		return 100 + (c - 1010)
	case c >= 1020 && c <= 1023:
		return 100 + (c - 1020)
	case c >= 1030 && c <= 1033:
		return 100 + (c - 1030)
	default:
		return -1
	}
}

// Point3D is a 3D coordinate assembled by the codec layer from three
// consecutive records sharing a coordinateGroup (spec.md §4.1: points are
// never a Value implementation themselves).
type Point3D struct {
	X, Y, Z float64
}
