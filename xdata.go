package dxf

import "fmt"

// XDataItem is one item of extended data (XData) attached to an entity or
// object under an application name, spec.md §4.6. It is a closed tagged
// union over the 1000-series group codes, the same pattern Value uses for
// the core group-code range (§4.1).
type XDataItem interface {
	xdataItem()
}

// XDataString is a plain string XData item (code 1000).
type XDataString string

func (XDataString) xdataItem() {}

// XDataControlString is a "{" or "}" nesting marker (code 1002), kept as a
// distinct type from XDataGroup so that unbalanced markers can round-trip
// exactly as found, per the balanced-nesting boundary case in spec.md §4.6.
type XDataControlString string

func (XDataControlString) xdataItem() {}

// XDataLayerName is a layer name reference (code 1003).
type XDataLayerName string

func (XDataLayerName) xdataItem() {}

// XDataBinary is a raw binary chunk (code 1004).
type XDataBinary []byte

func (XDataBinary) xdataItem() {}

// XDataHandle is a database handle reference (code 1005).
type XDataHandle Handle

func (XDataHandle) xdataItem() {}

// XDataPoint, XDataWorldPos, XDataWorldDisp and XDataWorldDir are the four
// 3D-point flavors of XData (codes 1010/1011/1012/1013).
type XDataPoint Point3D

func (XDataPoint) xdataItem() {}

type XDataWorldPos Point3D

func (XDataWorldPos) xdataItem() {}

type XDataWorldDisp Point3D

func (XDataWorldDisp) xdataItem() {}

type XDataWorldDir Point3D

func (XDataWorldDir) xdataItem() {}

// XDataReal is a floating point value (code 1040/1041/1042).
type XDataReal float64

func (XDataReal) xdataItem() {}

// XDataInt16 and XDataInt32 are the integer XData flavors (codes
// 1060-1070, 1071).
type XDataInt16 int16

func (XDataInt16) xdataItem() {}

type XDataInt32 int32

func (XDataInt32) xdataItem() {}

// XDataGroup is a { ... } delimited run of items nested under an
// application name (spec.md §4.6: "balanced (1002,'{')/(1002,'}') nested
// groups").
type XDataGroup struct {
	Items []XDataItem
}

func (*XDataGroup) xdataItem() {}

// AppData is the extended data attached to an entity/object for one
// application (the string following the 1001 group code names it).
type AppData struct {
	Application string
	Items       []XDataItem
}

// DecodeXData splits a run of XData records (code 1001 introducing each
// application's block, followed by its 1000-series items) into per-
// application AppData, resolving the balanced {/} nesting into XDataGroup
// values. Unbalanced markers are reported via notify rather than causing a
// hard failure, matching the failsafe-recovery design (§4.8).
func DecodeXData(recs []Record, log *Log) []AppData {
	var apps []AppData
	var cur *AppData

	// stack of *XDataGroup currently being built; top of stack is where the
	// next item is appended.
	var stack []*XDataGroup

	appendItem := func(it XDataItem) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Items = append(top.Items, it)
		} else if cur != nil {
			cur.Items = append(cur.Items, it)
		}
	}

	for _, r := range recs {
		if r.Code == 1001 {
			name, _ := asStr(r.Value)
			apps = append(apps, AppData{Application: string(name)})
			cur = &apps[len(apps)-1]
			stack = nil
			continue
		}
		if cur == nil {
			continue
		}
		switch r.Code {
		case 1000:
			s, _ := asStr(r.Value)
			appendItem(XDataString(s))
		case 1002:
			s, _ := asStr(r.Value)
			switch string(s) {
			case "{":
				grp := &XDataGroup{}
				appendItem(grp)
				stack = append(stack, grp)
			case "}":
				if len(stack) == 0 {
					if log != nil {
						log.Warningf(KindUnbalancedXData, nil, "unmatched closing XData group marker in application %q", cur.Application)
					}
					continue
				}
				stack = stack[:len(stack)-1]
			default:
				appendItem(XDataControlString(s))
			}
		case 1003:
			s, _ := asStr(r.Value)
			appendItem(XDataLayerName(s))
		case 1004:
			b, _ := asBinary(r.Value)
			appendItem(XDataBinary(b))
		case 1005:
			h, _ := asHandle(r.Value)
			appendItem(XDataHandle(h))
		case 1040, 1041, 1042:
			f, _ := asFloat64(r.Value)
			appendItem(XDataReal(f))
		case 1071:
			n, _ := asInt32(r.Value)
			appendItem(XDataInt32(n))
		default:
			if r.Code >= 1060 && r.Code <= 1070 {
				n, _ := asInt16(r.Value)
				appendItem(XDataInt16(n))
			} else if isCoordinateCode(r.Code) && r.Code >= 1010 && r.Code <= 1033 {
				// the three components of a 1010/1011/1012/1013 point arrive
				// as three consecutive records sharing the same group; fold
				// them onto the most recently appended point item.
				foldXDataPoint(cur, stack, r)
			}
		}
	}

	if len(stack) > 0 && log != nil {
		log.Warningf(KindUnbalancedXData, nil, "unterminated XData group in application %q", cur.Application)
	}

	return apps
}

// foldXDataPoint assembles the three consecutive records of a 1010/1011/
// 1012/1013-family point into a single point item: the X component (axis
// 0) always starts a new point, Y and Z fill in the point most recently
// started for the same base code.
func foldXDataPoint(cur *AppData, stack []*XDataGroup, r Record) {
	var items *[]XDataItem
	if len(stack) > 0 {
		items = &stack[len(stack)-1].Items
	} else {
		items = &cur.Items
	}

	f, _ := asFloat64(r.Value)
	axis := coordinateAxis(r.Code)
	base := r.Code - uint16(axis)*10 // normalizes 1010/1020/1030 etc. back to the 1010 base

	if axis == 0 {
		var p Point3D
		p.X = float64(f)
		switch base {
		case 1010:
			*items = append(*items, XDataPoint(p))
		case 1011:
			*items = append(*items, XDataWorldPos(p))
		case 1012:
			*items = append(*items, XDataWorldDisp(p))
		case 1013:
			*items = append(*items, XDataWorldDir(p))
		}
		return
	}

	if len(*items) == 0 {
		return
	}
	switch last := (*items)[len(*items)-1].(type) {
	case XDataPoint:
		p := Point3D(last)
		setPointAxis(&p, axis, float64(f))
		(*items)[len(*items)-1] = XDataPoint(p)
	case XDataWorldPos:
		p := Point3D(last)
		setPointAxis(&p, axis, float64(f))
		(*items)[len(*items)-1] = XDataWorldPos(p)
	case XDataWorldDisp:
		p := Point3D(last)
		setPointAxis(&p, axis, float64(f))
		(*items)[len(*items)-1] = XDataWorldDisp(p)
	case XDataWorldDir:
		p := Point3D(last)
		setPointAxis(&p, axis, float64(f))
		(*items)[len(*items)-1] = XDataWorldDir(p)
	}
}

func setPointAxis(p *Point3D, axis int, v float64) {
	switch axis {
	case 0:
		p.X = v
	case 1:
		p.Y = v
	case 2:
		p.Z = v
	}
}

func (g *XDataGroup) String() string {
	return fmt.Sprintf("{%d items}", len(g.Items))
}
