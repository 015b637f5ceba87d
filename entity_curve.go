// github.com/go-dxf/dxf - support for reading and writing DXF files
// Copyright (C) 2026  The go-dxf authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dxf

// Point is a POINT entity (group code 10/20/30 position, 50 angle).
type Point struct {
	EntityCommon
	Position    Point3D
	Angle       float64 // X-axis direction for PDMODE display, code 50
}

func (e *Point) Common() *EntityCommon { return &e.EntityCommon }
func (e *Point) DXFType() string       { return "POINT" }

func decodePoint(c EntityCommon, rest []Record) *Point {
	e := &Point{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		if isCoordinateCode(r.Code) {
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
			continue
		}
		if r.Code == 50 {
			f, _ := asFloat64(r.Value)
			e.Angle = float64(f)
		}
	}
	e.Position = acc.get(0)
	return e
}

// Line is a LINE entity, a straight segment between two points (codes
// 10/20/30 and 11/21/31).
type Line struct {
	EntityCommon
	Start, End Point3D
	Extrusion  Point3D
}

func (e *Line) Common() *EntityCommon { return &e.EntityCommon }
func (e *Line) DXFType() string       { return "LINE" }

func decodeLine(c EntityCommon, rest []Record) *Line {
	e := &Line{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		if isCoordinateCode(r.Code) {
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		}
	}
	e.Start = acc.get(0)
	e.End = acc.get(1)
	e.Extrusion = acc.get(21)
	return e
}

// Circle is a CIRCLE entity: center (10/20/30), radius (40).
type Circle struct {
	EntityCommon
	Center    Point3D
	Radius    float64
	Extrusion Point3D
}

func (e *Circle) Common() *EntityCommon { return &e.EntityCommon }
func (e *Circle) DXFType() string       { return "CIRCLE" }

func decodeCircle(c EntityCommon, rest []Record) *Circle {
	e := &Circle{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Radius = float64(f)
		}
	}
	e.Center = acc.get(0)
	e.Extrusion = acc.get(21)
	return e
}

// Arc is an ARC entity: a Circle plus a start/end angle range in degrees
// (codes 50/51).
type Arc struct {
	Circle
	StartAngle, EndAngle float64
}

func (e *Arc) Common() *EntityCommon { return &e.EntityCommon }
func (e *Arc) DXFType() string       { return "ARC" }

func decodeArc(c EntityCommon, rest []Record) *Arc {
	var other []Record
	e := &Arc{}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Radius = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.StartAngle = float64(f)
		case r.Code == 51:
			f, _ := asFloat64(r.Value)
			e.EndAngle = float64(f)
		default:
			other = append(other, r)
		}
	}
	e.EntityCommon = c
	e.Center = acc.get(0)
	e.Extrusion = acc.get(21)
	return e
}

// Ellipse is an ELLIPSE entity: center, endpoint of the major axis relative
// to the center, the minor/major axis ratio, and start/end parameter.
type Ellipse struct {
	EntityCommon
	Center          Point3D
	MajorAxisEnd    Point3D
	Extrusion       Point3D
	Ratio           float64
	StartParam      float64
	EndParam        float64
}

func (e *Ellipse) Common() *EntityCommon { return &e.EntityCommon }
func (e *Ellipse) DXFType() string       { return "ELLIPSE" }

func decodeEllipse(c EntityCommon, rest []Record) *Ellipse {
	e := &Ellipse{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Ratio = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.StartParam = float64(f)
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			e.EndParam = float64(f)
		}
	}
	e.Center = acc.get(0)
	e.MajorAxisEnd = acc.get(1)
	e.Extrusion = acc.get(21)
	return e
}

// Ray is a RAY entity: an infinite line starting at a point and extending
// in one direction only.
type Ray struct {
	EntityCommon
	Start, Direction Point3D
}

func (e *Ray) Common() *EntityCommon { return &e.EntityCommon }
func (e *Ray) DXFType() string       { return "RAY" }

func decodeRay(c EntityCommon, rest []Record) *Ray {
	e := &Ray{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		if isCoordinateCode(r.Code) {
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		}
	}
	e.Start = acc.get(0)
	e.Direction = acc.get(1)
	return e
}

// XLine is an XLINE entity: an infinite line extending in both directions,
// otherwise identical in layout to Ray.
type XLine struct {
	EntityCommon
	Start, Direction Point3D
}

func (e *XLine) Common() *EntityCommon { return &e.EntityCommon }
func (e *XLine) DXFType() string       { return "XLINE" }

func decodeXLine(c EntityCommon, rest []Record) *XLine {
	r := decodeRay(c, rest)
	return &XLine{EntityCommon: r.EntityCommon, Start: r.Start, Direction: r.Direction}
}

// Helix is a HELIX entity: a spline-family 3D spiral parameterized by its
// axis, radii and turn count (AutoCAD 2007+).
type Helix struct {
	EntityCommon
	AxisBase, AxisTop Point3D
	AxisVector        Point3D
	Radius            float64
	Turns             float64
	TurnHeight        float64
	Handedness        bool // true = clockwise/right-handed, code 290
}

func (e *Helix) Common() *EntityCommon { return &e.EntityCommon }
func (e *Helix) DXFType() string       { return "HELIX" }

func decodeHelix(c EntityCommon, rest []Record) *Helix {
	e := &Helix{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Radius = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.Turns = float64(f)
		case r.Code == 43:
			f, _ := asFloat64(r.Value)
			e.TurnHeight = float64(f)
		case r.Code == 290:
			b, _ := asBool(r.Value)
			e.Handedness = bool(b)
		}
	}
	e.AxisBase = acc.get(0)
	e.AxisTop = acc.get(1)
	e.AxisVector = acc.get(2)
	return e
}
