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

// Dimension is a DIMENSION entity: the common fields shared by all seven
// ACI dimension subtypes (linear/aligned/angular/radial/diametric/
// ordinate/arc-length), distinguished at runtime by DimensionType rather
// than separate Go types, since every subtype shares the same handle/
// styling/measurement-text layout and differs only in which of the extra
// definition points apply.
type Dimension struct {
	EntityCommon
	DimensionType int16 // low 3 bits of code 70, per spec.md §4.1/DXF reference
	Block         string
	DefinitionPoint Point3D
	TextMidpoint    Point3D
	InsertionPoint  Point3D
	Text            string
	Style           string
	Measurement     float64
	Rotation        float64
	ExtLine1, ExtLine2 Point3D
	ArcPoint        Point3D
}

func (e *Dimension) Common() *EntityCommon { return &e.EntityCommon }
func (e *Dimension) DXFType() string       { return "DIMENSION" }

func decodeDimension(c EntityCommon, rest []Record) *Dimension {
	e := &Dimension{EntityCommon: c, Style: "STANDARD"}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.Block = string(s)
		case r.Code == 1:
			s, _ := asStr(r.Value)
			e.Text = string(s)
		case r.Code == 3:
			s, _ := asStr(r.Value)
			e.Style = string(s)
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			e.Measurement = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.DimensionType = int16(n) & 7
		}
	}
	e.DefinitionPoint = acc.get(0)
	e.TextMidpoint = acc.get(1)
	e.InsertionPoint = acc.get(2)
	e.ExtLine1 = acc.get(3)
	e.ExtLine2 = acc.get(4)
	e.ArcPoint = acc.get(5)
	return e
}

// Leader is a LEADER entity: a sequence of vertices ending at an
// annotation, predating MultiLeader.
type Leader struct {
	EntityCommon
	Vertices  []Point3D
	Style     string
	ArrowHead bool
	PathType  int16
	AnnotationType int16
}

func (e *Leader) Common() *EntityCommon { return &e.EntityCommon }
func (e *Leader) DXFType() string       { return "LEADER" }

func decodeLeader(c EntityCommon, rest []Record) *Leader {
	e := &Leader{EntityCommon: c, Style: "STANDARD"}
	verts := &vertexAccumulator{}
	for _, r := range rest {
		switch {
		case r.Code == 10 || r.Code == 20 || r.Code == 30:
			f, _ := asFloat64(r.Value)
			verts.feed(r.Code, float64(f))
		case r.Code == 3:
			s, _ := asStr(r.Value)
			e.Style = string(s)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			e.ArrowHead = n != 0
		case r.Code == 72:
			n, _ := asInt16(r.Value)
			e.PathType = int16(n)
		case r.Code == 73:
			n, _ := asInt16(r.Value)
			e.AnnotationType = int16(n)
		}
	}
	e.Vertices = verts.verts
	return e
}

// MultiLeader is a MULTILEADER entity: the modern multi-leader annotation
// object, whose full context block (leader lines, landing, content) is
// preserved as opaque records here, matching the spec's narrowed-fidelity
// treatment of dimension-like composite entities (Non-goals, §4.5).
type MultiLeader struct {
	EntityCommon
	Style       string
	TextContent string
	Records     []Record
}

func (e *MultiLeader) Common() *EntityCommon { return &e.EntityCommon }
func (e *MultiLeader) DXFType() string       { return "MULTILEADER" }

func decodeMultiLeader(c EntityCommon, rest []Record) *MultiLeader {
	e := &MultiLeader{EntityCommon: c, Records: rest}
	for _, r := range rest {
		switch r.Code {
		case 340:
			if s, ok := asStr(r.Value); ok {
				e.Style = string(s)
			}
		case 304:
			if s, ok := asStr(r.Value); ok {
				e.TextContent += string(s)
			}
		}
	}
	return e
}

// MLine is an MLINE entity: a multi-parallel-line entity following a named
// MLINESTYLE, whose vertex/element data is preserved as opaque records
// (same narrowed-fidelity treatment as MultiLeader).
type MLine struct {
	EntityCommon
	StyleName string
	ScaleFactor float64
	Justification int16
	Vertices  []Point3D
	Records   []Record
}

func (e *MLine) Common() *EntityCommon { return &e.EntityCommon }
func (e *MLine) DXFType() string       { return "MLINE" }

func decodeMLine(c EntityCommon, rest []Record) *MLine {
	e := &MLine{EntityCommon: c, StyleName: "STANDARD", Records: rest}
	verts := &vertexAccumulator{}
	for _, r := range rest {
		switch {
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.StyleName = string(s)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.ScaleFactor = float64(f)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.Justification = int16(n)
		case r.Code == 11 || r.Code == 21 || r.Code == 31:
			f, _ := asFloat64(r.Value)
			verts.feed(uint16(int(r.Code)-1), float64(f))
		}
	}
	e.Vertices = verts.verts
	return e
}

// HatchBoundaryPath is one loop of a Hatch's boundary, stored as its raw
// edge records since interpreting arc/ellipse/spline boundary edges in
// full is out of the spec's scope.
type HatchBoundaryPath struct {
	Records []Record
}

// Hatch is a HATCH entity: a filled or patterned region defined by one or
// more boundary paths.
type Hatch struct {
	EntityCommon
	Pattern    string
	Solid      bool
	Associative bool
	Elevation  Point3D
	Extrusion  Point3D
	PatternScale float64
	PatternAngle float64
	Boundaries []HatchBoundaryPath
}

func (e *Hatch) Common() *EntityCommon { return &e.EntityCommon }
func (e *Hatch) DXFType() string       { return "HATCH" }

func decodeHatch(c EntityCommon, rest []Record) *Hatch {
	e := &Hatch{EntityCommon: c, PatternScale: 1}
	acc := newPointAccumulator()
	var cur *HatchBoundaryPath
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.Pattern = string(s)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.Solid = n != 0
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			e.Associative = n != 0
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.PatternScale = float64(f)
		case r.Code == 52:
			f, _ := asFloat64(r.Value)
			e.PatternAngle = float64(f)
		case r.Code == 92:
			// start of a new boundary path
			e.Boundaries = append(e.Boundaries, HatchBoundaryPath{})
			cur = &e.Boundaries[len(e.Boundaries)-1]
			cur.Records = append(cur.Records, r)
		default:
			if cur != nil {
				cur.Records = append(cur.Records, r)
			}
		}
	}
	e.Elevation = acc.get(0)
	e.Extrusion = acc.get(21)
	return e
}
