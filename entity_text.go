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

// Text is a TEXT entity: single-line text anchored at an insertion point.
type Text struct {
	EntityCommon
	Insertion    Point3D
	AlignPoint   Point3D
	Height       float64
	Value        string
	Rotation     float64
	XScale       float64
	ObliqueAngle float64
	Style        string
	HJustify     int16
	VJustify     int16
	Extrusion    Point3D
}

func (e *Text) Common() *EntityCommon { return &e.EntityCommon }
func (e *Text) DXFType() string       { return "TEXT" }

func decodeText(c EntityCommon, rest []Record) *Text {
	e := &Text{EntityCommon: c, XScale: 1, Style: "STANDARD"}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1:
			s, _ := asStr(r.Value)
			e.Value = string(s)
		case r.Code == 7:
			s, _ := asStr(r.Value)
			e.Style = string(s)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Height = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.XScale = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 51:
			f, _ := asFloat64(r.Value)
			e.ObliqueAngle = float64(f)
		case r.Code == 72:
			n, _ := asInt16(r.Value)
			e.HJustify = int16(n)
		case r.Code == 73:
			n, _ := asInt16(r.Value)
			e.VJustify = int16(n)
		}
	}
	e.Insertion = acc.get(0)
	e.AlignPoint = acc.get(1)
	e.Extrusion = acc.get(21)
	return e
}

// MText is an MTEXT entity: multi-line, word-wrapped formatted text, whose
// text value may be split across several 1/3 records (the >250 character
// continuation edge case, spec.md §4.3).
type MText struct {
	EntityCommon
	Insertion    Point3D
	Direction    Point3D
	Height       float64
	RefWidth     float64
	Value        string
	AttachPoint  int16
	DrawingDir   int16
	Style        string
	Rotation     float64
	LineSpacing  float64
}

func (e *MText) Common() *EntityCommon { return &e.EntityCommon }
func (e *MText) DXFType() string       { return "MTEXT" }

func decodeMText(c EntityCommon, rest []Record) *MText {
	e := &MText{EntityCommon: c, Style: "STANDARD"}
	acc := newPointAccumulator()
	var sb []string
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1:
			s, _ := asStr(r.Value)
			sb = append(sb, string(s))
		case r.Code == 3:
			// continuation chunk: a run of ≤250-byte pieces preceding the
			// final code-1 record, concatenated in file order.
			s, _ := asStr(r.Value)
			sb = append(sb, string(s))
		case r.Code == 7:
			s, _ := asStr(r.Value)
			e.Style = string(s)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Height = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.RefWidth = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			e.AttachPoint = int16(n)
		case r.Code == 72:
			n, _ := asInt16(r.Value)
			e.DrawingDir = int16(n)
		case r.Code == 44:
			f, _ := asFloat64(r.Value)
			e.LineSpacing = float64(f)
		}
	}
	for _, s := range sb {
		e.Value += s
	}
	e.Insertion = acc.get(0)
	e.Direction = acc.get(1)
	return e
}

// AttributeDefinition is an ATTDEF entity: a tag/prompt/default template for
// an Insert's attached Attribute values, laid out like Text plus the tag
// and prompt fields.
type AttributeDefinition struct {
	Text
	Tag      string
	Prompt   string
	Flags    int16
}

func (e *AttributeDefinition) Common() *EntityCommon { return &e.EntityCommon }
func (e *AttributeDefinition) DXFType() string       { return "ATTDEF" }

func decodeAttributeDefinition(c EntityCommon, rest []Record) *AttributeDefinition {
	var other []Record
	e := &AttributeDefinition{}
	for _, r := range rest {
		switch r.Code {
		case 2:
			s, _ := asStr(r.Value)
			e.Tag = string(s)
		case 3:
			s, _ := asStr(r.Value)
			e.Prompt = string(s)
		case 70:
			n, _ := asInt16(r.Value)
			e.Flags = int16(n)
			other = append(other, r)
		default:
			other = append(other, r)
		}
	}
	t := decodeText(c, other)
	e.Text = *t
	return e
}

// AttributeEntity is an ATTRIB entity: the resolved value of an Insert's
// attribute, same layout as AttributeDefinition minus the prompt.
type AttributeEntity struct {
	Text
	Tag   string
	Flags int16
}

func (e *AttributeEntity) Common() *EntityCommon { return &e.EntityCommon }
func (e *AttributeEntity) DXFType() string       { return "ATTRIB" }

func decodeAttributeEntity(c EntityCommon, rest []Record) *AttributeEntity {
	var other []Record
	e := &AttributeEntity{}
	for _, r := range rest {
		switch r.Code {
		case 2:
			s, _ := asStr(r.Value)
			e.Tag = string(s)
		case 70:
			n, _ := asInt16(r.Value)
			e.Flags = int16(n)
			other = append(other, r)
		default:
			other = append(other, r)
		}
	}
	t := decodeText(c, other)
	e.Text = *t
	return e
}

// Shape is a SHAPE entity: an instance of a compiled .SHX shape glyph.
type Shape struct {
	EntityCommon
	Insertion  Point3D
	Size       float64
	Name       string
	Rotation   float64
	XScale     float64
	ObliqueAngle float64
}

func (e *Shape) Common() *EntityCommon { return &e.EntityCommon }
func (e *Shape) DXFType() string       { return "SHAPE" }

func decodeShape(c EntityCommon, rest []Record) *Shape {
	e := &Shape{EntityCommon: c, XScale: 1}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.Name = string(s)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Size = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.XScale = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 51:
			f, _ := asFloat64(r.Value)
			e.ObliqueAngle = float64(f)
		}
	}
	e.Insertion = acc.get(0)
	return e
}

// Tolerance is a TOLERANCE entity: a geometric dimensioning and tolerancing
// feature control frame, stored as its formatted text string plus anchor.
type Tolerance struct {
	EntityCommon
	Insertion Point3D
	Direction Point3D
	Dimstyle  string
	Text      string
}

func (e *Tolerance) Common() *EntityCommon { return &e.EntityCommon }
func (e *Tolerance) DXFType() string       { return "TOLERANCE" }

func decodeTolerance(c EntityCommon, rest []Record) *Tolerance {
	e := &Tolerance{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1:
			s, _ := asStr(r.Value)
			e.Text = string(s)
		case r.Code == 3:
			s, _ := asStr(r.Value)
			e.Dimstyle = string(s)
		}
	}
	e.Insertion = acc.get(0)
	e.Direction = acc.get(1)
	return e
}
