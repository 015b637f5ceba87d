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

// Entity is implemented by every graphical object that can appear in the
// ENTITIES section or inside a block definition (spec.md §4.3). There are
// 38 concrete variants (the catalogue resolved in DESIGN.md) plus
// UnknownEntity, the escape variant used for forward compatibility.
type Entity interface {
	// Common returns the shared preamble fields (handle, owner, layer, ...)
	// every entity carries, the same role the teacher's embedded struct
	// tags play for shared dictionary fields.
	Common() *EntityCommon
	// DXFType returns the entity's DXF type name, e.g. "LINE".
	DXFType() string
}

// EntityCommon holds the fields common to every entity, decoded from the
// subclass-independent preamble that precedes an entity's type-specific
// subclass data (spec.md §4.1, group codes 5, 6, 8, 38, 48, 60, 62, 67,
// 330, 370, 420, 440).
type EntityCommon struct {
	Handle       Handle
	OwnerHandle  Handle // soft pointer to owning block record (330)
	Layer        string
	LineType     string // "" means ByLayer
	Color        Color
	LineWeight   LineWeight
	LineTypeScale float64
	Visible      bool
	PaperSpace   bool // true if group code 67 == 1
	Thickness    float64
	Transparency int16 // group code 440, -1 if unset

	ClassName    string // optional subclass marker override for UnknownEntity round-trip
	XData        []AppData
}

func newEntityCommon() EntityCommon {
	return EntityCommon{Visible: true, LineTypeScale: 1, Transparency: -1}
}

// UnknownEntity preserves the verbatim record list of an entity type this
// library does not recognize, so it can be written back out unchanged
// (spec.md §4.5 point 6, the forward-compatibility edge case).
type UnknownEntity struct {
	EntityCommon
	TypeName string
	Records  []Record
}

func (e *UnknownEntity) Common() *EntityCommon { return &e.EntityCommon }
func (e *UnknownEntity) DXFType() string       { return e.TypeName }

// decodeEntityPreamble consumes the subclass-independent preamble fields
// common to every entity from a record group (after the leading (0, type)
// record), returning the remaining, type-specific records.
func decodeEntityPreamble(recs []Record, log *Log) (EntityCommon, []Record) {
	c := newEntityCommon()
	var rest []Record
	for i := 0; i < len(recs); i++ {
		r := recs[i]
		switch r.Code {
		case 5:
			if h, ok := asHandle(r.Value); ok {
				c.Handle = h
			}
		case 6:
			if s, ok := asStr(r.Value); ok {
				c.LineType = string(s)
			}
		case 8:
			if s, ok := asStr(r.Value); ok {
				c.Layer = string(s)
			}
		case 38:
			if f, ok := asFloat64(r.Value); ok {
				c.Thickness = float64(f)
			}
		case 48:
			if f, ok := asFloat64(r.Value); ok {
				c.LineTypeScale = float64(f)
			}
		case 60:
			if n, ok := asInt16(r.Value); ok {
				c.Visible = n == 0
			}
		case 62:
			if n, ok := asInt16(r.Value); ok {
				c.Color.ACI = int16(n)
			}
		case 67:
			if n, ok := asInt16(r.Value); ok {
				c.PaperSpace = n == 1
			}
		case 330:
			if h, ok := asHandle(r.Value); ok {
				c.OwnerHandle = h
			}
		case 370:
			if n, ok := asInt16(r.Value); ok {
				c.LineWeight = LineWeight(n)
			}
		case 420:
			if n, ok := asInt32(r.Value); ok {
				c.Color.HasTrueColor = true
				c.Color.TrueColor = uint32(n)
			}
		case 440:
			if n, ok := asInt32(r.Value); ok {
				c.Transparency = int16(n)
			}
		case 100:
			// subclass marker; entity-specific decoders consume the rest,
			// but record the class name so an UnknownEntity preserves it.
			if s, ok := asStr(r.Value); ok {
				c.ClassName = string(s)
			}
			rest = append(rest, r)
		case 1001:
			// start of XData; hand everything from here to the XData
			// decoder and stop collecting "rest" preamble fields.
			c.XData = DecodeXData(recs[i:], log)
			return c, rest
		default:
			rest = append(rest, r)
		}
	}
	return c, rest
}
