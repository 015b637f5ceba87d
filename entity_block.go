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

// Insert is an INSERT entity: a reference to a Block definition placed at
// a point with independent scale/rotation, optionally an array (MInsert)
// and optionally owning a run of Attribute entities that follow it in the
// record stream up to SEQEND.
type Insert struct {
	EntityCommon
	BlockName  string
	Insertion  Point3D
	Scale      Point3D
	Rotation   float64
	ColumnCount, RowCount int16
	ColumnSpacing, RowSpacing float64
	Extrusion  Point3D
	Attributes []*AttributeEntity
}

func (e *Insert) Common() *EntityCommon { return &e.EntityCommon }
func (e *Insert) DXFType() string       { return "INSERT" }

func decodeInsert(c EntityCommon, rest []Record, attribs []*AttributeEntity) *Insert {
	e := &Insert{EntityCommon: c, Scale: Point3D{X: 1, Y: 1, Z: 1}, Attributes: attribs}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.BlockName = string(s)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.Scale.X = float64(f)
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			e.Scale.Y = float64(f)
		case r.Code == 43:
			f, _ := asFloat64(r.Value)
			e.Scale.Z = float64(f)
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.ColumnCount = int16(n)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			e.RowCount = int16(n)
		case r.Code == 44:
			f, _ := asFloat64(r.Value)
			e.ColumnSpacing = float64(f)
		case r.Code == 45:
			f, _ := asFloat64(r.Value)
			e.RowSpacing = float64(f)
		}
	}
	e.Insertion = acc.get(0)
	e.Extrusion = acc.get(21)
	return e
}
