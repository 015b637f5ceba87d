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

// Solid is a SOLID entity: a filled triangle or quadrilateral given by up
// to four 2D corner points at a shared elevation.
type Solid struct {
	EntityCommon
	Corners   [4]Point3D
	Elevation float64
	Extrusion Point3D
}

func (e *Solid) Common() *EntityCommon { return &e.EntityCommon }
func (e *Solid) DXFType() string       { return "SOLID" }

func decodeSolid(c EntityCommon, rest []Record) *Solid {
	e := &Solid{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		if isCoordinateCode(r.Code) {
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		}
	}
	for i := 0; i < 4; i++ {
		e.Corners[i] = acc.get(i)
	}
	e.Elevation = e.Corners[0].Z
	e.Extrusion = acc.get(21)
	return e
}

// Face3D is a 3DFACE entity: a triangle or quadrilateral with independent
// per-vertex Z, plus per-edge visibility flags (code 70).
type Face3D struct {
	EntityCommon
	Corners       [4]Point3D
	EdgeVisibility int16
}

func (e *Face3D) Common() *EntityCommon { return &e.EntityCommon }
func (e *Face3D) DXFType() string       { return "3DFACE" }

func decodeFace3D(c EntityCommon, rest []Record) *Face3D {
	e := &Face3D{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.EdgeVisibility = int16(n)
		}
	}
	for i := 0; i < 4; i++ {
		e.Corners[i] = acc.get(i)
	}
	return e
}

// AcisEntity is the shared layout of the three ACIS-encoded solid-modeling
// entities (3DSOLID/REGION/BODY): a SAT/SAB geometry stream split across
// repeated 1/3 text chunks, which this library stores as opaque binary
// rather than interpreting the ACIS format itself (spec.md Non-goals).
type AcisEntity struct {
	EntityCommon
	Version int16
	Data    []byte
}

func decodeAcisEntity(c EntityCommon, rest []Record) AcisEntity {
	e := AcisEntity{EntityCommon: c}
	for _, r := range rest {
		switch r.Code {
		case 70:
			n, _ := asInt16(r.Value)
			e.Version = int16(n)
		case 1, 3:
			s, _ := asStr(r.Value)
			e.Data = append(e.Data, []byte(s)...)
			e.Data = append(e.Data, '\n')
		}
	}
	return e
}

// Solid3D is a 3DSOLID entity.
type Solid3D struct{ AcisEntity }

func (e *Solid3D) Common() *EntityCommon { return &e.EntityCommon }
func (e *Solid3D) DXFType() string       { return "3DSOLID" }

// Region is a REGION entity.
type Region struct{ AcisEntity }

func (e *Region) Common() *EntityCommon { return &e.EntityCommon }
func (e *Region) DXFType() string       { return "REGION" }

// Body is a BODY entity.
type Body struct{ AcisEntity }

func (e *Body) Common() *EntityCommon { return &e.EntityCommon }
func (e *Body) DXFType() string       { return "BODY" }

// Wipeout is a WIPEOUT entity: an image-mask polygon that hides whatever
// lies beneath it, sharing RasterImage's image-reference layout.
type Wipeout struct {
	RasterImage
}

func (e *Wipeout) Common() *EntityCommon { return &e.EntityCommon }
func (e *Wipeout) DXFType() string       { return "WIPEOUT" }
