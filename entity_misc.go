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

// TableEntity is an ACAD_TABLE entity: a formatted grid of cells anchored
// like an Insert, whose row/column/cell data is preserved as opaque
// records (the spec narrows table-entity fidelity the same way it narrows
// MultiLeader/MLine, since rendering the cell grid is out of scope).
type TableEntity struct {
	EntityCommon
	BlockName string
	Insertion Point3D
	Records   []Record
}

func (e *TableEntity) Common() *EntityCommon { return &e.EntityCommon }
func (e *TableEntity) DXFType() string       { return "ACAD_TABLE" }

func decodeTableEntity(c EntityCommon, rest []Record) *TableEntity {
	e := &TableEntity{EntityCommon: c, Records: rest}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 2:
			s, _ := asStr(r.Value)
			e.BlockName = string(s)
		}
	}
	e.Insertion = acc.get(0)
	return e
}

// RasterImage is an IMAGE entity: a reference to an ImageDef object placed
// and scaled by a corner point plus U/V axis vectors.
type RasterImage struct {
	EntityCommon
	ImageDefHandle Handle
	Insertion      Point3D
	UVector        Point3D
	VVector        Point3D
	ImageSize      [2]float64
	DisplayFlags   int16
	Clipping       bool
}

func (e *RasterImage) Common() *EntityCommon { return &e.EntityCommon }
func (e *RasterImage) DXFType() string       { return "IMAGE" }

func decodeRasterImage(c EntityCommon, rest []Record) *RasterImage {
	e := &RasterImage{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 13:
			f, _ := asFloat64(r.Value)
			e.ImageSize[0] = float64(f)
		case r.Code == 23:
			f, _ := asFloat64(r.Value)
			e.ImageSize[1] = float64(f)
		case r.Code == 340:
			h, _ := asHandle(r.Value)
			e.ImageDefHandle = h
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.DisplayFlags = int16(n)
		case r.Code == 280:
			n, _ := asInt16(r.Value)
			e.Clipping = n != 0
		}
	}
	e.Insertion = acc.get(0)
	e.UVector = acc.get(1)
	e.VVector = acc.get(2)
	return e
}

// Underlay is the shared layout of PDFUNDERLAY/DWFUNDERLAY/DGNUNDERLAY: a
// reference to an underlay definition object placed like an Insert. The
// DXF type name distinguishes the concrete underlay kind; this library
// keeps one Go type and records which.
type Underlay struct {
	EntityCommon
	Kind          string // "PDF", "DWF" or "DGN"
	DefinitionHandle Handle
	Insertion     Point3D
	Scale         Point3D
	Rotation      float64
	Extrusion     Point3D
	ContrastFade  int16
}

func (e *Underlay) Common() *EntityCommon { return &e.EntityCommon }
func (e *Underlay) DXFType() string       { return e.Kind + "UNDERLAY" }

func decodeUnderlay(c EntityCommon, rest []Record, kind string) *Underlay {
	e := &Underlay{EntityCommon: c, Kind: kind, Scale: Point3D{X: 1, Y: 1, Z: 1}}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 340:
			h, _ := asHandle(r.Value)
			e.DefinitionHandle = h
		case r.Code == 50:
			f, _ := asFloat64(r.Value)
			e.Rotation = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.Scale.X, e.Scale.Y, e.Scale.Z = float64(f), float64(f), float64(f)
		case r.Code == 281:
			n, _ := asInt16(r.Value)
			e.ContrastFade = int16(n)
		}
	}
	e.Insertion = acc.get(0)
	e.Extrusion = acc.get(21)
	return e
}

// Viewport is a VIEWPORT entity: a paper-space window onto model space.
type Viewport struct {
	EntityCommon
	Center     Point3D
	Width, Height float64
	ViewCenter Point3D
	ViewTarget Point3D
	ViewHeight float64
	ID         int16
	Status     int32
}

func (e *Viewport) Common() *EntityCommon { return &e.EntityCommon }
func (e *Viewport) DXFType() string       { return "VIEWPORT" }

func decodeViewport(c EntityCommon, rest []Record) *Viewport {
	e := &Viewport{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Width = float64(f)
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.Height = float64(f)
		case r.Code == 45:
			f, _ := asFloat64(r.Value)
			e.ViewHeight = float64(f)
		case r.Code == 69:
			n, _ := asInt16(r.Value)
			e.ID = int16(n)
		case r.Code == 90:
			n, _ := asInt32(r.Value)
			e.Status = int32(n)
		}
	}
	e.Center = acc.get(0)
	e.ViewCenter = acc.get(2) // codes 12/22
	e.ViewTarget = acc.get(7) // codes 17/27/37 (viewer target point)
	return e
}

// Light is a LIGHT entity: a point/spot/distant light source (AutoCAD
// 2007+ photometric lighting).
type Light struct {
	EntityCommon
	Name       string
	LightType  int16
	Position   Point3D
	Target     Point3D
	Intensity  float64
	On         bool
}

func (e *Light) Common() *EntityCommon { return &e.EntityCommon }
func (e *Light) DXFType() string       { return "LIGHT" }

func decodeLight(c EntityCommon, rest []Record) *Light {
	e := &Light{EntityCommon: c, On: true}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1:
			s, _ := asStr(r.Value)
			e.Name = string(s)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.LightType = int16(n)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Intensity = float64(f)
		case r.Code == 290:
			b, _ := asBool(r.Value)
			e.On = bool(b)
		}
	}
	e.Position = acc.get(0)
	e.Target = acc.get(1)
	return e
}

// OleFrame is an OLE2FRAME entity: an embedded OLE object's binary payload
// framed by an anchor rectangle, stored opaquely as the spec treats OLE
// payload interpretation as out of scope.
type OleFrame struct {
	EntityCommon
	UpperLeft, LowerRight Point3D
	Data []byte
}

func (e *OleFrame) Common() *EntityCommon { return &e.EntityCommon }
func (e *OleFrame) DXFType() string       { return "OLE2FRAME" }

func decodeOleFrame(c EntityCommon, rest []Record) *OleFrame {
	e := &OleFrame{EntityCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 310:
			b, _ := asBinary(r.Value)
			e.Data = append(e.Data, b...)
		}
	}
	e.UpperLeft = acc.get(0)
	e.LowerRight = acc.get(1)
	return e
}
