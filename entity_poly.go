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

// LwPolyline is a LWPOLYLINE entity: a lightweight 2D polyline storing its
// vertices inline (codes 10/20 per vertex, optional per-vertex bulge 42).
type LwPolyline struct {
	EntityCommon
	Vertices  []Point3D
	Bulges    []float64
	Closed    bool // bit 1 of flags (70)
	ConstantWidth float64
	Elevation float64
	Extrusion Point3D
}

func (e *LwPolyline) Common() *EntityCommon { return &e.EntityCommon }
func (e *LwPolyline) DXFType() string       { return "LWPOLYLINE" }

func decodeLwPolyline(c EntityCommon, rest []Record) *LwPolyline {
	e := &LwPolyline{EntityCommon: c}
	verts := &vertexAccumulator{}
	ext := newPointAccumulator()
	for _, r := range rest {
		switch {
		case r.Code == 10 || r.Code == 20:
			f, _ := asFloat64(r.Value)
			verts.feed(r.Code, float64(f))
		case r.Code == 210 || r.Code == 220 || r.Code == 230:
			f, _ := asFloat64(r.Value)
			ext.feed(r.Code, float64(f))
		case r.Code == 38:
			f, _ := asFloat64(r.Value)
			e.Elevation = float64(f)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.ConstantWidth = float64(f)
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			e.Bulges = append(e.Bulges, float64(f))
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.Closed = n&1 != 0
		}
	}
	e.Vertices = verts.verts
	e.Extrusion = ext.get(21)
	return e
}

// PolylineVertex is one vertex of a Polyline2D/Polyline3D/PolyfaceMesh, a
// standalone VERTEX record in the original file.
type PolylineVertex struct {
	Handle   Handle
	Position Point3D
	Bulge    float64
	Indices  [4]int32 // face vertex indices, PolyfaceMesh only
}

// Polyline2D is a POLYLINE entity flagged as a 2D polyline (neither flag 8,
// 3D polyline, nor flag 64, polyface mesh, set): a sequence of VERTEX
// records terminated by SEQEND.
type Polyline2D struct {
	EntityCommon
	Vertices      []PolylineVertex
	Closed        bool
	ConstantWidth float64
	Elevation     float64
	Extrusion     Point3D
}

func (e *Polyline2D) Common() *EntityCommon { return &e.EntityCommon }
func (e *Polyline2D) DXFType() string       { return "POLYLINE" }

// Polyline3D is a POLYLINE entity flagged as a 3D polyline (flag bit 3 set).
type Polyline3D struct {
	EntityCommon
	Vertices []PolylineVertex
	Closed   bool
}

func (e *Polyline3D) Common() *EntityCommon { return &e.EntityCommon }
func (e *Polyline3D) DXFType() string       { return "POLYLINE" }

// PolyfaceMesh is a POLYLINE entity flagged as a polyface mesh (flag bit 6
// set): vertices include both coordinate vertices and face-index pseudo
// vertices (negative indices meaning "no edge visibility").
type PolyfaceMesh struct {
	EntityCommon
	Vertices    []PolylineVertex
	VertexCount int32
	FaceCount   int32
}

func (e *PolyfaceMesh) Common() *EntityCommon { return &e.EntityCommon }
func (e *PolyfaceMesh) DXFType() string       { return "POLYLINE" }

// decodePolyline decodes a POLYLINE header plus its already-collected
// VERTEX sub-records (passed in separately because VERTEX/SEQEND appear as
// their own (0,...) groups in the record stream, spec.md §4.3's "entity
// that owns following records" edge case) into whichever of the three
// flavors the 70 flag bits select.
func decodePolyline(c EntityCommon, rest []Record, vertexGroups [][]Record) Entity {
	var flags int16
	var elevation, width Point3D
	var acc = newPointAccumulator()
	var m, n int32
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 70:
			v, _ := asInt16(r.Value)
			flags = int16(v)
		case r.Code == 71:
			v, _ := asInt16(r.Value)
			m = int32(v)
		case r.Code == 72:
			v, _ := asInt16(r.Value)
			n = int32(v)
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			width.X = float64(f)
		}
	}
	elevation = acc.get(0)
	extrusion := acc.get(21)

	verts := make([]PolylineVertex, 0, len(vertexGroups))
	for _, vg := range vertexGroups {
		verts = append(verts, decodeVertex(vg))
	}

	switch {
	case flags&64 != 0: // polyface mesh
		return &PolyfaceMesh{EntityCommon: c, Vertices: verts, VertexCount: m, FaceCount: n}
	case flags&8 != 0: // 3D polyline
		return &Polyline3D{EntityCommon: c, Vertices: verts, Closed: flags&1 != 0}
	default:
		return &Polyline2D{EntityCommon: c, Vertices: verts, Closed: flags&1 != 0,
			ConstantWidth: width.X, Elevation: elevation.Z, Extrusion: extrusion}
	}
}

func decodeVertex(recs []Record) PolylineVertex {
	var v PolylineVertex
	acc := newPointAccumulator()
	for _, r := range recs {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 5:
			h, _ := asHandle(r.Value)
			v.Handle = h
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			v.Bulge = float64(f)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			v.Indices[0] = int32(n)
		case r.Code == 72:
			n, _ := asInt16(r.Value)
			v.Indices[1] = int32(n)
		case r.Code == 73:
			n, _ := asInt16(r.Value)
			v.Indices[2] = int32(n)
		case r.Code == 74:
			n, _ := asInt16(r.Value)
			v.Indices[3] = int32(n)
		}
	}
	v.Position = acc.get(0)
	return v
}

// Mesh is a MESH entity (subdivision mesh, AutoCAD 2010+): a version, a
// subdivision level and raw vertex/face blocks, stored opaquely here since
// the spec treats higher mesh fidelity as out of scope (Non-goal).
type Mesh struct {
	EntityCommon
	SubdivisionLevel int32
	Vertices         []Point3D
	FaceIndices      []int32
}

func (e *Mesh) Common() *EntityCommon { return &e.EntityCommon }
func (e *Mesh) DXFType() string       { return "MESH" }

func decodeMesh(c EntityCommon, rest []Record) *Mesh {
	e := &Mesh{EntityCommon: c}
	verts := &vertexAccumulator{}
	for _, r := range rest {
		switch {
		case r.Code == 91:
			n, _ := asInt32(r.Value)
			e.SubdivisionLevel = int32(n)
		case r.Code == 10:
			f, _ := asFloat64(r.Value)
			verts.feed(r.Code, float64(f))
		case r.Code == 20 || r.Code == 30:
			f, _ := asFloat64(r.Value)
			verts.feed(r.Code, float64(f))
		case r.Code == 92 || r.Code == 93 || r.Code == 90:
			n, _ := asInt32(r.Value)
			e.FaceIndices = append(e.FaceIndices, int32(n))
		}
	}
	e.Vertices = verts.verts
	return e
}

// Spline is a SPLINE entity: a NURBS curve described by degree, knot
// vector, optional weights and control points, plus optional interpolated
// fit points.
type Spline struct {
	EntityCommon
	Degree        int16
	Closed        bool
	Periodic      bool
	Rational      bool
	Planar        bool
	Knots         []float64
	Weights       []float64
	ControlPoints []Point3D
	FitPoints     []Point3D
	Tolerance     float64
	Extrusion     Point3D
}

func (e *Spline) Common() *EntityCommon { return &e.EntityCommon }
func (e *Spline) DXFType() string       { return "SPLINE" }

func decodeSpline(c EntityCommon, rest []Record) *Spline {
	e := &Spline{EntityCommon: c}
	ext := newPointAccumulator()
	ctl := &vertexAccumulator{}
	fit := &vertexAccumulator{}
	for _, r := range rest {
		switch {
		case r.Code == 210 || r.Code == 220 || r.Code == 230:
			f, _ := asFloat64(r.Value)
			ext.feed(r.Code, float64(f))
		case r.Code == 11 || r.Code == 21 || r.Code == 31:
			f, _ := asFloat64(r.Value)
			ctl.feed(uint16(10+(int(r.Code)-11)), float64(f))
		case r.Code == 13 || r.Code == 23 || r.Code == 33:
			f, _ := asFloat64(r.Value)
			fit.feed(uint16(10+(int(r.Code)-13)), float64(f))
		case r.Code == 40:
			f, _ := asFloat64(r.Value)
			e.Knots = append(e.Knots, float64(f))
		case r.Code == 41:
			f, _ := asFloat64(r.Value)
			e.Weights = append(e.Weights, float64(f))
		case r.Code == 42:
			f, _ := asFloat64(r.Value)
			e.Tolerance = float64(f)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			e.Degree = int16(n)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			e.Closed = n&1 != 0
			e.Periodic = n&2 != 0
			e.Rational = n&4 != 0
			e.Planar = n&8 != 0
		}
	}
	e.ControlPoints = ctl.verts
	e.FitPoints = fit.verts
	e.Extrusion = ext.get(21)
	return e
}
