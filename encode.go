package dxf

import "bytes"

// point3DRecords returns the three records encoding a point at the given
// base code (e.g. base=10 yields codes 10/20/30), the write-side mirror
// of pointAccumulator.feed.
func point3DRecords(base uint16, p Point3D) []Record {
	return []Record{
		{Code: base, Value: Float64(p.X)},
		{Code: base + 10, Value: Float64(p.Y)},
		{Code: base + 20, Value: Float64(p.Z)},
	}
}

// extrusionRecords returns the code 210/220/230 records for a non-default
// extrusion vector, or nil if p is the zero value (AutoCAD's own default,
// which every decoder in this package already falls back to when the
// codes are absent).
func extrusionRecords(p Point3D) []Record {
	if p == (Point3D{}) {
		return nil
	}
	return point3DRecords(210, p)
}

// entityPreambleRecords re-encodes the fields decodeEntityPreamble reads,
// in the same group-code order AutoCAD itself writes them.
func entityPreambleRecords(c *EntityCommon) []Record {
	var out []Record
	if c.Handle != NoHandle {
		out = append(out, Record{Code: 5, Value: HandleValue(c.Handle)})
	}
	if c.OwnerHandle != NoHandle {
		out = append(out, Record{Code: 330, Value: HandleValue(c.OwnerHandle)})
	}
	out = append(out, Record{Code: 8, Value: Str(c.Layer)})
	if c.LineType != "" {
		out = append(out, Record{Code: 6, Value: Str(c.LineType)})
	}
	if c.Color.ACI != 0 {
		out = append(out, Record{Code: 62, Value: Int16(c.Color.ACI)})
	}
	if c.Color.HasTrueColor {
		out = append(out, Record{Code: 420, Value: Int32(c.Color.TrueColor)})
	}
	if c.LineWeight != 0 {
		out = append(out, Record{Code: 370, Value: Int16(c.LineWeight)})
	}
	if c.LineTypeScale != 0 && c.LineTypeScale != 1 {
		out = append(out, Record{Code: 48, Value: Float64(c.LineTypeScale)})
	}
	if !c.Visible {
		out = append(out, Record{Code: 60, Value: Int16(1)})
	}
	if c.PaperSpace {
		out = append(out, Record{Code: 67, Value: Int16(1)})
	}
	if c.Thickness != 0 {
		out = append(out, Record{Code: 38, Value: Float64(c.Thickness)})
	}
	if c.Transparency >= 0 {
		out = append(out, Record{Code: 440, Value: Int32(c.Transparency)})
	}
	return out
}

// entityToRecords re-encodes one Entity into its full (0,type) ... record
// group. UnknownEntity and the opaque-fidelity variants (MultiLeader,
// MLine, TableEntity) round-trip their preserved Records verbatim;
// everything else is rebuilt field by field, the reverse of codec.go's
// decodeEntityByName.
func entityToRecords(e Entity) []Record {
	c := e.Common()
	out := []Record{{Code: 0, Value: Str(e.DXFType())}}
	out = append(out, entityPreambleRecords(c)...)

	switch v := e.(type) {
	case *Point:
		out = append(out, point3DRecords(10, v.Position)...)
		out = append(out, Record{Code: 50, Value: Float64(v.Angle)})
	case *Line:
		out = append(out, point3DRecords(10, v.Start)...)
		out = append(out, point3DRecords(11, v.End)...)
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Circle:
		out = append(out, point3DRecords(10, v.Center)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Radius)})
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Arc:
		out = append(out, point3DRecords(10, v.Center)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Radius)})
		out = append(out, Record{Code: 50, Value: Float64(v.StartAngle)})
		out = append(out, Record{Code: 51, Value: Float64(v.EndAngle)})
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Ellipse:
		out = append(out, point3DRecords(10, v.Center)...)
		out = append(out, point3DRecords(11, v.MajorAxisEnd)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Ratio)})
		out = append(out, Record{Code: 41, Value: Float64(v.StartParam)})
		out = append(out, Record{Code: 42, Value: Float64(v.EndParam)})
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Ray:
		out = append(out, point3DRecords(10, v.Start)...)
		out = append(out, point3DRecords(11, v.Direction)...)
	case *XLine:
		out = append(out, point3DRecords(10, v.Start)...)
		out = append(out, point3DRecords(11, v.Direction)...)
	case *Helix:
		out = append(out, point3DRecords(10, v.AxisBase)...)
		out = append(out, point3DRecords(11, v.AxisTop)...)
		out = append(out, point3DRecords(12, v.AxisVector)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Radius)})
		out = append(out, Record{Code: 41, Value: Float64(v.Turns)})
		out = append(out, Record{Code: 43, Value: Float64(v.TurnHeight)})
		out = append(out, Record{Code: 290, Value: Bool(v.Handedness)})
	case *LwPolyline:
		flags := Int16(0)
		if v.Closed {
			flags = 1
		}
		out = append(out, Record{Code: 90, Value: Int32(len(v.Vertices))})
		out = append(out, Record{Code: 70, Value: flags})
		if v.ConstantWidth != 0 {
			out = append(out, Record{Code: 40, Value: Float64(v.ConstantWidth)})
		}
		for i, p := range v.Vertices {
			out = append(out, Record{Code: 10, Value: Float64(p.X)}, Record{Code: 20, Value: Float64(p.Y)})
			if i < len(v.Bulges) && v.Bulges[i] != 0 {
				out = append(out, Record{Code: 42, Value: Float64(v.Bulges[i])})
			}
		}
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Spline:
		flags := Int16(0)
		if v.Closed {
			flags |= 1
		}
		if v.Periodic {
			flags |= 2
		}
		if v.Rational {
			flags |= 4
		}
		if v.Planar {
			flags |= 8
		}
		out = append(out, Record{Code: 70, Value: flags}, Record{Code: 71, Value: Int16(v.Degree)})
		for _, k := range v.Knots {
			out = append(out, Record{Code: 40, Value: Float64(k)})
		}
		for _, p := range v.ControlPoints {
			out = append(out, point3DRecords(11, p)...)
		}
		for _, p := range v.FitPoints {
			out = append(out, point3DRecords(13, p)...)
		}
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Text:
		out = append(out, entityTextRecords(v)...)
	case *MText:
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Height)}, Record{Code: 1, Value: Str(v.Value)})
	case *AttributeDefinition:
		out = append(out, entityTextRecords(&v.Text)...)
		out = append(out, Record{Code: 2, Value: Str(v.Tag)}, Record{Code: 3, Value: Str(v.Prompt)}, Record{Code: 70, Value: Int16(v.Flags)})
	case *AttributeEntity:
		out = append(out, entityTextRecords(&v.Text)...)
		out = append(out, Record{Code: 2, Value: Str(v.Tag)}, Record{Code: 70, Value: Int16(v.Flags)})
	case *Solid:
		for _, p := range v.Corners {
			out = append(out, point3DRecords(10, p)...)
		}
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Face3D:
		for _, p := range v.Corners {
			out = append(out, point3DRecords(10, p)...)
		}
		out = append(out, Record{Code: 70, Value: Int16(v.EdgeVisibility)})
	case *Insert:
		out = append(out, Record{Code: 2, Value: Str(v.BlockName)})
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, Record{Code: 41, Value: Float64(v.Scale.X)}, Record{Code: 42, Value: Float64(v.Scale.Y)}, Record{Code: 43, Value: Float64(v.Scale.Z)})
		out = append(out, Record{Code: 50, Value: Float64(v.Rotation)})
	case *Dimension:
		out = append(out, point3DRecords(10, v.DefinitionPoint)...)
		out = append(out, point3DRecords(11, v.TextMidpoint)...)
		out = append(out, Record{Code: 1, Value: Str(v.Text)}, Record{Code: 70, Value: Int16(v.DimensionType)})
	case *Leader:
		for _, p := range v.Vertices {
			out = append(out, point3DRecords(10, p)...)
		}
	case *Hatch:
		out = append(out, Record{Code: 2, Value: Str(v.Pattern)})
		b := Int16(0)
		if v.Solid {
			b = 1
		}
		out = append(out, Record{Code: 70, Value: b})
	case *Polyline2D:
		flags := Int16(0)
		if v.Closed {
			flags = 1
		}
		out = append(out, Record{Code: 70, Value: flags})
		out = append(out, point3DRecords(10, Point3D{Z: v.Elevation})...)
		out = append(out, Record{Code: 40, Value: Float64(v.ConstantWidth)})
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Polyline3D:
		flags := Int16(8)
		if v.Closed {
			flags |= 1
		}
		out = append(out, Record{Code: 70, Value: flags})
	case *PolyfaceMesh:
		out = append(out, Record{Code: 70, Value: Int16(64)})
		out = append(out, Record{Code: 71, Value: Int16(v.VertexCount)})
		out = append(out, Record{Code: 72, Value: Int16(v.FaceCount)})
	case *Mesh:
		out = append(out, Record{Code: 91, Value: Int32(v.SubdivisionLevel)})
		for _, p := range v.Vertices {
			out = append(out,
				Record{Code: 10, Value: Float64(p.X)},
				Record{Code: 20, Value: Float64(p.Y)},
				Record{Code: 30, Value: Float64(p.Z)})
		}
		for _, idx := range v.FaceIndices {
			out = append(out, Record{Code: 90, Value: Int32(idx)})
		}
	case *Shape:
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Size)})
		out = append(out, Record{Code: 2, Value: Str(v.Name)})
		out = append(out, Record{Code: 50, Value: Float64(v.Rotation)})
		out = append(out, Record{Code: 41, Value: Float64(v.XScale)})
		out = append(out, Record{Code: 51, Value: Float64(v.ObliqueAngle)})
	case *Tolerance:
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, point3DRecords(11, v.Direction)...)
		out = append(out, Record{Code: 3, Value: Str(v.Dimstyle)})
		out = append(out, Record{Code: 1, Value: Str(v.Text)})
	case *Viewport:
		out = append(out, point3DRecords(10, v.Center)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Width)})
		out = append(out, Record{Code: 41, Value: Float64(v.Height)})
		out = append(out, point3DRecords(12, v.ViewCenter)...)
		out = append(out, point3DRecords(17, v.ViewTarget)...)
		out = append(out, Record{Code: 45, Value: Float64(v.ViewHeight)})
		out = append(out, Record{Code: 69, Value: Int16(v.ID)})
		out = append(out, Record{Code: 90, Value: Int32(v.Status)})
	case *Light:
		out = append(out, point3DRecords(10, v.Position)...)
		out = append(out, point3DRecords(11, v.Target)...)
		out = append(out, Record{Code: 1, Value: Str(v.Name)})
		out = append(out, Record{Code: 70, Value: Int16(v.LightType)})
		out = append(out, Record{Code: 40, Value: Float64(v.Intensity)})
		out = append(out, Record{Code: 290, Value: Bool(v.On)})
	case *OleFrame:
		out = append(out, point3DRecords(10, v.UpperLeft)...)
		out = append(out, point3DRecords(11, v.LowerRight)...)
		if len(v.Data) > 0 {
			out = append(out, Record{Code: 310, Value: Binary(v.Data)})
		}
	case *Underlay:
		if v.DefinitionHandle != NoHandle {
			out = append(out, Record{Code: 340, Value: HandleValue(v.DefinitionHandle)})
		}
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, Record{Code: 41, Value: Float64(v.Scale.X)})
		out = append(out, Record{Code: 50, Value: Float64(v.Rotation)})
		out = append(out, Record{Code: 281, Value: Int16(v.ContrastFade)})
		out = append(out, extrusionRecords(v.Extrusion)...)
	case *Solid3D:
		out = append(out, acisEntityRecords(v.AcisEntity)...)
	case *Region:
		out = append(out, acisEntityRecords(v.AcisEntity)...)
	case *Body:
		out = append(out, acisEntityRecords(v.AcisEntity)...)
	case *TableEntity, *RasterImage, *Wipeout, *MultiLeader, *MLine, *UnknownEntity:
		return opaqueEntityRecords(e)
	default:
		return opaqueEntityRecords(e)
	}
	return out
}

// acisEntityRecords re-encodes the shared 3DSOLID/REGION/BODY layout: the
// ACIS version plus the SAT/SAB text stream decodeAcisEntity rejoins from
// repeated 1/3 chunks with a '\n' appended after each one. Splitting back
// on '\n' here (after trimming the one trailing separator decode added)
// reproduces the same chunk boundaries on the next decode.
func acisEntityRecords(e AcisEntity) []Record {
	out := []Record{{Code: 70, Value: Int16(e.Version)}}
	if len(e.Data) == 0 {
		return out
	}
	data := e.Data
	if data[len(data)-1] == '\n' {
		data = data[:len(data)-1]
	}
	for _, chunk := range bytes.Split(data, []byte("\n")) {
		out = append(out, Record{Code: 1, Value: Str(string(chunk))})
	}
	return out
}

// polylineVertexRecords re-encodes one PolylineVertex as a standalone
// VERTEX record group, the reverse of decodeVertex.
func polylineVertexRecords(pv PolylineVertex) []Record {
	out := []Record{{Code: 0, Value: Str("VERTEX")}}
	if pv.Handle != NoHandle {
		out = append(out, Record{Code: 5, Value: HandleValue(pv.Handle)})
	}
	out = append(out, point3DRecords(10, pv.Position)...)
	if pv.Bulge != 0 {
		out = append(out, Record{Code: 42, Value: Float64(pv.Bulge)})
	}
	if pv.Indices[0] != 0 {
		out = append(out, Record{Code: 71, Value: Int16(pv.Indices[0])})
	}
	if pv.Indices[1] != 0 {
		out = append(out, Record{Code: 72, Value: Int16(pv.Indices[1])})
	}
	if pv.Indices[2] != 0 {
		out = append(out, Record{Code: 73, Value: Int16(pv.Indices[2])})
	}
	if pv.Indices[3] != 0 {
		out = append(out, Record{Code: 74, Value: Int16(pv.Indices[3])})
	}
	return out
}

// polylineVertices returns the Vertices slice shared by all three POLYLINE
// flavors, for entitiesRecords to re-emit as trailing VERTEX groups.
func polylineVertices(e Entity) ([]PolylineVertex, bool) {
	switch v := e.(type) {
	case *Polyline2D:
		return v.Vertices, true
	case *Polyline3D:
		return v.Vertices, true
	case *PolyfaceMesh:
		return v.Vertices, true
	default:
		return nil, false
	}
}

func entityTextRecords(t *Text) []Record {
	out := point3DRecords(10, t.Insertion)
	out = append(out, Record{Code: 40, Value: Float64(t.Height)})
	out = append(out, Record{Code: 1, Value: Str(t.Value)})
	out = append(out, Record{Code: 7, Value: Str(t.Style)})
	out = append(out, Record{Code: 50, Value: Float64(t.Rotation)})
	return out
}

// opaqueEntityRecords re-emits the verbatim Records an entity preserved
// for round-tripping rather than full field modeling.
func opaqueEntityRecords(e Entity) []Record {
	c := e.Common()
	out := []Record{{Code: 0, Value: Str(e.DXFType())}}
	out = append(out, entityPreambleRecords(c)...)
	switch v := e.(type) {
	case *TableEntity:
		out = append(out, v.Records...)
	case *RasterImage:
		out = append(out, point3DRecords(10, v.Insertion)...)
		out = append(out, point3DRecords(11, v.UVector)...)
		out = append(out, point3DRecords(12, v.VVector)...)
		if v.ImageDefHandle != NoHandle {
			out = append(out, Record{Code: 340, Value: HandleValue(v.ImageDefHandle)})
		}
	case *Wipeout:
		out = append(out, point3DRecords(10, v.Insertion)...)
	case *MultiLeader:
		out = append(out, v.Records...)
	case *MLine:
		out = append(out, v.Records...)
	case *UnknownEntity:
		out = append(out, v.Records...)
	}
	return out
}

// tableEntryToRecords re-encodes a TableEntry.
func tableEntryToRecords(e TableEntry) []Record {
	c := e.Common()
	out := []Record{{Code: 0, Value: Str(e.DXFType())}}
	if c.Handle != NoHandle {
		out = append(out, Record{Code: 5, Value: HandleValue(c.Handle)})
	}
	if c.OwnerHandle != NoHandle {
		out = append(out, Record{Code: 330, Value: HandleValue(c.OwnerHandle)})
	}
	out = append(out, Record{Code: 2, Value: Str(c.Name)}, Record{Code: 70, Value: Int16(c.Flags)})
	switch v := e.(type) {
	case *Layer:
		out = append(out, Record{Code: 62, Value: Int16(v.Color.ACI)}, Record{Code: 6, Value: Str(v.LineType)})
	case *LineType:
		out = append(out, Record{Code: 3, Value: Str(v.Description)})
	case *TextStyle:
		out = append(out, Record{Code: 3, Value: Str(v.FontFile)}, Record{Code: 40, Value: Float64(v.Height)}, Record{Code: 41, Value: Float64(v.WidthFactor)})
	case *VPort:
		out = append(out, point3DRecords(10, v.Center)...)
		out = append(out, Record{Code: 40, Value: Float64(v.Height)}, Record{Code: 41, Value: Float64(v.Width)})
	}
	return out
}

// objectToRecords re-encodes an Object.
func objectToRecords(o Object) []Record {
	c := o.Common()
	out := []Record{{Code: 0, Value: Str(o.DXFType())}}
	if c.Handle != NoHandle {
		out = append(out, Record{Code: 5, Value: HandleValue(c.Handle)})
	}
	if c.OwnerHandle != NoHandle {
		out = append(out, Record{Code: 330, Value: HandleValue(c.OwnerHandle)})
	}
	switch v := o.(type) {
	case *Dictionary:
		for i, name := range v.Names {
			out = append(out, Record{Code: 3, Value: Str(name)}, Record{Code: 340, Value: HandleValue(v.Handles[i])})
		}
	case *XRecord:
		out = append(out, Record{Code: 280, Value: Int16(v.CloningFlags)})
		out = append(out, v.Data...)
	case *Layout:
		out = append(out, Record{Code: 100, Value: Str("AcDbLayout")})
		out = append(out, Record{Code: 1, Value: Str(v.Name)}, Record{Code: 71, Value: Int16(v.TabOrder)})
		if v.BlockHandle != NoHandle {
			out = append(out, Record{Code: 330, Value: HandleValue(v.BlockHandle)})
		}
	case *DictionaryVar:
		out = append(out, Record{Code: 28, Value: Int16(v.Schema)}, Record{Code: 1, Value: Str(v.Value)})
	case *ImageDef:
		out = append(out, Record{Code: 1, Value: Str(v.FileName)})
	case *GenericObject:
		out = append(out, v.Records...)
	case *UnknownObject:
		out = append(out, v.Records...)
	}
	return out
}
