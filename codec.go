package dxf

import "strings"

// decodeEntityGroups turns the (0,"TYPE") ... record groups of an ENTITIES
// or BLOCKS body into concrete Entity values, dispatching on the type name
// the way original_source's reader dispatches on DXF type strings inside
// read_entity: decodeEntityByName switches on the upper-cased type name
// and hands each known type to its own small decoder function.
//
// POLYLINE and INSERT own a variable number of trailing VERTEX/ATTRIB
// groups up to the next SEQEND, so this function looks ahead rather than
// decoding group-by-group independently.
func decodeEntityGroups(groups [][]Record, log *Log) []Entity {
	var out []Entity
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		if len(g) == 0 {
			continue
		}
		typeName, _ := asStr(g[0].Value)
		name := strings.ToUpper(string(typeName))
		common, rest := decodeEntityPreamble(g[1:], log)

		switch name {
		case "POLYLINE":
			var vgroups [][]Record
			j := i + 1
			for j < len(groups) {
				tn, _ := asStr(groups[j][0].Value)
				t := strings.ToUpper(string(tn))
				if t == "SEQEND" {
					j++
					break
				}
				if t == "VERTEX" {
					vgroups = append(vgroups, groups[j][1:])
				}
				j++
			}
			out = append(out, decodePolyline(common, rest, vgroups))
			i = j - 1
			continue
		case "INSERT":
			var attribs []*AttributeEntity
			j := i + 1
			for j < len(groups) {
				tn, _ := asStr(groups[j][0].Value)
				t := strings.ToUpper(string(tn))
				if t == "SEQEND" {
					j++
					break
				}
				if t == "ATTRIB" {
					ac, arest := decodeEntityPreamble(groups[j][1:], log)
					attribs = append(attribs, decodeAttributeEntity(ac, arest))
				}
				j++
			}
			out = append(out, decodeInsert(common, rest, attribs))
			i = j - 1
			continue
		}

		e := decodeEntityByName(name, common, rest)
		out = append(out, e)
	}
	return out
}

// decodeEntityByName dispatches every entity type that does not need
// lookahead over following groups.
func decodeEntityByName(name string, c EntityCommon, rest []Record) Entity {
	switch name {
	case "POINT":
		return decodePoint(c, rest)
	case "LINE":
		return decodeLine(c, rest)
	case "CIRCLE":
		return decodeCircle(c, rest)
	case "ARC":
		return decodeArc(c, rest)
	case "ELLIPSE":
		return decodeEllipse(c, rest)
	case "RAY":
		return decodeRay(c, rest)
	case "XLINE":
		return decodeXLine(c, rest)
	case "HELIX":
		return decodeHelix(c, rest)
	case "LWPOLYLINE":
		return decodeLwPolyline(c, rest)
	case "MESH":
		return decodeMesh(c, rest)
	case "SPLINE":
		return decodeSpline(c, rest)
	case "TEXT":
		return decodeText(c, rest)
	case "MTEXT":
		return decodeMText(c, rest)
	case "ATTDEF":
		return decodeAttributeDefinition(c, rest)
	case "ATTRIB":
		return decodeAttributeEntity(c, rest)
	case "SHAPE":
		return decodeShape(c, rest)
	case "TOLERANCE":
		return decodeTolerance(c, rest)
	case "SOLID":
		return decodeSolid(c, rest)
	case "3DFACE":
		return decodeFace3D(c, rest)
	case "3DSOLID":
		return &Solid3D{decodeAcisEntity(c, rest)}
	case "REGION":
		return &Region{decodeAcisEntity(c, rest)}
	case "BODY":
		return &Body{decodeAcisEntity(c, rest)}
	case "WIPEOUT":
		return &Wipeout{*decodeRasterImage(c, rest)}
	case "DIMENSION":
		return decodeDimension(c, rest)
	case "LEADER":
		return decodeLeader(c, rest)
	case "MULTILEADER":
		return decodeMultiLeader(c, rest)
	case "MLINE":
		return decodeMLine(c, rest)
	case "HATCH":
		return decodeHatch(c, rest)
	case "ACAD_TABLE":
		return decodeTableEntity(c, rest)
	case "IMAGE":
		return decodeRasterImage(c, rest)
	case "PDFUNDERLAY":
		return decodeUnderlay(c, rest, "PDF")
	case "DWFUNDERLAY":
		return decodeUnderlay(c, rest, "DWF")
	case "DGNUNDERLAY":
		return decodeUnderlay(c, rest, "DGN")
	case "VIEWPORT":
		return decodeViewport(c, rest)
	case "LIGHT":
		return decodeLight(c, rest)
	case "OLE2FRAME":
		return decodeOleFrame(c, rest)
	default:
		return &UnknownEntity{EntityCommon: c, TypeName: name, Records: rest}
	}
}
