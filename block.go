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

// Block is a block definition from the BLOCKS section: a named, reusable
// group of entities anchored at a base point, headed by a BLOCK record and
// closed by ENDBLK. Every Block is owned by exactly one BlockRecord table
// entry, linked by handle once resolve.go runs (spec.md §4.4/§4.7).
type Block struct {
	Handle       Handle
	BlockRecordHandle Handle
	Name         string
	Flags        int16
	BasePoint    Point3D
	Layer        string
	XRefPath     string
	Entities     []Entity
	EndBlockHandle Handle
}

func decodeBlock(head []Record, entityGroups [][]Record, endRecs []Record, log *Log) *Block {
	b := &Block{}
	acc := newPointAccumulator()
	for _, r := range head {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 5:
			h, _ := asHandle(r.Value)
			b.Handle = h
		case r.Code == 2 || r.Code == 3:
			s, _ := asStr(r.Value)
			b.Name = string(s)
		case r.Code == 8:
			s, _ := asStr(r.Value)
			b.Layer = string(s)
		case r.Code == 70:
			n, _ := asInt16(r.Value)
			b.Flags = int16(n)
		case r.Code == 1:
			s, _ := asStr(r.Value)
			b.XRefPath = string(s)
		case r.Code == 330:
			h, _ := asHandle(r.Value)
			b.BlockRecordHandle = h
		}
	}
	b.BasePoint = acc.get(0)
	b.Entities = decodeEntityGroups(entityGroups, log)
	for _, r := range endRecs {
		if r.Code == 5 {
			h, _ := asHandle(r.Value)
			b.EndBlockHandle = h
		}
	}
	return b
}

// splitBlocks partitions the BLOCKS section's flat record groups (already
// split at code 0 by splitRecordGroups) into one (header, body, endblk)
// triple per block definition.
func splitBlocks(groups [][]Record, log *Log) []*Block {
	var blocks []*Block
	var head []Record
	var body [][]Record
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		name, _ := asStr(g[0].Value)
		switch string(name) {
		case "BLOCK":
			head = g[1:]
			body = nil
		case "ENDBLK":
			blocks = append(blocks, decodeBlock(head, body, g[1:], log))
			head = nil
			body = nil
		default:
			body = append(body, g)
		}
	}
	return blocks
}
