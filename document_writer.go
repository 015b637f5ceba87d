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

import "io"

// Writer writes a Document back out to an underlying stream.
type Writer struct {
	rw     *RecordWriter
	binary bool
}

// NewWriter wraps w for writing as ASCII DXF. Use NewDocumentBinaryWriter
// for the sentinel-prefixed binary variant.
func NewWriter(w io.Writer) *Writer {
	return &Writer{rw: NewASCIIWriter(w)}
}

// NewDocumentBinaryWriter wraps w for writing as binary DXF (AC1012+
// two-byte group codes, per scanner.go/writer.go's binarySentinel
// handling).
func NewDocumentBinaryWriter(w io.Writer) (*Writer, error) {
	rw, err := NewBinaryWriter(w)
	if err != nil {
		return nil, err
	}
	return &Writer{rw: rw, binary: true}, nil
}

// Create opens (or truncates) the named file and returns a Writer for it.
// The caller is responsible for closing the returned file once Write
// completes.
func Create(name string) (io.Closer, *Writer, error) {
	f, err := createFile(name)
	if err != nil {
		return nil, nil, err
	}
	return f, NewWriter(f), nil
}

// Write serializes doc to the underlying stream section by section, in
// the fixed order a DXF file requires: HEADER, CLASSES, TABLES, BLOCKS,
// ENTITIES, OBJECTS, then the ACDSDATA and THUMBNAILIMAGE sections when
// ExtraSections holds them, closed by the (0,"EOF") marker. ExtraSections
// entries under any other name are not written.
func (w *Writer) Write(doc *Document) error {
	if err := w.writeSection("HEADER", doc.Header.records()); err != nil {
		return err
	}
	if err := w.writeSection("CLASSES", classesRecords(doc.Classes)); err != nil {
		return err
	}
	if err := w.writeSection("TABLES", tablesRecords(doc)); err != nil {
		return err
	}
	if err := w.writeSection("BLOCKS", blocksRecords(doc.Blocks)); err != nil {
		return err
	}
	if err := w.writeSection("ENTITIES", entitiesRecords(doc.Entities)); err != nil {
		return err
	}
	if err := w.writeSection("OBJECTS", objectsRecords(doc.Objects)); err != nil {
		return err
	}
	for _, name := range []string{"ACDSDATA", "THUMBNAILIMAGE"} {
		if recs, ok := doc.ExtraSections[name]; ok {
			if err := w.writeSection(name, recs); err != nil {
				return err
			}
		}
	}
	return w.rw.Put(Record{Code: 0, Value: Str("EOF")})
}

func (w *Writer) writeSection(name string, recs []Record) error {
	if err := w.rw.Put(Record{Code: 0, Value: Str("SECTION")}); err != nil {
		return err
	}
	if err := w.rw.Put(Record{Code: 2, Value: Str(name)}); err != nil {
		return err
	}
	if err := w.rw.PutAll(recs); err != nil {
		return err
	}
	return w.rw.Put(Record{Code: 0, Value: Str("ENDSEC")})
}

func classesRecords(t *ClassTable) []Record {
	var out []Record
	for _, c := range t.All() {
		out = append(out, Record{Code: 0, Value: Str("CLASS")})
		out = append(out,
			Record{Code: 1, Value: Str(c.DXFName)},
			Record{Code: 2, Value: Str(c.CppClassName)},
			Record{Code: 3, Value: Str(c.ApplicationName)},
			Record{Code: 90, Value: Int32(c.ProxyFlags)},
			Record{Code: 91, Value: Int32(c.InstanceCount)},
			Record{Code: 280, Value: Int16(boolToInt(c.WasZombie))},
			Record{Code: 281, Value: Int16(boolToInt(c.IsEntity))},
		)
	}
	return out
}

func boolToInt(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

func tablesRecords(doc *Document) []Record {
	var out []Record
	emit := func(name string, entries []Record) {
		out = append(out, Record{Code: 0, Value: Str("TABLE")}, Record{Code: 2, Value: Str(name)})
		out = append(out, entries...)
		out = append(out, Record{Code: 0, Value: Str("ENDTAB")})
	}
	emit("VPORT", tableEntriesRecords(doc.VPorts.Entries))
	emit("LTYPE", tableEntriesRecords(doc.LineTypes.Entries))
	emit("LAYER", tableEntriesRecords(doc.Layers.Entries))
	emit("STYLE", tableEntriesRecords(doc.Styles.Entries))
	emit("VIEW", tableEntriesRecords(doc.Views.Entries))
	emit("UCS", tableEntriesRecords(doc.UCSs.Entries))
	emit("APPID", tableEntriesRecords(doc.AppIDs.Entries))
	emit("DIMSTYLE", tableEntriesRecords(doc.DimStyles.Entries))
	emit("BLOCK_RECORD", tableEntriesRecords(doc.BlockRecords.Entries))
	return out
}

func tableEntriesRecords[T TableEntry](entries []T) []Record {
	var out []Record
	for _, e := range entries {
		out = append(out, tableEntryToRecords(e)...)
	}
	return out
}

func blocksRecords(blocks []*Block) []Record {
	var out []Record
	for _, b := range blocks {
		head := []Record{{Code: 0, Value: Str("BLOCK")}}
		if b.Handle != NoHandle {
			head = append(head, Record{Code: 5, Value: HandleValue(b.Handle)})
		}
		head = append(head, Record{Code: 8, Value: Str(b.Layer)}, Record{Code: 2, Value: Str(b.Name)},
			Record{Code: 70, Value: Int16(b.Flags)})
		head = append(head, point3DRecords(10, b.BasePoint)...)
		head = append(head, Record{Code: 3, Value: Str(b.Name)})
		out = append(out, head...)
		out = append(out, entitiesRecords(b.Entities)...)
		endRec := []Record{{Code: 0, Value: Str("ENDBLK")}}
		if b.EndBlockHandle != NoHandle {
			endRec = append(endRec, Record{Code: 5, Value: HandleValue(b.EndBlockHandle)})
		}
		out = append(out, endRec...)
	}
	return out
}

func entitiesRecords(entities []Entity) []Record {
	var out []Record
	for _, e := range entities {
		out = append(out, entityToRecords(e)...)
		if ins, ok := e.(*Insert); ok && len(ins.Attributes) > 0 {
			for _, a := range ins.Attributes {
				out = append(out, entityToRecords(a)...)
			}
			out = append(out, Record{Code: 0, Value: Str("SEQEND")})
		}
		if verts, ok := polylineVertices(e); ok {
			for _, v := range verts {
				out = append(out, polylineVertexRecords(v)...)
			}
			out = append(out, Record{Code: 0, Value: Str("SEQEND")})
		}
	}
	return out
}

func objectsRecords(objects []Object) []Record {
	var out []Record
	for _, o := range objects {
		out = append(out, objectToRecords(o)...)
	}
	return out
}
