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

import (
	"fmt"
	"io"
	"os"

	"github.com/go-dxf/dxf/codepage"
)

// Reader reads a single DXF Document from an underlying stream, mirroring
// the teacher's Reader for a PDF file: construction only wraps the
// stream, and all of the actual work happens in Read.
type Reader struct {
	r    io.Reader
	opts ReadOptions
}

// NewReader wraps r for reading, applying any ReaderOptions (strict mode
// is the default, per spec.md §4.8; pass WithFailsafe(true) to opt into
// recovery).
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	o := defaultReadOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &Reader{r: r, opts: o}
}

// Open opens the named file and reads it into a Document, the convenience
// wrapper every io.Reader-based package the teacher's stack uses
// also provides (compare os.Open wrapped by a format-specific reader).
func Open(name string, opts ...ReaderOption) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewReader(f, opts...).Read()
}

// Read parses the whole stream into a Document. In failsafe mode it
// returns a non-nil Document whenever the stream could be scanned at all,
// even when it also returns a non-nil error (a SECTION never closed with
// ENDSEC, or the MaxNotifications cap exceeded); in strict mode a non-nil
// error means the returned Document's field values are not meaningful.
func (rd *Reader) Read() (*Document, error) {
	log := &Log{}
	fc := newFailsafeController(rd.opts, log)

	scanner, err := NewScanner(rd.r)
	if err != nil {
		return nil, err
	}

	sections, err := readSections(scanner, fc)
	if err != nil {
		if rd.opts.Failsafe {
			doc := NewDocument()
			doc.Log = *log
			return doc, err
		}
		return nil, err
	}

	doc := NewDocument()

	var headerSec, classesSec, tablesSec, blocksSec, entitiesSec, objectsSec *section
	for i := range sections {
		sec := &sections[i]
		switch sec.Name {
		case "HEADER":
			headerSec = sec
		case "CLASSES":
			classesSec = sec
		case "TABLES":
			tablesSec = sec
		case "BLOCKS":
			blocksSec = sec
		case "ENTITIES":
			entitiesSec = sec
		case "OBJECTS":
			objectsSec = sec
		case "ACDSDATA", "THUMBNAILIMAGE":
			doc.ExtraSections[sec.Name] = sec.Records
		default:
			log.Warningf(KindUnknownSection, &RecordContext{Section: sec.Name},
				"unrecognized section %q preserved verbatim", sec.Name)
			doc.ExtraSections[sec.Name] = sec.Records
		}
	}

	if headerSec != nil {
		doc.Header = decodeHeader(headerSec.Records)
	}
	ver, _ := doc.Header.ACADVER()
	if ver == 0 {
		ver = AC1015
	}
	doc.Version = ver
	cpName := doc.Header.Codepage()

	if !ver.UsesUTF8() {
		enc, ok := codepage.Lookup(cpName)
		if !ok {
			enc = codepage.Default
			if cpName != "" {
				log.Warningf(KindEncodingFallback, &RecordContext{Section: "HEADER"},
					"unrecognized codepage %q, falling back to windows-1252", cpName)
			}
		}
		decoder := enc.NewDecoder()
		decode := func(s string) string {
			out, err := decoder.String(s)
			if err != nil {
				return s
			}
			return out
		}
		if classesSec != nil {
			*classesSec = recodeSection(*classesSec, decode)
		}
		if tablesSec != nil {
			*tablesSec = recodeSection(*tablesSec, decode)
		}
		if blocksSec != nil {
			*blocksSec = recodeSection(*blocksSec, decode)
		}
		if entitiesSec != nil {
			*entitiesSec = recodeSection(*entitiesSec, decode)
		}
		if objectsSec != nil {
			*objectsSec = recodeSection(*objectsSec, decode)
		}
	}

	if classesSec != nil {
		decodeClassesSection(doc, classesSec.Records)
	}
	doc.Classes.UpdateDefaults()
	if tablesSec != nil {
		if err := decodeTablesSection(doc, tablesSec.Records, fc); err != nil {
			return doc, err
		}
	}
	if blocksSec != nil {
		_, groups := splitRecordGroups(blocksSec.Records, map[uint16]bool{0: true})
		doc.Blocks = splitBlocks(groups, log)
	}
	if entitiesSec != nil {
		_, groups := splitRecordGroups(entitiesSec.Records, map[uint16]bool{0: true})
		doc.Entities = decodeEntityGroups(groups, log)
	}
	if objectsSec != nil {
		_, groups := splitRecordGroups(objectsSec.Records, map[uint16]bool{0: true})
		for _, g := range groups {
			if len(g) == 0 {
				continue
			}
			name, _ := asStr(g[0].Value)
			c, rest := decodeObjectPreamble(g[1:], log)
			doc.Objects = append(doc.Objects, decodeObjectByName(string(name), c, rest))
		}
	}

	res := newResolver(log)
	res.buildIndex(doc)
	res.resolveReferences(doc)
	res.placeEntities(doc)

	doc.Log = *log
	if doc.Log.HasErrors() && !rd.opts.Failsafe {
		return doc, fmt.Errorf("dxf: read failed: %s", doc.Log.Summary(5))
	}
	return doc, nil
}

// decodeClassesSection populates doc.Classes from a CLASSES section's
// (0,"CLASS") record groups.
func decodeClassesSection(doc *Document, recs []Record) {
	_, groups := splitRecordGroups(recs, map[uint16]bool{0: true})
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		name, _ := asStr(g[0].Value)
		if string(name) != "CLASS" {
			continue
		}
		var c Class
		for _, r := range g[1:] {
			switch r.Code {
			case 1:
				s, _ := asStr(r.Value)
				c.DXFName = string(s)
			case 2:
				s, _ := asStr(r.Value)
				c.CppClassName = string(s)
			case 3:
				s, _ := asStr(r.Value)
				c.ApplicationName = string(s)
			case 90:
				n, _ := asInt32(r.Value)
				c.ProxyFlags = ProxyFlags(n)
			case 91:
				n, _ := asInt32(r.Value)
				c.InstanceCount = int32(n)
			case 280:
				n, _ := asInt16(r.Value)
				c.WasZombie = n != 0
			case 281:
				n, _ := asInt16(r.Value)
				c.IsEntity = n != 0
				c.ItemClassID = 499
				if c.IsEntity {
					c.ItemClassID = 498
				}
			}
		}
		doc.Classes.AddOrUpdate(c)
	}
}

// decodeTablesSection populates every Table[T] field of doc from a TABLES
// section's (0,"TABLE")/(2,name)/entries/(0,"ENDTAB") blocks.
func decodeTablesSection(doc *Document, recs []Record, fc *failsafeController) error {
	_, groups := splitRecordGroups(recs, map[uint16]bool{0: true})
	var tableName string
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		name, _ := asStr(g[0].Value)
		switch string(name) {
		case "TABLE":
			for _, r := range g[1:] {
				if r.Code == 2 {
					s, _ := asStr(r.Value)
					tableName = string(s)
				}
			}
		case "ENDTAB":
			tableName = ""
		default:
			entry := decodeTableEntryByName(string(name), g[1:])
			if entry == nil {
				if err := fc.recoverable(Warning, KindUnknownTableEntry,
					&RecordContext{Section: "TABLES", TypeDXF: string(name)},
					fmt.Errorf("unrecognized table entry type %q", name)); err != nil {
					return err
				}
				continue
			}
			addTableEntry(doc, tableName, entry)
		}
	}
	return nil
}

func addTableEntry(doc *Document, tableName string, entry TableEntry) {
	switch v := entry.(type) {
	case *VPort:
		doc.VPorts.Add(v)
	case *LineType:
		doc.LineTypes.Add(v)
	case *Layer:
		doc.Layers.Add(v)
	case *TextStyle:
		doc.Styles.Add(v)
	case *View:
		doc.Views.Add(v)
	case *UCS:
		doc.UCSs.Add(v)
	case *AppID:
		doc.AppIDs.Add(v)
	case *DimStyle:
		doc.DimStyles.Add(v)
	case *BlockRecord:
		doc.BlockRecords.Add(v)
	}
}
