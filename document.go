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

import "strings"

// Document is the in-memory representation of a whole DXF file: the
// parsed HEADER variables, the CLASSES registration table, every TABLES
// symbol table, every BLOCKS definition, every ENTITIES entity, every
// OBJECTS object, and the notification Log accumulated while getting
// there (spec.md §4.9). It plays the role the teacher's Reader-produced
// in-memory pdf.Document plays for a PDF file, except nothing here is
// lazy: resolve.go's pass runs to completion before Open returns.
type Document struct {
	Version Version
	Header  *Header
	Classes *ClassTable

	VPorts       Table[*VPort]
	LineTypes    Table[*LineType]
	Layers       Table[*Layer]
	Styles       Table[*TextStyle]
	Views        Table[*View]
	UCSs         Table[*UCS]
	AppIDs       Table[*AppID]
	DimStyles    Table[*DimStyle]
	BlockRecords Table[*BlockRecord]

	Blocks   []*Block
	Entities []Entity
	Objects  []Object

	// ExtraSections preserves any section this library does not parse
	// semantically (ACDSDATA, THUMBNAILIMAGE, or an unrecognized name),
	// keyed by section name. Write emits the ACDSDATA and THUMBNAILIMAGE
	// entries back unchanged; entries under other names are not written.
	ExtraSections map[string][]Record

	Log Log
}

// NewDocument returns an empty Document ready to be populated (by a
// Reader, or directly by a caller building a file from scratch).
func NewDocument() *Document {
	return &Document{
		Header:        NewHeader(),
		Classes:       NewClassTable(),
		ExtraSections: make(map[string][]Record),
	}
}

// eachTable calls fn once per entry of every symbol table, the helper
// resolve.go's index-building pass uses so it does not need to know the
// concrete Table[T] instantiations' field names.
func (d *Document) eachTable(fn func(h Handle, e TableEntry)) {
	for _, e := range d.VPorts.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.LineTypes.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.Layers.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.Styles.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.Views.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.UCSs.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.AppIDs.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.DimStyles.Entries {
		fn(e.Common().Handle, e)
	}
	for _, e := range d.BlockRecords.Entries {
		fn(e.Common().Handle, e)
	}
}

// BlockByName looks up a block definition by name, case-insensitively,
// the lookup Insert entities need to find the block they reference.
func (d *Document) BlockByName(name string) (*Block, bool) {
	for _, b := range d.Blocks {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return nil, false
}

// RootDictionary returns the named-object dictionary (AutoCAD calls this
// the "named objects dictionary": the DICTIONARY whose owner is the
// database itself rather than another dictionary). It is found by
// scanning Objects for the first owner-less Dictionary; no header
// variable is consulted.
func (d *Document) RootDictionary() (*Dictionary, bool) {
	for _, o := range d.Objects {
		if dict, ok := o.(*Dictionary); ok && dict.OwnerHandle == NoHandle {
			return dict, true
		}
	}
	return nil, false
}
