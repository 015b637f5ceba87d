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

// TableEntry is implemented by every symbol-table record found in the
// TABLES section (spec.md §4.4): VPORT, LTYPE, LAYER, STYLE, VIEW, UCS,
// APPID, DIMSTYLE and BLOCK_RECORD.
type TableEntry interface {
	Common() *TableEntryCommon
	DXFType() string
	EntryName() string
}

// TableEntryCommon holds the fields shared by every table entry: handle,
// owner (the table itself), name and standard/referenced flags.
type TableEntryCommon struct {
	Handle      Handle
	OwnerHandle Handle
	Name        string
	Flags       int16 // code 70: bit 16 = externally dependent on a xref
}

// Table is one symbol table: an ordered, name-indexed collection of
// entries of a single TableEntry kind, grounded on
// original_source/src/tables/mod.rs's per-kind table collections but
// flattened to one generic container since Go generics make the
// kind-specific wrapper types in the original unnecessary.
type Table[T TableEntry] struct {
	Handle  Handle
	Entries []T
	index   map[string]int
}

// Add appends an entry, keeping the name index current. Duplicate names
// are neither rejected nor reported, here or by the reader: both entries
// stay in Entries and the index points at the later one.
func (t *Table[T]) Add(e T) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[strings.ToUpper(e.EntryName())] = len(t.Entries)
	t.Entries = append(t.Entries, e)
}

// ByName looks up an entry by name, case-insensitively, per AutoCAD's
// table-lookup semantics.
func (t *Table[T]) ByName(name string) (T, bool) {
	if t.index == nil {
		var zero T
		return zero, false
	}
	idx, ok := t.index[strings.ToUpper(name)]
	if !ok {
		var zero T
		return zero, false
	}
	return t.Entries[idx], true
}

// VPort is a VPORT table entry: a named view configuration.
type VPort struct {
	TableEntryCommon
	Center     Point3D
	Height     float64
	Width      float64
	ViewTarget Point3D
	ViewDirection Point3D
}

func (e *VPort) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *VPort) DXFType() string           { return "VPORT" }
func (e *VPort) EntryName() string         { return e.Name }

// LineType is an LTYPE table entry: a named dash pattern.
type LineType struct {
	TableEntryCommon
	Description string
	PatternLength float64
	Dashes      []float64
}

func (e *LineType) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *LineType) DXFType() string           { return "LTYPE" }
func (e *LineType) EntryName() string         { return e.Name }

// Layer is a LAYER table entry.
type Layer struct {
	TableEntryCommon
	Color      Color
	LineType   string
	LineWeight LineWeight
	PlotStyleHandle Handle
	Plotted    bool
	On         bool
	Frozen     bool
	Locked     bool
}

func (e *Layer) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *Layer) DXFType() string           { return "LAYER" }
func (e *Layer) EntryName() string         { return e.Name }

// TextStyle is a STYLE table entry: text/shape-file font settings.
type TextStyle struct {
	TableEntryCommon
	FontFile    string
	BigFontFile string
	Height      float64
	WidthFactor float64
	ObliqueAngle float64
	Vertical    bool
	Backward    bool
	Upsidedown  bool
	Shapefile   bool
}

func (e *TextStyle) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *TextStyle) DXFType() string           { return "STYLE" }
func (e *TextStyle) EntryName() string         { return e.Name }

// View is a VIEW table entry: a named saved view.
type View struct {
	TableEntryCommon
	Center  Point3D
	Height  float64
	Width   float64
	Direction Point3D
	Target  Point3D
	PaperSpace bool
}

func (e *View) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *View) DXFType() string           { return "VIEW" }
func (e *View) EntryName() string         { return e.Name }

// UCS is a UCS table entry: a named user coordinate system.
type UCS struct {
	TableEntryCommon
	Origin, XAxis, YAxis Point3D
}

func (e *UCS) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *UCS) DXFType() string           { return "UCS" }
func (e *UCS) EntryName() string         { return e.Name }

// AppID is an APPID table entry: a registered application name under
// which XData may be stored.
type AppID struct {
	TableEntryCommon
}

func (e *AppID) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *AppID) DXFType() string           { return "APPID" }
func (e *AppID) EntryName() string         { return e.Name }

// DimStyle is a DIMSTYLE table entry: a named dimension style.
type DimStyle struct {
	TableEntryCommon
	TextStyle   string
	ArrowBlock1 string
	ArrowBlock2 string
	TextHeight  float64
	ArrowSize   float64
	ExtLineExt  float64
	ExtLineOffset float64
}

func (e *DimStyle) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *DimStyle) DXFType() string           { return "DIMSTYLE" }
func (e *DimStyle) EntryName() string         { return e.Name }

// BlockRecord is a BLOCK_RECORD table entry: the handle-bearing owner of a
// Block definition, the indirection AutoCAD introduced so entities can
// reference a block by handle (330) rather than by name.
type BlockRecord struct {
	TableEntryCommon
	LayoutHandle Handle
	InsertUnits  int16
}

func (e *BlockRecord) Common() *TableEntryCommon { return &e.TableEntryCommon }
func (e *BlockRecord) DXFType() string           { return "BLOCK_RECORD" }
func (e *BlockRecord) EntryName() string         { return e.Name }

func decodeTableEntryPreamble(recs []Record) (TableEntryCommon, []Record) {
	c := TableEntryCommon{}
	var rest []Record
	for _, r := range recs {
		switch r.Code {
		case 5:
			if h, ok := asHandle(r.Value); ok {
				c.Handle = h
			}
		case 2:
			if s, ok := asStr(r.Value); ok {
				c.Name = string(s)
			}
		case 70:
			if n, ok := asInt16(r.Value); ok {
				c.Flags = int16(n)
			}
		case 330:
			if h, ok := asHandle(r.Value); ok {
				c.OwnerHandle = h
			}
		default:
			rest = append(rest, r)
		}
	}
	return c, rest
}

// decodeTableEntryByName dispatches the nine table-entry kinds, matching
// the same table-name dispatch original_source/src/tables/mod.rs performs
// in TableCollection::read.
func decodeTableEntryByName(name string, recs []Record) TableEntry {
	c, rest := decodeTableEntryPreamble(recs)
	acc := newPointAccumulator()
	floats := map[uint16]float64{}
	strs := map[uint16]string{}
	bools := map[uint16]bool{}
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1 || r.Code == 3 || r.Code == 4 || r.Code == 6:
			s, _ := asStr(r.Value)
			strs[r.Code] = string(s)
		case r.Code >= 40 && r.Code <= 49, r.Code >= 140 && r.Code <= 149:
			f, _ := asFloat64(r.Value)
			floats[r.Code] = float64(f)
		case r.Code == 62:
			n, _ := asInt16(r.Value)
			floats[62] = float64(n)
		case r.Code == 290 || r.Code == 291:
			b, _ := asBool(r.Value)
			bools[r.Code] = bool(b)
		}
	}
	switch strings.ToUpper(name) {
	case "VPORT":
		return &VPort{TableEntryCommon: c, Center: acc.get(0), Height: floats[40],
			Width: floats[41], ViewTarget: acc.get(1), ViewDirection: acc.get(2)}
	case "LTYPE":
		return &LineType{TableEntryCommon: c, Description: strs[3], PatternLength: floats[40]}
	case "LAYER":
		l := &Layer{TableEntryCommon: c, LineType: strs[6], On: true, Plotted: true}
		l.Color = ACIColor(int16(floats[62]))
		l.Frozen = c.Flags&1 != 0
		l.Locked = c.Flags&4 != 0
		return l
	case "STYLE":
		return &TextStyle{TableEntryCommon: c, FontFile: strs[3], BigFontFile: strs[4],
			Height: floats[40], WidthFactor: floats[41], ObliqueAngle: floats[50]}
	case "VIEW":
		return &View{TableEntryCommon: c, Center: acc.get(0), Height: floats[40],
			Width: floats[41], Direction: acc.get(1), Target: acc.get(2)}
	case "UCS":
		return &UCS{TableEntryCommon: c, Origin: acc.get(0), XAxis: acc.get(1), YAxis: acc.get(2)}
	case "APPID":
		return &AppID{TableEntryCommon: c}
	case "DIMSTYLE":
		return &DimStyle{TableEntryCommon: c, TextStyle: strs[3], TextHeight: floats[140],
			ArrowSize: floats[41], ExtLineExt: floats[44], ExtLineOffset: floats[42]}
	case "BLOCK_RECORD":
		return &BlockRecord{TableEntryCommon: c}
	default:
		return nil
	}
}
