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

// Object is implemented by every non-graphical database object found in
// the OBJECTS section (spec.md §4.6): dictionaries, xrecords, layouts and
// the rest of the ~22-entry catalogue resolved in DESIGN.md, plus
// UnknownObject as the forward-compatibility escape.
type Object interface {
	Common() *ObjectCommon
	DXFType() string
}

// ObjectCommon holds the fields shared by every non-graphical object.
type ObjectCommon struct {
	Handle      Handle
	OwnerHandle Handle
	XData       []AppData
}

// decodeObjectPreamble consumes the fields common to every object. The
// owner handle (330) is taken only before the first subclass marker (100);
// a 330 after it belongs to the type-specific data (e.g. a LAYOUT's block
// record) and is left in the returned records.
func decodeObjectPreamble(recs []Record, log *Log) (ObjectCommon, []Record) {
	c := ObjectCommon{}
	var rest []Record
	seenSubclass := false
	for i := 0; i < len(recs); i++ {
		r := recs[i]
		switch r.Code {
		case 5:
			if h, ok := asHandle(r.Value); ok {
				c.Handle = h
			}
		case 330:
			if seenSubclass {
				rest = append(rest, r)
				continue
			}
			if h, ok := asHandle(r.Value); ok {
				c.OwnerHandle = h
			}
		case 100:
			seenSubclass = true
			rest = append(rest, r)
		case 1001:
			c.XData = DecodeXData(recs[i:], log)
			return c, rest
		default:
			rest = append(rest, r)
		}
	}
	return c, rest
}

// UnknownObject preserves the verbatim record list of an object type not
// recognized by this library.
type UnknownObject struct {
	ObjectCommon
	TypeName string
	Records  []Record
}

func (o *UnknownObject) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *UnknownObject) DXFType() string       { return o.TypeName }

// Dictionary is a DICTIONARY object: a named handle lookup table, the
// backbone of the named-object tree whose root Document.RootDictionary
// returns (resolve.go checks each entry's handle). WithDefault marks the
// DICTIONARYWDFLT variant,
// which carries a fallback entry handle (code 340) used when a requested
// key is absent.
type Dictionary struct {
	ObjectCommon
	Names        []string
	Handles      []Handle
	Hard         bool // code 280: hard-owner vs soft-owner references
	Cloning      int16
	WithDefault  bool
	DefaultHandle Handle
}

func (o *Dictionary) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *Dictionary) DXFType() string {
	if o.WithDefault {
		return "ACDBDICTIONARYWDFLT"
	}
	return "DICTIONARY"
}

// Get looks up an entry's handle by key.
func (o *Dictionary) Get(name string) (Handle, bool) {
	for i, n := range o.Names {
		if n == name {
			return o.Handles[i], true
		}
	}
	return NoHandle, false
}

func decodeDictionary(c ObjectCommon, rest []Record, withDefault bool) *Dictionary {
	d := &Dictionary{ObjectCommon: c, WithDefault: withDefault}
	var pendingName string
	haveName := false
	for _, r := range rest {
		switch r.Code {
		case 3:
			s, _ := asStr(r.Value)
			pendingName = string(s)
			haveName = true
		case 280:
			n, _ := asInt16(r.Value)
			d.Hard = n != 0
		case 281:
			n, _ := asInt16(r.Value)
			d.Cloning = int16(n)
		case 340:
			h, _ := asHandle(r.Value)
			if haveName {
				d.Names = append(d.Names, pendingName)
				d.Handles = append(d.Handles, h)
				haveName = false
			} else {
				d.DefaultHandle = h
			}
		}
	}
	return d
}

// XRecord is an XRECORD object: an arbitrary bag of group-coded data
// (codes 1-369 by convention) owned by a dictionary entry, used by
// applications to stash custom data without a dedicated object type.
type XRecord struct {
	ObjectCommon
	Data       []Record
	CloningFlags int16
}

func (o *XRecord) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *XRecord) DXFType() string       { return "XRECORD" }

func decodeXRecord(c ObjectCommon, rest []Record) *XRecord {
	x := &XRecord{ObjectCommon: c}
	for _, r := range rest {
		if r.Code == 280 {
			n, _ := asInt16(r.Value)
			x.CloningFlags = int16(n)
			continue
		}
		x.Data = append(x.Data, r)
	}
	return x
}

// Layout is a LAYOUT object: paper-space page setup bound to a
// BLOCK_RECORD via BlockHandle.
type Layout struct {
	ObjectCommon
	Name         string
	TabOrder     int16
	BlockHandle  Handle
	PlotSettingsHandle Handle
	MinLimits, MaxLimits Point3D
}

func (o *Layout) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *Layout) DXFType() string       { return "LAYOUT" }

func decodeLayout(c ObjectCommon, rest []Record) *Layout {
	l := &Layout{ObjectCommon: c}
	acc := newPointAccumulator()
	for _, r := range rest {
		switch {
		case isCoordinateCode(r.Code):
			f, _ := asFloat64(r.Value)
			acc.feed(r.Code, float64(f))
		case r.Code == 1:
			s, _ := asStr(r.Value)
			l.Name = string(s)
		case r.Code == 71:
			n, _ := asInt16(r.Value)
			l.TabOrder = int16(n)
		case r.Code == 330:
			h, _ := asHandle(r.Value)
			l.BlockHandle = h
		}
	}
	l.MinLimits = acc.get(0)
	l.MaxLimits = acc.get(1)
	return l
}

// DictionaryVar is a DICTIONARYVAR object: a single named string variable
// stashed in a dictionary.
type DictionaryVar struct {
	ObjectCommon
	Schema int16
	Value  string
}

func (o *DictionaryVar) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *DictionaryVar) DXFType() string       { return "DICTIONARYVAR" }

// GenericObject is the shared layout for the remaining object kinds whose
// fidelity the spec narrows to "preserve and round-trip" rather than full
// field-level modeling (TableStyle, Material, VisualStyle, Scale,
// MLeaderStyle, CellStyleMap, SortentsTable, WipeoutVariables, DimAssoc,
// RasterVariables, GeoData, PlotSettings, Group, MlineStyle,
// AcDbPlaceHolder): a type name plus its verbatim records.
type GenericObject struct {
	ObjectCommon
	TypeName string
	Records  []Record
}

func (o *GenericObject) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *GenericObject) DXFType() string       { return o.TypeName }

// ImageDef is an IMAGEDEF object: the file reference and pixel geometry
// behind a RasterImage entity.
type ImageDef struct {
	ObjectCommon
	FileName string
	ImageSize [2]float64
	PixelSize [2]float64
	Loaded   bool
}

func (o *ImageDef) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *ImageDef) DXFType() string       { return "IMAGEDEF" }

func decodeImageDef(c ObjectCommon, rest []Record) *ImageDef {
	d := &ImageDef{ObjectCommon: c}
	for _, r := range rest {
		switch r.Code {
		case 1:
			s, _ := asStr(r.Value)
			d.FileName = string(s)
		case 10:
			f, _ := asFloat64(r.Value)
			d.ImageSize[0] = float64(f)
		case 20:
			f, _ := asFloat64(r.Value)
			d.ImageSize[1] = float64(f)
		case 11:
			f, _ := asFloat64(r.Value)
			d.PixelSize[0] = float64(f)
		case 21:
			f, _ := asFloat64(r.Value)
			d.PixelSize[1] = float64(f)
		case 280:
			n, _ := asInt16(r.Value)
			d.Loaded = n != 0
		}
	}
	return d
}

// ImageDefReactor is an IMAGEDEF_REACTOR object: a persistent-reactor
// companion object every IMAGE/ImageDef pair owns, recording only the
// image-def's class version per spec.
type ImageDefReactor struct {
	ObjectCommon
	ClassVersion int32
}

func (o *ImageDefReactor) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *ImageDefReactor) DXFType() string       { return "IMAGEDEF_REACTOR" }

// DbColor is a DBCOLOR object: a true-color value stored as a standalone
// database object so it can be referenced by handle (e.g. layer plot
// style), rather than inline on an entity.
type DbColor struct {
	ObjectCommon
	Color Color
	Name  string
}

func (o *DbColor) Common() *ObjectCommon { return &o.ObjectCommon }
func (o *DbColor) DXFType() string       { return "DBCOLOR" }

// decodeObjectByName dispatches the object catalogue, matching
// original_source/src/objects/mod.rs's type-name match in ObjectCollection
// ::read.
func decodeObjectByName(name string, c ObjectCommon, rest []Record) Object {
	switch strings.ToUpper(name) {
	case "DICTIONARY":
		return decodeDictionary(c, rest, false)
	case "ACDBDICTIONARYWDFLT", "DICTIONARYWDFLT":
		return decodeDictionary(c, rest, true)
	case "XRECORD":
		return decodeXRecord(c, rest)
	case "LAYOUT":
		return decodeLayout(c, rest)
	case "DICTIONARYVAR":
		v := &DictionaryVar{ObjectCommon: c}
		for _, r := range rest {
			switch r.Code {
			case 28:
				n, _ := asInt16(r.Value)
				v.Schema = int16(n)
			case 1:
				s, _ := asStr(r.Value)
				v.Value = string(s)
			}
		}
		return v
	case "IMAGEDEF":
		return decodeImageDef(c, rest)
	case "IMAGEDEF_REACTOR":
		r := &ImageDefReactor{ObjectCommon: c}
		for _, rec := range rest {
			if rec.Code == 90 {
				n, _ := asInt32(rec.Value)
				r.ClassVersion = int32(n)
			}
		}
		return r
	case "DBCOLOR":
		d := &DbColor{ObjectCommon: c}
		for _, rec := range rest {
			switch rec.Code {
			case 430:
				s, _ := asStr(rec.Value)
				d.Name = string(s)
			case 420:
				n, _ := asInt32(rec.Value)
				d.Color = RGB(uint8(n>>16), uint8(n>>8), uint8(n))
			}
		}
		return d
	case "TABLESTYLE", "MATERIAL", "VISUALSTYLE", "SCALE", "MLEADERSTYLE",
		"CELLSTYLEMAP", "SORTENTSTABLE", "WIPEOUTVARIABLES", "DIMASSOC",
		"RASTERVARIABLES", "GEODATA", "PLOTSETTINGS", "GROUP", "MLINESTYLE",
		"ACDBPLACEHOLDER":
		return &GenericObject{ObjectCommon: c, TypeName: strings.ToUpper(name), Records: rest}
	default:
		return &UnknownObject{ObjectCommon: c, TypeName: name, Records: rest}
	}
}
