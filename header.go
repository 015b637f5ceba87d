package dxf

// Header holds the $-prefixed drawing variables of the HEADER section
// (spec.md §4.2). Each variable is stored as the raw Records that followed
// its name, since header variables vary in shape (a single value, a 3D
// point spread across three codes, or occasionally a short repeated
// group) depending on which variable it is.
type Header struct {
	vars map[string][]Record
	// order preserves the sequence variables were first seen in, so a
	// round-tripped file keeps the same header variable ordering.
	order []string
}

// NewHeader creates an empty header variable map.
func NewHeader() *Header {
	return &Header{vars: make(map[string][]Record)}
}

// Set replaces the records associated with a header variable (the name
// must include its leading '$', e.g. "$ACADVER").
func (h *Header) Set(name string, recs []Record) {
	if h.vars == nil {
		h.vars = make(map[string][]Record)
	}
	if _, ok := h.vars[name]; !ok {
		h.order = append(h.order, name)
	}
	h.vars[name] = recs
}

// Get returns the raw records for a header variable, and whether it is
// present at all.
func (h *Header) Get(name string) ([]Record, bool) {
	recs, ok := h.vars[name]
	return recs, ok
}

// Names returns all variable names currently set, in first-seen order.
func (h *Header) Names() []string {
	return append([]string(nil), h.order...)
}

// Str returns the string value of a single-record string header variable,
// or "" if absent or of the wrong shape.
func (h *Header) Str(name string) string {
	recs, ok := h.vars[name]
	if !ok || len(recs) == 0 {
		return ""
	}
	if s, ok := asStr(recs[0].Value); ok {
		return string(s)
	}
	return ""
}

// Float returns the float64 value of a single-record numeric header
// variable, or 0 if absent or of the wrong shape.
func (h *Header) Float(name string) float64 {
	recs, ok := h.vars[name]
	if !ok || len(recs) == 0 {
		return 0
	}
	if f, ok := asFloat64(recs[0].Value); ok {
		return float64(f)
	}
	return 0
}

// Int returns the integer value of a single-record integer header
// variable, or 0 if absent or of the wrong shape.
func (h *Header) Int(name string) int {
	recs, ok := h.vars[name]
	if !ok || len(recs) == 0 {
		return 0
	}
	switch v := recs[0].Value.(type) {
	case Int16:
		return int(v)
	case Int32:
		return int(v)
	case Int64:
		return int(v)
	}
	return 0
}

// Point returns the 3D point value of a header variable whose records are
// an (x, y, z) coordinate triple (e.g. $EXTMIN), or the zero point if
// absent.
func (h *Header) Point(name string) Point3D {
	recs, ok := h.vars[name]
	if !ok {
		return Point3D{}
	}
	var p Point3D
	for _, r := range recs {
		f, ok := asFloat64(r.Value)
		if !ok {
			continue
		}
		switch coordinateAxis(r.Code) {
		case 0:
			p.X = float64(f)
		case 1:
			p.Y = float64(f)
		case 2:
			p.Z = float64(f)
		}
	}
	return p
}

// SetStr, SetFloat and SetInt are convenience setters for the common case
// of a single-record header variable.
func (h *Header) SetStr(name string, code uint16, v string) {
	h.Set(name, []Record{{Code: code, Value: Str(v)}})
}

func (h *Header) SetFloat(name string, code uint16, v float64) {
	h.Set(name, []Record{{Code: code, Value: Float64(v)}})
}

func (h *Header) SetInt(name string, code uint16, v int16) {
	h.Set(name, []Record{{Code: code, Value: Int16(v)}})
}

// decodeHeader splits a HEADER section's flat record list into per-
// variable groups, each starting at a code-9 "$VARNAME" marker, the
// layout original_source/src/sections/header/mod.rs's header parser reads
// the same way.
func decodeHeader(recs []Record) *Header {
	h := NewHeader()
	var name string
	var cur []Record
	flush := func() {
		if name != "" {
			h.Set(name, cur)
		}
	}
	for _, r := range recs {
		if r.Code == 9 {
			flush()
			s, _ := asStr(r.Value)
			name = string(s)
			cur = nil
			continue
		}
		if name == "" {
			continue
		}
		cur = append(cur, r)
	}
	flush()
	return h
}

// records re-encodes the header back into a flat record list, in the
// same variable order it was first populated in, for the writer.
func (h *Header) records() []Record {
	var out []Record
	for _, name := range h.order {
		out = append(out, Record{Code: 9, Value: Str(name)})
		out = append(out, h.vars[name]...)
	}
	return out
}

// ACADVER returns the file's declared version, parsed from $ACADVER.
func (h *Header) ACADVER() (Version, error) {
	return ParseVersion(h.Str("$ACADVER"))
}

// Codepage returns the legacy codepage name stored in $DWGCODEPAGE, e.g.
// "ANSI_1252", or "" if absent.
func (h *Header) Codepage() string {
	return h.Str("$DWGCODEPAGE")
}

// HandSeed returns the $HANDSEED value (the next unused handle suggested
// by the writer that produced the file), or NoHandle if absent/unparseable.
func (h *Header) HandSeed() Handle {
	recs, ok := h.vars["$HANDSEED"]
	if !ok || len(recs) == 0 {
		return NoHandle
	}
	if hv, ok := asHandle(recs[0].Value); ok {
		return hv
	}
	return NoHandle
}
