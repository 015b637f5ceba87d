package dxf

import (
	"fmt"
	"strconv"
)

// Value represents the decoded payload of one DXF group-code record. There
// are eight concrete implementations, chosen by the group-code range a
// record's code falls into (spec.md §4.1): Int16, Int32, Int64, Float64,
// Str, Bool, HandleValue and Binary. Custom higher-level types (points,
// colors, line weights, ...) are assembled by the codec layer from several
// consecutive records; they are never Value implementations themselves.
type Value interface {
	// dxfValue restricts implementations of this interface to this package,
	// the same closed-set design as the teacher's Object interface.
	dxfValue()
	String() string
}

// Int16 is the decoded value of a 16-bit integer group code (codes 60-79,
// 170-179, 270-289, 370-379, 400-409).
type Int16 int16

func (Int16) dxfValue()        {}
func (x Int16) String() string { return strconv.FormatInt(int64(x), 10) }

// Int32 is the decoded value of a 32-bit integer group code (codes 90-99).
type Int32 int32

func (Int32) dxfValue()        {}
func (x Int32) String() string { return strconv.FormatInt(int64(x), 10) }

// Int64 is the decoded value of a 64-bit integer group code (code 160-169).
type Int64 int64

func (Int64) dxfValue()        {}
func (x Int64) String() string { return strconv.FormatInt(int64(x), 10) }

// Float64 is the decoded value of a floating point group code (codes 10-59,
// 110-149, 210-239).
type Float64 float64

func (Float64) dxfValue() {}
func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'g', -1, 64)
}

// Str is the decoded value of a string group code (codes 0-9, 100-109,
// 300-309, 410-419, 430-439, 470-479, 999, 1000-1003, 1006-1009).
// The value has already been run through the codepage or UTF-8 decoder
// (§4.3); it never carries raw file bytes.
type Str string

func (Str) dxfValue()        {}
func (x Str) String() string { return string(x) }

// Bool is the decoded value of a boolean group code (codes 290-299),
// stored in the file as the integer 0 or 1.
type Bool bool

func (Bool) dxfValue() {}
func (x Bool) String() string {
	if x {
		return "1"
	}
	return "0"
}

// HandleValue is the decoded value of a handle/cross-reference group code
// (codes 320-369, 390-399, 480-481, 1005). Codes 5 and 105 decode as Str;
// asHandle parses their hexadecimal text.
type HandleValue Handle

func (HandleValue) dxfValue()        {}
func (x HandleValue) String() string { return Handle(x).String() }

// Binary is the decoded value of a binary chunk group code (codes 310-319),
// used for proxy graphics and embedded ACIS/preview data.
type Binary []byte

func (Binary) dxfValue()        {}
func (x Binary) String() string { return fmt.Sprintf("<%d bytes>", len(x)) }

// Record is one (group code, value) pair as it appears in a DXF stream.
type Record struct {
	Code  uint16
	Value Value
}

func (r Record) String() string {
	return fmt.Sprintf("%d: %s", r.Code, r.Value)
}

// asStr, asFloat64, ... are small type-assertion helpers used throughout
// the codec layer, playing the role of the teacher's asName/asDict helpers
// (convert.go) adapted to DXF's Value set.

func asStr(v Value) (Str, bool) {
	s, ok := v.(Str)
	return s, ok
}

func asFloat64(v Value) (Float64, bool) {
	switch x := v.(type) {
	case Float64:
		return x, true
	case Int16:
		return Float64(x), true
	case Int32:
		return Float64(x), true
	case Int64:
		return Float64(x), true
	}
	return 0, false
}

func asInt16(v Value) (Int16, bool) {
	x, ok := v.(Int16)
	return x, ok
}

func asInt32(v Value) (Int32, bool) {
	x, ok := v.(Int32)
	return x, ok
}

func asBool(v Value) (Bool, bool) {
	x, ok := v.(Bool)
	return x, ok
}

func asHandle(v Value) (Handle, bool) {
	switch x := v.(type) {
	case HandleValue:
		return Handle(x), true
	case Str:
		h, err := ParseHandle(string(x))
		if err != nil {
			return 0, false
		}
		return h, true
	}
	return 0, false
}

func asBinary(v Value) (Binary, bool) {
	x, ok := v.(Binary)
	return x, ok
}
