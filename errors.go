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
	"errors"
	"fmt"
)

var (
	errVersion = errors.New("unsupported or unrecognized DXF version")
)

// MalformedRecordError is returned when a group-code record could not be
// decoded at all - e.g. a non-numeric group code, or a value that cannot
// be parsed for the type its code implies.
type MalformedRecordError struct {
	Pos int64
	Err error
}

func (e *MalformedRecordError) Error() string {
	if e.Pos != 0 {
		return fmt.Sprintf("malformed DXF record at byte %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("malformed DXF record: %v", e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// UnexpectedRecordError is returned when a record is well-formed but
// appears somewhere the current variant codec does not expect it - e.g. a
// group code outside the range its subclass allows.
type UnexpectedRecordError struct {
	Record  Record
	Context string
}

func (e *UnexpectedRecordError) Error() string {
	return fmt.Sprintf("unexpected record %v in %s", e.Record, e.Context)
}

// MissingHandleError is returned when a record that is required to carry a
// handle (group code 5/105) does not have one, and the document's handle
// allocation policy requires it.
type MissingHandleError struct {
	TypeName string
}

func (e *MissingHandleError) Error() string {
	return fmt.Sprintf("%s is missing a required handle", e.TypeName)
}

// DuplicateHandleError is returned when two records claim the same handle.
type DuplicateHandleError struct {
	Handle Handle
}

func (e *DuplicateHandleError) Error() string {
	return fmt.Sprintf("duplicate handle %s", e.Handle)
}

// DuplicateNameError is returned when two entries of the same symbol table
// claim the same name (table entries must be uniquely named within their
// table, per spec.md §4.2).
type DuplicateNameError struct {
	Table string
	Name  string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate name %q in table %s", e.Name, e.Table)
}

// UnsupportedVersionError is returned when a file declares a version this
// library does not know how to parse, or a feature requires writing a
// version older than the library supports.
type UnsupportedVersionError struct {
	Found string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported DXF version %q", e.Found)
}

// EncodingError is returned when a string record's bytes could not be
// decoded with the codepage or UTF-8 decoder selected for the file.
type EncodingError struct {
	Codepage string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("error decoding text using codepage %s: %v", e.Codepage, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

// MalformedFileError reports a structural problem with the overall file -
// a missing mandatory section, an unterminated SECTION/ENDSEC pair, or a
// handle-resolution failure in strict mode. It plays the same role the
// teacher's error of the same name plays for PDF files.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (e *MalformedFileError) Error() string {
	if e.Pos != 0 {
		return fmt.Sprintf("malformed DXF file at byte %d: %v", e.Pos, e.Err)
	}
	return fmt.Sprintf("malformed DXF file: %v", e.Err)
}

func (e *MalformedFileError) Unwrap() error { return e.Err }
