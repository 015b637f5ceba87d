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
	"strconv"
	"strings"
)

// Handle is a unique, non-zero, 64-bit identifier for an entity, table
// entry, object or block within a Document. Handle(0) means "no handle" -
// either the field was absent from the file, or a cross-reference is
// intentionally unset.
type Handle uint64

// NoHandle is the sentinel value meaning "no handle".
const NoHandle Handle = 0

// String formats the handle the way it appears in a DXF file: an uppercase
// hexadecimal digit string, with no leading zeros (except for the zero
// handle itself, which formats as "0").
func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// ParseHandle parses the hexadecimal text of group code 5/105 (or a
// pointer/reactor code in the 3xx/4xx/330-360 range) into a Handle.
func ParseHandle(s string) (Handle, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, &MalformedRecordError{Err: err}
	}
	return Handle(v), nil
}

// handleAllocator hands out handles above the highest value passed to seed
// and never reuses a value. No Document or Reader holds one, so neither
// $HANDSEED nor the handles met while reading are recorded in it.
type handleAllocator struct {
	next Handle
}

func (a *handleAllocator) seed(h Handle) {
	if h >= a.next {
		a.next = h + 1
	}
}

func (a *handleAllocator) alloc() Handle {
	if a.next == NoHandle {
		a.next = 1
	}
	h := a.next
	a.next++
	return h
}
