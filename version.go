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

import "strconv"

// Version represents a version of the DXF standard, identified by the
// AutoCAD drawing database version string stored in the $ACADVER header
// variable (e.g. "AC1027").
type Version int

// DXF versions supported by this library. The ordering matches release
// chronology, so comparisons ("is this file new enough for UTF-8 strings")
// can use plain operators.
const (
	_ Version = iota
	AC1009 // R12
	AC1012 // R13
	AC1014 // R14
	AC1015 // 2000/2000i/2002
	AC1018 // 2004/2005/2006
	AC1021 // 2007/2008/2009 - first version with UTF-8 strings
	AC1024 // 2010/2011/2012
	AC1027 // 2013/2014/2015/2016/2017
	AC1032 // 2018+
	tooHighVersion
)

var versionStrings = map[Version]string{
	AC1009: "AC1009",
	AC1012: "AC1012",
	AC1014: "AC1014",
	AC1015: "AC1015",
	AC1018: "AC1018",
	AC1021: "AC1021",
	AC1024: "AC1024",
	AC1027: "AC1027",
	AC1032: "AC1032",
}

// ParseVersion parses an $ACADVER version string such as "AC1027".
func ParseVersion(verString string) (Version, error) {
	for ver, s := range versionStrings {
		if s == verString {
			return ver, nil
		}
	}
	return 0, errVersion
}

// ToString returns the $ACADVER string representation of ver, e.g.
// "AC1027". If ver is not one of the supported versions, an error is
// returned.
func (ver Version) ToString() (string, error) {
	s, ok := versionStrings[ver]
	if !ok {
		return "", errVersion
	}
	return s, nil
}

func (ver Version) String() string {
	versionString, err := ver.ToString()
	if err != nil {
		versionString = "dxf.Version(" + strconv.Itoa(int(ver)) + ")"
	}
	return versionString
}

// UsesUTF8 reports whether files of this version store string records as
// UTF-8 rather than through a legacy codepage (§4.3).
func (ver Version) UsesUTF8() bool {
	return ver >= AC1021
}
