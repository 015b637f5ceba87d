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

// Package dxf provides support for reading and writing DXF drawing exchange
// files, in both the ASCII and Binary record encodings.
//
// This package treats DXF files as a self-contained document graph: a
// header variable map, nine symbol tables, a block table, a flat list of
// graphical entities, a dictionary tree of non-graphical objects, a class
// registry, and an append-only notification log produced while reading.
//
// Open reads an existing DXF file into a `Document`:
//
//     doc, err := dxf.Open("in.dxf")
//     if err != nil {
//         log.Fatal(err)
//     }
//     for _, layer := range doc.Layers.Entries {
//         fmt.Println(layer.Name)
//     }
//
// Create opens a new file and returns a `Writer` for it:
//
//     f, w, err := dxf.Create("out.dxf")
//     if err != nil {
//         log.Fatal(err)
//     }
//     defer f.Close()
//
//     err = w.Write(doc)
//     if err != nil {
//         log.Fatal(err)
//     }
//
// NewReader and NewWriter work the same way against an arbitrary
// `io.Reader`/`io.Writer`, for callers that are not reading from or
// writing to a plain file.
//
// The following interfaces classify the variant types that make up a
// document graph:
//
//     Entity     - graphical objects stored in the ENTITIES section and in blocks
//     TableEntry - rows of the nine symbol tables (layers, line types, ...)
//     Object     - non-graphical objects reachable from the root dictionary
//
// Subpackages implement support concerns that do not need access to the
// core document types, such as legacy codepage decoding.
package dxf
