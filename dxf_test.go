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

package dxf_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-dxf/dxf"
)

// TestMinimalFile covers spec scenario 1: the smallest legal DXF file
// (empty HEADER, empty ENTITIES, nothing else) reads into an empty,
// notification-free document.
func TestMinimalFile(t *testing.T) {
	const input = "0\nSECTION\n2\nHEADER\n0\nENDSEC\n0\nSECTION\n2\nENTITIES\n0\nENDSEC\n0\nEOF\n"

	doc, err := dxf.NewReader(strings.NewReader(input)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Entities) != 0 {
		t.Errorf("got %d entities, want 0", len(doc.Entities))
	}
	if n := doc.Log.All(); len(n) != 0 {
		t.Errorf("got %d notifications, want 0: %s", len(n), doc.Log.Summary(5))
	}
	if doc.Version != dxf.AC1015 {
		t.Errorf("got default version %v, want AC1015", doc.Version)
	}
}

// TestLineRoundTrip covers spec scenario 2: a document holding a single
// LINE entity survives a write-then-read round trip with its coordinates
// unchanged.
func TestLineRoundTrip(t *testing.T) {
	doc := dxf.NewDocument()
	doc.Header.SetStr("$ACADVER", 1, "AC1015")

	line := &dxf.Line{
		EntityCommon: dxf.EntityCommon{
			Layer:         "0",
			Visible:       true,
			LineTypeScale: 1,
			Transparency:  -1,
		},
		Start: dxf.Point3D{X: 0, Y: 0, Z: 0},
		End:   dxf.Point3D{X: 100, Y: 100, Z: 0},
	}
	doc.Entities = append(doc.Entities, line)

	var buf bytes.Buffer
	if err := dxf.NewWriter(&buf).Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := dxf.NewReader(&buf).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(got.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(got.Entities))
	}
	gotLine, ok := got.Entities[0].(*dxf.Line)
	if !ok {
		t.Fatalf("got entity of type %T, want *dxf.Line", got.Entities[0])
	}
	if d := cmp.Diff(line, gotLine); d != "" {
		t.Error(d)
	}
}

// TestUnknownEntityPreservation covers spec scenario 3: an entity type
// this library does not model is preserved as an UnknownEntity, and
// writing it back out reproduces the same record sequence.
func TestUnknownEntityPreservation(t *testing.T) {
	const input = "0\nSECTION\n2\nENTITIES\n0\nFOOBAR\n8\nX\n10\n1.0\n20\n2.0\n30\n3.0\n0\nENDSEC\n0\nEOF\n"

	doc, err := dxf.NewReader(strings.NewReader(input)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(doc.Entities))
	}
	unk, ok := doc.Entities[0].(*dxf.UnknownEntity)
	if !ok {
		t.Fatalf("got entity of type %T, want *dxf.UnknownEntity", doc.Entities[0])
	}
	if unk.TypeName != "FOOBAR" {
		t.Errorf("got TypeName %q, want %q", unk.TypeName, "FOOBAR")
	}
	if unk.Layer != "X" {
		t.Errorf("got Layer %q, want %q", unk.Layer, "X")
	}

	doc2 := dxf.NewDocument()
	doc2.Entities = append(doc2.Entities, unk)
	var buf bytes.Buffer
	if err := dxf.NewWriter(&buf).Write(doc2); err != nil {
		t.Fatalf("Write: %v", err)
	}

	roundTripped, err := dxf.NewReader(&buf).Read()
	if err != nil {
		t.Fatalf("Read after round trip: %v", err)
	}
	if len(roundTripped.Entities) != 1 {
		t.Fatalf("got %d entities after round trip, want 1", len(roundTripped.Entities))
	}
	if d := cmp.Diff(unk, roundTripped.Entities[0]); d != "" {
		t.Error(d)
	}
}

// TestFailsafeRecovery covers spec scenario 4: a garbled coordinate value
// aborts a strict-mode read with a MalformedRecordError, but only drops
// the offending record (and logs one Error notification) in failsafe mode,
// leaving the entities around it intact.
func TestFailsafeRecovery(t *testing.T) {
	const input = "0\nSECTION\n2\nENTITIES\n" +
		"0\nPOINT\n8\n0\n10\n1.0\n20\n1.0\n30\n1.0\n" +
		"0\nLINE\n8\n0\n10\nnot a number\n20\n2.0\n30\n0.0\n11\n3.0\n21\n4.0\n31\n0.0\n" +
		"0\nCIRCLE\n8\n0\n10\n5.0\n20\n5.0\n30\n0.0\n40\n2.0\n" +
		"0\nENDSEC\n0\nEOF\n"

	t.Run("strict", func(t *testing.T) {
		_, err := dxf.NewReader(strings.NewReader(input), dxf.WithStrict()).Read()
		if err == nil {
			t.Fatal("got nil error, want MalformedRecordError")
		}
		var merr *dxf.MalformedRecordError
		if !errors.As(err, &merr) {
			t.Errorf("got error %v, want one wrapping *dxf.MalformedRecordError", err)
		}
	})

	t.Run("failsafe", func(t *testing.T) {
		doc, err := dxf.NewReader(strings.NewReader(input), dxf.WithFailsafe(true)).Read()
		if err != nil {
			t.Fatalf("Read: %v", err)
		}
		// Record-level recovery (spec.md §4.8) drops only the one malformed
		// (10, "not a number") record; the LINE entity itself survives with
		// whatever coordinates its remaining records supplied, and the
		// entities around it are untouched.
		if len(doc.Entities) != 3 {
			t.Fatalf("got %d entities, want 3 (Point, Line, Circle): %s",
				len(doc.Entities), doc.Log.Summary(5))
		}
		if _, ok := doc.Entities[0].(*dxf.Point); !ok {
			t.Errorf("got entity[0] of type %T, want *dxf.Point", doc.Entities[0])
		}
		line, ok := doc.Entities[1].(*dxf.Line)
		if !ok {
			t.Fatalf("got entity[1] of type %T, want *dxf.Line", doc.Entities[1])
		}
		if want := (dxf.Point3D{X: 3, Y: 4, Z: 0}); line.End != want {
			t.Errorf("got Line.End %v, want %v", line.End, want)
		}
		if _, ok := doc.Entities[2].(*dxf.Circle); !ok {
			t.Errorf("got entity[2] of type %T, want *dxf.Circle", doc.Entities[2])
		}

		var errCount int
		for _, n := range doc.Log.All() {
			if n.Level == dxf.Error {
				errCount++
			}
		}
		if errCount != 1 {
			t.Errorf("got %d Error notifications, want 1: %s", errCount, doc.Log.Summary(5))
		}
	})
}

// TestHandleResolution covers spec scenario 5: an entity whose owner
// handle names a block record defined later in the file ends up inside
// that block, not in the document's top-level entity list.
func TestHandleResolution(t *testing.T) {
	const input = "0\nSECTION\n2\nENTITIES\n" +
		"0\nLINE\n5\n100\n330\n50\n8\n0\n10\n0.0\n20\n0.0\n30\n0.0\n11\n1.0\n21\n1.0\n31\n0.0\n" +
		"0\nENDSEC\n" +
		"0\nSECTION\n2\nTABLES\n" +
		"0\nTABLE\n2\nBLOCK_RECORD\n" +
		"0\nBLOCK_RECORD\n5\n50\n2\nMYBLOCK\n70\n0\n" +
		"0\nENDTAB\n" +
		"0\nENDSEC\n" +
		"0\nSECTION\n2\nBLOCKS\n" +
		"0\nBLOCK\n5\n60\n330\n50\n8\n0\n2\nMYBLOCK\n70\n0\n10\n0.0\n20\n0.0\n30\n0.0\n3\nMYBLOCK\n" +
		"0\nENDBLK\n5\n61\n" +
		"0\nENDSEC\n0\nEOF\n"

	doc, err := dxf.NewReader(strings.NewReader(input)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(doc.Entities) != 0 {
		t.Fatalf("got %d top-level entities, want 0 (the LINE belongs inside MYBLOCK): %s",
			len(doc.Entities), doc.Log.Summary(5))
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(doc.Blocks))
	}
	block := doc.Blocks[0]
	if block.Name != "MYBLOCK" {
		t.Fatalf("got block name %q, want %q", block.Name, "MYBLOCK")
	}
	if len(block.Entities) != 1 {
		t.Fatalf("got %d entities inside MYBLOCK, want 1", len(block.Entities))
	}
	if _, ok := block.Entities[0].(*dxf.Line); !ok {
		t.Errorf("got entity of type %T inside MYBLOCK, want *dxf.Line", block.Entities[0])
	}
}

// TestCodepageFallback covers spec scenario 6: an unrecognized
// $DWGCODEPAGE name on a pre-UTF8 file falls back to windows-1252 with a
// single encoding-fallback Warning, and high-byte strings decode
// correctly under that fallback.
func TestCodepageFallback(t *testing.T) {
	// "Caf\xE9" is "Café" encoded as windows-1252.
	input := "0\nSECTION\n2\nHEADER\n" +
		"9\n$ACADVER\n1\nAC1015\n" +
		"9\n$DWGCODEPAGE\n3\nunknown-codepage-xyz\n" +
		"0\nENDSEC\n" +
		"0\nSECTION\n2\nENTITIES\n" +
		"0\nTEXT\n8\n0\n10\n0.0\n20\n0.0\n30\n0.0\n40\n1.0\n1\nCaf\xE9\n" +
		"0\nENDSEC\n0\nEOF\n"

	doc, err := dxf.NewReader(strings.NewReader(input)).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	var fallbacks int
	for _, n := range doc.Log.All() {
		if n.Kind == dxf.KindEncodingFallback {
			fallbacks++
			if n.Level != dxf.Warning {
				t.Errorf("got encoding-fallback notification at level %v, want Warning", n.Level)
			}
		}
	}
	if fallbacks != 1 {
		t.Fatalf("got %d encoding-fallback notifications, want 1: %s", fallbacks, doc.Log.Summary(5))
	}

	if len(doc.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(doc.Entities))
	}
	text, ok := doc.Entities[0].(*dxf.Text)
	if !ok {
		t.Fatalf("got entity of type %T, want *dxf.Text", doc.Entities[0])
	}
	if want := "Café"; text.Value != want {
		t.Errorf("got Value %q, want %q (windows-1252 decoded)", text.Value, want)
	}
}

// TestNotificationLogMonotone covers the append-only invariant of spec.md
// §8 on a Log directly: a Warning and then an Error are both kept, in the
// order they were added, and HasErrors reports the Error.
func TestNotificationLogMonotone(t *testing.T) {
	var log dxf.Log
	log.Warningf(dxf.KindUnknownEntity, nil, "first")
	if len(log.All()) != 1 {
		t.Fatalf("got %d entries, want 1", len(log.All()))
	}
	log.Errorf(dxf.KindMalformedRecord, nil, "second")
	all := log.All()
	if len(all) != 2 {
		t.Fatalf("got %d entries, want 2", len(all))
	}
	if all[0].Kind != dxf.KindUnknownEntity || all[1].Kind != dxf.KindMalformedRecord {
		t.Errorf("got entries %v, want original order preserved", all)
	}
	if !log.HasErrors() {
		t.Error("HasErrors() = false, want true after an Error-level notification")
	}
}
