package dxf

import (
	"fmt"
	"io"
)

// section is the raw record stream belonging to one `(0,"SECTION")`/
// `(2,name)` .. `(0,"ENDSEC")` block, before semantic decoding.
type section struct {
	Name    string
	Records []Record
}

// readSections consumes the whole token stream and splits it into
// sections, exactly as original_source/src/io/dxf/reader.rs::read's
// `match section_pair.value_string.as_str()` dispatch does, except here
// every section's body is buffered rather than parsed inline, so the
// header's $DWGCODEPAGE variable can be known before any other section's
// string records are interpreted (§4.3).
//
// Every section is returned under its literal name, whether or not Read
// recognizes it. Records outside any SECTION block (before the first
// SECTION, or between an ENDSEC and the next SECTION) are reported as
// unexpected records and dropped.
func readSections(s *Scanner, fc *failsafeController) ([]section, error) {
	var sections []section

	for {
		rec, err := s.Next()
		if err == io.EOF {
			return sections, nil
		}
		if err != nil {
			// A record that could not be decoded at all (spec.md §8's
			// garbled-coordinate boundary behavior): the scanner has
			// already consumed the record's bytes by the time decoding
			// fails, so failsafe mode can just drop it and keep reading;
			// strict mode aborts.
			if rerr := fc.recoverable(Error, KindMalformedRecord, nil, err); rerr != nil {
				return sections, rerr
			}
			continue
		}

		if rec.Code == 0 {
			name, _ := asStr(rec.Value)
			switch string(name) {
			case "EOF":
				return sections, nil
			case "SECTION":
				sec, err := readOneSection(s, fc)
				if err != nil {
					return sections, err
				}
				sections = append(sections, sec)
				continue
			}
		}
		// Stray record outside any SECTION block: failsafe mode logs and
		// discards it, strict mode aborts.
		if err := fc.recoverable(Error, KindUnexpectedRecord, nil,
			fmt.Errorf("record %v found outside any SECTION block", rec)); err != nil {
			return sections, err
		}
	}
}

func readOneSection(s *Scanner, fc *failsafeController) (section, error) {
	rec, err := s.Next()
	if err != nil {
		return section{}, &MalformedFileError{Err: fmt.Errorf("reading SECTION name: %w", err)}
	}
	if rec.Code != 2 {
		return section{}, &MalformedFileError{Err: fmt.Errorf("expected section name (code 2), got %v", rec)}
	}
	name, _ := asStr(rec.Value)
	sec := section{Name: string(name)}

	for {
		rec, err := s.Next()
		if err == io.EOF {
			return sec, &MalformedFileError{Err: fmt.Errorf("section %q never closed with ENDSEC", sec.Name)}
		}
		if err != nil {
			if rerr := fc.recoverable(Error, KindMalformedRecord, nil, err); rerr != nil {
				return sec, rerr
			}
			continue
		}
		if rec.Code == 0 {
			if name, _ := asStr(rec.Value); string(name) == "ENDSEC" {
				return sec, nil
			}
		}
		sec.Records = append(sec.Records, rec)
	}
}

// recodeSection re-decodes every string-valued record of a pre-AC1021
// section using the legacy codepage decoder determined from the header,
// turning raw windows-125x/DOS/DBCS bytes into proper UTF-8 Go strings.
// AC1021+ files already store UTF-8 and never call this.
func recodeSection(sec section, decode func(string) string) section {
	out := section{Name: sec.Name, Records: make([]Record, len(sec.Records))}
	for i, r := range sec.Records {
		if s, ok := r.Value.(Str); ok {
			out.Records[i] = Record{Code: r.Code, Value: Str(decode(string(s)))}
		} else {
			out.Records[i] = r
		}
	}
	return out
}

// splitRecordGroups splits a flat record list into groups, each starting
// at a record whose code is in startCodes (typically code 0, the type-name
// marker for entities/table-entries/objects). Records before the first
// start code are returned as a leading, typically empty, preamble group.
func splitRecordGroups(recs []Record, startCodes map[uint16]bool) (preamble []Record, groups [][]Record) {
	start := 0
	for i, r := range recs {
		if startCodes[r.Code] {
			if i > start {
				preamble = recs[start:i]
			}
			start = i
			break
		}
	}
	if start >= len(recs) {
		return recs, nil
	}

	groupStart := start
	for i := start + 1; i <= len(recs); i++ {
		if i == len(recs) || startCodes[recs[i].Code] {
			groups = append(groups, recs[groupStart:i])
			groupStart = i
		}
	}
	return preamble, groups
}
