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

import "fmt"

// Level classifies the severity of a Notification.
type Level int

const (
	// Info records a benign, fully-recovered event (e.g. an unknown but
	// harmless extended entity property was skipped).
	Info Level = iota
	// Warning records a problem the reader worked around in either mode -
	// an unrecognized section, an unknown codepage that fell back to
	// windows-1252, a dictionary entry whose handle matches nothing.
	Warning
	// Error records a problem that could not be recovered from for the
	// affected record, entity, or section; in strict mode any Error-level
	// notification is returned to the caller as the read's error instead.
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Kind is a short, machine-readable identifier for the category of problem
// a Notification describes, so callers can filter or count notifications
// without parsing Message text.
type Kind string

// Well-known notification kinds. The reader emits unknown-section,
// unknown-table-entry, encoding-fallback, dangling-reference,
// malformed-record, unexpected-record and unbalanced-xdata; the other
// kinds are not emitted by this package.
const (
	KindUnknownSection     Kind = "unknown-section"
	KindUnknownEntity      Kind = "unknown-entity"
	KindUnknownObject      Kind = "unknown-object"
	KindUnknownTableEntry  Kind = "unknown-table-entry"
	KindEncodingFallback   Kind = "encoding-fallback"
	KindDuplicateHandle    Kind = "duplicate-handle"
	KindDuplicateName      Kind = "duplicate-name"
	KindDanglingReference  Kind = "dangling-reference"
	KindMalformedRecord    Kind = "malformed-record"
	KindUnexpectedRecord   Kind = "unexpected-record"
	KindRecoveredSection   Kind = "recovered-section"
	KindRecoveredEntity    Kind = "recovered-entity"
	KindMissingHandle      Kind = "missing-handle"
	KindUnbalancedXData    Kind = "unbalanced-xdata"
)

// RecordContext pinpoints where in the input a Notification originated,
// for diagnostics. Fields are best-effort and may be zero/empty when the
// information is unavailable (e.g. while still scanning the header).
type RecordContext struct {
	Section string
	Handle  Handle
	TypeDXF string
	Record  *Record
}

func (c *RecordContext) String() string {
	if c == nil {
		return ""
	}
	s := c.Section
	if c.TypeDXF != "" {
		s += "/" + c.TypeDXF
	}
	if c.Handle != NoHandle {
		s += fmt.Sprintf("#%s", c.Handle)
	}
	return s
}

// Notification is one entry of a Document's append-only diagnostic log,
// produced while reading (and, more rarely, while writing). See spec.md
// §4.8 and §8 (the Notifications-monotone invariant).
type Notification struct {
	Level   Level
	Kind    Kind
	Message string
	Record  *RecordContext
}

func (n Notification) String() string {
	if n.Record != nil && n.Record.String() != "" {
		return fmt.Sprintf("%s: %s (%s): %s", n.Level, n.Kind, n.Record, n.Message)
	}
	return fmt.Sprintf("%s: %s: %s", n.Level, n.Kind, n.Message)
}

// Log is an append-only sequence of Notifications. A Document embeds one
// directly; it is also used internally by the reader while parsing so it
// can be merged into the Document at the very end.
type Log struct {
	entries []Notification
}

// Append adds a notification to the log. It never removes or reorders
// existing entries, matching the monotone-log invariant in spec.md §8.
func (l *Log) Append(n Notification) {
	l.entries = append(l.entries, n)
}

// Infof, Warningf and Errorf are convenience constructors mirroring the
// shape of fmt.Errorf.
func (l *Log) Infof(kind Kind, rec *RecordContext, format string, args ...any) {
	l.Append(Notification{Level: Info, Kind: kind, Message: fmt.Sprintf(format, args...), Record: rec})
}

func (l *Log) Warningf(kind Kind, rec *RecordContext, format string, args ...any) {
	l.Append(Notification{Level: Warning, Kind: kind, Message: fmt.Sprintf(format, args...), Record: rec})
}

func (l *Log) Errorf(kind Kind, rec *RecordContext, format string, args ...any) {
	l.Append(Notification{Level: Error, Kind: kind, Message: fmt.Sprintf(format, args...), Record: rec})
}

// All returns the notifications logged so far, in the order they were
// appended. The returned slice must not be modified by the caller.
func (l *Log) All() []Notification {
	return l.entries
}

// HasErrors reports whether any Error-level notification has been logged.
func (l *Log) HasErrors() bool {
	for _, n := range l.entries {
		if n.Level == Error {
			return true
		}
	}
	return false
}

// Summary formats up to maxSamples notification messages plus a total
// count, the shape original_source/tests/reference_samples.rs exercises
// ("notifications=N" plus a handful of sample messages).
func (l *Log) Summary(maxSamples int) string {
	if len(l.entries) == 0 {
		return "notifications=0"
	}
	s := fmt.Sprintf("notifications=%d", len(l.entries))
	n := maxSamples
	if n > len(l.entries) {
		n = len(l.entries)
	}
	for i := 0; i < n; i++ {
		s += "\n  " + l.entries[i].String()
	}
	return s
}
