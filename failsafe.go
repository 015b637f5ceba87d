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

// ReadOptions controls how a Reader reacts to recoverable problems found
// while parsing. The only knob spec.md §4.8/§6.3 calls for is the
// strict/failsafe switch; it is modeled as a functional-option set on a
// small config struct, mirroring the teacher's plain-constructor-argument
// style (reader.go's NewReader(data, size, readPwd)) rather than a
// configuration library - the teacher never reaches for one, and this
// surface is one bool.
type ReadOptions struct {
	// Failsafe, if true, makes the reader drop malformed records and
	// records outside any section, logging an Error-level Notification for
	// each and continuing, rather than aborting the read with an error.
	// Unknown sections, unknown table entries and dangling references are
	// logged as Warnings in either mode; duplicate names and handles are
	// not checked. Defaults to false: strict mode is
	// the default (spec.md §4.8/§7); failsafe recovery is opt-in via
	// WithFailsafe(true).
	Failsafe bool

	// MaxNotifications caps how many notifications a single read may
	// accumulate before the reader aborts with a MalformedFileError, as a
	// backstop against files so corrupted that recovery would otherwise
	// produce an unbounded log. Zero means unlimited.
	MaxNotifications int
}

// ReaderOption configures a Reader. See WithFailsafe and WithStrict.
type ReaderOption func(*ReadOptions)

// WithFailsafe enables or disables failsafe recovery (default: disabled,
// i.e. strict mode).
func WithFailsafe(enabled bool) ReaderOption {
	return func(o *ReadOptions) { o.Failsafe = enabled }
}

// WithStrict is a shorthand for WithFailsafe(false), restoring the default
// after some earlier option in the chain enabled failsafe mode: the first
// Error-level problem aborts the read with an error instead of being
// logged. Warning-level problems are still only logged.
func WithStrict() ReaderOption {
	return WithFailsafe(false)
}

// WithMaxNotifications caps the notification log size (see
// ReadOptions.MaxNotifications).
func WithMaxNotifications(n int) ReaderOption {
	return func(o *ReadOptions) { o.MaxNotifications = n }
}

func defaultReadOptions() ReadOptions {
	return ReadOptions{Failsafe: false}
}

// failsafeController centralizes the "log and continue, or abort" decision
// used by the section demultiplexer and the TABLES decoder. It recovers
// record by record and enforces the MaxNotifications cap; there is no
// entity- or section-level skip after repeated failures. It is grounded on
// the teacher's MalformedFileError
// strict-mode shape and extended with the recovery state machine
// original_source/ itself never attempts (the Rust source simply
// propagates errors; the recovery behavior here is this library's own
// addition called for by spec.md).
type failsafeController struct {
	opts ReadOptions
	log  *Log
}

func newFailsafeController(opts ReadOptions, log *Log) *failsafeController {
	return &failsafeController{opts: opts, log: log}
}

// recoverable is called whenever the reader hits a problem it knows how to
// work around. For an Error-level problem in strict mode it returns an
// error wrapping err so the caller aborts. Otherwise (failsafe mode, or a
// lower level) it logs the notification and returns nil so the caller
// continues, unless the log has grown past MaxNotifications.
func (f *failsafeController) recoverable(level Level, kind Kind, rec *RecordContext, err error) error {
	msg := err.Error()
	if !f.opts.Failsafe && level == Error {
		return &MalformedFileError{Err: err}
	}
	f.log.Append(Notification{Level: level, Kind: kind, Message: msg, Record: rec})
	if f.opts.MaxNotifications > 0 && len(f.log.All()) > f.opts.MaxNotifications {
		return &MalformedFileError{Err: err}
	}
	return nil
}
