package dxf

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// posWriter wraps an io.Writer and tracks the number of bytes written so
// far, the same small helper the teacher's writer.go uses to know where in
// the output stream the writer currently is.
type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

// RecordWriter encodes Records to an underlying io.Writer, in either the
// ASCII or Binary framing. It is the write-side counterpart of Scanner.
type RecordWriter struct {
	w      *posWriter
	binary bool
}

// NewASCIIWriter creates a RecordWriter using the text DXF encoding.
func NewASCIIWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{w: &posWriter{w: w}}
}

// NewBinaryWriter creates a RecordWriter using the Binary DXF encoding,
// writing the sentinel preamble immediately.
func NewBinaryWriter(w io.Writer) (*RecordWriter, error) {
	rw := &RecordWriter{w: &posWriter{w: w}, binary: true}
	if _, err := rw.w.Write(binarySentinel); err != nil {
		return nil, err
	}
	return rw, nil
}

// Put writes one record.
func (w *RecordWriter) Put(rec Record) error {
	if w.binary {
		return w.putBinary(rec)
	}
	return w.putASCII(rec)
}

// PutAll writes a sequence of records, in order.
func (w *RecordWriter) PutAll(recs []Record) error {
	for _, r := range recs {
		if err := w.Put(r); err != nil {
			return err
		}
	}
	return nil
}

func (w *RecordWriter) putASCII(rec Record) error {
	if _, err := fmt.Fprintf(w.w, "%3d\n", rec.Code); err != nil {
		return err
	}
	text, err := encodeASCIIValue(rec.Code, rec.Value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w.w, "%s\n", text)
	return err
}

func encodeASCIIValue(code uint16, v Value) (string, error) {
	switch x := v.(type) {
	case Str:
		return string(x), nil
	case Float64:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case Int16:
		return strconv.FormatInt(int64(x), 10), nil
	case Int32:
		return strconv.FormatInt(int64(x), 10), nil
	case Int64:
		return strconv.FormatInt(int64(x), 10), nil
	case Bool:
		if x {
			return "1", nil
		}
		return "0", nil
	case Binary:
		return fmt.Sprintf("%X", []byte(x)), nil
	case HandleValue:
		return Handle(x).String(), nil
	default:
		return "", &UnexpectedRecordError{Record: Record{Code: code, Value: v}, Context: "encodeASCIIValue"}
	}
}

func (w *RecordWriter) putBinary(rec Record) error {
	var codeBuf [2]byte
	binary.LittleEndian.PutUint16(codeBuf[:], rec.Code)
	if _, err := w.w.Write(codeBuf[:]); err != nil {
		return err
	}

	switch x := rec.Value.(type) {
	case Str:
		if _, err := w.w.Write([]byte(x)); err != nil {
			return err
		}
		_, err := w.w.Write([]byte{0})
		return err
	case Float64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(float64(x)))
		_, err := w.w.Write(buf[:])
		return err
	case Int16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(int16(x)))
		_, err := w.w.Write(buf[:])
		return err
	case Int32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(int32(x)))
		_, err := w.w.Write(buf[:])
		return err
	case Int64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(x)))
		_, err := w.w.Write(buf[:])
		return err
	case Bool:
		var b byte
		if x {
			b = 1
		}
		_, err := w.w.Write([]byte{b})
		return err
	case Binary:
		if len(x) > 255 {
			return fmt.Errorf("binary chunk too long for group code %d: %d bytes", rec.Code, len(x))
		}
		if _, err := w.w.Write([]byte{byte(len(x))}); err != nil {
			return err
		}
		_, err := w.w.Write([]byte(x))
		return err
	case HandleValue:
		s := Handle(x).String()
		if _, err := w.w.Write([]byte(s)); err != nil {
			return err
		}
		_, err := w.w.Write([]byte{0})
		return err
	default:
		return &UnexpectedRecordError{Record: rec, Context: "putBinary"}
	}
}

// Pos returns the number of bytes written so far.
func (w *RecordWriter) Pos() int64 { return w.w.pos }

// createFile is a small os.Create wrapper kept separate from Writer/Create
// (document_writer.go) so that unit tests for the record-level writer don't need
// a real file on disk, mirroring the teacher's own split between
// NewWriter (any io.Writer) and Create (opens a named file).
func createFile(name string) (*os.File, error) {
	return os.Create(name)
}
