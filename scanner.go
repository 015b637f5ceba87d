package dxf

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// binarySentinel is the fixed 22-byte preamble every Binary DXF file starts
// with, exactly as original_source/src/io/dxf/reader/binary_reader.rs
// defines it.
var binarySentinel = []byte("AutoCAD Binary DXF\r\n\x1a\x00")

// lowLevelScanner decodes one Record at a time from an underlying byte
// stream, without any lookahead of its own; Scanner layers one-record
// lookahead on top, the same split the teacher's scanner.go makes between
// raw token reading and Peek/unread.
type lowLevelScanner interface {
	next() (Record, error)
}

// Scanner reads DXF (group code, value) records from an io.Reader, adding
// one-record lookahead (Peek/Next) on top of a format-specific low-level
// decoder, the same shape as the teacher's scanner (scanner.go: Peek,
// bufPos, currentPos). The format (ASCII or Binary) is auto-detected by
// NewScanner from the binary sentinel, mirroring
// original_source/.../binary_reader.rs's own sentinel probe.
type Scanner struct {
	low      lowLevelScanner
	peeked   Record
	havePeek bool
	atEOF    bool
	pos      int64
}

// NewScanner creates a Scanner over data, detecting ASCII vs Binary framing
// from the first bytes of the stream.
func NewScanner(r io.Reader) (*Scanner, error) {
	br := bufio.NewReaderSize(r, 32*1024)
	head, _ := br.Peek(len(binarySentinel))
	if bytes.Equal(head, binarySentinel) {
		if _, err := br.Discard(len(binarySentinel)); err != nil {
			return nil, err
		}
		bs, err := newBinaryScanner(br)
		if err != nil {
			return nil, err
		}
		return &Scanner{low: bs}, nil
	}
	return &Scanner{low: newASCIIScanner(br)}, nil
}

// Peek returns the next record without consuming it. Calling Peek again
// before Next returns the same record. Comment records (group code 999,
// spec.md §8 boundary behavior) are stripped here so no caller ever sees
// one.
func (s *Scanner) Peek() (Record, error) {
	if s.havePeek {
		return s.peeked, nil
	}
	if s.atEOF {
		return Record{}, io.EOF
	}
	for {
		rec, err := s.low.next()
		if err != nil {
			if err == io.EOF {
				s.atEOF = true
			}
			return Record{}, err
		}
		if rec.Code == 999 {
			continue
		}
		s.peeked = rec
		s.havePeek = true
		return rec, nil
	}
}

// Next consumes and returns the next record.
func (s *Scanner) Next() (Record, error) {
	rec, err := s.Peek()
	if err != nil {
		return Record{}, err
	}
	s.havePeek = false
	s.pos++
	return rec, nil
}

// asciiScanner decodes the text DXF encoding: each record is two lines, a
// group code and a value, both terminated by a line ending that may be
// "\r\n" or "\n" (spec.md §4.2).
type asciiScanner struct {
	r *bufio.Reader
}

func newASCIIScanner(r *bufio.Reader) *asciiScanner {
	return &asciiScanner{r: r}
}

func (s *asciiScanner) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	line = strings.TrimRight(line, "\r\n")
	return line, nil
}

func (s *asciiScanner) next() (Record, error) {
	codeLine, err := s.readLine()
	if err != nil {
		return Record{}, err
	}
	codeLine = strings.TrimSpace(codeLine)
	codeNum, err := strconv.Atoi(codeLine)
	if err != nil {
		return Record{}, &MalformedRecordError{Err: fmt.Errorf("invalid group code %q: %w", codeLine, err)}
	}
	if codeNum < 0 || codeNum > 65535 {
		return Record{}, &MalformedRecordError{Err: fmt.Errorf("group code %d out of range", codeNum)}
	}
	code := uint16(codeNum)

	valueLine, err := s.readLine()
	if err != nil {
		if err == io.EOF {
			return Record{}, &MalformedRecordError{Err: errors.New("unexpected end of file reading record value")}
		}
		return Record{}, err
	}

	val, err := decodeASCIIValue(code, valueLine)
	if err != nil {
		return Record{}, err
	}
	return Record{Code: code, Value: val}, nil
}

func decodeASCIIValue(code uint16, text string) (Value, error) {
	switch classifyCode(code) {
	case kindString:
		return Str(text), nil
	case kindFloat64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Float64(f), nil
	case kindInt16, kindByte:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Int16(n), nil
	case kindInt32:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Int32(n), nil
	case kindInt64:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Int64(n), nil
	case kindBool:
		n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 16)
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Bool(n != 0), nil
	case kindBinary:
		b, err := decodeHexBytes(strings.TrimSpace(text))
		if err != nil {
			return nil, &MalformedRecordError{Err: fmt.Errorf("code %d: %w", code, err)}
		}
		return Binary(b), nil
	case kindHandle:
		h, err := ParseHandle(strings.TrimSpace(text))
		if err != nil {
			return nil, err
		}
		return HandleValue(h), nil
	default:
		return Str(text), nil
	}
}

func decodeHexBytes(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.New("odd-length hex string")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		n, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return nil, err
		}
		out[i] = byte(n)
	}
	return out, nil
}

// binaryScanner decodes the Binary DXF encoding, following
// original_source/src/io/dxf/reader/binary_reader.rs: after the sentinel,
// pre-AC1012 files use single-byte group codes (0xFF escapes to a 2-byte
// little-endian code), while AC1012+ files always use 2-byte little-endian
// codes.
type binaryScanner struct {
	r               *bufio.Reader
	singleByteCodes bool
}

func newBinaryScanner(r *bufio.Reader) (*binaryScanner, error) {
	probe, err := r.Peek(2)
	if err != nil && err != io.EOF {
		return nil, err
	}
	singleByte := len(probe) >= 2 && probe[0] == 0 && probe[1] >= 0x20 && probe[1] < 0x7F
	return &binaryScanner{r: r, singleByteCodes: singleByte}, nil
}

func (s *binaryScanner) readCode() (uint16, error) {
	if s.singleByteCodes {
		b, err := s.r.ReadByte()
		if err != nil {
			return 0, err
		}
		if b == 255 {
			var buf [2]byte
			if _, err := io.ReadFull(s.r, buf[:]); err != nil {
				return 0, err
			}
			return binary.LittleEndian.Uint16(buf[:]), nil
		}
		return uint16(b), nil
	}
	var buf [2]byte
	n, err := io.ReadFull(s.r, buf[:])
	if n == 0 && err == io.EOF {
		return 0, io.EOF
	}
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func (s *binaryScanner) readCString() (string, error) {
	var buf []byte
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

func (s *binaryScanner) next() (Record, error) {
	code, err := s.readCode()
	if err != nil {
		return Record{}, err
	}

	switch classifyCode(code) {
	case kindString:
		str, err := s.readCString()
		if err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Str(str)}, nil

	case kindFloat64:
		var buf [8]byte
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return Record{}, err
		}
		bits := binary.LittleEndian.Uint64(buf[:])
		return Record{Code: code, Value: Float64(math.Float64frombits(bits))}, nil

	case kindInt16, kindByte:
		var buf [2]byte
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Int16(int16(binary.LittleEndian.Uint16(buf[:])))}, nil

	case kindInt32:
		var buf [4]byte
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Int32(int32(binary.LittleEndian.Uint32(buf[:])))}, nil

	case kindInt64:
		var buf [8]byte
		if _, err := io.ReadFull(s.r, buf[:]); err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Int64(int64(binary.LittleEndian.Uint64(buf[:])))}, nil

	case kindBool:
		b, err := s.r.ReadByte()
		if err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Bool(b != 0)}, nil

	case kindBinary:
		n, err := s.r.ReadByte()
		if err != nil {
			return Record{}, err
		}
		data := make([]byte, n)
		if n > 0 {
			if _, err := io.ReadFull(s.r, data); err != nil {
				return Record{}, err
			}
		}
		return Record{Code: code, Value: Binary(data)}, nil

	case kindHandle:
		str, err := s.readCString()
		if err != nil {
			return Record{}, err
		}
		h, err := ParseHandle(str)
		if err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: HandleValue(h)}, nil

	default:
		str, err := s.readCString()
		if err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: Str(str)}, nil
	}
}
