// Package codepage maps the legacy $DWGCODEPAGE names used by DXF files
// older than AC1021 (which always use UTF-8) to golang.org/x/text
// encodings, the way the teacher's text.go turns raw PDF string bytes into
// Go strings - except DXF names its encoding explicitly in the header
// rather than leaving it to a fixed built-in table, so this package is a
// lookup rather than a single hard-coded decoder.
package codepage

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// table maps $DWGCODEPAGE names to their x/text encoding.
var table = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS857":    charmap.CodePage857,
	"DOS860":    charmap.CodePage860,
	"DOS861":    charmap.CodePage861,
	"DOS863":    charmap.CodePage863,
	"DOS865":    charmap.CodePage865,
	"DOS869":    charmap.CodePage866, // closest available x/text table for the Modern Greek DOS page
	"DOS932":    japanese.ShiftJIS,
	"DOS936":    simplifiedchinese.GBK,
	"DOS949":    korean.EUCKR,
	"DOS950":    traditionalchinese.Big5,
	"ISO8859_1": charmap.ISO8859_1,
	"ISO8859_2": charmap.ISO8859_2,
	"ISO8859_3": charmap.ISO8859_3,
	"ISO8859_4": charmap.ISO8859_4,
	"ISO8859_5": charmap.ISO8859_5,
	"ISO8859_6": charmap.ISO8859_6,
	"ISO8859_7": charmap.ISO8859_7,
	"ISO8859_8": charmap.ISO8859_8,
	"ISO8859_9": charmap.ISO8859_9,
	"BIG5":      traditionalchinese.Big5,
	"GB2312":    simplifiedchinese.HZGB2312,
	"JOHAB":     korean.EUCKR,
	"MACINTOSH": charmap.Macintosh,
}

// Default is the encoding used when a file omits $DWGCODEPAGE entirely
// (the resolved Open Question in DESIGN.md: windows-1252, AutoCAD's own
// default).
var Default encoding.Encoding = charmap.Windows1252

// Lookup returns the x/text encoding for a legacy AutoCAD codepage name
// such as "ANSI_1252". The lookup is case-insensitive. ok is false for
// names this table does not recognize, in which case callers should fall
// back to Default and log a Warning (spec.md §4.3/§6.2).
func Lookup(name string) (enc encoding.Encoding, ok bool) {
	enc, ok = table[strings.ToUpper(strings.TrimSpace(name))]
	return enc, ok
}
