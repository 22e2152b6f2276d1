package bracefmt

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// writePadded writes prefix+body padded to d.Width display cells. prefix
// holds the sign and base marker of a number; AlignNumeric puts the padding
// between prefix and body. def is used when d has no alignment.
func writePadded(w io.Writer, prefix, body string, d Directives, def Alignment) error {
	s := prefix + body
	pad := d.Width - runewidth.StringWidth(s)
	if pad > 0 {
		align := d.Align
		if align == AlignDefault {
			align = def
		}
		fill := d.fill()
		switch align {
		case AlignRight:
			s = padding(fill, pad) + s
		case AlignCenter:
			left := pad / 2
			s = padding(fill, left) + s + padding(fill, pad-left)
		case AlignNumeric:
			s = prefix + padding(fill, pad) + body
		default:
			s += padding(fill, pad)
		}
	}
	_, err := io.WriteString(w, s)
	return err
}

// padding returns enough copies of r to cover cells display cells without
// exceeding them.
func padding(r rune, cells int) string {
	rw := runewidth.RuneWidth(r)
	if rw < 1 {
		rw = 1
	}
	return strings.Repeat(string(r), cells/rw)
}

// writeText renders s as text: an encoder named by d.Other may replace it,
// precision truncates it, and width pads it, left-aligned by default. raw is
// the value s was produced from, handed to structured encoders.
func writeText(w io.Writer, s string, raw any, d Directives) error {
	if enc, ok := encoders[d.Other]; ok {
		var err error
		if s, err = enc(raw, s); err != nil {
			return err
		}
	}
	if d.HasPrecision && runewidth.StringWidth(s) > d.Precision {
		s = runewidth.Truncate(s, d.Precision, "")
	}
	if d.Align == AlignNumeric {
		d.Align = AlignLeft
	}
	return writePadded(w, "", s, d, AlignLeft)
}
