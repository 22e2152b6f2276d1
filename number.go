package bracefmt

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

func signPrefix(neg bool, s Sign) string {
	switch {
	case neg:
		return "-"
	case s == SignAlways:
		return "+"
	case s == SignSpace:
		return " "
	}
	return ""
}

func basePrefix(base int, upper bool) string {
	switch base {
	case 2:
		return "0b"
	case 8:
		return "0o"
	case 16:
		if upper {
			return "0X"
		}
		return "0x"
	}
	return ""
}

// printer returns a message printer for tag. The undetermined tag falls back
// to English.
func printer(tag language.Tag) *message.Printer {
	if tag == language.Und {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

// writeInteger renders an integer given as sign and magnitude, so the most
// negative int64 needs no special case.
func writeInteger(w io.Writer, neg bool, mag uint64, d Directives) error {
	if d.Kind.isFloat() {
		f := float64(mag)
		if neg {
			f = -f
		}
		return writeFloat(w, f, 64, d)
	}

	if d.Kind == KindChar {
		r := utf8.RuneError
		if mag <= utf8.MaxRune {
			r = rune(mag)
		}
		return writePadded(w, "", string(r), d, AlignRight)
	}

	var prefix, body string
	if d.Kind == KindNumber {
		body = printer(d.Locale).Sprint(number.Decimal(mag))
	} else {
		base := d.Radix
		if base == 0 {
			switch d.Kind {
			case KindBinary:
				base = 2
			case KindOctal:
				base = 8
			case KindHex, KindHexUpper:
				base = 16
			default:
				base = 10
			}
		}
		body = strconv.FormatUint(mag, base)
		if d.Kind == KindHexUpper {
			body = strings.ToUpper(body)
		}
		if d.Alternate {
			prefix = basePrefix(base, d.Kind == KindHexUpper)
		}
	}
	return writePadded(w, signPrefix(neg, d.Sign)+prefix, body, d, AlignRight)
}

// writeFloat renders f with the float kinds. Integer kinds are not
// meaningful for floats and fall back to the default form.
func writeFloat(w io.Writer, f float64, bits int, d Directives) error {
	neg := math.Signbit(f) && !math.IsNaN(f)
	abs := math.Abs(f)
	sign := signPrefix(neg, d.Sign)

	var body string
	switch {
	case math.IsNaN(f):
		body = "nan"
	case math.IsInf(f, 0):
		body = "inf"
	}
	if body != "" {
		if d.Kind.isUpper() {
			body = strings.ToUpper(body)
		}
		if d.Kind == KindPercent {
			body += "%"
		}
		return writePadded(w, sign, body, d, AlignRight)
	}

	prec := 6
	if d.HasPrecision {
		prec = d.Precision
	}
	switch d.Kind {
	case KindExp, KindExpUpper:
		body = strconv.FormatFloat(abs, 'e', prec, bits)
	case KindFixed, KindFixedUpper:
		body = strconv.FormatFloat(abs, 'f', prec, bits)
	case KindGeneral, KindGeneralUpper:
		body = strconv.FormatFloat(abs, 'g', max(prec, 1), bits)
	case KindPercent:
		body = strconv.FormatFloat(abs*100, 'f', prec, 64) + "%"
	case KindNumber:
		var opts []number.Option
		if d.HasPrecision {
			opts = append(opts, number.MaxFractionDigits(d.Precision))
		}
		body = printer(d.Locale).Sprint(number.Decimal(abs, opts...))
	default:
		if d.HasPrecision {
			body = strconv.FormatFloat(abs, 'g', max(prec, 1), bits)
		} else {
			body = strconv.FormatFloat(abs, 'g', -1, bits)
		}
	}
	if d.Kind.isUpper() {
		body = strings.ToUpper(body)
	}
	return writePadded(w, sign, body, d, AlignRight)
}
