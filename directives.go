package bracefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Alignment controls where padding goes when output is narrower than the
// requested width.
type Alignment byte

const (
	AlignDefault Alignment = 0
	AlignLeft    Alignment = '<'
	AlignRight   Alignment = '>'
	AlignNumeric Alignment = '=' // padding after the sign and base prefix
	AlignCenter  Alignment = '^'
)

// Sign controls how the sign of a number is shown.
type Sign byte

const (
	SignDefault  Sign = 0
	SignAlways   Sign = '+'
	SignNegative Sign = '-'
	SignSpace    Sign = ' '
)

// Kind selects the output mode of a value. KindUnset means the value's own
// default.
type Kind byte

const (
	KindUnset        Kind = 0
	KindNumber       Kind = 'n'
	KindBinary       Kind = 'b'
	KindChar         Kind = 'c'
	KindDecimal      Kind = 'd'
	KindOctal        Kind = 'o'
	KindHex          Kind = 'x'
	KindHexUpper     Kind = 'X'
	KindExp          Kind = 'e'
	KindExpUpper     Kind = 'E'
	KindFixed        Kind = 'f'
	KindFixedUpper   Kind = 'F'
	KindGeneral      Kind = 'g'
	KindGeneralUpper Kind = 'G'
	KindPercent      Kind = '%'
)

// String returns the specifier letter of the kind, or "" when unset.
func (k Kind) String() string {
	if k == KindUnset {
		return ""
	}
	return string(rune(k))
}

func (k Kind) isFloat() bool {
	switch k {
	case KindExp, KindExpUpper, KindFixed, KindFixedUpper, KindGeneral, KindGeneralUpper, KindPercent:
		return true
	}
	return false
}

func (k Kind) isUpper() bool {
	switch k {
	case KindHexUpper, KindExpUpper, KindFixedUpper, KindGeneralUpper:
		return true
	}
	return false
}

func isAlignment(r rune) bool {
	switch Alignment(r) {
	case AlignLeft, AlignRight, AlignNumeric, AlignCenter:
		return r < utf8.RuneSelf
	}
	return false
}

func isKind(b byte) bool {
	switch Kind(b) {
	case KindNumber, KindBinary, KindChar, KindDecimal, KindOctal, KindHex, KindHexUpper,
		KindExp, KindExpUpper, KindFixed, KindFixedUpper, KindGeneral, KindGeneralUpper, KindPercent:
		return true
	}
	return false
}

// Directives holds the formatting knobs parsed from a placeholder's
// specifier. The zero value has every field unset and is what a placeholder
// without a specifier renders with.
//
// Width 0 and an unset width behave identically, so Width carries no
// separate flag. Precision 0 is meaningful, hence HasPrecision. Radix 0 means
// the base implied by Kind.
type Directives struct {
	Fill         rune
	Align        Alignment
	Sign         Sign
	Alternate    bool
	Width        int
	Precision    int
	HasPrecision bool
	Kind         Kind
	Radix        int
	Other        string

	// Locale is not part of the specifier grammar. The engine sets it from
	// its configuration before dispatching to a value.
	Locale language.Tag
}

// fill returns the padding rune, defaulting to a space.
func (d Directives) fill() rune {
	if d.Fill == 0 {
		return ' '
	}
	return d.Fill
}

// String re-encodes d as specifier text. ParseDirectives(d.String())
// yields d again, Locale aside.
func (d Directives) String() string {
	var sb strings.Builder
	if d.Align != AlignDefault {
		if d.Fill != 0 {
			sb.WriteRune(d.Fill)
		}
		sb.WriteByte(byte(d.Align))
	}
	if d.Sign != SignDefault {
		sb.WriteByte(byte(d.Sign))
	}
	if d.Alternate {
		sb.WriteByte('#')
	}
	if d.Width > 0 {
		sb.WriteString(strconv.Itoa(d.Width))
	}
	if d.HasPrecision {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(d.Precision))
	}
	sb.WriteString(d.Kind.String())
	if d.Radix != 0 {
		sb.WriteByte('r')
		sb.WriteString(strconv.Itoa(d.Radix))
	}
	sb.WriteString(d.Other)
	return sb.String()
}

// ParseDirectives parses specifier text, the part of a placeholder after
// the colon:
//
//	[[fill]align][sign][#][0][width][.precision][kind][r radix][other]
//
// Text that matches none of the structured fields is kept verbatim in
// Other. Errors wrap [ErrInvalidSpecifier].
func ParseDirectives(spec string) (Directives, error) {
	var d Directives
	s := spec

	if r, size := utf8.DecodeRuneInString(s); size > 0 && size < len(s) {
		if next, nsize := utf8.DecodeRuneInString(s[size:]); isAlignment(next) {
			d.Fill = r
			d.Align = Alignment(next)
			s = s[size+nsize:]
		}
	}
	if d.Align == AlignDefault && s != "" && isAlignment(rune(s[0])) {
		d.Align = Alignment(s[0])
		s = s[1:]
	}

	if s != "" {
		switch Sign(s[0]) {
		case SignAlways, SignNegative, SignSpace:
			d.Sign = Sign(s[0])
			s = s[1:]
		}
	}

	if strings.HasPrefix(s, "#") {
		d.Alternate = true
		s = s[1:]
	}

	if strings.HasPrefix(s, "0") && d.Fill == 0 && d.Align == AlignDefault {
		d.Fill = '0'
		d.Align = AlignNumeric
		s = s[1:]
	}

	var err error
	if d.Width, s, err = parseNumber(s, "width"); err != nil {
		return Directives{}, err
	}

	if strings.HasPrefix(s, ".") {
		digits := s[1:]
		if digits == "" || !isDigit(digits[0]) {
			return Directives{}, fmt.Errorf("%w: precision must follow '.' in %q", ErrInvalidSpecifier, spec)
		}
		if d.Precision, s, err = parseNumber(digits, "precision"); err != nil {
			return Directives{}, err
		}
		d.HasPrecision = true
	}

	if s != "" && isKind(s[0]) {
		d.Kind = Kind(s[0])
		s = s[1:]
	}

	if len(s) > 1 && s[0] == 'r' && isDigit(s[1]) {
		if d.Radix, s, err = parseNumber(s[1:], "radix"); err != nil {
			return Directives{}, err
		}
		if d.Radix < 2 || d.Radix > 36 {
			return Directives{}, fmt.Errorf("%w: radix %d out of range 2..36", ErrInvalidSpecifier, d.Radix)
		}
	}

	d.Other = s
	return d, nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

// parseNumber consumes a leading run of decimal digits. An empty run yields 0.
func parseNumber(s, field string) (int, string, error) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, s, nil
	}
	n, err := strconv.ParseUint(s[:i], 10, 32)
	if err != nil || n > math.MaxInt32 {
		return 0, s, fmt.Errorf("%w: %s %q too large", ErrInvalidSpecifier, field, s[:i])
	}
	return int(n), s[i:], nil
}
