package bracefmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

// parser walks one template from left to right. It is built for a single
// call and dropped afterwards.
type parser struct {
	tmpl     string
	pos      int
	args     *Args
	locale   language.Tag
	maxDepth int
	auto     int // next position taken by {}
}

func (p *parser) fail(err error, offset int, format string, a ...any) error {
	return &FormatError{Err: err, Offset: offset, Detail: fmt.Sprintf(format, a...)}
}

// run copies literal text to w, collapsing "{{" and "}}", and renders every
// placeholder it meets.
func (p *parser) run(w io.Writer) error {
	for p.pos < len(p.tmpl) {
		rest := p.tmpl[p.pos:]
		i := strings.IndexAny(rest, "{}")
		if i < 0 {
			p.pos = len(p.tmpl)
			_, err := io.WriteString(w, rest)
			return err
		}
		if i > 0 {
			if _, err := io.WriteString(w, rest[:i]); err != nil {
				return err
			}
			p.pos += i
		}

		c := p.tmpl[p.pos]
		if p.pos+1 < len(p.tmpl) && p.tmpl[p.pos+1] == c {
			if _, err := io.WriteString(w, p.tmpl[p.pos:p.pos+1]); err != nil {
				return err
			}
			p.pos += 2
			continue
		}
		if c == '}' {
			return p.fail(ErrUnbalancedBrace, p.pos, "use '}}' for a literal brace")
		}
		if err := p.placeholder(w, 1); err != nil {
			return err
		}
	}
	return nil
}

// placeholder renders the placeholder opening at p.pos. Placeholders nested
// in its body are rendered first and their output becomes part of the body
// text, which is how {0:{1}} takes its width from argument 1.
func (p *parser) placeholder(w io.Writer, depth int) error {
	start := p.pos
	if depth > p.maxDepth {
		return p.fail(ErrInvalidSpecifier, start, "placeholders nested more than %d deep", p.maxDepth)
	}
	p.pos++

	// An empty reference takes its automatic position before any nested
	// placeholder in the body does.
	auto := -1
	if p.pos < len(p.tmpl) && strings.IndexByte(".:}", p.tmpl[p.pos]) >= 0 {
		auto = p.auto
		p.auto++
	}

	var body strings.Builder
	for p.pos < len(p.tmpl) {
		switch p.tmpl[p.pos] {
		case '}':
			p.pos++
			return p.render(w, body.String(), start, auto)
		case '{':
			if err := p.placeholder(&body, depth+1); err != nil {
				return err
			}
		default:
			rest := p.tmpl[p.pos:]
			i := strings.IndexAny(rest, "{}")
			if i < 0 {
				i = len(rest)
			}
			body.WriteString(rest[:i])
			p.pos += i
		}
	}
	return p.fail(ErrPrematureEnd, start, "placeholder is never closed")
}

// render interprets a placeholder body of the form ref[.key...][:spec].
func (p *parser) render(w io.Writer, body string, offset, auto int) error {
	end := strings.IndexAny(body, ".:")
	if end < 0 {
		end = len(body)
	}
	ref, rest := body[:end], body[end:]

	v, err := p.resolve(ref, offset, auto)
	if err != nil {
		return err
	}
	v = v.Duplicate()

	for strings.HasPrefix(rest, ".") {
		key := rest[1:]
		end := strings.IndexAny(key, ".:")
		if end < 0 {
			end = len(key)
		}
		key, rest = key[:end], key[end:]
		part, ok := v.Subscript(key)
		if !ok {
			return p.fail(ErrInvalidSubscript, offset, "argument %q has no part %q", ref, key)
		}
		v = part
	}

	var d Directives
	if spec, ok := strings.CutPrefix(rest, ":"); ok {
		if d, err = ParseDirectives(spec); err != nil {
			return &FormatError{Err: err, Offset: offset}
		}
	}
	d.Locale = p.locale
	return v.Render(w, d)
}

// resolve looks up an argument reference: empty for an automatic position,
// all digits for an explicit position, anything else a name. auto is the
// position reserved when the placeholder opened, or -1 to take the next one.
func (p *parser) resolve(ref string, offset, auto int) (Value, error) {
	if ref == "" {
		i := auto
		if i < 0 {
			i = p.auto
			p.auto++
		}
		v, ok := p.args.At(i)
		if !ok {
			return nil, p.fail(ErrInvalidPosition, offset, "automatic position %d, have %d positional arguments", i, p.args.Len())
		}
		return v, nil
	}
	if isIndex(ref) {
		i, err := strconv.Atoi(ref)
		v, ok := p.args.At(i)
		if err != nil || !ok {
			return nil, p.fail(ErrInvalidPosition, offset, "position %s, have %d positional arguments", ref, p.args.Len())
		}
		return v, nil
	}
	v, ok := p.args.Lookup(ref)
	if !ok {
		return nil, p.fail(ErrInvalidName, offset, "no argument named %q", ref)
	}
	return v, nil
}

func isIndex(s string) bool {
	for i := range len(s) {
		if !isDigit(s[i]) {
			return false
		}
	}
	return s != ""
}
