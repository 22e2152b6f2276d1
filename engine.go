package bracefmt

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"log/slog"

	"golang.org/x/text/language"
)

// Engine renders templates. It keeps no state between calls and is safe for
// concurrent use.
type Engine struct {
	locale   language.Tag
	maxDepth int
	logger   *slog.Logger
}

// New returns an engine with the default configuration modified by opts.
func New(opts ...Option) *Engine {
	e := &Engine{
		locale:   language.English,
		maxDepth: DefaultConfig().MaxDepth,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFromConfig returns an engine configured by cfg, then by opts.
func NewFromConfig(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	tag := language.MustParse(cfg.Locale)
	all := append([]Option{WithLocale(tag), WithMaxDepth(cfg.MaxDepth)}, opts...)
	return New(all...), nil
}

// Write renders tmpl with args to w. Output is streamed: when an error is
// returned, whatever was rendered before the failing point has already been
// written to w.
func (e *Engine) Write(w io.Writer, tmpl string, args ...any) error {
	return e.WriteArgs(w, tmpl, NewArgs(args...))
}

// WriteArgs renders tmpl against a prepared argument table.
func (e *Engine) WriteArgs(w io.Writer, tmpl string, args *Args) error {
	if args == nil {
		args = &Args{}
	}
	p := &parser{
		tmpl:     tmpl,
		args:     args,
		locale:   e.locale,
		maxDepth: e.maxDepth,
	}
	err := p.run(w)
	if err != nil {
		var fe *FormatError
		if errors.As(err, &fe) {
			e.logger.Debug("render failed", "offset", fe.Offset, "error", fe.Err, "detail", fe.Detail)
		} else {
			e.logger.Debug("render failed", "error", err)
		}
	}
	return err
}

// Marshal renders tmpl and returns the bytes. On error no output is
// returned.
func (e *Engine) Marshal(tmpl string, args ...any) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, tmpl, args...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format is like Marshal but returns a string.
func (e *Engine) Format(tmpl string, args ...any) (string, error) {
	out, err := e.Marshal(tmpl, args...)
	return string(out), err
}

// WriteSeq renders tmpl once per item of seq, with the item as argument 0,
// and ends each rendering with a newline. It stops at the first error.
func (e *Engine) WriteSeq(w io.Writer, tmpl string, seq iter.Seq[any]) error {
	var err error
	seq(func(item any) bool {
		if err = e.Write(w, tmpl, item); err != nil {
			return false
		}
		_, err = io.WriteString(w, "\n")
		return err == nil
	})
	return err
}
