package bracefmt

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the engine settings that can be loaded from a file.
type Config struct {
	// Locale is a BCP 47 tag used by the "n" kind. Default "en".
	Locale string `yaml:"locale"`
	// MaxDepth caps placeholder nesting, counting the outermost
	// placeholder. Default 4.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Locale:   "en",
		MaxDepth: 4,
	}
}

// LoadConfig reads a YAML config from r. Keys missing from the document keep
// their default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %s", ErrInvalidConfig, c.Locale, err)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("%w: max_depth must be positive, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Option configures an [Engine].
type Option func(*Engine)

// WithLocale sets the locale used by the "n" kind.
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) { e.locale = tag }
}

// WithMaxDepth sets how deeply placeholders may nest. Values below 1 are
// ignored.
func WithMaxDepth(n int) Option {
	return func(e *Engine) {
		if n >= 1 {
			e.maxDepth = n
		}
	}
}

// WithLogger sets the logger that receives debug records for failed renders.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}
