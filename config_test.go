package bracefmt_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bjaus/bracefmt"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  bracefmt.Config
	}{
		"empty":        {input: "", want: bracefmt.DefaultConfig()},
		"full":         {input: "locale: de\nmax_depth: 2\n", want: bracefmt.Config{Locale: "de", MaxDepth: 2}},
		"locale only":  {input: "locale: fr-CA\n", want: bracefmt.Config{Locale: "fr-CA", MaxDepth: 4}},
		"depth only":   {input: "max_depth: 9\n", want: bracefmt.Config{Locale: "en", MaxDepth: 9}},
		"comment only": {input: "# nothing here\n", want: bracefmt.DefaultConfig()},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := bracefmt.LoadConfig(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"bad locale":     "locale: \"not a locale\"\n",
		"unknown key":    "colour: red\n",
		"zero depth":     "max_depth: 0\n",
		"negative depth": "max_depth: -3\n",
		"wrong type":     "max_depth: deep\n",
		"not a mapping":  "- locale\n",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := bracefmt.LoadConfig(strings.NewReader(input))
			assert.ErrorIs(t, err, bracefmt.ErrInvalidConfig)
			assert.Equal(t, bracefmt.Config{}, got)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	e, err := bracefmt.NewFromConfig(bracefmt.Config{Locale: "de", MaxDepth: 4})
	require.NoError(t, err)
	got, err := e.Format("{0:n}", 1234567)
	require.NoError(t, err)
	assert.Equal(t, "1.234.567", got)
}

func TestNewFromConfigOptionsOverride(t *testing.T) {
	t.Parallel()
	e, err := bracefmt.NewFromConfig(bracefmt.Config{Locale: "de", MaxDepth: 4}, bracefmt.WithLocale(language.English))
	require.NoError(t, err)
	got, err := e.Format("{0:n}", 1234567)
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)
}

func TestNewFromConfigMaxDepth(t *testing.T) {
	t.Parallel()
	e, err := bracefmt.NewFromConfig(bracefmt.Config{Locale: "en", MaxDepth: 1})
	require.NoError(t, err)

	got, err := e.Format("{0:>3}", 7)
	require.NoError(t, err)
	assert.Equal(t, "  7", got)

	_, err = e.Format("{0:{1}}", 7, 3)
	assert.ErrorIs(t, err, bracefmt.ErrInvalidSpecifier)
}

func TestNewFromConfigInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]bracefmt.Config{
		"zero value": {},
		"bad locale": {Locale: "??", MaxDepth: 4},
		"zero depth": {Locale: "en"},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			e, err := bracefmt.NewFromConfig(cfg)
			assert.ErrorIs(t, err, bracefmt.ErrInvalidConfig)
			assert.Nil(t, e)
		})
	}
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e := bracefmt.New(bracefmt.WithLogger(logger), bracefmt.WithLogger(nil), bracefmt.WithMaxDepth(0))

	got, err := e.Format("{0:{1}}", 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "  7", got)

	_, err = e.Format("{")
	require.ErrorIs(t, err, bracefmt.ErrPrematureEnd)
	assert.Contains(t, buf.String(), "render failed")
}
