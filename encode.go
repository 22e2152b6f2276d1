package bracefmt

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// encoders are the structured renderings selected through the free-form
// tail of a specifier, as in {0:json}. Each receives the raw value and its
// default text.
var encoders = map[string]func(raw any, text string) (string, error){
	"json": encodeJSON,
	"yaml": encodeYAML,
	"csv":  func(raw any, text string) (string, error) { return encodeRecord(raw, text, ',') },
	"tsv":  func(raw any, text string) (string, error) { return encodeRecord(raw, text, '\t') },
	"html": func(_ any, text string) (string, error) { return html.EscapeString(text), nil },
}

func encodeJSON(raw any, _ string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(raw); err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func encodeYAML(raw any, _ string) (string, error) {
	out, err := yaml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode yaml: %w", err)
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}

// encodeRecord writes a slice or array as one delimited record. Any other
// value becomes a single-field record of its text.
func encodeRecord(raw any, text string, comma rune) (string, error) {
	record := []string{text}
	if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		record = make([]string, rv.Len())
		for i := range record {
			record[i] = fmt.Sprint(rv.Index(i).Interface())
		}
	}
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	cw.Comma = comma
	if err := cw.Write(record); err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("encode record: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
