package bracefmt

import "io"

var defaultEngine = New()

// Write renders tmpl with args to w using the default engine. Arguments are
// positional unless wrapped with [Named].
//
// Output is streamed. When Write fails, the text rendered before the failing
// point has already reached w; use [Marshal] or [Format] when partial output
// is not acceptable.
func Write(w io.Writer, tmpl string, args ...any) error {
	return defaultEngine.Write(w, tmpl, args...)
}

// Marshal renders tmpl with args and returns the bytes. On error it returns
// no output.
func Marshal(tmpl string, args ...any) ([]byte, error) {
	return defaultEngine.Marshal(tmpl, args...)
}

// Format renders tmpl with args and returns the string. On error it returns
// "".
func Format(tmpl string, args ...any) (string, error) {
	return defaultEngine.Format(tmpl, args...)
}
