package bracefmt

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnbalancedBrace  = errors.New("unbalanced close brace")
	ErrPrematureEnd     = errors.New("premature end of format element")
	ErrInvalidPosition  = errors.New("invalid argument position")
	ErrInvalidName      = errors.New("invalid argument name")
	ErrInvalidSubscript = errors.New("invalid subscript")
	ErrInvalidSpecifier = errors.New("invalid format specifier")
	ErrInvalidConfig    = errors.New("invalid config")
)

// FormatError reports where in a template rendering failed. It unwraps to
// one of the sentinel errors.
type FormatError struct {
	Err    error
	Offset int // byte offset into the template
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Err, e.Offset, e.Detail)
}

func (e *FormatError) Unwrap() error { return e.Err }
