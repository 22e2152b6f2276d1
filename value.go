package bracefmt

import (
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/huandu/go-clone"
)

// --- Value Interfaces ---

// Renderer writes a textual representation of itself honoring d. Fields of d
// the type does not understand should be ignored. Render must not mutate the
// receiver; it may be called many times with different directives.
//
// Implementing Renderer is enough for a type to be used as an argument.
// Without a [Duplicator] method the argument is stored as given, so a
// pointer Renderer stays shared with the caller and later changes to it are
// observed.
type Renderer interface {
	Render(w io.Writer, d Directives) error
}

// Subscripter narrows a composite value to one of its parts. It reports false
// when key names no part. Whether key is a name or an index is up to the
// implementation.
// Default: every key is rejected.
type Subscripter interface {
	Subscript(key string) (Value, bool)
}

// Duplicator returns a copy of the value that shares no mutable state with
// the original.
// Default: the argument itself is used, which is only safe for types that are
// immutable once passed in.
type Duplicator interface {
	Duplicate() Value
}

// Value is a fully capable argument: it renders, subscripts, and duplicates
// itself. Every argument is converted to a Value when it enters an [Args]
// table.
type Value interface {
	Renderer
	Subscripter
	Duplicator
}

// ValueOf wraps v in the built-in Value for its type. The result owns a
// private copy of v, so later changes to v by the caller are not observed.
//
// A nil pointer renders as "<nil>" whatever methods its type has. A v that
// already implements Value is duplicated. A Renderer that lacks the
// other capabilities is adapted, using its Subscripter or Duplicator method
// when present.
func ValueOf(v any) Value {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return textValue("<nil>")
	}
	switch x := v.(type) {
	case nil:
		return textValue("<nil>")
	case Value:
		return x.Duplicate()
	case Renderer:
		return adaptRenderer(x)
	case int:
		return intValue(int64(x))
	case int8:
		return intValue(int64(x))
	case int16:
		return intValue(int64(x))
	case int32:
		return intValue(int64(x))
	case int64:
		return intValue(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return uintValue(uint64(x))
	case uint16:
		return uintValue(uint64(x))
	case uint32:
		return uintValue(uint64(x))
	case uint64:
		return uintValue(x)
	case uintptr:
		return uintValue(uint64(x))
	case float32:
		return floatValue{f: float64(x), bits: 32}
	case float64:
		return floatValue{f: x, bits: 64}
	case string:
		return textValue(x)
	case []byte:
		return textValue(string(x))
	case bool:
		return boolValue(x)
	case error:
		return textValue(x.Error())
	case fmt.Stringer:
		return textValue(x.String())
	}
	return reflectValue(reflect.ValueOf(v))
}

// reflectValue handles named basic types and composites.
func reflectValue(rv reflect.Value) Value {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return textValue("<nil>")
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intValue(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return uintValue(rv.Uint())
	case reflect.Float32:
		return floatValue{f: rv.Float(), bits: 32}
	case reflect.Float64:
		return floatValue{f: rv.Float(), bits: 64}
	case reflect.String:
		return textValue(rv.String())
	case reflect.Bool:
		return boolValue(rv.Bool())
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array:
		if !rv.CanInterface() {
			return textValue(fmt.Sprintf("%v", rv))
		}
		return compositeValue{v: clone.Slowly(rv.Interface())}
	default:
		return textValue(fmt.Sprintf("%v", rv))
	}
}

// --- Scalars ---

type intValue int64

func (v intValue) Render(w io.Writer, d Directives) error {
	if v < 0 {
		return writeInteger(w, true, uint64(-(v+1))+1, d)
	}
	return writeInteger(w, false, uint64(v), d)
}

func (v intValue) Subscript(string) (Value, bool) { return nil, false }
func (v intValue) Duplicate() Value               { return v }

type uintValue uint64

func (v uintValue) Render(w io.Writer, d Directives) error {
	return writeInteger(w, false, uint64(v), d)
}

func (v uintValue) Subscript(string) (Value, bool) { return nil, false }
func (v uintValue) Duplicate() Value               { return v }

type floatValue struct {
	f    float64
	bits int
}

func (v floatValue) Render(w io.Writer, d Directives) error {
	return writeFloat(w, v.f, v.bits, d)
}

func (v floatValue) Subscript(string) (Value, bool) { return nil, false }
func (v floatValue) Duplicate() Value               { return v }

type boolValue bool

func (v boolValue) Render(w io.Writer, d Directives) error {
	switch d.Kind {
	case KindBinary, KindChar, KindDecimal, KindOctal, KindHex, KindHexUpper, KindNumber:
		var n uint64
		if v {
			n = 1
		}
		return writeInteger(w, false, n, d)
	}
	return writeText(w, strconv.FormatBool(bool(v)), v, d)
}

func (v boolValue) Subscript(string) (Value, bool) { return nil, false }
func (v boolValue) Duplicate() Value               { return v }

// textValue covers strings, byte slices, and the snapshot text of Stringers
// and errors.
type textValue string

func (v textValue) Render(w io.Writer, d Directives) error {
	return writeText(w, string(v), string(v), d)
}

func (v textValue) Subscript(string) (Value, bool) { return nil, false }
func (v textValue) Duplicate() Value               { return v }

// --- Composites ---

// compositeValue wraps a struct, map, slice, or array. v is a deep copy owned
// by this value, unexported fields and pointer cycles included.
type compositeValue struct {
	v any
}

func (c compositeValue) Render(w io.Writer, d Directives) error {
	return writeText(w, fmt.Sprintf("%v", c.v), c.v, d)
}

func (c compositeValue) Subscript(key string) (Value, bool) {
	part, ok := subscriptReflect(reflect.ValueOf(c.v), key)
	if !ok {
		return nil, false
	}
	return ValueOf(part.Interface()), true
}

func (c compositeValue) Duplicate() Value {
	return compositeValue{v: clone.Slowly(c.v)}
}

// --- Renderer adapter ---

type rendererValue struct {
	r Renderer
}

func adaptRenderer(r Renderer) Value {
	if d, ok := r.(Duplicator); ok {
		return d.Duplicate()
	}
	return rendererValue{r: r}
}

func (v rendererValue) Render(w io.Writer, d Directives) error {
	return v.r.Render(w, d)
}

func (v rendererValue) Subscript(key string) (Value, bool) {
	if s, ok := v.r.(Subscripter); ok {
		return s.Subscript(key)
	}
	return nil, false
}

func (v rendererValue) Duplicate() Value { return v }
