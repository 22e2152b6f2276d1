package bracefmt

import (
	"reflect"
	"strconv"
	"strings"
)

// subscriptReflect narrows a composite to the part named by key. Structs are
// addressed by exported field name or json tag, maps by key converted to the
// map's key type, and slices and arrays by decimal index. The returned value
// is always safe to Interface.
func subscriptReflect(rv reflect.Value, key string) (reflect.Value, bool) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structField(rv, key)
	case reflect.Map:
		k, ok := mapKey(rv.Type().Key(), key)
		if !ok {
			return reflect.Value{}, false
		}
		v := rv.MapIndex(k)
		return v, v.IsValid()
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return reflect.Value{}, false
		}
		v := rv.Index(i)
		return v, v.CanInterface()
	}
	return reflect.Value{}, false
}

func structField(rv reflect.Value, key string) (reflect.Value, bool) {
	t := rv.Type()
	if f, ok := t.FieldByName(key); ok && f.IsExported() {
		v, err := rv.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, false
		}
		return v, v.CanInterface()
	}
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name != "" && name == key {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func mapKey(t reflect.Type, key string) (reflect.Value, bool) {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(t), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(key, 10, t.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(t), true
	case reflect.Interface:
		if reflect.TypeOf(key).Implements(t) {
			return reflect.ValueOf(key).Convert(t), true
		}
	}
	return reflect.Value{}, false
}
