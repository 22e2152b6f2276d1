package bracefmt

// NamedArg binds a value to a name so a template can refer to it as
// {name} instead of by position.
type NamedArg struct {
	Name  string
	Value any
}

// Named returns a NamedArg for use with [Write] or [Args.Add].
func Named(name string, v any) NamedArg {
	return NamedArg{Name: name, Value: v}
}

// Args is the argument table of one render call: an ordered sequence of
// positional values and a set of named values. Every entry is converted with
// [ValueOf] when added, so the table owns its values and later changes to
// the caller's variables are not observed.
//
// The zero value is an empty table ready for use.
type Args struct {
	positional []Value
	named      map[string]Value
}

// NewArgs builds a table from args. NamedArg entries go to the named set,
// everything else is appended to the positional sequence in order.
func NewArgs(args ...any) *Args {
	a := &Args{}
	for _, v := range args {
		a.Add(v)
	}
	return a
}

// Add appends v at the next position, or adds it by name if v is a NamedArg.
func (a *Args) Add(v any) *Args {
	if n, ok := v.(NamedArg); ok {
		return a.AddNamed(n.Name, n.Value)
	}
	a.positional = append(a.positional, ValueOf(v))
	return a
}

// AddNamed stores v under name. A later value with the same name replaces
// the earlier one.
func (a *Args) AddNamed(name string, v any) *Args {
	if a.named == nil {
		a.named = make(map[string]Value)
	}
	a.named[name] = ValueOf(v)
	return a
}

// Len returns the number of positional values.
func (a *Args) Len() int { return len(a.positional) }

// At returns the positional value at index i.
func (a *Args) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.positional) {
		return nil, false
	}
	return a.positional[i], true
}

// Lookup returns the value stored under name.
func (a *Args) Lookup(name string) (Value, bool) {
	v, ok := a.named[name]
	return v, ok
}
