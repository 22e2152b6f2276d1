// Package bracefmt renders brace-delimited templates.
//
// A template mixes literal text with placeholders that refer to arguments by
// position or by name and say how to render them:
//
//	bracefmt.Format("{0} has {count:>5} items", "cart", bracefmt.Named("count", 3))
//	// "cart has     3 items"
//
// The central entry points are [Write], [Marshal], and [Format]. Use [New]
// to build an [Engine] with a different locale, nesting limit, or logger.
//
// # Template Syntax
//
// Literal braces are written doubled, "{{" and "}}". A placeholder has the
// form
//
//	{ref[.key...][:spec]}
//
// where ref is a decimal position, a name, or empty for the next position.
// Each .key narrows the argument to one of its parts: a struct field, a map
// entry, or a slice element. The spec after the colon follows
//
//	[[fill]align][sign][#][0][width][.precision][kind][r radix][other]
//
//   - align is one of < > = ^ (left, right, after sign, center)
//   - sign is one of + - and space
//   - # selects the alternate form, for example 0x prefixes
//   - a 0 before the width pads numbers with zeros after the sign
//   - kind is one of n b c d o x X e E f F g G %
//   - r followed by digits sets an explicit base between 2 and 36
//   - other is passed through to the value; built-in values understand
//     json, yaml, csv, tsv, and html
//
// Placeholders may appear inside a spec. They are rendered first and their
// output spliced in, so {0:{1}} takes the width of argument 0 from
// argument 1.
//
// # Values
//
// Every argument becomes a [Value] that owns a copy of it. Built-in values
// cover integers, floats, strings, byte slices, booleans, errors,
// [fmt.Stringer], and composites (structs, maps, slices, arrays). Custom
// types implement [Renderer] and, optionally, [Subscripter] and
// [Duplicator].
//
// # Errors
//
// Every failure aborts the render. Template problems are reported as a
// [*FormatError] wrapping one of:
//
//   - [ErrUnbalancedBrace]: a single "}" outside a placeholder
//   - [ErrPrematureEnd]: the template ends inside a placeholder
//   - [ErrInvalidPosition]: no positional argument at that index
//   - [ErrInvalidName]: no argument with that name
//   - [ErrInvalidSubscript]: the value has no such part
//   - [ErrInvalidSpecifier]: the spec does not parse
//
// [Write] streams and leaves any prefix rendered before the error in the
// writer. [Marshal] and [Format] return no output on error.
package bracefmt
