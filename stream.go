package bracefmt

import (
	"io"
	"iter"
)

// WriteIter renders tmpl once per item from seq with the default engine,
// writing each result as it is produced. The item is argument 0 and each
// rendering ends with a newline.
func WriteIter[T any](w io.Writer, tmpl string, seq iter.Seq[T]) error {
	return defaultEngine.WriteSeq(w, tmpl, anySeq(seq))
}

// WriteChan renders tmpl once per item received from ch.
// It is a thin wrapper around [WriteIter].
//
// WriteChan stops receiving at the first error and leaves the remaining
// items in ch. Producers that send on an unbuffered or full channel must
// be able to stop on their own, for example through a context.
func WriteChan[T any](w io.Writer, tmpl string, ch <-chan T) error {
	return WriteIter(w, tmpl, chanToIter(ch))
}

func anySeq[T any](seq iter.Seq[T]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for item := range seq {
			if !yield(item) {
				return
			}
		}
	}
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
