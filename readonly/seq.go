package readonly

import (
	"fmt"
	"iter"

	"github.com/seyyedshah/blueprints/pgm"
)

// Seq wraps each element of seq as it is produced.
// Nothing is buffered; stopping early stops the base sequence too.
func Seq[T pgm.Element](seq iter.Seq[T]) iter.Seq[T] {
	if seq == nil {
		return func(func(T) bool) {}
	}

	return pgm.Map(seq, wrap[T])
}

// describe renders v through fmt.Stringer when available, else its id.
func describe(v pgm.Element) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%s[%s]", v.Kind(), v.ID())
}
