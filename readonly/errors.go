package readonly

import "errors"

// ErrReadOnly is returned by every write operation on a read-only view.
var ErrReadOnly = errors.New("readonly: it is not possible to mutate a read-only graph")

// view is implemented by every adapter of this package.
type view interface {
	readOnly()
}

// IsReadOnly reports whether v is a read-only view produced by this package.
func IsReadOnly(v any) bool {
	_, ok := v.(view)

	return ok
}
