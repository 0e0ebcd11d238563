package ordmap

import "github.com/pkg/errors"

// Failure values surfaced by the containers. Callers branch on them with
// errors.Is; operations may return them wrapped with call context.
// An absent key is never an error: lookups and removals report misses
// through their ok result instead.
var (
	// ErrEmptyContainer is returned by FirstKey and LastKey when the
	// container (or view) holds no entries.
	ErrEmptyContainer = errors.New("ordmap: container is empty")

	// ErrInvalidRange is returned by Sub when the bounds are inverted
	// under the comparator. No view is constructed.
	ErrInvalidRange = errors.New("ordmap: range bounds are inverted")

	// ErrKeyOutOfRange is returned by a view's Upsert for a key outside
	// the view's bounds. The backing tree is left unmodified.
	ErrKeyOutOfRange = errors.New("ordmap: key outside view bounds")

	// ErrConcurrentModification is reported by an iterator that is used
	// after a structural change to the tree invalidated it.
	ErrConcurrentModification = errors.New("ordmap: iterator invalidated by structural change")

	// ErrIncomparableKey is returned when the comparator cannot order the
	// given key, e.g. NaN under a numeric ordering. This is a caller
	// contract violation, reported at the failing call.
	ErrIncomparableKey = errors.New("ordmap: key is not comparable under the tree ordering")
)
