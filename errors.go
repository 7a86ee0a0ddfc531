package lazy

// Error is a string-backed error implementation used to declare the
// package's sentinel errors as constants.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

const (
	// ErrEmpty is returned by terminal operations that need at least
	// one item (Max, Min, First, Get, Uncons, SplitWhen) when the
	// upstream yields nothing.
	ErrEmpty Error = "empty sequence"

	// ErrInvalidSize reports a non-positive Window or Batch size.
	// Validation happens uniformly at combinator construction, before
	// any item is pulled, and is raised as a panic: a bad size is a
	// programming error, not a data condition.
	ErrInvalidSize Error = "size must be a positive integer"

	// ErrZeroStep reports a Range step of zero, raised as a panic at
	// construction like ErrInvalidSize.
	ErrZeroStep Error = "range step must not be zero"

	// ErrConsumed reports reuse of a Lazy handle whose chain has
	// already been transferred to another handle or drained by a
	// terminal operation. Raised as a panic at the offending call.
	ErrConsumed Error = "lazy handle already consumed"
)
