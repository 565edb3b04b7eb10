package column

// Observer receives a diagnostic each time an assignment is coerced to
// missing because its value matched no declared level.
//
// The coercion itself is defined, non-failing behavior; an Observer only
// makes it visible. Implementations must not mutate the column from within
// the callback.
type Observer interface {
	// MissingCoerced is called with the row index and the unmatched value.
	MissingCoerced(index int, value string)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(index int, value string)

// MissingCoerced implements the Observer interface.
func (f ObserverFunc) MissingCoerced(index int, value string) {
	f(index, value)
}
