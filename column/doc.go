// Package column implements Categorical, an ordered-level encoder for
// categorical data.
//
// A Categorical restricts raw values to a fixed, ordered vocabulary of level
// labels. Each row is stored as an int32 code indexing into the vocabulary,
// or MissingCode when the row's value matched no declared level. Level order
// is significant: it drives display and count order and enables ordinal
// comparison by code.
//
// # Basic Usage
//
// Building a column with an explicit vocabulary:
//
//	col, _ := column.New(
//	    []string{"credit card", "cash", "credit card"},
//	    column.WithLevels([]string{"credit card", "cash", "no charge", "dispute"}),
//	)
//	col.ValueCounts(false) // declared levels report zero counts too
//
// Omitting WithLevels infers the vocabulary as the sorted distinct
// non-missing source values. The empty string is the missing marker for
// string sources; NaN for float sources.
//
// # Level mutation rules
//
// Renaming (SetLevels) and appending (AddLevel) are in-place,
// invariant-preserving vocabulary edits. Dropping or reordering levels is a
// rebuild against the original source via Recode; shrinking the vocabulary
// in place is rejected because surviving codes would silently point at the
// wrong labels.
//
// # Missing-value coercion
//
// Assigning a value that matches no level via Set stores MissingCode
// without returning an error. This is a documented contract, not a failure
// mode; install an Observer to receive a diagnostic for each coerced
// assignment.
package column
