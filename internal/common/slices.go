// Package common holds small generic helpers shared across packages.
package common

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// AppendUnique appends v to s unless it is already present.
func AppendUnique[S ~[]E, E comparable](s S, v E) S {
	for _, e := range s {
		if e == v {
			return s
		}
	}

	return append(s, v)
}

// Without returns the elements of s not contained in drop, preserving order.
func Without[S ~[]E, E comparable](s S, drop map[E]struct{}) S {
	if len(drop) == 0 {
		return s
	}

	kept := make(S, 0, len(s))
	for _, e := range s {
		if _, ok := drop[e]; !ok {
			kept = append(kept, e)
		}
	}

	return kept
}
