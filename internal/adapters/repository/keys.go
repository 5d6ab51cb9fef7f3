package repository

import "strings"

// keySeparator joins composite key components. Components are not escaped,
// so an id containing ':' can collide with another key; callers own their
// id alphabets.
const keySeparator = ":"

// Key joins the given components into a single storage key. Zero components
// yield the empty string; empty components are preserved positionally.
func Key(components ...string) string {
	return strings.Join(components, keySeparator)
}
