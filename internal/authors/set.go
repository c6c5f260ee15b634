// Package authors maintains the deduplicated, sorted contributor list stored
// in the author file at a repository root.
package authors

import (
	"maps"
	"slices"
)

// Set is a deduplicated collection of contributor logins. Logins are opaque
// whitespace-free tokens; no format validation is applied.
type Set struct {
	members map[string]struct{}
}

// NewSet returns a Set containing the given logins, duplicates collapsed.
func NewSet(logins ...string) *Set {
	s := &Set{members: make(map[string]struct{}, len(logins))}
	for _, login := range logins {
		s.Add(login)
	}
	return s
}

// Add inserts a login. Adding an already-present login is a no-op.
func (s *Set) Add(login string) {
	s.members[login] = struct{}{}
}

// Remove deletes a login. Removing an absent login is a no-op.
func (s *Set) Remove(login string) {
	delete(s.members, login)
}

// Contains reports whether login is in the set.
func (s *Set) Contains(login string) bool {
	_, ok := s.members[login]
	return ok
}

// Len returns the number of logins in the set.
func (s *Set) Len() int {
	return len(s.members)
}

// Sorted returns the logins in ascending lexicographic order.
func (s *Set) Sorted() []string {
	return slices.Sorted(maps.Keys(s.members))
}
