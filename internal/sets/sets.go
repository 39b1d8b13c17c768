// Package sets provides a small generic finite set with the algebra the quiz
// and the diagram renderer need. Set values are treated as immutable: every
// operation returns a fresh set.
package sets

import (
	"cmp"
	"maps"
	"slices"
)

// Set is a finite set of comparable elements.
type Set[T comparable] map[T]struct{}

// New builds a set from elems. Duplicates collapse.
func New[T comparable](elems ...T) Set[T] {
	s := make(Set[T], len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Contains reports whether e is a member of s.
func (s Set[T]) Contains(e T) bool {
	_, ok := s[e]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Union returns s ∪ o.
func (s Set[T]) Union(o Set[T]) Set[T] {
	r := make(Set[T], len(s)+len(o))
	for e := range s {
		r[e] = struct{}{}
	}
	for e := range o {
		r[e] = struct{}{}
	}
	return r
}

// Intersect returns s ∩ o.
func (s Set[T]) Intersect(o Set[T]) Set[T] {
	r := make(Set[T])
	for e := range s {
		if o.Contains(e) {
			r[e] = struct{}{}
		}
	}
	return r
}

// Difference returns s − o.
func (s Set[T]) Difference(o Set[T]) Set[T] {
	r := make(Set[T])
	for e := range s {
		if !o.Contains(e) {
			r[e] = struct{}{}
		}
	}
	return r
}

// SubsetOf reports whether every member of s is also in o.
func (s Set[T]) SubsetOf(o Set[T]) bool {
	for e := range s {
		if !o.Contains(e) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o have the same members.
func (s Set[T]) Equal(o Set[T]) bool {
	return len(s) == len(o) && s.SubsetOf(o)
}

// Disjoint reports whether s and o share no member.
func (s Set[T]) Disjoint(o Set[T]) bool {
	for e := range s {
		if o.Contains(e) {
			return false
		}
	}
	return true
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}

// Map applies f to every member and collects the results.
func Map[T, U comparable](s Set[T], f func(T) U) Set[U] {
	r := make(Set[U], len(s))
	for e := range s {
		r[f(e)] = struct{}{}
	}
	return r
}
