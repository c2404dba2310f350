package set

import (
	"cmp"
	"maps"
	"slices"
)

type Set[T comparable] map[T]struct{}

func Of[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set[T]) Add(item T)         { s[item] = struct{}{} }
func (s Set[T]) Remove(item T)      { delete(s, item) }
func (s Set[T]) Exists(item T) bool { _, exists := s[item]; return exists }
func (s Set[T]) Len() int           { return len(s) }

// Sorted returns the members in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
