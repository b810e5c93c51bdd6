package model

import (
	"cmp"
	"slices"
)

// LiveSet holds the coordinates of the currently alive cells.
// Iteration order carries no meaning.
type LiveSet map[Coordinate]struct{}

// NewLiveSet builds a set from the given cells, collapsing duplicates
func NewLiveSet(cells ...Coordinate) LiveSet {
	s := make(LiveSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add marks c as alive
func (s LiveSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

// Contains reports whether c is alive
func (s LiveSet) Contains(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Len returns the population
func (s LiveSet) Len() int {
	return len(s)
}

// Cells returns the live coordinates sorted row-major (y, then x)
func (s LiveSet) Cells() []Coordinate {
	cells := make([]Coordinate, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

// Clone returns an independent copy of the set
func (s LiveSet) Clone() LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Merge returns the union of s and other, leaving both untouched
func (s LiveSet) Merge(other LiveSet) LiveSet {
	out := make(LiveSet, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

// Clip returns the cells of s that lie inside b. Used after the grid shrinks.
func (s LiveSet) Clip(b Bounds) LiveSet {
	out := make(LiveSet, len(s))
	for c := range s {
		if b.Contains(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if _, ok := other[c]; !ok {
			return false
		}
	}
	return true
}

func compareCoordinates(a, b Coordinate) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
