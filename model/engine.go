package model

import "github.com/sheikhrachel/sparse-gol/rules"

// NeighborCounts maps a cell to its number of live neighbors (1..8).
// Cells with no live neighbors are absent.
type NeighborCounts map[Coordinate]uint8

// Step computes the generation that follows live within bounds.
// The input set is never modified. Cells outside bounds are ignored.
func Step(live LiveSet, bounds Bounds) LiveSet {
	return step(live, bounds, make(NeighborCounts, len(live)*4))
}

// step evaluates the rule only for live cells and cells adjacent to one, so
// the cost scales with population rather than grid area. counts must be empty.
func step(live LiveSet, bounds Bounds, counts NeighborCounts) LiveSet {
	countNeighbors(live, bounds, counts)

	next := make(LiveSet, len(live))
	for c, n := range counts {
		if rules.ApplyConwayRules(int(n), live.Contains(c)) {
			next[c] = struct{}{}
		}
	}

	// Live cells missing from counts are isolated and still have to go
	// through the rule with zero neighbors.
	for c := range live {
		if !bounds.Contains(c) {
			continue
		}
		if _, seen := counts[c]; !seen && rules.ApplyConwayRules(0, true) {
			next[c] = struct{}{}
		}
	}

	return next
}

// countNeighbors adds one to every in-bounds neighbor of each in-bounds live cell
func countNeighbors(live LiveSet, bounds Bounds, counts NeighborCounts) {
	buf := make([]Coordinate, 0, len(Directions))
	for c := range live {
		if !bounds.Contains(c) {
			continue
		}
		buf = appendNeighbors(buf[:0], c, bounds)
		for _, n := range buf {
			counts[n]++
		}
	}
}
