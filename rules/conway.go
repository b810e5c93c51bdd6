package rules

/*
ApplyConwayRules reports whether a cell is alive in the next generation.

Conway's Game of Life rules (B3/S23):
  - a live cell with 2 or 3 live neighbors survives
  - a dead cell with exactly 3 live neighbors is born
  - every other cell is dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return Survives(neighbors)
	}
	return Born(neighbors)
}

// Survives reports whether a live cell with the given neighbor count stays alive.
func Survives(neighbors int) bool {
	return neighbors == 2 || neighbors == 3
}

// Born reports whether a dead cell with the given neighbor count comes alive.
func Born(neighbors int) bool {
	return neighbors == 3
}
