package model

import "fmt"

// Coordinate identifies a single grid cell
type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds defines the valid coordinate range 0 <= x < Width, 0 <= y < Height
type Bounds struct {
	Width  int
	Height int
}

// Contains reports whether c lies inside the bounds
func (b Bounds) Contains(c Coordinate) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// Area returns the number of cells in the bounds
func (b Bounds) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// Direction is one of the eight compass directions of the Moore neighborhood
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists the compass directions in the order Neighbors visits them.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var (
	directionOffsets = [8]Coordinate{
		North:     {X: 0, Y: -1},
		NorthEast: {X: 1, Y: -1},
		East:      {X: 1, Y: 0},
		SouthEast: {X: 1, Y: 1},
		South:     {X: 0, Y: 1},
		SouthWest: {X: -1, Y: 1},
		West:      {X: -1, Y: 0},
		NorthWest: {X: -1, Y: -1},
	}
	directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
)

// Offset returns the (dx, dy) step for the direction. Y grows downwards.
func (d Direction) Offset() Coordinate {
	return directionOffsets[d]
}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", d)
	}
	return directionNames[d]
}

// Neighbors returns the Moore neighbors of cell that fall inside bounds, in
// compass order N, NE, E, SE, S, SW, W, NW. There is no wraparound.
func Neighbors(cell Coordinate, bounds Bounds) []Coordinate {
	return appendNeighbors(make([]Coordinate, 0, len(Directions)), cell, bounds)
}

func appendNeighbors(dst []Coordinate, cell Coordinate, bounds Bounds) []Coordinate {
	for _, d := range Directions {
		off := directionOffsets[d]
		n := Coordinate{X: cell.X + off.X, Y: cell.Y + off.Y}
		if bounds.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
