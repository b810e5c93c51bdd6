package model

import "math/rand/v2"

// NewRNG returns a deterministic generator for the given seed
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandomLiveSet picks up to n distinct random cells inside bounds
func RandomLiveSet(rng *rand.Rand, n int, bounds Bounds) LiveSet {
	n = min(n, bounds.Area())
	live := make(LiveSet, max(n, 0))
	for len(live) < n {
		live.Add(Coordinate{X: rng.IntN(bounds.Width), Y: rng.IntN(bounds.Height)})
	}
	return live
}

// RandomDensity marks each cell in bounds alive with probability density
func RandomDensity(rng *rand.Rand, density float64, bounds Bounds) LiveSet {
	live := make(LiveSet)
	for y := range bounds.Height {
		for x := range bounds.Width {
			if rng.Float64() < density {
				live.Add(Coordinate{X: x, Y: y})
			}
		}
	}
	return live
}

// Inject returns live with up to count random cells added. Cells already
// alive are not duplicated.
func Inject(live LiveSet, rng *rand.Rand, count int, bounds Bounds) LiveSet {
	if count <= 0 || bounds.Area() == 0 {
		return live.Clone()
	}
	extra := make(LiveSet, count)
	for range count {
		extra.Add(Coordinate{X: rng.IntN(bounds.Width), Y: rng.IntN(bounds.Height)})
	}
	return live.Merge(extra)
}

var (
	gliderPattern = []Coordinate{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	// horizontal period 2 oscillator
	blinkerPattern = []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	blockPattern   = []Coordinate{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}
)

// Glider returns a south-east travelling glider with its top-left corner at origin
func Glider(origin Coordinate, bounds Bounds) LiveSet {
	return place(gliderPattern, origin, bounds)
}

// Blinker returns a horizontal blinker starting at origin
func Blinker(origin Coordinate, bounds Bounds) LiveSet {
	return place(blinkerPattern, origin, bounds)
}

// Block returns a 2x2 still-life at origin
func Block(origin Coordinate, bounds Bounds) LiveSet {
	return place(blockPattern, origin, bounds)
}

func place(pattern []Coordinate, origin Coordinate, bounds Bounds) LiveSet {
	live := make(LiveSet, len(pattern))
	for _, p := range pattern {
		c := Coordinate{X: origin.X + p.X, Y: origin.Y + p.Y}
		if bounds.Contains(c) {
			live.Add(c)
		}
	}
	return live
}

// InterestingPatterns seeds a board with a couple of gliders and blinkers when
// there is room, plus random life at the given density.
func InterestingPatterns(rng *rand.Rand, density float64, bounds Bounds) LiveSet {
	live := RandomDensity(rng, density, bounds)
	if bounds.Width < 10 || bounds.Height < 10 {
		return live
	}

	live = live.Merge(Glider(Coordinate{X: 5, Y: 5}, bounds))
	if bounds.Width >= 20 && bounds.Height >= 15 {
		live = live.Merge(Glider(Coordinate{X: bounds.Width - 8, Y: 5}, bounds))
	}

	live = live.Merge(Blinker(Coordinate{X: bounds.Width / 4, Y: bounds.Height / 4}, bounds))
	if bounds.Width >= 30 {
		live = live.Merge(Blinker(Coordinate{X: 3 * bounds.Width / 4, Y: 3 * bounds.Height / 4}, bounds))
	}
	return live
}
