package model

import "testing"

func TestRandomLiveSet(t *testing.T) {
	b := Bounds{Width: 6, Height: 4}
	live := RandomLiveSet(NewRNG(1), 10, b)
	if live.Len() != 10 {
		t.Fatalf("expected 10 cells, got %d", live.Len())
	}
	for c := range live {
		if !b.Contains(c) {
			t.Fatalf("seeded cell %v out of bounds", c)
		}
	}

	// Asking for more cells than the grid holds fills it.
	if full := RandomLiveSet(NewRNG(1), 100, b); full.Len() != b.Area() {
		t.Fatalf("expected full grid of %d, got %d", b.Area(), full.Len())
	}
}

func TestSeedingIsDeterministic(t *testing.T) {
	b := Bounds{Width: 40, Height: 20}
	first := InterestingPatterns(NewRNG(42), 0.15, b)
	second := InterestingPatterns(NewRNG(42), 0.15, b)
	if !first.Equal(second) {
		t.Fatalf("same seed produced different boards")
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	b := Bounds{Width: 7, Height: 3}
	if got := RandomDensity(NewRNG(5), 0, b); got.Len() != 0 {
		t.Fatalf("density 0 produced %d cells", got.Len())
	}
	if got := RandomDensity(NewRNG(5), 1, b); got.Len() != b.Area() {
		t.Fatalf("density 1 produced %d cells", got.Len())
	}
}

func TestInjectPreservesUniqueness(t *testing.T) {
	b := Bounds{Width: 2, Height: 2}
	live := NewLiveSet(Coordinate{0, 0})
	next := Inject(live, NewRNG(9), 50, b)

	if next.Len() > b.Area() {
		t.Fatalf("inject produced %d cells on a %d cell grid", next.Len(), b.Area())
	}
	if !next.Contains(Coordinate{0, 0}) {
		t.Fatalf("inject dropped an existing cell")
	}
	if live.Len() != 1 {
		t.Fatalf("inject mutated its input")
	}
}

func TestPatternsClipToBounds(t *testing.T) {
	b := Bounds{Width: 3, Height: 3}
	g := Glider(Coordinate{1, 1}, b)
	// only the top cell of the glider fits
	expects := NewLiveSet(Coordinate{2, 1})
	if !g.Equal(expects) {
		t.Fatalf("got %v, expected %v", g.Cells(), expects.Cells())
	}
	if Block(Coordinate{0, 0}, b).Len() != 4 || Blinker(Coordinate{0, 0}, b).Len() != 3 {
		t.Fatalf("unexpected pattern sizes")
	}
}
