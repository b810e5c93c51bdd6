package model

import (
	"context"
	"errors"
	"testing"
)

func TestStepAllAdvancesIndependently(t *testing.T) {
	b := Bounds{Width: 16, Height: 16}
	seeds := []LiveSet{
		Blinker(Coordinate{4, 4}, b),
		Glider(Coordinate{0, 0}, b),
		NewLiveSet(Coordinate{8, 8}),
		RandomDensity(NewRNG(11), 0.4, b),
	}

	sims := make([]*Simulation, len(seeds))
	for i, s := range seeds {
		sims[i] = NewSimulation(s, b)
	}
	sims = append(sims, nil)

	pool := NewCountsPool()
	for gen := 1; gen <= 5; gen++ {
		if err := StepAll(context.Background(), sims, pool); err != nil {
			t.Fatalf("StepAll: %v", err)
		}
		for i, s := range seeds {
			seeds[i] = Step(s, b)
			if !sims[i].Live.Equal(seeds[i]) {
				t.Fatalf("simulation %d diverged at generation %d", i, gen)
			}
			if sims[i].Generation != gen {
				t.Fatalf("simulation %d generation = %d, expected %d", i, sims[i].Generation, gen)
			}
		}
	}
}

func TestStepAllCancelled(t *testing.T) {
	b := Bounds{Width: 5, Height: 5}
	sim := NewSimulation(Blinker(Coordinate{1, 2}, b), b)
	before := sim.Live.Clone()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := StepAll(ctx, []*Simulation{sim}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if sim.Generation != 0 || !sim.Live.Equal(before) {
		t.Fatalf("cancelled simulation was advanced")
	}
}

func TestSimulationResize(t *testing.T) {
	sim := NewSimulation(NewLiveSet(Coordinate{0, 0}, Coordinate{1, 0}, Coordinate{0, 1}, Coordinate{1, 1}, Coordinate{7, 7}), Bounds{Width: 8, Height: 8})
	sim.Resize(Bounds{Width: 2, Height: 2})
	if sim.Live.Len() != 4 {
		t.Fatalf("resize should drop the far cell, got %v", sim.Live.Cells())
	}
	sim.Advance(nil)
	if sim.Live.Len() != 4 || sim.Generation != 1 {
		t.Fatalf("block should survive on a 2x2 grid, got %v", sim.Live.Cells())
	}
}

func BenchmarkStepAll(b *testing.B) {
	bounds := Bounds{Width: 128, Height: 128}
	sims := make([]*Simulation, 16)
	for i := range sims {
		sims[i] = NewSimulation(RandomDensity(NewRNG(int64(i)), 0.2, bounds), bounds)
	}
	pool := NewCountsPool()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := StepAll(context.Background(), sims, pool); err != nil {
			b.Fatal(err)
		}
	}
}
