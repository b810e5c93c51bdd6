package main

import (
	"testing"

	"github.com/sheikhrachel/sparse-gol/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()
	cases := []struct {
		name                         string
		living, stagnant, generation int
		expectRestart                bool
		expectReason                 string
	}{
		{"extinct", 0, 0, 10, true, "extinction"},
		{"stagnant", 5, config.StagnationThreshold, 10, true, "stagnation detected"},
		{"refresh", 5, 0, periodicRefresh, true, "periodic refresh"},
		{"active", 5, 1, 11, false, ""},
		{"first generation", 5, 0, 0, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tc.living, tc.stagnant, tc.generation, config)
			if restart != tc.expectRestart || reason != tc.expectReason {
				t.Fatalf("got (%v, %q), expected (%v, %q)", restart, reason, tc.expectRestart, tc.expectReason)
			}
		})
	}
}

func TestRestartGameKeepsGenerationCount(t *testing.T) {
	config := utils.DefaultConfig()
	config.Seed = 3
	g := initializeGame(config)
	for range 3 {
		g.sim.Advance(g.pool)
	}
	g.stagnantCount = 4

	g.restartGame()

	if g.sim.Generation != 3 || g.lastRestartGen != 3 || g.stagnantCount != 0 {
		t.Fatalf("unexpected state after restart: gen=%d last=%d stagnant=%d",
			g.sim.Generation, g.lastRestartGen, g.stagnantCount)
	}
	if g.sim.Bounds != config.Bounds() {
		t.Fatalf("bounds changed on restart: %+v", g.sim.Bounds)
	}
}
