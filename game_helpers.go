package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const periodicRefresh = 200

// game owns the current simulation state for the lifetime of the process
type game struct {
	config   utils.Config
	sim      *model.Simulation
	pool     *model.CountsPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	history  model.History
	rng      *rand.Rand

	stagnantCount  int
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) *game {
	var pool *model.CountsPool
	if config.UseMemoryPool {
		pool = model.NewCountsPool()
	}

	rng := model.NewRNG(config.Seed)
	bounds := config.Bounds()

	return &game{
		config:   config,
		sim:      model.NewSimulation(model.InterestingPatterns(rng, config.RandomDensity, bounds), bounds),
		pool:     pool,
		renderer: &model.TerminalRenderer{},
		stats:    utils.NewStats(),
		rng:      rng,
	}
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Printf("Features: Memory Pool: %v | Seed: %d | Tick: %v\n",
		g.config.UseMemoryPool, g.config.Seed, g.config.FrameRate)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		g.sim.Bounds.Width, g.sim.Bounds.Height, g.sim.Live.Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState records the current generation and reports its status
func (g *game) updateGameState(lastFrameTime time.Time) (int, float64, string, bool) {
	livingCells := g.sim.Live.Len()
	density := float64(livingCells) / float64(g.sim.Bounds.Area()) * 100

	g.stats.Update(g.sim.Generation, livingCells, time.Since(lastFrameTime))

	// Compare against previous generations before recording this one
	isStagnant := g.history.IsStagnant(g.sim.Live)
	g.history.Record(g.sim.Live)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", g.sim.Generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func (g *game) displayGameStatus(livingCells int, density float64, status string) {
	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.sim.Generation, livingCells, density, status)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.PeakPopulation,
		time.Since(g.stats.StartTime).Seconds())

	if g.sim.Generation > g.lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", g.sim.Generation-g.lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount, generation int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the board, keeping the generation counter running
func (g *game) restartGame() {
	fmt.Printf("\n🔄 Restarting...\n")

	generation := g.sim.Generation
	bounds := g.sim.Bounds
	g.sim = model.NewSimulation(model.InterestingPatterns(g.rng, g.config.RandomDensity, bounds), bounds)
	g.sim.Generation = generation
	g.lastRestartGen = generation
	g.stagnantCount = 0
	g.history.Reset()

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", g.sim.Live.Len())
}

// tick renders the current generation and advances to the next one.
// It reports false once the generation limit is reached.
func (g *game) tick(lastFrameTime time.Time) bool {
	g.renderer.Clear()

	livingCells, density, status, isStagnant := g.updateGameState(lastFrameTime)
	if isStagnant {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}

	g.displayGameStatus(livingCells, density, status)
	g.renderer.Display(g.sim.Live, g.sim.Bounds)

	if g.config.MaxGenerations > 0 && g.sim.Generation >= g.config.MaxGenerations {
		fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
		return false
	}

	shouldRestart, restartReason := checkRestartConditions(livingCells, g.stagnantCount, g.sim.Generation, g.config)
	if shouldRestart && g.config.AutoRestart {
		fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
		g.restartGame()
	} else if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
		// Inject some life to try to break the stagnation
		g.sim.Live = model.Inject(g.sim.Live, g.rng, g.config.InjectionCount, g.sim.Bounds)
	}

	g.sim.Advance(g.pool)
	return true
}

// run ticks at the configured wall-clock interval until ctx is done or the
// generation limit is reached.
func (g *game) run(ctx context.Context) error {
	ticker := time.NewTicker(g.config.FrameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		frameStart := time.Now()
		if !g.tick(lastFrameTime) {
			return nil
		}
		lastFrameTime = frameStart

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// displayFinalStats prints a summary on shutdown
func (g *game) displayFinalStats() {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		g.sim.Generation, time.Since(g.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}
