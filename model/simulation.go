package model

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Simulation is one independent board: its live cells, bounds and the number
// of generations computed so far.
type Simulation struct {
	Live       LiveSet
	Bounds     Bounds
	Generation int
}

// NewSimulation starts a simulation at generation 0 from seed
func NewSimulation(seed LiveSet, bounds Bounds) *Simulation {
	return &Simulation{Live: seed.Clip(bounds), Bounds: bounds}
}

// Advance swaps in the next generation
func (s *Simulation) Advance(pool *CountsPool) {
	s.Live = pool.Step(s.Live, s.Bounds)
	s.Generation++
}

// Resize changes the bounds used from the next tick on and drops cells that
// no longer fit.
func (s *Simulation) Resize(bounds Bounds) {
	s.Bounds = bounds
	s.Live = s.Live.Clip(bounds)
}

// StepAll advances every simulation by one generation in parallel.
// Simulations share no state, so no coordination beyond the wait is needed.
// If ctx is cancelled, simulations that have not started yet are left as they
// were and the context error is returned.
func StepAll(ctx context.Context, sims []*Simulation, pool *CountsPool) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i, sim := range sims {
		if sim == nil {
			continue
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrapf(err, "[StepAll] simulation %d not advanced", i)
			}
			sim.Advance(pool)
			return nil
		})
	}

	return eg.Wait()
}
