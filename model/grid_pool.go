package model

import "sync"

// CountsPool recycles NeighborCounts maps between ticks so a long running
// simulation does not reallocate its working map every generation.
// A nil *CountsPool is valid and allocates fresh maps.
type CountsPool struct {
	pool sync.Pool
}

func NewCountsPool() *CountsPool {
	return &CountsPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(NeighborCounts)
			},
		},
	}
}

// Get retrieves an empty NeighborCounts map
func (p *CountsPool) Get() NeighborCounts {
	if p == nil {
		return make(NeighborCounts)
	}
	return p.pool.Get().(NeighborCounts)
}

// Put empties counts and returns it to the pool
func (p *CountsPool) Put(counts NeighborCounts) {
	if p == nil || counts == nil {
		return
	}
	clear(counts)
	p.pool.Put(counts)
}

// Step behaves exactly like the package level Step, using a pooled map for
// the neighbor counts.
func (p *CountsPool) Step(live LiveSet, bounds Bounds) LiveSet {
	if p == nil {
		return Step(live, bounds)
	}
	counts := p.Get()
	defer p.Put(counts)
	return step(live, bounds, counts)
}
