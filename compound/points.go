package compound

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/mutator"
)

// pointChunk is the number of points a worker claims at a time.
const pointChunk = 1024

// pointAt assembles the point at flat index I. The receiver must be prepared.
func (g *Generator) pointAt(I int) core.Point {
	n := len(g.dims)
	p := core.NewPoint(len(g.axes), n)
	eff := make([]int, n)
	g.locals(I, p.Indices, eff)
	for j, i := range eff {
		pos := g.tables[j][i]
		for k, a := range g.dims[j].Axes() {
			p.Positions[a] = pos[k]
		}
	}
	return mutator.Apply(g.mutators, p, I)
}

// PointAt returns the mutated point at flat index I in [0, FlatSize),
// whether or not it is excluded.
func (g *Generator) PointAt(I int) (core.Point, error) {
	if !g.ready {
		return core.Point{}, fmt.Errorf("compound.PointAt: %w", ErrNotPrepared)
	}
	if I < 0 || I >= g.flat {
		return core.Point{}, fmt.Errorf("compound.PointAt(%d): size %d: %w", I, g.flat, ErrOutOfRange)
	}
	return g.pointAt(I), nil
}

// Nth returns the k-th surviving point, k in [0, Size).
func (g *Generator) Nth(k int) (core.Point, error) {
	if !g.ready {
		return core.Point{}, fmt.Errorf("compound.Nth: %w", ErrNotPrepared)
	}
	if k < 0 || k >= len(g.kept) {
		return core.Point{}, fmt.Errorf("compound.Nth(%d): size %d: %w", k, len(g.kept), ErrOutOfRange)
	}
	return g.pointAt(g.kept[k]), nil
}

// Excluded reports whether flat index I is skipped. Indices outside the
// flat range, and every index before Prepare, report false.
func (g *Generator) Excluded(I int) bool {
	if !g.ready || I < 0 || I >= g.flat {
		return false
	}
	return g.mask[I]
}

// Points materializes every surviving point in scan order, fanning out over
// workers goroutines (GOMAXPROCS when workers <= 0). Cancellation of ctx is
// checked between chunks and returned as ctx.Err().
func (g *Generator) Points(ctx context.Context, workers int) ([]core.Point, error) {
	if !g.ready {
		return nil, fmt.Errorf("compound.Points: %w", ErrNotPrepared)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]core.Point, len(g.kept))
	chunks := (len(out) + pointChunk - 1) / pointChunk
	if workers > chunks {
		workers = chunks
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range next {
				hi := min((c+1)*pointChunk, len(out))
				for k := c * pointChunk; k < hi; k++ {
					out[k] = g.pointAt(g.kept[k])
				}
			}
		}()
	}

	var err error
feed:
	for c := 0; c < chunks; c++ {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case next <- c:
		}
	}
	close(next)
	wg.Wait()

	if err != nil {
		return nil, err
	}
	return out, nil
}
