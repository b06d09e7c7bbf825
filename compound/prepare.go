package compound

import (
	"fmt"
	"time"

	"github.com/katalvlaran/scanpath/excluder"
)

// Prepare computes the derived state: strides, per-dimension position
// tables, the exclusion mask, the surviving index list and the shape.
// It may be called again; every call recomputes from scratch.
//
// Complexity: O(S · (A + E)) time and O(S) memory, where S is the flat
// size, A the axis count and E the excluder count.
func (g *Generator) Prepare() error {
	start := time.Now()
	var p prepared

	n := len(g.dims)
	p.sizes = make([]int, n)
	p.strides = make([]int, n)
	p.tables = make([][][]float64, n)
	p.alt = make([]bool, n)
	p.flat = 1
	for j := n - 1; j >= 0; j-- {
		s := g.dims[j].Size()
		p.sizes[j] = s
		p.alt[j] = g.dims[j].Alternate()
		p.strides[j] = p.flat
		p.flat *= s

		tbl := make([][]float64, s)
		for i := 0; i < s; i++ {
			tbl[i] = g.dims[j].PositionAt(i)
		}
		p.tables[j] = tbl
	}

	raw, eff := make([]int, n), make([]int, n)
	keep, err := g.keepMask(p.flat, g.groups(0, n-1), func(I int, vals []float64) {
		p.locals(I, raw, eff)
		p.fill(eff, vals)
	})
	if err != nil {
		return fmt.Errorf("compound.Prepare: %w", err)
	}
	p.mask = make([]bool, p.flat)
	p.kept = make([]int, 0, p.flat)
	for I, k := range keep {
		p.mask[I] = !k
		if k {
			p.kept = append(p.kept, I)
		}
	}

	p.shape, err = g.computeShape(&p)
	if err != nil {
		return fmt.Errorf("compound.Prepare: %w", err)
	}
	p.ready = true
	g.prepared = p

	g.logger.Debug("compound: prepared",
		"dimensions", n,
		"axes", g.axes,
		"flat_size", p.flat,
		"size", len(p.kept),
		"excluders", len(g.excluders),
		"mutators", len(g.mutators),
		"shape", p.shape,
		"elapsed", time.Since(start),
	)
	return nil
}

// locals writes the raw and effective (snake-adjusted) local index of every
// dimension for flat index I.
func (p *prepared) locals(I int, raw, eff []int) {
	for j, s := range p.sizes {
		q := I / p.strides[j]
		i := q % s
		raw[j] = i
		eff[j] = i
		if p.alt[j] && (q/s)%2 == 1 {
			eff[j] = s - 1 - i
		}
	}
}

// fill writes the position of every axis at local indices eff into vals,
// indexed by axis slot.
func (p *prepared) fill(eff []int, vals []float64) {
	slot := 0
	for j, i := range eff {
		slot += copy(vals[slot:], p.tables[j][i])
	}
}

// exclRef is an excluder with its axes resolved to slots.
type exclRef struct {
	e    *excluder.Excluder
	x, y int
}

// groups returns the excluders whose axes both lie in dimensions [lo, hi],
// grouped by axis pair in order of first appearance.
func (g *Generator) groups(lo, hi int) [][]exclRef {
	var out [][]exclRef
	at := make(map[string]int)
	for _, e := range g.excluders {
		ax := e.Axes()
		dx, dy := g.axisDim[ax[0]], g.axisDim[ax[1]]
		if dx < lo || dx > hi || dy < lo || dy > hi {
			continue
		}
		ref := exclRef{e: e, x: g.slot[ax[0]], y: g.slot[ax[1]]}
		k, ok := at[e.Key()]
		if !ok {
			k = len(out)
			at[e.Key()] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], ref)
	}
	return out
}

// keepMask evaluates groups over n index combinations. fill writes the
// position of every axis slot for combination c. The result is true where a
// combination survives.
func (g *Generator) keepMask(n int, groups [][]exclRef, fill func(c int, vals []float64)) ([]bool, error) {
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	if len(groups) == 0 || n == 0 {
		return keep, nil
	}

	type column struct {
		slot int
		vals []float64
	}
	var cols []column
	colOf := make(map[int]int)
	for _, grp := range groups {
		for _, r := range grp {
			for _, s := range [2]int{r.x, r.y} {
				if _, ok := colOf[s]; !ok {
					colOf[s] = len(cols)
					cols = append(cols, column{slot: s, vals: make([]float64, n)})
				}
			}
		}
	}

	vals := make([]float64, len(g.axes))
	for c := 0; c < n; c++ {
		fill(c, vals)
		for _, col := range cols {
			col.vals[c] = vals[col.slot]
		}
	}

	union := make([]bool, n)
	for _, grp := range groups {
		for i := range union {
			union[i] = false
		}
		for _, r := range grp {
			in, err := r.e.Mask(cols[colOf[r.x]].vals, cols[colOf[r.y]].vals)
			if err != nil {
				return nil, err
			}
			for i, v := range in {
				union[i] = union[i] || v
			}
		}
		for i := range keep {
			keep[i] = keep[i] && union[i]
		}
	}
	return keep, nil
}
