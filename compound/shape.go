package compound

// computeShape collapses every run of dimensions linked by an excluder into one
// entry holding the number of surviving combinations of that run. Other
// dimensions keep their size. Snake order only permutes positions within a
// pass, so runs are counted in raw order.
func (g *Generator) computeShape(p *prepared) ([]int, error) {
	n := len(g.dims)
	reach := make([]int, n)
	linked := make([]bool, n)
	for j := range reach {
		reach[j] = j
	}
	for _, e := range g.excluders {
		ax := e.Axes()
		a, b := g.axisDim[ax[0]], g.axisDim[ax[1]]
		if a > b {
			a, b = b, a
		}
		linked[a] = true
		if reach[a] < b {
			reach[a] = b
		}
	}

	var out []int
	for lo := 0; lo < n; {
		hi := reach[lo]
		run := linked[lo]
		for k := lo + 1; k <= hi; k++ {
			run = run || linked[k]
			if reach[k] > hi {
				hi = reach[k]
			}
		}
		if !run {
			out = append(out, p.sizes[lo])
			lo++
			continue
		}
		c, err := g.countRun(p, lo, hi)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		lo = hi + 1
	}
	return out, nil
}

// countRun counts the combinations of dimensions [lo, hi] that survive the
// excluders confined to them.
func (g *Generator) countRun(p *prepared, lo, hi int) (int, error) {
	total := 1
	for j := lo; j <= hi; j++ {
		total *= p.sizes[j]
	}
	keep, err := g.keepMask(total, g.groups(lo, hi), func(c int, vals []float64) {
		for j := hi; j >= lo; j-- {
			s := p.sizes[j]
			i := c % s
			c /= s
			base := g.slot[g.dims[j].Axes()[0]]
			for k, v := range p.tables[j][i] {
				vals[base+k] = v
			}
		}
	})
	if err != nil {
		return 0, err
	}
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}
	return n, nil
}

// Shape returns the scan shape once prepared: one entry per dimension, with
// dimensions joined by excluders collapsed into a single entry. The product
// of Shape equals Size. Returns nil before Prepare.
func (g *Generator) Shape() []int {
	if !g.ready {
		return nil
	}
	return append([]int(nil), g.shape...)
}

// Rank is len(Shape()).
func (g *Generator) Rank() int { return len(g.Shape()) }
