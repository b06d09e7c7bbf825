// Package compound combines axis generators into one N-dimensional scan.
//
// A Generator holds an ordered list of dimensions (outermost first), a set
// of excluders and a chain of mutators. The flattened index space is the
// mixed-radix product of the dimension sizes with the last dimension
// varying fastest:
//
//	S        = Π s_j
//	stride_j = Π_{k>j} s_k
//	i_j      = (I / stride_j) mod s_j
//
// Snake. A dimension flagged Alternate runs backwards on every odd pass,
// where pass p = I / (stride_j · s_j) counts how many times the dimension
// has completed. The outermost dimension is always on pass 0 and never
// reverses. Point.Indices records the raw index i_j, not the reversed one.
//
// Exclusion. Excluders are grouped by their ordered axis pair. A point is
// kept when, for every pair, at least one region of that pair contains it
// (OR within a pair, AND across pairs). The mask is computed once by
// Prepare and is read-only afterwards.
//
// Lifecycle:
//
//	g, err := compound.New(dims, excluders, mutators)
//	err = g.Prepare()
//	cur, _ := g.Iterator()
//	for cur.HasNext() {
//		p, _ := cur.Next()
//		...
//	}
//
// After Prepare every lookup is a pure function of the index. PointAt,
// Nth, Excluded and Points may be called from many goroutines at once; a
// Cursor belongs to a single consumer. Prepare itself must not race with
// readers.
package compound
