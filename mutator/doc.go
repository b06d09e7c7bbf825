// Package mutator post-processes scan points.
//
// A Mutator receives a finished Point together with its position in the
// scan and returns a modified copy. Mutators never touch the Point they
// are given, so the same Point may be passed through several of them.
//
// RandomOffset is deterministic: the offset applied to the point with
// index i depends only on the seed and i, never on how many points were
// drawn before it. Points may therefore be produced out of order or in
// parallel without changing the result.
package mutator
