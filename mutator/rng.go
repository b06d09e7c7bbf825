package mutator

import "math/rand"

// defaultSeed replaces seed==0 so that the zero value still yields a
// reproducible stream.
const defaultSeed int64 = 1

// deriveSeed mixes a parent seed and a stream identifier (the point index)
// into an independent 64-bit seed using the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// pointRNG returns the generator dedicated to point index.
// math/rand.Rand is not goroutine-safe; each call returns a fresh one.
func pointRNG(seed int64, index int) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, uint64(index))))
}
