package mutator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeedZeroPolicy(t *testing.T) {
	assert.Equal(t, deriveSeed(defaultSeed, 3), deriveSeed(0, 3))
}

func TestDeriveSeedSpreads(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := uint64(0); i < 1000; i++ {
		seen[deriveSeed(7, i)] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}
