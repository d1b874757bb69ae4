package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashIsStable(t *testing.T) {
	seeds := []string{
		"Schmidt Dachdecker GmbH",
		"Café Lindenhof",
		"a",
		"Zahnarztpraxis Dr. Müller",
	}

	for _, seed := range seeds {
		first := Hash(seed)
		for i := 0; i < 100; i++ {
			assert.Equal(t, first, Hash(seed), "hash drifted for seed %q", seed)
		}
		assert.GreaterOrEqual(t, first, 0, "hash must be non-negative for %q", seed)
	}
}

func TestHashEmptySeed(t *testing.T) {
	assert.Equal(t, 0, Hash(""))
	assert.Equal(t, 0, PickIndex("", 7))
}

func TestHashDistinguishesSeeds(t *testing.T) {
	// Not a collision-resistance claim, just a sanity check that the hash
	// actually depends on its input.
	assert.NotEqual(t, Hash("Schmidt Dachdecker GmbH"), Hash("Café Lindenhof"))
}

func TestPickIndex(t *testing.T) {
	idx := PickIndex("Schmidt Dachdecker GmbH", 5)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, 5)

	for i := 0; i < 100; i++ {
		assert.Equal(t, idx, PickIndex("Schmidt Dachdecker GmbH", 5))
	}

	assert.Equal(t, 0, PickIndex("anything", 0), "degenerate pool size must not panic")
	assert.Equal(t, 0, PickIndex("anything", -3))
}
