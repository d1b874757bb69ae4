package generator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitewerk/sitewerk/pkg/logger"
)

type memCounterStore struct {
	mu       sync.Mutex
	counters map[string]int64
	fail     bool
}

func newMemCounterStore() *memCounterStore {
	return &memCounterStore{counters: make(map[string]int64)}
}

func (m *memCounterStore) GetAndIncrement(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return 0, errors.New("counter store down")
	}
	m.counters[key]++
	return m.counters[key], nil
}

func TestNextArchetypeCyclesPoolBeforeRepeating(t *testing.T) {
	store := newMemCounterStore()
	a := NewAssigner(store, logger.Default())
	ctx := context.Background()

	pool := PoolFor(IndustryFood)
	require.GreaterOrEqual(t, len(pool), 3)

	got := make([]string, 0, len(pool))
	for i := 0; i < len(pool); i++ {
		got = append(got, a.NextArchetype(ctx, IndustryFood, "seed"))
	}

	// First full cycle visits every pool member exactly once, in pool order.
	assert.Equal(t, pool, got)

	// The next call wraps back to the first entry.
	assert.Equal(t, pool[0], a.NextArchetype(ctx, IndustryFood, "seed"))
}

func TestNextArchetypeCountersArePerIndustry(t *testing.T) {
	store := newMemCounterStore()
	a := NewAssigner(store, logger.Default())
	ctx := context.Background()

	first := a.NextArchetype(ctx, IndustryFood, "x")
	// Advancing a different industry's counter must not move food's rotation.
	a.NextArchetype(ctx, IndustryTrades, "x")
	a.NextArchetype(ctx, IndustryTrades, "x")

	second := a.NextArchetype(ctx, IndustryFood, "x")
	pool := PoolFor(IndustryFood)
	assert.Equal(t, pool[0], first)
	assert.Equal(t, pool[1], second)
}

func TestNextArchetypeFallsBackToHashOnStoreFailure(t *testing.T) {
	store := newMemCounterStore()
	store.fail = true
	a := NewAssigner(store, logger.Default())
	ctx := context.Background()

	pool := PoolFor(IndustryBeauty)
	want := pool[PickIndex("Haarstudio Anke", len(pool))]

	// Degraded mode is deterministic per seed and never errors.
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, a.NextArchetype(ctx, IndustryBeauty, "Haarstudio Anke"))
	}
}

func TestNextArchetypeNilStoreUsesHash(t *testing.T) {
	a := NewAssigner(nil, logger.Default())
	pool := PoolFor(IndustryGeneral)
	want := pool[PickIndex("Mustermann", len(pool))]
	assert.Equal(t, want, a.NextArchetype(context.Background(), IndustryGeneral, "Mustermann"))
}

func TestEveryPoolEntryResolvesToRegisteredArchetype(t *testing.T) {
	for industry, pool := range layoutPools {
		for _, id := range pool {
			arch := Archetype(id)
			assert.Equal(t, id, arch.ID, "pool %s references unknown archetype %s", industry, id)
		}
	}
}
