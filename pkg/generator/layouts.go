package generator

import (
	"context"
	"fmt"

	"github.com/sitewerk/sitewerk/pkg/domain"
	"github.com/sitewerk/sitewerk/pkg/logger"
)

// layoutPools maps each industry key to its ordered pool of eligible
// archetype ids. Static configuration; pools are 3-4 entries so the rotation
// produces visible variety between same-industry sites.
var layoutPools = map[string][]string{
	IndustryBeauty:      {"elegant", "serene", "fresh", "noir"},
	IndustryFood:        {"warm", "craft", "vibrant", "classic"},
	IndustryTrades:      {"bold", "modern", "corporate"},
	IndustryMedical:     {"serene", "modern", "corporate"},
	IndustryFitness:     {"bold", "vibrant", "noir"},
	IndustryAutomotive:  {"bold", "noir", "corporate"},
	IndustryLegal:       {"corporate", "classic", "elegant"},
	IndustryRetail:      {"fresh", "playful", "vibrant", "classic"},
	IndustryHospitality: {"warm", "elegant", "classic"},
	IndustryTech:        {"modern", "bold", "playful"},
	IndustryGeneral:     {"modern", "fresh", "corporate", "warm"},
}

// PoolFor returns the ordered archetype pool for an industry key. Unknown
// keys get the generic pool so callers always receive a non-empty slice.
func PoolFor(industryKey string) []string {
	if pool, ok := layoutPools[industryKey]; ok {
		return pool
	}
	return layoutPools[IndustryGeneral]
}

const layoutCounterPrefix = "layout_counter:"

// Assigner hands out archetypes round-robin per industry, backed by an
// atomic counter in external storage. Consecutive assignments for the same
// industry never repeat an archetype (pool length permitting); the counter
// is the only mutable shared state in the whole pipeline.
type Assigner struct {
	counters domain.CounterStore
	log      logger.Logger
}

// NewAssigner creates a round-robin layout assigner.
func NewAssigner(counters domain.CounterStore, log logger.Logger) *Assigner {
	if log == nil {
		log = logger.Default()
	}
	return &Assigner{counters: counters, log: log}
}

// NextArchetype returns the next archetype id for the industry. The counter
// value observed before increment indexes the pool, so N sequential calls
// cycle the pool exactly once before wrapping.
//
// When the counter store is unreachable the assigner degrades to the
// deterministic hash of the seed instead of failing the generation: still
// deterministic per business identity, but the no-immediate-repeat guarantee
// weakens to "probably different". The outage is logged, never surfaced.
func (a *Assigner) NextArchetype(ctx context.Context, industryKey, seed string) string {
	pool := PoolFor(industryKey)

	if a.counters != nil {
		next, err := a.counters.GetAndIncrement(ctx, layoutCounterKey(industryKey))
		if err == nil {
			before := next - 1
			if before < 0 {
				before = 0
			}
			return pool[int(before%int64(len(pool)))]
		}
		a.log.Warn("layout counter store unavailable, falling back to hash selection",
			"industry", industryKey, "error", err)
	}

	return pool[PickIndex(seed, len(pool))]
}

func layoutCounterKey(industryKey string) string {
	return fmt.Sprintf("%s%s", layoutCounterPrefix, industryKey)
}
