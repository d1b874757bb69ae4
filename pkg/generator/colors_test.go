package generator

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnColorLiteralPairs(t *testing.T) {
	// The warm food palette pair: white clears 3.0:1 on the orange primary.
	assert.Equal(t, "#ffffff", OnColor("#e85d04"))
	assert.GreaterOrEqual(t, ContrastRatio("#ffffff", "#e85d04"), 3.0)

	// Near-white backgrounds get the near-black fallback.
	assert.Equal(t, fallbackDarkText, OnColor("#fefcf8"))
	assert.Equal(t, fallbackDarkText, OnColor("#ffffff"))

	// Dark backgrounds keep white.
	assert.Equal(t, "#ffffff", OnColor("#0c0a09"))
}

func TestContrastRatioKnownValues(t *testing.T) {
	// Black on white is the WCAG maximum.
	assert.InDelta(t, 21.0, ContrastRatio("#000000", "#ffffff"), 0.01)
	// Symmetry.
	assert.Equal(t, ContrastRatio("#e85d04", "#ffffff"), ContrastRatio("#ffffff", "#e85d04"))
	// Identical colors are 1.0.
	assert.InDelta(t, 1.0, ContrastRatio("#336699", "#336699"), 0.0001)
}

// Every curated palette must produce on-colors that clear the large-text
// contrast threshold against their paired base. This is the invariant the
// rendering layer relies on without re-checking.
func TestAllPalettesSatisfyContrastInvariant(t *testing.T) {
	for industry, pool := range ColorPools() {
		for i, scheme := range pool {
			pairs := []struct {
				on, base, name string
			}{
				{scheme.OnPrimary, scheme.Primary, "onPrimary"},
				{scheme.OnSecondary, scheme.Secondary, "onSecondary"},
				{scheme.OnAccent, scheme.Accent, "onAccent"},
				{scheme.OnSurface, scheme.Surface, "onSurface"},
				{scheme.OnBackground, scheme.Background, "onBackground"},
			}
			for _, p := range pairs {
				t.Run(fmt.Sprintf("%s/%d/%s", industry, i, p.name), func(t *testing.T) {
					require.NotEmpty(t, p.on)
					ratio := ContrastRatio(p.on, p.base)
					assert.GreaterOrEqual(t, ratio, 3.0,
						"%s %s on %s only reaches %.2f:1", p.name, p.on, p.base, ratio)
				})
			}
		}
	}
}

func TestSchemeForIsDeterministic(t *testing.T) {
	first := SchemeFor(IndustryFood, "Café Lindenhof")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, SchemeFor(IndustryFood, "Café Lindenhof"))
	}
}

func TestSchemeForEmptySeed(t *testing.T) {
	s := SchemeFor(IndustryBeauty, "")
	assert.NotEmpty(t, s.Primary)
	assert.NotEmpty(t, s.OnPrimary)
	assert.Equal(t, s, SchemeFor(IndustryBeauty, ""))
}

func TestSchemeForUnknownIndustry(t *testing.T) {
	s := SchemeFor("zeppelin-repair", "Luftschiff Werke")
	assert.NotEmpty(t, s.Primary, "unknown industries fall back to the general pool")
}
