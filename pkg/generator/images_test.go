package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImagesForIsDeterministic(t *testing.T) {
	first := ImagesFor(IndustryFood, "Café Lindenhof")
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, ImagesFor(IndustryFood, "Café Lindenhof"))
	}
}

func TestImagesForEmptySeedPicksFirstSet(t *testing.T) {
	got := ImagesFor(IndustryBeauty, "")
	assert.Equal(t, imagePools[IndustryBeauty][0], got)
}

func TestImagesForUnknownIndustryFallsBack(t *testing.T) {
	got := ImagesFor("submarines", "Nautilus GmbH")
	want := imagePools[IndustryGeneral][PickIndex("Nautilus GmbH", len(imagePools[IndustryGeneral]))]
	assert.Equal(t, want, got)
}

func TestImagePoolsAreComplete(t *testing.T) {
	for _, rule := range industryRules {
		pool, ok := imagePools[rule.key]
		require.True(t, ok, "industry %s has no image pool", rule.key)
		for _, set := range pool {
			assert.NotEmpty(t, set.Hero)
			assert.NotEmpty(t, set.Gallery)
			for _, url := range set.Gallery {
				assert.Contains(t, url, "https://", "gallery entries are absolute URLs")
			}
		}
	}
}
