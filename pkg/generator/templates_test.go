package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTemplateRefsRanksByCategoryOverlap(t *testing.T) {
	refs := SelectTemplateRefs("restaurant", "Trattoria Milano", 3)
	require.Len(t, refs, 3)

	// The two dedicated food templates outrank everything else.
	assert.Equal(t, "tpl-trattoria", refs[0].ID)
	assert.Equal(t, "tpl-corner-cafe", refs[1].ID)
}

func TestSelectTemplateRefsNeverDuplicatesOrOverflows(t *testing.T) {
	for _, n := range []int{1, 3, 5, 10, 50} {
		refs := SelectTemplateRefs("Friseursalon", "Haarstudio Anke", n)
		assert.LessOrEqual(t, len(refs), n)
		seen := make(map[string]bool)
		for _, r := range refs {
			assert.False(t, seen[r.ID], "duplicate template %s at n=%d", r.ID, n)
			seen[r.ID] = true
		}
	}
}

func TestSelectTemplateRefsPadsWithGenericTemplates(t *testing.T) {
	// Legal only has one dedicated template; asking for more pulls in the
	// consulting/business generics instead of returning short.
	refs := SelectTemplateRefs("Anwaltskanzlei", "Kanzlei Bergmann", 4)
	require.Len(t, refs, 4)
	assert.Equal(t, "tpl-kanzlei", refs[0].ID)
	for _, r := range refs[1:] {
		assert.True(t, hasCategory(r, "consulting") || hasCategory(r, fallbackCategory),
			"padding entry %s is not a generic template", r.ID)
	}
}

func TestSelectTemplateRefsDegenerateInputs(t *testing.T) {
	assert.Nil(t, SelectTemplateRefs("café", "Café Lindenhof", 0))
	assert.Nil(t, SelectTemplateRefs("café", "Café Lindenhof", -1))

	// Unknown businesses classify as general and still get grounded.
	refs := SelectTemplateRefs("", "", 3)
	require.NotEmpty(t, refs)
	for _, r := range refs {
		assert.NotEmpty(t, r.ImageURL)
		assert.NotEmpty(t, r.StyleHint)
	}
}

func TestSelectTemplateRefsIsDeterministic(t *testing.T) {
	first := SelectTemplateRefs("Webdesign", "Pixelschmiede", 3)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, SelectTemplateRefs("Webdesign", "Pixelschmiede", 3))
	}
}
