package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryCategoryHasSubcategories(t *testing.T) {
	for _, cat := range Categories() {
		children := SubcategoriesOf(cat.ID)
		require.NotEmpty(t, children, "category %s has no subcategories", cat.ID)
		for _, sub := range children {
			assert.Equal(t, cat.ID, sub.Parent)
		}
	}
}

func TestEverySubcategoryHasDeclaredParent(t *testing.T) {
	for _, sub := range Subcategories() {
		assert.True(t, ValidCategory(sub.Parent), "subcategory %s points at unknown parent %s", sub.ID, sub.Parent)
	}
}

func TestSlugUniqueness(t *testing.T) {
	seenCats := make(map[CategoryID]bool)
	for _, cat := range Categories() {
		assert.False(t, seenCats[cat.ID], "duplicate category slug %s", cat.ID)
		seenCats[cat.ID] = true
	}
	seenSubs := make(map[SubcategoryID]bool)
	for _, sub := range Subcategories() {
		assert.False(t, seenSubs[sub.ID], "duplicate subcategory slug %s", sub.ID)
		seenSubs[sub.ID] = true
	}
}

func TestLookups(t *testing.T) {
	cat, ok := CategoryByID(SoftwareDev)
	require.True(t, ok)
	assert.Equal(t, "Software Development", cat.Name)

	sub, ok := SubcategoryByID("blog-articles")
	require.True(t, ok)
	assert.Equal(t, ContentWriting, sub.Parent)

	_, ok = CategoryByID("nonsense")
	assert.False(t, ok)
	_, ok = SubcategoryByID("nonsense")
	assert.False(t, ok)
}

func TestFirstSubcategoryOf(t *testing.T) {
	// The first declared child doubles as the category default.
	assert.Equal(t, SubcategoryID("ai-ml-development"), FirstSubcategoryOf(SoftwareDev))
	assert.Equal(t, SubcategoryID("blog-articles"), FirstSubcategoryOf(ContentWriting))
	assert.Equal(t, Uncategorized, FirstSubcategoryOf("nonsense"))
}

func TestGeneralFallbackPairIsDeclared(t *testing.T) {
	require.True(t, ValidCategory(General))
	require.True(t, ValidSubcategory(Uncategorized))
	sub, _ := SubcategoryByID(Uncategorized)
	assert.Equal(t, General, sub.Parent)
}

func TestDeclarationOrderIsStable(t *testing.T) {
	// Keyword scoring breaks ties on declaration order, so the first two
	// categories are pinned.
	cats := Categories()
	require.GreaterOrEqual(t, len(cats), 2)
	assert.Equal(t, SoftwareDev, cats[0].ID)
	assert.Equal(t, ContentWriting, cats[1].ID)
}
