package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"compliance-cms/internal/models"
)

func navPage(title, slug, cat, sub, subsub string) models.Page {
	return models.Page{
		Title:          title,
		Slug:           slug,
		Category:       cat,
		Subcategory:    sub,
		Subsubcategory: subsub,
		ShowInNavbar:   true,
		IsActive:       true,
	}
}

func TestBuildNavTree(t *testing.T) {
	t.Run("every eligible page appears exactly once", func(t *testing.T) {
		pages := []models.Page{
			navPage("EPR Plastic", "epr-plastic", "EPR", "Plastic", "Producers"),
			navPage("EPR Battery", "epr-battery", "EPR", "Battery", ""),
			navPage("BIS CRS", "bis-crs", "BIS", "", ""),
			navPage("EPR Plastic Brand", "epr-plastic-brand", "EPR", "Plastic", "Producers"),
		}

		tree := BuildNavTree(pages)

		assert.Equal(t, []models.NavLeaf{
			{Title: "EPR Plastic", Slug: "epr-plastic"},
			{Title: "EPR Plastic Brand", Slug: "epr-plastic-brand"},
		}, tree["EPR"]["Plastic"]["Producers"])
		assert.Equal(t, []models.NavLeaf{{Title: "EPR Battery", Slug: "epr-battery"}}, tree["EPR"]["Battery"][models.DefaultSubsubcategory])
		assert.Equal(t, []models.NavLeaf{{Title: "BIS CRS", Slug: "bis-crs"}}, tree["BIS"][models.DefaultSubcategory][models.DefaultSubsubcategory])

		count := 0
		for _, cat := range tree {
			for _, sub := range cat {
				for _, leaves := range sub {
					count += len(leaves)
				}
			}
		}
		assert.Equal(t, len(pages), count)
	})

	t.Run("hidden and inactive pages are left out", func(t *testing.T) {
		hidden := navPage("Hidden", "hidden", "EPR", "Plastic", "")
		hidden.ShowInNavbar = false
		inactive := navPage("Inactive", "inactive", "EPR", "Plastic", "")
		inactive.IsActive = false

		tree := BuildNavTree([]models.Page{hidden, inactive})

		assert.Empty(t, tree)
	})

	t.Run("blank and whitespace groups use fallbacks", func(t *testing.T) {
		tree := BuildNavTree([]models.Page{navPage("Loose", "loose", "  ", " ", "")})

		assert.Equal(t, []models.NavLeaf{{Title: "Loose", Slug: "loose"}},
			tree[models.DefaultCategory][models.DefaultSubcategory][models.DefaultSubsubcategory])
	})

	t.Run("no pages builds an empty tree", func(t *testing.T) {
		tree := BuildNavTree(nil)

		assert.NotNil(t, tree)
		assert.Empty(t, tree)
	})
}

func TestNavTreeBuilder_Incremental(t *testing.T) {
	b := NewNavTreeBuilder()
	b.Add(navPage("A", "a", "WPC", "ETA", ""))
	b.Add(navPage("B", "b", "WPC", "ETA", ""))

	leaves := b.Tree()["WPC"]["ETA"][models.DefaultSubsubcategory]
	assert.Equal(t, []string{"a", "b"}, []string{leaves[0].Slug, leaves[1].Slug})
}
