package service

import (
	"strings"

	"compliance-cms/internal/models"
)

// NavTreeBuilder groups pages into category -> subcategory -> subsubcategory
// buckets. Leaves keep the order in which pages are added.
type NavTreeBuilder struct {
	tree models.NavTree
}

// NewNavTreeBuilder returns an empty builder.
func NewNavTreeBuilder() *NavTreeBuilder {
	return &NavTreeBuilder{tree: models.NavTree{}}
}

// Add places page in the tree if it is shown in the navbar and active.
// Blank grouping levels fall back to the default labels.
func (b *NavTreeBuilder) Add(page models.Page) {
	if !page.ShowInNavbar || !page.IsActive {
		return
	}

	category := orDefault(page.Category, models.DefaultCategory)
	subcategory := orDefault(page.Subcategory, models.DefaultSubcategory)
	subsubcategory := orDefault(page.Subsubcategory, models.DefaultSubsubcategory)

	cat, ok := b.tree[category]
	if !ok {
		cat = models.NavCategory{}
		b.tree[category] = cat
	}
	sub, ok := cat[subcategory]
	if !ok {
		sub = models.NavSubcategory{}
		cat[subcategory] = sub
	}
	sub[subsubcategory] = append(sub[subsubcategory], models.NavLeaf{
		Title: page.Title,
		Slug:  page.Slug,
	})
}

// Tree returns the built tree.
func (b *NavTreeBuilder) Tree() models.NavTree {
	return b.tree
}

// BuildNavTree builds the navigation tree from pages in iteration order.
func BuildNavTree(pages []models.Page) models.NavTree {
	b := NewNavTreeBuilder()
	for _, p := range pages {
		b.Add(p)
	}
	return b.Tree()
}

func orDefault(s, fallback string) string {
	if s = strings.TrimSpace(s); s == "" {
		return fallback
	}
	return s
}
