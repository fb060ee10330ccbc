package service

import (
	"fmt"
	"sort"
	"strings"

	apperrors "compliance-cms/internal/errors"
	"compliance-cms/internal/models"
	"compliance-cms/internal/sanitize"
)

// projectUploads are the stored images of one project request.
type projectUploads struct {
	about    *models.Asset
	whoNeeds *models.Asset
	cards    map[int]models.Asset
}

func (u projectUploads) all() []models.Asset {
	var assets []models.Asset
	if u.about != nil {
		assets = append(assets, *u.about)
	}
	if u.whoNeeds != nil {
		assets = append(assets, *u.whoNeeds)
	}
	for _, i := range sortedKeys(u.cards) {
		assets = append(assets, u.cards[i])
	}
	return assets
}

// checkProjectMerge reports whether req and files can be merged into p. It
// runs before anything is uploaded. Cards and faqs merge by position, so an
// entry past the end of the existing list is new and must be complete.
func checkProjectMerge(p *models.Project, req *models.ProjectRequest, files models.ProjectFiles) error {
	for i, in := range req.Cards {
		if i < len(p.Cards) {
			continue
		}
		if blank(in.Title) || blank(in.Description) {
			return apperrors.ErrProjectCardRequired
		}
		if files.CardImages[i] == nil {
			return apperrors.ErrProjectCardImage
		}
	}

	for i := range files.CardImages {
		if i < 0 || (i >= len(p.Cards) && i >= len(req.Cards)) {
			return apperrors.Validation(fmt.Sprintf("card image %d has no matching card", i))
		}
	}

	for i, in := range req.FAQs {
		if i < len(p.FAQs) {
			continue
		}
		if blank(in.Question) || blank(in.Answer) {
			return apperrors.ErrProjectFAQRequired
		}
	}
	return nil
}

// mergeProject applies req and the uploaded images onto p and returns the
// assets that were replaced. Nil fields keep their current value, string
// lists are replaced when present. Merging the same request twice gives the
// same document as merging it once.
func mergeProject(p *models.Project, req *models.ProjectRequest, up projectUploads) []models.Asset {
	var replaced []models.Asset
	replaceAsset := func(dst *models.Asset, a *models.Asset) {
		if a == nil {
			return
		}
		if !dst.IsZero() && dst.PublicID != a.PublicID {
			replaced = append(replaced, *dst)
		}
		*dst = *a
	}

	setText(&p.Slug, req.Slug)
	setText(&p.Title, req.Title)

	if h := req.Hero; h != nil {
		setText(&p.Hero.Title, h.Title)
		setHTML(&p.Hero.Description, h.Description)
	}

	if a := req.About; a != nil {
		setText(&p.About.Title, a.Title)
		setHTML(&p.About.Description, a.Description)
	}
	replaceAsset(&p.About.Asset, up.about)

	if w := req.WhoNeeds; w != nil {
		setText(&p.WhoNeeds.Title, w.Title)
		setHTML(&p.WhoNeeds.Description, w.Description)
		setList(&p.WhoNeeds.Points, w.Points)
	}
	replaceAsset(&p.WhoNeeds.Asset, up.whoNeeds)

	if d := req.Documents; d != nil {
		setText(&p.Documents.Title, d.Title)
		setHTML(&p.Documents.Paragraph, d.Paragraph)
		setList(&p.Documents.Items, d.Items)
	}

	for i, in := range req.Cards {
		if i == len(p.Cards) {
			p.Cards = append(p.Cards, models.ProjectCard{})
		}
		setText(&p.Cards[i].Title, in.Title)
		setHTML(&p.Cards[i].Description, in.Description)
	}
	for _, i := range sortedKeys(up.cards) {
		a := up.cards[i]
		replaceAsset(&p.Cards[i].Asset, &a)
	}

	for i, in := range req.FAQs {
		if i == len(p.FAQs) {
			p.FAQs = append(p.FAQs, models.ProjectFAQ{})
		}
		setText(&p.FAQs[i].Question, in.Question)
		setText(&p.FAQs[i].Answer, in.Answer)
	}

	ensureProjectLists(p)
	return replaced
}

// ensureProjectLists replaces nil lists with empty ones so they encode as [].
func ensureProjectLists(p *models.Project) {
	if p.Cards == nil {
		p.Cards = []models.ProjectCard{}
	}
	if p.FAQs == nil {
		p.FAQs = []models.ProjectFAQ{}
	}
	if p.WhoNeeds.Points == nil {
		p.WhoNeeds.Points = []string{}
	}
	if p.Documents.Items == nil {
		p.Documents.Items = []string{}
	}
}

func setText(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func setHTML(dst *string, v *string) {
	if v != nil {
		*dst = sanitize.HTML(*v)
	}
}

func setList(dst *[]string, v *[]string) {
	if v == nil {
		return
	}
	out := make([]string, 0, len(*v))
	for _, s := range *v {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	*dst = out
}

func blank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
