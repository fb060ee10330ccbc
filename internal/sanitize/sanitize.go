// Package sanitize cleans rich-text HTML authored in the admin UI before it
// is stored.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()

		// Tables from the editor
		policy.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
		policy.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("style").OnElements("table", "th", "td", "p", "span")

		policy.AllowElements("u", "s", "sub", "sup", "mark", "figure", "figcaption")
		policy.AllowDataAttributes()
		policy.RequireNoFollowOnLinks(false)
		policy.AllowAttrs("target").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
	})
	return policy
}

// HTML strips scripts, event handlers and other unsafe markup while keeping
// formatting, links, images and tables.
func HTML(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// Text trims surrounding whitespace and removes every tag. The result is
// plain text: entities the policy escapes are decoded again.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(bluemonday.StrictPolicy().Sanitize(s)))
}
