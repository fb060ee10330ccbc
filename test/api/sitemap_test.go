//go:build api

package api

import (
	"encoding/xml"
	"net/http"
	"testing"

	"compliance-cms/test/api/testserver"
	"compliance-cms/test/fixtures"
	"compliance-cms/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	testServer.SeedPage(t, fixtures.NewPage().WithSlug("factory-license").BuildPtr())
	testServer.SeedPage(t, fixtures.NewPage().WithSlug("draft").Inactive().BuildPtr())
	blog := testServer.SeedBlog(t, fixtures.NewBlog().Published().BuildPtr())
	testServer.SeedBlog(t, fixtures.NewBlog().BuildPtr())
	testServer.SeedProject(t, fixtures.NewProject().WithSlug("bis-registration").BuildPtr())

	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/sitemap.xml", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "xml")

	var set struct {
		URLs []struct {
			Loc     string `xml:"loc"`
			LastMod string `xml:"lastmod"`
		} `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(w.Body.Bytes(), &set))

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
		assert.NotEmpty(t, u.LastMod, u.Loc)
	}
	assert.Equal(t, []string{
		testserver.TestSiteURL + "/",
		testserver.TestSiteURL + "/factory-license",
		testserver.TestSiteURL + "/blogs/" + blog.ID.Hex(),
		testserver.TestSiteURL + "/projects/bis-registration",
	}, locs)
}
