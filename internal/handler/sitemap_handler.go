package handler

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-cms/internal/service"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// SitemapHandler serves sitemap.xml for the public site.
type SitemapHandler struct {
	service service.SitemapServicer
	siteURL string
}

// NewSitemapHandler creates a new SitemapHandler. Paths are joined onto siteURL.
func NewSitemapHandler(service service.SitemapServicer, siteURL string) *SitemapHandler {
	return &SitemapHandler{service: service, siteURL: strings.TrimRight(siteURL, "/")}
}

// Sitemap godoc
// @Summary      Sitemap
// @Tags         site
// @Produce      xml
// @Success      200  {string}  string  "sitemap.xml"
// @Router       /sitemap.xml [get]
func (h *SitemapHandler) Sitemap(c *gin.Context) {
	urls, err := h.service.URLs(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	set := urlSet{Xmlns: sitemapNamespace, URLs: make([]sitemapURL, 0, len(urls))}
	for _, u := range urls {
		entry := sitemapURL{Loc: h.siteURL + u.Path}
		if !u.LastMod.IsZero() {
			entry.LastMod = u.LastMod.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}
