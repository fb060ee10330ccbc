package models

import "time"

// SitemapURL is one public URL listed in the sitemap.
type SitemapURL struct {
	Path    string
	LastMod time.Time
}
