package seo

import (
	"strings"
	"testing"
	"time"

	"costsite/pkg/config"
	"costsite/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedAt = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func testArticles() []models.Article {
	return []models.Article{
		{
			Slug:        "a",
			Title:       `Tom's "Guide" <1>`,
			Description: "x & y",
			PublishDate: "2026-01-01",
			Category:    "FinOps",
		},
		{Slug: "b", Title: "B"},
	}
}

func TestBuildRSS(t *testing.T) {
	site := models.SiteConfig{
		Title:       "T & Co",
		Description: "Cloud savings",
		BaseURL:     "https://example.com/",
		Language:    "en-us",
	}

	feed := BuildRSS(site, testArticles(), generatedAt)

	assert.True(t, strings.HasPrefix(feed, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, feed, "<title>T &amp; Co</title>")
	assert.Contains(t, feed, "<link>https://example.com</link>")
	assert.Contains(t, feed, "<language>en-us</language>")
	assert.Contains(t, feed, "<lastBuildDate>Sat, 17 Oct 2026 12:00:00 +0000</lastBuildDate>")
	assert.Contains(t, feed, `<atom:link href="https://example.com/rss.xml" rel="self" type="application/rss+xml"/>`)

	assert.Contains(t, feed, "<title>Tom&apos;s &quot;Guide&quot; &lt;1&gt;</title>")
	assert.Contains(t, feed, "<description>x &amp; y</description>")
	assert.Contains(t, feed, "<link>https://example.com/article/a/</link>")
	assert.Contains(t, feed, `<guid isPermaLink="true">https://example.com/article/a/</guid>`)
	assert.Contains(t, feed, "<pubDate>Thu, 01 Jan 2026 00:00:00 +0000</pubDate>")
	assert.Contains(t, feed, "<category>FinOps</category>")

	assert.Equal(t, 2, strings.Count(feed, "<item>"))
	assert.Equal(t, 1, strings.Count(feed, "<pubDate>"), "undated article has no pubDate")
	assert.Equal(t, 1, strings.Count(feed, "<category>"))
	assert.Less(t, strings.Index(feed, "/article/a/"), strings.Index(feed, "/article/b/"), "feed keeps the given order")
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&apos;", EscapeXML(`&<>"'`))
	assert.Equal(t, "plain", EscapeXML("plain"))
}

func TestSitemapEntries(t *testing.T) {
	site := config.DefaultSite()
	entries := SitemapEntries(site, testArticles(), generatedAt)
	require.Len(t, entries, len(site.Pages)+10+2)

	assert.Equal(t, SitemapEntry{
		Location:   "http://localhost:8080",
		LastMod:    generatedAt,
		ChangeFreq: "daily",
		Priority:   1.0,
	}, entries[0])
	assert.Equal(t, "http://localhost:8080/articles", entries[1].Location)

	calc := entries[len(site.Pages)]
	assert.Equal(t, "http://localhost:8080/calculators/nat-gateway", calc.Location)
	assert.Equal(t, "monthly", calc.ChangeFreq)

	last := entries[len(entries)-1]
	assert.Equal(t, "http://localhost:8080/article/b", last.Location)
	assert.Equal(t, generatedAt, last.LastMod, "undated article falls back to generation time")

	dated := entries[len(entries)-2]
	assert.Equal(t, "http://localhost:8080/article/a", dated.Location)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), dated.LastMod.UTC())
	assert.Equal(t, "weekly", dated.ChangeFreq)
}

func TestBuildSitemap(t *testing.T) {
	site := config.DefaultSite()
	sitemap := BuildSitemap(site, testArticles(), generatedAt)

	assert.Contains(t, sitemap, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Equal(t, len(site.Pages)+12, strings.Count(sitemap, "<url>"))
	assert.Contains(t, sitemap, "<loc>http://localhost:8080/calculators/finops-maturity</loc>")
	assert.Contains(t, sitemap, "<lastmod>2026-01-01T00:00:00Z</lastmod>")
	assert.Contains(t, sitemap, "<priority>1.0</priority>")
	assert.Contains(t, sitemap, "<priority>0.7</priority>")
}

func TestBuildRobots(t *testing.T) {
	robots := BuildRobots(models.SiteConfig{BaseURL: "https://example.com/"})
	assert.Equal(t, "User-agent: *\nAllow: /\n\nSitemap: https://example.com/sitemap.xml\n", robots)
}
