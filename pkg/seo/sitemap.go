package seo

import (
	"fmt"
	"strings"
	"time"

	"costsite/pkg/models"
	"costsite/pkg/services"

	"github.com/samber/lo"
)

// SitemapEntry is a single <url> of the sitemap.
type SitemapEntry struct {
	Location   string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapEntries lists static pages, then calculators, then articles.
// Articles use their publish date as lastmod when it parses.
func SitemapEntries(site models.SiteConfig, articles []models.Article, generatedAt time.Time) []SitemapEntry {
	base := strings.TrimRight(site.BaseURL, "/")

	entries := lo.Map(site.Pages, func(p models.Page, _ int) SitemapEntry {
		path := p.Path
		if path == "/" {
			path = ""
		} else if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return SitemapEntry{Location: base + path, LastMod: generatedAt, ChangeFreq: p.ChangeFreq, Priority: p.Priority}
	})

	entries = append(entries, lo.Map(site.Calculators, func(c models.Calculator, _ int) SitemapEntry {
		return SitemapEntry{
			Location:   fmt.Sprintf("%s/calculators/%s", base, c.Slug),
			LastMod:    generatedAt,
			ChangeFreq: "monthly",
			Priority:   0.8,
		}
	})...)

	entries = append(entries, lo.Map(articles, func(a models.Article, _ int) SitemapEntry {
		lastMod, ok := services.ParsePublishDate(a.PublishDate)
		if !ok {
			lastMod = generatedAt
		}
		return SitemapEntry{
			Location:   fmt.Sprintf("%s/article/%s", base, a.Slug),
			LastMod:    lastMod,
			ChangeFreq: "weekly",
			Priority:   0.7,
		}
	})...)

	return entries
}

// BuildSitemap renders the sitemap XML for the site.
func BuildSitemap(site models.SiteConfig, articles []models.Article, generatedAt time.Time) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range SitemapEntries(site, articles, generatedAt) {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", EscapeXML(entry.Location)))
		builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.ChangeFreq))
		builder.WriteString(fmt.Sprintf("    <priority>%.1f</priority>\n", entry.Priority))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString("</urlset>\n")
	return builder.String()
}

// BuildRobots allows every crawler and points it at the sitemap.
func BuildRobots(site models.SiteConfig) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Sitemap: %s/sitemap.xml\n", strings.TrimRight(site.BaseURL, "/")))
	return builder.String()
}
