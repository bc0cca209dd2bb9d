// Package seo builds the machine-readable outputs of the site: the RSS feed,
// the sitemap and robots.txt.
package seo

import (
	"fmt"
	"strings"
	"time"

	"costsite/pkg/models"
	"costsite/pkg/services"
)

// ArticleURL is the canonical URL of an article page.
func ArticleURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/article/%s/", strings.TrimRight(baseURL, "/"), slug)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeXML escapes text for use in XML character data and attributes.
func EscapeXML(s string) string {
	return xmlEscaper.Replace(s)
}

// BuildRSS renders an RSS 2.0 feed with one item per article, in the given
// order. Items whose publish date cannot be parsed carry no pubDate.
func BuildRSS(site models.SiteConfig, articles []models.Article, generatedAt time.Time) string {
	base := strings.TrimRight(site.BaseURL, "/")

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", EscapeXML(site.Title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", EscapeXML(base)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", EscapeXML(site.Description)))
	builder.WriteString(fmt.Sprintf("    <language>%s</language>\n", EscapeXML(site.Language)))
	builder.WriteString(fmt.Sprintf("    <lastBuildDate>%s</lastBuildDate>\n", generatedAt.UTC().Format(time.RFC1123Z)))
	builder.WriteString(fmt.Sprintf(`    <atom:link href="%s/rss.xml" rel="self" type="application/rss+xml"/>`+"\n", EscapeXML(base)))
	for _, art := range articles {
		link := EscapeXML(ArticleURL(base, art.Slug))
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", EscapeXML(art.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", link))
		builder.WriteString(fmt.Sprintf(`      <guid isPermaLink="true">%s</guid>`+"\n", link))
		builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", EscapeXML(art.Description)))
		if pub, ok := services.ParsePublishDate(art.PublishDate); ok {
			builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", pub.UTC().Format(time.RFC1123Z)))
		}
		if art.Category != "" {
			builder.WriteString(fmt.Sprintf("      <category>%s</category>\n", EscapeXML(art.Category)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	return builder.String()
}
