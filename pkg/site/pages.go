// Package site renders the pages of the site and writes the static build.
package site

import (
	"embed"
	"html/template"
	"strings"

	"costsite/pkg/markdown"
	"costsite/pkg/models"
	"costsite/pkg/seo"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Templates returns the parsed page templates.
func Templates() *template.Template {
	return templates
}

// Meta is the SEO metadata of a page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Type        string
}

// IndexPage lists articles.
type IndexPage struct {
	Site     models.SiteConfig
	Meta     Meta
	Heading  string
	Articles []models.Article
}

// ArticlePage is the detail page of an article. Body is the rendered
// markdown document, injected as-is since articles are first-party content.
type ArticlePage struct {
	Site    models.SiteConfig
	Meta    Meta
	Article models.Article
	Body    template.HTML
}

// CalculatorsPage lists calculators.
type CalculatorsPage struct {
	Site        models.SiteConfig
	Meta        Meta
	Calculators []models.Calculator
}

// CalculatorPage wraps a single calculator.
type CalculatorPage struct {
	Site       models.SiteConfig
	Meta       Meta
	Calculator models.Calculator
}

// NotFoundPage is rendered for unknown routes and slugs.
type NotFoundPage struct {
	Site models.SiteConfig
	Meta Meta
}

func NewIndexPage(site models.SiteConfig, path, heading string, articles []models.Article) IndexPage {
	return IndexPage{
		Site:     site,
		Meta:     Meta{Title: site.Title, Description: site.Description, Canonical: canonical(site, path), Type: "website"},
		Heading:  heading,
		Articles: articles,
	}
}

func NewArticlePage(site models.SiteConfig, art models.Article, md markdown.Renderer) ArticlePage {
	title := art.Title
	if title == "" {
		title = art.Slug
	}
	return ArticlePage{
		Site: site,
		Meta: Meta{
			Title:       title + " | " + site.Title,
			Description: art.Description,
			Canonical:   seo.ArticleURL(site.BaseURL, art.Slug),
			Type:        "article",
		},
		Article: art,
		Body:    template.HTML(markdown.Document(md, art.Content)),
	}
}

func NewCalculatorsPage(site models.SiteConfig) CalculatorsPage {
	return CalculatorsPage{
		Site:        site,
		Meta:        Meta{Title: "Calculators | " + site.Title, Description: site.Description, Canonical: canonical(site, "/calculators/"), Type: "website"},
		Calculators: site.Calculators,
	}
}

func NewCalculatorPage(site models.SiteConfig, calc models.Calculator) CalculatorPage {
	return CalculatorPage{
		Site:       site,
		Meta:       Meta{Title: calc.Title + " | " + site.Title, Description: calc.Description, Canonical: canonical(site, "/calculators/"+calc.Slug+"/"), Type: "website"},
		Calculator: calc,
	}
}

func NewNotFoundPage(site models.SiteConfig) NotFoundPage {
	return NotFoundPage{
		Site: site,
		Meta: Meta{Title: "Not found | " + site.Title, Description: site.Description, Canonical: canonical(site, "/404.html"), Type: "website"},
	}
}

// FindCalculator looks up a calculator of the site by slug.
func FindCalculator(site models.SiteConfig, slug string) (models.Calculator, bool) {
	for _, c := range site.Calculators {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Calculator{}, false
}

func canonical(site models.SiteConfig, path string) string {
	return strings.TrimRight(site.BaseURL, "/") + path
}
