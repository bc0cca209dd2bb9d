package site

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"costsite/pkg/markdown"
	"costsite/pkg/models"
	"costsite/pkg/seo"
	"costsite/pkg/services"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Builder renders the whole site into OutputDir.
type Builder struct {
	Site        models.SiteConfig
	Repo        services.ArticleRepository
	Markdown    markdown.Renderer
	OutputDir   string
	StaticDir   string
	Concurrency int
	Clean       bool
	Log         *slog.Logger
	Now         func() time.Time
}

// Report summarises a build.
type Report struct {
	Articles       int           `json:"articles"`
	Calculators    int           `json:"calculators"`
	Assets         int           `json:"assets"`
	ContentMissing bool          `json:"content_missing"`
	Elapsed        time.Duration `json:"elapsed"`
}

// Build renders every page, the feed, the sitemap and robots.txt, and copies
// static assets. An unreadable content dir builds a site without articles.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	lg := b.Log
	if lg == nil {
		lg = slog.Default()
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	start := now()

	if b.Clean {
		if err := cleanDir(b.OutputDir); err != nil {
			return Report{}, err
		}
	}

	w, err := NewWriter(b.OutputDir)
	if err != nil {
		return Report{}, err
	}

	listing := b.Repo.List()
	if !listing.Available {
		lg.Warn("content source unavailable, building without articles")
	}
	articles := lo.Filter(listing.Articles, func(a models.Article, _ int) bool {
		if pageSlug(a.Slug) {
			return true
		}
		lg.Warn("skip article with unusable slug", slog.String("slug", a.Slug))
		return false
	})

	rep := Report{
		Articles:       len(articles),
		Calculators:    len(b.Site.Calculators),
		ContentMissing: !listing.Available,
	}

	pages := []struct {
		path string
		name string
		data any
	}{
		{"index.html", "index.html", NewIndexPage(b.Site, "/", b.Site.Title, articles)},
		{"articles/index.html", "index.html", NewIndexPage(b.Site, "/articles/", "All articles", articles)},
		{"calculators/index.html", "calculators.html", NewCalculatorsPage(b.Site)},
		{"404.html", "404.html", NewNotFoundPage(b.Site)},
	}
	for _, p := range pages {
		if err := b.renderTo(w, p.path, p.name, p.data); err != nil {
			return rep, err
		}
	}

	for _, calc := range b.Site.Calculators {
		path := fmt.Sprintf("calculators/%s/index.html", calc.Slug)
		if err := b.renderTo(w, path, "calculator.html", NewCalculatorPage(b.Site, calc)); err != nil {
			return rep, err
		}
	}

	limit := b.Concurrency
	if limit <= 0 {
		limit = 1
	}
	ewg, ectx := errgroup.WithContext(ctx)
	ewg.SetLimit(limit)
	for _, art := range articles {
		ewg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			path := fmt.Sprintf("article/%s/index.html", art.Slug)
			if err := b.renderTo(w, path, "article.html", NewArticlePage(b.Site, art, b.Markdown)); err != nil {
				return err
			}
			lg.Debug("article rendered", slog.String("slug", art.Slug))
			return nil
		})
	}
	if err := ewg.Wait(); err != nil {
		return rep, fmt.Errorf("render articles: %w", err)
	}

	generatedAt := now()
	feeds := map[string]string{
		"rss.xml":     seo.BuildRSS(b.Site, articles, generatedAt),
		"sitemap.xml": seo.BuildSitemap(b.Site, articles, generatedAt),
		"robots.txt":  seo.BuildRobots(b.Site),
	}
	for path, content := range feeds {
		if err := w.Write(path, []byte(content)); err != nil {
			return rep, err
		}
	}

	if b.StaticDir != "" {
		n, err := services.CopyAssets(b.StaticDir, b.OutputDir)
		if err != nil {
			return rep, fmt.Errorf("copy assets: %w", err)
		}
		rep.Assets = n
	}

	rep.Elapsed = now().Sub(start)
	lg.Info("site built",
		slog.String("output", b.OutputDir),
		slog.Int("articles", rep.Articles),
		slog.Int("calculators", rep.Calculators),
		slog.Int("assets", rep.Assets),
		slog.Duration("elapsed", rep.Elapsed),
	)
	return rep, nil
}

func (b *Builder) renderTo(w *Writer, path, name string, data any) error {
	var buf bytes.Buffer
	if err := Templates().ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return w.Write(path, buf.Bytes())
}

// pageSlug reports whether slug can name its own article/{slug}/ directory.
func pageSlug(slug string) bool {
	return slug != "" && slug != "." && slug != ".." && !strings.ContainsAny(slug, `/\`)
}

func cleanDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve output directory: %w", err)
	}
	if dir == "" || abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to clean %q", dir)
	}
	if wd, err := os.Getwd(); err == nil && wd == abs {
		return fmt.Errorf("refusing to clean the working directory")
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("clean output directory: %w", err)
	}
	return nil
}
