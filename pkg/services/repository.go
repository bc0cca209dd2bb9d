package services

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"costsite/pkg/models"

	"github.com/samber/lo"
)

// ArticleRepository is the read side of the article collection.
type ArticleRepository interface {
	// List returns every article, newest first.
	List() Listing
	// Get returns the article with the given slug.
	Get(slug string) (models.Article, bool)
}

// Listing is the result of ArticleRepository.List. Available is false when
// the content source could not be read at all, which is distinct from an
// empty but readable source.
type Listing struct {
	Articles  []models.Article `json:"articles"`
	Available bool             `json:"available"`
}

// FileRepository reads articles from a directory of .md/.mdx files. Every
// call enumerates the directory again; nothing is cached between calls.
type FileRepository struct {
	Dir string
	Log *slog.Logger
}

// NewFileRepository makes a FileRepository over dir.
func NewFileRepository(dir string, lg *slog.Logger) *FileRepository {
	if lg == nil {
		lg = slog.Default()
	}
	return &FileRepository{Dir: dir, Log: lg}
}

type contentFile struct {
	name string
	slug string
}

// SlugFromName derives the slug of a content file name. The second result is
// false for names without a .md or .mdx extension.
func SlugFromName(name string) (string, bool) {
	switch {
	case strings.HasSuffix(name, ".mdx"):
		return strings.TrimSuffix(name, ".mdx"), true
	case strings.HasSuffix(name, ".md"):
		return strings.TrimSuffix(name, ".md"), true
	}
	return "", false
}

// files enumerates the content files, one per slug. When both x.md and x.mdx
// exist, x.md wins.
func (r *FileRepository) files() ([]contentFile, bool) {
	entries, err := os.ReadDir(r.Dir)
	if err != nil {
		r.Log.Debug("content dir unavailable", slog.String("dir", r.Dir), slog.Any("err", err))
		return nil, false
	}

	bySlug := map[string]contentFile{}
	for _, entry := range lo.Filter(entries, func(e os.DirEntry, _ int) bool { return !e.IsDir() }) {
		slug, ok := SlugFromName(entry.Name())
		if !ok || slug == "" {
			continue
		}
		if prev, dup := bySlug[slug]; dup && strings.HasSuffix(prev.name, ".md") {
			continue
		}
		bySlug[slug] = contentFile{name: entry.Name(), slug: slug}
	}

	files := lo.Values(bySlug)
	sort.Slice(files, func(i, j int) bool { return files[i].slug < files[j].slug })
	return files, true
}

func (r *FileRepository) read(f contentFile) (models.Article, bool) {
	content, err := os.ReadFile(filepath.Join(r.Dir, f.name))
	if err != nil {
		r.Log.Debug("skip unreadable content file", slog.String("file", f.name), slog.Any("err", err))
		return models.Article{}, false
	}
	return ArticleFromContent(f.slug, content), true
}

// List implements ArticleRepository.
func (r *FileRepository) List() Listing {
	files, ok := r.files()
	if !ok {
		return Listing{Articles: []models.Article{}, Available: false}
	}

	articles := make([]models.Article, 0, len(files))
	for _, f := range files {
		if art, ok := r.read(f); ok {
			articles = append(articles, art)
		}
	}

	SortArticles(articles)
	return Listing{Articles: articles, Available: true}
}

// Get implements ArticleRepository.
func (r *FileRepository) Get(slug string) (models.Article, bool) {
	files, ok := r.files()
	if !ok {
		return models.Article{}, false
	}

	f, found := lo.Find(files, func(f contentFile) bool { return f.slug == slug })
	if !found {
		return models.Article{}, false
	}
	return r.read(f)
}

// MemoryRepository serves a fixed set of articles.
type MemoryRepository struct {
	Articles []models.Article
}

// List implements ArticleRepository.
func (r *MemoryRepository) List() Listing {
	articles := append([]models.Article{}, r.Articles...)
	SortArticles(articles)
	return Listing{Articles: articles, Available: true}
}

// Get implements ArticleRepository.
func (r *MemoryRepository) Get(slug string) (models.Article, bool) {
	return lo.Find(r.Articles, func(a models.Article) bool { return a.Slug == slug })
}

// SortArticles orders articles by publish date, newest first. Articles
// without a parseable date go last; ties are ordered by slug.
func SortArticles(articles []models.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		ti, okI := ParsePublishDate(articles[i].PublishDate)
		tj, okJ := ParsePublishDate(articles[j].PublishDate)
		switch {
		case okI && okJ && !ti.Equal(tj):
			return ti.After(tj)
		case okI != okJ:
			return okI
		}
		return articles[i].Slug < articles[j].Slug
	})
}
