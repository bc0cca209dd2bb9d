package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"costsite/pkg/models"
)

var (
	// ErrSlugExists is returned when scaffolding an article whose slug is taken.
	ErrSlugExists = errors.New("slug already exists")
	// ErrInvalidSlug is returned for slugs that are not lowercase words joined by dashes.
	ErrInvalidSlug = errors.New("invalid slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ArticleFromContent builds an article from a content file. Content without
// a readable front matter block keeps empty fields and its full text as body.
func ArticleFromContent(slug string, content []byte) models.Article {
	fm, body, _, err := ParseFrontMatter(content)
	if err != nil {
		return models.Article{Slug: slug, Content: normalizeLineEndings(string(content))}
	}

	return models.Article{
		Slug:        slug,
		Title:       fieldString(fm, "title"),
		Description: fieldString(fm, "description"),
		PublishDate: fieldString(fm, "publishDate"),
		ReadTime:    fieldString(fm, "readTime"),
		Category:    fieldString(fm, "category"),
		Content:     body,
	}
}

func fieldString(fm map[string]interface{}, key string) string {
	val, ok := fm[key]
	if !ok || val == nil {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02")
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

// NewArticleContent returns the scaffold of a fresh article file.
func NewArticleContent(slug, format string, now time.Time) ([]byte, error) {
	fm := map[string]interface{}{
		"title":       titleFromSlug(slug),
		"description": "",
		"publishDate": now.Format("2006-01-02"),
		"readTime":    "5 min",
		"category":    "",
	}
	return ConstructFileContent(fm, "Write the article here.", format)
}

// CreateArticle writes a scaffolded article named after slug into dir and
// returns the file path.
func CreateArticle(dir, slug, format string, now time.Time) (string, error) {
	if !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	if format == "" {
		format = "yaml"
	}

	for _, ext := range []string{".md", ".mdx"} {
		if _, err := os.Stat(filepath.Join(dir, slug+ext)); err == nil {
			return "", fmt.Errorf("create %s: %w", slug, ErrSlugExists)
		}
	}

	content, err := NewArticleContent(slug, format, now)
	if err != nil {
		return "", fmt.Errorf("scaffold %s: %w", slug, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("make content dir: %w", err)
	}

	path := filepath.Join(dir, slug+".md")
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func sanitizeFrontMatter(fm map[string]interface{}) map[string]interface{} {
	if fm == nil {
		return nil
	}
	sanitized := make(map[string]interface{}, len(fm))
	for k, v := range fm {
		sanitized[k] = sanitizeFrontMatterValue(v)
	}
	return sanitized
}

func sanitizeFrontMatterValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return sanitizeFrontMatter(v)
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(v))
		for key, inner := range v {
			normalized[fmt.Sprint(key)] = sanitizeFrontMatterValue(inner)
		}
		return normalized
	case []interface{}:
		slice := make([]interface{}, len(v))
		for i := range v {
			slice[i] = sanitizeFrontMatterValue(v[i])
		}
		return slice
	default:
		return v
	}
}

// normalizeLineEndings drops a leading byte order mark and converts CRLF to LF.
func normalizeLineEndings(input string) string {
	input = strings.TrimPrefix(input, "\ufeff")
	return strings.ReplaceAll(input, "\r\n", "\n")
}
