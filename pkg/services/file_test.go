package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontMatter(t *testing.T) {
	tbl := []struct {
		name   string
		in     string
		fm     map[string]interface{}
		body   string
		format string
		err    error
	}{
		{
			name:   "yaml",
			in:     "---\ntitle: Hello\n---\n\nBody",
			fm:     map[string]interface{}{"title": "Hello"},
			body:   "Body",
			format: "yaml",
		},
		{
			name:   "yaml value with dashes",
			in:     "---\ntitle: a---b\n---\nBody",
			fm:     map[string]interface{}{"title": "a---b"},
			body:   "Body",
			format: "yaml",
		},
		{
			name:   "yaml without body",
			in:     "---\ntitle: Hello\n---",
			fm:     map[string]interface{}{"title": "Hello"},
			body:   "",
			format: "yaml",
		},
		{
			name:   "toml",
			in:     "+++\ntitle = \"Hello\"\n+++\nBody",
			fm:     map[string]interface{}{"title": "Hello"},
			body:   "Body",
			format: "toml",
		},
		{
			name:   "json",
			in:     "{\"title\": \"Hello\"}\n\nBody",
			fm:     map[string]interface{}{"title": "Hello"},
			body:   "Body",
			format: "json",
		},
		{name: "none", in: "# Just markdown", err: ErrNoFrontMatter},
		{name: "unclosed", in: "---\ntitle: Hello\nBody", err: ErrNoFrontMatter},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, format, err := ParseFrontMatter([]byte(tt.in))
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.fm, fm)
			assert.Equal(t, tt.body, body)
			assert.Equal(t, tt.format, format)
		})
	}
}

func TestParseFrontMatter_MalformedYAML(t *testing.T) {
	_, _, _, err := ParseFrontMatter([]byte("---\ntitle: [\n---\nBody"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoFrontMatter))
}

func TestConstructFileContent_UnsupportedFormat(t *testing.T) {
	_, err := ConstructFileContent(map[string]interface{}{"title": "x"}, "", "xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCreateArticle(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	for _, format := range []string{"yaml", "toml", "json", ""} {
		t.Run("format "+format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "articles")

			path, err := CreateArticle(dir, "s3-lifecycle-rules", format, now)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "s3-lifecycle-rules.md"), path)

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			art := ArticleFromContent("s3-lifecycle-rules", content)
			assert.Equal(t, "S3 Lifecycle Rules", art.Title)
			assert.Equal(t, "2026-10-17", art.PublishDate)
			assert.Equal(t, "5 min", art.ReadTime)
			assert.Equal(t, "Write the article here.", art.Content)
		})
	}
}

func TestCreateArticle_Errors(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	_, err := CreateArticle(dir, "Bad Slug", "yaml", now)
	assert.ErrorIs(t, err, ErrInvalidSlug)

	_, err = CreateArticle(dir, "../escape", "yaml", now)
	assert.ErrorIs(t, err, ErrInvalidSlug)

	_, err = CreateArticle(dir, "fine", "xml", now)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken.mdx"), []byte("x"), 0644))
	_, err = CreateArticle(dir, "taken", "yaml", now)
	assert.ErrorIs(t, err, ErrSlugExists)

	_, err = CreateArticle(dir, "twice", "yaml", now)
	require.NoError(t, err)
	_, err = CreateArticle(dir, "twice", "yaml", now)
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestSafeJoin(t *testing.T) {
	assert.Equal(t, filepath.Join("root", "sub", "a", "b.md"), SafeJoin("root", "sub", "a/b.md"))
	assert.Equal(t, "", SafeJoin("root", "sub", "../secret"))
	assert.Equal(t, "", SafeJoin("root", "sub", "/etc/passwd"))
	assert.Equal(t, "", SafeJoin("root", "sub", "a/../../b"))
	assert.Equal(t, filepath.Join("root", "article", "v1..v2-migration", "index.html"),
		SafeJoin("root", "", filepath.Join("article", "v1..v2-migration", "index.html")))
}

func TestParsePublishDate(t *testing.T) {
	tbl := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2026-01-01", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"2026-01-01T10:00:00Z", time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), true},
		{"January 5, 2026", time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"   ", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}
	for _, tt := range tbl {
		got, ok := ParsePublishDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.True(t, tt.want.Equal(got), "%q: got %v", tt.in, got)
		}
	}
}
