package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoFrontMatter is returned by ParseFrontMatter when the content does not
	// open with a recognised front matter block.
	ErrNoFrontMatter = errors.New("no front matter")
	// ErrUnsupportedFormat is returned for front matter formats other than
	// yaml, toml and json.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SafeJoin joins target under root/sub, or returns "" when target is absolute
// or climbs out through a ".." segment. Names like "v1..v2" are fine.
func SafeJoin(root, sub, target string) string {
	cleanTarget := filepath.Clean(target)
	if !filepath.IsLocal(cleanTarget) {
		return ""
	}
	return filepath.Join(root, sub, cleanTarget)
}

// ParseFrontMatter splits content into its front matter map and body.
// Supported blocks: "---" YAML, "+++" TOML and a leading JSON object.
func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := normalizeLineEndings(string(content))

	if block, body, ok := splitDelimited(str, "---"); ok {
		var fm map[string]interface{}
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", "", fmt.Errorf("parse yaml front matter: %w", err)
		}
		return orEmpty(fm), body, "yaml", nil
	}

	if block, body, ok := splitDelimited(str, "+++"); ok {
		var fm map[string]interface{}
		if err := toml.Unmarshal([]byte(block), &fm); err != nil {
			return nil, "", "", fmt.Errorf("parse toml front matter: %w", err)
		}
		return orEmpty(fm), body, "toml", nil
	}

	if strings.HasPrefix(str, "{") {
		dec := json.NewDecoder(strings.NewReader(str))
		var fm map[string]interface{}
		if err := dec.Decode(&fm); err == nil {
			return orEmpty(fm), strings.TrimSpace(str[dec.InputOffset():]), "json", nil
		}
	}

	return nil, "", "", ErrNoFrontMatter
}

// splitDelimited cuts a block opened by a delimiter line and closed by the
// next line holding only the same delimiter.
func splitDelimited(str, delim string) (block, body string, ok bool) {
	if !strings.HasPrefix(str, delim+"\n") {
		return "", "", false
	}
	rest := str[len(delim)+1:]

	if rest == delim || strings.HasPrefix(rest, delim+"\n") {
		return "", strings.TrimSpace(rest[len(delim):]), true
	}

	idx := strings.Index(rest, "\n"+delim+"\n")
	if idx < 0 {
		if !strings.HasSuffix(rest, "\n"+delim) {
			return "", "", false
		}
		idx = len(rest) - len(delim) - 1
	}
	return rest[:idx], strings.TrimSpace(rest[idx+1+len(delim):]), true
}

func orEmpty(fm map[string]interface{}) map[string]interface{} {
	if fm == nil {
		return map[string]interface{}{}
	}
	return fm
}

func ConstructFileContent(fm map[string]interface{}, body string, format string) ([]byte, error) {
	normalizedFM := sanitizeFrontMatter(fm)
	if normalizedFM == nil {
		normalizedFM = map[string]interface{}{}
	}

	var buf bytes.Buffer
	switch format {
	case "yaml":
		buf.WriteString("---\n")
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, fmt.Errorf("encode yaml front matter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml front matter: %w", err)
		}
		buf.WriteString("---\n")
	case "toml":
		buf.WriteString("+++\n")
		enc := toml.NewEncoder(&buf)
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, fmt.Errorf("encode toml front matter: %w", err)
		}
		buf.WriteString("+++\n")
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(normalizedFM); err != nil {
			return nil, fmt.Errorf("encode json front matter: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}
