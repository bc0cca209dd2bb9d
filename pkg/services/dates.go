package services

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParsePublishDate parses a front matter date in any common layout.
// Dates without a zone are read as UTC.
func ParsePublishDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
