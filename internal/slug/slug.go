// Package slug validates and derives the page slugs used in show page URLs.
package slug

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrSlugFormat is returned when a slug contains anything other than
	// lowercase alphanumerics and hyphens.
	ErrSlugFormat = errors.New("slug must contain only lowercase alphanumeric characters and hyphens")

	// Pattern is the page_slug format.
	Pattern = regexp.MustCompile(`^[a-z0-9-]+$`)

	stripRe = regexp.MustCompile(`[^a-z0-9-]`)
)

// Valid reports whether s is a well-formed page slug.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}

// Check returns ErrSlugFormat if s is not a well-formed page slug.
func Check(s string) error {
	if !Valid(s) {
		return ErrSlugFormat
	}
	return nil
}

// Derive builds a URL-safe slug from free text: lowercase, spaces and
// underscores become hyphens, anything outside [a-z0-9-] is dropped and
// runs of hyphens collapse to one.
func Derive(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")
	s = stripRe.ReplaceAllString(s, "")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
