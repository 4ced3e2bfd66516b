// Package validate checks show records against the editorial schema before
// publication and classifies every finding as an error or a warning.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/vrcreative/seo-codex/internal/registry"
	"github.com/vrcreative/seo-codex/internal/show"
	"github.com/vrcreative/seo-codex/internal/slug"
)

// Engine validates record collections against a fixed set of Rules.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules Rules
}

// New returns an Engine for rules.
func New(rules Rules) (*Engine, error) {
	if err := rules.Check(); err != nil {
		return nil, err
	}
	return &Engine{rules: rules.clone()}, nil
}

// Rules returns a copy of the engine's thresholds.
func (e *Engine) Rules() Rules {
	return e.rules.clone()
}

// Validate checks every record, then the collection-wide slug uniqueness,
// and returns the combined report. It never stops early.
func (e *Engine) Validate(records []show.Record, tags registry.Set) *Report {
	rep := &Report{Records: len(records)}
	for i, rec := range records {
		rep.Findings = append(rep.Findings, e.ValidateRecord(rec, tags, i+1)...)
	}
	rep.Findings = append(rep.Findings, e.DuplicateSlugs(records)...)
	return rep
}

// ValidateRecord returns the findings for a single record. index is the
// record's 1-based position and only appears in messages.
func (e *Engine) ValidateRecord(rec show.Record, tags registry.Set, index int) []Finding {
	c := &recordCheck{index: index}
	if show.Present(rec.Title) {
		c.title = rec.Title
	}

	if !show.Present(rec.Title) {
		c.errorf(FieldTitle, "Missing title")
	} else if n := length(rec.Title); n > e.rules.TitleMax {
		c.errorf(FieldTitle, "Title exceeds %d characters (%d)", e.rules.TitleMax, n)
	}

	if !show.Present(rec.MetaTitle) {
		c.errorf(FieldMetaTitle, "Missing meta_title")
	} else if n := length(rec.MetaTitle); n > e.rules.MetaTitleMax {
		c.errorf(FieldMetaTitle, "meta_title exceeds %d characters (%d)", e.rules.MetaTitleMax, n)
	}

	if !show.Present(rec.MetaDescription) {
		c.errorf(FieldMetaDescription, "Missing meta_description")
	} else if n := length(rec.MetaDescription); n < e.rules.MetaDescriptionMin || n > e.rules.MetaDescriptionMax {
		c.errorf(FieldMetaDescription, "meta_description must be %d-%d chars (current: %d)",
			e.rules.MetaDescriptionMin, e.rules.MetaDescriptionMax, n)
	}

	if !show.Present(rec.PageSlug) {
		c.errorf(FieldPageSlug, "Missing page_slug")
	} else if err := slug.Check(rec.PageSlug); err != nil {
		msg := fmt.Sprintf("page_slug must be lowercase with hyphens only (current: %s)", rec.PageSlug)
		if s := slug.Derive(rec.PageSlug); s != "" {
			msg += fmt.Sprintf(" (suggested: %s)", s)
		}
		c.errorf(FieldPageSlug, "%s", msg)
	}

	if !rec.HasTags() {
		c.errorf(FieldTags, "Missing or invalid tags array")
	} else {
		n := len(rec.Tags)
		if n < e.rules.TagsMin {
			c.warnf(FieldTags, "Only %d tags (recommended: %d-%d)", n, e.rules.TagsMin, e.rules.TagsMax)
		}
		if n > e.rules.TagsMax {
			c.warnf(FieldTags, "%d tags exceeds recommended maximum of %d", n, e.rules.TagsMax)
		}
		for _, tag := range rec.Tags {
			if !tags.Contains(tag) {
				c.errorf(FieldTags, "Tag %q not in tag registry", tag)
			}
		}
	}

	if !show.Present(rec.ImageURL) {
		c.warnf(FieldImageURL, "Missing imageurl")
	} else if !e.hasURLPrefix(rec.ImageURL) {
		c.errorf(FieldImageURL, "imageurl must be a valid URL (current: %s)", rec.ImageURL)
	}

	if show.Present(rec.Title) && rec.MetaTitle == rec.Title {
		c.warnf(FieldMetaTitle, "meta_title is identical to title (should be optimized differently)")
	}

	if !show.Present(rec.Tagline) {
		c.warnf(FieldTagline, "Missing tagline")
	}
	if !show.Present(rec.FullBio) {
		c.warnf(FieldFullBio, "Missing full_bio")
	}

	return c.findings
}

// DuplicateSlugs reports every record whose page_slug was already used by an
// earlier record. The first occurrence is never flagged and records without
// a slug are skipped.
func (e *Engine) DuplicateSlugs(records []show.Record) []Finding {
	var findings []Finding
	first := make(map[string]int, len(records))
	for i, rec := range records {
		if !show.Present(rec.PageSlug) {
			continue
		}
		index := i + 1
		prev, seen := first[rec.PageSlug]
		if !seen {
			first[rec.PageSlug] = index
			continue
		}
		c := &recordCheck{index: index, collection: true}
		if show.Present(rec.Title) {
			c.title = rec.Title
		}
		c.errorf(FieldPageSlug, "Duplicate page_slug %q found in shows: %d and %d", rec.PageSlug, prev, index)
		findings = append(findings, c.findings...)
	}
	return findings
}

func (e *Engine) hasURLPrefix(u string) bool {
	for _, p := range e.rules.URLPrefixes {
		if strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}

// length counts characters of the NFC form, so a precomposed and a
// decomposed "é" measure the same.
func length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

type recordCheck struct {
	index      int
	title      string
	collection bool
	findings   []Finding
}

func (c *recordCheck) errorf(field, format string, args ...any) {
	c.add(SeverityError, field, format, args...)
}

func (c *recordCheck) warnf(field, format string, args ...any) {
	c.add(SeverityWarning, field, format, args...)
}

func (c *recordCheck) add(sev Severity, field, format string, args ...any) {
	c.findings = append(c.findings, Finding{
		Severity:   sev,
		Index:      c.index,
		Title:      c.title,
		Field:      field,
		Message:    fmt.Sprintf(format, args...),
		Collection: c.collection,
	})
}
