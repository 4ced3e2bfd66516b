// Package show defines the catalog record validated before a show page is
// published, and decodes collections of them from JSON or YAML documents.
package show

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TagsState records what the tags field of a source document held.
type TagsState int

const (
	// TagsAbsent means the field was missing or null.
	TagsAbsent TagsState = iota
	// TagsMalformed means the field was present but not a sequence.
	TagsMalformed
	// TagsPresent means the field held a sequence, possibly empty.
	TagsPresent
)

// Record is one show in the catalog. String fields hold "" when the source
// value was missing, null or not a string.
type Record struct {
	Title           string
	MetaTitle       string
	MetaDescription string
	PageSlug        string
	Tags            []string
	TagsState       TagsState
	ImageURL        string
	Tagline         string
	FullBio         string
}

// Present reports whether a string field counts as supplied: non-empty after
// trimming whitespace.
func Present(s string) bool {
	return strings.TrimSpace(s) != ""
}

// HasTags reports whether the record carries a tags sequence.
func (r Record) HasTags() bool {
	return r.TagsState == TagsPresent
}

// FromMap builds a Record from a decoded document object.
func FromMap(m map[string]any) Record {
	r := Record{
		Title:           stringField(m, "title"),
		MetaTitle:       stringField(m, "meta_title"),
		MetaDescription: stringField(m, "meta_description"),
		PageSlug:        stringField(m, "page_slug"),
		ImageURL:        stringField(m, "imageurl"),
		Tagline:         stringField(m, "tagline"),
		FullBio:         stringField(m, "full_bio"),
	}

	switch v := m["tags"].(type) {
	case nil:
		r.TagsState = TagsAbsent
	case []any:
		r.TagsState = TagsPresent
		r.Tags = make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				r.Tags = append(r.Tags, s)
			} else {
				// Kept so that the membership check names it.
				r.Tags = append(r.Tags, fmt.Sprint(t))
			}
		}
	case []string:
		r.TagsState = TagsPresent
		r.Tags = append([]string{}, v...)
	default:
		r.TagsState = TagsMalformed
	}

	return r
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// ToMap is the inverse of FromMap. Empty string fields and absent tags are
// omitted.
func (r Record) ToMap() map[string]any {
	m := make(map[string]any, 8)
	put := func(key, val string) {
		if val != "" {
			m[key] = val
		}
	}
	put("title", r.Title)
	put("meta_title", r.MetaTitle)
	put("meta_description", r.MetaDescription)
	put("page_slug", r.PageSlug)
	put("imageurl", r.ImageURL)
	put("tagline", r.Tagline)
	put("full_bio", r.FullBio)
	if r.TagsState == TagsPresent {
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		m["tags"] = tags
	}
	return m
}

// MarshalJSON encodes the record with the catalog's snake_case field names.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

// UnmarshalJSON decodes one catalog object. A JSON value that is not an
// object decodes to a record with every field absent.
func (r *Record) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, _ := asObject(v)
	*r = FromMap(m)
	return nil
}
