package validate

import "fmt"

// Severity classifies a finding.
type Severity string

const (
	// SeverityError is a schema violation. Any error blocks publication.
	SeverityError Severity = "error"
	// SeverityWarning is an editorial recommendation. Warnings never fail a run.
	SeverityWarning Severity = "warning"
)

// Field names used in findings.
const (
	FieldTitle           = "title"
	FieldMetaTitle       = "meta_title"
	FieldMetaDescription = "meta_description"
	FieldPageSlug        = "page_slug"
	FieldTags            = "tags"
	FieldImageURL        = "imageurl"
	FieldTagline         = "tagline"
	FieldFullBio         = "full_bio"
)

// Finding is one validation message about one record.
type Finding struct {
	Severity Severity `json:"severity"`
	// Index is the 1-based position of the record in the collection.
	Index int `json:"index"`
	// Title is the record's title, empty when the record has none.
	Title   string `json:"title,omitempty"`
	Field   string `json:"field"`
	Message string `json:"message"`
	// Collection marks findings about the collection as a whole, such as a
	// repeated page_slug. Their message already names the records involved.
	Collection bool `json:"collection,omitempty"`
}

// String renders the finding as a report line body.
func (f Finding) String() string {
	if f.Index == 0 || f.Collection {
		return f.Message
	}
	if f.Title == "" {
		return fmt.Sprintf("Show %d: %s", f.Index, f.Message)
	}
	return fmt.Sprintf("Show %d (%s): %s", f.Index, f.Title, f.Message)
}
