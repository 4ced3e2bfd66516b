package validate

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned by Rules.Check for inconsistent thresholds.
var ErrInvalidRules = errors.New("invalid validation rules")

// Rules holds the editorial thresholds applied by an Engine. An Engine keeps
// its own copy, so changing a Rules value after New has no effect on it.
type Rules struct {
	TitleMax           int
	MetaTitleMax       int
	MetaDescriptionMin int
	MetaDescriptionMax int
	TagsMin            int
	TagsMax            int
	// URLPrefixes lists the accepted imageurl prefixes.
	URLPrefixes []string
}

// DefaultRules returns the publication thresholds for show pages.
func DefaultRules() Rules {
	return Rules{
		TitleMax:           60,
		MetaTitleMax:       60,
		MetaDescriptionMin: 140,
		MetaDescriptionMax: 160,
		TagsMin:            5,
		TagsMax:            12,
		URLPrefixes:        []string{"http://", "https://"},
	}
}

// Check reports whether the thresholds are usable.
func (r Rules) Check() error {
	switch {
	case r.TitleMax <= 0:
		return fmt.Errorf("%w: title max must be positive, got %d", ErrInvalidRules, r.TitleMax)
	case r.MetaTitleMax <= 0:
		return fmt.Errorf("%w: meta_title max must be positive, got %d", ErrInvalidRules, r.MetaTitleMax)
	case r.MetaDescriptionMin < 0 || r.MetaDescriptionMin > r.MetaDescriptionMax:
		return fmt.Errorf("%w: meta_description bounds [%d,%d]", ErrInvalidRules, r.MetaDescriptionMin, r.MetaDescriptionMax)
	case r.TagsMin < 0 || r.TagsMin > r.TagsMax:
		return fmt.Errorf("%w: tag count bounds [%d,%d]", ErrInvalidRules, r.TagsMin, r.TagsMax)
	case len(r.URLPrefixes) == 0:
		return fmt.Errorf("%w: at least one imageurl prefix is required", ErrInvalidRules)
	}
	return nil
}

func (r Rules) clone() Rules {
	r.URLPrefixes = append([]string{}, r.URLPrefixes...)
	return r
}
