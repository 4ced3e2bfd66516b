package show

// Sample returns the well-formed record used by the validator's smoke check.
// Its tags are expected in the shipped tag registry.
func Sample() Record {
	return Record{
		Title:           "Test Show",
		MetaTitle:       "Test Show for Corporate Events",
		MetaDescription: "Experience an amazing test show with incredible energy and world-class performers. Perfect for corporate events in Nashville and beyond all year long.",
		PageSlug:        "test-show",
		Tags: []string{
			"corporate-entertainment",
			"high-energy",
			"interactive",
			"live-music",
			"performance",
			"innovation",
		},
		TagsState: TagsPresent,
		ImageURL:  "https://example.com/image.jpg",
		Tagline:   "An amazing test show",
		FullBio:   "This is a full bio for the test show.",
	}
}
