package registry

// Set is an immutable approved-tag vocabulary.
type Set struct {
	tags    []string
	members map[string]struct{}
}

// NewSet builds a Set from tags. Duplicates collapse; Tags keeps the order
// of first appearance.
func NewSet(tags []string) Set {
	s := Set{members: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		if _, seen := s.members[t]; seen {
			continue
		}
		s.members[t] = struct{}{}
		s.tags = append(s.tags, t)
	}
	return s
}

// Contains reports whether tag is approved.
func (s Set) Contains(tag string) bool {
	_, ok := s.members[tag]
	return ok
}

// Len returns the number of distinct approved tags.
func (s Set) Len() int {
	return len(s.tags)
}

// Tags returns a copy of the distinct approved tags.
func (s Set) Tags() []string {
	return append([]string{}, s.tags...)
}
