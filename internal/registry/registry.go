// Package registry extracts the approved tag vocabulary from the tag
// registry document.
//
// The document is free text. The approved tags are the "* " bullet lines
// that follow a line mentioning "Approved tags" and precede a line starting
// with "Usage rules:". Everything outside that window is ignored.
package registry

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	startMarker  = "Approved tags"
	stopMarker   = "Usage rules:"
	bulletPrefix = "* "
)

// State is the position of a Scanner relative to the approved-tag list.
type State int

const (
	// BeforeList is the initial state; bullets are ignored.
	BeforeList State = iota
	// InList collects bullets until the stop marker.
	InList
)

func (s State) String() string {
	switch s {
	case BeforeList:
		return "BeforeList"
	case InList:
		return "InList"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Scanner walks registry lines one at a time.
type Scanner struct {
	state State
	done  bool
}

// State returns the current scanner state.
func (s *Scanner) State() State { return s.state }

// Done reports whether the stop marker has been seen.
func (s *Scanner) Done() bool { return s.done }

// Feed advances the scanner by one line. It returns the tag carried by the
// line, if any, and whether scanning is finished. Lines fed after the stop
// marker are ignored.
func (s *Scanner) Feed(line string) (tag string, ok bool, done bool) {
	if s.done {
		return "", false, true
	}

	switch s.state {
	case BeforeList:
		if strings.Contains(line, startMarker) {
			s.state = InList
		}
	case InList:
		if strings.HasPrefix(line, stopMarker) {
			s.done = true
			return "", false, true
		}
		if strings.HasPrefix(line, bulletPrefix) {
			tag = strings.TrimSpace(line[len(bulletPrefix):])
			return tag, true, false
		}
	}
	return "", false, false
}

// Parse extracts approved tags from r in order of appearance. Duplicates are
// kept.
func Parse(r io.Reader) ([]string, error) {
	var (
		sc   Scanner
		tags []string
	)

	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for lines.Scan() {
		tag, ok, done := sc.Feed(strings.TrimSuffix(lines.Text(), "\r"))
		if done {
			break
		}
		if ok {
			tags = append(tags, tag)
		}
	}
	if err := lines.Err(); err != nil {
		return nil, fmt.Errorf("scan registry: %w", err)
	}
	return tags, nil
}

// ParseFile reads and parses the registry document at path.
func ParseFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Load reads the registry at path. A document that cannot be read is logged
// and yields an empty list, so every tag then fails the membership check.
func Load(path string, log zerolog.Logger) []string {
	tags, err := ParseFile(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("error loading tag registry")
		return []string{}
	}
	return tags
}
