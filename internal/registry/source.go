package registry

import (
	"bytes"
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
)

// Source locates the registry document for one load.
type Source struct {
	Path string
	// Fallback is parsed instead when nothing exists at Path. A nil
	// Fallback keeps Load failing closed.
	Fallback []byte
}

// Load reads the registry like the package-level Load, substituting
// Fallback when the file at Path does not exist.
func (s Source) Load(log zerolog.Logger) []string {
	tags, err := ParseFile(s.Path)
	if err == nil {
		return tags
	}
	if s.Fallback != nil && errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.Path).Msg("tag registry not found, using built-in copy")
		tags, err = Parse(bytes.NewReader(s.Fallback))
		if err == nil {
			return tags
		}
	}
	log.Error().Err(err).Str("path", s.Path).Msg("error loading tag registry")
	return []string{}
}
