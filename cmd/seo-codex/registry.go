package main

import (
	"github.com/vrcreative/seo-codex/internal/registry"
	tagsystem "github.com/vrcreative/seo-codex/tag-system"
)

// registrySource resolves the configured registry path. Only the default
// path falls back to the embedded registry; an explicit path that cannot be
// read fails closed.
func registrySource(path string) registry.Source {
	src := registry.Source{Path: path}
	if path == tagsystem.DefaultPath {
		src.Fallback = tagsystem.Registry
	}
	return src
}
