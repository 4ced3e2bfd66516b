// Package web holds the embedded page loaders and static assets served by
// the content server.
package web

import "embed"

// PagesFS contains the pre-built HTML loaders, one per page route.
//
//go:embed pages
var PagesFS embed.FS

// StaticFS contains CSS, JS, and other static assets.
//
//go:embed static
var StaticFS embed.FS

// README is served at the site root.
//
//go:embed README.md
var README []byte
