// Package tagsystem ships the default tag registry inside the binary.
package tagsystem

import _ "embed"

// DefaultPath is the registry location relative to the repository root.
const DefaultPath = "tag-system/tag-registry.md"

// Registry is the tag registry document as of build time.
//
//go:embed tag-registry.md
var Registry []byte
