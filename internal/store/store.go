package store

import (
	"context"
	"errors"

	"github.com/vrcreative/seo-codex/internal/show"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ShowStoreIface exposes the published catalog.
// Handlers and commands go through this interface rather than the DB.
type ShowStoreIface interface {
	ReplaceAll(ctx context.Context, records []show.Record) error
	ListAll(ctx context.Context) ([]show.Record, error)
	GetBySlug(ctx context.Context, slug string) (show.Record, error)
	Count(ctx context.Context) (int, error)
}

var _ ShowStoreIface = (*ShowStore)(nil)
