package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vrcreative/seo-codex/internal/show"
)

// showRow is a row in the shows table.
type showRow struct {
	ID              string         `db:"id"`
	Position        int            `db:"position"`
	PageSlug        string         `db:"page_slug"`
	Title           string         `db:"title"`
	MetaTitle       string         `db:"meta_title"`
	MetaDescription string         `db:"meta_description"`
	Tags            sql.NullString `db:"tags"`
	ImageURL        string         `db:"imageurl"`
	Tagline         string         `db:"tagline"`
	FullBio         string         `db:"full_bio"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r showRow) record() (show.Record, error) {
	rec := show.Record{
		Title:           r.Title,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		PageSlug:        r.PageSlug,
		ImageURL:        r.ImageURL,
		Tagline:         r.Tagline,
		FullBio:         r.FullBio,
	}
	if r.Tags.Valid {
		if err := json.Unmarshal([]byte(r.Tags.String), &rec.Tags); err != nil {
			return show.Record{}, fmt.Errorf("decode tags of show %s: %w", r.ID, err)
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		rec.TagsState = show.TagsPresent
	}
	return rec, nil
}

// ShowStore is the sqlx-backed implementation of ShowStoreIface.
type ShowStore struct {
	db *sqlx.DB
}

func NewShowStore(db *sqlx.DB) *ShowStore {
	return &ShowStore{db: db}
}

const showColumns = `id, position, page_slug, title, meta_title, meta_description, tags, imageurl, tagline, full_bio, created_at`

// ReplaceAll swaps the stored catalog for records in one transaction.
// Record order is kept.
func (s *ShowStore) ReplaceAll(ctx context.Context, records []show.Record) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM shows`); err != nil {
		return fmt.Errorf("clear shows: %w", err)
	}

	insert := tx.Rebind(`INSERT INTO shows (` + showColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	now := time.Now().UTC()
	for i, rec := range records {
		var tags sql.NullString
		if rec.HasTags() {
			list := rec.Tags
			if list == nil {
				list = []string{}
			}
			b, err := json.Marshal(list)
			if err != nil {
				return fmt.Errorf("encode tags: %w", err)
			}
			tags = sql.NullString{String: string(b), Valid: true}
		}
		_, err := tx.ExecContext(ctx, insert,
			uuid.New().String(), i, rec.PageSlug, rec.Title, rec.MetaTitle, rec.MetaDescription,
			tags, rec.ImageURL, rec.Tagline, rec.FullBio, now)
		if err != nil {
			return fmt.Errorf("insert show %d: %w", i+1, err)
		}
	}

	return tx.Commit()
}

// ListAll returns the catalog in import order.
func (s *ShowStore) ListAll(ctx context.Context) ([]show.Record, error) {
	var rows []showRow
	err := s.db.SelectContext(ctx, &rows, `SELECT `+showColumns+` FROM shows ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	records := make([]show.Record, 0, len(rows))
	for _, r := range rows {
		rec, err := r.record()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetBySlug returns the first show with slug, or ErrNotFound.
func (s *ShowStore) GetBySlug(ctx context.Context, slug string) (show.Record, error) {
	var r showRow
	q := s.db.Rebind(`SELECT ` + showColumns + ` FROM shows WHERE page_slug = ? ORDER BY position ASC LIMIT 1`)
	err := s.db.GetContext(ctx, &r, q, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return show.Record{}, ErrNotFound
	}
	if err != nil {
		return show.Record{}, err
	}
	return r.record()
}

// Count returns the number of stored shows.
func (s *ShowStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM shows`); err != nil {
		return 0, err
	}
	return n, nil
}
