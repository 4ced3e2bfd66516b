package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/vrcreative/seo-codex/internal/store"
	"github.com/vrcreative/seo-codex/internal/testutil"
	"github.com/vrcreative/seo-codex/internal/validate"
)

const goodShows = `shows:
  - title: Test Show
    meta_title: Test Show | Amazing Entertainment
    meta_description: Experience an amazing test show with incredible energy and world-class performers. Perfect for corporate events in Nashville and beyond all year long.
    page_slug: test-show
    tags: [corporate-entertainment, high-energy, interactive, live-music, performance, innovation]
    imageurl: https://example.com/image.jpg
    tagline: Amazing entertainment for your event
    full_bio: Full biography text here.
`

const badShows = `[{"title":"Bad Show","page_slug":"Bad_Slug"}]`

func importOpts(t *testing.T, doc, name string) importOptions {
	t.Helper()
	return importOptions{
		Path:         writeFile(t, name, doc),
		RegistryPath: writeFile(t, "tag-registry.md", testRegistry),
		Rules:        validate.DefaultRules(),
	}
}

func TestRunImport(t *testing.T) {
	ss := store.NewShowStore(testutil.NewTestDB(t))
	ctx := context.Background()

	var out bytes.Buffer
	if err := runImport(ctx, &out, zerolog.Nop(), ss, importOpts(t, goodShows, "shows.yaml")); err != nil {
		t.Fatalf("runImport: %v\n%s", err, out.String())
	}

	n, err := ss.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestRunImport_RejectsFailingDocument(t *testing.T) {
	ss := store.NewShowStore(testutil.NewTestDB(t))
	ctx := context.Background()

	var out bytes.Buffer
	err := runImport(ctx, &out, zerolog.Nop(), ss, importOpts(t, badShows, "shows.json"))

	var vf *ValidationFailedError
	if !errors.As(err, &vf) {
		t.Fatalf("err = %v, want *ValidationFailedError", err)
	}
	if n, _ := ss.Count(ctx); n != 0 {
		t.Errorf("Count = %d, want 0 after rejected import", n)
	}
}

func TestRunImport_Force(t *testing.T) {
	ss := store.NewShowStore(testutil.NewTestDB(t))
	ctx := context.Background()

	opts := importOpts(t, badShows, "shows.json")
	opts.Force = true

	var out bytes.Buffer
	if err := runImport(ctx, &out, zerolog.Nop(), ss, opts); err != nil {
		t.Fatalf("runImport: %v", err)
	}
	rec, err := ss.GetBySlug(ctx, "Bad_Slug")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if rec.Title != "Bad Show" {
		t.Errorf("Title = %q", rec.Title)
	}
}

func TestRunImport_MissingFile(t *testing.T) {
	ss := store.NewShowStore(testutil.NewTestDB(t))
	opts := importOpts(t, goodShows, "shows.yaml")
	opts.Path = filepath.Join(t.TempDir(), "missing.yaml")

	var out bytes.Buffer
	err := runImport(context.Background(), &out, zerolog.Nop(), ss, opts)

	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *InputError", err)
	}
}
