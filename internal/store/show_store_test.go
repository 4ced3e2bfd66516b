package store_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vrcreative/seo-codex/internal/show"
	"github.com/vrcreative/seo-codex/internal/store"
	"github.com/vrcreative/seo-codex/internal/testutil"
)

func newShowStore(t *testing.T) *store.ShowStore {
	t.Helper()
	return store.NewShowStore(testutil.NewTestDB(t))
}

func TestShowStore_ReplaceAll_ListAll(t *testing.T) {
	ss := newShowStore(t)
	ctx := context.Background()

	second := show.Record{Title: "Fire Dancers", PageSlug: "fire-dancers"}
	third := show.Record{Title: "Empty Tags", PageSlug: "empty-tags", TagsState: show.TagsPresent}
	if err := ss.ReplaceAll(ctx, []show.Record{show.Sample(), second, third}); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := ss.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !reflect.DeepEqual(got[0], show.Sample()) {
		t.Errorf("got[0] = %+v, want sample record", got[0])
	}
	if got[1].Title != "Fire Dancers" || got[1].TagsState != show.TagsAbsent {
		t.Errorf("got[1] = %+v, want absent tags", got[1])
	}
	if got[2].TagsState != show.TagsPresent || len(got[2].Tags) != 0 {
		t.Errorf("got[2] = %+v, want present empty tags", got[2])
	}
}

func TestShowStore_ReplaceAll_Replaces(t *testing.T) {
	ss := newShowStore(t)
	ctx := context.Background()

	if err := ss.ReplaceAll(ctx, []show.Record{{PageSlug: "a"}, {PageSlug: "b"}}); err != nil {
		t.Fatalf("ReplaceAll first: %v", err)
	}
	if err := ss.ReplaceAll(ctx, []show.Record{{PageSlug: "c"}}); err != nil {
		t.Fatalf("ReplaceAll second: %v", err)
	}

	n, err := ss.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
	if _, err := ss.GetBySlug(ctx, "a"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetBySlug(a) = %v, want ErrNotFound", err)
	}
}

func TestShowStore_GetBySlug(t *testing.T) {
	ss := newShowStore(t)
	ctx := context.Background()

	recs := []show.Record{
		{Title: "First", PageSlug: "dup"},
		{Title: "Second", PageSlug: "dup"},
	}
	if err := ss.ReplaceAll(ctx, recs); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := ss.GetBySlug(ctx, "dup")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.Title != "First" {
		t.Errorf("GetBySlug(dup).Title = %q, want First", got.Title)
	}

	if _, err := ss.GetBySlug(ctx, "nonexistent"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetBySlug(nonexistent) = %v, want ErrNotFound", err)
	}
}
