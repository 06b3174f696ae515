package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/glabrego/ilm-cli/internal/content"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "ilm.db")
	repo, err := NewRepository(dbPath)
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return repo
}

func TestRepository_SaveAndListCollections(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	collections := []content.Collection{
		{
			Label: content.CategoryKeyVerses,
			Groups: []content.SourceGroup{
				{Label: "Al-Fatiha", Items: []content.Item{
					content.Verse{Title: "Opening", Arabic: "بِسْمِ ٱللَّهِ", Transliteration: "Bismillah", Translation: "In the name of Allah"},
				}},
				{Label: "Al-Ikhlas", Items: []content.Item{
					content.Verse{Title: "One", Translation: "Say, He is Allah, One."},
					content.PlainText{Title: "Note", Text: "Recite thrice."},
				}},
			},
		},
		{Label: content.CategoryThemes},
		{
			Label: content.CategoryInsights,
			Groups: []content.SourceGroup{
				{Label: "Al-Baqarah", Items: []content.Item{content.Insight{Title: "Capacity", Ayah: "2:286", Text: "Reassurance."}}},
			},
		},
	}

	if err := repo.SaveCollections(ctx, collections); err != nil {
		t.Fatalf("SaveCollections returned error: %v", err)
	}

	listed, err := repo.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections returned error: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 collections, got %d", len(listed))
	}
	if listed[1].Label != content.CategoryThemes || listed[1].Len() != 0 {
		t.Fatalf("expected empty themes collection in position 1, got %+v", listed[1])
	}

	verses := listed[0]
	if len(verses.Groups) != 2 || verses.Groups[1].Label != "Al-Ikhlas" {
		t.Fatalf("unexpected verse groups: %+v", verses.Groups)
	}
	if got := verses.Groups[1].Items[1]; got != collections[0].Groups[1].Items[1] {
		t.Fatalf("expected %+v, got %+v", collections[0].Groups[1].Items[1], got)
	}
	if got := verses.Groups[0].Items[0]; got != collections[0].Groups[0].Items[0] {
		t.Fatalf("expected arabic verse to round trip, got %+v", got)
	}
}

func TestRepository_SaveCollections_Replaces(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := []content.Collection{{Label: "A", Groups: []content.SourceGroup{{Label: "g", Items: []content.Item{content.Theme{Title: "old"}}}}}}
	if err := repo.SaveCollections(ctx, first); err != nil {
		t.Fatalf("initial SaveCollections returned error: %v", err)
	}
	second := []content.Collection{{Label: "B", Groups: []content.SourceGroup{{Label: "g", Items: []content.Item{content.Theme{Title: "new"}}}}}}
	if err := repo.SaveCollections(ctx, second); err != nil {
		t.Fatalf("second SaveCollections returned error: %v", err)
	}

	listed, err := repo.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections returned error: %v", err)
	}
	if len(listed) != 1 || listed[0].Label != "B" {
		t.Fatalf("expected only collection B, got %+v", listed)
	}
	n, err := repo.CountItems(ctx)
	if err != nil {
		t.Fatalf("CountItems returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 item, got %d", n)
	}
}

func TestRepository_EmptyDatabase(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	listed, err := repo.ListCollections(ctx)
	if err != nil {
		t.Fatalf("ListCollections returned error: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no collections, got %d", len(listed))
	}
	if err := repo.CheckWritable(ctx); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}
}
