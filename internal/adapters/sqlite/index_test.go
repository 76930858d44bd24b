package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"relato/internal/domain"
)

func openTestIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex()
	if err := idx.Open(filepath.Join(t.TempDir(), "nested", "content.db")); err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { idx.Close() })
	return idx
}

func samplePage() *domain.Page {
	return &domain.Page{
		Title: "Cisco",
		Sections: []domain.SectionDecl{
			{ID: "hero", Nav: "Inicio", Kind: "generic", Title: "Historia", Blocks: []domain.Block{
				{Ref: "lead", Text: "Pero, ¿qué pasa?"},
				{Ref: "hint", Text: "flechas", Static: true},
			}},
			{ID: "problema", Nav: "Problema", Kind: "counters", Title: "Desafío", Counters: []domain.CounterSpec{
				{Target: "ciscoPercentage", Value: 22, DurationMs: 1500},
				{Target: "contador", Value: 195000, DurationMs: 2500, DelayMs: 800, Grouping: true, Suffix: "+"},
			}},
			{ID: "transformacion", Nav: "WPC", Kind: "transform", Title: "Transformación",
				Connector: &domain.Connector{Ref: "transformLine", From: "cisco", To: "WPC"}},
			{ID: "costos", Nav: "Costos", Kind: "generic", Title: "Costos", Calculator: true},
		},
		Gallery: []domain.GalleryImage{
			{ID: "galeria_1.jpg", URL: "/images/galeria_1.jpg", FallbackURL: "https://example.com/1.jpeg"},
			{ID: "galeria_2.jpg", URL: "/images/galeria_2.jpg", FallbackURL: "https://example.com/2.jpeg",
				Caption: &domain.Caption{Title: "Prensa", Description: "Moldeado del WPC"}},
		},
	}
}

func TestIndex_ImportAndLoad(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()

	if !idx.Stale(ctx) {
		t.Error("empty index should be stale")
	}

	want := samplePage()
	if err := idx.Import(ctx, want); err != nil {
		t.Fatalf("Import: %v", err)
	}
	if idx.Stale(ctx) {
		t.Error("imported index should not be stale")
	}

	got, err := idx.LoadPage(ctx)
	if err != nil {
		t.Fatalf("LoadPage: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadPage mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestIndex_ImportReplaces(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()

	if err := idx.Import(ctx, samplePage()); err != nil {
		t.Fatal(err)
	}
	smaller := &domain.Page{Title: "Solo", Sections: []domain.SectionDecl{{ID: "solo", Kind: "generic"}}}
	if err := idx.Import(ctx, smaller); err != nil {
		t.Fatal(err)
	}

	got, err := idx.LoadPage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Solo" || len(got.Sections) != 1 || len(got.Gallery) != 0 {
		t.Errorf("expected only the second import, got %+v", got)
	}
}

func TestIndex_ImportInvalidKeepsPrevious(t *testing.T) {
	idx := openTestIndex(t)
	ctx := context.Background()

	if err := idx.Import(ctx, samplePage()); err != nil {
		t.Fatal(err)
	}
	err := idx.Import(ctx, &domain.Page{Title: "broken"})
	if !errors.Is(err, domain.ErrInvalidPage) {
		t.Fatalf("expected ErrInvalidPage, got %v", err)
	}

	got, err := idx.LoadPage(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Cisco" {
		t.Errorf("invalid import must not touch stored page, got %q", got.Title)
	}
}

func TestIndex_LoadEmpty(t *testing.T) {
	idx := openTestIndex(t)

	_, err := idx.LoadPage(context.Background())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")

	a := DefaultPath("/pages/a.yaml")
	b := DefaultPath("/pages/b.yaml")
	if a == b {
		t.Error("different content files should map to different databases")
	}
	if filepath.Dir(a) != "/data/relato" {
		t.Errorf("unexpected dir %q", filepath.Dir(a))
	}
}
