package bundle

import (
	"strings"
	"testing"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
)

func TestCollections_DecodesFourCategories(t *testing.T) {
	collections, err := Collections()
	if err != nil {
		t.Fatalf("Collections returned error: %v", err)
	}

	want := []string{content.CategoryKeyVerses, content.CategoryInsights, content.CategoryThemes, content.CategoryOverviews}
	if len(collections) != len(want) {
		t.Fatalf("expected %d collections, got %d", len(want), len(collections))
	}
	for i, label := range want {
		if collections[i].Label != label {
			t.Fatalf("collection %d: expected %q, got %q", i, label, collections[i].Label)
		}
		if collections[i].Len() == 0 {
			t.Fatalf("collection %q is empty", label)
		}
	}
}

func TestCollections_ContainsLongAndShortBodies(t *testing.T) {
	collections, err := Collections()
	if err != nil {
		t.Fatalf("Collections returned error: %v", err)
	}
	var long, short int
	for _, c := range collections {
		for _, g := range c.Groups {
			for _, item := range g.Items {
				if feed.IsLong(content.Body(item)) {
					long++
				} else {
					short++
				}
			}
		}
	}
	if long == 0 || short == 0 {
		t.Fatalf("expected both long and short bodies, got long=%d short=%d", long, short)
	}
}

func TestDecode_RejectsUnknownKind(t *testing.T) {
	doc := `{"categories":[{"label":"X","sources":[{"label":"S","items":[{"kind":"poem","title":"t"}]}]}]}`
	_, err := Decode(strings.NewReader(doc))
	if err == nil || !strings.Contains(err.Error(), `unknown kind "poem"`) {
		t.Fatalf("expected unknown kind error, got %v", err)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	doc := `{"categories":[],"extra":true}`
	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestDecode_EmptyCategoriesAllowed(t *testing.T) {
	doc := `{"categories":[{"label":"Themes","sources":[]}]}`
	collections, err := Decode(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(collections) != 1 || collections[0].Len() != 0 {
		t.Fatalf("unexpected collections: %+v", collections)
	}
}
