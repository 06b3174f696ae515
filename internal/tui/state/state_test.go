package state

import (
	"reflect"
	"testing"
)

func TestClampCursor(t *testing.T) {
	if got := ClampCursor(-1, 3); got != 0 {
		t.Fatalf("expected clamp to 0, got %d", got)
	}
	if got := ClampCursor(3, 3); got != 2 {
		t.Fatalf("expected clamp to 2, got %d", got)
	}
	if got := ClampCursor(1, 3); got != 1 {
		t.Fatalf("expected keep 1, got %d", got)
	}
	if got := ClampCursor(5, 0); got != 0 {
		t.Fatalf("expected 0 for empty list, got %d", got)
	}
}

func TestPageHeight(t *testing.T) {
	if got := PageHeight(24); got != 21 {
		t.Fatalf("expected page height 21, got %d", got)
	}
	if got := PageHeight(2); got != 3 {
		t.Fatalf("expected minimum page height 3, got %d", got)
	}
}

func TestVisibleOffsets_AlignedPage(t *testing.T) {
	got := VisibleOffsets(ScrollTarget(2, 20), 20, 20, 5)
	want := map[int]float64{2: 10}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected offsets: got=%v want=%v", got, want)
	}
}

func TestVisibleOffsets_BetweenPages(t *testing.T) {
	got := VisibleOffsets(25, 20, 20, 5)
	want := map[int]float64{1: 5, 2: 25}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected offsets: got=%v want=%v", got, want)
	}
}

func TestVisibleOffsets_ClampsToFeed(t *testing.T) {
	if got := VisibleOffsets(-5, 20, 20, 3); !reflect.DeepEqual(got, map[int]float64{0: 15}) {
		t.Fatalf("unexpected offsets for overscroll: %v", got)
	}
	if got := VisibleOffsets(50, 20, 20, 3); !reflect.DeepEqual(got, map[int]float64{2: 0}) {
		t.Fatalf("unexpected offsets past the end: %v", got)
	}
	if got := VisibleOffsets(0, 20, 20, 0); len(got) != 0 {
		t.Fatalf("expected no offsets for empty feed, got %v", got)
	}
}

func TestSettled(t *testing.T) {
	if !Settled(39.995, 0.001, 40) {
		t.Fatal("expected settled spring")
	}
	if Settled(30, 0.5, 40) {
		t.Fatal("expected moving spring")
	}
}

func TestWindowStart(t *testing.T) {
	if got := WindowStart(20.6); got != 21 {
		t.Fatalf("expected 21, got %d", got)
	}
}
