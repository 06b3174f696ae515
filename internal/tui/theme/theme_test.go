package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/glabrego/ilm-cli/internal/content"
)

func TestKindBadge_ByVariant(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	cases := []struct {
		item content.Item
		want string
	}{
		{content.Verse{}, "Verse"},
		{content.Insight{}, "Insight"},
		{content.Theme{}, "Theme"},
		{content.Overview{}, "Overview"},
		{content.PlainText{}, "Note"},
	}
	for _, tc := range cases {
		got := th.KindBadge(tc.item)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("expected %q in badge, got %q", tc.want, got)
		}
		if !strings.Contains(got, "\x1b[") {
			t.Fatalf("expected styled badge, got %q", got)
		}
	}
}

func TestStyleCategory(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.StyleCategory(""); got != "" {
		t.Fatalf("expected empty category to stay empty, got %q", got)
	}
	got := th.StyleCategory(content.CategoryKeyVerses)
	if !strings.Contains(got, content.CategoryKeyVerses) || !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected styled category, got %q", got)
	}
}
