package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/ilm-cli/internal/content"
)

type Theme struct {
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	Counter     lipgloss.Style
	Category    lipgloss.Style
	Source      lipgloss.Style
	Title       lipgloss.Style
	Arabic      lipgloss.Style
	Secondary   lipgloss.Style
	Body        lipgloss.Style
	Expand      lipgloss.Style
	Muted       lipgloss.Style
	Sheet       lipgloss.Style
	StateIdle   lipgloss.Style
	StateWarn   lipgloss.Style
	StateLoad   lipgloss.Style
}

func Default() Theme {
	burgundy := lipgloss.Color("#722345")
	rose := lipgloss.Color("#D4B4AC")
	cream := lipgloss.Color("#F6EEE9")
	dim := lipgloss.Color("#9C7F87")
	gold := lipgloss.Color("#C9A227")
	red := lipgloss.Color("#C0392B")

	return Theme{
		Header:      lipgloss.NewStyle().Background(burgundy).Foreground(rose).Padding(0, 1),
		HeaderTitle: lipgloss.NewStyle().Background(burgundy).Foreground(cream).Bold(true),
		Counter:     lipgloss.NewStyle().Background(burgundy).Foreground(rose),
		Category:    lipgloss.NewStyle().Foreground(burgundy).Background(rose).Bold(true).Padding(0, 1),
		Source:      lipgloss.NewStyle().Foreground(dim),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(rose),
		Arabic:      lipgloss.NewStyle().Foreground(cream).Bold(true),
		Secondary:   lipgloss.NewStyle().Italic(true).Foreground(dim),
		Body:        lipgloss.NewStyle().Foreground(cream),
		Expand:      lipgloss.NewStyle().Foreground(burgundy).Background(rose).Bold(true).Padding(0, 1),
		Muted:       lipgloss.NewStyle().Foreground(dim),
		Sheet:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(burgundy).Padding(0, 1),
		StateIdle:   lipgloss.NewStyle().Foreground(rose),
		StateWarn:   lipgloss.NewStyle().Foreground(red),
		StateLoad:   lipgloss.NewStyle().Foreground(gold),
	}
}

// KindBadge labels an item by its variant.
func (t Theme) KindBadge(item content.Item) string {
	label := ""
	switch item.Kind() {
	case content.KindVerse:
		label = "Verse"
	case content.KindInsight:
		label = "Insight"
	case content.KindTheme:
		label = "Theme"
	case content.KindOverview:
		label = "Overview"
	default:
		label = "Note"
	}
	return t.Muted.Render(label)
}

func (t Theme) StyleCategory(category string) string {
	if category == "" {
		return ""
	}
	return t.Category.Render(category)
}
