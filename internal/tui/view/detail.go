package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/render/text"
	tuitheme "github.com/glabrego/ilm-cli/internal/tui/theme"
)

// DetailLines renders the complete item for the detail sheet. Nothing is
// truncated.
func DetailLines(item content.Item, width int, th tuitheme.Theme) []string {
	d := content.DisplayOf(item)
	labels := item.ItemLabels()

	lines := make([]string, 0, 32)
	for _, l := range text.Wrap(d.Title, width) {
		lines = append(lines, th.Title.Render(l))
	}
	lines = append(lines, th.Muted.Render(strings.Repeat("─", max(1, min(width, ansi.StringWidth(d.Title))))))

	var meta []string
	if labels.Category != "" {
		meta = append(meta, labels.Category)
	}
	if labels.Source != "" {
		meta = append(meta, labels.Source)
	}
	if len(meta) > 0 {
		lines = append(lines, th.Muted.Render(strings.Join(meta, " · ")))
	}

	if d.Arabic != "" {
		lines = append(lines, "")
		for _, l := range text.Wrap(d.Arabic, width) {
			lines = append(lines, th.Arabic.Render(alignRight(l, width)))
		}
	}
	if d.Secondary != "" {
		lines = append(lines, "")
		for _, l := range text.Wrap(d.Secondary, width) {
			lines = append(lines, th.Secondary.Render(l))
		}
	}
	if d.Body != "" {
		lines = append(lines, "")
		for _, l := range text.Lines(d.Body, width) {
			lines = append(lines, th.Body.Render(l))
		}
	}
	return lines
}

// CopyText is the plain text copied to the clipboard for an item.
func CopyText(item content.Item) string {
	d := content.DisplayOf(item)
	parts := []string{d.Title}
	for _, s := range []string{d.Arabic, d.Secondary, text.Plain(d.Body)} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if src := item.ItemLabels().Source; src != "" {
		parts = append(parts, "— "+src)
	}
	return strings.Join(parts, "\n\n")
}
