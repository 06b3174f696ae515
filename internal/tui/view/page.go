package view

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
	"github.com/glabrego/ilm-cli/internal/render/text"
	tuitheme "github.com/glabrego/ilm-cli/internal/tui/theme"
)

// ExpandLabel is the affordance shown under a truncated body.
const ExpandLabel = "Expand (e)"

const pageMargin = 2

type PageParams struct {
	Entry  feed.Entry
	Width  int
	Height int
}

// InlineBody wraps body to width and applies the inline truncation policy:
// long bodies keep their first feed.InlineLineLimit lines and report that an
// expand affordance belongs under them.
func InlineBody(body string, width int) ([]string, bool) {
	lines := text.Lines(body, width)
	if !feed.IsLong(body) {
		return lines, false
	}
	head, _ := text.Head(lines, feed.InlineLineLimit)
	return head, true
}

// RenderPage draws one feed entry as exactly p.Height lines.
func RenderPage(p PageParams, th tuitheme.Theme) []string {
	width := max(p.Width-2*pageMargin, 10)
	d := content.DisplayOf(p.Entry.Item)
	labels := p.Entry.Item.ItemLabels()

	lines := make([]string, 0, p.Height)
	lines = append(lines, "")

	meta := th.StyleCategory(labels.Category)
	if labels.Source != "" {
		meta += " " + th.Source.Render(labels.Source)
	}
	meta += "  " + th.KindBadge(p.Entry.Item)
	lines = append(lines, meta, "")

	for _, l := range text.Wrap(d.Title, width) {
		lines = append(lines, th.Title.Render(l))
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

	body, expandable := InlineBody(d.Body, width)
	if len(body) > 0 {
		lines = append(lines, "")
		for _, l := range body {
			lines = append(lines, th.Body.Render(l))
		}
	}
	if expandable {
		lines = append(lines, "", th.Expand.Render(ExpandLabel))
	}

	return FitLines(leftPad(lines, pageMargin), p.Width, p.Height)
}

// FitLines truncates every line to width cells and pads or cuts the slice
// to exactly height lines.
func FitLines(lines []string, width, height int) []string {
	out := make([]string, height)
	for i := 0; i < height && i < len(lines); i++ {
		out[i] = ansi.Truncate(lines[i], width, "")
	}
	return out
}

func leftPad(lines []string, n int) []string {
	prefix := strings.Repeat(" ", n)
	out := make([]string, len(lines))
	for i, l := range lines {
		if l == "" {
			continue
		}
		out[i] = prefix + l
	}
	return out
}

func alignRight(line string, width int) string {
	gap := width - ansi.StringWidth(line)
	if gap <= 0 {
		return line
	}
	return strings.Repeat(" ", gap) + line
}
