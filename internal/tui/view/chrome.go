package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	tuitheme "github.com/glabrego/ilm-cli/internal/tui/theme"
)

// HeaderBar is the full-width title bar with the position counter on the
// right. focus is zero-based; a negative focus shows no counter.
func HeaderBar(title string, focus, total, width int, th tuitheme.Theme) string {
	left := th.HeaderTitle.Render(title)
	right := ""
	if focus >= 0 && total > 0 {
		right = th.Counter.Render(fmt.Sprintf("%d / %d", focus+1, total))
	}
	inner := max(width-2, 0)
	gap := inner - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return th.Header.Width(width).Render(left + th.Counter.Render(strings.Repeat(" ", gap)) + right)
}

func Message(loading, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render(state)
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render(state)
	case "loading":
		stateLabel = th.StateLoad.Render(state)
	}
	return stateLabel + th.Muted.Render(" | ") + main
}

// EmptyFeed fills the page area when there is nothing to show.
func EmptyFeed(width, height int, th tuitheme.Theme) []string {
	lines := []string{"", "  " + th.Title.Render("Nothing here yet"), "", "  " + th.Muted.Render("Run `ilm seed` or press r to try again.")}
	return FitLines(lines, width, height)
}
