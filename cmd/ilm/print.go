package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/glabrego/ilm-cli/internal/content"
	"github.com/glabrego/ilm-cli/internal/feed"
	"github.com/glabrego/ilm-cli/internal/render/text"
	"github.com/glabrego/ilm-cli/internal/tui/view"
)

func printFeed(w io.Writer, state feed.State, limit, width int) {
	entries := state.Entries
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	for i, entry := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		l := entry.Item.ItemLabels()
		fmt.Fprintf(w, "%d. [%s · %s]\n", i+1, l.Category, l.Source)
		printItem(w, entry.Item, width, "   ")
	}
}

func printGroups(w io.Writer, collections []content.Collection, width int) {
	for ci, c := range collections {
		if ci > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s (%d)\n", c.Label, c.Len())
		fmt.Fprintln(w, strings.Repeat("=", len(c.Label)))
		for _, g := range c.Groups {
			fmt.Fprintf(w, "\n  %s\n", g.Label)
			for _, item := range g.Items {
				printItem(w, item, width, "    ")
			}
		}
	}
}

func printItem(w io.Writer, item content.Item, width int, indent string) {
	inner := max(width-len(indent), 20)
	d := content.DisplayOf(item)
	fmt.Fprintf(w, "%s%s\n", indent, d.Title)
	for _, s := range []string{d.Arabic, d.Secondary} {
		for _, line := range text.Wrap(s, inner) {
			if line != "" {
				fmt.Fprintf(w, "%s%s\n", indent, line)
			}
		}
	}
	lines, expandable := view.InlineBody(d.Body, inner)
	for _, line := range lines {
		fmt.Fprintf(w, "%s%s\n", indent, line)
	}
	if expandable {
		fmt.Fprintf(w, "%s…\n", indent)
	}
}
