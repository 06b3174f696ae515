// Package text turns content bodies into wrapped terminal lines.
//
// Bodies are plain text, optionally carrying a light inline markup subset
// (<p>, <br>, <em>, <strong>, <blockquote> and entities) as authored in the
// bundled data file.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rivo/uniseg"
)

// Plain strips markup from body. Bodies without markup are returned as-is.
func Plain(body string) string {
	if !strings.ContainsAny(body, "<&") {
		return body
	}
	nodes, err := nethtml.ParseFragment(strings.NewReader(body), &nethtml.Node{
		Type:     nethtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return body
	}

	var paragraphs []string
	var cur strings.Builder
	flush := func() {
		if p := strings.TrimSpace(cur.String()); p != "" {
			paragraphs = append(paragraphs, p)
		}
		cur.Reset()
	}

	var walk func(n *nethtml.Node)
	walk = func(n *nethtml.Node) {
		switch n.Type {
		case nethtml.TextNode:
			cur.WriteString(collapseSpace(n.Data))
			return
		case nethtml.ElementNode:
			switch n.DataAtom {
			case atom.Br:
				cur.WriteString("\n")
				return
			case atom.Script, atom.Style:
				return
			}
		}
		block := n.Type == nethtml.ElementNode && isBlock(n.DataAtom)
		if block {
			flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if block {
			flush()
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	flush()
	return strings.Join(paragraphs, "\n\n")
}

// Length counts user-perceived characters (grapheme clusters) of the plain
// body, so combining marks in Arabic text do not inflate it.
func Length(body string) int {
	return uniseg.GraphemeClusterCount(Plain(body))
}

// Lines is Wrap(Plain(body), width).
func Lines(body string, width int) []string {
	return Wrap(Plain(body), width)
}

// Wrap breaks text on word boundaries so no line is wider than width cells.
// Newlines start a new line; words wider than width are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		lineWidth := 0
		for _, word := range words {
			for uniseg.StringWidth(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
					lineWidth = 0
				}
				head, tail := splitAtWidth(word, width)
				out = append(out, head)
				word = tail
			}

			w := uniseg.StringWidth(word)
			if line == "" {
				line = word
				lineWidth = w
				continue
			}
			if lineWidth+1+w <= width {
				line += " " + word
				lineWidth += 1 + w
				continue
			}
			out = append(out, line)
			line = word
			lineWidth = w
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}

// Head returns at most n lines and whether any were dropped.
func Head(lines []string, n int) ([]string, bool) {
	if n < 0 || len(lines) <= n {
		return lines, false
	}
	return lines[:n], true
}

func splitAtWidth(s string, width int) (string, string) {
	g := uniseg.NewGraphemes(s)
	w := 0
	end := 0
	for g.Next() {
		gw := g.Width()
		if w+gw > width && end > 0 {
			break
		}
		w += gw
		_, end = g.Positions()
	}
	return s[:end], s[end:]
}

func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s != "" {
			return " "
		}
		return ""
	}
	out := strings.Join(fields, " ")
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(first) {
		out = " " + out
	}
	if last, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(last) {
		out += " "
	}
	return out
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Blockquote, atom.Li, atom.Ul, atom.Ol, atom.H1, atom.H2, atom.H3, atom.H4:
		return true
	}
	return false
}
