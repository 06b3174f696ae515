// Package content models the devotional content shown in the feed.
//
// Item is a closed set of variants: Verse, Insight, Theme, Overview and
// PlainText. Packages outside content cannot add variants, so DisplayOf can
// switch over all of them exhaustively.
package content

import (
	"fmt"

	"github.com/samber/lo"
)

type Kind string

const (
	KindVerse     Kind = "verse"
	KindInsight   Kind = "insight"
	KindTheme     Kind = "theme"
	KindOverview  Kind = "overview"
	KindPlainText Kind = "text"
)

// Bundled category labels, one per content provider.
const (
	CategoryKeyVerses = "Key Verses"
	CategoryInsights  = "Insights"
	CategoryThemes    = "Themes"
	CategoryOverviews = "Overviews"
)

// Labels places an item in the feed: Category names the collection it came
// from and Source names its group inside that collection (usually a surah).
type Labels struct {
	Category string
	Source   string
}

type Item interface {
	Kind() Kind
	ItemLabels() Labels
	withLabels(Labels) Item
}

type Verse struct {
	Labels
	Title           string
	Arabic          string
	Transliteration string
	Translation     string
}

type Insight struct {
	Labels
	Title string
	// Ayah is the verse reference the insight is about, e.g. "2:255".
	Ayah string
	Text string
}

type Theme struct {
	Labels
	Title   string
	Summary string
}

type Overview struct {
	Labels
	Title string
	Text  string
}

type PlainText struct {
	Labels
	Title string
	Text  string
}

func (v Verse) Kind() Kind     { return KindVerse }
func (v Insight) Kind() Kind   { return KindInsight }
func (v Theme) Kind() Kind     { return KindTheme }
func (v Overview) Kind() Kind  { return KindOverview }
func (v PlainText) Kind() Kind { return KindPlainText }

func (v Verse) ItemLabels() Labels     { return v.Labels }
func (v Insight) ItemLabels() Labels   { return v.Labels }
func (v Theme) ItemLabels() Labels     { return v.Labels }
func (v Overview) ItemLabels() Labels  { return v.Labels }
func (v PlainText) ItemLabels() Labels { return v.Labels }

func (v Verse) withLabels(l Labels) Item     { v.Labels = l; return v }
func (v Insight) withLabels(l Labels) Item   { v.Labels = l; return v }
func (v Theme) withLabels(l Labels) Item     { v.Labels = l; return v }
func (v Overview) withLabels(l Labels) Item  { v.Labels = l; return v }
func (v PlainText) withLabels(l Labels) Item { v.Labels = l; return v }

// Tag returns a copy of item carrying the given category and source labels.
func Tag(item Item, category, source string) Item {
	return item.withLabels(Labels{Category: category, Source: source})
}

// Display is the renderable view of any item.
type Display struct {
	Title     string
	Arabic    string
	Secondary string
	Body      string
}

func DisplayOf(item Item) Display {
	switch v := item.(type) {
	case Verse:
		return Display{Title: v.Title, Arabic: v.Arabic, Secondary: v.Transliteration, Body: v.Translation}
	case Insight:
		return Display{Title: v.Title, Secondary: v.Ayah, Body: v.Text}
	case Theme:
		return Display{Title: v.Title, Body: v.Summary}
	case Overview:
		return Display{Title: v.Title, Body: v.Text}
	case PlainText:
		return Display{Title: v.Title, Body: v.Text}
	default:
		panic(fmt.Sprintf("content: unknown item variant %T", item))
	}
}

// Body is shorthand for DisplayOf(item).Body.
func Body(item Item) string {
	return DisplayOf(item).Body
}

// FromDisplay rebuilds an item of the given kind from its flattened display
// fields. It is the inverse of DisplayOf for every kind.
func FromDisplay(kind Kind, labels Labels, d Display) (Item, error) {
	switch kind {
	case KindVerse:
		return Verse{Labels: labels, Title: d.Title, Arabic: d.Arabic, Transliteration: d.Secondary, Translation: d.Body}, nil
	case KindInsight:
		return Insight{Labels: labels, Title: d.Title, Ayah: d.Secondary, Text: d.Body}, nil
	case KindTheme:
		return Theme{Labels: labels, Title: d.Title, Summary: d.Body}, nil
	case KindOverview:
		return Overview{Labels: labels, Title: d.Title, Text: d.Body}, nil
	case KindPlainText:
		return PlainText{Labels: labels, Title: d.Title, Text: d.Body}, nil
	default:
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
}

// SourceGroup is an ordered run of items sharing one source label.
type SourceGroup struct {
	Label string
	Items []Item
}

// Collection is everything one content provider offers, grouped by source.
type Collection struct {
	Label  string
	Groups []SourceGroup
}

func (c Collection) Len() int {
	return lo.SumBy(c.Groups, func(g SourceGroup) int { return len(g.Items) })
}

// TotalItems counts the items across all collections.
func TotalItems(collections []Collection) int {
	return lo.SumBy(collections, func(c Collection) int { return c.Len() })
}
