// Package bundle ships the content collections compiled into the binary.
package bundle

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/glabrego/ilm-cli/internal/content"
)

//go:embed data/content.json
var raw []byte

type document struct {
	Categories []category `json:"categories"`
}

type category struct {
	Label   string   `json:"label"`
	Sources []source `json:"sources"`
}

type source struct {
	Label string `json:"label"`
	Items []item `json:"items"`
}

type item struct {
	Kind            content.Kind `json:"kind"`
	Title           string       `json:"title"`
	Arabic          string       `json:"arabic"`
	Transliteration string       `json:"transliteration"`
	Translation     string       `json:"translation"`
	Ayah            string       `json:"ayah"`
	Summary         string       `json:"summary"`
	Text            string       `json:"text"`
}

// Collections decodes the bundled data file.
func Collections() ([]content.Collection, error) {
	return Decode(bytes.NewReader(raw))
}

func Decode(r io.Reader) ([]content.Collection, error) {
	var doc document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content bundle: %w", err)
	}

	out := make([]content.Collection, 0, len(doc.Categories))
	for _, cat := range doc.Categories {
		if cat.Label == "" {
			return nil, fmt.Errorf("content bundle: category without label")
		}
		collection := content.Collection{Label: cat.Label, Groups: make([]content.SourceGroup, 0, len(cat.Sources))}
		for _, src := range cat.Sources {
			group := content.SourceGroup{Label: src.Label, Items: make([]content.Item, 0, len(src.Items))}
			for i, it := range src.Items {
				converted, err := it.toItem()
				if err != nil {
					return nil, fmt.Errorf("content bundle %s/%s item %d: %w", cat.Label, src.Label, i, err)
				}
				group.Items = append(group.Items, converted)
			}
			collection.Groups = append(collection.Groups, group)
		}
		out = append(out, collection)
	}
	return out, nil
}

func (it item) toItem() (content.Item, error) {
	if it.Title == "" {
		return nil, fmt.Errorf("missing title")
	}
	switch it.Kind {
	case content.KindVerse:
		if it.Translation == "" {
			return nil, fmt.Errorf("verse %q has no translation", it.Title)
		}
		return content.Verse{Title: it.Title, Arabic: it.Arabic, Transliteration: it.Transliteration, Translation: it.Translation}, nil
	case content.KindInsight:
		return content.Insight{Title: it.Title, Ayah: it.Ayah, Text: it.Text}, nil
	case content.KindTheme:
		return content.Theme{Title: it.Title, Summary: it.Summary}, nil
	case content.KindOverview:
		return content.Overview{Title: it.Title, Text: it.Text}, nil
	case content.KindPlainText:
		return content.PlainText{Title: it.Title, Text: it.Text}, nil
	default:
		return nil, fmt.Errorf("unknown kind %q", it.Kind)
	}
}
