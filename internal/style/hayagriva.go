package style

import (
	"fmt"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
	"gopkg.in/yaml.v3"
)

// Hayagriva renders an entry as a Typst bibliography YAML document with a
// single top-level key, so rendered entries can be concatenated.
type Hayagriva struct{}

func (Hayagriva) Name() string { return "hayagriva" }

type hayagrivaParent struct {
	Type   string `yaml:"type"`
	Title  string `yaml:"title,omitempty"`
	Volume string `yaml:"volume,omitempty"`
	Issue  string `yaml:"issue,omitempty"`
}

type hayagrivaEntry struct {
	Type      string           `yaml:"type"`
	Title     string           `yaml:"title,omitempty"`
	Author    []string         `yaml:"author,omitempty"`
	Date      string           `yaml:"date,omitempty"`
	PageRange string           `yaml:"page-range,omitempty"`
	Publisher string           `yaml:"publisher,omitempty"`
	DOI       string           `yaml:"doi,omitempty"`
	URL       string           `yaml:"url,omitempty"`
	Parent    *hayagrivaParent `yaml:"parent,omitempty"`
}

var hayagrivaTypes = map[string]string{
	"article":       "article",
	"book":          "book",
	"inbook":        "chapter",
	"incollection":  "chapter",
	"inproceedings": "article",
	"conference":    "article",
	"proceedings":   "proceedings",
	"phdthesis":     "thesis",
	"mastersthesis": "thesis",
	"techreport":    "report",
	"online":        "web",
}

func (Hayagriva) Render(e model.Entry) (string, error) {
	if e.Key == "" {
		return "", fmt.Errorf("entry has no citation key")
	}

	typ, ok := hayagrivaTypes[e.EntryType]
	if !ok {
		typ = "misc"
	}
	entry := hayagrivaEntry{
		Type:      typ,
		Title:     cleanTitle(e.Field("title")),
		Author:    e.Authors(),
		Date:      model.Unwrap(e.Field("year")),
		PageRange: pages(e),
		Publisher: model.Unwrap(e.Field("publisher")),
		DOI:       model.Unwrap(e.Field("doi")),
		URL:       model.Unwrap(e.Field("url")),
	}

	parentTitle := model.Unwrap(e.Field("journal"))
	parentType := "periodical"
	if parentTitle == "" {
		parentTitle = model.Unwrap(e.Field("booktitle"))
		parentType = "proceedings"
	}
	if parentTitle != "" {
		entry.Parent = &hayagrivaParent{
			Type:   parentType,
			Title:  parentTitle,
			Volume: model.Unwrap(e.Field("volume")),
			Issue:  model.Unwrap(e.Field("number")),
		}
	}

	out, err := yaml.Marshal(map[string]hayagrivaEntry{e.Key: entry})
	if err != nil {
		return "", fmt.Errorf("failed to encode YAML: %w", err)
	}
	return strings.TrimRight(string(out), "\n"), nil
}
