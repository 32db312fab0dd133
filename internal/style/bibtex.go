package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

// BibTeX writes the entry back out with sorted, brace-delimited fields.
type BibTeX struct{}

func (BibTeX) Name() string { return "bibtex" }

func (BibTeX) Render(e model.Entry) (string, error) {
	if e.Key == "" {
		return "", fmt.Errorf("entry has no citation key")
	}
	entryType := e.EntryType
	if entryType == "" {
		entryType = "misc"
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, e.Key))
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  %s = %s,\n", name, bibValue(e.Fields[name])))
	}
	b.WriteString("}")
	return b.String(), nil
}

// bibValue keeps values that are already delimited and wraps the rest in braces.
func bibValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "{}"
	}
	if (strings.HasPrefix(v, "{") && strings.HasSuffix(v, "}")) ||
		(strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) && len(v) > 1) {
		return v
	}
	return "{" + v + "}"
}
