// Package style renders parsed entries as citation text.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

type Style interface {
	Name() string
	Render(e model.Entry) (string, error)
}

var styles = map[string]Style{}

func register(s Style) {
	styles[s.Name()] = s
}

func init() {
	register(NIH{})
	register(APA{})
	register(BibTeX{})
	register(Hayagriva{})
}

// Lookup returns the style registered under name.
func Lookup(name string) (Style, error) {
	s, ok := styles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown style %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return s, nil
}

func Names() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Format renders e with s. A failure, including a panic inside the
// renderer, is reported in place of the citation so the caller can keep
// going with the remaining entries.
func Format(s Style, e model.Entry) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = formatError(e, fmt.Errorf("%v", r))
		}
	}()

	out, err := s.Render(e)
	if err != nil {
		return formatError(e, err)
	}
	return out
}

func formatError(e model.Entry, err error) string {
	return fmt.Sprintf("Error formatting reference %s: %s", e.Key, err.Error())
}

// FormatNIH renders e as an NIH-style citation line.
func FormatNIH(e model.Entry) string {
	return Format(NIH{}, e)
}

func FormatAll(s Style, entries []model.Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, Format(s, e))
	}
	return lines
}

// Join separates rendered references with a blank line.
func Join(lines []string) string {
	return strings.Join(lines, "\n\n")
}

var braceRemover = strings.NewReplacer("{", "", "}", "")

// cleanTitle drops wrapping braces and a trailing period, then any brace
// left inside the title (LaTeX case protection).
func cleanTitle(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	v = strings.Trim(v, "{}")
	v = strings.TrimRight(v, ".")
	return braceRemover.Replace(v)
}

func pages(e model.Entry) string {
	return strings.ReplaceAll(model.Unwrap(e.Field("pages")), "--", "-")
}
