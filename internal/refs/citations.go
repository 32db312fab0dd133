package refs

import (
	"regexp"
	"sort"

	"github.com/nakachan-ing/nihref/internal/model"
)

// @key or @key[12]; the page suffix is matched but not kept.
var citationRe = regexp.MustCompile(`@([a-zA-Z0-9_-]+)(?:\[\d+\])?`)

// ExtractCitations returns the set of keys cited in a Typst document.
func ExtractCitations(text string) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, m := range citationRe.FindAllStringSubmatch(text, -1) {
		keys[m[1]] = struct{}{}
	}
	return keys
}

func SortedKeys(keys map[string]struct{}) []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CitationReport cross-checks cited keys against a bibliography.
type CitationReport struct {
	Cited   []string // sorted
	Missing []string // cited but not in the bibliography, sorted
	Unused  []string // in the bibliography but never cited, in bibliography order
}

func CheckCitations(cited map[string]struct{}, entries []model.Entry) CitationReport {
	known := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		known[e.Key] = struct{}{}
	}

	report := CitationReport{Cited: SortedKeys(cited)}
	for _, key := range report.Cited {
		if _, ok := known[key]; !ok {
			report.Missing = append(report.Missing, key)
		}
	}

	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		if _, ok := cited[e.Key]; !ok {
			report.Unused = append(report.Unused, e.Key)
		}
	}
	return report
}
