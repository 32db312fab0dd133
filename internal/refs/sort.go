package refs

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

const (
	SortFirstAuthor = "first-author"
	SortYear        = "year"
	SortKey         = "key"
)

var SortCriteria = []string{SortFirstAuthor, SortYear, SortKey}

// Sort returns a copy of entries ordered by the given criterion. The sort
// is stable; an empty criterion keeps source order.
func Sort(entries []model.Entry, by string) ([]model.Entry, error) {
	var keyOf func(model.Entry) string
	switch by {
	case "":
		return slices.Clone(entries), nil
	case SortFirstAuthor:
		keyOf = model.Entry.FirstAuthorLastName
	case SortYear:
		keyOf = func(e model.Entry) string {
			if !e.HasField("year") {
				return "0"
			}
			return model.Unwrap(e.Field("year"))
		}
	case SortKey:
		keyOf = func(e model.Entry) string { return e.Key }
	default:
		return nil, fmt.Errorf("unknown sort criterion %q (available: %s)", by, strings.Join(SortCriteria, ", "))
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b model.Entry) int {
		return strings.Compare(keyOf(a), keyOf(b))
	})
	return sorted, nil
}
