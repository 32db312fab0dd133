// Package refs holds the reference-list checks: duplicate titles, sorting
// and the citation keys a document uses.
//
// Duplicate detection compares the raw title values, braces included, so
// "{Deep Learning}" is not found inside "{A Study of Deep Learning Methods}".
package refs

import (
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

// DuplicatePair is two entries whose titles look alike. First appears
// before Second in the input.
type DuplicatePair struct {
	First  model.Entry
	Second model.Entry
}

// FindDuplicates compares every pair of entries and reports those where one
// lower-cased title contains the other. This is a loose heuristic: a short
// title that prefixes a longer one is reported too.
func FindDuplicates(entries []model.Entry) []DuplicatePair {
	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = strings.ToLower(e.Field("title"))
	}

	var duplicates []DuplicatePair
	for i := range entries {
		for j := i + 1; j < len(entries); j++ {
			a, b := titles[i], titles[j]
			if a == "" || b == "" {
				continue
			}
			if strings.Contains(b, a) || strings.Contains(a, b) {
				duplicates = append(duplicates, DuplicatePair{First: entries[i], Second: entries[j]})
			}
		}
	}
	return duplicates
}
