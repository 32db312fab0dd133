// Package bibtex reads the loose BibTeX dialect used in grant reference files.
//
// A record is recognised only in the shape
//
//	@type{key,
//	    name = value,
//	    ...
//	}
//
// where the closing brace sits at the start of a line. Anything else,
// including a record whose closing brace is not preceded by a newline,
// is skipped without an error.
//
// The key is stored exactly as written between "{" and ",", so a header such
// as "@article{smith2020 ," yields the key "smith2020 " and will not match a
// lookup or citation of smith2020.
package bibtex

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
)

// The body ends at the first "\n}" after the header, so a record missing its
// terminator swallows text up to the next record's terminator.
var recordRe = regexp.MustCompile(`(?s)@([\p{L}\p{N}_]+)\s*\{\s*([^,]+),\s*(.*?)\n\}`)

// Parse returns every record found in text, in source order.
func Parse(text string) []model.Entry {
	matches := recordRe.FindAllStringSubmatch(text, -1)
	entries := make([]model.Entry, 0, len(matches))
	for _, m := range matches {
		entries = append(entries, model.Entry{
			EntryType: strings.ToLower(m[1]),
			Key:       m[2],
			Fields:    parseFields(m[3]),
		})
	}
	return entries
}

// ParseReader reads r to the end and parses its contents.
func ParseReader(r io.Reader) ([]model.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read bibliography: %w", err)
	}
	return Parse(string(data)), nil
}

type scanState int

const (
	outsideField scanState = iota
	insideField
)

// fieldScanner splits a record body into fields one line at a time.
// A line containing '=' opens a new field only while depth is zero, so an
// '=' inside a value whose braces are still open is treated as text.
type fieldScanner struct {
	state     scanState
	name      string
	fragments []string
	depth     int
	fields    map[string]string
}

func parseFields(body string) map[string]string {
	s := &fieldScanner{fields: make(map[string]string)}
	for _, line := range strings.Split(body, "\n") {
		s.scanLine(line)
	}
	s.flush()
	return s.fields
}

func (s *fieldScanner) scanLine(line string) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "%") {
		return
	}

	if strings.Contains(line, "=") && s.depth == 0 {
		s.flush()
		name, value, _ := strings.Cut(line, "=")
		s.name = strings.ToLower(strings.TrimSpace(name))
		s.fragments = append(s.fragments, strings.TrimSpace(value))
		if s.name != "" {
			s.state = insideField
		} else {
			s.state = outsideField
		}
	} else {
		// Fragments collected outside a field are kept and prepended to
		// the next field's value.
		s.fragments = append(s.fragments, line)
	}

	s.depth += strings.Count(line, "{") - strings.Count(line, "}")
}

// flush stores the open field, if any. Fragments are only discarded once
// they have been stored under a name.
func (s *fieldScanner) flush() {
	if s.state != insideField {
		return
	}
	value := strings.Join(s.fragments, "")
	s.fields[s.name] = strings.TrimSpace(strings.Trim(value, ","))
	s.fragments = s.fragments[:0]
	s.name = ""
	s.state = outsideField
}
