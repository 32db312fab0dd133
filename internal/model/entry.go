package model

import "strings"

// Entry is one bibliographic record as it appeared in the source text.
// Field values are kept raw; renderers strip braces and quotes themselves.
type Entry struct {
	EntryType string            `json:"entry_type" yaml:"entry_type"` // article, book, ... (lower-cased)
	Key       string            `json:"key" yaml:"key"`
	Fields    map[string]string `json:"fields" yaml:"fields"` // lower-cased field name -> raw value
}

func (e Entry) Field(name string) string {
	return e.Fields[name]
}

func (e Entry) HasField(name string) bool {
	_, ok := e.Fields[name]
	return ok
}

// Authors splits the author field on " and ". Wrapping braces or quotes
// are removed first; braces protecting part of a name are dropped.
func (e Entry) Authors() []string {
	raw, ok := e.Fields["author"]
	if !ok {
		return []string{}
	}
	raw = Unwrap(raw)
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, " and ")
	authors := make([]string, 0, len(parts))
	for _, a := range parts {
		authors = append(authors, strings.TrimSpace(braceRemover.Replace(a)))
	}
	return authors
}

// FirstAuthorLastName returns the sort key of the first author:
// "Last, First" gives Last, "First Last" gives the final token.
func (e Entry) FirstAuthorLastName() string {
	authors := e.Authors()
	if len(authors) == 0 {
		return ""
	}

	first := authors[0]
	if last, _, found := strings.Cut(first, ","); found {
		return strings.TrimSpace(last)
	}
	tokens := strings.Fields(first)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

var braceRemover = strings.NewReplacer("{", "", "}", "")

// Unwrap trims whitespace and removes one pair of surrounding quotes, then
// every brace pair that encloses the whole value. "{A} and {B}" is left
// as it is.
func Unwrap(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	for enclosed(v) {
		v = strings.TrimSpace(v[1 : len(v)-1])
	}
	return v
}

// enclosed reports whether the brace opening v closes at its last byte.
func enclosed(v string) bool {
	if len(v) < 2 || v[0] != '{' || v[len(v)-1] != '}' {
		return false
	}
	depth := 0
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i == len(v)-1
			}
		}
	}
	return false
}
