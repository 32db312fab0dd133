package bibtex_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/nakachan-ing/nihref/internal/bibtex"
)

const sampleBib = `
This line is an implicit comment.

@article{FuMetalhalideperovskite2019,
    author = "Yongping Fu and Haiming Zhu and Jie Chen and Matthew P. Hautzinger",
    journal = {Nature Reviews Materials},
    number = {3},
    pages = {169--188},
    publisher = {Springer Science and Business Media {LLC}},
    title = {Metal halide perovskite nanostructures for optoelectronic applications},
    volume = {4},
    year = {2019}
}

@InProceedings{Liu2016,
    % impact factor is not exported
    author = {Maochang Liu and Yubin Chen},
    title = {Photocatalytic hydrogen production using twinned nanocrystals
      and an unanchored {NiSx} co-catalyst},
    year = {2016},
}
`

func TestParseRecords(t *testing.T) {
	entries := bibtex.Parse(sampleBib)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	fu := entries[0]
	if fu.EntryType != "article" || fu.Key != "FuMetalhalideperovskite2019" {
		t.Errorf("unexpected header: type=%q key=%q", fu.EntryType, fu.Key)
	}
	want := map[string]string{
		"author":    `"Yongping Fu and Haiming Zhu and Jie Chen and Matthew P. Hautzinger"`,
		"journal":   "{Nature Reviews Materials}",
		"number":    "{3}",
		"pages":     "{169--188}",
		"publisher": "{Springer Science and Business Media {LLC}}",
		"title":     "{Metal halide perovskite nanostructures for optoelectronic applications}",
		"volume":    "{4}",
		"year":      "{2019}",
	}
	if !reflect.DeepEqual(fu.Fields, want) {
		t.Errorf("unexpected fields:\nExpected:\n%v\nGot:\n%v", want, fu.Fields)
	}

	liu := entries[1]
	if liu.EntryType != "inproceedings" {
		t.Errorf("entry type not lower-cased: %q", liu.EntryType)
	}
	wantTitle := "{Photocatalytic hydrogen production using twinned nanocrystalsand an unanchored {NiSx} co-catalyst}"
	if got := liu.Field("title"); got != wantTitle {
		t.Errorf("continuation not joined:\nExpected: %s\nGot:      %s", wantTitle, got)
	}
	if _, ok := liu.Fields["% impact factor is not exported"]; ok {
		t.Errorf("comment line parsed as a field")
	}
	if got := liu.Field("year"); got != "{2016}" {
		t.Errorf("trailing comma not trimmed: %q", got)
	}
}

func TestParseWellFormedEntry(t *testing.T) {
	text := "@article{key,\n  author = {A and B},\n  title = {T},\n  journal = {J},\n  year = {2020}\n}\n"
	entries := bibtex.Parse(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Key != "key" {
		t.Errorf("key = %q, want key", entries[0].Key)
	}
	if got := entries[0].Field("author"); got != "{A and B}" {
		t.Errorf("author = %q, want {A and B}", got)
	}
}

func TestParseKeepsKeyWhitespace(t *testing.T) {
	entries := bibtex.Parse("@article{smith2020 ,\n  title = {T}\n}\n")
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Key != "smith2020 " {
		t.Errorf("key = %q, want %q", entries[0].Key, "smith2020 ")
	}
}

func TestParseSkipsMalformedRecords(t *testing.T) {
	tests := map[string]string{
		"truncated":        "@article{key,\n  author = {A and B},\n  title = {T}",
		"one line":         "@article{key, author = {A}, title = {T}}",
		"brace not at eol": "@article{key,\n  title = {T}}",
		"no key comma":     "@article{key\n  title = {T}\n}",
	}
	for name, text := range tests {
		t.Run(name, func(t *testing.T) {
			if entries := bibtex.Parse(text); len(entries) != 0 {
				t.Errorf("expected no entries, got %+v", entries)
			}
		})
	}
}

func TestParseBraceDepthGatesFields(t *testing.T) {
	text := "@misc{k,\n  note = {first line\n  x = y still note},\n  year = 2001\n}"
	entries := bibtex.Parse(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].Fields
	if got, want := fields["note"], "{first linex = y still note}"; got != want {
		t.Errorf("note = %q, want %q", got, want)
	}
	if _, ok := fields["x"]; ok {
		t.Errorf("'=' inside open braces started a field")
	}
	if got := fields["year"]; got != "2001" {
		t.Errorf("year = %q, want 2001", got)
	}
}

func TestParseLastFieldWins(t *testing.T) {
	text := "@book{k,\n  Title = {First},\n  TITLE = {Second},\n}"
	entries := bibtex.Parse(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got := entries[0].Field("title"); got != "{Second}" {
		t.Errorf("title = %q, want {Second}", got)
	}
	if len(entries[0].Fields) != 1 {
		t.Errorf("expected a single field, got %v", entries[0].Fields)
	}
}

func TestParseOrphanFragmentsJoinNextField(t *testing.T) {
	text := "@misc{k,\n  stray,\n  title = {T}\n}"
	entries := bibtex.Parse(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if got, want := entries[0].Field("title"), "stray,{T}"; got != want {
		t.Errorf("title = %q, want %q", got, want)
	}
}

func TestParseUnterminatedHeaderSwallowsNextRecord(t *testing.T) {
	text := "@string{goossens = \"Goossens, Michel\"}\n\n@article{k,\n  title = {T}\n}"
	entries := bibtex.Parse(text)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].EntryType != "string" || entries[0].Key != `goossens = "Goossens` {
		t.Errorf("unexpected header: type=%q key=%q", entries[0].EntryType, entries[0].Key)
	}
	if !strings.Contains(entries[0].Field("title"), "@article{k,") {
		t.Errorf("expected the following record inside the value, got %q", entries[0].Field("title"))
	}
}

func TestParseReader(t *testing.T) {
	entries, err := bibtex.ParseReader(strings.NewReader(sampleBib))
	if err != nil {
		t.Fatalf("ParseReader failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
}
