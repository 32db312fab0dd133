package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nakachan-ing/nihref/internal/bibtex"
	"github.com/nakachan-ing/nihref/internal/model"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func decoderFor(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder(), nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
}

// CheckEncoding reports whether ReadText can decode files in the named
// encoding.
func CheckEncoding(name string) error {
	_, err := decoderFor(name)
	return err
}

// ReadText reads a file and decodes it to UTF-8. A UTF-8 byte order mark
// is dropped.
func ReadText(path, enc string) (string, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	decoded, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", path, enc, err)
	}
	return string(decoded), nil
}

// ExpandPaths resolves glob patterns ("refs/**/*.bib") to files, dropping
// any that match an exclude pattern. A pattern without glob characters must
// name an existing file.
func ExpandPaths(patterns, exclude []string) ([]string, error) {
	var paths []string
	seen := make(map[string]struct{})

	for _, pattern := range patterns {
		var matches []string
		if hasMeta(pattern) {
			var err error
			matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if len(matches) == 0 {
				log.Printf("⚠️ No files match %s", pattern)
			}
		} else {
			info, err := os.Stat(pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to open %s: %w", pattern, err)
			}
			if info.IsDir() {
				return nil, fmt.Errorf("%s is a directory, not a file", pattern)
			}
			matches = []string{pattern}
		}

		for _, m := range matches {
			if excluded(m, exclude) {
				continue
			}
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			paths = append(paths, m)
		}
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func excluded(path string, exclude []string) bool {
	slashed := filepath.ToSlash(path)
	relative := strings.TrimPrefix(slashed, "/")
	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, slashed); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, relative); ok {
			return true
		}
	}
	return false
}

// LoadEntries parses every file in order and concatenates the entries.
func LoadEntries(paths []string, enc string) ([]model.Entry, error) {
	var entries []model.Entry
	for _, path := range paths {
		text, err := ReadText(path, enc)
		if err != nil {
			return nil, err
		}
		parsed := bibtex.Parse(text)
		log.Printf("Parsed %d references from %s", len(parsed), path)
		entries = append(entries, parsed...)
	}
	return entries, nil
}

// WriteOutput writes content to path, creating parent directories.
func WriteOutput(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
