package store_test

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/store"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestGetConfigPath(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("NIHREF_CONFIG", custom)
	if got, err := store.GetConfigPath(); err != nil || got != custom {
		t.Errorf("GetConfigPath() = %q, %v, want %q", got, err, custom)
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NIHREF_CONFIG", "~/refs/config.yaml")
	want := filepath.Join(home, "refs", "config.yaml")
	if got, err := store.GetConfigPath(); err != nil || got != want {
		t.Errorf("GetConfigPath() = %q, %v, want %q", got, err, want)
	}

	t.Setenv("NIHREF_CONFIG", "")
	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Skipf("no user config directory: %v", err)
	}
	want = filepath.Join(configDir, "nihref", "config.yaml")
	if got, err := store.GetConfigPath(); err != nil || got != want {
		t.Errorf("GetConfigPath() = %q, %v, want %q", got, err, want)
	}
}

func TestLoadConfigExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, []byte("output: ~/out/refs.txt\nbibliography:\n  files: [\"~\", \"~other/x.bib\"]\n"))
	t.Setenv("NIHREF_CONFIG", configPath)

	config, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if want := filepath.Join(home, "out", "refs.txt"); config.Output != want {
		t.Errorf("output = %q, want %q", config.Output, want)
	}
	want := []string{home, "~other/x.bib"}
	if !reflect.DeepEqual(config.Bibliography.Files, want) {
		t.Errorf("files = %q, want %q", config.Bibliography.Files, want)
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	t.Setenv("NIHREF_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	config, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(*config, model.DefaultConfig()) {
		t.Errorf("expected defaults, got %+v", *config)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("NIHREF_CONFIG", configPath)

	config := model.DefaultConfig()
	config.Style = "apa"
	config.Sort = "year"
	config.Bibliography.Files = []string{"refs/*.bib"}
	if err := store.SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !reflect.DeepEqual(*loaded, config) {
		t.Errorf("round trip mismatch:\nExpected: %+v\nGot:      %+v", config, *loaded)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, []byte("style: bibtex\n"))
	t.Setenv("NIHREF_CONFIG", configPath)

	config, err := store.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Style != "bibtex" {
		t.Errorf("style = %q, want bibtex", config.Style)
	}
	if config.Encoding != "utf-8" {
		t.Errorf("unset keys should keep defaults, encoding = %q", config.Encoding)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, configPath, []byte("style: [unclosed\n"))
	t.Setenv("NIHREF_CONFIG", configPath)

	if _, err := store.LoadConfig(); err == nil {
		t.Errorf("expected a parse error")
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()

	bom := filepath.Join(dir, "bom.bib")
	writeFile(t, bom, []byte("\xef\xbb\xbf@article{k,"))
	got, err := store.ReadText(bom, "utf-8")
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "@article{k," {
		t.Errorf("BOM not stripped: %q", got)
	}

	latin := filepath.Join(dir, "latin.bib")
	writeFile(t, latin, []byte{'M', 0xfc, 'l', 'l', 'e', 'r'})
	got, err = store.ReadText(latin, "latin1")
	if err != nil {
		t.Fatalf("ReadText failed: %v", err)
	}
	if got != "Müller" {
		t.Errorf("latin1 not decoded: %q", got)
	}

	if _, err := store.ReadText(latin, "ebcdic"); err == nil {
		t.Errorf("expected an error for an unsupported encoding")
	}
	if _, err := store.ReadText(filepath.Join(dir, "nope.bib"), "utf-8"); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestCheckEncoding(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "utf16", "latin1", "cp1252"} {
		if err := store.CheckEncoding(name); err != nil {
			t.Errorf("CheckEncoding(%q) = %v, want nil", name, err)
		}
	}
	if err := store.CheckEncoding("utf-9"); err == nil {
		t.Errorf("expected an error for utf-9")
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bib", "sub/b.bib", "skip/c.bib", "notes.txt"} {
		writeFile(t, filepath.Join(dir, name), []byte("x"))
	}

	paths, err := store.ExpandPaths(
		[]string{filepath.Join(dir, "**", "*.bib"), filepath.Join(dir, "a.bib")},
		[]string{"**/skip/**"},
	)
	if err != nil {
		t.Fatalf("ExpandPaths failed: %v", err)
	}
	sort.Strings(paths)
	want := []string{filepath.Join(dir, "a.bib"), filepath.Join(dir, "sub", "b.bib")}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("ExpandPaths() = %q, want %q", paths, want)
	}

	if _, err := store.ExpandPaths([]string{filepath.Join(dir, "missing.bib")}, nil); err == nil {
		t.Errorf("expected an error for a missing literal path")
	}
	if _, err := store.ExpandPaths([]string{dir}, nil); err == nil {
		t.Errorf("expected an error for a directory")
	}
}

func TestLoadEntries(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.bib")
	second := filepath.Join(dir, "second.bib")
	writeFile(t, first, []byte("@article{one,\n  title = {One}\n}\n"))
	writeFile(t, second, []byte("@book{two,\n  title = {Two}\n}\n@book{broken,\n  title = {x}"))

	entries, err := store.LoadEntries([]string{first, second}, "utf-8")
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if strings.Join(keys, ",") != "one,two" {
		t.Errorf("unexpected keys %q", keys)
	}
}

func TestWriteOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out", "refs.txt")
	if err := store.WriteOutput(out, "a\n\nb"); err != nil {
		t.Fatalf("WriteOutput failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if string(data) != "a\n\nb" {
		t.Errorf("unexpected output %q", data)
	}
}
