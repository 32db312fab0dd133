package model

type Config struct {
	Style        string `yaml:"style"`    // nih, apa, bibtex, hayagriva
	Sort         string `yaml:"sort"`     // first-author, year, key (empty keeps source order)
	Encoding     string `yaml:"encoding"` // utf-8, utf-16, latin1, windows-1252
	Output       string `yaml:"output"`   // empty writes to stdout
	Bibliography struct {
		Files   []string `yaml:"files"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"bibliography"`
	Documents struct {
		Files   []string `yaml:"files"`
		Exclude []string `yaml:"exclude"`
	} `yaml:"documents"`
	Watch struct {
		DebounceMs int `yaml:"debounce_ms"`
	} `yaml:"watch"`
}

func DefaultConfig() Config {
	var config Config
	config.Style = "nih"
	config.Encoding = "utf-8"
	config.Bibliography.Files = []string{"references/**/*.bib"}
	config.Bibliography.Exclude = []string{}
	config.Documents.Files = []string{"**/*.typ"}
	config.Documents.Exclude = []string{"**/build/**", "**/.git/**"}
	config.Watch.DebounceMs = 300
	return config
}
