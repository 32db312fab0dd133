package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nakachan-ing/nihref/internal/model"
	"gopkg.in/yaml.v3"
)

const configEnv = "NIHREF_CONFIG"

// GetConfigPath returns $NIHREF_CONFIG when set, otherwise config.yaml in
// the per-user config directory (%AppData% on Windows, $XDG_CONFIG_HOME or
// ~/.config on Linux, ~/Library/Application Support on macOS). ~/.nihref
// is used when no config directory can be determined.
func GetConfigPath() (string, error) {
	if custom := os.Getenv(configEnv); custom != "" {
		return expandHomeDir(custom), nil
	}

	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "nihref", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	configPath := filepath.Join(home, ".nihref", "config.yaml")
	log.Printf("⚠️ No user config directory, using %s", configPath)
	return configPath, nil
}

// expandHomeDir replaces a leading "~" or "~/" with the home directory.
// "~user" forms are left alone.
func expandHomeDir(path string) string {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok || (rest != "" && rest[0] != '/' && rest[0] != filepath.Separator) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("⚠️ Failed to get home directory: %v", err)
		return path
	}
	return filepath.Join(home, rest)
}

// LoadConfig reads the config file. A missing file is not an error: the
// defaults are returned so the tool works before `nihref init`.
func LoadConfig() (*model.Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	config := model.DefaultConfig()

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file (%s): %w", configPath, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML (%s): %w", configPath, err)
	}

	config.Output = expandHomeDir(config.Output)
	for i, p := range config.Bibliography.Files {
		config.Bibliography.Files[i] = expandHomeDir(p)
	}
	for i, p := range config.Documents.Files {
		config.Documents.Files[i] = expandHomeDir(p)
	}

	return &config, nil
}

func SaveConfig(config model.Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file (%s): %w", configPath, err)
	}
	return nil
}
