/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/store"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	config, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	overrides := []struct {
		flag   string
		target *string
	}{
		{"style", &config.Style},
		{"sort", &config.Sort},
		{"encoding", &config.Encoding},
		{"output", &config.Output},
	}
	for _, o := range overrides {
		if flags.Lookup(o.flag) == nil || !flags.Changed(o.flag) {
			continue
		}
		v, err := flags.GetString(o.flag)
		if err != nil {
			return nil, err
		}
		*o.target = v
	}

	if verbose {
		log.Printf("style=%s sort=%s encoding=%s", config.Style, config.Sort, config.Encoding)
	}
	return config, nil
}

// bibliographyPaths returns the files named on the command line, or the
// configured bibliography globs when none are given.
func bibliographyPaths(config *model.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return store.ExpandPaths(args, nil)
	}
	paths, err := store.ExpandPaths(config.Bibliography.Files, config.Bibliography.Exclude)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no bibliography files found (patterns: %v)", config.Bibliography.Files)
	}
	return paths, nil
}

func loadBibliography(config *model.Config, args []string) ([]model.Entry, []string, error) {
	paths, err := bibliographyPaths(config, args)
	if err != nil {
		return nil, nil, err
	}
	entries, err := store.LoadEntries(paths, config.Encoding)
	if err != nil {
		return nil, nil, err
	}
	return entries, paths, nil
}
