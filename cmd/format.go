/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/refs"
	"github.com/nakachan-ing/nihref/internal/store"
	"github.com/nakachan-ing/nihref/internal/style"
	"github.com/nakachan-ing/nihref/internal/util"
	"github.com/spf13/cobra"
)

var (
	formatOutput   string
	formatStyle    string
	formatSort     string
	formatEncoding string
	formatWatch    bool
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:     "format [bib...]",
	Short:   "Format BibTeX entries as a reference list",
	Aliases: []string{"f"},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		s, err := style.Lookup(config.Style)
		if err != nil {
			return err
		}

		paths, err := bibliographyPaths(config, args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := formatReferences(out, config, s, paths); err != nil {
			return err
		}
		if !formatWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Printf("👀 Watching %d file(s) for changes (Ctrl+C to stop)", len(paths))
		debounce := time.Duration(config.Watch.DebounceMs) * time.Millisecond
		return util.Watch(ctx, paths, debounce, func() error {
			return formatReferences(out, config, s, paths)
		})
	},
}

func formatReferences(out io.Writer, config *model.Config, s style.Style, paths []string) error {
	entries, err := store.LoadEntries(paths, config.Encoding)
	if err != nil {
		return err
	}

	entries, err = refs.Sort(entries, config.Sort)
	if err != nil {
		return err
	}

	content := style.Join(style.FormatAll(s, entries))

	if config.Output == "" {
		fmt.Fprintln(out, content)
		return nil
	}

	if err := store.WriteOutput(config.Output, content); err != nil {
		return err
	}
	log.Printf("✅ Wrote %d formatted references to %s", len(entries), config.Output)
	return nil
}

func init() {
	rootCmd.AddCommand(formatCmd)
	formatCmd.Flags().StringVarP(&formatOutput, "output", "o", "", "Write the reference list to this file instead of stdout")
	formatCmd.Flags().StringVarP(&formatStyle, "style", "s", "nih", "Citation style ("+strings.Join(style.Names(), ", ")+")")
	formatCmd.Flags().StringVar(&formatSort, "sort", "", "Sort entries by "+strings.Join(refs.SortCriteria, ", ")+" (default: source order)")
	formatCmd.Flags().StringVar(&formatEncoding, "encoding", "utf-8", "Encoding of the input files")
	formatCmd.Flags().BoolVarP(&formatWatch, "watch", "w", false, "Re-run whenever an input file changes")
}
