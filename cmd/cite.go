/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/nihref/internal/refs"
	"github.com/nakachan-ing/nihref/internal/store"
	"github.com/spf13/cobra"
)

var (
	citeBib      []string
	citeEncoding string
)

// citeCmd represents the cite command
var citeCmd = &cobra.Command{
	Use:   "cite [doc...]",
	Short: "List the citation keys used in Typst documents",
	Long: `List the unique @key citations found in Typst documents.

With --bib the keys are checked against a bibliography: cited keys
without an entry and entries that are never cited are reported.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		var docs []string
		if len(args) > 0 {
			docs, err = store.ExpandPaths(args, nil)
		} else {
			docs, err = store.ExpandPaths(config.Documents.Files, config.Documents.Exclude)
		}
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return fmt.Errorf("no documents found")
		}

		cited := make(map[string]struct{})
		for _, doc := range docs {
			content, err := store.ReadText(doc, config.Encoding)
			if err != nil {
				return err
			}
			for key := range refs.ExtractCitations(content) {
				cited[key] = struct{}{}
			}
		}

		out := cmd.OutOrStdout()
		keys := refs.SortedKeys(cited)
		fmt.Fprintf(out, "Found %d unique citations:\n", len(keys))
		for _, key := range keys {
			fmt.Fprintf(out, "  %s\n", key)
		}

		if !cmd.Flags().Changed("bib") {
			return nil
		}

		entries, _, err := loadBibliography(config, citeBib)
		if err != nil {
			return err
		}
		report := refs.CheckCitations(cited, entries)

		if len(report.Missing) == 0 && len(report.Unused) == 0 {
			ok := color.New(color.FgGreen).SprintFunc()
			fmt.Fprintln(out, ok("✅ Every citation has a bibliography entry and every entry is cited."))
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false
		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Status"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Key")),
		})
		for _, key := range report.Missing {
			t.AppendRow(table.Row{text.FgHiRed.Sprintf("missing"), key})
		}
		for _, key := range report.Unused {
			t.AppendRow(table.Row{text.FgHiYellow.Sprintf("unused"), key})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("%d missing, %d unused", len(report.Missing), len(report.Unused))})
		t.Render()

		if len(report.Missing) > 0 {
			fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("⚠️ Missing keys: %s", strings.Join(report.Missing, ", ")))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(citeCmd)
	citeCmd.Flags().StringSliceVar(&citeBib, "bib", nil, "Bibliography files to check the citations against")
	citeCmd.Flags().StringVar(&citeEncoding, "encoding", "utf-8", "Encoding of the input files")
}
