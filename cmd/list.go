/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/refs"
	"github.com/spf13/cobra"
)

var (
	listPageSize int
	listSort     string
	listEncoding string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list [bib...]",
	Short:   "List bibliography entries",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		entries, _, err := loadBibliography(config, args)
		if err != nil {
			return err
		}
		entries, err = refs.Sort(entries, config.Sort)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No references found.")
			return nil
		}

		reader := bufio.NewReader(cmd.InOrStdin())
		page := 0

		fmt.Fprintln(out, strings.Repeat("=", 30))
		fmt.Fprintf(out, "Bibliography: %v references\n", len(entries))
		fmt.Fprintln(out, strings.Repeat("=", 30))

		pageSize := listPageSize
		if pageSize <= 0 {
			pageSize = len(entries)
		}

		for {
			start := page * pageSize
			end := start + pageSize
			if end > len(entries) {
				end = len(entries)
			}

			renderEntryTable(out, entries[start:end])

			if end >= len(entries) {
				break
			}

			fmt.Fprint(out, "\nPress Enter for the next page (q to quit): ")
			input, _ := reader.ReadString('\n')
			if strings.TrimSpace(input) == "q" {
				break
			}
			page++
		}
		return nil
	},
}

func renderEntryTable(out io.Writer, entries []model.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleDouble)
	t.Style().Options.SeparateRows = false

	t.AppendHeader(table.Row{
		text.FgGreen.Sprintf("Key"),
		text.FgGreen.Sprintf("Type"),
		text.FgGreen.Sprintf("First Author"),
		text.FgGreen.Sprintf("Year"),
		text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
	})

	for _, e := range entries {
		var typeColored string
		switch strings.ToLower(e.EntryType) {
		case "article":
			typeColored = text.FgHiBlue.Sprintf("%s", e.EntryType)
		case "book", "incollection", "inbook":
			typeColored = text.FgHiYellow.Sprintf("%s", e.EntryType)
		case "inproceedings", "conference", "proceedings":
			typeColored = text.FgHiMagenta.Sprintf("%s", e.EntryType)
		default:
			typeColored = text.FgHiGreen.Sprintf("%s", e.EntryType)
		}

		t.AppendRow(table.Row{
			e.Key,
			typeColored,
			e.FirstAuthorLastName(),
			model.Unwrap(e.Field("year")),
			text.WrapSoft(model.Unwrap(e.Field("title")), 60),
		})
	}

	t.Render()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().IntVarP(&listPageSize, "limit", "n", 20, "Entries per page (0 shows everything)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "Sort entries by "+strings.Join(refs.SortCriteria, ", "))
	listCmd.Flags().StringVar(&listEncoding, "encoding", "utf-8", "Encoding of the input files")
}
