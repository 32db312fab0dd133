/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/nihref/internal/refs"
	"github.com/spf13/cobra"
)

var dupesEncoding string

// dupesCmd represents the dupes command
var dupesCmd = &cobra.Command{
	Use:     "dupes [bib...]",
	Short:   "Report entries whose titles look like duplicates",
	Aliases: []string{"d"},
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		entries, _, err := loadBibliography(config, args)
		if err != nil {
			return err
		}

		errOut := cmd.ErrOrStderr()
		duplicates := refs.FindDuplicates(entries)
		if len(duplicates) == 0 {
			fmt.Fprintln(errOut, "No potential duplicates found.")
			return nil
		}

		warn := color.New(color.FgYellow, color.Bold).SprintFunc()
		fmt.Fprintln(errOut, warn(fmt.Sprintf("Found %d potential duplicate references:", len(duplicates))))

		t := table.NewWriter()
		t.SetOutputMirror(errOut)
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = true

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Key"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
			text.FgGreen.Sprintf("Key"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Title")),
		})
		for _, pair := range duplicates {
			t.AppendRow(table.Row{
				pair.First.Key, pair.First.Field("title"),
				pair.Second.Key, pair.Second.Field("title"),
			})
		}
		t.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dupesCmd)
	dupesCmd.Flags().StringVar(&dupesEncoding, "encoding", "utf-8", "Encoding of the input files")
}
