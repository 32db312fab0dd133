/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/style"
	"github.com/spf13/cobra"
)

var (
	showRaw      bool
	showStyle    string
	showEncoding string
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:     "show <key> [bib...]",
	Short:   "Show one bibliography entry",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"s"},
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]

		config, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		s, err := style.Lookup(config.Style)
		if err != nil {
			return err
		}

		entries, _, err := loadBibliography(config, args[1:])
		if err != nil {
			return err
		}

		var entry *model.Entry
		for i := range entries {
			if entries[i].Key == key {
				entry = &entries[i]
				break
			}
		}
		if entry == nil {
			return fmt.Errorf("reference %s not found", key)
		}

		out := cmd.OutOrStdout()
		if showRaw {
			titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
			fieldStyle := color.New(color.FgHiGreen).SprintFunc()
			fmt.Fprintf(out, "[%v] %v\n", titleStyle(entry.EntryType), titleStyle(entry.Key))
			fmt.Fprintln(out, strings.Repeat("-", 50))
			for _, name := range fieldNames(*entry) {
				fmt.Fprintf(out, "%s: %v\n", name, fieldStyle(entry.Fields[name]))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, style.Format(s, *entry))
			return nil
		}

		rendered, err := glamour.Render(entryMarkdown(*entry, style.Format(s, *entry)), "dark")
		if err != nil {
			log.Printf("⚠️ Failed to render markdown content: %v", err)
			fmt.Fprintln(out, style.Format(s, *entry))
			return nil
		}
		fmt.Fprint(out, rendered)
		return nil
	},
}

func fieldNames(e model.Entry) []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// entryMarkdown lays out an entry as a heading, a field table and the
// formatted citation.
func entryMarkdown(e model.Entry, citation string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Key)
	fmt.Fprintf(&b, "*@%s*\n\n", e.EntryType)
	b.WriteString("| Field | Value |\n|---|---|\n")
	for _, name := range fieldNames(e) {
		value := strings.ReplaceAll(model.Unwrap(e.Fields[name]), "|", `\|`)
		fmt.Fprintf(&b, "| %s | %s |\n", name, value)
	}
	b.WriteString("\n## Citation\n\n")
	if strings.Contains(citation, "\n") {
		fmt.Fprintf(&b, "```\n%s\n```\n", citation)
	} else {
		fmt.Fprintf(&b, "> %s\n", citation)
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print plain fields instead of rendered markdown")
	showCmd.Flags().StringVarP(&showStyle, "style", "s", "nih", "Citation style for the formatted reference")
	showCmd.Flags().StringVar(&showEncoding, "encoding", "utf-8", "Encoding of the input files")
}
