/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nihref",
	Short: "Format BibTeX references in NIH style",
	Long: `nihref parses BibTeX bibliographies and renders them as NIH-style
reference lists. It also reports likely duplicate entries and checks
the citation keys used in Typst documents against the bibliography.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(cmd.ErrOrStderr())
		log.SetFlags(0)
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log with timestamps and source locations")
}
