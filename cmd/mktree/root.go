package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mktree",
	Short: "Materialize directory trees from textual descriptions",
	Long: `mktree converts a directory layout described in one of several textual
notations (tree diagrams, nested mappings, flat path mappings, segment
lists, plain path lists) into real directories and empty files.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newGenerateCommand())
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Print the version number of mktree`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mktree version %s (commit: %s, built: %s)\n", version, commit, date)
	},
}
