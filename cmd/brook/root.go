package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "brook",
	Short: "Brook language front end",
	Long: `brook parses Brook source into an abstract syntax tree.

There is no execution backend yet: check verifies that sources parse,
ast shows the parsed tree, and repl parses interactively.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}
