package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brook-lang/brook/brook"
	"github.com/spf13/cobra"
)

var astColor bool

var astCmd = &cobra.Command{
	Use:   "ast <file>",
	Short: "Parse a source file and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runAST,
}

func init() {
	astCmd.Flags().BoolVar(&astColor, "color", false, "colorize the tree")
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	fns, errs := brook.ParseFile(args[0])
	for _, perr := range errs {
		fmt.Fprintf(os.Stderr, "%s: %v\n", args[0], perr)
	}
	for _, fn := range fns {
		fmt.Print(brook.Dump(fn, astColor))
	}

	if len(errs) > 0 {
		return errors.New("parse failed")
	}
	return nil
}
