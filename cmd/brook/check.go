package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/brook-lang/brook/brook"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Parse source files and report diagnostics",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		_, errs := brook.ParseFile(path)
		for _, perr := range errs {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, perr)
			failed = true
		}
	}
	if failed {
		return errors.New("check failed")
	}
	return nil
}
