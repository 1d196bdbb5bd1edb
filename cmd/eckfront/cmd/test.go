package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ecklang/eckfront/internal/fixtures"
)

func (a *app) testCommand() *cobra.Command {
	var scannerMode, ignoreLines bool
	cmd := &cobra.Command{
		Use:   "test [DIR|GLOB|FILE...]",
		Short: "Compare outputs with .answer fixtures",
		Long: `For every fixture foo.eck, writes the parse dump to foo.parse (or the
token listing to foo.lexemes with --scanner) and compares it with
foo.answer. Directories are searched with the include globs of the
configuration; the default is the current directory.

Examples:
  eckfront test ParserTests
  eckfront test --scanner 'ScannerTests/*.eck'
  eckfront test --ignore-lines ParserTests/Square`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			cfg := *a.cfg
			if ignoreLines {
				cfg.IgnoreLineNumbers = true
			}
			runner := &fixtures.Runner{Config: &cfg, Scanner: scannerMode, Logger: a.logger}
			paths, err := runner.Discover(args)
			if err != nil {
				return err
			}
			report, err := runner.Run(cmd.Context(), paths)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var failed int
			for _, o := range report.Outcomes() {
				switch o.Status {
				case fixtures.Pass:
					fmt.Fprintf(out, "ok       %s\n", o.Path)
				case fixtures.NoAnswer:
					fmt.Fprintf(out, "skip     %s (no answer)\n", o.Path)
					failed++
				case fixtures.Failed:
					fmt.Fprintf(out, "FAIL     %s\n         %v\n", o.Path, o.Err)
					failed++
				case fixtures.Mismatch:
					fmt.Fprintf(out, "FAIL     %s does not produce the expected answer\n%s", o.Path, o.Diff)
					failed++
				}
			}
			fmt.Fprintf(out, "%d fixtures, %d failed\n", report.Len(), failed)
			if !report.Passed() {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&scannerMode, "scanner", false, "compare token listings instead of parse dumps")
	cmd.Flags().BoolVar(&ignoreLines, "ignore-lines", false, "ignore the line-number column of dumps")
	return cmd
}
