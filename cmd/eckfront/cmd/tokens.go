package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ecklang/eckfront/scanner"
)

func (a *app) tokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE...",
		Short: "Print the token listing of files",
		Long: `Prints one line per token: the token kind, followed by its value for
identifiers, integer and string constants. A scanning error ends the
listing of its file.

Examples:
  eckfront tokens Main.eck
  eckfront tokens 'tests/**/*.eck'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandArgs(args)
			if err != nil {
				return err
			}
			failed := false
			for _, file := range files {
				if len(files) > 1 {
					fmt.Fprintf(cmd.OutOrStdout(), "==> %s <==\n", file)
				}
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				s, err := scanner.New(file, f)
				if err != nil {
					return err
				}
				if err := scanner.WriteListing(cmd.OutOrStdout(), s); err != nil {
					if !scanner.IsLexical(err) {
						return err
					}
					a.logger.Debug("scan failed", "path", file, "error", err)
					failed = true
				}
			}
			if failed {
				return errReported
			}
			return nil
		},
	}
}
