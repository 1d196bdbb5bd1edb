package cmd

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecklang/eckfront"
	"github.com/ecklang/eckfront/ast"
	"github.com/ecklang/eckfront/export"
	"github.com/ecklang/eckfront/internal/config"
	"github.com/ecklang/eckfront/printer"
	"github.com/ecklang/eckfront/reporter"
)

func (a *app) parseCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "parse FILE|GLOB...",
		Short: "Print the syntax tree of files",
		Long: `Parses each file and prints its syntax tree. Errors are printed with
the offending source line; the exit status is 1 if any file fails.

Formats:
  dump  - indented listing with source line numbers
  yaml  - YAML document per file
  json  - JSON document per file

Examples:
  eckfront parse Main.eck
  eckfront parse --format yaml 'src/**/*.eck'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Format
			}
			if !slices.Contains(config.Formats, format) {
				return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join(config.Formats, ", "))
			}
			files, err := expandArgs(args)
			if err != nil {
				return err
			}

			comp := eckfront.Compiler{
				Resolver:       &eckfront.SourceResolver{},
				MaxParallelism: a.cfg.Parallelism,
				Reporter:       reporter.NewReporter(func(reporter.ErrorWithPos) error { return nil }),
				Logger:         a.logger,
			}
			results, err := comp.Compile(cmd.Context(), files...)
			if err != nil && !errors.Is(err, reporter.ErrInvalidSource) {
				return err
			}

			renderer := reporter.Renderer{ShowSnippet: true}
			for _, res := range results {
				if res.Err != nil {
					if err := renderer.Render(cmd.ErrOrStderr(), res.Err, res.Info); err != nil {
						return err
					}
					continue
				}
				if err := writeTree(cmd.OutOrStdout(), format, res.AST); err != nil {
					return err
				}
			}
			if err != nil {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: dump, yaml or json (default from config)")
	return cmd
}

func writeTree(w io.Writer, format string, class *ast.ClassNode) error {
	switch format {
	case config.FormatYAML:
		text, err := export.ToYAML(class)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, "---\n"+text)
		return err
	case config.FormatJSON:
		data, err := export.ToJSON(class)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return printer.Print(w, class)
	}
}
