// Package cmd implements the eckfront command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ecklang/eckfront/internal/config"
)

// errReported is returned by commands that have already told the user what
// went wrong; it only sets the exit status.
var errReported = errors.New("errors reported")

// app holds the state shared by all commands.
type app struct {
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the eckfront command with the process's arguments.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(root.ErrOrStderr(), "eckfront: %v\n", err)
	}
	return err
}

// NewRootCommand returns the eckfront command with all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "eckfront",
		Short: "Scanner and parser for the Eck language",
		Long: `eckfront scans and parses Eck source files.

Commands:
  tokens  - print the token listing of files
  parse   - print the syntax tree of files
  test    - compare outputs with .answer fixtures`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (.yaml or .toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(a.tokensCommand(), a.parseCommand(), a.testCommand())
	return root
}

func (a *app) setup(stderr io.Writer) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if a.verbose {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	return nil
}

// expandArgs replaces arguments that are doublestar globs and do not name
// an existing file with their matches.
func expandArgs(args []string) ([]string, error) {
	var out []string
	for _, arg := range args {
		if _, err := os.Stat(arg); err == nil || !strings.ContainsAny(arg, "*?[{") {
			out = append(out, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(filepath.Clean(arg), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%s: no files match", arg)
		}
		out = append(out, matches...)
	}
	return out, nil
}
