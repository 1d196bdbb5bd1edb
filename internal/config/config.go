// Package config loads the settings of the eckfront command from a YAML or
// TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Output formats for parsed trees.
const (
	FormatDump = "dump"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists the valid values of Config.Format.
var Formats = []string{FormatDump, FormatYAML, FormatJSON}

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the settings of the eckfront command.
type Config struct {
	// Format is the output format of the parse command.
	Format string `yaml:"format" toml:"format"`
	// ParseExt is appended to a fixture's base name to form the file the
	// dump is written to.
	ParseExt string `yaml:"parse_ext" toml:"parse_ext"`
	// AnswerExt names the file holding a fixture's expected output.
	AnswerExt string `yaml:"answer_ext" toml:"answer_ext"`
	// TokensExt names the file a fixture's token listing is written to.
	TokensExt string `yaml:"tokens_ext" toml:"tokens_ext"`
	// IgnoreLineNumbers compares dumps without their line-number column.
	IgnoreLineNumbers bool `yaml:"ignore_line_numbers" toml:"ignore_line_numbers"`
	// Parallelism bounds the number of files compiled at once. Zero means
	// one per CPU.
	Parallelism int `yaml:"parallelism" toml:"parallelism"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// Include holds doublestar globs selecting fixtures when the test
	// command is given directories.
	Include []string `yaml:"include" toml:"include"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path. The format is chosen by the file's
// extension: .yaml, .yml or .toml. An empty path yields Default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	cfg, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses data in the format named by ext, fills in defaults and
// validates the result. Unknown keys are rejected.
func Decode(ext string, data []byte) (*Config, error) {
	var cfg Config
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes as io.EOF.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return nil, err
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatDump
	}
	if c.ParseExt == "" {
		c.ParseExt = ".parse"
	}
	if c.AnswerExt == "" {
		c.AnswerExt = ".answer"
	}
	if c.TokensExt == "" {
		c.TokensExt = ".lexemes"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.Include) == 0 {
		c.Include = []string{"**/*.eck"}
	}
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q is not one of %s", ErrInvalid, c.Format, strings.Join(Formats, ", "))
	}
	for _, ext := range []string{c.ParseExt, c.AnswerExt, c.TokensExt} {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("%w: extension %q must start with a dot", ErrInvalid, ext)
		}
	}
	if c.ParseExt == c.AnswerExt || c.TokensExt == c.AnswerExt {
		return fmt.Errorf("%w: output extension must differ from answer extension %q", ErrInvalid, c.AnswerExt)
	}
	if c.Parallelism < 0 {
		return fmt.Errorf("%w: parallelism %d is negative", ErrInvalid, c.Parallelism)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for _, pattern := range c.Include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: include pattern %q is not a valid glob", ErrInvalid, pattern)
		}
	}
	return nil
}

// Level returns LogLevel as a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, err
	}
	return level, nil
}
