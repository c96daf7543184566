// Released under an MIT license. See LICENSE.

// Package config loads xda's settings.
//
// Settings come from built-in defaults, then an optional YAML or TOML file,
// then the environment (after loading a .env file, if there is one).
// Command-line options are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables.
const (
	EnvPath      = "XDA_ENV_PATH"
	EnvDir       = "XDA_DIR"
	EnvLogFile   = "XDA_LOG_FILE"
	EnvLogLevel  = "XDA_LOG_LEVEL"
	EnvLogFormat = "XDA_LOG_FORMAT"
)

// Logging configures diagnostics.
type Logging struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // console or json.
	Output string `yaml:"output" toml:"output"` // stderr, stdout or file.
	File   string `yaml:"file" toml:"file"`     // Used when Output is file.
}

// T (config) holds xda's settings.
type T struct {
	Dir     string  `yaml:"dir" toml:"dir"`           // Root for the log sink and export targets.
	LogFile string  `yaml:"log_file" toml:"log_file"` // Name of the log sink.
	History bool    `yaml:"history" toml:"history"`   // Keep REPL history.
	Logging Logging `yaml:"logging" toml:"logging"`
}

type config = T

// Default returns the built-in settings.
func Default() *config {
	return &config{
		Dir:     ".",
		LogFile: "log.txt",
		History: true,
		Logging: Logging{
			Level:  "warn",
			Format: "console",
			Output: "stderr",
			File:   "xda.log",
		},
	}
}

// Load returns the settings from path, if not empty, and the environment.
func Load(path string) (*config, error) {
	c := Default()

	if path != "" {
		if err := c.File(path); err != nil {
			return nil, err
		}
	}

	if err := c.Env(); err != nil {
		return nil, err
	}

	return c, nil
}

// Env applies environment overrides to c. A .env file is loaded first,
// from XDA_ENV_PATH or the current directory. A missing file is not an error.
func (c *config) Env() error {
	path := os.Getenv(EnvPath)
	if path == "" {
		path = ".env"
	}

	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}

	for name, field := range map[string]*string{
		EnvDir:       &c.Dir,
		EnvLogFile:   &c.LogFile,
		EnvLogLevel:  &c.Logging.Level,
		EnvLogFormat: &c.Logging.Format,
	} {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			*field = v
		}
	}

	return nil
}

// File decodes the settings in path over c. The format is chosen by extension.
func (c *config) File(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}

	return nil
}
