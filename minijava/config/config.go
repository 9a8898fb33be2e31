package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dhamidi/mjc/minijava/parser"
)

// FileName is looked up in the working directory when no path is given.
const FileName = "mjc.yaml"

type Stage string

const (
	StageRead     Stage = "read"
	StageDecode   Stage = "decode"
	StageValidate Stage = "validate"
)

// Error reports which stage of loading a configuration file failed.
type Error struct {
	Path  string
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %s: %v", e.Path, e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type Log struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

type Config struct {
	Trace      bool     `yaml:"trace"`
	Recovery   string   `yaml:"recovery"`
	Log        Log      `yaml:"log"`
	Extensions []string `yaml:"extensions"`
}

func Default() *Config {
	return &Config{
		Recovery:   parser.FailFast.String(),
		Extensions: []string{".java"},
	}
}

// Load reads path. An empty path means FileName in the working directory,
// and a missing default file yields Default().
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, &Error{Path: path, Stage: StageRead, Err: err}
	}
	return Decode(path, data)
}

// Decode parses data strictly: unknown keys are errors.
func Decode(path string, data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, &Error{Path: path, Stage: StageDecode, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &Error{Path: path, Stage: StageValidate, Err: err}
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := parser.ParseRecovery(c.Recovery); err != nil {
		return err
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	if len(c.Extensions) == 0 {
		return errors.New("extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}

func (c *Config) RecoveryMode() parser.Recovery {
	r, _ := parser.ParseRecovery(c.Recovery)
	return r
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range c.Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ParserOptions translates the configuration into parser options.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{parser.WithRecovery(c.RecoveryMode())}
}
