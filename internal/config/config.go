// internal/config/config.go

// Package config loads optional run settings from a YAML file. The file
// only supplies defaults: any flag set explicitly on the command line
// wins.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"rtd/internal/cli"
)

// File is the YAML run-settings schema.
type File struct {
	Threads     int    `yaml:"threads"`
	OnInvalid   string `yaml:"on_invalid"`
	Strict      bool   `yaml:"strict"`
	ExcludeSelf bool   `yaml:"exclude_self"`
	LogLevel    string `yaml:"log_level"`
}

// Load reads and validates a run-settings file.
func Load(path string) (File, error) {
	var f File
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	if f.OnInvalid != "" && f.OnInvalid != cli.OnInvalidReset && f.OnInvalid != cli.OnInvalidSkip {
		return f, fmt.Errorf("%s: invalid on_invalid %q", path, f.OnInvalid)
	}
	switch f.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return f, fmt.Errorf("%s: invalid log_level %q", path, f.LogLevel)
	}
	return f, nil
}

// Apply copies file values into opts for every setting the user did not
// set on the command line. isSet reports whether a flag name was given
// explicitly.
func (f File) Apply(opts *cli.Options, isSet func(name string) bool) {
	if f.Threads > 0 && !isSet("threads") {
		opts.Threads = f.Threads
	}
	if f.OnInvalid != "" && !isSet("on-invalid") {
		opts.OnInvalid = f.OnInvalid
	}
	if f.Strict && !isSet("strict") {
		opts.Strict = true
	}
	if f.ExcludeSelf && !isSet("exclude-self") {
		opts.ExcludeSelf = true
	}
	if f.LogLevel != "" && !isSet("log-level") {
		opts.LogLevel = f.LogLevel
	}
}
