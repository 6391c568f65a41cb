// Package config loads wgslspec settings from a YAML file:
//
//	source: https://raw.githubusercontent.com/gpuweb/gpuweb/main/wgsl/index.bs
//	timeout: 5s
//	strict: false
//	exclude:
//	  - foo
//	  - bar
//
// Omitted keys keep their defaults.
package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/wgslspec"
)

// Config represents a wgslspec configuration file.
type Config struct {
	// Source is the URL of the specification document.
	Source string `yaml:"source"`

	// Timeout bounds the download, e.g. "5s".
	Timeout time.Duration `yaml:"timeout"`

	// Strict aborts on the first malformed signature or row.
	Strict bool `yaml:"strict"`

	// Exclude lists function names that are illustrative examples rather
	// than real builtins.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	opts := wgslspec.DefaultOptions()
	return Config{
		Source:  opts.SourceURL,
		Timeout: opts.Timeout,
		Strict:  opts.Strict,
	}
}

// Load reads and validates the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode yaml")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.Source == "" {
		return errors.New("source must not be empty")
	}
	if c.Timeout <= 0 {
		return errors.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	for i, name := range c.Exclude {
		if name == "" {
			return errors.Errorf("exclude[%d] is empty", i)
		}
	}
	return nil
}

// Options converts the configuration to wgslspec options.
func (c Config) Options() wgslspec.Options {
	return wgslspec.Options{
		SourceURL: c.Source,
		Timeout:   c.Timeout,
		Strict:    c.Strict,
		Exclude:   append([]string(nil), c.Exclude...),
	}
}
