package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	defaultOutputFormat  = "text"
	defaultEncoding      = "utf-8"
	defaultConvertFormat = "date"
)

// Config is the optional TOML configuration. Command-line flags that are
// set explicitly take precedence over it.
type Config struct {
	Output  OutputConfig  `toml:"output"`
	Input   InputConfig   `toml:"input"`
	Convert ConvertConfig `toml:"convert"`
}

// OutputConfig selects how subcommands print their results.
type OutputConfig struct {
	Format string `toml:"format"`
}

// InputConfig describes the CSV input read by convert.
type InputConfig struct {
	Encoding string `toml:"encoding"`
	Header   bool   `toml:"header"`
}

// ConvertConfig picks the date column and the form convert renders it in.
type ConvertConfig struct {
	Format string `toml:"format"`
	Column int    `toml:"column"`
}

func defaultConfig() Config {
	return Config{
		Output:  OutputConfig{Format: defaultOutputFormat},
		Input:   InputConfig{Encoding: defaultEncoding},
		Convert: ConvertConfig{Format: defaultConvertFormat},
	}
}

// loadConfig returns the defaults overlaid with the file at path.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !validOutputFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q", c.Output.Format)
	}
	if _, err := lookupEncoding(c.Input.Encoding); err != nil {
		return err
	}
	if _, ok := dateFormats[c.Convert.Format]; !ok {
		return fmt.Errorf("unknown date format %q", c.Convert.Format)
	}
	if c.Convert.Column < 0 {
		return fmt.Errorf("column must not be negative, got %d", c.Convert.Column)
	}
	return nil
}
