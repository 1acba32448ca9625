package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"rpn"
)

const defaultConfigName = ".rpn.yaml"

// Config is the optional YAML configuration file. Command line options win over it.
type Config struct {
	Strict          bool               `yaml:"strict"`
	Trace           bool               `yaml:"trace"`
	LogLevel        string             `yaml:"log_level"`
	MaxIndex        int                `yaml:"max_index"`
	DuplicatePolicy string             `yaml:"duplicate_policy"`
	AdvancedMath    *bool              `yaml:"advanced_math"`
	Color           *bool              `yaml:"color"`
	Variables       map[string]float32 `yaml:"variables"`
	JSONVars        JSONVarsConfig     `yaml:"json_vars"`
}

// JSONVarsConfig points at a JSON document whose query result seeds the variables.
type JSONVarsConfig struct {
	File  string `yaml:"file"`
	Query string `yaml:"query"`
}

func defaultConfig() *Config {
	return &Config{LogLevel: "info"}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultConfigName)
}

// loadConfig reads path. A missing file is only an error when the path was asked for.
func loadConfig(path string, required bool) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := parseConfig(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func parseConfig(data []byte, cfg *Config) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}
	if cfg.MaxIndex < 0 {
		return fmt.Errorf("max_index must not be negative (got %d)", cfg.MaxIndex)
	}
	if _, err := rpn.ParseDuplicatePolicy(cfg.DuplicatePolicy); err != nil {
		return err
	}
	return nil
}

// apply merges command line options into the file configuration.
func (cfg *Config) apply(o *options) {
	if o.strict {
		cfg.Strict = true
	}
	if o.trace {
		cfg.Trace = true
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.jsonFile != "" {
		cfg.JSONVars.File = o.jsonFile
	}
	if o.jsonQuery != "" {
		cfg.JSONVars.Query = o.jsonQuery
	}
}

func (cfg *Config) colorEnabled() bool {
	return cfg.Color == nil || *cfg.Color
}

// contextOptions translates the configuration into rpn options.
func (cfg *Config) contextOptions() []rpn.Option {
	var opts []rpn.Option
	policy, _ := rpn.ParseDuplicatePolicy(cfg.DuplicatePolicy)
	opts = append(opts, rpn.WithDuplicatePolicy(policy))
	if cfg.MaxIndex > 0 {
		opts = append(opts, rpn.WithMaxIndex(cfg.MaxIndex))
	}
	if cfg.AdvancedMath != nil && !*cfg.AdvancedMath {
		opts = append(opts, rpn.WithoutAdvancedMath())
	}
	return opts
}

// seedVariables sets the configured variables in name order.
func (cfg *Config) seedVariables(c *rpn.Context) {
	names := make([]string, 0, len(cfg.Variables))
	for name := range cfg.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.SetVariable(name, cfg.Variables[name])
	}
}
