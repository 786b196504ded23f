// Package config defines the configuration file for lensort.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/lensort/pkg/diag"
	"github.com/siyuan-infoblox/lensort/pkg/syntax"
)

// EnvConfigPath names the environment variable that points at a config file
const EnvConfigPath = "LENSORT_CONFIG"

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	"lensort.yml",
	"lensort.yaml",
	".lensort.yml",
	".lensort.yaml",
}

// Config is the top-level configuration.
type Config struct {
	Rules      map[string]string `yaml:"rules"`
	Extensions []string          `yaml:"extensions"`
	Exclude    []string          `yaml:"exclude"`
	Jobs       int               `yaml:"jobs"`
}

// DefaultConfig returns a Config with every rule enabled as a warning
func DefaultConfig() *Config {
	return &Config{
		Rules:      map[string]string{},
		Extensions: append([]string(nil), syntax.Extensions...),
		Exclude:    []string{"node_modules", "dist", "build", "coverage"},
		Jobs:       4,
	}
}

// Severity returns the configured severity for a rule. Rules that are not
// mentioned default to warnings.
func (c *Config) Severity(rule string) (diag.Severity, error) {
	s, ok := c.Rules[rule]
	if !ok {
		return diag.SevWarn, nil
	}
	sev, err := diag.ParseSeverity(s)
	if err != nil {
		return diag.SevOff, fmt.Errorf("rule %s: %w", rule, err)
	}
	return sev, nil
}

// Discover returns the path of the first config file found in dir,
// or an empty string if there is none.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads a config file. An empty configPath falls back to
// $LENSORT_CONFIG and then to discovery in the working directory; with no
// file found the defaults are returned. Keys missing from the file keep
// their defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if configPath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		configPath = Discover(wd)
	}
	if configPath == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configPath, err)
	}
	if cfg.Rules == nil {
		cfg.Rules = map[string]string{}
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}
