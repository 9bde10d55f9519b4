// Package configfile reads and writes the rbx application config,
// ~/.recipebox/config.yaml (or $RBX_DIR/config.yaml).
package configfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const ConfigFileName = "config.yaml"

// RecipesFileName is the default name of the storage file inside the rbx dir.
const RecipesFileName = "recipes.json"

type Config struct {
	// File is the recipe storage path. Relative paths resolve against the
	// rbx directory.
	File string `mapstructure:"file" yaml:"file,omitempty"`

	// NoColor disables styled output.
	NoColor bool `mapstructure:"no-color" yaml:"no-color,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		File: RecipesFileName,
	}
}

// Dir returns the rbx directory: $RBX_DIR when set, else ~/.recipebox.
func Dir() string {
	if dir := os.Getenv("RBX_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recipebox"
	}
	return filepath.Join(home, ".recipebox")
}

func ConfigPath(rbxDir string) string {
	return filepath.Join(rbxDir, ConfigFileName)
}

// Load reads config.yaml from the given directory. A missing file returns
// (nil, nil); callers fall back to DefaultConfig.
func Load(rbxDir string) (*Config, error) {
	configPath := ConfigPath(rbxDir)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.File == "" {
		cfg.File = RecipesFileName
	}
	return &cfg, nil
}

func (c *Config) Save(rbxDir string) error {
	if err := os.MkdirAll(rbxDir, 0750); err != nil {
		return fmt.Errorf("creating %s: %w", rbxDir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(rbxDir), data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// RecipesPath resolves the storage file path against the rbx directory.
func (c *Config) RecipesPath(rbxDir string) string {
	if c.File == "" {
		return filepath.Join(rbxDir, RecipesFileName)
	}
	if filepath.IsAbs(c.File) {
		return c.File
	}
	return filepath.Join(rbxDir, c.File)
}
