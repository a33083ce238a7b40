package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configName = ".avltree.yaml"

type OutputConfig struct {
	Orders  []string `yaml:"orders"`
	Dump    bool     `yaml:"dump"`
	Check   bool     `yaml:"check"`
	Heights bool     `yaml:"heights"`
}

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Output   OutputConfig `yaml:"output"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			Orders: []string{"in"},
			Check:  true,
		},
	}
}

// LoadConfig reads path, or ~/.avltree.yaml when path is empty. A missing
// default file yields the defaults; a missing explicit file is an error.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return defaultConfig(), nil
		}
		path = filepath.Join(homeDir, configName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return defaultConfig(), nil
		}
		return nil, errors.Wrap(err, "read config")
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return config, nil
}
