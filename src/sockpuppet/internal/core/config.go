package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	defaults "github.com/uber/vscode-sockpuppet-go/src/sockpuppet/config"
	uber_config "go.uber.org/config"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

const (
	_envConfigDir = "SOCKPUPPET_CONFIG_DIR"
	_metaFile     = "meta.yaml"
)

var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
)

type Config struct {
	provider uber_config.Provider
}

func (c Config) Get(path string) uber_config.Value {
	return c.provider.Get(path)
}

func (c Config) Name() string {
	return "config"
}

// NewConfig loads the embedded defaults, followed by any override files listed in the meta.yaml of $SOCKPUPPET_CONFIG_DIR.
func NewConfig() (uber_config.Provider, error) {
	return newConfig(os.Getenv(_envConfigDir))
}

func newConfig(configDir string) (uber_config.Provider, error) {
	options := []uber_config.YAMLOption{
		uber_config.Source(bytes.NewReader(defaults.Base)),
	}

	if configDir != "" {
		files, err := overrideFiles(configDir)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			options = append(options, uber_config.File(file))
		}
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return Config{provider: provider}, nil
}

// metaConfig is the schema of meta.yaml. Unknown keys are rejected.
type metaConfig struct {
	Files []string `yaml:"files"`
}

// overrideFiles returns the files listed in meta.yaml that exist in configDir, in listed order.
// Entries may reference environment variables.
func overrideFiles(configDir string) ([]string, error) {
	metaPath := filepath.Join(configDir, _metaFile)
	f, err := os.Open(metaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}
	defer f.Close()

	var meta metaConfig
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&meta); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read files list from %s: %w", _metaFile, err)
	}

	var validFiles []string
	for _, file := range meta.Files {
		fullPath := filepath.Join(configDir, os.ExpandEnv(file))
		if _, err := os.Stat(fullPath); err == nil {
			validFiles = append(validFiles, fullPath)
		}
	}
	return validFiles, nil
}
