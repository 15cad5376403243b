package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cppgm/styletools/internal/domain"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".styletools.yaml"

// YAMLLoader reads .styletools.yaml into a domain.Config.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads the config file at path.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(path string) (domain.Config, error) {
	if path == "" {
		path = FileName
	}
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", name, err)
	}

	// Validate before filling defaults so typos in the user's input are reported.
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", name, err)
	}

	return cfg.WithDefaults(), nil
}
