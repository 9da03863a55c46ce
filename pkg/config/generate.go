package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(DefaultContent())
}

// WriteDefault writes the commented default configuration to path.
// An existing file is kept unless force is set.
func WriteDefault(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrFileExists, "config file %s already exists", path).
			WithDetail("path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}

// fileConfig mirrors Config in the on-disk format, with durations spelled
// as strings.
type fileConfig struct {
	Output struct {
		Color string `toml:"color"`
	} `toml:"output"`
	Delay struct {
		Default string `toml:"default"`
	} `toml:"delay"`
	Prompt struct {
		ErrorDelay string `toml:"error_delay"`
	} `toml:"prompt"`
	Log struct {
		File bool `toml:"file"`
	} `toml:"log"`
}

// Marshal renders cfg as TOML in the config file format.
func Marshal(cfg *Config) ([]byte, error) {
	var fc fileConfig
	fc.Output.Color = cfg.Output.Color
	fc.Delay.Default = cfg.Delay.Default.String()
	fc.Prompt.ErrorDelay = cfg.Prompt.ErrorDelay.String()
	fc.Log.File = cfg.Log.File

	out, err := toml.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return out, nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// section headers stay active so uncommenting a value is enough
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}
