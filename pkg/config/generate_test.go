package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/tagterm/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentOutConfigValues(t *testing.T) {
	input := "# header\n\n[output]\ncolor = \"auto\"\n  [log]\nfile = true"
	want := "# header\n\n[output]\n# color = \"auto\"\n  [log]\n# file = true"

	assert.Equal(t, want, commentOutConfigValues(input))
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, `# color = "auto"`)
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GenerateConfigContent(), string(data))

	err = WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileExists))

	assert.NoError(t, WriteDefault(path, true))
}

func TestWriteDefault_LoadsAsDefaults(t *testing.T) {
	dir, opts := isolate(t)
	require.NoError(t, WriteDefault(filepath.Join(dir, "config.toml"), false))

	cfg, err := Load(opts)

	require.NoError(t, err)
	assert.Equal(t, 200*time.Millisecond, cfg.Delay.Default)
}

func TestMarshal(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Color: ColorNever},
		Delay:  DelayConfig{Default: 150 * time.Millisecond},
		Prompt: PromptConfig{ErrorDelay: time.Second},
		Log:    LogConfig{File: false},
	}

	out, err := Marshal(cfg)
	require.NoError(t, err)

	var back fileConfig
	require.NoError(t, toml.Unmarshal(out, &back))
	assert.Equal(t, "never", back.Output.Color)
	assert.Equal(t, "150ms", back.Delay.Default)
	assert.Equal(t, "1s", back.Prompt.ErrorDelay)
	assert.False(t, back.Log.File)
}

func TestMarshal_RoundTripsThroughLoad(t *testing.T) {
	dir, opts := isolate(t)
	cfg := &Config{
		Output: OutputConfig{Color: ColorAlways},
		Delay:  DelayConfig{Default: 5 * time.Millisecond},
		Prompt: PromptConfig{ErrorDelay: 0},
		Log:    LogConfig{File: true},
	}
	out, err := Marshal(cfg)
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "config.toml"), string(out))

	loaded, err := Load(opts)

	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
