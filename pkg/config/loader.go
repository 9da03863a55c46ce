package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/arthur-debert/tagterm/pkg/errors"
	"github.com/arthur-debert/tagterm/pkg/logging"
	"github.com/arthur-debert/tagterm/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override config keys.
// TAGTERM_PROMPT_ERROR_DELAY sets prompt.error_delay.
const EnvPrefix = "TAGTERM_"

// DefaultEnvFile is read for TAGTERM_ variables when it exists.
const DefaultEnvFile = ".env"

// LoadOptions selects the files Load reads.
type LoadOptions struct {
	// Path replaces the user config file. Unlike the default location it
	// must exist.
	Path string
	// EnvFile replaces DefaultEnvFile
	EnvFile string
}

// Load builds the configuration from, in increasing priority: the embedded
// defaults, the user config file, the env file and the process environment.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = paths.New().ConfigFile()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	} else if explicit {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s is not readable", path)
	}

	// 3. .env file
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	vars, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		if err := k.Load(confmap.Provider(envFileKeys(vars), "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", envFile)
		}
		logger.Debug().Str("path", envFile).Int("vars", len(vars)).Msg("Loaded env file")
	case stderrors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to read %s", envFile)
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return unmarshal(k)
}

// Defaults returns the embedded default configuration, ignoring files and
// the environment.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps TAGTERM_SECTION_SOME_KEY to section.some_key.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + rest
}

func envFileKeys(vars map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range vars {
		if strings.HasPrefix(name, EnvPrefix) {
			out[envKey(name)] = value
		}
	}
	return out
}
