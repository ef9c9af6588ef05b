// Package config loads minigrep settings.
//
// Sources are layered, later ones overriding earlier ones:
//  1. built-in defaults
//  2. a TOML or YAML file, either given explicitly or found under the XDG
//     config directory as minigrep/config.{toml,yaml,yml}
//  3. MINIGREP_* environment variables (MINIGREP_LOG_LEVEL → log.level)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "MINIGREP_"

// Log formats accepted in log.format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Log    LogConfig    `koanf:"log"`
	Engine EngineConfig `koanf:"engine"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// EngineConfig controls the matcher.
type EngineConfig struct {
	Prefilter bool `koanf:"prefilter"`
}

// ZerologLevel parses Log.Level.
func (c *Config) ZerologLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return level, nil
}

// Validate checks that every field holds a supported value.
func (c *Config) Validate() error {
	if _, err := c.ZerologLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format %q (want %q or %q)", ErrInvalid, c.Log.Format, FormatConsole, FormatJSON)
	}
	return nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"log.level":        "warn",
		"log.format":       FormatConsole,
		"engine.prefilter": true,
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Loader reads configuration files through an afero filesystem.
type Loader struct {
	fs afero.Fs

	// locate returns the default config file path, or "" if there is none.
	locate func() string
}

// NewLoader returns a Loader reading from fs and searching the XDG config
// directories for a default file.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs, locate: searchXDG}
}

// searchXDG looks for minigrep/config.{toml,yaml,yml} in the XDG config
// directories.
func searchXDG() string {
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		if path, err := xdg.SearchConfigFile(filepath.Join("minigrep", name)); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves the configuration. When path is empty the default location
// is searched and a missing file is not an error; an explicit path must exist.
func (l *Loader) Load(path string) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path == "" && l.locate != nil {
		path = l.locate()
	}
	if path != "" {
		if err := l.loadFile(k, path); err != nil {
			return nil, err
		}
	}

	// 3. Env vars
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (l *Loader) loadFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return fmt.Errorf("%w: unsupported config file type %q", ErrInvalid, ext)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("failed to read config from %s: %w", path, err)
	}

	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return nil
}
