package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/actionq/pkg/errors"
	"github.com/arthur-debert/actionq/pkg/logging"
	"github.com/arthur-debert/actionq/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides, e.g. ACTIONQ_OUTPUT_FORMAT=chain
const EnvPrefix = "ACTIONQ_"

// Output formats accepted by output.format
var ValidFormats = []string{"auto", "envelope", "chain", "tree", "markdown", "yaml"}

// Document formats accepted by document.default_format
var ValidDocumentFormats = []string{"yaml", "toml", "json", "xml"}

// Config is the merged actionq configuration
type Config struct {
	Output   OutputConfig   `koanf:"output"`
	Envelope EnvelopeConfig `koanf:"envelope"`
	Document DocumentConfig `koanf:"document"`
	Render   RenderConfig   `koanf:"render"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// OutputConfig controls how built chains are emitted
type OutputConfig struct {
	Format   string `koanf:"format"`
	Indent   string `koanf:"indent"`
	FileMode uint32 `koanf:"file_mode"`
	DirMode  uint32 `koanf:"dir_mode"`
}

// EnvelopeConfig controls serialization of the wire envelope
type EnvelopeConfig struct {
	AllowEmpty bool `koanf:"allow_empty"`
}

// DocumentConfig controls chain document loading
type DocumentConfig struct {
	DefaultFormat string `koanf:"default_format"`
}

// RenderConfig controls terminal rendering
type RenderConfig struct {
	Style   string `koanf:"style"`
	Width   int    `koanf:"width"`
	NoColor bool   `koanf:"no_color"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	File bool `koanf:"file"`
}

// LoadOptions selects the files merged over the defaults
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string
	// ProjectDir is searched for .actionq.toml / actionq.toml when ConfigFile is empty
	ProjectDir string
	// SkipUserConfig ignores the XDG user config file
	SkipUserConfig bool
	// SkipProjectConfig ignores project config files
	SkipProjectConfig bool
	// SkipEnv ignores ACTIONQ_ environment variables
	SkipEnv bool
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := Load(LoadOptions{SkipUserConfig: true, SkipProjectConfig: true, SkipEnv: true})
	if err != nil {
		// The embedded defaults are covered by tests
		panic(err)
	}
	return cfg
}

// Load merges, in order: embedded defaults, user config, project or explicit
// config file, and ACTIONQ_ environment variables
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	p := paths.New()

	// 2. User config
	if !opts.SkipUserConfig {
		if err := loadFileIfExists(k, p.UserConfigPath()); err != nil {
			return nil, err
		}
	}

	// 3. Explicit or project config
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad,
				"config file %s not found", opts.ConfigFile)
		}
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
	} else if !opts.SkipProjectConfig {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}
		if path, ok := p.ProjectConfigPath(dir); ok {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
		}
	}

	// 4. Environment
	if !opts.SkipEnv {
		err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
			// Section names have no underscores, so only the first one nests
			return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", 1)
		}), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("format", cfg.Output.Format).
		Bool("allowEmpty", cfg.Envelope.AllowEmpty).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if !contains(ValidFormats, c.Output.Format) {
		return errors.Newf(errors.ErrConfigParse, "invalid output.format %q", c.Output.Format).
			WithDetail("valid", ValidFormats)
	}
	if !contains(ValidDocumentFormats, c.Document.DefaultFormat) {
		return errors.Newf(errors.ErrConfigParse, "invalid document.default_format %q", c.Document.DefaultFormat).
			WithDetail("valid", ValidDocumentFormats)
	}
	if c.Render.Width < 0 {
		return errors.Newf(errors.ErrConfigParse, "render.width must not be negative, got %d", c.Render.Width)
	}
	return nil
}

// FileMode returns the output file permissions
func (c *Config) FileMode() os.FileMode {
	return os.FileMode(c.Output.FileMode)
}

// DirMode returns the output directory permissions
func (c *Config) DirMode() os.FileMode {
	return os.FileMode(c.Output.DirMode)
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return loadFile(k, path)
}

func loadFile(k *koanf.Koanf, path string) error {
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
