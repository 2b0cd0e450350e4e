package config

import (
	"os"
	"sort"
	"strconv"

	"dario.cat/mergo"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/minilog/core"
	"github.com/philipp01105/minilog/out"
)

// Environment variables read by FromEnv
const (
	EnvLevel      = "MINILOG_LEVEL"
	EnvTimestamps = "MINILOG_TIMESTAMPS"
)

// Config holds the runtime settings of the logging front-end
type Config struct {
	// Level is a level name or rank accepted by core.ParseLevel
	Level string `mapstructure:"level" yaml:"level"`
	// Timestamps controls the timestamp block of the fd adapter.
	// nil means enabled.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps"`
}

// Default returns the settings in effect before anything is configured
func Default() Config {
	enabled := true
	return Config{
		Level:      core.NoneLevel.String(),
		Timestamps: &enabled,
	}
}

// Load returns the defaults overridden by the file at path, if path is
// not empty, and then by the environment
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		if err := cfg.FromEnv(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML file, fills unset keys from Default and applies
// environment overrides. Unknown keys are reported as errors.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}
	expandEnv(raw)

	var cfg Config
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Metadata:         &md,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "create config decoder")
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, errors.Wrapf(err, "decode config %s", path)
	}

	var errs error
	sort.Strings(md.Unused)
	for _, key := range md.Unused {
		errs = multierr.Append(errs, errors.Errorf("%s: unknown key %q", path, key))
	}
	if errs != nil {
		return Config{}, errs
	}

	if err := mergo.Merge(&cfg, Default(), mergo.WithoutDereference); err != nil {
		return Config{}, errors.Wrap(err, "merge config defaults")
	}
	if err := cfg.FromEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv overrides c with MINILOG_LEVEL and MINILOG_TIMESTAMPS when
// they are set
func (c *Config) FromEnv() error {
	if v, ok := os.LookupEnv(EnvLevel); ok && v != "" {
		c.Level = v
	}
	if v, ok := os.LookupEnv(EnvTimestamps); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvTimestamps)
		}
		c.Timestamps = &enabled
	}
	return nil
}

// Validate reports every invalid setting
func (c Config) Validate() error {
	var errs error
	if _, err := core.ParseLevel(c.Level); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "level"))
	}
	return errs
}

// Apply validates c and installs it: the process-wide level and the fd
// adapter's timestamp setting
func (c Config) Apply() error {
	if err := c.Validate(); err != nil {
		return err
	}
	level, _ := core.ParseLevel(c.Level)
	out.SetTimestamps(c.Timestamps == nil || *c.Timestamps)
	core.SetLevel(level)
	return nil
}

// expandEnv replaces ${NAME} references in top-level string values
func expandEnv(m map[string]interface{}) {
	for k, v := range m {
		if s, ok := v.(string); ok {
			m[k] = os.ExpandEnv(s)
		}
	}
}
