// Package config holds ibatt settings loaded from an optional TOML file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/ibatt/pkg/idevice"
)

const maxTimeoutSeconds = 3600

// Config is the on-disk configuration.
type Config struct {
	DeviceListTool string `toml:"device_list_tool"`
	DeviceInfoTool string `toml:"device_info_tool"`
	// Strict makes every failed check exit non-zero.
	Strict bool `toml:"strict"`
	// TimeoutSeconds bounds each tool invocation. 0 waits forever.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		DeviceListTool: idevice.DefaultListTool,
		DeviceInfoTool: idevice.DefaultInfoTool,
	}
}

// DefaultPath returns $HOME/.config/ibatt/config.toml, or "" if the home
// directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ibatt", "config.toml")
}

// Load reads path on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to read config file %s", path)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to decode config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		logrus.WithField("keys", undecoded).Warnf("unknown keys in config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, pkgerrors.Wrapf(err, "invalid config file %s", path)
	}

	return cfg, nil
}

// LoadOrDefault is like Load, but a missing file yields DefaultConfig
// unless required is set.
func LoadOrDefault(path string, required bool) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	cfg, err := Load(path)
	if err != nil && !required && os.IsNotExist(pkgerrors.Cause(err)) {
		logrus.WithField("path", path).Debug("config file not found, using defaults")
		return DefaultConfig(), nil
	}

	return cfg, err
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DeviceListTool) == "" {
		return pkgerrors.New("device_list_tool must not be empty")
	}
	if strings.TrimSpace(c.DeviceInfoTool) == "" {
		return pkgerrors.New("device_info_tool must not be empty")
	}
	if c.TimeoutSeconds < 0 || c.TimeoutSeconds > maxTimeoutSeconds {
		return pkgerrors.Errorf("timeout_seconds must be between 0 and %d, got %d", maxTimeoutSeconds, c.TimeoutSeconds)
	}
	return nil
}

// Timeout returns the per-invocation timeout, 0 meaning none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogrusFields returns the settings as log fields.
func (c *Config) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"deviceListTool": c.DeviceListTool,
		"deviceInfoTool": c.DeviceInfoTool,
		"strict":         c.Strict,
		"timeoutSeconds": c.TimeoutSeconds,
	}
}
