package main

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/wikipedia"
	wikihttp "github.com/fwojciec/wikipedia/http"
	"gopkg.in/yaml.v3"
)

// AppName names the config directory.
const AppName = "wikipedia"

// DefaultRateLimit keeps the CLI within Wikimedia's API etiquette.
const DefaultRateLimit = 5.0

// Environment variables overriding the config file.
const (
	EnvDomain    = "WIKIPEDIA_DOMAIN"
	EnvUserAgent = "WIKIPEDIA_USER_AGENT"
)

// Settings is the resolved runtime configuration of the CLI.
type Settings struct {
	Wiki      wikipedia.Config
	Timeout   time.Duration
	RateLimit float64
}

// DefaultSettings returns settings for English Wikipedia.
func DefaultSettings() Settings {
	return Settings{
		Wiki:      wikipedia.DefaultConfig(),
		Timeout:   wikihttp.DefaultFetchTimeout,
		RateLimit: DefaultRateLimit,
	}
}

// Validate returns an error if the settings cannot be used.
func (s Settings) Validate() error {
	if err := s.Wiki.Validate(); err != nil {
		return err
	}
	if s.Timeout <= 0 {
		return wikipedia.Errorf(wikipedia.EINVALID, "timeout must be positive")
	}
	if s.RateLimit < 0 {
		return wikipedia.Errorf(wikipedia.EINVALID, "rate limit must not be negative")
	}
	return nil
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/wikipedia/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// fileConfig mirrors the YAML config file. Pointers distinguish unset keys
// from zero values.
type fileConfig struct {
	Protocol        string        `yaml:"protocol"`
	Domain          string        `yaml:"domain"`
	Path            string        `yaml:"path"`
	UserAgent       string        `yaml:"user_agent"`
	FollowRedirects *bool         `yaml:"follow_redirects"`
	MaxRedirects    *int          `yaml:"max_redirects"`
	Timeout         time.Duration `yaml:"timeout"`
	RateLimit       *float64      `yaml:"rate_limit"`
}

// LoadSettings reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is an error only when required.
func LoadSettings(path string, required bool, getenv func(string) string) (Settings, error) {
	s := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist) && !required:
		case err != nil:
			return Settings{}, wikipedia.Errorf(wikipedia.EINVALID, "cannot read config file: %v", err)
		default:
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return Settings{}, wikipedia.Errorf(wikipedia.EINVALID, "invalid config file %s: %v", path, err)
			}
			fc.apply(&s)
		}
	}

	if v := getenv(EnvDomain); v != "" {
		s.Wiki.Domain = v
	}
	if v := getenv(EnvUserAgent); v != "" {
		s.Wiki.UserAgent = v
	}

	return s, nil
}

func (fc fileConfig) apply(s *Settings) {
	if fc.Protocol != "" {
		s.Wiki.Protocol = fc.Protocol
	}
	if fc.Domain != "" {
		s.Wiki.Domain = fc.Domain
	}
	if fc.Path != "" {
		s.Wiki.Path = fc.Path
	}
	if fc.UserAgent != "" {
		s.Wiki.UserAgent = fc.UserAgent
	}
	if fc.FollowRedirects != nil {
		s.Wiki.FollowRedirects = *fc.FollowRedirects
	}
	if fc.MaxRedirects != nil {
		s.Wiki.MaxRedirects = *fc.MaxRedirects
	}
	if fc.Timeout != 0 {
		s.Timeout = fc.Timeout
	}
	if fc.RateLimit != nil {
		s.RateLimit = *fc.RateLimit
	}
}
