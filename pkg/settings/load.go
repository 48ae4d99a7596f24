package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

// envPrefix starts every environment override, e.g. EMBEDFIX_TWITTER_DOMAIN.
const envPrefix = "EMBEDFIX_"

// fileSite allows a settings file to override only some fields of a site.
type fileSite struct {
	Enabled *bool   `json:"enabled"`
	Domain  *string `json:"domain"`
}

type fileFormat struct {
	Sites map[string]fileSite `json:"sites"`
}

// Parse applies a JSON settings document on top of base.
// Sites missing from the document keep their settings from base.
func Parse(data []byte, base Config) (Config, error) {
	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("parse settings: %w", err)
	}

	cfg := base
	for name, fs := range f.Sites {
		s, _ := cfg.Site(name)
		if fs.Enabled != nil {
			s.Enabled = *fs.Enabled
		}
		if fs.Domain != nil {
			s.Domain = strings.TrimSpace(*fs.Domain)
		}
		var err error
		if cfg, err = cfg.With(name, s); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

// LoadFile reads a JSON settings file and applies it on top of base.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read settings: %w", err)
	}
	return Parse(data, base)
}

// ApplyEnv applies EMBEDFIX_<SITE>_ENABLED and EMBEDFIX_<SITE>_DOMAIN
// overrides read through getenv.
func ApplyEnv(base Config, getenv func(string) string) (Config, error) {
	cfg := base
	for _, r := range site.Rules() {
		prefix := envPrefix + strings.ToUpper(r.Name()) + "_"
		for _, field := range []string{fieldEnabled, fieldDomain} {
			v := getenv(prefix + strings.ToUpper(field))
			if v == "" {
				continue
			}
			var err error
			if cfg, err = cfg.WithOption(r.Name()+"."+field, v); err != nil {
				return base, fmt.Errorf("invalid %s%s: %w", prefix, strings.ToUpper(field), err)
			}
		}
	}
	return cfg, nil
}

// Load builds a configuration from defaults, the settings file at path
// (skipped when path is empty) and environment overrides, in that order.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		var err error
		if cfg, err = LoadFile(path, cfg); err != nil {
			return cfg, err
		}
	}
	return ApplyEnv(cfg, os.Getenv)
}
