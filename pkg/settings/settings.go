// Package settings holds the per-site embed configuration: whether a site's
// links are rewritten and which embed domain they are moved to.
package settings

import (
	"errors"
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
	_ "github.com/codeGROOVE-dev/embedfix/pkg/site/all" // Defaults covers every supported site
)

// Common errors returned when applying configuration.
var (
	ErrUnknownSite   = errors.New("unknown site")
	ErrUnknownOption = errors.New("unknown option")
	ErrInvalidValue  = errors.New("invalid value")
)

// Site is the user-facing configuration of one site.
type Site struct {
	Enabled bool   `json:"enabled"`
	Domain  string `json:"domain"`
}

// Config is an immutable snapshot of every site's settings.
// The zero value has no sites; use Defaults.
type Config struct {
	sites map[string]Site
}

// Defaults returns every registered site enabled with its default domain.
// This package imports site/all, so the built-in sites are always registered;
// rules registered later are only included in Defaults called after that.
func Defaults() Config {
	rules := site.Rules()
	sites := make(map[string]Site, len(rules))
	for _, r := range rules {
		sites[r.Name()] = Site{Enabled: true, Domain: r.DefaultDomain()}
	}
	return Config{sites: sites}
}

// Site returns the settings for name and whether the site is known.
func (c Config) Site(name string) (Site, bool) {
	s, ok := c.sites[name]
	return s, ok
}

// Enabled reports whether name is configured and enabled.
func (c Config) Enabled(name string) bool {
	return c.sites[name].Enabled
}

// Sites returns a copy of all site settings keyed by site name.
func (c Config) Sites() map[string]Site {
	return maps.Clone(c.sites)
}

// With returns a copy of c with name set to s.
func (c Config) With(name string, s Site) (Config, error) {
	if site.Lookup(name) == nil {
		return c, fmt.Errorf("%w: %s", ErrUnknownSite, name)
	}
	sites := maps.Clone(c.sites)
	if sites == nil {
		sites = make(map[string]Site, 1)
	}
	sites[name] = s
	return Config{sites: sites}, nil
}

// WithOption returns a copy of c with one settings option applied.
// Keys are "<site>.enabled" and "<site>.domain", as listed by Options.
func (c Config) WithOption(key, value string) (Config, error) {
	name, field, ok := strings.Cut(key, ".")
	if !ok {
		return c, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	if site.Lookup(name) == nil {
		return c, fmt.Errorf("%w: %s", ErrUnknownSite, name)
	}

	s := c.sites[name]
	switch field {
	case fieldEnabled:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
		s.Enabled = b
	case fieldDomain:
		s.Domain = strings.TrimSpace(value)
	default:
		return c, fmt.Errorf("%w: %s", ErrUnknownOption, key)
	}
	return c.With(name, s)
}

// Store publishes Config snapshots. Readers never block writers.
type Store struct {
	cur atomic.Pointer[snapshot]
	mu  sync.Mutex // serializes writers
}

type snapshot struct {
	cfg     Config
	version uint64
}

// NewStore creates a Store holding cfg.
func NewStore(cfg Config) *Store {
	s := &Store{}
	s.cur.Store(&snapshot{cfg: cfg, version: 1})
	return s
}

// Snapshot returns the current configuration and its version.
// The version increases on every change.
func (s *Store) Snapshot() (Config, uint64) {
	snap := s.cur.Load()
	return snap.cfg, snap.version
}

// Config returns the current configuration.
func (s *Store) Config() Config {
	return s.cur.Load().cfg
}

// Replace swaps in cfg.
func (s *Store) Replace(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.cur.Load()
	s.cur.Store(&snapshot{cfg: cfg, version: old.version + 1})
}

// SetOption applies a single settings edit, as made from a settings UI.
func (s *Store) SetOption(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.cur.Load()
	cfg, err := old.cfg.WithOption(key, value)
	if err != nil {
		return err
	}
	s.cur.Store(&snapshot{cfg: cfg, version: old.version + 1})
	return nil
}
