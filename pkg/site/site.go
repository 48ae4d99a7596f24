// Package site defines the rule interface for embed-friendly link rewriting
// and the registry the platform packages add themselves to.
package site

import (
	"net/url"
	"slices"
	"strings"
	"sync"
)

// Rule defines the interface that all platform implementations must satisfy.
// Each platform package registers itself via Register() in an init() function.
type Rule interface {
	// Name returns the site identifier (e.g., "twitter", "reddit").
	Name() string

	// Label returns the human readable site name shown in settings (e.g., "Twitter/X").
	Label() string

	// Priority orders rules; lower values are tried first.
	Priority() int

	// DefaultDomain returns the embed domain label used when none is configured.
	DefaultDomain() string

	// Rewrite returns the embed URL for u using the given domain label,
	// and false if u does not belong to this site.
	Rewrite(u *url.URL, domain string) (string, bool)
}

var (
	registryMu sync.RWMutex
	registry   []Rule
	byName     = make(map[string]Rule)
)

// Register adds a rule to the global registry.
// This should be called from each platform package's init() function.
func Register(r Rule) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := r.Name()
	if _, exists := byName[name]; exists {
		panic("site already registered: " + name)
	}

	byName[name] = r
	registry = append(registry, r)
	// Package init order follows import paths, not priority.
	slices.SortStableFunc(registry, func(a, b Rule) int { return a.Priority() - b.Priority() })
}

// Rules returns all registered rules in priority order.
func Rules() []Rule {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return slices.Clone(registry)
}

// Lookup returns the rule with the given name, or nil if not found.
func Lookup(name string) Rule {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return byName[name]
}

// IsWeb reports whether u is an absolute http or https URL with a host.
func IsWeb(u *url.URL) bool {
	if u == nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Plain reports whether u names its host without userinfo or an explicit port.
// Links shared from the sites themselves never carry either.
func Plain(u *url.URL) bool {
	return u.User == nil && u.Port() == ""
}

// HostMatch reports whether host is one of domains or a subdomain of one.
func HostMatch(host string, domains ...string) bool {
	host = strings.ToLower(host)
	for _, d := range domains {
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// Remainder returns everything after prefix in u: the escaped path followed
// by the query and fragment, as they appeared. The second return value is
// false when the path does not start with prefix.
func Remainder(u *url.URL, prefix string) (string, bool) {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return "", false
	}
	if u.ForceQuery || u.RawQuery != "" {
		rest += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		rest += "#" + u.EscapedFragment()
	}
	return rest, true
}

// PathRemainder is Remainder without the query and fragment.
func PathRemainder(u *url.URL, prefix string) (string, bool) {
	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	rest, ok := strings.CutPrefix(path, prefix)
	if !ok {
		return "", false
	}
	return rest, true
}
