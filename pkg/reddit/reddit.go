// Package reddit rewrites Reddit links.
package reddit

import (
	"net/url"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

const (
	platform = "reddit"

	// DefaultDomain is the embed domain used when none is configured.
	DefaultDomain = "vxreddit"
)

// platformInfo implements site.Rule for Reddit.
type platformInfo struct{}

func (platformInfo) Name() string          { return platform }
func (platformInfo) Label() string         { return "Reddit" }
func (platformInfo) Priority() int         { return 30 }
func (platformInfo) DefaultDomain() string { return DefaultDomain }
func (platformInfo) Rewrite(u *url.URL, domain string) (string, bool) {
	return Rewrite(u, domain)
}

func init() { site.Register(platformInfo{}) }

// Match returns true if u is a Reddit URL with anything after the host.
func Match(u *url.URL) bool {
	_, ok := rest(u)
	return ok
}

// Rewrite moves u onto the embed domain, keeping path, query and fragment.
func Rewrite(u *url.URL, domain string) (string, bool) {
	r, ok := rest(u)
	if !ok {
		return "", false
	}
	return "https://" + domain + ".com/" + r, true
}

func rest(u *url.URL) (string, bool) {
	if !site.IsWeb(u) || !site.Plain(u) || !site.HostMatch(u.Hostname(), "reddit.com") {
		return "", false
	}
	r, ok := site.Remainder(u, "/")
	return r, ok && r != ""
}
