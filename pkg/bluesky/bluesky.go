// Package bluesky rewrites BlueSky profile and post links.
package bluesky

import (
	"net/url"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

const (
	platform = "bluesky"

	// DefaultDomain is the embed domain used when none is configured.
	DefaultDomain = "bskye"
)

// platformInfo implements site.Rule for BlueSky.
type platformInfo struct{}

func (platformInfo) Name() string          { return platform }
func (platformInfo) Label() string         { return "BlueSky" }
func (platformInfo) Priority() int         { return 40 }
func (platformInfo) DefaultDomain() string { return DefaultDomain }
func (platformInfo) Rewrite(u *url.URL, domain string) (string, bool) {
	return Rewrite(u, domain)
}

func init() { site.Register(platformInfo{}) }

// Match returns true if u is a bsky.app URL under /profile/.
func Match(u *url.URL) bool {
	_, ok := rest(u)
	return ok
}

// Rewrite moves u onto the embed domain. Everything after /profile/ is kept.
func Rewrite(u *url.URL, domain string) (string, bool) {
	r, ok := rest(u)
	if !ok {
		return "", false
	}
	return "https://" + domain + ".app/profile/" + r, true
}

func rest(u *url.URL) (string, bool) {
	if !site.IsWeb(u) || !site.Plain(u) || !site.HostMatch(u.Hostname(), "bsky.app") {
		return "", false
	}
	r, ok := site.Remainder(u, "/profile/")
	return r, ok && r != ""
}
