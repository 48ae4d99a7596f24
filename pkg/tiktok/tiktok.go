// Package tiktok rewrites TikTok video and profile links.
package tiktok

import (
	"net/url"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

const (
	platform = "tiktok"

	// DefaultDomain is the embed domain used when none is configured.
	DefaultDomain = "tnktok"
)

// platformInfo implements site.Rule for TikTok.
type platformInfo struct{}

func (platformInfo) Name() string          { return platform }
func (platformInfo) Label() string         { return "TikTok" }
func (platformInfo) Priority() int         { return 50 }
func (platformInfo) DefaultDomain() string { return DefaultDomain }
func (platformInfo) Rewrite(u *url.URL, domain string) (string, bool) {
	return Rewrite(u, domain)
}

func init() { site.Register(platformInfo{}) }

// Match returns true if u is a TikTok URL with a non-empty path.
func Match(u *url.URL) bool {
	_, ok := rest(u)
	return ok
}

// Rewrite moves u onto the embed domain. The query string carries tracking
// parameters only, so it is dropped along with any fragment.
func Rewrite(u *url.URL, domain string) (string, bool) {
	r, ok := rest(u)
	if !ok {
		return "", false
	}
	return "https://" + domain + ".com/" + r, true
}

func rest(u *url.URL) (string, bool) {
	if !site.IsWeb(u) || !site.Plain(u) || !site.HostMatch(u.Hostname(), "tiktok.com") {
		return "", false
	}
	r, ok := site.PathRemainder(u, "/")
	return r, ok && r != ""
}
