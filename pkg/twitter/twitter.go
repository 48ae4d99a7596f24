// Package twitter rewrites Twitter/X status links.
package twitter

import (
	"net/url"
	"regexp"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

const (
	platform = "twitter"

	// DefaultDomain is the embed domain used when none is configured.
	DefaultDomain = "vxtwitter"
)

// statusPath captures the user (which may span segments, as in /i/web/status/1)
// and the numeric status id.
var statusPath = regexp.MustCompile(`^/(.+)/status/(\d+)$`)

// platformInfo implements site.Rule for Twitter/X.
type platformInfo struct{}

func (platformInfo) Name() string          { return platform }
func (platformInfo) Label() string         { return "Twitter/X" }
func (platformInfo) Priority() int         { return 10 }
func (platformInfo) DefaultDomain() string { return DefaultDomain }
func (platformInfo) Rewrite(u *url.URL, domain string) (string, bool) {
	return Rewrite(u, domain)
}

func init() { site.Register(platformInfo{}) }

// Match returns true if u is a Twitter/X status URL.
func Match(u *url.URL) bool {
	_, _, ok := status(u)
	return ok
}

// Rewrite returns the status URL on the given embed domain.
// Query parameters and fragments are dropped.
func Rewrite(u *url.URL, domain string) (string, bool) {
	user, id, ok := status(u)
	if !ok {
		return "", false
	}
	return "https://" + domain + ".com/" + user + "/status/" + id, true
}

func status(u *url.URL) (user, id string, ok bool) {
	if !site.IsWeb(u) || !site.Plain(u) || !site.HostMatch(u.Hostname(), "twitter.com", "x.com") {
		return "", "", false
	}
	path, _ := site.PathRemainder(u, "")
	m := statusPath.FindStringSubmatch(path)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}
