package site_test

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
	_ "github.com/codeGROOVE-dev/embedfix/pkg/site/all"
)

func TestRulesPriorityOrder(t *testing.T) {
	var got []string
	for _, r := range site.Rules() {
		got = append(got, r.Name())
	}
	want := []string{"twitter", "instagram", "reddit", "bluesky", "tiktok"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rules() order mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		domain string
	}{
		{"twitter", "vxtwitter"},
		{"instagram", "ddinstagram"},
		{"reddit", "vxreddit"},
		{"bluesky", "bskye"},
		{"tiktok", "tnktok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := site.Lookup(tt.name)
			if r == nil {
				t.Fatalf("Lookup(%q) = nil", tt.name)
			}
			if got := r.DefaultDomain(); got != tt.domain {
				t.Errorf("DefaultDomain() = %q, want %q", got, tt.domain)
			}
		})
	}

	if r := site.Lookup("myspace"); r != nil {
		t.Errorf("Lookup(myspace) = %v, want nil", r)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register should panic on duplicate name")
		}
	}()
	site.Register(site.Lookup("twitter"))
}

func TestHostMatch(t *testing.T) {
	tests := []struct {
		host string
		want bool
	}{
		{"x.com", true},
		{"www.x.com", true},
		{"WWW.TWITTER.COM", true},
		{"a.b.twitter.com", true},
		{"notx.com", false},
		{"x.com.example.org", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			if got := site.HostMatch(tt.host, "twitter.com", "x.com"); got != tt.want {
				t.Errorf("HostMatch(%q) = %v, want %v", tt.host, got, tt.want)
			}
		})
	}
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		url       string
		prefix    string
		want      string
		wantPath  string
		wantFound bool
	}{
		{"https://a.com/p/x/?q=1#f", "/", "p/x/?q=1#f", "p/x/", true},
		{"https://a.com", "/", "", "", true},
		{"https://a.com?q=1", "/", "?q=1", "", true},
		{"https://a.com/profile/bob?tab=1", "/profile/", "bob?tab=1", "bob", true},
		{"https://a.com/search", "/profile/", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			got, ok := site.Remainder(u, tt.prefix)
			if ok != tt.wantFound || got != tt.want {
				t.Errorf("Remainder(%q, %q) = %q, %v, want %q, %v", tt.url, tt.prefix, got, ok, tt.want, tt.wantFound)
			}
			gotPath, ok := site.PathRemainder(u, tt.prefix)
			if ok != tt.wantFound || gotPath != tt.wantPath {
				t.Errorf("PathRemainder(%q, %q) = %q, %v, want %q, %v", tt.url, tt.prefix, gotPath, ok, tt.wantPath, tt.wantFound)
			}
		})
	}
}

func TestIsWeb(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://a.com/", true},
		{"http://a.com", true},
		{"ftp://a.com", false},
		{"mailto:bob@a.com", false},
		{"/relative/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			if got := site.IsWeb(u); got != tt.want {
				t.Errorf("IsWeb(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
	if site.IsWeb(nil) {
		t.Error("IsWeb(nil) = true, want false")
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://x.com/a/status/1", true},
		{"https://x.com/a/status/1#frag", true},
		{"https://x.com:8080/a/status/1", false},
		{"https://x.com:443/a/status/1", false},
		{"https://user:pw@x.com/a/status/1", false},
		{"https://user@x.com/a/status/1", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			if got := site.Plain(u); got != tt.want {
				t.Errorf("Plain(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}
