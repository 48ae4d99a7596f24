package bluesky

import (
	"net/url"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://bsky.app/profile/johndoe.bsky.social", true},
		{"https://bsky.app/profile/johndoe.com", true},
		{"https://staging.bsky.app/profile/johndoe", true},
		{"https://bsky.app/profile/", false},
		{"https://bsky.app/search?q=go", false},
		{"https://twitter.com/johndoe", false},
		{"https://mastodon.social/@johndoe", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			if got := Match(u); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestRewrite(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://bsky.app/profile/someone.bsky.social", "https://bskye.app/profile/someone.bsky.social"},
		{"https://bsky.app/profile/someone.bsky.social/post/3k2", "https://bskye.app/profile/someone.bsky.social/post/3k2"},
		{"https://bsky.app/profile/johndoe?tab=likes", "https://bskye.app/profile/johndoe?tab=likes"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			if err != nil {
				t.Fatalf("url.Parse(%q): %v", tt.url, err)
			}
			got, ok := Rewrite(u, DefaultDomain)
			if !ok {
				t.Fatalf("Rewrite(%q) did not match", tt.url)
			}
			if got != tt.want {
				t.Errorf("Rewrite(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
