package instagram

import (
	"net/url"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.instagram.com/p/ABC123/", true},
		{"https://instagram.com/johndoe", true},
		{"https://instagram.com/reel/xyz?igsh=1", true},
		{"https://instagram.com?hl=en", true},
		{"https://instagram.com/", false},
		{"https://instagram.com", false},
		{"https://notinstagram.com/p/ABC", false},
		{"https://twitter.com/johndoe", false},
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
		{"https://www.instagram.com/p/ABC123/", "https://ddinstagram.com/p/ABC123/"},
		{"https://instagram.com/reel/xyz?igsh=1", "https://ddinstagram.com/reel/xyz?igsh=1"},
		{"http://m.instagram.com/johndoe#top", "https://ddinstagram.com/johndoe#top"},
		{"https://instagram.com?hl=en", "https://ddinstagram.com/?hl=en"},
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
