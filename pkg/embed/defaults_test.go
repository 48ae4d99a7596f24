package embed_test

import (
	"testing"

	"github.com/codeGROOVE-dev/embedfix/pkg/embed"
	"github.com/codeGROOVE-dev/embedfix/pkg/settings"
)

// These tests import only embed and settings, the way a library caller would.

func TestDefaultsRewriteWithoutExtraImports(t *testing.T) {
	r := embed.New(settings.Defaults())
	msg := &embed.Message{Content: "look https://x.com/alice/status/12345"}
	r.Apply(msg)

	if want := "look https://vxtwitter.com/alice/status/12345"; msg.Content != want {
		t.Errorf("Content = %q, want %q", msg.Content, want)
	}
}

func TestDefaultsCoverEverySite(t *testing.T) {
	cfg := settings.Defaults()
	for _, name := range []string{"twitter", "instagram", "reddit", "bluesky", "tiktok"} {
		if !cfg.Enabled(name) {
			t.Errorf("Defaults().Enabled(%q) = false, want true", name)
		}
		if _, err := cfg.WithOption(name+".domain", "custom"); err != nil {
			t.Errorf("WithOption(%q): %v", name+".domain", err)
		}
	}
}
