package settings

import (
	"strconv"

	"github.com/codeGROOVE-dev/embedfix/pkg/site"
)

const (
	fieldEnabled = "enabled"
	fieldDomain  = "domain"
)

// OptionType is the kind of value a settings option holds.
type OptionType string

// Option types understood by settings UIs.
const (
	OptionBool   OptionType = "boolean"
	OptionString OptionType = "string"
)

// Option describes one entry of the settings surface.
type Option struct {
	Key         string     `json:"key"`
	Site        string     `json:"site"`
	Type        OptionType `json:"type"`
	Description string     `json:"description"`
	Default     string     `json:"default"`
	// DisabledBy names the boolean option that must be true for this
	// option to be editable. UIs enforce it; the rewriter does not.
	DisabledBy string `json:"disabledBy,omitempty"`
}

// Options lists the settings surface in site priority order: for each
// site, its enable flag followed by its embed domain.
func Options() []Option {
	rules := site.Rules()
	opts := make([]Option, 0, 2*len(rules))
	for _, r := range rules {
		enabledKey := r.Name() + "." + fieldEnabled
		opts = append(opts,
			Option{
				Key:         enabledKey,
				Site:        r.Name(),
				Type:        OptionBool,
				Description: "Allow " + r.Label() + " embeds to be altered.",
				Default:     strconv.FormatBool(true),
			},
			Option{
				Key:         r.Name() + "." + fieldDomain,
				Site:        r.Name(),
				Type:        OptionString,
				Description: "Enter which embedder to use for " + r.Label() + " links.",
				Default:     r.DefaultDomain(),
				DisabledBy:  enabledKey,
			},
		)
	}
	return opts
}

// Disabled reports whether opt should be shown as not editable under cfg.
func (opt Option) Disabled(cfg Config) bool {
	return opt.DisabledBy != "" && !cfg.Enabled(opt.Site)
}
