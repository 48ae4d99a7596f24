// Package embed rewrites social media links in chat messages to domains
// that render better link previews.
//
// Basic usage:
//
//	r := embed.New(settings.Defaults())
//	msg := &embed.Message{Content: "look https://x.com/alice/status/12345"}
//	r.Apply(msg)
//	// msg.Content == "look https://vxtwitter.com/alice/status/12345"
//
// A Rewriter is bound to one configuration snapshot and never changes it.
package embed

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/codeGROOVE-dev/sfcache"

	"github.com/codeGROOVE-dev/embedfix/pkg/metrics"
	"github.com/codeGROOVE-dev/embedfix/pkg/settings"
	"github.com/codeGROOVE-dev/embedfix/pkg/site"
	_ "github.com/codeGROOVE-dev/embedfix/pkg/site/all" // register every supported site
	"github.com/codeGROOVE-dev/embedfix/pkg/urlscan"
)

// Outcome says what happened to one URL candidate.
type Outcome string

// Possible outcomes of rewriting a URL candidate.
const (
	// Rewritten means a site rule produced an embed URL.
	Rewritten Outcome = "rewritten"
	// Unmatched means the URL parsed but no enabled rule applies.
	Unmatched Outcome = "unmatched"
	// Invalid means the candidate is not a usable URL.
	Invalid Outcome = "invalid"
)

// Result is the outcome of rewriting one URL candidate. URL always holds the
// text to put back into the message: the embed URL when Rewritten, the
// candidate exactly as written otherwise.
type Result struct {
	URL     string
	Site    string // empty unless Rewritten
	Outcome Outcome
}

// Message is the part of a chat message the rewriter reads and writes.
type Message struct {
	Content string `json:"content"`
}

// Rewriter rewrites URLs according to one configuration snapshot.
type Rewriter struct {
	cfg     settings.Config
	rules   []site.Rule
	logger  *slog.Logger
	metrics *metrics.Collector
	memo    *memo
}

// memo remembers results per candidate. Results depend only on the
// candidate and the Rewriter's snapshot, so entries never go stale.
type memo struct {
	get func(string) (Result, bool)
	set func(string, Result)
}

func newMemo(size int) *memo {
	c := sfcache.New[string, Result](sfcache.Size(size))
	return &memo{
		get: func(k string) (Result, bool) { return c.Get(k) },
		set: func(k string, v Result) { c.Set(k, v) },
	}
}

// Option configures a Rewriter.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	metrics   *metrics.Collector
	rules     []site.Rule
	cacheSize int
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics records URL outcomes in collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(c *config) { c.metrics = collector }
}

// WithRules replaces the registered site rules, in the given order.
func WithRules(rules ...site.Rule) Option {
	return func(c *config) { c.rules = rules }
}

// WithCacheSize remembers up to n URL results. Zero disables the cache.
func WithCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// New creates a Rewriter for cfg.
func New(cfg settings.Config, opts ...Option) *Rewriter {
	c := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if c.rules == nil {
		c.rules = site.Rules()
	}

	r := &Rewriter{
		cfg:     cfg,
		rules:   c.rules,
		logger:  c.logger,
		metrics: c.metrics,
	}
	if c.cacheSize > 0 {
		r.memo = newMemo(c.cacheSize)
	}
	return r
}

// Config returns the configuration the Rewriter was built with.
func (r *Rewriter) Config() settings.Config {
	return r.cfg
}

// URL rewrites a single URL candidate. Candidates that do not parse, or
// that no enabled rule matches, come back unchanged.
func (r *Rewriter) URL(raw string) Result {
	if r.memo != nil {
		if res, ok := r.memo.get(raw); ok {
			r.metrics.ObserveURL(res.Site, string(res.Outcome))
			return res
		}
	}

	res := r.rewrite(raw)
	r.metrics.ObserveURL(res.Site, string(res.Outcome))
	if r.memo != nil {
		r.memo.set(raw, res)
	}
	return res
}

func (r *Rewriter) rewrite(raw string) Result {
	u, err := url.Parse(raw)
	if err != nil || !site.IsWeb(u) {
		return Result{URL: raw, Outcome: Invalid}
	}

	for _, rule := range r.rules {
		s, ok := r.cfg.Site(rule.Name())
		if !ok || !s.Enabled {
			continue
		}
		if out, ok := rule.Rewrite(u, s.Domain); ok {
			return Result{URL: out, Site: rule.Name(), Outcome: Rewritten}
		}
	}
	return Result{URL: raw, Outcome: Unmatched}
}

// Text rewrites every URL candidate in text. Everything between candidates
// is preserved byte for byte.
func (r *Rewriter) Text(text string) string {
	return urlscan.Replace(text, func(candidate string) string {
		return r.URL(candidate).URL
	})
}

// Apply rewrites msg.Content in place. Empty content is left alone.
func (r *Rewriter) Apply(msg *Message) {
	r.ApplyContext(context.Background(), msg)
}

// ApplyContext is Apply with a context for logging.
func (r *Rewriter) ApplyContext(ctx context.Context, msg *Message) {
	if msg == nil || msg.Content == "" || !urlscan.Contains(msg.Content) {
		return
	}
	out := r.Text(msg.Content)
	if out != msg.Content {
		r.logger.DebugContext(ctx, "rewrote message links", "before", len(msg.Content), "after", len(out))
	}
	msg.Content = out
}
