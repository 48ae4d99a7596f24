// Package embedfix rewrites social media links in outgoing chat messages so
// they point at domains that render rich embeds.
//
// Basic usage:
//
//	p := embedfix.New()
//	msg := &embedfix.Message{Content: "https://x.com/alice/status/12345"}
//	p.BeforeSend("general", msg)
//	fmt.Println(msg.Content) // https://vxtwitter.com/alice/status/12345
//
// Settings can be changed at any time through the store:
//
//	_ = p.Settings().SetOption("twitter.domain", "fixupx")
//
// Or use the packages directly:
//
//	import "github.com/codeGROOVE-dev/embedfix/pkg/embed"
//	r := embed.New(settings.Defaults())
//	out := r.Text("https://bsky.app/profile/someone.bsky.social")
package embedfix

import (
	"context"
	"log/slog"
	"sync"

	"github.com/codeGROOVE-dev/embedfix/pkg/embed"
	"github.com/codeGROOVE-dev/embedfix/pkg/metrics"
	"github.com/codeGROOVE-dev/embedfix/pkg/settings"
	_ "github.com/codeGROOVE-dev/embedfix/pkg/site/all" // register every supported site
)

type (
	// Message re-exports embed.Message for convenience.
	Message = embed.Message
	// Config re-exports settings.Config for convenience.
	Config = settings.Config
)

// Re-export common errors.
var (
	ErrUnknownSite   = settings.ErrUnknownSite
	ErrUnknownOption = settings.ErrUnknownOption
	ErrInvalidValue  = settings.ErrInvalidValue
)

// Hook names passed to metrics.
const (
	hookSend = "send"
	hookEdit = "edit"
)

// Option configures a Plugin.
type Option func(*config)

type config struct {
	store     *settings.Store
	logger    *slog.Logger
	metrics   *metrics.Collector
	cacheSize int
}

// WithStore uses an existing settings store instead of one holding the defaults.
func WithStore(store *settings.Store) Option {
	return func(c *config) { c.store = store }
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithMetrics records rewrite activity in collector.
func WithMetrics(collector *metrics.Collector) Option {
	return func(c *config) { c.metrics = collector }
}

// WithCacheSize remembers up to n URL results per settings version.
func WithCacheSize(n int) Option {
	return func(c *config) { c.cacheSize = n }
}

// Plugin connects the rewriter to a chat client's message hooks.
type Plugin struct {
	store     *settings.Store
	logger    *slog.Logger
	metrics   *metrics.Collector
	cacheSize int

	mu       sync.Mutex
	rewriter *embed.Rewriter
	version  uint64
}

// New creates a Plugin. Without WithStore it starts from the default settings.
func New(opts ...Option) *Plugin {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.store == nil {
		cfg.store = settings.NewStore(settings.Defaults())
	}

	return &Plugin{
		store:     cfg.store,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		cacheSize: cfg.cacheSize,
	}
}

// Settings returns the live settings store.
func (p *Plugin) Settings() *settings.Store {
	return p.store
}

// Options lists the settings surface for a host settings UI.
func (*Plugin) Options() []settings.Option {
	return settings.Options()
}

// BeforeSend rewrites msg before a new message is sent.
func (p *Plugin) BeforeSend(channelID string, msg *Message) {
	p.apply(context.Background(), hookSend, msg, "channel", channelID)
}

// BeforeEdit rewrites msg before an edit to an existing message is saved.
func (p *Plugin) BeforeEdit(channelID, messageID string, msg *Message) {
	p.apply(context.Background(), hookEdit, msg, "channel", channelID, "message", messageID)
}

func (p *Plugin) apply(ctx context.Context, hook string, msg *Message, attrs ...any) {
	if msg == nil {
		return
	}
	before := msg.Content
	p.current(ctx).ApplyContext(ctx, msg)

	changed := msg.Content != before
	p.metrics.ObserveMessage(hook, changed)
	if changed {
		p.logger.DebugContext(ctx, "message links rewritten", append([]any{"hook", hook}, attrs...)...)
	}
}

// current returns a rewriter for the latest settings, building a new one
// only when the settings version changed.
func (p *Plugin) current(ctx context.Context) *embed.Rewriter {
	cfg, version := p.store.Snapshot()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rewriter == nil || version != p.version {
		p.rewriter = embed.New(cfg,
			embed.WithLogger(p.logger),
			embed.WithMetrics(p.metrics),
			embed.WithCacheSize(p.cacheSize))
		p.version = version
		p.logger.DebugContext(ctx, "rewriter rebuilt", "settings_version", version)
	}
	return p.rewriter
}
