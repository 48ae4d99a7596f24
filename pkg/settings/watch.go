package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/rjeczalik/notify"
)

// debounce coalesces the burst of events a single save produces.
const debounce = 25 * time.Millisecond

// Reload loads the settings file at path (see Load) and swaps it into store.
// On failure the store keeps its current configuration.
func Reload(ctx context.Context, path string, store *Store, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := retry.DoWithData(
		func() (Config, error) { return Load(path) },
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(50*time.Millisecond),
		retry.MaxJitter(25*time.Millisecond),
		retry.RetryIf(isTransient),
		retry.OnRetry(func(n uint, err error) {
			logger.DebugContext(ctx, "retrying settings load", "attempt", n+1, "path", path, "error", err)
		}),
	)
	if err != nil {
		logger.WarnContext(ctx, "settings reload failed, keeping previous settings", "path", path, "error", err)
		return fmt.Errorf("reload %s: %w", path, err)
	}

	store.Replace(cfg)
	_, version := store.Snapshot()
	logger.InfoContext(ctx, "settings reloaded", "path", path, "version", version)
	return nil
}

// isTransient returns true for errors an editor produces while it is still
// writing the file: a missing file during a rename, or truncated JSON.
func isTransient(err error) bool {
	var syntaxErr *json.SyntaxError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &syntaxErr)
}

// Watch reloads the settings file at path into store whenever it changes,
// until ctx is done. It returns once the watch is established.
func Watch(ctx context.Context, path string, store *Store, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	evs := make(chan notify.EventInfo, 16)
	// Editors often save by renaming a temp file over the original, which a
	// watch on the file itself would miss.
	if err := notify.Watch(filepath.Dir(abs), evs, notify.Create, notify.Write, notify.Rename, notify.Remove); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	logger.DebugContext(ctx, "watching settings", "path", abs)

	go watchLoop(ctx, abs, evs, store, logger)
	return nil
}

func watchLoop(ctx context.Context, path string, evs chan notify.EventInfo, store *Store, logger *slog.Logger) {
	defer notify.Stop(evs)

	delay := time.NewTimer(time.Hour)
	delay.Stop()

	name := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			delay.Stop()
			return

		case ev := <-evs:
			if filepath.Base(ev.Path()) != name {
				continue
			}
			logger.DebugContext(ctx, "settings file changed", "path", ev.Path(), "event", ev.Event().String())
			delay.Reset(debounce)

		case <-delay.C:
			_ = Reload(ctx, path, store, logger) //nolint:errcheck // logged by Reload
		}
	}
}
