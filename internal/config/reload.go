// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	xglog "github.com/ManuGH/sitecfg/internal/log"
	"github.com/ManuGH/sitecfg/internal/metrics"
	"github.com/ManuGH/sitecfg/internal/site"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

const defaultDebounce = 250 * time.Millisecond

// Source produces a freshly resolved configuration. *Loader implements it.
type Source interface {
	Load() (site.Config, error)
	Path() string
}

// Update is delivered to listeners after a reload that changed the config.
type Update struct {
	Revision string
	Config   site.Config
	Changes  ChangeSummary
}

// HolderOption customises a Holder.
type HolderOption func(*Holder)

// WithDebounce sets how long the watcher waits for file events to settle.
func WithDebounce(d time.Duration) HolderOption {
	return func(h *Holder) { h.debounce = d }
}

// Holder holds the resolved configuration with atomic reloading capability.
// Readers always see a complete config; a failed reload keeps the previous one.
type Holder struct {
	mu       sync.RWMutex
	current  site.Config
	revision string

	source   Source
	debounce time.Duration
	group    singleflight.Group
	logger   zerolog.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}

	// Reload notifications
	listenersMu sync.RWMutex
	listeners   []chan<- Update
}

// NewHolder creates a holder seeded with an already resolved config.
func NewHolder(initial site.Config, source Source, opts ...HolderOption) *Holder {
	h := &Holder{
		current:  Clone(initial),
		revision: uuid.NewString(),
		source:   source,
		debounce: defaultDebounce,
		logger:   xglog.WithComponent("config"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Get returns a private copy of the current configuration.
func (h *Holder) Get() site.Config {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Clone(h.current)
}

// Revision returns the id of the current configuration.
func (h *Holder) Revision() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.revision
}

// Reload reloads and resolves the configuration from its source.
// Concurrent calls share a single load. If loading fails, the current
// configuration is kept and the error is returned.
func (h *Holder) Reload(ctx context.Context) (Update, error) {
	v, err, _ := h.group.Do("reload", func() (any, error) {
		return h.reload(ctx)
	})
	if err != nil {
		return Update{}, err
	}
	// Coalesced callers share v; each gets its own copy.
	u := v.(Update)
	u.Config = Clone(u.Config)
	return u, nil
}

func (h *Holder) reload(ctx context.Context) (Update, error) {
	logger := xglog.WithContext(ctx, h.logger)
	logger.Info().Str(xglog.FieldEvent, "config.reload_start").Msg("reloading configuration")

	next, err := h.source.Load()
	if err != nil {
		metrics.ConfigReloadTotal.WithLabelValues(metrics.ResultError).Inc()
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "config.reload_failed").
			Msg("failed to load new configuration, keeping current")
		return Update{}, fmt.Errorf("reload config: %w", err)
	}

	h.mu.Lock()
	changes := Diff(h.current, next)
	if !changes.Changed() {
		rev := h.revision
		h.mu.Unlock()
		metrics.ConfigReloadTotal.WithLabelValues(metrics.ResultOK).Inc()
		logger.Debug().
			Str(xglog.FieldEvent, "config.reload_unchanged").
			Str(xglog.FieldRevision, rev).
			Msg("configuration unchanged")
		return Update{Revision: rev, Config: Clone(next)}, nil
	}
	rev := uuid.NewString()
	h.current = Clone(next)
	h.revision = rev
	h.mu.Unlock()

	metrics.ConfigReloadTotal.WithLabelValues(metrics.ResultOK).Inc()
	update := Update{Revision: rev, Config: Clone(next), Changes: changes}
	h.notifyListeners(ctx, update)

	revLogger := xglog.WithContext(xglog.ContextWithRevision(ctx, rev), h.logger)
	revLogger.Info().
		Str(xglog.FieldEvent, "config.reload_success").
		Strs(xglog.FieldChanged, changes.ChangedFields).
		Msg("configuration reloaded successfully")

	return update, nil
}

// StartWatcher starts watching the config file for changes.
// If the source has no path, this is a no-op. The watcher stops when ctx is
// cancelled; Wait blocks until it has.
func (h *Holder) StartWatcher(ctx context.Context) error {
	path := h.source.Path()
	if path == "" {
		h.logger.Info().
			Str(xglog.FieldEvent, "config.watcher_disabled").
			Msg("config file watcher disabled (no config file)")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// Watch the directory: editors and atomic writers replace the file,
	// which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close() // Ignore close error in error path
		return fmt.Errorf("watch config dir: %w", err)
	}

	h.watcher = watcher
	h.done = make(chan struct{})

	h.logger.Info().
		Str(xglog.FieldEvent, "config.watcher_started").
		Str(xglog.FieldPath, path).
		Msg("watching config file for changes")

	go h.watchLoop(ctx, filepath.Clean(path))
	return nil
}

// Wait blocks until a started watcher has exited.
func (h *Holder) Wait() {
	if h.done != nil {
		<-h.done
	}
}

// watchLoop is the main file watcher loop.
func (h *Holder) watchLoop(ctx context.Context, path string) {
	defer close(h.done)
	defer func() { _ = h.watcher.Close() }()

	// Debounce timer to avoid multiple reloads for rapid file changes
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "config.watcher_stopped").Msg("config watcher stopped")
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			h.logger.Debug().
				Str(xglog.FieldEvent, "config.file_changed").
				Str("op", event.Op.String()).
				Msg("config file changed")

			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(h.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			if _, err := h.Reload(ctx); err != nil {
				h.logger.Error().
					Err(err).
					Str(xglog.FieldEvent, "config.auto_reload_failed").
					Msg("automatic config reload failed")
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().
				Err(err).
				Str(xglog.FieldEvent, "config.watcher_error").
				Msg("config watcher error")
		}
	}
}

// RegisterListener registers a channel to receive reload notifications.
// Sends never block; a full channel misses the update.
// The caller is responsible for closing the channel.
func (h *Holder) RegisterListener(ch chan<- Update) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

// notifyListeners sends the update to all registered listeners (non-blocking).
func (h *Holder) notifyListeners(ctx context.Context, u Update) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	logger := xglog.WithContext(ctx, h.logger)
	for _, ch := range h.listeners {
		select {
		case ch <- Update{Revision: u.Revision, Config: Clone(u.Config), Changes: u.Changes}:
		default:
			logger.Warn().
				Str(xglog.FieldEvent, "config.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}
