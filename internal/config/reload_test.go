// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/ManuGH/sitecfg/internal/metrics"
	"github.com/ManuGH/sitecfg/internal/site"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type fakeSource struct {
	mu      sync.Mutex
	cfg     site.Config
	err     error
	calls   int
	release chan struct{}
}

func (f *fakeSource) Load() (site.Config, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	f.mu.Unlock()

	if release != nil {
		<-release
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return Clone(f.cfg), f.err
}

func (f *fakeSource) Path() string { return "" }

func (f *fakeSource) set(cfg site.Config, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cfg, f.err = cfg, err
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestHolder_ReloadAppliesAndNotifies(t *testing.T) {
	initial := movescriptConfig()
	src := &fakeSource{cfg: initial}
	h := NewHolder(initial, src)
	rev := h.Revision()

	ch := make(chan Update, 1)
	h.RegisterListener(ch)

	next := movescriptConfig()
	next.Title = "Renamed"
	src.set(next, nil)

	u, err := h.Reload(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, rev, u.Revision)
	require.Equal(t, u.Revision, h.Revision())
	require.Equal(t, []string{"Title"}, u.Changes.ChangedFields)
	require.Equal(t, "Renamed", h.Get().Title)

	select {
	case got := <-ch:
		require.Equal(t, u.Revision, got.Revision)
		require.Equal(t, "Renamed", got.Config.Title)
	default:
		t.Fatal("listener was not notified")
	}
}

func TestHolder_ReloadFailureKeepsCurrent(t *testing.T) {
	initial := movescriptConfig()
	src := &fakeSource{}
	src.set(site.Config{}, ErrMalformedPath)
	h := NewHolder(initial, src)
	rev := h.Revision()

	before := metrics.CounterValue(metrics.ConfigReloadTotal, metrics.ResultError)
	_, err := h.Reload(context.Background())
	require.ErrorIs(t, err, ErrMalformedPath)

	require.Equal(t, rev, h.Revision())
	require.True(t, Equal(initial, h.Get()))
	require.InDelta(t, before+1, metrics.CounterValue(metrics.ConfigReloadTotal, metrics.ResultError), 1e-9)
}

func TestHolder_ReloadUnchangedKeepsRevision(t *testing.T) {
	initial := movescriptConfig()
	h := NewHolder(initial, &fakeSource{cfg: initial})
	rev := h.Revision()

	ch := make(chan Update, 1)
	h.RegisterListener(ch)

	u, err := h.Reload(context.Background())
	require.NoError(t, err)
	require.Equal(t, rev, u.Revision)
	require.False(t, u.Changes.Changed())
	require.Empty(t, ch)
}

func TestHolder_GetReturnsCopy(t *testing.T) {
	h := NewHolder(movescriptConfig(), &fakeSource{})
	cfg := h.Get()
	cfg.Theme.Nav[0].Text = "mutated"
	cfg.Plugins[2].Options["color"] = "#000"

	require.Equal(t, "Movescript", h.Get().Theme.Nav[0].Text)
	require.Equal(t, "#de9502", h.Get().Plugins[2].Options["color"])
}

func TestHolder_FullListenerIsSkipped(t *testing.T) {
	src := &fakeSource{cfg: movescriptConfig()}
	h := NewHolder(movescriptConfig(), src)

	full := make(chan Update) // unbuffered, nobody reading
	h.RegisterListener(full)

	next := movescriptConfig()
	next.Base = "/other/"
	src.set(next, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = h.Reload(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Reload blocked on a full listener")
	}
	require.Equal(t, "/other/", h.Get().Base)
}

func TestHolder_ConcurrentReloadsCoalesce(t *testing.T) {
	src := &fakeSource{cfg: movescriptConfig(), release: make(chan struct{})}
	h := NewHolder(movescriptConfig(), src)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = h.Reload(context.Background())
		}()
	}

	require.Eventually(t, func() bool { return src.callCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	require.Equal(t, 1, src.callCount())
}

func TestHolder_WatcherDisabledWithoutPath(t *testing.T) {
	h := NewHolder(site.Config{}, &fakeSource{})
	require.NoError(t, h.StartWatcher(context.Background()))
	h.Wait()
}

func TestHolder_WatcherReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: first\n"), 0o600))

	loader := NewLoader(path, "test")
	initial, err := loader.Load()
	require.NoError(t, err)

	h := NewHolder(initial, loader, WithDebounce(20*time.Millisecond))
	ch := make(chan Update, 4)
	h.RegisterListener(ch)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, h.StartWatcher(ctx))

	// Plain write.
	require.NoError(t, os.WriteFile(path, []byte("title: second\n"), 0o600))
	require.Eventually(t, func() bool { return h.Get().Title == "second" }, 5*time.Second, 10*time.Millisecond)

	// Atomic replace through the Manager.
	next := h.Get()
	next.Title = "third"
	require.NoError(t, NewManager(path).Save(next))
	require.Eventually(t, func() bool { return h.Get().Title == "third" }, 5*time.Second, 10*time.Millisecond)

	// An invalid edit is rejected and the last good config stays.
	require.NoError(t, os.WriteFile(path, []byte("base: broken\n"), 0o600))
	time.Sleep(200 * time.Millisecond)
	require.Equal(t, "third", h.Get().Title)

	cancel()
	h.Wait()

	require.NotEmpty(t, ch)
}

func TestHolder_ReloadErrorWraps(t *testing.T) {
	sentinel := errors.New("boom")
	src := &fakeSource{}
	src.set(site.Config{}, sentinel)
	_, err := NewHolder(site.Config{}, src).Reload(context.Background())
	require.ErrorIs(t, err, sentinel)
}

func TestHolder_CoalescedCallersGetPrivateCopies(t *testing.T) {
	next := movescriptConfig()
	next.Title = "Changed"
	src := &fakeSource{cfg: next, release: make(chan struct{})}
	h := NewHolder(movescriptConfig(), src)

	results := make([]Update, 2)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			u, err := h.Reload(context.Background())
			if err == nil {
				results[i] = u
			}
		}()
	}

	require.Eventually(t, func() bool { return src.callCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	close(src.release)
	wg.Wait()

	require.Equal(t, "Changed", results[0].Config.Title)
	require.Equal(t, "Changed", results[1].Config.Title)

	results[0].Config.Plugins[2].Options["color"] = "#000"
	require.Equal(t, "#de9502", results[1].Config.Plugins[2].Options["color"])
	require.Equal(t, "#de9502", h.Get().Plugins[2].Options["color"])
}
