package stadium3d

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutWatcherReloads(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "stadium.yaml")

	require.NoError(t, SaveConfigFile(DefaultConfig(), path))

	lw, err := WatchLayoutFile(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	defer lw.Close()

	next := func() (Config, bool) {
		select {
		case cfg := <-lw.Changes():
			return cfg, true
		case <-time.After(5 * time.Second):
			return Config{}, false
		}
	}

	// A broken file isn't delivered.
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  sections:\n    - {name: x, start: 10, end: 5, role: connector}\n"), 0o644))

	// Once fixed, it is.
	cfg := DefaultConfig()
	cfg.Layout.Name = "edited"
	cfg.Layout.Seating.StepCount = 9
	require.NoError(t, SaveConfigFile(cfg, path))

	for {
		got, ok := next()
		require.True(t, ok, "no reload arrived")
		// Saving can take more than one write event; wait for the edited version.
		if got.Layout.Name == "edited" {
			assert.Equal(t, 9, got.Layout.Seating.StepCount)
			break
		}
	}

	require.NoError(t, lw.Close())
	require.NoError(t, lw.Close())

}

func TestLayoutWatcherIgnoresOtherFiles(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "stadium.toml")
	require.NoError(t, SaveConfigFile(DefaultConfig(), path))

	lw, err := WatchLayoutFile(path, nil)
	require.NoError(t, err)
	defer lw.Close()

	require.NoError(t, SaveConfigFile(DefaultConfig(), filepath.Join(dir, "other.toml")))

	select {
	case cfg := <-lw.Changes():
		t.Fatalf("unexpected reload of %q", cfg.Layout.Name)
	case <-time.After(300 * time.Millisecond):
	}

}

func TestLayoutWatcherCloseConcurrently(t *testing.T) {

	dir := t.TempDir()
	path := filepath.Join(dir, "stadium.toml")
	require.NoError(t, SaveConfigFile(DefaultConfig(), path))

	lw, err := WatchLayoutFile(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, lw.Close())
		}()
	}
	wg.Wait()

	// Ranging over Changes() ends once the watcher stops.
	drained := make(chan struct{})
	go func() {
		for range lw.Changes() {
		}
		close(drained)
	}()

	select {
	case <-drained:
	case <-time.After(5 * time.Second):
		t.Fatal("Changes() wasn't closed")
	}

}

func TestWatchLayoutFileErrors(t *testing.T) {

	_, err := WatchLayoutFile("stadium.json", nil)
	assert.ErrorIs(t, err, ErrConfigurationInvalid)

	_, err = WatchLayoutFile(filepath.Join(t.TempDir(), "missing", "stadium.toml"), nil)
	assert.Error(t, err)

}
