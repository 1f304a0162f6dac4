package stadium3d

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// LayoutWatcher reloads a layout file whenever it changes on disk. Every version of the file that loads and validates
// is delivered on Changes(); broken versions are logged and skipped, so the last good Config stays in use.
type LayoutWatcher struct {
	Path   string
	Logger *slog.Logger

	watcher *fsnotify.Watcher
	changes chan Config
	done    chan struct{}
	closing sync.Once
	err     error
}

// WatchLayoutFile starts watching the given layout file. The file's directory is watched rather than the file itself,
// since many editors save by replacing the file.
func WatchLayoutFile(path string, logger *slog.Logger) (*LayoutWatcher, error) {

	if logger == nil {
		logger = slog.Default()
	}

	if _, err := ConfigFormatOf(path); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	lw := &LayoutWatcher{
		Path:    filepath.Clean(path),
		Logger:  logger,
		watcher: watcher,
		changes: make(chan Config, 1),
		done:    make(chan struct{}),
	}

	go lw.watch()

	return lw, nil

}

// Changes returns the channel reloaded Configs arrive on. Only the newest pending Config is kept; a reader that falls
// behind skips straight to it. The channel is closed once the LayoutWatcher stops.
func (lw *LayoutWatcher) Changes() <-chan Config {
	return lw.changes
}

// Close stops watching. It's safe to call more than once, and from more than one goroutine.
func (lw *LayoutWatcher) Close() error {
	lw.closing.Do(func() {
		close(lw.done)
		lw.err = lw.watcher.Close()
	})
	return lw.err
}

func (lw *LayoutWatcher) watch() {

	defer close(lw.changes)

	for {

		select {

		case <-lw.done:
			return

		case event, ok := <-lw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != lw.Path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			lw.reload()

		case err, ok := <-lw.watcher.Errors:
			if !ok {
				return
			}
			lw.Logger.Warn("layout watcher", "file", lw.Path, "err", err)

		}

	}

}

func (lw *LayoutWatcher) reload() {

	cfg, err := LoadConfigFile(lw.Path)
	if err != nil {
		lw.Logger.Warn("layout reload skipped", "file", lw.Path, "err", err)
		return
	}

	// Drop whatever's still pending in favor of the newer Config.
	select {
	case <-lw.changes:
	default:
	}

	select {
	case lw.changes <- cfg:
		lw.Logger.Info("layout reloaded", "file", lw.Path, "sections", len(cfg.Layout.Sections))
	case <-lw.done:
	}

}
