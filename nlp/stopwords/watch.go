package stopwords

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/oarkflow/rake/nlp/logging"
)

const debounceDelay = 500 * time.Millisecond

// Watch reloads the stopword file at path whenever it changes and hands the
// fresh Index to onReload. A file that fails to load is logged and skipped,
// leaving the caller on its previous Index. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, onReload func(*Index), log *slog.Logger) error {
	if log == nil {
		log = logging.Discard()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create stopword watcher")
	}
	defer watcher.Close()

	// editors replace files on save, so watch the directory and filter by name
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, "resolve stopword path")
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(abs))
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.After(debounceDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("stopword watcher error", slog.String("err", err.Error()))
		case <-pending:
			pending = nil
			idx, err := LoadFile(abs)
			if err != nil {
				log.Error("stopword reload failed; keeping previous list",
					slog.String("file", abs), slog.String("err", err.Error()))
				continue
			}
			log.Info("stopwords reloaded", slog.String("file", abs), slog.Int("count", idx.Len()))
			onReload(idx)
		}
	}
}
