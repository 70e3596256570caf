package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces bursts of file events (editors often write twice).
const DefaultDebounce = 150 * time.Millisecond

// Watch reloads the site in dir whenever something under it changes and hands
// the result to onReload. It blocks until ctx is done.
func Watch(ctx context.Context, dir string, debounce time.Duration, log *zap.Logger, onReload func(*Site, error)) error {
	if log == nil {
		log = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	log.Debug("watching content", zap.String("dir", dir))

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					_ = fsw.Add(ev.Name)
				}
			}
			log.Debug("content changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)
			fire = timer.C
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Warn("content watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			site, err := Load(os.DirFS(dir))
			if err != nil {
				log.Warn("content reload failed", zap.Error(err))
			}
			onReload(site, err)
		}
	}
}
