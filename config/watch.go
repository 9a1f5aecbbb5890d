package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the file at path whenever it changes and passes each valid
// configuration to fn. Invalid reloads are logged and skipped, so fn only ever
// sees good configurations. The directory is watched rather than the file so
// editors that replace the file on save keep working.
//
// Watch returns once the watcher is registered; reloads run on a separate
// goroutine until ctx is cancelled.
//
// Parameters:
//   - ctx: stops the watcher when done
//   - path: the TOML file to watch
//   - fn: called with each successfully reloaded configuration
//
// Returns:
//   - error: an error if the watcher could not be created
func Watch(ctx context.Context, path string, fn func(Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(abs)
				if err != nil {
					log.Printf("[Config] reload ignored: %v", err)
					continue
				}
				log.Printf("[Config] reloaded %s", abs)
				fn(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("[Config] watcher error: %v", err)
			}
		}
	}()
	return nil
}
