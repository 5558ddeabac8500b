package wordcount

import (
	"context"
	"path/filepath"

	"github.com/Scusemua/go-utils/config"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch calls onChange every time the file at the given path is written or re-created, until ctx is done.
//
// The parent directory is watched rather than the file itself, so that editors which save by renaming a
// temporary file over the original are still detected. Watch returns nil when ctx is done and returns the
// first error returned by onChange otherwise.
func Watch(ctx context.Context, path string, onChange func() error) error {
	log := config.GetLogger("Watch ")

	target := filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrapf(err, "failed to create file system watcher for file \"%s\"", target)
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "failed to add directory of file \"%s\" to file system watcher", target)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Debug("File \"%s\" changed (%s).", target, event.Op)

				if err = onChange(); err != nil {
					return err
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			log.Error("FileWatcher error: %v", err)
		}
	}
}
