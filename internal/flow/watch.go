package flow

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces editor write bursts into one regeneration.
const debounceWindow = 300 * time.Millisecond

// Watch regenerates the doc pack whenever the requirements file changes.
// It runs one generation up front, then blocks until ctx is cancelled.
// Generation failures (including gate failures) are logged and watching
// continues; only watcher setup errors are returned.
func (g *Generator) Watch(ctx context.Context, opts GenerateOptions) error {
	opts.PrintOnly = false

	if _, err := g.Generate(opts); err != nil {
		g.log.Warn("initial generation failed", "error", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that write via
	// rename-replace would otherwise drop the watch after one save.
	target, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	g.log.Info("watching requirements file", "path", target)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceWindow)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			result, err := g.Generate(opts)
			if err != nil {
				g.log.Warn("regeneration failed", "error", err)
				continue
			}
			g.log.Info("regenerated", "root", result.Root, "files", result.Files)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.log.Warn("watch error", "error", err)
		}
	}
}
