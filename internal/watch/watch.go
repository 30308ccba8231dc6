// Package watch re-runs an operation whenever its input file changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
)

// Options controls change detection.
type Options struct {
	// SettleDelay is how long to wait after the last event before running,
	// and the delay between attempts to find the file again.
	SettleDelay time.Duration
	// SettleAttempts bounds the checks for a file that editors replace by
	// delete-and-rename.
	SettleAttempts uint
	Logger         *slog.Logger
}

// RunFunc is one execution of the watched operation.
type RunFunc func(ctx context.Context) error

// Run calls fn once, then again after every change to path until ctx is
// done. An error from the first call is returned; later errors are logged
// and watching continues. Run returns nil when ctx is canceled.
func Run(ctx context.Context, path string, opts Options, fn RunFunc) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.SettleAttempts == 0 {
		opts.SettleAttempts = 1
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: resolve %s: %w", path, err)
	}

	if err := fn(ctx); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory so replace-by-rename saves are still seen.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: add %s: %w", filepath.Dir(target), err)
	}
	logger.Info("watching for changes", "path", target)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", "path", target, "op", ev.Op.String())
			pending = time.After(opts.SettleDelay)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-pending:
			pending = nil
			if err := settle(ctx, target, opts); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Warn("input did not settle", "path", target, "error", err)
				continue
			}
			if err := fn(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				logger.Error("watched run failed", "path", target, "error", err)
			}
		}
	}
}

// settle waits until path exists again after a change.
func settle(ctx context.Context, path string, opts Options) error {
	return retry.Do(
		func() error {
			_, err := os.Stat(path)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(opts.SettleAttempts),
		retry.Delay(opts.SettleDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
}
