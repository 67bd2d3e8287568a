package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aiseeds25/Smartreceiptscannercategorizer/constants"
)

// WatchConfig configures directory watching.
type WatchConfig struct {
	// Root is the single directory to watch. The input contract is flat,
	// so subdirectories are not followed.
	Root string
	// Debounce coalesces the event bursts editors and scanners produce
	// when materializing a file. Zero emits immediately.
	Debounce time.Duration
	// InitialScan emits files already present in Root before watching.
	InitialScan bool
}

// StartWatcher emits the paths of receipt files appearing under cfg.Root
// until ctx is done. Both returned channels close on shutdown. Paths are
// filtered by the recognized extension set; event bursts for one path
// collapse into a single emission per debounce window.
func StartWatcher(ctx context.Context, cfg WatchConfig, logger *slog.Logger) (<-chan string, <-chan error, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Add(cfg.Root); err != nil {
		_ = w.Close()
		return nil, nil, fmt.Errorf("watch %s: %w", cfg.Root, err)
	}

	evCh := make(chan string, 64)
	errCh := make(chan error, 8)

	go func() {
		defer close(evCh)
		defer close(errCh)
		defer func() { _ = w.Close() }()

		if cfg.InitialScan {
			files, _, err := ListDir(cfg.Root)
			if err != nil {
				logger.Warn("initial scan failed", "root", cfg.Root, "error", err)
			}
			for _, f := range files {
				select {
				case evCh <- f.Path:
				case <-ctx.Done():
					return
				}
			}
		}

		// pending is only touched from this goroutine; the debounce
		// timer signals the loop instead of flushing directly.
		pending := map[string]struct{}{}
		var timer *time.Timer
		var timerC <-chan time.Time

		sendPending := func() {
			for p := range pending {
				select {
				case evCh <- p:
				default:
					logger.Warn("dropping watch event, consumer too slow", "path", p)
				}
				delete(pending, p)
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-timerC:
				timerC = nil
				sendPending()
			case e, ok := <-w.Events:
				if !ok {
					return
				}
				if !constants.IsAllowedExt(filepath.Ext(e.Name)) {
					continue
				}
				if e.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
					continue
				}
				pending[e.Name] = struct{}{}
				if cfg.Debounce > 0 {
					if timer == nil {
						timer = time.NewTimer(cfg.Debounce)
					} else {
						if !timer.Stop() {
							select {
							case <-timer.C:
							default:
							}
						}
						timer.Reset(cfg.Debounce)
					}
					timerC = timer.C
				} else {
					sendPending()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Error("watcher error", "error", err)
				select {
				case errCh <- err:
				default:
				}
			}
		}
	}()

	return evCh, errCh, nil
}
