package ingest

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
)

// WatchConfig controls the drop-folder watcher.
type WatchConfig struct {
	Root        string
	InitialScan bool
	// Debounce coalesces write/rename bursts from exporters that stream
	// files in chunks.
	Debounce time.Duration
}

// Watcher feeds files appearing under the configured root into the ingestor.
type Watcher struct {
	cfg      WatchConfig
	ingestor *FSIngestor
	logger   *slog.Logger
}

func NewWatcher(cfg WatchConfig, ingestor *FSIngestor, logger *slog.Logger) (*Watcher, error) {
	if cfg.Root == "" {
		return nil, errors.New("watch root is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{cfg: cfg, ingestor: ingestor, logger: logger}, nil
}

// Run blocks until ctx is cancelled, ingesting each settled file for the
// given merchant. New subdirectories are picked up as they appear.
func (w *Watcher) Run(ctx context.Context, merchantID uuid.UUID) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func(fsw *fsnotify.Watcher) {
		if err := fsw.Close(); err != nil {
			w.logger.Warn("failed to close watcher", "error", err)
		}
	}(fsw)

	// watch root and all existing subdirectories
	err = filepath.WalkDir(w.cfg.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if w.cfg.InitialScan {
		if _, stats, err := w.ingestor.IngestDirectory(ctx, merchantID, w.cfg.Root, true); err != nil {
			w.logger.Error("initial scan failed", "root", w.cfg.Root, "error", err)
		} else {
			w.logger.Info("initial scan complete",
				"root", w.cfg.Root,
				"matched", stats.Matched,
				"succeeded", stats.Succeeded,
				"deduplicated", stats.Deduplicated,
				"failed", stats.Failed)
		}
	}

	var timer *time.Timer
	pending := map[string]struct{}{}
	flush := make(chan struct{}, 1)

	drain := func() {
		for path := range pending {
			delete(pending, path)
			if _, err := w.ingestor.IngestPath(ctx, merchantID, path); err != nil {
				w.logger.Error("failed to ingest dropped file", "path", path, "error", err)
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-flush:
			drain()
		case e, open := <-fsw.Events:
			if !open {
				return nil
			}
			if e.Op.Has(fsnotify.Create) {
				// a new directory needs its own watch; Add on a plain
				// file is harmless
				if err := fsw.Add(e.Name); err != nil {
					w.logger.Warn("failed to watch new path", "path", e.Name, "error", err)
				}
			}
			if _, ok := contentTypeFor(e.Name); !ok || isHidden(e.Name) {
				continue
			}
			if e.Op.Has(fsnotify.Create) || e.Op.Has(fsnotify.Write) || e.Op.Has(fsnotify.Rename) {
				pending[e.Name] = struct{}{}
				if w.cfg.Debounce > 0 {
					if timer != nil {
						timer.Stop()
					}
					timer = time.AfterFunc(w.cfg.Debounce, func() {
						select {
						case flush <- struct{}{}:
						default:
						}
					})
				} else {
					drain()
				}
			}
		case err, open := <-fsw.Errors:
			if !open {
				return nil
			}
			w.logger.Error("watcher error", "root", w.cfg.Root, "error", err)
		}
	}
}
