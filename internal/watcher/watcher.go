// Package watcher keeps the database in sync with a registration CSV file.
// It watches the file with fsnotify and, after a short debounce, re-ingests
// it and rebuilds the derived analytics tables. Reload failures are logged
// and do not stop the watcher; the next change triggers another attempt.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/blackwell-systems/vahanalytics/internal/store"
	"github.com/blackwell-systems/vahanalytics/internal/vahan"
)

// debounceWindow coalesces the burst of fsnotify events that a single file
// save typically produces into one reload.
const debounceWindow = 2 * time.Second

// Watcher re-ingests a CSV file into the store whenever it changes.
type Watcher struct {
	store  *store.Store
	path   string // absolute, cleaned path of the watched CSV
	logger *slog.Logger

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Watcher for the given CSV path. The store must be open and
// initialized; the file itself does not need to exist yet (creation is an
// event like any other).
func New(st *store.Store, csvPath string, logger *slog.Logger) (*Watcher, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", csvPath, err)
	}
	return &Watcher{
		store:  st,
		path:   filepath.Clean(abs),
		logger: logger,
		stopCh: make(chan struct{}),
	}, nil
}

// Start performs an initial load (if the file exists) and begins watching
// for changes. The parent directory is watched rather than the file so
// that editors which replace the file on save keep triggering events.
func (w *Watcher) Start() error {
	if err := w.Reload(); err != nil {
		w.logger.Warn("initial load failed", "path", w.path, "error", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	w.wg.Add(1)
	go w.run()

	w.logger.Info("watching for changes", "path", w.path)
	return nil
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.wg.Wait()
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) run() {
	defer w.wg.Done()

	debounce := time.NewTimer(debounceWindow)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if pending {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
			}
			debounce.Reset(debounceWindow)
			pending = true

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false
			if err := w.Reload(); err != nil {
				w.logger.Error("reload failed", "path", w.path, "error", err)
			}

		case <-w.stopCh:
			return
		}
	}
}

// Reload reads the CSV, replaces the registration data, and rebuilds both
// derived tables.
func (w *Watcher) Reload() error {
	records, err := vahan.ReadCSV(w.path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", w.path, err)
	}
	if err := w.store.ReplaceRecords(records); err != nil {
		return fmt.Errorf("failed to store records: %w", err)
	}
	if err := w.store.RecomputeGrowthMetrics(); err != nil {
		return err
	}
	if err := w.store.RecomputeMarketShare(); err != nil {
		return err
	}
	w.logger.Info("data reloaded", "records", len(records))
	return nil
}
