package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"creature-forge/internal/rarity"
)

// WeightsWatcher re-reads a weights file whenever it changes and passes the
// new table to onReload. A file that fails to load is logged and skipped, so
// the previous table stays in effect.
type WeightsWatcher struct {
	path     string
	base     rarity.Table
	window   time.Duration
	onReload func(rarity.Table)

	fs     *fsnotify.Watcher
	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWeightsWatcher watches the directory holding path, since editors often
// replace a file rather than write it in place.
func NewWeightsWatcher(path string, base rarity.Table, window time.Duration, onReload func(rarity.Table)) (*WeightsWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &WeightsWatcher{
		path:     path,
		base:     base,
		window:   window,
		onReload: onReload,
		fs:       fw,
		done:     make(chan struct{}),
	}, nil
}

// Start processes events until ctx is cancelled or Close is called.
func (w *WeightsWatcher) Start(ctx context.Context) {
	ctx, w.cancel = context.WithCancel(ctx)
	go w.run(ctx)
}

func (w *WeightsWatcher) run(ctx context.Context) {
	defer close(w.done)
	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != name {
				continue
			}
			if ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write) || ev.Has(fsnotify.Rename) {
				w.schedule()
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: weights watcher: %v", err)
		}
	}
}

func (w *WeightsWatcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.window, w.reload)
}

func (w *WeightsWatcher) reload() {
	table, err := LoadWeights(w.path, w.base)
	if err != nil {
		log.Printf("Warning: keeping previous weights: %v", err)
		return
	}
	w.onReload(table)
}

// Close stops the watcher and waits for the event loop to exit.
func (w *WeightsWatcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()
	if w.cancel != nil {
		w.cancel()
		<-w.done
	}
	return w.fs.Close()
}
