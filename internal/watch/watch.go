// Package watch reruns a callback when watched files change.
package watch

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
	"github.com/viiv-themes/viiv/internal/fsys"
	"github.com/viiv-themes/viiv/internal/log"
)

const DefaultDelay = 300 * time.Millisecond

// debouncer collects paths and flushes them once no new path arrived for
// delay.
type debouncer struct {
	delay time.Duration
	flush func(paths []string)

	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	closed  bool
}

func newDebouncer(delay time.Duration, flush func(paths []string)) *debouncer {
	return &debouncer{delay: delay, flush: flush, pending: make(map[string]struct{})}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.pending[path] = struct{}{}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	d.mu.Lock()
	if d.closed || len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}
	paths := lo.Keys(d.pending)
	d.pending = make(map[string]struct{})
	d.mu.Unlock()

	sort.Strings(paths)
	d.flush(paths)
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
	}
}

// Watcher watches a fixed set of files. The parent directories are watched so
// editors that replace files on save are seen too.
type Watcher struct {
	paths   []string
	outputs []string
	delay   time.Duration

	snapshotMutex sync.Mutex
	snapshot      map[string][]byte
}

func New(delay time.Duration, paths ...string) *Watcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	cleaned := lo.Uniq(lo.Map(paths, func(p string, _ int) string { return absPath(p) }))
	w := &Watcher{paths: cleaned, delay: delay, snapshot: make(map[string][]byte)}
	w.Refresh()
	return w
}

func (w *Watcher) Paths() []string { return w.paths }

// Produces marks watched files the callback writes itself. Their snapshot is
// refreshed after each callback so those writes are not reported. Every other
// file keeps the snapshot taken before the callback, and an edit made while
// the callback runs is reported on the next event.
func (w *Watcher) Produces(paths ...string) {
	for _, p := range paths {
		if p = absPath(p); w.watched(p) && !lo.Contains(w.outputs, p) {
			w.outputs = append(w.outputs, p)
		}
	}
}

// Refresh records the current contents of the given watched files, or of all
// of them when no path is given.
func (w *Watcher) Refresh(paths ...string) {
	w.snapshotMutex.Lock()
	defer w.snapshotMutex.Unlock()

	if len(paths) == 0 {
		paths = w.paths
	}
	for _, p := range paths {
		p = absPath(p)
		data, err := fsys.API().ReadFile(p)
		if err != nil {
			delete(w.snapshot, p)
			continue
		}
		w.snapshot[p] = data
	}
}

// changed keeps the paths whose contents differ from the snapshot and
// updates the snapshot for them.
func (w *Watcher) changed(paths []string) []string {
	w.snapshotMutex.Lock()
	defer w.snapshotMutex.Unlock()

	var out []string
	for _, p := range paths {
		data, err := fsys.API().ReadFile(p)
		if err != nil {
			if _, ok := w.snapshot[p]; ok {
				delete(w.snapshot, p)
				out = append(out, p)
			}
			continue
		}
		if prev, ok := w.snapshot[p]; ok && bytes.Equal(prev, data) {
			continue
		}
		w.snapshot[p] = data
		out = append(out, p)
	}
	return out
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}

func (w *Watcher) watched(name string) bool {
	return lo.Contains(w.paths, absPath(name))
}

func (w *Watcher) handle(paths []string, onChange func(paths []string)) {
	changed := w.changed(paths)
	if len(changed) == 0 {
		return
	}
	log.Infof("Changed: %v", changed)
	onChange(changed)
	if len(w.outputs) > 0 {
		w.Refresh(w.outputs...)
	}
}

// Run calls onChange with the changed files until ctx is done. Calls are
// serialized.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dirs := lo.Uniq(lo.Map(w.paths, func(p string, _ int) string { return filepath.Dir(p) }))
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		log.Debugf("Watching %s", dir)
	}

	var runMutex sync.Mutex
	deb := newDebouncer(w.delay, func(paths []string) {
		runMutex.Lock()
		defer runMutex.Unlock()
		w.handle(paths, onChange)
	})
	defer deb.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op == fsnotify.Chmod || !w.watched(event.Name) {
				continue
			}
			log.Debug("File event", "path", event.Name, "op", event.Op.String())
			deb.trigger(absPath(event.Name))
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warnf("Watcher error: %v", err)
		}
	}
}
