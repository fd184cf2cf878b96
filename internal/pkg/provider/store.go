package provider

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultReloadDebounce = 500 * time.Millisecond

// Store holds a Table that can be replaced while lookups are in flight.
type Store struct {
	table atomic.Pointer[Table]
}

func NewStore(table *Table) *Store {
	if table == nil {
		table = Default()
	}
	s := new(Store)
	s.table.Store(table)
	return s
}

func (s *Store) Table() *Table {
	return s.table.Load()
}

func (s *Store) Swap(table *Table) {
	s.table.Store(table)
}

func (s *Store) LookupByMccMnc(mcc, mnc string) (Record, bool) {
	return s.Table().LookupByMccMnc(mcc, mnc)
}

func (s *Store) LookupByMcc(mcc string) (Record, bool) {
	return s.Table().LookupByMcc(mcc)
}

func (s *Store) Len() int {
	return s.Table().Len()
}

// Watch reloads the dataset at path whenever it changes, until ctx is done.
// A file that fails to load leaves the current table in place.
func (s *Store) Watch(ctx context.Context, path string) error {
	return s.watch(ctx, path, defaultReloadDebounce)
}

func (s *Store) watch(ctx context.Context, path string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files by rename, so watch the directory.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	name := filepath.Clean(path)

	var timer *time.Timer
	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			reload = timer.C
		case <-reload:
			timer, reload = nil, nil
			table, err := LoadFile(path)
			if err != nil {
				slog.Warn("failed to reload network providers", "path", path, "error", err)
				continue
			}
			s.Swap(table)
			slog.Info("network providers reloaded", "path", path, "count", table.Len())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("network provider watcher error", "path", path, "error", err)
		}
	}
}
