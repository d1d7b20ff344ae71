package server

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/sungshincho/NEURALTWIN-INTEGRATED-sub001/pkg/directive"
)

// watch reloads the directive file whenever it is written or replaced and
// puts the result in the slot. The parent directory is watched since
// editors often save by rename.
func (s *Server) watch(ctx context.Context, path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return fmt.Errorf("watching %s: %w", path, err)
	}
	s.reload(path)

	go func() {
		defer w.Close()
		target := filepath.Clean(path)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					s.reload(path)
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("watcher error", "err", err)
			}
		}
	}()
	return nil
}

func (s *Server) reload(path string) {
	d, err := directive.Load(path)
	if err != nil {
		s.log.Warn("directive reload failed", "path", path, "err", err)
		return
	}
	replaced := s.slot.Put(*d)
	s.log.Info("directive file reloaded", "path", path, "replaced", replaced)
}
