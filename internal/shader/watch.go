package shader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reports changes to the files of specs inside dir. The returned
// channel carries bare file names and is closed when ctx ends or the
// watcher fails.
func Watch(ctx context.Context, dir string, specs ...Spec) (<-chan string, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	wanted := make(map[string]bool)
	for _, s := range specs {
		for _, f := range s.Files() {
			wanted[f] = true
		}
	}

	out := make(chan string, 8)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !changed(ev) {
					continue
				}
				name := filepath.Base(ev.Name)
				if !wanted[name] {
					continue
				}
				select {
				case out <- name:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("shader watcher: %v", err)
			}
		}
	}()
	return out, nil
}

// changed reports whether ev can alter a file's contents. Editors that save
// by renaming show up as Create.
func changed(ev fsnotify.Event) bool {
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)
}
