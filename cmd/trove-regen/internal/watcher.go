package internal

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches individual files for changes. It watches each
// file's parent directory so that editors and atomic writers that
// replace the file by rename keep triggering events.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	files    map[string]struct{}
}

type WatchEvent struct {
	Reason string
	Paths  []string
}

func NewFileWatcher(paths []string, debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	files := make(map[string]struct{}, len(paths))
	for _, path := range paths {
		files[filepath.Clean(path)] = struct{}{}
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		files:    files,
	}, nil
}

func (fw *FileWatcher) Start(ctx context.Context) (<-chan WatchEvent, <-chan error, error) {
	eventCh := make(chan WatchEvent, 10)
	errorCh := make(chan error, 10)

	dirs := make(map[string]struct{})
	for file := range fw.files {
		dirs[filepath.Dir(file)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.watcher.Add(dir); err != nil {
			return nil, nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	go fw.watchLoop(ctx, eventCh, errorCh)

	return eventCh, errorCh, nil
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) Paths() []string {
	paths := make([]string, 0, len(fw.files))
	for file := range fw.files {
		paths = append(paths, file)
	}
	sort.Strings(paths)
	return paths
}

func (fw *FileWatcher) watchLoop(ctx context.Context, eventCh chan<- WatchEvent, errorCh chan<- error) {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]struct{})
	)

	resetTimer := func() {
		if timer == nil {
			timer = time.NewTimer(fw.debounce)
			timerC = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(fw.debounce)
		timerC = timer.C
	}

	flush := func() {
		if len(pending) == 0 {
			return
		}
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		clear(pending)

		select {
		case eventCh <- WatchEvent{Reason: "file change", Paths: paths}:
		default:
		}
	}

	for {
		select {
		case <-ctx.Done():
			return

		case ev := <-fw.watcher.Events:
			if ev.Op&fsnotify.Chmod == fsnotify.Chmod {
				continue
			}
			if _, ok := fw.files[filepath.Clean(ev.Name)]; !ok {
				continue
			}
			pending[filepath.Clean(ev.Name)] = struct{}{}
			resetTimer()

		case <-timerC:
			timerC = nil
			flush()

		case err := <-fw.watcher.Errors:
			select {
			case errorCh <- fmt.Errorf("watch error: %w", err):
			default:
			}
		}
	}
}
