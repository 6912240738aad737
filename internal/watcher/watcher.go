package watcher

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay lets editors finish writing before a reload
const debounceDelay = 100 * time.Millisecond

// FileWatcher reports changes to a single file
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
}

// FileChangedMsg signals that the watched file was written or replaced
type FileChangedMsg struct {
	Path string
}

// NewWatcher creates a watcher for path. The parent directory is watched so
// files replaced by rename are still seen.
func NewWatcher(path string) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	return &FileWatcher{watcher: w, path: abs}, nil
}

// Path returns the absolute path being watched
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Start waits for the next change and returns it as a bubbletea message.
// It must be re-issued after each FileChangedMsg.
func (fw *FileWatcher) Start(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return fw.next(ctx)
	}
}

func (fw *FileWatcher) next(ctx context.Context) tea.Msg {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if !fw.relevant(event) {
				continue
			}

			// Simple debounce - wait briefly then return
			time.Sleep(debounceDelay)
			return FileChangedMsg{Path: fw.path}

		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			// Keep watching; a transient error does not end the session
		}
	}
}

// relevant reports whether event writes or creates the watched file
func (fw *FileWatcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == fw.path
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	if fw.watcher != nil {
		return fw.watcher.Close()
	}
	return nil
}
