package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversations.json")

	fw, err := NewWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	assert.True(t, fw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Write}))
	assert.True(t, fw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Create}))
	assert.False(t, fw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Remove}))
	assert.False(t, fw.relevant(fsnotify.Event{Name: path, Op: fsnotify.Chmod}))
	assert.False(t, fw.relevant(fsnotify.Event{Name: filepath.Join(dir, "other.json"), Op: fsnotify.Write}))
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing", "conversations.json"))
	require.Error(t, err)
}

func TestStart_ReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conversations.json")
	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0644))

	fw, err := NewWatcher(path)
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msgs := make(chan any, 1)
	go func() { msgs <- fw.Start(ctx)() }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"new"}]`), 0644))

	select {
	case msg := <-msgs:
		assert.Equal(t, FileChangedMsg{Path: fw.Path()}, msg)
	case <-ctx.Done():
		t.Fatal("timed out waiting for change")
	}
}

func TestStart_Cancelled(t *testing.T) {
	fw, err := NewWatcher(filepath.Join(t.TempDir(), "conversations.json"))
	require.NoError(t, err)
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Nil(t, fw.Start(ctx)())
}
