package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("title: a\n"), 0o644))

	w, err := New(path, 50*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	// Writes to other files in the directory are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	select {
	case <-w.Changes():
		t.Fatal("change reported for an unrelated file")
	case <-time.After(150 * time.Millisecond):
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("title: b\n"), 0o644))
	}
	select {
	case <-w.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported after writing the deck")
	}

	// The burst collapses into a single signal.
	select {
	case <-w.Changes():
		t.Fatal("burst of writes produced more than one signal")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	w, err := New(path, 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultDebounce, w.debounce)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope", "deck.yaml"), 0)
	assert.Error(t, err)
}
