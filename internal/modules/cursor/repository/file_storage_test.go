package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutPriorState(t *testing.T) {
	store, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	id, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "", id)
}

func TestSaveAndLoad(t *testing.T) {
	store, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("entry-42"))

	id, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "entry-42", id)
}

func TestSaveOverwrites(t *testing.T) {
	store, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Save("old"))
	require.NoError(t, store.Save("new"))

	id, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "new", id)
}

func TestCursorSurvivesRestart(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStorage(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("entry-7"))

	// A fresh store over the same directory sees the persisted cursor.
	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)

	id, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "entry-7", id)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "last_entry_id.txt"), []byte("entry-9\n"), 0644))

	store, err := NewFileStorage(dir)
	require.NoError(t, err)

	id, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "entry-9", id)
}
