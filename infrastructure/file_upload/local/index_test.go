package local

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveKeepsOnlyExtension(t *testing.T) {
	store, err := NewDiskStore(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "../../etc/aadhaar front.PNG", strings.NewReader("image bytes"))
	require.NoError(t, err)

	assert.Equal(t, store.Dir, filepath.Dir(path))
	assert.Equal(t, ".PNG", filepath.Ext(path))
	assert.NotContains(t, filepath.Base(path), "aadhaar")
	assert.Len(t, strings.TrimSuffix(filepath.Base(path), ".PNG"), 26)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "image bytes", string(content))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]struct{}{}
	for i := 0; i < 20; i++ {
		path, err := store.Save(context.Background(), "selfie.jpg", strings.NewReader("x"))
		require.NoError(t, err)
		seen[path] = struct{}{}
	}
	assert.Len(t, seen, 20)
}

func TestSaveRecreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	path, err := store.Save(context.Background(), "clip", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "", filepath.Ext(path))
}

func TestDelete(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(context.Background(), "bill.webp", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(path))
}
