package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalImageStoreSaveAndDelete(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/static/images/products")

	url, err := store.Save(strings.NewReader("fake image bytes"), "zimnyaya", "sapogi", "sapogi-nordic", "photo.PNG")
	require.NoError(t, err)
	assert.Equal(t, "/static/images/products/zimnyaya/sapogi/sapogi-nordic.png", url)
	assert.True(t, store.Exists(url))

	require.NoError(t, store.Delete(url))
	assert.False(t, store.Exists(url))

	// deleting again is not an error
	assert.NoError(t, store.Delete(url))
}

func TestLocalImageStoreUnknownExtensionFallsBackToJPG(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/static/images/products")

	url, err := store.Save(strings.NewReader("x"), "cat", "sub", "prod", "upload.exe")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "/prod.jpg"))
}

func TestLocalImageStoreSaveOverwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalImageStore(dir, "/static/images/products")

	_, err := store.Save(strings.NewReader("first"), "cat", "sub", "prod", "a.jpg")
	require.NoError(t, err)
	_, err = store.Save(strings.NewReader("second"), "cat", "sub", "prod", "a.jpg")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "cat", "sub", "prod.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestLocalImageStoreIgnoresForeignURLs(t *testing.T) {
	store := NewLocalImageStore(t.TempDir(), "/static/images/products")

	assert.False(t, store.Exists("https://cdn.example.com/photo.jpg"))
	assert.NoError(t, store.Delete("https://cdn.example.com/photo.jpg"))
	assert.False(t, store.Exists(""))
}
