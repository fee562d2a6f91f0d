package storage

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chidupudi/ai-assistant/internal/config"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/media/")
	require.NoError(t, err)

	key, err := store.Upload(strings.NewReader("fake-jpeg-bytes"), "DSC_0001.jpg")
	require.NoError(t, err)
	assert.Equal(t, "DSC_0001.jpg", key)
	assert.Equal(t, "/media/DSC_0001.jpg", store.GetPublicURL(key))

	reader, err := store.Download(key)
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	reader.Close()
	require.NoError(t, err)
	assert.Equal(t, "fake-jpeg-bytes", string(data))

	require.NoError(t, store.Delete(key))
	_, err = store.Download(key)
	assert.Error(t, err)
}

func TestLocalStorageStripsPathTraversal(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "/media")
	require.NoError(t, err)

	key, err := store.UploadBytes([]byte("x"), "../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "passwd", key)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Provider = "weird"
	_, err := New(cfg)
	assert.Error(t, err)
}
