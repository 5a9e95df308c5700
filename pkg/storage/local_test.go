package storage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "uploads", zap.NewNop())
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "photo.jpg", bytes.NewReader([]byte("jpeg-bytes")))
	require.NoError(t, err)

	// URL is the static route prefix plus the generated name
	require.True(t, strings.HasPrefix(url, "/uploads/"), "got %q", url)

	name := strings.TrimPrefix(url, "/uploads/")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+\.jpg$`), name)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
}

func TestLocalStorage_Save_KeepsExtensionOnly(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "uploads", zap.NewNop())
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "my vacation photo.PNG", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	assert.NotContains(t, url, "vacation", "original name must not leak into the stored name")
	assert.True(t, strings.HasSuffix(url, ".PNG"))
}

func TestLocalStorage_Save_NoExtension(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "uploads", zap.NewNop())
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "blob", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	name := strings.TrimPrefix(url, "/uploads/")
	assert.Regexp(t, regexp.MustCompile(`^\d+-\d+$`), name)
}

func TestLocalStorage_Save_DistinctNames(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "uploads", zap.NewNop())
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		url, err := store.Save(context.Background(), "a.jpg", bytes.NewReader([]byte("x")))
		require.NoError(t, err)
		_, dup := seen[url]
		require.False(t, dup, "generated name collided: %s", url)
		seen[url] = struct{}{}
	}
}

func TestNewLocalStorage_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStorage(dir, "uploads", zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
