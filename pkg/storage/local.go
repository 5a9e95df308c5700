package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// LocalStorage writes uploads to a directory on disk and serves them under
// a URL prefix handled by the static file route.
type LocalStorage struct {
	dir       string
	urlPrefix string
	log       *zap.Logger
}

func NewLocalStorage(dir, urlPrefix string, log *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}

	return &LocalStorage{
		dir:       dir,
		urlPrefix: urlPrefix,
		log:       log.With(zap.String("storage", "local")),
	}, nil
}

// Save stores the file under a generated name and returns its URL.
// Generated name: <unix-ms>-<random>.<original extension>, so concurrent
// uploads never collide on disk.
func (s *LocalStorage) Save(ctx context.Context, originalName string, data io.Reader) (string, error) {
	name := generateFilename(originalName)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		s.log.Error("Failed to create upload file", zap.Error(err), zap.String("path", dst))
		return "", fmt.Errorf("create upload file %s: %w", name, err)
	}
	defer f.Close()

	written, err := io.Copy(f, data)
	if err != nil {
		os.Remove(dst)
		s.log.Error("Failed to write upload file", zap.Error(err), zap.String("path", dst))
		return "", fmt.Errorf("write upload file %s: %w", name, err)
	}

	s.log.Info("Upload stored",
		zap.String("file", name),
		zap.Int64("bytes", written),
	)

	return path.Join("/", s.urlPrefix, name), nil
}

func generateFilename(originalName string) string {
	millis := time.Now().UnixMilli()
	suffix := rand.Int63n(1e9)
	return fmt.Sprintf("%d-%d%s", millis, suffix, filepath.Ext(originalName))
}
