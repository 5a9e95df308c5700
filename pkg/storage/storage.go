package storage

import (
	"context"
	"io"
)

// Storage persists uploaded files and hands back a URL clients can fetch
// them from.
type Storage interface {
	// Save writes the file contents and returns the public URL for it.
	// originalName is only used for its extension.
	Save(ctx context.Context, originalName string, data io.Reader) (string, error)
}
