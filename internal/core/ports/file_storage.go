package ports

import (
	"context"
	"io"
)

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStorage stores uploaded files under a folder and returns their path.
// Failures are reported as *errs.StorageError.
type FileStorage interface {
	Save(ctx context.Context, file Upload, folder string) (string, error)
	Delete(ctx context.Context, path string) error
}
