// Package filestorage keeps uploaded files on the local filesystem under a
// root directory. Stored paths are slash-separated and relative to the root.
package filestorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPathOutsideRoot = errors.New("path escapes the storage root")

type LocalStorage struct {
	root string
}

// NewLocalStorage creates root when it does not exist yet.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if root == "" {
		return nil, errs.NewValueIsRequiredError("storage root")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errs.NewStorageError("init", root, err)
	}
	return &LocalStorage{root: root}, nil
}

// Save writes the upload under folder with a random name that keeps the
// original extension, and returns "folder/name.ext".
func (s *LocalStorage) Save(ctx context.Context, file ports.Upload, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errs.NewStorageError("save", folder, err)
	}
	if file.Content == nil {
		return "", errs.NewStorageError("save", folder, errors.New("upload has no content"))
	}

	rel := path.Join(folder, uuid.NewString()+extension(file))
	target, err := s.resolve(rel)
	if err != nil {
		return "", errs.NewStorageError("save", rel, err)
	}

	if err = os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errs.NewStorageError("save", rel, err)
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errs.NewStorageError("save", rel, err)
	}
	if _, err = io.Copy(out, file.Content); err != nil {
		_ = out.Close()
		_ = os.Remove(target)
		return "", errs.NewStorageError("save", rel, err)
	}
	if err = out.Close(); err != nil {
		_ = os.Remove(target)
		return "", errs.NewStorageError("save", rel, err)
	}

	return rel, nil
}

// Delete removes the file at p. A file that is already gone is not an error.
func (s *LocalStorage) Delete(ctx context.Context, p string) error {
	if err := ctx.Err(); err != nil {
		return errs.NewStorageError("delete", p, err)
	}
	target, err := s.resolve(p)
	if err != nil {
		return errs.NewStorageError("delete", p, err)
	}
	if err = os.Remove(target); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errs.NewStorageError("delete", p, err)
	}
	return nil
}

// Open returns the stored file for download.
func (s *LocalStorage) Open(p string) (*os.File, error) {
	target, err := s.resolve(p)
	if err != nil {
		return nil, errs.NewStorageError("open", p, err)
	}
	f, err := os.Open(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("file", p, err)
		}
		return nil, errs.NewStorageError("open", p, err)
	}
	return f, nil
}

func (s *LocalStorage) resolve(p string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(p, "\\", "/"))
	if clean == "/" || strings.Contains(p, "..") {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideRoot, p)
	}
	return filepath.Join(s.root, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}

func extension(file ports.Upload) string {
	if ext := strings.ToLower(path.Ext(file.Name)); ext != "" && len(ext) <= 6 {
		return ext
	}
	if exts, err := mime.ExtensionsByType(file.ContentType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return ""
}
