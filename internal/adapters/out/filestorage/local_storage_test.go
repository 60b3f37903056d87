package filestorage_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"flowerorder/internal/adapters/out/filestorage"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveThenDelete(t *testing.T) {
	root := t.TempDir()
	storage, err := filestorage.NewLocalStorage(root)
	require.NoError(t, err)

	p, err := storage.Save(t.Context(), ports.Upload{
		Name:        "Bouquet.PNG",
		ContentType: "image/png",
		Size:        5,
		Content:     strings.NewReader("hello"),
	}, "orders/products")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "orders/products/"))
	assert.True(t, strings.HasSuffix(p, ".png"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	f, err := storage.Open(p)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, storage.Delete(t.Context(), p))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(p)))
	assert.True(t, os.IsNotExist(err))

	_, err = storage.Open(p)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLocalStorage_SaveGeneratesDistinctNames(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	first, err := storage.Save(t.Context(), ports.Upload{Name: "a.jpg", Content: strings.NewReader("1")}, "x")
	require.NoError(t, err)
	second, err := storage.Save(t.Context(), ports.Upload{Name: "a.jpg", Content: strings.NewReader("2")}, "x")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestLocalStorage_ExtensionFromContentType(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	p, err := storage.Save(t.Context(), ports.Upload{
		Name:        "photo",
		ContentType: "image/gif",
		Content:     strings.NewReader("gif"),
	}, "orders/products")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(p, ".gif"))
}

func TestLocalStorage_DeleteMissingFileIsNoop(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Delete(t.Context(), "orders/products/missing.png"))
}

func TestLocalStorage_RejectsPathsOutsideRoot(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Delete(t.Context(), "../../etc/passwd")
	require.ErrorIs(t, err, errs.ErrStorage)
	require.ErrorIs(t, err, filestorage.ErrPathOutsideRoot)

	_, err = storage.Save(t.Context(), ports.Upload{Name: "a.png", Content: strings.NewReader("x")}, "../outside")
	require.ErrorIs(t, err, errs.ErrStorage)
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err = storage.Save(ctx, ports.Upload{Name: "a.png", Content: strings.NewReader("x")}, "x")
	require.ErrorIs(t, err, errs.ErrStorage)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewLocalStorage_RequiresRoot(t *testing.T) {
	_, err := filestorage.NewLocalStorage("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
