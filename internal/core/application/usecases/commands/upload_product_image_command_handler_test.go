package commands_test

import (
	"errors"
	"strings"
	"testing"

	"flowerorder/internal/core/application/usecases/commands"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
	"flowerorder/internal/core/ports"
	"flowerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pngUpload() ports.Upload {
	return ports.Upload{Name: "rose.png", ContentType: "image/png", Size: 4, Content: strings.NewReader("data")}
}

func withImage(t *testing.T, o *order.Order, path string) *order.Order {
	t.Helper()
	_, err := o.AttachProductImage(order.ProductImage{Path: path, OriginalName: "old.png", ContentType: "image/png", Size: 3}, now)
	require.NoError(t, err)
	return o
}

func TestNewUploadProductImageCommand_RejectsUnsupportedType(t *testing.T) {
	upload := pngUpload()
	upload.ContentType = "application/pdf"
	_, err := commands.NewUploadProductImageCommand(kernel.NewUUID(), upload)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestNewUploadProductImageCommand_RejectsOversizedFile(t *testing.T) {
	upload := pngUpload()
	upload.Size = order.MaxImageSize + 1
	_, err := commands.NewUploadProductImageCommand(kernel.NewUUID(), upload)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUploadProductImageCommandHandler_Handle_ReplacesImage(t *testing.T) {
	ctx := t.Context()
	o := withImage(t, newOrderInStatus(t, order.StatusPending), "orders/products/old.png")
	upload := pngUpload()
	cmd, err := commands.NewUploadProductImageCommand(o.ID(), upload)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	storage := new(MockFileStorage)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		storage.On("Delete", ctx, "orders/products/old.png").Return(nil).Once(),
		storage.On("Save", ctx, upload, order.ProductImageFolder).Return("orders/products/new.png", nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadProductImageCommandHandler(factory, storage, fixedClock, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "orders/products/new.png", updated.ProductImage().Path)
	assert.Equal(t, "image/png", updated.ProductImage().ContentType)
	assert.Equal(t, int64(4), updated.ProductImage().Size)
	storage.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUploadProductImageCommandHandler_Handle_OldImageDeleteFailureContinues(t *testing.T) {
	ctx := t.Context()
	o := withImage(t, newOrderInStatus(t, order.StatusPending), "orders/products/old.png")
	upload := pngUpload()
	cmd, err := commands.NewUploadProductImageCommand(o.ID(), upload)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	storage := new(MockFileStorage)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		storage.On("Delete", ctx, "orders/products/old.png").Return(errors.New("permission denied")).Once(),
		storage.On("Save", ctx, upload, order.ProductImageFolder).Return("orders/products/new.png", nil).Once(),
		repo.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadProductImageCommandHandler(factory, storage, fixedClock, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "orders/products/new.png", updated.ProductImage().Path)
}

func TestUploadProductImageCommandHandler_Handle_SaveFailureIsStorageError(t *testing.T) {
	ctx := t.Context()
	o := newOrderInStatus(t, order.StatusPending)
	upload := pngUpload()
	cmd, err := commands.NewUploadProductImageCommand(o.ID(), upload)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	storage := new(MockFileStorage)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		storage.On("Save", ctx, upload, order.ProductImageFolder).Return("", errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadProductImageCommandHandler(factory, storage, fixedClock, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStorage)
	var storageErr *errs.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "save", storageErr.Op)
	assert.False(t, o.HasProductImage())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadProductImageCommandHandler_Handle_UpdateFailureRemovesNewFile(t *testing.T) {
	ctx := t.Context()
	o := newOrderInStatus(t, order.StatusPending)
	upload := pngUpload()
	cmd, err := commands.NewUploadProductImageCommand(o.ID(), upload)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	storage := new(MockFileStorage)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	storage.On("Save", ctx, upload, order.ProductImageFolder).Return("orders/products/new.png", nil).Once()
	repo.On("Update", ctx, o).Return(errs.NewVersionIsInvalidError("order")).Once()
	storage.On("Delete", mock.Anything, "orders/products/new.png").Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUploadProductImageCommandHandler(factory, storage, fixedClock, discardLogger())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	storage.AssertExpectations(t)
}
