package catalog_test

import (
	"testing"

	"flowerorder/internal/core/domain/model/catalog"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegion(t *testing.T) {
	r, err := catalog.NewRegion(kernel.NewUUID(), "Seoul", "Gangnam")
	require.NoError(t, err)
	assert.Equal(t, "Seoul Gangnam", r.Name())

	r, err = catalog.NewRegion(kernel.NewUUID(), "Jeju", "")
	require.NoError(t, err)
	assert.Equal(t, "Jeju", r.Name())

	_, err = catalog.NewRegion(kernel.UUID{}, "", "x")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewProduct(t *testing.T) {
	p, err := catalog.NewProduct(kernel.NewUUID(), "Celebration wreath", "wreath", kernel.NewMoney(100000))
	require.NoError(t, err)
	assert.Equal(t, "wreath", p.Category())
	assert.Equal(t, int64(100000), p.BasePrice().Int64())

	_, err = catalog.NewProduct(kernel.NewUUID(), " ", "wreath", kernel.ZeroMoney)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
