package catalogrepo

import (
	"context"
	"errors"

	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/catalog"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRegionRepository struct {
	db *gorm.DB
}

func NewGormRegionRepository(db *gorm.DB) *GormRegionRepository {
	return &GormRegionRepository{db: db}
}

func (r *GormRegionRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Region, error) {
	if err := id.Validate(); err != nil {
		return catalog.Region{}, err
	}

	var dto RegionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", columns.FromKernel(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Region{}, errs.NewObjectNotFoundError("region", id.String())
		}
		return catalog.Region{}, err
	}
	return regionToDomain(dto)
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return catalog.Product{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", columns.FromKernel(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.Product{}, errs.NewObjectNotFoundError("product", id.String())
		}
		return catalog.Product{}, err
	}
	return productToDomain(dto)
}
