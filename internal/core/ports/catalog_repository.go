package ports

import (
	"context"

	"flowerorder/internal/core/domain/model/catalog"
	"flowerorder/internal/core/domain/model/kernel"
)

// RegionRepository and ProductRepository are read-only catalogue lookups.
// Both return *errs.ObjectNotFoundError for unknown ids.
type (
	RegionRepository interface {
		Get(ctx context.Context, id kernel.UUID) (catalog.Region, error)
	}

	ProductRepository interface {
		Get(ctx context.Context, id kernel.UUID) (catalog.Product, error)
	}
)
