package postgres

import (
	"context"
	"fmt"

	"flowerorder/internal/adapters/out/postgres/catalogrepo"
	"flowerorder/internal/adapters/out/postgres/memberrepo"
	"flowerorder/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table in creation order.
func Models() []any {
	return []any{
		&memberrepo.MemberDTO{},
		&memberrepo.ActivityRegionDTO{},
		&memberrepo.ProductPriceDTO{},
		&catalogrepo.RegionDTO{},
		&catalogrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OptionDTO{},
		&orderrepo.MessageDTO{},
		&orderrepo.SenderDTO{},
	}
}

func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}
	return nil
}
