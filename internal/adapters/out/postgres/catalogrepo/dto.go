// Package catalogrepo reads the region and product reference tables.
package catalogrepo

import (
	"flowerorder/internal/adapters/out/postgres/columns"
	"flowerorder/internal/core/domain/model/catalog"
	"flowerorder/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type RegionDTO struct {
	ID      columns.UUID `gorm:"primaryKey"`
	Sido    string       `gorm:"type:varchar(50);not null"`
	Sigungu string       `gorm:"type:varchar(50)"`
}

func (RegionDTO) TableName() string {
	return "regions"
}

type ProductDTO struct {
	ID        columns.UUID    `gorm:"primaryKey"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Category  string          `gorm:"type:varchar(50)"`
	BasePrice decimal.Decimal `gorm:"type:decimal(12,0);not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// RegionFromDomain and ProductFromDomain map reference data for inserts.
func RegionFromDomain(r catalog.Region) RegionDTO {
	return RegionDTO{ID: columns.FromKernel(r.ID()), Sido: r.Sido(), Sigungu: r.Sigungu()}
}

func ProductFromDomain(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:        columns.FromKernel(p.ID()),
		Name:      p.Name(),
		Category:  p.Category(),
		BasePrice: p.BasePrice().Decimal(),
	}
}

func regionToDomain(dto RegionDTO) (catalog.Region, error) {
	id, err := dto.ID.Kernel()
	if err != nil {
		return catalog.Region{}, err
	}
	return catalog.NewRegion(id, dto.Sido, dto.Sigungu)
}

func productToDomain(dto ProductDTO) (catalog.Product, error) {
	id, err := dto.ID.Kernel()
	if err != nil {
		return catalog.Product{}, err
	}
	price, err := kernel.MoneyFromDecimal(dto.BasePrice)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(id, dto.Name, dto.Category, price)
}
