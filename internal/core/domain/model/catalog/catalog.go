// Package catalog holds the reference data an order may point to: delivery
// regions and catalogue products.
package catalog

import (
	"errors"
	"strings"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// Region is a sido/sigungu delivery district.
type Region struct {
	id      kernel.UUID
	sido    string
	sigungu string
}

func NewRegion(id kernel.UUID, sido, sigungu string) (Region, error) {
	var sidoErr error
	if strings.TrimSpace(sido) == "" {
		sidoErr = errs.NewValueIsRequiredError("sido")
	}
	if err := errors.Join(id.Validate(), sidoErr); err != nil {
		return Region{}, err
	}
	return Region{id: id, sido: sido, sigungu: sigungu}, nil
}

func (r Region) ID() kernel.UUID { return r.id }
func (r Region) Sido() string    { return r.sido }
func (r Region) Sigungu() string { return r.sigungu }

// Name is "sido sigungu", or just sido for province-wide regions.
func (r Region) Name() string {
	return strings.TrimSpace(r.sido + " " + r.sigungu)
}

// Product is a catalogue item such as a wreath or an orchid pot.
type Product struct {
	id        kernel.UUID
	name      string
	category  string
	basePrice kernel.Money
}

func NewProduct(id kernel.UUID, name, category string, basePrice kernel.Money) (Product, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("product name")
	}
	if err := errors.Join(id.Validate(), nameErr); err != nil {
		return Product{}, err
	}
	return Product{id: id, name: name, category: category, basePrice: basePrice}, nil
}

func (p Product) ID() kernel.UUID         { return p.id }
func (p Product) Name() string            { return p.name }
func (p Product) Category() string        { return p.category }
func (p Product) BasePrice() kernel.Money { return p.basePrice }
