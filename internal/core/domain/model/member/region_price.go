package member

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// ActivityRegion is a sido/sigungu district the shop delivers to.
type ActivityRegion struct {
	Sido    string
	Sigungu string
	Active  bool
}

// ProductPrice is the shop's price for a product category in one district.
type ProductPrice struct {
	Sido         string
	Sigungu      string
	CategoryName string
	Price        kernel.Money
	Available    bool
}

// RegionPriceInput is one district of a region/price replacement.
type RegionPriceInput struct {
	Sido    string
	Sigungu string
	Handled bool
	Prices  []CategoryPriceInput
}

type CategoryPriceInput struct {
	CategoryName string
	Price        kernel.Money
	Available    bool
}

func (in RegionPriceInput) Validate() error {
	var sidoErr, sigunguErr error
	if strings.TrimSpace(in.Sido) == "" {
		sidoErr = errs.NewValueIsRequiredError("sido")
	}
	if strings.TrimSpace(in.Sigungu) == "" {
		sigunguErr = errs.NewValueIsRequiredError("sigungu")
	}
	validations := []error{sidoErr, sigunguErr}
	for _, p := range in.Prices {
		if strings.TrimSpace(p.CategoryName) == "" {
			validations = append(validations, errs.NewValueIsRequiredError("category name"))
		}
		if p.Price.IsNegative() {
			validations = append(validations,
				errs.NewValueIsInvalidErrorWithCause("category price", fmt.Errorf("%s is negative", p.Price)))
		}
	}
	return errors.Join(validations...)
}

// ReplaceRegionPrices deactivates every region and price, then upserts the
// inputs: regions by (sido, sigungu) and prices by (sido, sigungu, category).
// A price is available only when its district is handled and the price itself
// is marked available.
func (m *Member) ReplaceRegionPrices(inputs []RegionPriceInput, now time.Time) error {
	validations := make([]error, 0, len(inputs))
	for _, in := range inputs {
		validations = append(validations, in.Validate())
	}
	if err := errors.Join(validations...); err != nil {
		return err
	}

	for i := range m.regions {
		m.regions[i].Active = false
	}
	for i := range m.prices {
		m.prices[i].Available = false
	}

	for _, in := range inputs {
		m.upsertRegion(ActivityRegion{Sido: in.Sido, Sigungu: in.Sigungu, Active: in.Handled})
		for _, p := range in.Prices {
			m.upsertPrice(ProductPrice{
				Sido:         in.Sido,
				Sigungu:      in.Sigungu,
				CategoryName: p.CategoryName,
				Price:        p.Price,
				Available:    in.Handled && p.Available,
			})
		}
	}
	m.audit = m.audit.Touch(now)
	return nil
}

func (m *Member) upsertRegion(r ActivityRegion) {
	for i, existing := range m.regions {
		if existing.Sido == r.Sido && existing.Sigungu == r.Sigungu {
			m.regions[i] = r
			return
		}
	}
	m.regions = append(m.regions, r)
}

func (m *Member) upsertPrice(p ProductPrice) {
	for i, existing := range m.prices {
		if existing.Sido == p.Sido && existing.Sigungu == p.Sigungu && existing.CategoryName == p.CategoryName {
			m.prices[i] = p
			return
		}
	}
	m.prices = append(m.prices, p)
}
