package order

import (
	"time"

	"flowerorder/internal/core/domain/model/kernel"
)

// Patch is a partial update. A nil field leaves the stored value untouched.
type Patch struct {
	ShopName      *string
	ProductName   *string
	ProductDetail *string
	Quantity      *int
	Price         *kernel.Money
	Payment       *kernel.Money
	DeliveryDate  *time.Time
	DeliveryPlace *string
	Request       *string
}

// IsEmpty reports whether no field is set.
func (p Patch) IsEmpty() bool {
	return p.ShopName == nil && p.ProductName == nil && p.ProductDetail == nil &&
		p.Quantity == nil && p.Price == nil && p.Payment == nil &&
		p.DeliveryDate == nil && p.DeliveryPlace == nil && p.Request == nil
}

func (p Patch) applyTo(d Details) Details {
	if p.ShopName != nil {
		d.ShopName = *p.ShopName
	}
	if p.ProductName != nil {
		d.ProductName = *p.ProductName
	}
	if p.ProductDetail != nil {
		d.ProductDetail = *p.ProductDetail
	}
	if p.Quantity != nil {
		d.Quantity = *p.Quantity
	}
	if p.Price != nil {
		d.Price = *p.Price
	}
	if p.Payment != nil {
		d.Payment = *p.Payment
	}
	if p.DeliveryDate != nil {
		d.DeliveryDate = *p.DeliveryDate
	}
	if p.DeliveryPlace != nil {
		d.DeliveryPlace = *p.DeliveryPlace
	}
	if p.Request != nil {
		d.Request = *p.Request
	}
	return d
}
