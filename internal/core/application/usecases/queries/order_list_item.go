// Package queries contains the read-side operations over orders.
// Handlers read through ports.OrderRepository and return view models shaped
// for list screens.
package queries

import (
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"
)

const (
	listDateLayout = "06-01-02"
	listTimeLayout = "15:04"
)

// OrderListItem is one row of an order list screen.
type OrderListItem struct {
	ID              kernel.UUID
	OrderNumber     string
	OrderType       string
	OrderDate       string
	OrderTime       string
	DeliveryDate    string
	DeliveryTime    string
	Sender          string
	Receiver        string
	ShopName        string
	ProductName     string
	DeliveryAddress string
	OriginPrice     kernel.Money
	Payment         kernel.Money
	TotalAmount     kernel.Money
	SMS             string
	Fax             string
	Status          order.Status
	DeliveryStatus  string
	Consignee       string
	IsDelivery      bool
	OnSite          bool
	HasProductImage bool
}

// NewOrderListItem formats dates as yy-MM-dd and times as HH:mm.
func NewOrderListItem(o *order.Order) OrderListItem {
	d := o.Details()
	item := OrderListItem{
		ID:              o.ID(),
		OrderNumber:     o.Number().String(),
		OrderType:       o.Type().String(),
		OrderDate:       o.Audit().CreatedAt().Format(listDateLayout),
		OrderTime:       o.Audit().CreatedAt().Format(listTimeLayout),
		DeliveryTime:    o.DeliveryTimeString(),
		Receiver:        d.ReceiverName,
		ShopName:        d.ShopName,
		ProductName:     d.ProductName,
		DeliveryAddress: d.DeliveryPlace,
		OriginPrice:     d.OriginPrice,
		Payment:         d.Payment,
		TotalAmount:     o.TotalAmount(),
		SMS:             string(d.SMS),
		Fax:             string(d.Fax),
		Status:          o.Status(),
		DeliveryStatus:  o.Status().Description(),
		Consignee:       d.Consignee,
		IsDelivery:      d.IsDelivery,
		OnSite:          d.OnSite,
		HasProductImage: o.HasProductImage(),
	}
	if !d.DeliveryDate.IsZero() {
		item.DeliveryDate = d.DeliveryDate.Format(listDateLayout)
	}
	if s, ok := o.MainSender(); ok {
		item.Sender = s.Name()
	}
	return item
}

func toListItems(orders []*order.Order) []OrderListItem {
	items := make([]OrderListItem, 0, len(orders))
	for _, o := range orders {
		items = append(items, NewOrderListItem(o))
	}
	return items
}
