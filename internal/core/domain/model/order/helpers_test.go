package order_test

import (
	"testing"
	"time"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func validDetails() order.Details {
	return order.Details{
		ShopName:      "Rose Garden",
		ShopPhone:     "02-123-4567",
		ProductName:   "Congratulation wreath",
		Quantity:      1,
		Price:         kernel.NewMoney(180000),
		Payment:       kernel.NewMoney(200000),
		OrdererName:   "Kim",
		OrdererMobile: "010-1111-2222",
		ReceiverName:  "Lee",
		DeliveryDate:  today.AddDate(0, 0, 1),
		DeliveryPlace: "Seoul Grand Hall 3F",
		IsDelivery:    true,
	}
}

func validDraft() order.Draft {
	return order.Draft{
		Type:    order.TypeDirect,
		Details: validDetails(),
	}
}

func mustNumber(t *testing.T, s string) order.Number {
	t.Helper()
	n, err := order.NewNumber(s)
	require.NoError(t, err)
	return n
}

func newTestOrder(t *testing.T, draft order.Draft) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), mustNumber(t, "123456"), kernel.NewUUID(), draft, today)
	require.NoError(t, err)
	return o
}
