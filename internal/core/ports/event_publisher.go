package ports

import (
	"context"

	"flowerorder/internal/core/domain/model/order"
)

// EventPublisher delivers order events to the message broker after commit.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.Event) error
}
