package order

import (
	"time"

	"flowerorder/internal/core/domain/model/kernel"
)

// EventName is also the routing key of the published message.
type EventName string

const (
	EventCreated       EventName = "order.created"
	EventStatusChanged EventName = "order.status_changed"
	EventDeleted       EventName = "order.deleted"
)

// Event is raised by the aggregate and published after the unit of work commits.
type Event struct {
	Name           EventName
	OrderID        kernel.UUID
	Number         string
	MemberID       kernel.UUID
	Status         Status
	PreviousStatus Status
	Actor          string
	OccurredAt     time.Time
}

func (o *Order) raise(name EventName, previous Status, actor string, at time.Time) {
	o.events = append(o.events, Event{
		Name:           name,
		OrderID:        o.id,
		Number:         o.number.String(),
		MemberID:       o.memberID,
		Status:         o.status,
		PreviousStatus: previous,
		Actor:          actor,
		OccurredAt:     at,
	})
}

// DomainEvents returns the events raised since the aggregate was built or last cleared.
func (o *Order) DomainEvents() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops pending events once they were handed to the publisher.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}
