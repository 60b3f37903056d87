package order

import (
	"errors"
	"strings"

	"flowerorder/internal/core/domain/model/kernel"
)

// SenderSpec names a person the order is sent on behalf of.
type SenderSpec struct {
	Name         string
	Relationship string
	Phone        string
	SortOrder    int
	IsMain       bool
}

// Validate requires the sender's name and bounds the text lengths.
func (s SenderSpec) Validate() error {
	return errors.Join(
		checkText("sender name", strings.TrimSpace(s.Name), true, 50),
		checkText("sender relationship", s.Relationship, false, 100),
		checkText("sender phone", s.Phone, false, 20),
	)
}

// Sender is a person an order is sent on behalf of. At most one sender of an
// order is main.
type Sender struct {
	id           kernel.UUID
	orderID      kernel.UUID
	name         string
	relationship string
	phone        string
	sortOrder    int
	isMain       bool
}

func newSender(orderID kernel.UUID, spec SenderSpec) Sender {
	return Sender{
		id:           kernel.NewUUID(),
		orderID:      orderID,
		name:         strings.TrimSpace(spec.Name),
		relationship: spec.Relationship,
		phone:        spec.Phone,
		sortOrder:    spec.SortOrder,
		isMain:       spec.IsMain,
	}
}

// RestoreSender rebuilds a sender read from storage.
func RestoreSender(id, orderID kernel.UUID, spec SenderSpec) Sender {
	return Sender{
		id:           id,
		orderID:      orderID,
		name:         spec.Name,
		relationship: spec.Relationship,
		phone:        spec.Phone,
		sortOrder:    spec.SortOrder,
		isMain:       spec.IsMain,
	}
}

func (s Sender) ID() kernel.UUID      { return s.id }
func (s Sender) OrderID() kernel.UUID { return s.orderID }
func (s Sender) Name() string         { return s.name }
func (s Sender) Relationship() string { return s.relationship }
func (s Sender) Phone() string        { return s.phone }
func (s Sender) SortOrder() int       { return s.sortOrder }
func (s Sender) IsMain() bool         { return s.isMain }
