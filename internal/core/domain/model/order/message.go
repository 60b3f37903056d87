package order

import (
	"errors"
	"fmt"
	"strings"

	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/pkg/errs"
)

// MessageType tags the card message printed with the arrangement.
type MessageType string

const (
	MessageGeneral    MessageType = "GENERAL"
	MessageGreeting   MessageType = "GREETING"
	MessageCondolence MessageType = "CONDOLENCE"
	MessageSpecial    MessageType = "SPECIAL"
)

// ParseMessageType defaults an empty value to MessageGeneral.
func ParseMessageType(s string) (MessageType, error) {
	switch t := MessageType(s); t {
	case "":
		return MessageGeneral, nil
	case MessageGeneral, MessageGreeting, MessageCondolence, MessageSpecial:
		return t, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("message type", fmt.Errorf("%q is not a valid message type", s))
}

// MessageSpec is a requested card message.
type MessageSpec struct {
	Text      string
	Type      MessageType
	SortOrder int
}

// Validate rejects empty text, text over the length limit and unknown types.
func (s MessageSpec) Validate() error {
	var typeErr error
	if s.Type != "" {
		_, typeErr = ParseMessageType(string(s.Type))
	}
	return errors.Join(checkText("message text", strings.TrimSpace(s.Text), true, 500), typeErr)
}

// Message is a card message owned by one order, printed in SortOrder.
type Message struct {
	id        kernel.UUID
	orderID   kernel.UUID
	text      string
	kind      MessageType
	sortOrder int
}

func newMessage(orderID kernel.UUID, spec MessageSpec) Message {
	kind := spec.Type
	if kind == "" {
		kind = MessageGeneral
	}
	return Message{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		text:      strings.TrimSpace(spec.Text),
		kind:      kind,
		sortOrder: spec.SortOrder,
	}
}

// RestoreMessage rebuilds a message read from storage.
func RestoreMessage(id, orderID kernel.UUID, spec MessageSpec) Message {
	return Message{id: id, orderID: orderID, text: spec.Text, kind: spec.Type, sortOrder: spec.SortOrder}
}

func (m Message) ID() kernel.UUID      { return m.id }
func (m Message) OrderID() kernel.UUID { return m.orderID }
func (m Message) Text() string         { return m.text }
func (m Message) Type() MessageType    { return m.kind }
func (m Message) SortOrder() int       { return m.sortOrder }
