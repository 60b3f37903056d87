package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"flowerorder/internal/adapters/out/rabbitmq"
	"flowerorder/internal/core/domain/model/kernel"
	"flowerorder/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// confirmation resolves once a result is sent on its channel.
type confirmation struct {
	result chan bool
}

func newConfirmation() *confirmation {
	return &confirmation{result: make(chan bool, 1)}
}

func (c *confirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case ack := <-c.result:
		return ack, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithDeferredConfirmWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) (rabbitmq.Confirmation, error) {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return args.Get(0).(rabbitmq.Confirmation), nil
}

func resolved(ack bool) *confirmation {
	c := newConfirmation()
	c.result <- ack
	return c
}

func statusChanged() order.Event {
	return order.Event{
		Name:           order.EventStatusChanged,
		OrderID:        kernel.NewUUID(),
		Number:         "210000",
		MemberID:       kernel.NewUUID(),
		Status:         order.StatusConfirmed,
		PreviousStatus: order.StatusPending,
		OccurredAt:     time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
	}
}

func TestPublisher_PublishesJSONWithEventRoutingKey(t *testing.T) {
	ch := new(MockChannel)
	event := statusChanged()

	var sent amqp.Publishing
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, "flower.orders", "order.status_changed", false, false, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(5).(amqp.Publishing) }).
		Return(resolved(true), nil).Once()

	publisher := rabbitmq.NewPublisher(ch, "flower.orders", slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.Publish(t.Context(), event))

	assert.Equal(t, "application/json", sent.ContentType)
	assert.Equal(t, amqp.Persistent, sent.DeliveryMode)
	assert.Equal(t, rabbitmq.MessageID(event), sent.MessageId)

	var body rabbitmq.Message
	require.NoError(t, json.Unmarshal(sent.Body, &body))
	assert.Equal(t, "order.status_changed", body.Event)
	assert.Equal(t, "210000", body.OrderNumber)
	assert.Equal(t, "CONFIRMED", body.Status)
	assert.Equal(t, "PENDING", body.PreviousStatus)
	assert.Equal(t, event.OrderID.String(), body.OrderID)
	ch.AssertExpectations(t)
}

func TestPublisher_NackIsAnError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(resolved(false), nil).Once()

	publisher := rabbitmq.NewPublisher(ch, "flower.orders", slog.New(slog.DiscardHandler))
	err := publisher.Publish(t.Context(), statusChanged())
	require.ErrorIs(t, err, rabbitmq.ErrPublishNacked)
}

func TestPublisher_StopsAtFirstFailure(t *testing.T) {
	ch := new(MockChannel)
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(nil, errors.New("channel closed")).Once()

	publisher := rabbitmq.NewPublisher(ch, "flower.orders", slog.New(slog.DiscardHandler))
	err := publisher.Publish(t.Context(), statusChanged(), statusChanged())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order.status_changed")
	ch.AssertNumberOfCalls(t, "PublishWithDeferredConfirmWithContext", 1)
}

func TestPublisher_LateConfirmDoesNotLeakIntoNextPublish(t *testing.T) {
	slow := newConfirmation()
	ch := new(MockChannel)
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(slow, nil).Once()
	ch.On("PublishWithDeferredConfirmWithContext", mock.Anything, mock.Anything, mock.Anything, false, false, mock.Anything).
		Return(resolved(true), nil).Once()

	publisher := rabbitmq.NewPublisher(ch, "flower.orders", slog.New(slog.DiscardHandler))
	publisher.SetConfirmTimeout(20 * time.Millisecond)

	err := publisher.Publish(t.Context(), statusChanged())
	require.ErrorIs(t, err, context.DeadlineExceeded)

	slow.result <- false

	require.NoError(t, publisher.Publish(t.Context(), statusChanged()))
	ch.AssertExpectations(t)
}

func TestMessageID_DiffersPerStatusChange(t *testing.T) {
	first := statusChanged()
	second := first
	second.PreviousStatus = order.StatusConfirmed
	second.Status = order.StatusPreparing
	second.OccurredAt = first.OccurredAt.Add(time.Minute)

	assert.NotEqual(t, rabbitmq.MessageID(first), rabbitmq.MessageID(second))
	assert.Contains(t, rabbitmq.MessageID(first), first.OrderID.String())
}

func TestNewMessage_OmitsEmptyOptionalFields(t *testing.T) {
	event := statusChanged()
	event.Name = order.EventCreated
	event.PreviousStatus = ""

	data, err := json.Marshal(rabbitmq.NewMessage(event))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "previousStatus")
	assert.NotContains(t, string(data), "actor")
}
