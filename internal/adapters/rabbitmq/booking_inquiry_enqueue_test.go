package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"shortlet-service/internal/constants"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/core/domain"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	err        error
	routingKey string
	msgs       []amqp.Publishing
	deadline   bool
}

func (p *fakePublisher) Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error {
	_, p.deadline = ctx.Deadline()
	p.routingKey = routingKey
	p.msgs = append(p.msgs, msg)
	return p.err
}

func testInquiry() domain.BookingInquiry {
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return domain.BookingInquiry{
		ID:           "7d444840-9dc0-11d1-b245-5ffdce74fad2",
		PropertyID:   "3",
		PropertySlug: "victoria-island-loft",
		PropertyName: "Victoria Island Loft",
		CheckIn:      &checkIn,
		Guests:       2,
		Nights:       1,
		Total:        155000,
		CreatedAt:    time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewRabbitMQBookingInquiryAdapter_Validation(t *testing.T) {
	_, err := NewRabbitMQBookingInquiryAdapter(nil, constants.RoutingKeyBookingInquiry)
	assert.Error(t, err)

	_, err = NewRabbitMQBookingInquiryAdapter(&fakePublisher{}, "")
	assert.Error(t, err)
}

func TestPublishBookingInquiry(t *testing.T) {
	publisher := &fakePublisher{}
	adapter, err := NewRabbitMQBookingInquiryAdapter(publisher, constants.RoutingKeyBookingInquiry)
	require.NoError(t, err)

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	require.NoError(t, adapter.PublishBookingInquiry(ctx, testInquiry()))

	require.Len(t, publisher.msgs, 1)
	msg := publisher.msgs[0]
	assert.Equal(t, constants.RoutingKeyBookingInquiry, publisher.routingKey)
	assert.True(t, publisher.deadline)
	assert.Equal(t, "application/json", msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, constants.EventTypeBookingInquiry, msg.Headers["event-type"])
	assert.Equal(t, "trace-1", msg.Headers["x-trace-id"])

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &body))
	assert.Equal(t, "2024-03-01", body["check_in"])
	assert.Nil(t, body["check_out"])
	assert.Equal(t, float64(155000), body["total"])
	assert.Equal(t, "2024-02-20T10:00:00Z", body["created_at"])
}

func TestPublishBookingInquiry_InvalidEventIsNotPublished(t *testing.T) {
	publisher := &fakePublisher{}
	adapter, err := NewRabbitMQBookingInquiryAdapter(publisher, constants.RoutingKeyBookingInquiry)
	require.NoError(t, err)

	inquiry := testInquiry()
	inquiry.Nights = 0

	assert.Error(t, adapter.PublishBookingInquiry(context.Background(), inquiry))
	assert.Empty(t, publisher.msgs)
}

func TestPublishBookingInquiry_PublishError(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("channel closed")}
	adapter, err := NewRabbitMQBookingInquiryAdapter(publisher, constants.RoutingKeyBookingInquiry)
	require.NoError(t, err)

	assert.Error(t, adapter.PublishBookingInquiry(context.Background(), testInquiry()))
}

func TestToFields(t *testing.T) {
	fields := toFields([]interface{}{"name", "leads", 42, "skipped", "dangling"})

	assert.Equal(t, "leads", fields["name"])
	assert.Len(t, fields, 1)
	assert.Nil(t, toFields(nil))
}
