package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shortlet-service/internal/constants"
	"shortlet-service/internal/contextkeys"
	"shortlet-service/internal/contracts"
	"shortlet-service/internal/core/domain"
	"shortlet-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// messagePublisher - то, что адаптеру нужно от rabbitmq_producer.Publisher
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// BookingInquiryEventDTO - тело события BookingInquiryEvent/1.0.0
type BookingInquiryEventDTO struct {
	InquiryID    string  `json:"inquiry_id"`
	PropertyID   string  `json:"property_id"`
	PropertySlug string  `json:"property_slug"`
	PropertyName string  `json:"property_name"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Guests       int     `json:"guests"`
	Nights       int     `json:"nights"`
	Total        int64   `json:"total"`
	CreatedAt    string  `json:"created_at"`
}

// RabbitMQBookingInquiryAdapter публикует лиды с сайта в обменник заявок
type RabbitMQBookingInquiryAdapter struct {
	producer   messagePublisher
	routingKey string
}

func NewRabbitMQBookingInquiryAdapter(producer messagePublisher, routingKey string) (*RabbitMQBookingInquiryAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	if routingKey == "" {
		return nil, fmt.Errorf("routingKey cannot be empty")
	}
	return &RabbitMQBookingInquiryAdapter{producer: producer, routingKey: routingKey}, nil
}

func (a *RabbitMQBookingInquiryAdapter) PublishBookingInquiry(ctx context.Context, inquiry domain.BookingInquiry) error {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "RabbitMQBookingInquiryAdapter",
		"routing_key": a.routingKey,
		"inquiry_id":  inquiry.ID,
	})

	body, err := json.Marshal(toBookingInquiryEventDTO(inquiry))
	if err != nil {
		logger.Error("Failed to marshal booking inquiry to JSON", err, nil)
		return fmt.Errorf("failed to marshal booking inquiry %s: %w", inquiry.ID, err)
	}

	// события, не прошедшие схему, в брокер не попадают
	if err := contracts.Validate(contracts.BookingInquiryEventSchema, body); err != nil {
		logger.Error("Booking inquiry event does not match its schema", err, nil)
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    inquiry.ID,
		Timestamp:    inquiry.CreatedAt,
		Headers: amqp.Table{
			"event-type":    constants.EventTypeBookingInquiry,
			"event-version": constants.EventVersionBookingInquiry,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, a.routingKey, msg); err != nil {
		logger.Error("Failed to publish booking inquiry", err, nil)
		return err
	}

	logger.Info("Booking inquiry published", port.Fields{"property_slug": inquiry.PropertySlug})
	return nil
}

func toBookingInquiryEventDTO(inquiry domain.BookingInquiry) BookingInquiryEventDTO {
	return BookingInquiryEventDTO{
		InquiryID:    inquiry.ID,
		PropertyID:   inquiry.PropertyID,
		PropertySlug: inquiry.PropertySlug,
		PropertyName: inquiry.PropertyName,
		CheckIn:      formatOptionalDate(inquiry.CheckIn),
		CheckOut:     formatOptionalDate(inquiry.CheckOut),
		Guests:       inquiry.Guests,
		Nights:       inquiry.Nights,
		Total:        inquiry.Total,
		CreatedAt:    inquiry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateLayout)
	return &s
}
