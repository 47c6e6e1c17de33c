package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/sabbebasta/booking-platform/internal/events"
)

// NotificationService records booking lifecycle events for operators.
// Actual message delivery is out of scope; handlers only log.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingCreated, n.handleBookingCreated)
	n.dispatcher.Subscribe(events.EventBookingStatusChanged, n.handleBookingStatusChanged)
	n.dispatcher.Subscribe(events.EventBookingAssigned, n.handleBookingAssigned)
	n.dispatcher.Subscribe(events.EventBookingCancelled, n.handleBookingCancelled)
}

func (n *NotificationService) handleBookingCreated(_ context.Context, event events.Event) error {
	n.logger.Info("BookingCreated", zap.String("booking_id", event.BookingID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleBookingStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("BookingStatusChanged", zap.String("booking_id", event.BookingID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleBookingAssigned(_ context.Context, event events.Event) error {
	n.logger.Info("BookingAssigned", zap.String("booking_id", event.BookingID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleBookingCancelled(_ context.Context, event events.Event) error {
	n.logger.Info("BookingCancelled", zap.String("booking_id", event.BookingID), zap.Any("payload", event.Payload))
	return nil
}
