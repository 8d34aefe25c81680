package events

import (
	"context"
	"time"
)

// Event defines the contract for all domain events.
type Event interface {
	// EventType returns the dotted event name, e.g. "booking.created".
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

const (
	BookingCreated        = "booking.created"
	BookingStatusChanged  = "booking.status_changed"
	QuickBookingCreated   = "quick_booking.created"
	QuickBookingConverted = "quick_booking.converted"
	VisaCreated           = "visa.created"
	VisaSubmitted         = "visa.submitted"
	VisaStatusChanged     = "visa.status_changed"
	VisaDocumentVerified  = "visa.document_verified"
	PaymentCreated        = "payment.created"
	PaymentStatusChanged  = "payment.status_changed"
	ContactReceived       = "enquiry.contact_received"
	EnquiryCreated        = "enquiry.created"
	UserRegistered        = "user.registered"
)

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func New(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Publisher delivers events to the outbound bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event. Used when the bus is unavailable.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
