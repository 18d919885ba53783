package event

import (
	"context"
	"time"
)

// Event type constants
const (
	TypeCompanyCreated     = "company.created"
	TypeCompanyDeactivated = "company.deactivated"
	TypeOrderSettled       = "order.settled"
	TypeTransactionCreated = "transaction.created"
)

// Event is the envelope published to the event stream. Payload carries the
// type-specific body and is serialized as JSON on the wire.
type Event struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	CompanyID  string      `json:"company_id"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// Publisher defines the interface for emitting domain events. Publishing is
// best-effort from the caller's perspective; services log failures but do not
// roll back the triggering write.
type Publisher interface {
	// Publish emits a single event
	Publish(ctx context.Context, evt *Event) error
	// Close flushes buffered events and releases resources
	Close()
}
