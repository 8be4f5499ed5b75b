package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ActorRef identifies who produced the event.
type ActorRef struct {
	UserID uuid.UUID `json:"userId"`
}

// PayloadEnvelope is the stable payload structure stored in outbox_events.
type PayloadEnvelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Actor      *ActorRef       `json:"actor,omitempty"`
	Data       json.RawMessage `json:"data"`
}

// OrderCreatedData is the payload carried by order.created events so the
// fulfillment consumer can advance order status without a DB read.
type OrderCreatedData struct {
	OrderID       uuid.UUID `json:"orderId"`
	UserID        uuid.UUID `json:"userId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalCents    int       `json:"totalCents"`
	ItemCount     int       `json:"itemCount"`
}
