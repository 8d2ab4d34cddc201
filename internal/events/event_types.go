package events

import (
	"time"

	"github.com/taskdesk/ticket-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated  EventType = "ticket_created"
	EventTicketUpdated  EventType = "ticket_updated"
	EventTicketAssigned EventType = "ticket_assigned"
	EventTicketDeleted  EventType = "ticket_deleted"
	EventUserCreated    EventType = "user_created"
	EventUserUpdated    EventType = "user_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	Title   string              `json:"title"`
	Status  domain.TicketStatus `json:"status"`
	OwnerID *int64              `json:"owner_id,omitempty"`
}

// TicketUpdatedPayload payload.
type TicketUpdatedPayload struct {
	Title   string              `json:"title"`
	Status  domain.TicketStatus `json:"status"`
	OwnerID *int64              `json:"owner_id,omitempty"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	OwnerID int64 `json:"owner_id"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	Username string      `json:"username"`
	Roles    domain.Role `json:"roles"`
}

// UserUpdatedPayload payload.
type UserUpdatedPayload struct {
	Username string `json:"username"`
}
