package domain

import "time"

// TicketStatus enumerates ticket progression states. Any status may move to
// any other; the service does not enforce a transition graph.
type TicketStatus string

const (
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusFinished   TicketStatus = "FINISHED"
	TicketStatusCanceled   TicketStatus = "CANCELED"
)

// Valid reports whether the status is one of the enumerated values.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusInProgress, TicketStatusFinished, TicketStatusCanceled:
		return true
	}
	return false
}

// Ticket is the aggregate for work items. Ownership is a nullable foreign
// key on the ticket; the owning user never stores a back-reference.
type Ticket struct {
	ID          int64
	Title       string
	Description string
	Status      TicketStatus
	OwnerID     *int64
	// Owner carries the resolved owner for projection. Only ID, Username
	// and Email are populated.
	Owner     *User
	CreatedAt time.Time
	UpdatedAt time.Time
}
