package dto

import "github.com/taskdesk/ticket-api/internal/domain"

// TicketRequest payload for create and update. The owner reference is
// optional; when present it names an existing user id.
type TicketRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	OwnerID     *int64              `json:"owner_id"`
}

// TicketView is the external representation of a ticket. The owner, when
// assigned, is flattened one level deep.
type TicketView struct {
	ID          int64               `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      domain.TicketStatus `json:"status"`
	Owner       *UserView           `json:"owner"`
}
