package dto

import "github.com/taskdesk/ticket-api/internal/domain"

// Projection functions map persisted entities to their external views. They
// are pure: a nil entity maps to a nil view, an empty or nil collection maps
// to an empty slice.

// UserViewFrom projects a user, dropping the password hash, roles and any
// ticket association.
func UserViewFrom(user *domain.User) *UserView {
	if user == nil {
		return nil
	}
	return &UserView{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// TicketViewFrom projects a ticket with its owner flattened through the
// user projection. An unassigned ticket projects a nil owner.
func TicketViewFrom(ticket *domain.Ticket) *TicketView {
	if ticket == nil {
		return nil
	}
	return &TicketView{
		ID:          ticket.ID,
		Title:       ticket.Title,
		Description: ticket.Description,
		Status:      ticket.Status,
		Owner:       UserViewFrom(ticket.Owner),
	}
}

// UserViewsFrom projects a collection element-wise.
func UserViewsFrom(users []domain.User) []UserView {
	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, *UserViewFrom(&users[i]))
	}
	return views
}

// TicketViewsFrom projects a collection element-wise.
func TicketViewsFrom(tickets []domain.Ticket) []TicketView {
	views := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		views = append(views, *TicketViewFrom(&tickets[i]))
	}
	return views
}
