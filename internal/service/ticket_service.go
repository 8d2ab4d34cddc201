package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/taskdesk/ticket-api/internal/domain"
	"github.com/taskdesk/ticket-api/internal/events"
	"github.com/taskdesk/ticket-api/internal/repository"
	apperrors "github.com/taskdesk/ticket-api/pkg/util/errorutil"
)

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
}

// TicketInput carries the writable ticket fields. OwnerID is optional; a
// ticket may stay unassigned.
type TicketInput struct {
	Title       string
	Description string
	Status      domain.TicketStatus
	OwnerID     *int64
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// List returns all tickets in store order.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.FindAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Get fetches a single ticket by id.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", id)
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// Create persists a new ticket. The owner reference, when supplied, is
// stored as-is without an existence check.
func (s *TicketService) Create(ctx context.Context, input TicketInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		OwnerID:     input.OwnerID,
	}
	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, apperrors.NewOperationFailed("create ticket", err)
	}
	if ticket.OwnerID != nil {
		// best-effort owner resolution for the response projection
		if owner, err := s.users.FindByID(ctx, *ticket.OwnerID); err == nil {
			ticket.Owner = ownerRef(owner)
		}
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketCreated,
		EntityID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			Title:   ticket.Title,
			Status:  ticket.Status,
			OwnerID: ticket.OwnerID,
		},
	})
	return ticket, nil
}

// Update overwrites title, description and status with the incoming values,
// whatever they are. The owner is only re-resolved when the input carries an
// owner reference; its lookup is a second not-found detection point, distinct
// from the ticket lookup above it.
func (s *TicketService) Update(ctx context.Context, id int64, input TicketInput) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", id)
		}
		return nil, apperrors.MapError(err)
	}

	ticket.Title = input.Title
	ticket.Description = input.Description
	ticket.Status = input.Status

	if input.OwnerID != nil {
		owner, err := s.users.FindByID(ctx, *input.OwnerID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("user", *input.OwnerID)
			}
			return nil, apperrors.MapError(err)
		}
		ticket.OwnerID = &owner.ID
		ticket.Owner = ownerRef(owner)
	}

	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, apperrors.NewOperationFailed("update ticket", err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketUpdated,
		EntityID: ticket.ID,
		Payload: events.TicketUpdatedPayload{
			Title:   ticket.Title,
			Status:  ticket.Status,
			OwnerID: ticket.OwnerID,
		},
	})
	return ticket, nil
}

// Assign sets the ticket owner. Ticket existence is checked before user
// existence, in that order.
func (s *TicketService) Assign(ctx context.Context, ticketID, userID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", ticketID)
		}
		return nil, apperrors.MapError(err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", userID)
		}
		return nil, apperrors.MapError(err)
	}

	ticket.OwnerID = &user.ID
	ticket.Owner = ownerRef(user)
	if err := s.tickets.Save(ctx, ticket); err != nil {
		return nil, apperrors.NewOperationFailed("assign ticket", err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketAssigned,
		EntityID: ticket.ID,
		Payload:  events.TicketAssignedPayload{OwnerID: user.ID},
	})
	return ticket, nil
}

// Delete removes a ticket by id. Existence is not pre-checked; deleting an
// absent id succeeds unless the store raises an error.
func (s *TicketService) Delete(ctx context.Context, id int64) error {
	if err := s.tickets.DeleteByID(ctx, id); err != nil {
		return apperrors.NewOperationFailed("delete ticket", err)
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketDeleted,
		EntityID: id,
	})
	return nil
}

// ownerRef strips sensitive fields before the user is attached to a ticket.
func ownerRef(user *domain.User) *domain.User {
	return &domain.User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	publishEvent(ctx, s.dispatcher, event)
}

func publishEvent(ctx context.Context, dispatcher events.Dispatcher, event events.Event) {
	if dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = dispatcher.Publish(ctx, event)
}
