package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/taskdesk/ticket-api/internal/auth"
	"github.com/taskdesk/ticket-api/internal/domain"
	"github.com/taskdesk/ticket-api/internal/events"
	"github.com/taskdesk/ticket-api/internal/repository"
	apperrors "github.com/taskdesk/ticket-api/pkg/util/errorutil"
)

// UserService coordinates user account workflows.
type UserService struct {
	users      repository.UserRepository
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
	BcryptCost int
}

// UserInput carries the writable user fields. Password arrives in plaintext
// and is hashed before any persistence call.
type UserInput struct {
	Username string
	Email    string
	Password string
	Roles    domain.Role
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
		bcryptCost: deps.BcryptCost,
	}
}

// List returns all user accounts.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// ListTicketsOwnedBy returns the tickets whose owner reference equals the
// given user id. The user must exist; the ticket set may be empty.
func (s *UserService) ListTicketsOwnedBy(ctx context.Context, userID int64) ([]domain.Ticket, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", userID)
		}
		return nil, apperrors.MapError(err)
	}
	tickets, err := s.tickets.FindByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Create hashes the plaintext password and persists a new account.
func (s *UserService) Create(ctx context.Context, input UserInput) (*domain.User, error) {
	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewOperationFailed("create user", err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Roles:        input.Roles,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.NewOperationFailed("create user", err)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventUserCreated,
		EntityID: user.ID,
		Payload:  events.UserCreatedPayload{Username: user.Username, Roles: user.Roles},
	})
	return user, nil
}

// Update overwrites username, email, roles and the password hash on the
// stored record. The incoming password is always re-hashed; there is no
// leave-unchanged sentinel.
func (s *UserService) Update(ctx context.Context, id int64, input UserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", id)
		}
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewOperationFailed("update user", err)
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Roles = input.Roles
	user.PasswordHash = hash

	if err := s.users.Save(ctx, user); err != nil {
		return nil, apperrors.NewOperationFailed("update user", err)
	}
	publishEvent(ctx, s.dispatcher, events.Event{
		Type:     events.EventUserUpdated,
		EntityID: user.ID,
		Payload:  events.UserUpdatedPayload{Username: user.Username},
	})
	return user, nil
}
