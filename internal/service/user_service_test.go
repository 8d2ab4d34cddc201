package service

import (
	"context"
	"strings"
	"testing"

	"github.com/taskdesk/ticket-api/internal/auth"
	"github.com/taskdesk/ticket-api/internal/domain"
	apperrors "github.com/taskdesk/ticket-api/pkg/util/errorutil"
)

const testBcryptCost = 4

func newUserService(users *mockUserRepo, tickets *mockTicketRepo) *UserService {
	return NewUserService(UserDependencies{
		UserRepo:   users,
		TicketRepo: tickets,
		BcryptCost: testBcryptCost,
	})
}

func TestUserCreateHashesPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := newUserService(repo, newMockTicketRepo())

	user, err := svc.Create(context.Background(), UserInput{
		Username: "toto",
		Email:    "toto@mail.com",
		Password: "supersecret",
		Roles:    domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == 0 {
		t.Errorf("expected a fresh id to be assigned")
	}
	if user.PasswordHash == "supersecret" || user.PasswordHash == "" {
		t.Errorf("plaintext password must never be stored")
	}
	if err := auth.ComparePassword(user.PasswordHash, "supersecret"); err != nil {
		t.Errorf("stored hash must verify against the input password: %v", err)
	}
}

func TestUserUpdate(t *testing.T) {
	oldHash, err := auth.HashPassword("old", testBcryptCost)
	if err != nil {
		t.Fatal(err)
	}
	stored := domain.User{ID: 8, Username: "tata", Email: "tata@mail.com", PasswordHash: oldHash, Roles: domain.RoleUser}
	repo := newMockUserRepo(stored)
	svc := newUserService(repo, newMockTicketRepo())

	updated, err := svc.Update(context.Background(), 8, UserInput{
		Username: "tata2",
		Email:    "tata2@mail.com",
		Password: "newpass",
		Roles:    domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != "tata2" || updated.Email != "tata2@mail.com" || updated.Roles != domain.RoleAdmin {
		t.Errorf("expected overwritten fields, got %+v", updated)
	}
	if updated.PasswordHash == oldHash {
		t.Errorf("the incoming password must always replace the stored hash")
	}
	if err := auth.ComparePassword(updated.PasswordHash, "newpass"); err != nil {
		t.Errorf("new hash must verify against the new password: %v", err)
	}
}

func TestUserUpdateNotFound(t *testing.T) {
	svc := newUserService(newMockUserRepo(), newMockTicketRepo())

	_, err := svc.Update(context.Background(), 99, UserInput{Username: "x", Password: "y", Roles: domain.RoleUser})
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !strings.Contains(err.Error(), "99") {
		t.Errorf("expected the id in the message, got %q", err.Error())
	}
}

func TestListTicketsOwnedBy(t *testing.T) {
	user := domain.User{ID: 45, Username: "toto", Email: "toto@mail.com"}
	ownerView := &domain.User{ID: 45, Username: "toto", Email: "toto@mail.com"}
	ticket1 := domain.Ticket{ID: 45, Title: "title1", Status: domain.TicketStatusInProgress, OwnerID: ownerOf(45), Owner: ownerView}
	ticket2 := domain.Ticket{ID: 54, Title: "title2", Status: domain.TicketStatusInProgress, OwnerID: ownerOf(45), Owner: ownerView}
	other := domain.Ticket{ID: 4, Title: "title3", Status: domain.TicketStatusFinished}

	svc := newUserService(newMockUserRepo(user), newMockTicketRepo(ticket1, ticket2, other))

	tickets, err := svc.ListTicketsOwnedBy(context.Background(), 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected exactly 2 tickets, got %d", len(tickets))
	}
	for _, ticket := range tickets {
		if ticket.OwnerID == nil || *ticket.OwnerID != 45 {
			t.Errorf("every ticket must carry the same owner, got %+v", ticket)
		}
	}
}

func TestListTicketsOwnedByNotFound(t *testing.T) {
	svc := newUserService(newMockUserRepo(), newMockTicketRepo())

	_, err := svc.ListTicketsOwnedBy(context.Background(), 77)
	if !apperrors.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListTicketsOwnedByEmpty(t *testing.T) {
	user := domain.User{ID: 3, Username: "lonely"}
	svc := newUserService(newMockUserRepo(user), newMockTicketRepo())

	tickets, err := svc.ListTicketsOwnedBy(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 0 {
		t.Errorf("expected no tickets, got %v", tickets)
	}
}
