package dto

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/taskdesk/ticket-api/internal/domain"
)

func TestUserViewDropsSensitiveFields(t *testing.T) {
	user := &domain.User{
		ID:           45,
		Username:     "toto",
		Email:        "toto@mail.com",
		PasswordHash: "$2a$12$secrethashvalue",
		Roles:        domain.RoleAdmin,
	}

	view := UserViewFrom(user)
	if view.ID != 45 || view.Username != "toto" || view.Email != "toto@mail.com" {
		t.Errorf("expected copied public fields, got %+v", view)
	}

	encoded, err := json.Marshal(view)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(encoded), "secrethash") || strings.Contains(string(encoded), "ADMIN") {
		t.Errorf("sensitive values leaked into the view: %s", encoded)
	}
}

func TestUserViewNil(t *testing.T) {
	if view := UserViewFrom(nil); view != nil {
		t.Errorf("nil entity must map to nil view, got %+v", view)
	}
}

func TestTicketView(t *testing.T) {
	ownerID := int64(45)
	ticket := &domain.Ticket{
		ID:          45,
		Title:       "title1",
		Description: "description1",
		Status:      domain.TicketStatusInProgress,
		OwnerID:     &ownerID,
		Owner:       &domain.User{ID: 45, Username: "toto", Email: "toto@mail.com"},
	}

	view := TicketViewFrom(ticket)
	if view.ID != 45 || view.Title != "title1" || view.Status != domain.TicketStatusInProgress {
		t.Errorf("expected copied fields, got %+v", view)
	}
	if view.Owner == nil || view.Owner.ID != 45 || view.Owner.Username != "toto" {
		t.Errorf("expected projected owner, got %+v", view.Owner)
	}
}

func TestTicketViewUnassignedOwner(t *testing.T) {
	ticket := &domain.Ticket{ID: 4, Title: "title3", Status: domain.TicketStatusFinished}

	view := TicketViewFrom(ticket)
	if view.Owner != nil {
		t.Errorf("absent owner must project to nil, got %+v", view.Owner)
	}
}

func TestTicketViewNil(t *testing.T) {
	if view := TicketViewFrom(nil); view != nil {
		t.Errorf("nil entity must map to nil view, got %+v", view)
	}
}

func TestCollectionProjectionsNeverNil(t *testing.T) {
	if views := TicketViewsFrom(nil); views == nil || len(views) != 0 {
		t.Errorf("nil collection must map to an empty slice, got %v", views)
	}
	if views := TicketViewsFrom([]domain.Ticket{}); views == nil || len(views) != 0 {
		t.Errorf("empty collection must map to an empty slice, got %v", views)
	}
	if views := UserViewsFrom(nil); views == nil || len(views) != 0 {
		t.Errorf("nil collection must map to an empty slice, got %v", views)
	}
}

func TestTicketViewsElementwise(t *testing.T) {
	ownerID := int64(45)
	owner := &domain.User{ID: 45, Username: "toto", Email: "toto@mail.com"}
	tickets := []domain.Ticket{
		{ID: 45, Title: "title1", Status: domain.TicketStatusInProgress, OwnerID: &ownerID, Owner: owner},
		{ID: 54, Title: "title2", Status: domain.TicketStatusInProgress, OwnerID: &ownerID, Owner: owner},
	}

	views := TicketViewsFrom(tickets)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	for i, view := range views {
		if view.ID != tickets[i].ID || view.Title != tickets[i].Title {
			t.Errorf("view %d does not match entity: %+v", i, view)
		}
		if view.Owner == nil || view.Owner.ID != 45 {
			t.Errorf("view %d must carry the projected owner, got %+v", i, view.Owner)
		}
	}
}
