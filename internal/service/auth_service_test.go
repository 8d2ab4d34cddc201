package service

import (
	"context"
	"testing"

	"github.com/taskdesk/ticket-api/internal/auth"
	"github.com/taskdesk/ticket-api/internal/config"
	"github.com/taskdesk/ticket-api/internal/domain"
)

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("password", testBcryptCost)
	if err != nil {
		t.Fatal(err)
	}
	stored := domain.User{ID: 1, Username: "toto", Email: "toto@mail.com", PasswordHash: hash, Roles: domain.RoleAdmin}
	cfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "successful login", username: "toto", password: "password"},
		{name: "wrong password", username: "toto", password: "nope", wantErr: true},
		{name: "unknown username", username: "ghost", password: "password", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAuthService(cfg, newMockUserRepo(stored))
			user, token, _, err := svc.Login(context.Background(), tc.username, tc.password)

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != stored.ID {
				t.Errorf("expected user %d, got %d", stored.ID, user.ID)
			}
			claims, err := svc.TokenManager().ParseToken(token)
			if err != nil {
				t.Fatalf("issued token must parse: %v", err)
			}
			if claims.UserID != stored.ID || claims.Role != domain.RoleAdmin {
				t.Errorf("claims do not match user: %+v", claims)
			}
		})
	}
}
