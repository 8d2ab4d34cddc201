package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/taskdesk/ticket-api/internal/auth"
	"github.com/taskdesk/ticket-api/internal/domain"
)

// SeedDefaults inserts a default admin and user account plus one sample
// ticket when the users table is empty. Intended for development setups.
func SeedDefaults(ctx context.Context, pool *pgxpool.Pool, bcryptCost int, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping seed")
		return nil
	}

	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		username string
		email    string
		password string
		roles    domain.Role
	}{
		{username: "toto", email: "toto@mail.com", password: "toto", roles: domain.RoleAdmin},
		{username: "tata", email: "tata@mail.com", password: "tata", roles: domain.RoleUser},
	}

	var adminID int64
	for i, seed := range seeds {
		hash, err := auth.HashPassword(seed.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		var id int64
		err = pool.QueryRow(ctx,
			`INSERT INTO users (username, email, password_hash, roles) VALUES ($1,$2,$3,$4) RETURNING id`,
			seed.username, seed.email, hash, seed.roles,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert seed user %s: %w", seed.username, err)
		}
		if i == 0 {
			adminID = id
		}
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO tickets (title, description, status, owner_id) VALUES ($1,$2,$3,$4)`,
		"ticket1", "desc", domain.TicketStatusInProgress, adminID,
	)
	if err != nil {
		return fmt.Errorf("insert seed ticket: %w", err)
	}

	logger.Info("seeded default accounts", zap.Int("users", len(seeds)))
	return nil
}
