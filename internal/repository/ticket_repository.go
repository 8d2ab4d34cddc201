package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/ticket-api/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Owner data is resolved
// eagerly so callers can project it without a second lookup.
type TicketRepository interface {
	FindAll(ctx context.Context) ([]domain.Ticket, error)
	FindByID(ctx context.Context, id int64) (*domain.Ticket, error)
	FindByOwner(ctx context.Context, ownerID int64) ([]domain.Ticket, error)
	Save(ctx context.Context, ticket *domain.Ticket) error
	DeleteByID(ctx context.Context, id int64) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketSelect = `
        SELECT t.id, t.title, t.description, t.status, t.owner_id,
               t.created_at, t.updated_at,
               u.id, u.username, u.email
        FROM tickets t
        LEFT JOIN users u ON u.id = t.owner_id`

func (r *ticketRepository) FindAll(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, ticketSelect+` ORDER BY t.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.pool.QueryRow(ctx, ticketSelect+` WHERE t.id=$1`, id)
	ticket, err := scanTicket(row)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) FindByOwner(ctx context.Context, ownerID int64) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, ticketSelect+` WHERE t.owner_id=$1 ORDER BY t.id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

// Save inserts when the id is zero, otherwise updates the existing row.
func (r *ticketRepository) Save(ctx context.Context, ticket *domain.Ticket) error {
	if ticket.ID == 0 {
		const query = `
        INSERT INTO tickets (title, description, status, owner_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
		return r.pool.QueryRow(ctx, query,
			ticket.Title,
			ticket.Description,
			ticket.Status,
			ticket.OwnerID,
		).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
	}

	const query = `
        UPDATE tickets SET title=$1, description=$2, status=$3, owner_id=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.OwnerID,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteByID removes the row if present. Deleting an absent id is not an
// error.
func (r *ticketRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tickets WHERE id=$1`, id)
	return err
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var (
		ticket        domain.Ticket
		ownerID       *int64
		ownerUsername *string
		ownerEmail    *string
	)
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.OwnerID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ownerID,
		&ownerUsername,
		&ownerEmail,
	); err != nil {
		return nil, err
	}
	if ownerID != nil {
		ticket.Owner = &domain.User{ID: *ownerID}
		if ownerUsername != nil {
			ticket.Owner.Username = *ownerUsername
		}
		if ownerEmail != nil {
			ticket.Owner.Email = *ownerEmail
		}
	}
	return &ticket, nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}
