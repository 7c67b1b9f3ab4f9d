package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepository - реализация MessageRepositoryPort для PostgreSQL.
type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) (*MessageRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &MessageRepository{pool: pool}, nil
}

const messageColumns = `id, sender_id, recipient_id, subject, body, is_read, read_at, parent_id, created_at`

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(
		&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Body,
		&m.IsRead, &m.ReadAt, &m.ParentID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MessageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `INSERT INTO messages (` + messageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		msg.ID, msg.SenderID, msg.RecipientID, msg.Subject, msg.Body,
		msg.IsRead, msg.ReadAt, msg.ParentID, msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	msg, err := scanMessage(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find message by id: %w", err)
	}
	return msg, nil
}

func (r *MessageRepository) Update(ctx context.Context, msg *domain.Message) error {
	query := `UPDATE messages SET is_read = $2, read_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, msg.ID, msg.IsRead, msg.ReadAt)
	if err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MessageRepository) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM messages WHERE sender_id = $1 OR recipient_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count messages: %w", err)
	}

	query := `SELECT ` + messageColumns + ` FROM messages
		WHERE sender_id = $1 OR recipient_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan message row: %w", err)
		}
		messages = append(messages, *m)
	}
	return messages, total, rows.Err()
}

// SupportTicketRepository - реализация SupportTicketRepositoryPort для PostgreSQL.
type SupportTicketRepository struct {
	pool *pgxpool.Pool
}

func NewSupportTicketRepository(pool *pgxpool.Pool) (*SupportTicketRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SupportTicketRepository{pool: pool}, nil
}

const ticketColumns = `id, user_id, category, subject, description, status, priority, assigned_to, created_at, updated_at`

func scanTicket(row pgx.Row) (*domain.SupportTicket, error) {
	var t domain.SupportTicket
	err := row.Scan(
		&t.ID, &t.UserID, &t.Category, &t.Subject, &t.Description,
		&t.Status, &t.Priority, &t.AssignedTo, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SupportTicketRepository) Create(ctx context.Context, ticket *domain.SupportTicket) error {
	query := `INSERT INTO support_tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.UserID, ticket.Category, ticket.Subject, ticket.Description,
		ticket.Status, ticket.Priority, ticket.AssignedTo, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert support ticket: %w", err)
	}
	return nil
}

func (r *SupportTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`

	ticket, err := scanTicket(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find support ticket by id: %w", err)
	}
	return ticket, nil
}

func (r *SupportTicketRepository) Update(ctx context.Context, ticket *domain.SupportTicket) error {
	query := `UPDATE support_tickets SET category = $2, subject = $3, description = $4,
		status = $5, priority = $6, assigned_to = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		ticket.ID, ticket.Category, ticket.Subject, ticket.Description,
		ticket.Status, ticket.Priority, ticket.AssignedTo, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update support ticket: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupportTicketRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SupportTicket, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM support_tickets WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count support tickets: %w", err)
	}

	query := `SELECT ` + ticketColumns + ` FROM support_tickets
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query support tickets: %w", err)
	}
	defer rows.Close()

	tickets := make([]domain.SupportTicket, 0)
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan support ticket row: %w", err)
		}
		tickets = append(tickets, *t)
	}
	return tickets, total, rows.Err()
}

// FeedbackRepository - реализация FeedbackRepositoryPort для PostgreSQL.
type FeedbackRepository struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) (*FeedbackRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FeedbackRepository{pool: pool}, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, fb *domain.Feedback) error {
	query := `INSERT INTO feedback (id, user_id, type, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, fb.ID, fb.UserID, fb.Type, fb.Rating, fb.Comment, fb.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepository) List(ctx context.Context, limit, offset int) ([]domain.Feedback, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM feedback`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	query := `SELECT id, user_id, type, rating, comment, created_at
		FROM feedback ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Feedback, 0)
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Type, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		items = append(items, f)
	}
	return items, total, rows.Err()
}
