package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type MessageRepositoryPort interface {
	Create(ctx context.Context, msg *domain.Message) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error)
	Update(ctx context.Context, msg *domain.Message) error

	// ListForUser возвращает сообщения, где пользователь является
	// отправителем или получателем.
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, int, error)
}

type SupportTicketRepositoryPort interface {
	Create(ctx context.Context, ticket *domain.SupportTicket) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SupportTicket, error)
	Update(ctx context.Context, ticket *domain.SupportTicket) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SupportTicket, int, error)
}

type FeedbackRepositoryPort interface {
	Create(ctx context.Context, fb *domain.Feedback) error
	List(ctx context.Context, limit, offset int) ([]domain.Feedback, int, error)
}
