package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type SendMessageUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, msg *domain.Message) (*domain.Message, error)
}

type GetMessageUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, messageID uuid.UUID) (*domain.Message, error)
}

type ListMessagesUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Message, int, error)
}

// MarkMessageReadUseCase идемпотентно помечает сообщение прочитанным.
type MarkMessageReadUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, messageID uuid.UUID) (*domain.Message, error)
}

type CreateTicketUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, ticket *domain.SupportTicket) (*domain.SupportTicket, error)
}

type UpdateTicketUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, ticket *domain.SupportTicket) (*domain.SupportTicket, error)
}

type ListTicketsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.SupportTicket, int, error)
}

type CreateFeedbackUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, fb *domain.Feedback) (*domain.Feedback, error)
}

type ListFeedbackUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Feedback, int, error)
}
