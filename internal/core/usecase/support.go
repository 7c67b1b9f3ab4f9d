package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateTicketUseCase struct {
	tickets port.SupportTicketRepositoryPort
}

func NewCreateTicketUseCase(tickets port.SupportTicketRepositoryPort) *CreateTicketUseCase {
	return &CreateTicketUseCase{tickets: tickets}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, actor *domain.Claims, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateTicket"})

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	ticket.ID = uuid.New()
	ticket.UserID = actor.UserID
	ticket.Status = domain.TicketOpen
	if ticket.Priority == "" {
		ticket.Priority = "normal"
	}
	now := time.Now().UTC()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	if err := ticket.Validate(); err != nil {
		ucLogger.Warn("Ticket validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.tickets.Create(ctx, ticket); err != nil {
		ucLogger.Error("Repository failed to create ticket", err, nil)
		return nil, err
	}

	ucLogger.Info("Support ticket created", port.Fields{"ticket_id": ticket.ID.String()})
	return ticket, nil
}

type UpdateTicketUseCase struct {
	tickets port.SupportTicketRepositoryPort
}

func NewUpdateTicketUseCase(tickets port.SupportTicketRepositoryPort) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{tickets: tickets}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, actor *domain.Claims, ticket *domain.SupportTicket) (*domain.SupportTicket, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "UpdateTicket",
		"ticket_id": ticket.ID.String(),
	})

	existing, err := uc.tickets.FindByID(ctx, ticket.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if !canModify(actor, existing.UserID) {
		ucLogger.Warn("Access denied", nil)
		return nil, domain.ErrForbidden
	}

	// Владелец меняет тему и описание; статус, приоритет и назначение
	// меняет только администратор.
	existing.Subject = ticket.Subject
	existing.Description = ticket.Description
	if actor.IsAdmin() {
		existing.Status = ticket.Status
		existing.Priority = ticket.Priority
		existing.AssignedTo = ticket.AssignedTo
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return nil, err
	}

	if err := uc.tickets.Update(ctx, existing); err != nil {
		ucLogger.Error("Repository failed to update ticket", err, nil)
		return nil, err
	}

	ucLogger.Info("Support ticket updated", nil)
	return existing, nil
}

type ListTicketsUseCase struct {
	tickets port.SupportTicketRepositoryPort
}

func NewListTicketsUseCase(tickets port.SupportTicketRepositoryPort) *ListTicketsUseCase {
	return &ListTicketsUseCase{tickets: tickets}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.SupportTicket, int, error) {
	if actor == nil {
		return nil, 0, domain.ErrForbidden
	}
	return uc.tickets.ListByUser(ctx, actor.UserID, page.PerPage, page.Offset())
}

type CreateFeedbackUseCase struct {
	feedback port.FeedbackRepositoryPort
}

func NewCreateFeedbackUseCase(feedback port.FeedbackRepositoryPort) *CreateFeedbackUseCase {
	return &CreateFeedbackUseCase{feedback: feedback}
}

func (uc *CreateFeedbackUseCase) Execute(ctx context.Context, actor *domain.Claims, fb *domain.Feedback) (*domain.Feedback, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	fb.ID = uuid.New()
	fb.UserID = actor.UserID
	fb.CreatedAt = time.Now().UTC()

	if err := fb.Validate(); err != nil {
		return nil, err
	}

	if err := uc.feedback.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

// ListFeedbackUseCase: сводка отзывов доступна только администраторам.
type ListFeedbackUseCase struct {
	feedback port.FeedbackRepositoryPort
}

func NewListFeedbackUseCase(feedback port.FeedbackRepositoryPort) *ListFeedbackUseCase {
	return &ListFeedbackUseCase{feedback: feedback}
}

func (uc *ListFeedbackUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Feedback, int, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrForbidden
	}
	return uc.feedback.List(ctx, page.PerPage, page.Offset())
}
