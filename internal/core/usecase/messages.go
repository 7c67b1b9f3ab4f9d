package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

type SendMessageUseCase struct {
	messages port.MessageRepositoryPort
	users    port.UserRepositoryPort
}

func NewSendMessageUseCase(messages port.MessageRepositoryPort, users port.UserRepositoryPort) *SendMessageUseCase {
	return &SendMessageUseCase{messages: messages, users: users}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, actor *domain.Claims, msg *domain.Message) (*domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "SendMessage"})

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	msg.ID = uuid.New()
	msg.SenderID = actor.UserID
	msg.IsRead = false
	msg.ReadAt = nil
	msg.CreatedAt = time.Now().UTC()

	if err := msg.Validate(); err != nil {
		ucLogger.Warn("Message validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	recipient, err := uc.users.FindByID(ctx, msg.RecipientID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if recipient == nil || recipient.AccountStatus == domain.AccountDeleted {
		vErr := domain.NewValidationError()
		vErr.Add("recipient_id", "recipient does not exist")
		return nil, vErr
	}

	// Родитель треда должен существовать и принадлежать той же паре.
	if msg.ParentID != nil {
		parent, err := uc.messages.FindByID(ctx, *msg.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			vErr := domain.NewValidationError()
			vErr.Add("parent_id", "parent message does not exist")
			return nil, vErr
		}
	}

	if err := uc.messages.Create(ctx, msg); err != nil {
		ucLogger.Error("Repository failed to create message", err, nil)
		return nil, err
	}

	ucLogger.Info("Message sent", port.Fields{"message_id": msg.ID.String()})
	return msg, nil
}

type GetMessageUseCase struct {
	messages port.MessageRepositoryPort
}

func NewGetMessageUseCase(messages port.MessageRepositoryPort) *GetMessageUseCase {
	return &GetMessageUseCase{messages: messages}
}

func (uc *GetMessageUseCase) Execute(ctx context.Context, actor *domain.Claims, messageID uuid.UUID) (*domain.Message, error) {
	msg, err := uc.messages.FindByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if msg == nil {
		return nil, domain.ErrNotFound
	}
	// Сообщение видят только его участники.
	if actor == nil || (!actor.IsAdmin() && actor.UserID != msg.SenderID && actor.UserID != msg.RecipientID) {
		return nil, domain.ErrForbidden
	}
	return msg, nil
}

type ListMessagesUseCase struct {
	messages port.MessageRepositoryPort
}

func NewListMessagesUseCase(messages port.MessageRepositoryPort) *ListMessagesUseCase {
	return &ListMessagesUseCase{messages: messages}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Message, int, error) {
	if actor == nil {
		return nil, 0, domain.ErrForbidden
	}
	return uc.messages.ListForUser(ctx, actor.UserID, page.PerPage, page.Offset())
}

// MarkMessageReadUseCase идемпотентно помечает сообщение прочитанным.
// Повторный вызов не меняет read_at и не пишет в хранилище.
type MarkMessageReadUseCase struct {
	messages port.MessageRepositoryPort
}

func NewMarkMessageReadUseCase(messages port.MessageRepositoryPort) *MarkMessageReadUseCase {
	return &MarkMessageReadUseCase{messages: messages}
}

func (uc *MarkMessageReadUseCase) Execute(ctx context.Context, actor *domain.Claims, messageID uuid.UUID) (*domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "MarkMessageRead",
		"message_id": messageID.String(),
	})

	msg, err := uc.messages.FindByID(ctx, messageID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if msg == nil {
		return nil, domain.ErrNotFound
	}
	// Прочитать может только получатель.
	if actor == nil || actor.UserID != msg.RecipientID {
		ucLogger.Warn("Access denied: actor is not the recipient", nil)
		return nil, domain.ErrForbidden
	}

	if !msg.MarkAsRead() {
		ucLogger.Debug("Message already read, nothing to do", nil)
		return msg, nil
	}

	if err := uc.messages.Update(ctx, msg); err != nil {
		ucLogger.Error("Repository failed to persist read mark", err, nil)
		return nil, err
	}

	ucLogger.Info("Message marked as read", nil)
	return msg, nil
}
