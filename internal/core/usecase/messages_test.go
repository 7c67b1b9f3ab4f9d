package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkMessageRead(t *testing.T) {
	repo := newFakeMessageRepo()
	recipientID := uuid.New()
	msg := domain.Message{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: recipientID,
		Body:        "is the apartment still available?",
	}
	require.NoError(t, repo.Create(context.Background(), &msg))

	uc := NewMarkMessageReadUseCase(repo)
	actor := &domain.Claims{UserID: recipientID}

	read, err := uc.Execute(context.Background(), actor, msg.ID)
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	require.NotNil(t, read.ReadAt)
	assert.Equal(t, 1, repo.updateCalls)

	// Повторный вызов идемпотентен: запись в хранилище не повторяется.
	again, err := uc.Execute(context.Background(), actor, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, *read.ReadAt, *again.ReadAt)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestMarkMessageReadOnlyRecipient(t *testing.T) {
	repo := newFakeMessageRepo()
	msg := domain.Message{
		ID:          uuid.New(),
		SenderID:    uuid.New(),
		RecipientID: uuid.New(),
		Body:        "hello",
	}
	require.NoError(t, repo.Create(context.Background(), &msg))

	uc := NewMarkMessageReadUseCase(repo)

	// Отправитель не может пометить сообщение прочитанным.
	_, err := uc.Execute(context.Background(), &domain.Claims{UserID: msg.SenderID}, msg.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = uc.Execute(context.Background(), nil, msg.ID)
	assert.True(t, errors.Is(err, domain.ErrForbidden))

	_, err = uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New()}, uuid.New())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSendMessageRejectsSelfAndUnknownRecipient(t *testing.T) {
	repo := newFakeMessageRepo()
	users := &fakeUserRepo{users: make(map[uuid.UUID]domain.User)}
	uc := NewSendMessageUseCase(repo, users)

	sender := uuid.New()
	actor := &domain.Claims{UserID: sender}

	// Получатель не существует.
	_, err := uc.Execute(context.Background(), actor, &domain.Message{
		RecipientID: uuid.New(),
		Body:        "hi",
	})
	require.Error(t, err)
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "recipient_id")

	// Сообщение самому себе отклоняется валидацией.
	_, err = uc.Execute(context.Background(), actor, &domain.Message{
		RecipientID: sender,
		Body:        "hi me",
	})
	require.Error(t, err)
	_, ok = domain.AsValidationError(err)
	assert.True(t, ok)
}
