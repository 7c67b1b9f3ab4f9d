package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message — личное сообщение между двумя пользователями.
// Треды строятся через ParentID (ссылка по идентификатору, не вложение).
type Message struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	Subject     string
	Body        string
	IsRead      bool
	ReadAt      *time.Time
	ParentID    *uuid.UUID
	CreatedAt   time.Time
}

// MarkAsRead помечает сообщение прочитанным. Повторный вызов — no-op:
// read_at ставится один раз и больше не меняется.
func (m *Message) MarkAsRead() bool {
	if m.IsRead {
		return false
	}
	now := time.Now().UTC()
	m.IsRead = true
	m.ReadAt = &now
	return true
}

// Validate проверяет сообщение перед отправкой.
func (m *Message) Validate() error {
	vErr := NewValidationError()
	if m.SenderID == uuid.Nil {
		vErr.Add("sender_id", "is required")
	}
	if m.RecipientID == uuid.Nil {
		vErr.Add("recipient_id", "is required")
	}
	if m.SenderID == m.RecipientID {
		vErr.Add("recipient_id", "cannot send message to yourself")
	}
	if m.Body == "" {
		vErr.Add("body", "is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// Статусы и приоритеты тикетов поддержки.
const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// SupportTicket — обращение пользователя в поддержку.
type SupportTicket struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    string
	Subject     string
	Description string
	Status      string
	Priority    string
	AssignedTo  *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate проверяет тикет перед созданием.
func (t *SupportTicket) Validate() error {
	vErr := NewValidationError()
	if t.UserID == uuid.Nil {
		vErr.Add("user_id", "is required")
	}
	if t.Subject == "" {
		vErr.Add("subject", "is required")
	}
	if t.Description == "" {
		vErr.Add("description", "is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// Feedback — отзыв пользователя о сервисе.
type Feedback struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

// Validate проверяет отзыв: рейтинг строго от 1 до 5.
func (f *Feedback) Validate() error {
	vErr := NewValidationError()
	if f.UserID == uuid.Nil {
		vErr.Add("user_id", "is required")
	}
	if f.Rating < 1 || f.Rating > 5 {
		vErr.Add("rating", "must be between 1 and 5")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
