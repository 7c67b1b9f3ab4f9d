package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemConfig — конфигурационная запись системы.
// Активной может быть максимум одна запись: сохранение активной
// конфигурации деактивирует все остальные (инвариант обеспечивает
// слой хранения при записи).
type SystemConfig struct {
	ID              uuid.UUID
	SiteName        string
	MaintenanceMode bool
	MaxUploadSizeMB int
	SupportEmail    string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Announcement — объявление для аудитории сайта.
type Announcement struct {
	ID             uuid.UUID
	Title          string
	Content        string
	TargetAudience string
	IsActive       bool
	PublishFrom    *time.Time
	PublishUntil   *time.Time
	CreatedAt      time.Time
}

// ContactUs — обращение через публичную форму обратной связи.
type ContactUs struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

// Validate проверяет публичную форму.
func (c *ContactUs) Validate() error {
	vErr := NewValidationError()
	if c.Name == "" {
		vErr.Add("name", "is required")
	}
	if c.Email == "" {
		vErr.Add("email", "is required")
	}
	if c.Message == "" {
		vErr.Add("message", "is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// FAQ — вопрос-ответ с голосованием за полезность.
type FAQ struct {
	ID              uuid.UUID
	Category        string
	Question        string
	Answer          string
	DisplayOrder    int
	IsActive        bool
	HelpfulCount    int
	NotHelpfulCount int
	CreatedAt       time.Time
}

// LegalDocument — юридический документ. Пара (тип, версия) уникальна.
type LegalDocument struct {
	ID            uuid.UUID
	DocumentType  string
	Version       string
	Title         string
	Content       string
	EffectiveDate time.Time
	IsActive      bool
	CreatedAt     time.Time
}
