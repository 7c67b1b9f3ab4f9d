package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// SystemConfigRepositoryPort - хранилище системной конфигурации.
// Save обязан атомарно поддерживать инвариант "активна максимум одна":
// запись активной конфигурации деактивирует все остальные.
type SystemConfigRepositoryPort interface {
	Save(ctx context.Context, cfg *domain.SystemConfig) error
	GetActive(ctx context.Context) (*domain.SystemConfig, error)
	List(ctx context.Context) ([]domain.SystemConfig, error)
}

type AnnouncementRepositoryPort interface {
	Save(ctx context.Context, a *domain.Announcement) error
	ListActive(ctx context.Context, audience string) ([]domain.Announcement, error)
}

type ContactRepositoryPort interface {
	Create(ctx context.Context, c *domain.ContactUs) error
	List(ctx context.Context, limit, offset int) ([]domain.ContactUs, int, error)
}

type FAQRepositoryPort interface {
	Save(ctx context.Context, faq *domain.FAQ) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.FAQ, error)
	ListActive(ctx context.Context, category string) ([]domain.FAQ, error)
	IncrementHelpful(ctx context.Context, id uuid.UUID, helpful bool) error
}

type LegalDocumentRepositoryPort interface {
	Save(ctx context.Context, doc *domain.LegalDocument) error
	ListActive(ctx context.Context) ([]domain.LegalDocument, error)
}
