package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// SaveSystemConfigUseCase сохраняет конфигурацию, поддерживая инвариант
// единственной активной записи.
type SaveSystemConfigUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, cfg *domain.SystemConfig) (*domain.SystemConfig, error)
}

type GetActiveConfigUseCase interface {
	Execute(ctx context.Context) (*domain.SystemConfig, error)
}

type ListSystemConfigsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims) ([]domain.SystemConfig, error)
}

type SaveAnnouncementUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, a *domain.Announcement) (*domain.Announcement, error)
}

type ListAnnouncementsUseCase interface {
	Execute(ctx context.Context, audience string) ([]domain.Announcement, error)
}

type SubmitContactUseCase interface {
	Execute(ctx context.Context, c *domain.ContactUs) (*domain.ContactUs, error)
}

type ListContactsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.ContactUs, int, error)
}

type SaveFAQUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, faq *domain.FAQ) (*domain.FAQ, error)
}

type ListFAQsUseCase interface {
	Execute(ctx context.Context, category string) ([]domain.FAQ, error)
}

type VoteFAQUseCase interface {
	Execute(ctx context.Context, faqID uuid.UUID, helpful bool) error
}

type SaveLegalDocumentUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, doc *domain.LegalDocument) (*domain.LegalDocument, error)
}

type ListLegalDocumentsUseCase interface {
	Execute(ctx context.Context) ([]domain.LegalDocument, error)
}
