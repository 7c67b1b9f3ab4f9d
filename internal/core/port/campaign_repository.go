package port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type CampaignRepositoryPort interface {
	Create(ctx context.Context, campaign *domain.AdCampaign) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AdCampaign, error)
	Update(ctx context.Context, campaign *domain.AdCampaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdCampaign, int, error)
}

type AdRequestRepositoryPort interface {
	Create(ctx context.Context, request *domain.AdRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AdRequest, error)
	Update(ctx context.Context, request *domain.AdRequest) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdRequest, int, error)
	// ListAll — административный список заявок; status == "" возвращает все.
	ListAll(ctx context.Context, status string, limit, offset int) ([]domain.AdRequest, int, error)
}

type BannerRepositoryPort interface {
	Create(ctx context.Context, banner *domain.Banner) error
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Banner, error)
}

type TransactionRepositoryPort interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	// ListByParticipant возвращает сделки, где пользователь выступает
	// покупателем или продавцом.
	ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error)
}
