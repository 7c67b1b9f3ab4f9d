package usecases_port

import (
	"context"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateCampaignUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, campaign *domain.AdCampaign) (*domain.AdCampaign, error)
}

type GetCampaignUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) (*domain.AdCampaign, error)
}

type UpdateCampaignUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, campaign *domain.AdCampaign) (*domain.AdCampaign, error)
}

type DeleteCampaignUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) error
}

type ListCampaignsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.AdCampaign, int, error)
}

type CreateAdRequestUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, request *domain.AdRequest) (*domain.AdRequest, error)
}

type ListAdRequestsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, status string, page domain.Pagination) ([]domain.AdRequest, int, error)
}

type ResolveAdRequestUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, requestID uuid.UUID, approve bool) (*domain.AdRequest, error)
}

type CreateBannerUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, banner *domain.Banner) (*domain.Banner, error)
}

type ListBannersUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) ([]domain.Banner, error)
}

type CreateTransactionUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, tx *domain.Transaction) (*domain.Transaction, error)
}

type ListTransactionsUseCase interface {
	Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.Transaction, int, error)
}
