package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// Баннеры доступны только владельцу кампании (или администратору).

type CreateBannerUseCase struct {
	banners   port.BannerRepositoryPort
	campaigns port.CampaignRepositoryPort
}

func NewCreateBannerUseCase(banners port.BannerRepositoryPort, campaigns port.CampaignRepositoryPort) *CreateBannerUseCase {
	return &CreateBannerUseCase{banners: banners, campaigns: campaigns}
}

func (uc *CreateBannerUseCase) Execute(ctx context.Context, actor *domain.Claims, banner *domain.Banner) (*domain.Banner, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateBanner"})

	campaign, err := uc.campaigns.FindByID(ctx, banner.CampaignID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if campaign == nil {
		vErr := domain.NewValidationError()
		vErr.Add("campaign_id", "campaign does not exist")
		return nil, vErr
	}
	if !canModify(actor, campaign.UserID) {
		ucLogger.Warn("Access denied: actor does not own the campaign", nil)
		return nil, domain.ErrForbidden
	}

	vErr := domain.NewValidationError()
	if banner.Title == "" {
		vErr.Add("title", "is required")
	}
	if banner.ImageURL == "" {
		vErr.Add("image_url", "is required")
	}
	if vErr.HasErrors() {
		return nil, vErr
	}

	banner.ID = uuid.New()
	banner.IsActive = true
	banner.CreatedAt = time.Now().UTC()

	if err := uc.banners.Create(ctx, banner); err != nil {
		ucLogger.Error("Repository failed to create banner", err, nil)
		return nil, err
	}

	ucLogger.Info("Banner created", port.Fields{"banner_id": banner.ID.String()})
	return banner, nil
}

type ListBannersUseCase struct {
	banners   port.BannerRepositoryPort
	campaigns port.CampaignRepositoryPort
}

func NewListBannersUseCase(banners port.BannerRepositoryPort, campaigns port.CampaignRepositoryPort) *ListBannersUseCase {
	return &ListBannersUseCase{banners: banners, campaigns: campaigns}
}

func (uc *ListBannersUseCase) Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) ([]domain.Banner, error) {
	campaign, err := uc.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, domain.ErrNotFound
	}
	if !canModify(actor, campaign.UserID) {
		return nil, domain.ErrForbidden
	}
	return uc.banners.ListByCampaign(ctx, campaignID)
}
