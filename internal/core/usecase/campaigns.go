package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// Имя и версия контракта для правил таргетинга.
const (
	TargetingContract        = "CampaignTargeting"
	TargetingContractVersion = "1.0.0"
)

type CreateCampaignUseCase struct {
	campaigns port.CampaignRepositoryPort
	validator port.ContractValidatorPort
}

func NewCreateCampaignUseCase(campaigns port.CampaignRepositoryPort, validator port.ContractValidatorPort) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{campaigns: campaigns, validator: validator}
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, actor *domain.Claims, campaign *domain.AdCampaign) (*domain.AdCampaign, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateCampaign"})

	ucLogger.Info("Use case started", nil)

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	campaign.ID = uuid.New()
	campaign.UserID = actor.UserID
	if campaign.Status == "" {
		campaign.Status = domain.CampaignDraft
	}
	campaign.TotalSpent = 0
	now := time.Now().UTC()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	campaign.RecalculateRemainingBudget()

	if err := campaign.Validate(); err != nil {
		ucLogger.Warn("Campaign validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if len(campaign.Targeting) > 0 {
		if err := uc.validator.Validate(TargetingContract, TargetingContractVersion, campaign.Targeting); err != nil {
			ucLogger.Warn("Targeting payload rejected by contract", port.Fields{"error": err.Error()})
			vErr := domain.NewValidationError()
			vErr.Add("targeting", err.Error())
			return nil, vErr
		}
	}

	if err := uc.campaigns.Create(ctx, campaign); err != nil {
		ucLogger.Error("Repository failed to create campaign", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: campaign created", port.Fields{"campaign_id": campaign.ID.String()})
	return campaign, nil
}

type GetCampaignUseCase struct {
	campaigns port.CampaignRepositoryPort
}

func NewGetCampaignUseCase(campaigns port.CampaignRepositoryPort) *GetCampaignUseCase {
	return &GetCampaignUseCase{campaigns: campaigns}
}

func (uc *GetCampaignUseCase) Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) (*domain.AdCampaign, error) {
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
	return campaign, nil
}

type UpdateCampaignUseCase struct {
	campaigns port.CampaignRepositoryPort
	validator port.ContractValidatorPort
}

func NewUpdateCampaignUseCase(campaigns port.CampaignRepositoryPort, validator port.ContractValidatorPort) *UpdateCampaignUseCase {
	return &UpdateCampaignUseCase{campaigns: campaigns, validator: validator}
}

func (uc *UpdateCampaignUseCase) Execute(ctx context.Context, actor *domain.Claims, campaign *domain.AdCampaign) (*domain.AdCampaign, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateCampaign",
		"campaign_id": campaign.ID.String(),
	})

	existing, err := uc.campaigns.FindByID(ctx, campaign.ID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if !canModify(actor, existing.UserID) {
		ucLogger.Warn("Access denied: actor is not the owner", nil)
		return nil, domain.ErrForbidden
	}

	campaign.UserID = existing.UserID
	campaign.CreatedAt = existing.CreatedAt
	campaign.UpdatedAt = time.Now().UTC()
	// remaining_budget — производное поле, пересчитывается на каждую запись.
	campaign.RecalculateRemainingBudget()

	if err := campaign.Validate(); err != nil {
		ucLogger.Warn("Campaign validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if len(campaign.Targeting) > 0 {
		if err := uc.validator.Validate(TargetingContract, TargetingContractVersion, campaign.Targeting); err != nil {
			vErr := domain.NewValidationError()
			vErr.Add("targeting", err.Error())
			return nil, vErr
		}
	}

	if err := uc.campaigns.Update(ctx, campaign); err != nil {
		ucLogger.Error("Repository failed to update campaign", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: campaign updated", nil)
	return campaign, nil
}

type DeleteCampaignUseCase struct {
	campaigns port.CampaignRepositoryPort
}

func NewDeleteCampaignUseCase(campaigns port.CampaignRepositoryPort) *DeleteCampaignUseCase {
	return &DeleteCampaignUseCase{campaigns: campaigns}
}

func (uc *DeleteCampaignUseCase) Execute(ctx context.Context, actor *domain.Claims, campaignID uuid.UUID) error {
	campaign, err := uc.campaigns.FindByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return domain.ErrNotFound
	}
	if !canModify(actor, campaign.UserID) {
		return domain.ErrForbidden
	}
	return uc.campaigns.Delete(ctx, campaignID)
}

type ListCampaignsUseCase struct {
	campaigns port.CampaignRepositoryPort
}

func NewListCampaignsUseCase(campaigns port.CampaignRepositoryPort) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{campaigns: campaigns}
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, actor *domain.Claims, page domain.Pagination) ([]domain.AdCampaign, int, error) {
	if actor == nil {
		return nil, 0, domain.ErrForbidden
	}
	// Пользователь видит только свои кампании.
	return uc.campaigns.ListByUser(ctx, actor.UserID, page.PerPage, page.Offset())
}
