package usecase

import (
	"context"
	"time"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
)

// CreateAdRequestUseCase создает заявку на рекламное размещение.
// Заявка всегда стартует в статусе pending, решение принимает модератор.
type CreateAdRequestUseCase struct {
	adRequests port.AdRequestRepositoryPort
	campaigns  port.CampaignRepositoryPort
}

func NewCreateAdRequestUseCase(adRequests port.AdRequestRepositoryPort, campaigns port.CampaignRepositoryPort) *CreateAdRequestUseCase {
	return &CreateAdRequestUseCase{adRequests: adRequests, campaigns: campaigns}
}

func (uc *CreateAdRequestUseCase) Execute(ctx context.Context, actor *domain.Claims, request *domain.AdRequest) (*domain.AdRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CreateAdRequest"})

	ucLogger.Info("Use case started", nil)

	if actor == nil {
		return nil, domain.ErrForbidden
	}

	// Заявка может ссылаться только на собственную кампанию автора.
	if request.CampaignID != nil {
		campaign, err := uc.campaigns.FindByID(ctx, *request.CampaignID)
		if err != nil {
			ucLogger.Error("Repository returned an error while fetching campaign", err, nil)
			return nil, err
		}
		if campaign == nil || campaign.UserID != actor.UserID {
			vErr := domain.NewValidationError()
			vErr.Add("campaign_id", "campaign does not exist or belongs to another user")
			return nil, vErr
		}
	}

	request.ID = uuid.New()
	request.UserID = actor.UserID
	request.Status = domain.AdRequestPending
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now

	if err := request.Validate(); err != nil {
		ucLogger.Warn("Ad request validation failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if err := uc.adRequests.Create(ctx, request); err != nil {
		ucLogger.Error("Repository failed to create ad request", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished: ad request created", port.Fields{"request_id": request.ID.String()})
	return request, nil
}

// ListAdRequestsUseCase: пользователь видит свои заявки, администратор —
// все, с необязательным фильтром по статусу.
type ListAdRequestsUseCase struct {
	adRequests port.AdRequestRepositoryPort
}

func NewListAdRequestsUseCase(adRequests port.AdRequestRepositoryPort) *ListAdRequestsUseCase {
	return &ListAdRequestsUseCase{adRequests: adRequests}
}

func (uc *ListAdRequestsUseCase) Execute(ctx context.Context, actor *domain.Claims, status string, page domain.Pagination) ([]domain.AdRequest, int, error) {
	if actor == nil {
		return nil, 0, domain.ErrForbidden
	}
	if actor.IsAdmin() {
		return uc.adRequests.ListAll(ctx, status, page.PerPage, page.Offset())
	}
	return uc.adRequests.ListByUser(ctx, actor.UserID, page.PerPage, page.Offset())
}

// ResolveAdRequestUseCase — решение модератора по заявке: approve или
// reject. Переход возможен только из pending, повторное решение отклоняется.
type ResolveAdRequestUseCase struct {
	adRequests port.AdRequestRepositoryPort
}

func NewResolveAdRequestUseCase(adRequests port.AdRequestRepositoryPort) *ResolveAdRequestUseCase {
	return &ResolveAdRequestUseCase{adRequests: adRequests}
}

func (uc *ResolveAdRequestUseCase) Execute(ctx context.Context, actor *domain.Claims, requestID uuid.UUID, approve bool) (*domain.AdRequest, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ResolveAdRequest",
		"request_id": requestID.String(),
	})

	if !actor.IsAdmin() {
		ucLogger.Warn("Access denied: admin role required", nil)
		return nil, domain.ErrForbidden
	}

	request, err := uc.adRequests.FindByID(ctx, requestID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}
	if request == nil {
		return nil, domain.ErrNotFound
	}

	if approve {
		err = request.Approve()
	} else {
		err = request.Reject()
	}
	if err != nil {
		ucLogger.Warn("Invalid status transition", port.Fields{"status": request.Status})
		return nil, err
	}

	if err := uc.adRequests.Update(ctx, request); err != nil {
		ucLogger.Error("Repository failed to update ad request", err, nil)
		return nil, err
	}

	ucLogger.Info("Ad request resolved", port.Fields{"status": request.Status})
	return request, nil
}
