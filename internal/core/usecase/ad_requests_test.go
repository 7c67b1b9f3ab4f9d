package usecase

import (
	"context"
	"testing"
	"time"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAdRequest(t *testing.T, repo *fakeAdRequestRepo, campaigns *fakeCampaignRepo, owner uuid.UUID) *domain.AdRequest {
	t.Helper()
	uc := NewCreateAdRequestUseCase(repo, campaigns)
	created, err := uc.Execute(context.Background(), &domain.Claims{UserID: owner, Role: domain.RoleSeller}, &domain.AdRequest{
		Title:       "Поднять объявление в выдаче",
		RequestType: domain.AdRequestPriorityBoost,
		StartDate:   time.Now().UTC().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	return created
}

func TestCreateAdRequestStartsPending(t *testing.T) {
	repo := newFakeAdRequestRepo()
	owner := uuid.New()

	created := pendingAdRequest(t, repo, newFakeCampaignRepo(), owner)

	assert.Equal(t, domain.AdRequestPending, created.Status)
	assert.Equal(t, owner, created.UserID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateAdRequestRejectsForeignCampaign(t *testing.T) {
	campaigns := newFakeCampaignRepo()
	campaign := domain.AdCampaign{ID: uuid.New(), UserID: uuid.New(), Name: "other", Status: domain.CampaignActive}
	require.NoError(t, campaigns.Create(context.Background(), &campaign))

	uc := NewCreateAdRequestUseCase(newFakeAdRequestRepo(), campaigns)
	_, err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New()}, &domain.AdRequest{
		CampaignID:  &campaign.ID,
		Title:       "extension",
		RequestType: domain.AdRequestExtension,
		StartDate:   time.Now().UTC(),
	})
	require.Error(t, err)
	vErr, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "campaign_id")
}

func TestResolveAdRequestTransitions(t *testing.T) {
	repo := newFakeAdRequestRepo()
	created := pendingAdRequest(t, repo, newFakeCampaignRepo(), uuid.New())

	uc := NewResolveAdRequestUseCase(repo)
	admin := &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}

	resolved, err := uc.Execute(context.Background(), admin, created.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.AdRequestApproved, resolved.Status)

	// Повторное решение по уже одобренной заявке отклоняется.
	_, err = uc.Execute(context.Background(), admin, created.ID, false)
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AdRequestApproved, stored.Status)
}

func TestResolveAdRequestAdminOnly(t *testing.T) {
	repo := newFakeAdRequestRepo()
	created := pendingAdRequest(t, repo, newFakeCampaignRepo(), uuid.New())

	uc := NewResolveAdRequestUseCase(repo)

	_, err := uc.Execute(context.Background(), &domain.Claims{UserID: created.UserID, Role: domain.RoleSeller}, created.ID, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Execute(context.Background(), nil, created.ID, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Execute(context.Background(), &domain.Claims{Role: domain.RoleModerator}, uuid.New(), true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAdRequestsScope(t *testing.T) {
	repo := newFakeAdRequestRepo()
	campaigns := newFakeCampaignRepo()
	owner := uuid.New()
	pendingAdRequest(t, repo, campaigns, owner)
	pendingAdRequest(t, repo, campaigns, uuid.New())

	uc := NewListAdRequestsUseCase(repo)
	page := domain.Pagination{Page: 1, PerPage: 20}

	// Пользователь видит только свои заявки.
	own, total, err := uc.Execute(context.Background(), &domain.Claims{UserID: owner, Role: domain.RoleSeller}, "", page)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, own, 1)
	assert.Equal(t, owner, own[0].UserID)

	// Администратор видит все.
	all, total, err := uc.Execute(context.Background(), &domain.Claims{UserID: uuid.New(), Role: domain.RoleAdmin}, "", page)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, all, 2)
}
