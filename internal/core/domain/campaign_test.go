package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecalculateRemainingBudget(t *testing.T) {
	c := AdCampaign{Budget: 1000, TotalSpent: 250}
	c.RecalculateRemainingBudget()
	assert.Equal(t, 750.0, c.RemainingBudget)

	// Производное поле всегда перезаписывается, даже если пришло снаружи.
	c.RemainingBudget = 9999
	c.RecalculateRemainingBudget()
	assert.Equal(t, 750.0, c.RemainingBudget)
}

func TestAdCampaignValidate(t *testing.T) {
	valid := AdCampaign{
		UserID: uuid.New(),
		Name:   "spring push",
		Status: CampaignDraft,
		Budget: 500,
	}
	assert.NoError(t, valid.Validate())

	bad := AdCampaign{Status: "unknown", Budget: -5}
	err := bad.Validate()
	require.Error(t, err)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "user_id")
	assert.Contains(t, vErr.FieldErrors, "name")
	assert.Contains(t, vErr.FieldErrors, "status")
	assert.Contains(t, vErr.FieldErrors, "budget")
}

func TestAdRequestValidate(t *testing.T) {
	valid := AdRequest{
		UserID:      uuid.New(),
		Title:       "boost my listing",
		RequestType: AdRequestPriorityBoost,
		Status:      AdRequestPending,
		StartDate:   time.Now(),
	}
	assert.NoError(t, valid.Validate())

	negative := -1.0
	bad := AdRequest{RequestType: "banner", Status: "maybe", Budget: &negative}
	err := bad.Validate()
	require.Error(t, err)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "user_id")
	assert.Contains(t, vErr.FieldErrors, "title")
	assert.Contains(t, vErr.FieldErrors, "request_type")
	assert.Contains(t, vErr.FieldErrors, "status")
	assert.Contains(t, vErr.FieldErrors, "budget")
	assert.Contains(t, vErr.FieldErrors, "start_date")
}

func TestAdRequestTransitions(t *testing.T) {
	req := AdRequest{Status: AdRequestPending}
	require.NoError(t, req.Approve())
	assert.Equal(t, AdRequestApproved, req.Status)

	// Решение принимается один раз: одобренную заявку нельзя отклонить.
	err := req.Reject()
	require.Error(t, err)
	_, ok := AsValidationError(err)
	assert.True(t, ok)
	assert.Equal(t, AdRequestApproved, req.Status)

	rejected := AdRequest{Status: AdRequestPending}
	require.NoError(t, rejected.Reject())
	assert.Equal(t, AdRequestRejected, rejected.Status)

	completed := AdRequest{Status: AdRequestCompleted}
	assert.Error(t, completed.Approve())
}
