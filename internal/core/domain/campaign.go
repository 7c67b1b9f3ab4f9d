package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Статусы рекламной кампании.
const (
	CampaignDraft     = "draft"
	CampaignPending   = "pending"
	CampaignActive    = "active"
	CampaignPaused    = "paused"
	CampaignCompleted = "completed"
	CampaignRejected  = "rejected"
)

// AdCampaign — рекламная кампания пользователя.
// remaining_budget — производное поле: оно пересчитывается при каждом
// сохранении и всегда равно budget - total_spent.
type AdCampaign struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Name            string
	Status          string
	ApprovalStatus  string
	Budget          float64
	TotalSpent      float64
	RemainingBudget float64
	StartDate       *time.Time
	EndDate         *time.Time
	// Правила таргетинга — слабоструктурированный JSON; сверяется со схемой
	// контракта при приеме от клиента, дальше хранится как есть.
	Targeting json.RawMessage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecalculateRemainingBudget пересчитывает остаток бюджета.
// Вызывается перед каждым сохранением кампании.
func (c *AdCampaign) RecalculateRemainingBudget() {
	c.RemainingBudget = c.Budget - c.TotalSpent
}

// Validate проверяет поля кампании перед сохранением.
func (c *AdCampaign) Validate() error {
	vErr := NewValidationError()
	if c.UserID == uuid.Nil {
		vErr.Add("user_id", "is required")
	}
	if c.Name == "" {
		vErr.Add("name", "is required")
	}
	if c.Budget < 0 {
		vErr.Add("budget", "must be >= 0")
	}
	if c.TotalSpent < 0 {
		vErr.Add("total_spent", "must be >= 0")
	}
	switch c.Status {
	case CampaignDraft, CampaignPending, CampaignActive, CampaignPaused, CampaignCompleted, CampaignRejected:
	default:
		vErr.Add("status", "unknown campaign status")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// Banner — баннер, принадлежащий кампании.
type Banner struct {
	ID          uuid.UUID
	CampaignID  uuid.UUID
	Title       string
	ImageURL    string
	TargetURL   string
	Placement   string
	Priority    int
	Impressions int
	Clicks      int
	Conversions int
	IsActive    bool
	CreatedAt   time.Time
}

// Статусы заявки на рекламу. Заявка создается в pending; approved и
// rejected достижимы только из pending.
const (
	AdRequestPending    = "pending"
	AdRequestApproved   = "approved"
	AdRequestRejected   = "rejected"
	AdRequestInProgress = "in_progress"
	AdRequestCompleted  = "completed"
)

// Типы заявок на рекламу.
const (
	AdRequestNewAd           = "new_ad"
	AdRequestEditAd          = "edit_ad"
	AdRequestPriorityBoost   = "priority_boost"
	AdRequestExtension       = "extension"
	AdRequestCustomPlacement = "custom_placement"
)

// AdRequest — заявка пользователя на рекламное размещение. Модератор
// одобряет или отклоняет заявку, дальше она живет своим жизненным циклом.
type AdRequest struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CampaignID  *uuid.UUID
	Title       string
	Description string
	RequestType string
	Status      string
	// Предлагаемый бюджет; nil — заявка без бюджета (например, правка баннера).
	Budget    *float64
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *AdRequest) Validate() error {
	vErr := NewValidationError()
	if r.UserID == uuid.Nil {
		vErr.Add("user_id", "is required")
	}
	if r.Title == "" {
		vErr.Add("title", "is required")
	}
	switch r.RequestType {
	case AdRequestNewAd, AdRequestEditAd, AdRequestPriorityBoost, AdRequestExtension, AdRequestCustomPlacement:
	default:
		vErr.Add("request_type", "unknown request type")
	}
	switch r.Status {
	case AdRequestPending, AdRequestApproved, AdRequestRejected, AdRequestInProgress, AdRequestCompleted:
	default:
		vErr.Add("status", "unknown request status")
	}
	if r.Budget != nil && *r.Budget < 0 {
		vErr.Add("budget", "must be >= 0")
	}
	if r.StartDate.IsZero() {
		vErr.Add("start_date", "is required")
	}
	if vErr.HasErrors() {
		return vErr
	}
	return nil
}

// Approve переводит заявку из pending в approved.
func (r *AdRequest) Approve() error {
	return r.transition(AdRequestApproved)
}

// Reject переводит заявку из pending в rejected.
func (r *AdRequest) Reject() error {
	return r.transition(AdRequestRejected)
}

func (r *AdRequest) transition(target string) error {
	if r.Status != AdRequestPending {
		vErr := NewValidationError()
		vErr.Add("status", "only a pending request can be "+target)
		return vErr
	}
	r.Status = target
	r.UpdatedAt = time.Now().UTC()
	return nil
}

// Статусы транзакций.
const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
	TransactionRefunded  = "refunded"
)

// Transaction — сделка между покупателем и продавцом по объявлению.
type Transaction struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	BuyerID    uuid.UUID
	SellerID   uuid.UUID
	CampaignID *uuid.UUID
	Amount     float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
