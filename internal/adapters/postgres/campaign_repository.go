package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CampaignRepository - реализация CampaignRepositoryPort для PostgreSQL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

func NewCampaignRepository(pool *pgxpool.Pool) (*CampaignRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &CampaignRepository{pool: pool}, nil
}

const campaignColumns = `id, user_id, name, status, approval_status, budget, total_spent,
	remaining_budget, start_date, end_date, targeting, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.AdCampaign, error) {
	var c domain.AdCampaign
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Status, &c.ApprovalStatus, &c.Budget, &c.TotalSpent,
		&c.RemainingBudget, &c.StartDate, &c.EndDate, &c.Targeting, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign *domain.AdCampaign) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "CampaignRepository",
		"method":      "Create",
		"campaign_id": campaign.ID.String(),
	})

	query := `INSERT INTO ad_campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.pool.Exec(ctx, query,
		campaign.ID, campaign.UserID, campaign.Name, campaign.Status, campaign.ApprovalStatus,
		campaign.Budget, campaign.TotalSpent, campaign.RemainingBudget,
		campaign.StartDate, campaign.EndDate, campaign.Targeting, campaign.CreatedAt, campaign.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert campaign", err, nil)
		return fmt.Errorf("failed to insert campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AdCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM ad_campaigns WHERE id = $1`

	campaign, err := scanCampaign(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find campaign by id: %w", err)
	}
	return campaign, nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign *domain.AdCampaign) error {
	query := `UPDATE ad_campaigns SET name = $2, status = $3, approval_status = $4,
		budget = $5, total_spent = $6, remaining_budget = $7,
		start_date = $8, end_date = $9, targeting = $10, updated_at = $11
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		campaign.ID, campaign.Name, campaign.Status, campaign.ApprovalStatus,
		campaign.Budget, campaign.TotalSpent, campaign.RemainingBudget,
		campaign.StartDate, campaign.EndDate, campaign.Targeting, campaign.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ad_campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdCampaign, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ad_campaigns WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	query := `SELECT ` + campaignColumns + ` FROM ad_campaigns
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	campaigns := make([]domain.AdCampaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan campaign row: %w", err)
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, total, rows.Err()
}

// AdRequestRepository - реализация AdRequestRepositoryPort для PostgreSQL.
type AdRequestRepository struct {
	pool *pgxpool.Pool
}

func NewAdRequestRepository(pool *pgxpool.Pool) (*AdRequestRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AdRequestRepository{pool: pool}, nil
}

const adRequestColumns = `id, user_id, campaign_id, title, description, request_type,
	status, budget, start_date, end_date, created_at, updated_at`

func scanAdRequest(row pgx.Row) (*domain.AdRequest, error) {
	var r domain.AdRequest
	err := row.Scan(
		&r.ID, &r.UserID, &r.CampaignID, &r.Title, &r.Description, &r.RequestType,
		&r.Status, &r.Budget, &r.StartDate, &r.EndDate, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *AdRequestRepository) Create(ctx context.Context, request *domain.AdRequest) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "AdRequestRepository",
		"method":     "Create",
		"request_id": request.ID.String(),
	})

	query := `INSERT INTO ad_requests (` + adRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		request.ID, request.UserID, request.CampaignID, request.Title, request.Description, request.RequestType,
		request.Status, request.Budget, request.StartDate, request.EndDate, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert ad request", err, nil)
		return fmt.Errorf("failed to insert ad request: %w", err)
	}
	return nil
}

func (r *AdRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.AdRequest, error) {
	query := `SELECT ` + adRequestColumns + ` FROM ad_requests WHERE id = $1`

	request, err := scanAdRequest(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ad request by id: %w", err)
	}
	return request, nil
}

func (r *AdRequestRepository) Update(ctx context.Context, request *domain.AdRequest) error {
	query := `UPDATE ad_requests SET campaign_id = $2, title = $3, description = $4,
		request_type = $5, status = $6, budget = $7, start_date = $8, end_date = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		request.ID, request.CampaignID, request.Title, request.Description,
		request.RequestType, request.Status, request.Budget, request.StartDate, request.EndDate, request.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update ad request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AdRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdRequest, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ad_requests WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ad requests: %w", err)
	}

	query := `SELECT ` + adRequestColumns + ` FROM ad_requests
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ad requests: %w", err)
	}
	defer rows.Close()

	return collectAdRequests(rows, total)
}

func (r *AdRequestRepository) ListAll(ctx context.Context, status string, limit, offset int) ([]domain.AdRequest, int, error) {
	qb := newQueryBuilder()
	if status != "" {
		qb.addCondition("%s = $%d", "status", status)
	}
	_, where, args := qb.build()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM ad_requests `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count ad requests: %w", err)
	}

	query := fmt.Sprintf(`SELECT `+adRequestColumns+` FROM ad_requests %s
		ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)+1, len(args)+2)

	rows, err := r.pool.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query ad requests: %w", err)
	}
	defer rows.Close()

	return collectAdRequests(rows, total)
}

func collectAdRequests(rows pgx.Rows, total int) ([]domain.AdRequest, int, error) {
	requests := make([]domain.AdRequest, 0)
	for rows.Next() {
		req, err := scanAdRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan ad request row: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, total, rows.Err()
}

// BannerRepository - реализация BannerRepositoryPort для PostgreSQL.
type BannerRepository struct {
	pool *pgxpool.Pool
}

func NewBannerRepository(pool *pgxpool.Pool) (*BannerRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &BannerRepository{pool: pool}, nil
}

func (r *BannerRepository) Create(ctx context.Context, banner *domain.Banner) error {
	query := `INSERT INTO banners (id, campaign_id, title, image_url, target_url, placement,
		priority, impressions, clicks, conversions, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.pool.Exec(ctx, query,
		banner.ID, banner.CampaignID, banner.Title, banner.ImageURL, banner.TargetURL, banner.Placement,
		banner.Priority, banner.Impressions, banner.Clicks, banner.Conversions, banner.IsActive, banner.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}
	return nil
}

func (r *BannerRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Banner, error) {
	query := `SELECT id, campaign_id, title, image_url, target_url, placement,
		priority, impressions, clicks, conversions, is_active, created_at
		FROM banners WHERE campaign_id = $1 ORDER BY priority DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to query banners: %w", err)
	}
	defer rows.Close()

	banners := make([]domain.Banner, 0)
	for rows.Next() {
		var b domain.Banner
		err := rows.Scan(
			&b.ID, &b.CampaignID, &b.Title, &b.ImageURL, &b.TargetURL, &b.Placement,
			&b.Priority, &b.Impressions, &b.Clicks, &b.Conversions, &b.IsActive, &b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan banner row: %w", err)
		}
		banners = append(banners, b)
	}
	return banners, rows.Err()
}

// TransactionRepository - реализация TransactionRepositoryPort для PostgreSQL.
type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) (*TransactionRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &TransactionRepository{pool: pool}, nil
}

const transactionColumns = `id, listing_id, buyer_id, seller_id, campaign_id, amount, status, created_at, updated_at`

func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		tx.ID, tx.ListingID, tx.BuyerID, tx.SellerID, tx.CampaignID, tx.Amount, tx.Status, tx.CreatedAt, tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepository) ListByParticipant(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE buyer_id = $1 OR seller_id = $1`
	if err := r.pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions
		WHERE buyer_id = $1 OR seller_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txs := make([]domain.Transaction, 0)
	for rows.Next() {
		var t domain.Transaction
		err := rows.Scan(&t.ID, &t.ListingID, &t.BuyerID, &t.SellerID, &t.CampaignID, &t.Amount, &t.Status, &t.CreatedAt, &t.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, total, rows.Err()
}
