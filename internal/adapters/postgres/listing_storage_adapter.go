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

// ListingStorageAdapter - реализация ListingStoragePort для PostgreSQL.
// Координаты объявления денормализованы в саму таблицу listings,
// геофильтр работает без join.
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

const listingColumns = `l.id, l.property_id, l.user_id, l.listing_type, l.title, l.description,
	l.price, l.bedrooms, l.bathrooms, l.square_feet, l.is_active,
	l.listed_date, l.contract_date, l.closing_date, l.days_on_market,
	l.views_count, l.inquiries_count, l.latitude, l.longitude, l.created_at, l.updated_at`

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	err := row.Scan(
		&l.ID, &l.PropertyID, &l.UserID, &l.ListingType, &l.Title, &l.Description,
		&l.Price, &l.Bedrooms, &l.Bathrooms, &l.SquareFeet, &l.IsActive,
		&l.ListedDate, &l.ContractDate, &l.ClosingDate, &l.DaysOnMarket,
		&l.ViewsCount, &l.InquiresCount, &l.Location.Lat, &l.Location.Lon, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *ListingStorageAdapter) Save(ctx context.Context, listing *domain.Listing) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingStorageAdapter",
		"method":     "Save",
		"listing_id": listing.ID.String(),
	})

	query := `INSERT INTO listings (id, property_id, user_id, listing_type, title, description,
		price, bedrooms, bathrooms, square_feet, is_active,
		listed_date, contract_date, closing_date, days_on_market,
		views_count, inquiries_count, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, 0, 0, $16, $17, $18, $19)`

	repoLogger.Debug("Executing query to insert listing.", nil)
	_, err := s.pool.Exec(ctx, query,
		listing.ID, listing.PropertyID, listing.UserID, listing.ListingType, listing.Title, listing.Description,
		listing.Price, listing.Bedrooms, listing.Bathrooms, listing.SquareFeet, listing.IsActive,
		listing.ListedDate, listing.ContractDate, listing.ClosingDate, listing.DaysOnMarket,
		listing.Location.Lat, listing.Location.Lon, listing.CreatedAt, listing.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert listing", err, nil)
		return fmt.Errorf("failed to insert listing: %w", err)
	}

	return nil
}

func (s *ListingStorageAdapter) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings l WHERE l.id = $1`

	listing, err := scanListing(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find listing by id: %w", err)
	}
	return listing, nil
}

func (s *ListingStorageAdapter) Update(ctx context.Context, listing *domain.Listing) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "ListingStorageAdapter",
		"method":     "Update",
		"listing_id": listing.ID.String(),
	})

	query := `UPDATE listings SET listing_type = $2, title = $3, description = $4,
		price = $5, bedrooms = $6, bathrooms = $7, square_feet = $8, is_active = $9,
		listed_date = $10, contract_date = $11, closing_date = $12, days_on_market = $13,
		updated_at = $14
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query,
		listing.ID, listing.ListingType, listing.Title, listing.Description,
		listing.Price, listing.Bedrooms, listing.Bathrooms, listing.SquareFeet, listing.IsActive,
		listing.ListedDate, listing.ContractDate, listing.ClosingDate, listing.DaysOnMarket,
		listing.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update listing", err, nil)
		return fmt.Errorf("failed to update listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (s *ListingStorageAdapter) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `UPDATE listings SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *ListingStorageAdapter) FindWithFilters(ctx context.Context, filters domain.ListingFilters, limit, offset int) (*domain.PaginatedListings, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ListingStorageAdapter",
		"method":    "FindWithFilters",
	})

	_, whereClause, args := applyListingFilters(filters)

	countQuery := `SELECT COUNT(*) FROM listings l ` + whereClause
	var total int
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count listings", err, nil)
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	query := fmt.Sprintf("SELECT %s FROM listings l %s ORDER BY l.listed_date DESC LIMIT $%d OFFSET $%d",
		listingColumns, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, nil)
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]domain.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing row: %w", err)
		}
		listings = append(listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	repoLogger.Debug("Listings loaded.", port.Fields{"count": len(listings), "total": total})
	return &domain.PaginatedListings{Listings: listings, TotalCount: total}, nil
}

// AggregateArea считает активные объявления, уникальные объекты и среднюю
// цену в квадрате одним запросом.
func (s *ListingStorageAdapter) AggregateArea(ctx context.Context, area domain.BoundingBox) (int, int, float64, error) {
	query := `SELECT COUNT(*), COUNT(DISTINCT property_id), COALESCE(AVG(price), 0)
		FROM listings
		WHERE is_active = true
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4`

	var listings, properties int
	var avgPrice float64
	err := s.pool.QueryRow(ctx, query, area.MinLat, area.MaxLat, area.MinLon, area.MaxLon).
		Scan(&listings, &properties, &avgPrice)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to aggregate listings in area: %w", err)
	}
	return listings, properties, avgPrice, nil
}

func (s *ListingStorageAdapter) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE listings SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment listing views: %w", err)
	}
	return nil
}

func (s *ListingStorageAdapter) IncrementInquiries(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE listings SET inquiries_count = inquiries_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment listing inquiries: %w", err)
	}
	return nil
}

func (s *ListingStorageAdapter) SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error {
	query := `INSERT INTO price_history (id, listing_id, old_price, new_price, change_percentage, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, query,
		entry.ID, entry.ListingID, entry.OldPrice, entry.NewPrice, entry.ChangePercentage, entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to insert price history: %w", err)
	}
	return nil
}

func (s *ListingStorageAdapter) GetPriceHistory(ctx context.Context, listingID uuid.UUID) ([]domain.PriceHistory, error) {
	query := `SELECT id, listing_id, old_price, new_price, change_percentage, changed_at
		FROM price_history WHERE listing_id = $1 ORDER BY changed_at DESC`

	rows, err := s.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.PriceHistory, 0)
	for rows.Next() {
		var e domain.PriceHistory
		if err := rows.Scan(&e.ID, &e.ListingID, &e.OldPrice, &e.NewPrice, &e.ChangePercentage, &e.ChangedAt); err != nil {
			return nil, fmt.Errorf("failed to scan price history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
