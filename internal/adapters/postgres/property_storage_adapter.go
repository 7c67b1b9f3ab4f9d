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

// PropertyStorageAdapter - реализация PropertyStoragePort для PostgreSQL.
// Объект и его адрес пишутся в одной транзакции.
type PropertyStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPropertyStorageAdapter(pool *pgxpool.Pool) (*PropertyStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PropertyStorageAdapter{pool: pool}, nil
}

const propertySelect = `SELECT p.id, p.owner_id, p.property_type, p.status, p.year_built, p.lot_size_sqft,
	p.unit_number, p.floor_number, p.views_count, p.favorites_count, p.created_at, p.updated_at,
	a.id, a.street, a.city, a.state, a.postal_code, a.country, a.latitude, a.longitude, a.neighborhood
	FROM properties p JOIN addresses a ON p.address_id = a.id`

func (s *PropertyStorageAdapter) Save(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "Save",
		"property_id": property.ID.String(),
	})

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	addr := property.Address
	_, err = tx.Exec(ctx,
		`INSERT INTO addresses (id, street, city, state, postal_code, country, latitude, longitude, neighborhood)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		addr.ID, addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country,
		addr.Location.Lat, addr.Location.Lon, addr.Neighborhood,
	)
	if err != nil {
		repoLogger.Error("Failed to insert address", err, nil)
		return fmt.Errorf("failed to insert address: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO properties (id, owner_id, address_id, property_type, status, year_built, lot_size_sqft,
			unit_number, floor_number, views_count, favorites_count, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 0, 0, $10, $11)`,
		property.ID, property.OwnerID, addr.ID, property.PropertyType, property.Status,
		property.YearBuilt, property.LotSizeSqft, property.UnitNumber, property.FloorNumber,
		property.CreatedAt, property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to insert property", err, nil)
		return fmt.Errorf("failed to insert property: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Property saved.", nil)
	return nil
}

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.PropertyType, &p.Status, &p.YearBuilt, &p.LotSizeSqft,
		&p.UnitNumber, &p.FloorNumber, &p.ViewsCount, &p.FavoritesCount, &p.CreatedAt, &p.UpdatedAt,
		&p.Address.ID, &p.Address.Street, &p.Address.City, &p.Address.State, &p.Address.PostalCode,
		&p.Address.Country, &p.Address.Location.Lat, &p.Address.Location.Lon, &p.Address.Neighborhood,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PropertyStorageAdapter) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	property, err := scanProperty(s.pool.QueryRow(ctx, propertySelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find property by id: %w", err)
	}
	return property, nil
}

func (s *PropertyStorageAdapter) Update(ctx context.Context, property *domain.Property) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "PropertyStorageAdapter",
		"method":      "Update",
		"property_id": property.ID.String(),
	})

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	addr := property.Address
	_, err = tx.Exec(ctx,
		`UPDATE addresses SET street = $2, city = $3, state = $4, postal_code = $5, country = $6,
			latitude = $7, longitude = $8, neighborhood = $9
		 WHERE id = $1`,
		addr.ID, addr.Street, addr.City, addr.State, addr.PostalCode, addr.Country,
		addr.Location.Lat, addr.Location.Lon, addr.Neighborhood,
	)
	if err != nil {
		repoLogger.Error("Failed to update address", err, nil)
		return fmt.Errorf("failed to update address: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE properties SET property_type = $2, status = $3, year_built = $4, lot_size_sqft = $5,
			unit_number = $6, floor_number = $7, updated_at = $8
		 WHERE id = $1`,
		property.ID, property.PropertyType, property.Status, property.YearBuilt, property.LotSizeSqft,
		property.UnitNumber, property.FloorNumber, property.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update property", err, nil)
		return fmt.Errorf("failed to update property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return tx.Commit(ctx)
}

func (s *PropertyStorageAdapter) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *PropertyStorageAdapter) FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PropertyStorageAdapter",
		"method":    "FindWithFilters",
	})

	_, whereClause, args := applyPropertyFilters(filters)

	countQuery := `SELECT COUNT(*) FROM properties p JOIN addresses a ON p.address_id = a.id ` + whereClause
	var total int
	if err := s.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		repoLogger.Error("Failed to count properties", err, nil)
		return nil, 0, fmt.Errorf("failed to count properties: %w", err)
	}

	query := fmt.Sprintf("%s %s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d",
		propertySelect, whereClause, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query properties", err, nil)
		return nil, 0, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return properties, total, nil
}

func (s *PropertyStorageAdapter) CountInArea(ctx context.Context, area domain.BoundingBox) (int, error) {
	query := `SELECT COUNT(*) FROM properties p JOIN addresses a ON p.address_id = a.id
		WHERE a.latitude BETWEEN $1 AND $2 AND a.longitude BETWEEN $3 AND $4`

	var count int
	if err := s.pool.QueryRow(ctx, query, area.MinLat, area.MaxLat, area.MinLon, area.MaxLon).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count properties in area: %w", err)
	}
	return count, nil
}

func (s *PropertyStorageAdapter) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE properties SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment property views: %w", err)
	}
	return nil
}

func (s *PropertyStorageAdapter) IncrementFavorites(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `UPDATE properties SET favorites_count = favorites_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment property favorites: %w", err)
	}
	return nil
}
