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

// OpenHouseStorageAdapter - реализация OpenHouseStoragePort для PostgreSQL.
type OpenHouseStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewOpenHouseStorageAdapter(pool *pgxpool.Pool) (*OpenHouseStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &OpenHouseStorageAdapter{pool: pool}, nil
}

const openHouseColumns = `id, listing_id, start_time, end_time, registration_required,
	max_attendees, attendees_count, created_at`

func scanOpenHouse(row pgx.Row) (*domain.OpenHouse, error) {
	var oh domain.OpenHouse
	err := row.Scan(
		&oh.ID, &oh.ListingID, &oh.StartTime, &oh.EndTime, &oh.RegistrationRequired,
		&oh.MaxAttendees, &oh.AttendeesCount, &oh.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &oh, nil
}

func (s *OpenHouseStorageAdapter) Save(ctx context.Context, oh *domain.OpenHouse) error {
	query := `INSERT INTO open_houses (id, listing_id, start_time, end_time, registration_required,
		max_attendees, attendees_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := s.pool.Exec(ctx, query,
		oh.ID, oh.ListingID, oh.StartTime, oh.EndTime, oh.RegistrationRequired,
		oh.MaxAttendees, oh.AttendeesCount, oh.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert open house: %w", err)
	}
	return nil
}

func (s *OpenHouseStorageAdapter) FindByID(ctx context.Context, id uuid.UUID) (*domain.OpenHouse, error) {
	query := `SELECT ` + openHouseColumns + ` FROM open_houses WHERE id = $1`

	oh, err := scanOpenHouse(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find open house by id: %w", err)
	}
	return oh, nil
}

func (s *OpenHouseStorageAdapter) Update(ctx context.Context, oh *domain.OpenHouse) error {
	query := `UPDATE open_houses SET start_time = $2, end_time = $3, registration_required = $4,
		max_attendees = $5, attendees_count = $6
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query,
		oh.ID, oh.StartTime, oh.EndTime, oh.RegistrationRequired, oh.MaxAttendees, oh.AttendeesCount,
	)
	if err != nil {
		return fmt.Errorf("failed to update open house: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *OpenHouseStorageAdapter) ListUpcoming(ctx context.Context, limit, offset int) ([]domain.OpenHouse, error) {
	query := `SELECT ` + openHouseColumns + ` FROM open_houses
		WHERE start_time > now() ORDER BY start_time ASC LIMIT $1 OFFSET $2`

	rows, err := s.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query upcoming open houses: %w", err)
	}
	defer rows.Close()

	result := make([]domain.OpenHouse, 0)
	for rows.Next() {
		oh, err := scanOpenHouse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan open house row: %w", err)
		}
		result = append(result, *oh)
	}
	return result, rows.Err()
}

// ClusterStorageAdapter - реализация ClusterStoragePort для PostgreSQL.
type ClusterStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewClusterStorageAdapter(pool *pgxpool.Pool) (*ClusterStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ClusterStorageAdapter{pool: pool}, nil
}

const clusterColumns = `id, name, center_latitude, center_longitude, radius_km,
	property_count, listing_count, avg_price, last_updated`

func scanCluster(row pgx.Row) (*domain.MapCluster, error) {
	var c domain.MapCluster
	err := row.Scan(
		&c.ID, &c.Name, &c.Center.Lat, &c.Center.Lon, &c.RadiusKm,
		&c.PropertyCount, &c.ListingCount, &c.AvgPrice, &c.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *ClusterStorageAdapter) List(ctx context.Context) ([]domain.MapCluster, error) {
	query := `SELECT ` + clusterColumns + ` FROM map_clusters ORDER BY name`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clusters: %w", err)
	}
	defer rows.Close()

	return collectClusters(rows)
}

func (s *ClusterStorageAdapter) FindByID(ctx context.Context, id uuid.UUID) (*domain.MapCluster, error) {
	query := `SELECT ` + clusterColumns + ` FROM map_clusters WHERE id = $1`

	cluster, err := scanCluster(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cluster by id: %w", err)
	}
	return cluster, nil
}

// FindContaining отбирает кластеры, чей квадрат (центр +- radius_km/111 градусов)
// содержит точку. Та же аппроксимация, что и в domain.NewBoundingBox.
func (s *ClusterStorageAdapter) FindContaining(ctx context.Context, point domain.Coordinate) ([]domain.MapCluster, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ClusterStorageAdapter",
		"method":    "FindContaining",
	})

	query := `SELECT ` + clusterColumns + ` FROM map_clusters
		WHERE $1 BETWEEN center_latitude - radius_km / $3 AND center_latitude + radius_km / $3
		  AND $2 BETWEEN center_longitude - radius_km / $3 AND center_longitude + radius_km / $3`

	rows, err := s.pool.Query(ctx, query, point.Lat, point.Lon, domain.KmPerDegree)
	if err != nil {
		repoLogger.Error("Failed to query containing clusters", err, nil)
		return nil, fmt.Errorf("failed to query containing clusters: %w", err)
	}
	defer rows.Close()

	return collectClusters(rows)
}

func (s *ClusterStorageAdapter) Save(ctx context.Context, cluster *domain.MapCluster) error {
	query := `INSERT INTO map_clusters (id, name, center_latitude, center_longitude, radius_km,
		property_count, listing_count, avg_price, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.pool.Exec(ctx, query,
		cluster.ID, cluster.Name, cluster.Center.Lat, cluster.Center.Lon, cluster.RadiusKm,
		cluster.PropertyCount, cluster.ListingCount, cluster.AvgPrice, cluster.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cluster: %w", err)
	}
	return nil
}

func (s *ClusterStorageAdapter) UpdateAggregates(ctx context.Context, cluster *domain.MapCluster) error {
	query := `UPDATE map_clusters SET property_count = $2, listing_count = $3,
		avg_price = $4, last_updated = $5
		WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query,
		cluster.ID, cluster.PropertyCount, cluster.ListingCount, cluster.AvgPrice, cluster.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to update cluster aggregates: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func collectClusters(rows pgx.Rows) ([]domain.MapCluster, error) {
	result := make([]domain.MapCluster, 0)
	for rows.Next() {
		c, err := scanCluster(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cluster row: %w", err)
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}
