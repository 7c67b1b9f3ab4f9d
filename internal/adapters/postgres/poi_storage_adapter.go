package postgres_adapter

import (
	"context"
	"fmt"

	"marketplace-service/internal/contextkeys"
	"marketplace-service/internal/core/domain"
	"marketplace-service/internal/core/port"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoiStorageAdapter - реализация PoiStoragePort для PostgreSQL.
// Остановки и школы лежат в отдельных таблицах с плоскими координатами,
// выборка по области использует BETWEEN по широте и долготе.
type PoiStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewPoiStorageAdapter(pool *pgxpool.Pool) (*PoiStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PoiStorageAdapter{pool: pool}, nil
}

func (s *PoiStorageAdapter) SaveTransitStation(ctx context.Context, station *domain.TransitStation) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PoiStorageAdapter",
		"method":     "SaveTransitStation",
		"station_id": station.ID.String(),
	})

	query := `INSERT INTO transit_stations (id, name, transit_type, latitude, longitude, operator)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.pool.Exec(ctx, query,
		station.ID, station.Name, station.TransitType,
		station.Location.Lat, station.Location.Lon, station.Operator,
	)
	if err != nil {
		repoLogger.Error("Failed to save transit station", err, nil)
		return fmt.Errorf("failed to save transit station: %w", err)
	}
	return nil
}

func (s *PoiStorageAdapter) SaveSchool(ctx context.Context, school *domain.School) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PoiStorageAdapter",
		"method":    "SaveSchool",
		"school_id": school.ID.String(),
	})

	query := `INSERT INTO schools (id, name, school_type, latitude, longitude, rating, student_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.pool.Exec(ctx, query,
		school.ID, school.Name, school.SchoolType,
		school.Location.Lat, school.Location.Lon, school.Rating, school.StudentCount,
	)
	if err != nil {
		repoLogger.Error("Failed to save school", err, nil)
		return fmt.Errorf("failed to save school: %w", err)
	}
	return nil
}

func (s *PoiStorageAdapter) FindTransitInArea(ctx context.Context, area domain.BoundingBox) ([]domain.TransitStation, error) {
	query := `SELECT id, name, transit_type, latitude, longitude, operator
		FROM transit_stations
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4`

	rows, err := s.pool.Query(ctx, query, area.MinLat, area.MaxLat, area.MinLon, area.MaxLon)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit stations in area: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.TransitStation, 0)
	for rows.Next() {
		var station domain.TransitStation
		err := rows.Scan(
			&station.ID, &station.Name, &station.TransitType,
			&station.Location.Lat, &station.Location.Lon, &station.Operator,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transit station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return stations, nil
}

func (s *PoiStorageAdapter) FindSchoolsInArea(ctx context.Context, area domain.BoundingBox) ([]domain.School, error) {
	query := `SELECT id, name, school_type, latitude, longitude, rating, student_count
		FROM schools
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4`

	rows, err := s.pool.Query(ctx, query, area.MinLat, area.MaxLat, area.MinLon, area.MaxLon)
	if err != nil {
		return nil, fmt.Errorf("failed to query schools in area: %w", err)
	}
	defer rows.Close()

	schools := make([]domain.School, 0)
	for rows.Next() {
		var school domain.School
		err := rows.Scan(
			&school.ID, &school.Name, &school.SchoolType,
			&school.Location.Lat, &school.Location.Lon, &school.Rating, &school.StudentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan school row: %w", err)
		}
		schools = append(schools, school)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return schools, nil
}
