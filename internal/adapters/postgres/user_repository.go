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

// UserRepository - реализация UserRepositoryPort для PostgreSQL.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) (*UserRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &UserRepository{pool: pool}, nil
}

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, account_status,
	latitude, longitude, min_price, max_price, min_bedrooms, min_bathrooms,
	privacy_level, created_at, updated_at`

// Create создает нового пользователя в БД.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Create",
		"user_id":   user.ID.String(),
	})

	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	var lat, lon *float64
	if user.Location != nil {
		lat, lon = &user.Location.Lat, &user.Location.Lon
	}

	repoLogger.Debug("Executing query to create user.", nil)
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Phone,
		user.Role, user.AccountStatus, lat, lon,
		user.SearchPreferences.MinPrice, user.SearchPreferences.MaxPrice,
		user.SearchPreferences.MinBedrooms, user.SearchPreferences.MinBathrooms,
		user.PrivacyLevel, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create user", err, nil)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var lat, lon *float64
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName, &user.Phone,
		&user.Role, &user.AccountStatus, &lat, &lon,
		&user.SearchPreferences.MinPrice, &user.SearchPreferences.MaxPrice,
		&user.SearchPreferences.MinBedrooms, &user.SearchPreferences.MinBathrooms,
		&user.PrivacyLevel, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if lat != nil && lon != nil {
		user.Location = &domain.Coordinate{Lat: *lat, Lon: *lon}
	}
	return &user, nil
}

// FindByEmail находит пользователя по email.
// Возвращает (nil, nil), если пользователь не найден.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := r.scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID - аналогично FindByEmail.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := r.scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return user, nil
}

// Update перезаписывает изменяемые поля пользователя.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "Update",
		"user_id":   user.ID.String(),
	})

	query := `UPDATE users SET
		first_name = $2, last_name = $3, phone = $4, account_status = $5,
		latitude = $6, longitude = $7, min_price = $8, max_price = $9,
		min_bedrooms = $10, min_bathrooms = $11, privacy_level = $12, updated_at = $13
		WHERE id = $1`

	var lat, lon *float64
	if user.Location != nil {
		lat, lon = &user.Location.Lat, &user.Location.Lon
	}

	repoLogger.Debug("Executing query to update user.", nil)
	tag, err := r.pool.Exec(ctx, query,
		user.ID, user.FirstName, user.LastName, user.Phone, user.AccountStatus,
		lat, lon,
		user.SearchPreferences.MinPrice, user.SearchPreferences.MaxPrice,
		user.SearchPreferences.MinBedrooms, user.SearchPreferences.MinBathrooms,
		user.PrivacyLevel, user.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to update user", err, nil)
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// FindInArea возвращает активных пользователей с локацией в квадрате.
func (r *UserRepository) FindInArea(ctx context.Context, area domain.BoundingBox, limit int) ([]domain.User, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "UserRepository",
		"method":    "FindInArea",
	})

	query := `SELECT ` + userColumns + ` FROM users
		WHERE account_status = 'active'
		  AND latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
		LIMIT $5`

	rows, err := r.pool.Query(ctx, query, area.MinLat, area.MaxLat, area.MinLon, area.MaxLon, limit)
	if err != nil {
		repoLogger.Error("Failed to query users in area", err, nil)
		return nil, fmt.Errorf("failed to query users in area: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	repoLogger.Debug("Users in area loaded.", port.Fields{"count": len(users)})
	return users, nil
}
