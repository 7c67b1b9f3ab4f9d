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

// SystemConfigRepository - реализация SystemConfigRepositoryPort для PostgreSQL.
type SystemConfigRepository struct {
	pool *pgxpool.Pool
}

func NewSystemConfigRepository(pool *pgxpool.Pool) (*SystemConfigRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SystemConfigRepository{pool: pool}, nil
}

const systemConfigColumns = `id, site_name, maintenance_mode, max_upload_size_mb, support_email, is_active, created_at, updated_at`

func scanSystemConfig(row pgx.Row) (*domain.SystemConfig, error) {
	var c domain.SystemConfig
	err := row.Scan(
		&c.ID, &c.SiteName, &c.MaintenanceMode, &c.MaxUploadSizeMB,
		&c.SupportEmail, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Save пишет конфигурацию в транзакции: если запись активна, все
// остальные деактивируются тем же коммитом.
func (r *SystemConfigRepository) Save(ctx context.Context, cfg *domain.SystemConfig) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SystemConfigRepository",
		"method":    "Save",
		"config_id": cfg.ID.String(),
	})

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if cfg.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE system_configs SET is_active = false WHERE id <> $1 AND is_active = true`, cfg.ID); err != nil {
			repoLogger.Error("Failed to deactivate previous configs", err, nil)
			return fmt.Errorf("failed to deactivate previous configs: %w", err)
		}
	}

	query := `INSERT INTO system_configs (` + systemConfigColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			site_name = EXCLUDED.site_name,
			maintenance_mode = EXCLUDED.maintenance_mode,
			max_upload_size_mb = EXCLUDED.max_upload_size_mb,
			support_email = EXCLUDED.support_email,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at`

	_, err = tx.Exec(ctx, query,
		cfg.ID, cfg.SiteName, cfg.MaintenanceMode, cfg.MaxUploadSizeMB,
		cfg.SupportEmail, cfg.IsActive, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to upsert system config", err, nil)
		return fmt.Errorf("failed to upsert system config: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit system config: %w", err)
	}
	return nil
}

func (r *SystemConfigRepository) GetActive(ctx context.Context) (*domain.SystemConfig, error) {
	query := `SELECT ` + systemConfigColumns + ` FROM system_configs WHERE is_active = true LIMIT 1`

	cfg, err := scanSystemConfig(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active system config: %w", err)
	}
	return cfg, nil
}

func (r *SystemConfigRepository) List(ctx context.Context) ([]domain.SystemConfig, error) {
	query := `SELECT ` + systemConfigColumns + ` FROM system_configs ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query system configs: %w", err)
	}
	defer rows.Close()

	configs := make([]domain.SystemConfig, 0)
	for rows.Next() {
		c, err := scanSystemConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan system config row: %w", err)
		}
		configs = append(configs, *c)
	}
	return configs, rows.Err()
}

// AnnouncementRepository - реализация AnnouncementRepositoryPort для PostgreSQL.
type AnnouncementRepository struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepository(pool *pgxpool.Pool) (*AnnouncementRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &AnnouncementRepository{pool: pool}, nil
}

const announcementColumns = `id, title, content, target_audience, is_active, publish_from, publish_until, created_at`

func (r *AnnouncementRepository) Save(ctx context.Context, a *domain.Announcement) error {
	query := `INSERT INTO announcements (` + announcementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			target_audience = EXCLUDED.target_audience,
			is_active = EXCLUDED.is_active,
			publish_from = EXCLUDED.publish_from,
			publish_until = EXCLUDED.publish_until`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Title, a.Content, a.TargetAudience, a.IsActive, a.PublishFrom, a.PublishUntil, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}

// ListActive отбирает активные объявления внутри окна публикации.
// Пустая аудитория означает "для всех".
func (r *AnnouncementRepository) ListActive(ctx context.Context, audience string) ([]domain.Announcement, error) {
	query := `SELECT ` + announcementColumns + ` FROM announcements
		WHERE is_active = true
		  AND (publish_from IS NULL OR publish_from <= now())
		  AND (publish_until IS NULL OR publish_until > now())`
	args := []interface{}{}
	if audience != "" {
		query += ` AND target_audience = $1`
		args = append(args, audience)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Announcement, 0)
	for rows.Next() {
		var a domain.Announcement
		err := rows.Scan(&a.ID, &a.Title, &a.Content, &a.TargetAudience, &a.IsActive, &a.PublishFrom, &a.PublishUntil, &a.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// ContactRepository - реализация ContactRepositoryPort для PostgreSQL.
type ContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) (*ContactRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ContactRepository{pool: pool}, nil
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.ContactUs) error {
	query := `INSERT INTO contact_requests (id, name, email, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Email, c.Subject, c.Message, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert contact request: %w", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactUs, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact_requests`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count contact requests: %w", err)
	}

	query := `SELECT id, name, email, subject, message, created_at
		FROM contact_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query contact requests: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ContactUs, 0)
	for rows.Next() {
		var c domain.ContactUs
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan contact request row: %w", err)
		}
		items = append(items, c)
	}
	return items, total, rows.Err()
}

// FAQRepository - реализация FAQRepositoryPort для PostgreSQL.
type FAQRepository struct {
	pool *pgxpool.Pool
}

func NewFAQRepository(pool *pgxpool.Pool) (*FAQRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FAQRepository{pool: pool}, nil
}

const faqColumns = `id, category, question, answer, display_order, is_active, helpful_count, not_helpful_count, created_at`

func scanFAQ(row pgx.Row) (*domain.FAQ, error) {
	var f domain.FAQ
	err := row.Scan(
		&f.ID, &f.Category, &f.Question, &f.Answer, &f.DisplayOrder,
		&f.IsActive, &f.HelpfulCount, &f.NotHelpfulCount, &f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FAQRepository) Save(ctx context.Context, faq *domain.FAQ) error {
	query := `INSERT INTO faqs (` + faqColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			category = EXCLUDED.category,
			question = EXCLUDED.question,
			answer = EXCLUDED.answer,
			display_order = EXCLUDED.display_order,
			is_active = EXCLUDED.is_active`

	_, err := r.pool.Exec(ctx, query,
		faq.ID, faq.Category, faq.Question, faq.Answer, faq.DisplayOrder,
		faq.IsActive, faq.HelpfulCount, faq.NotHelpfulCount, faq.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save faq: %w", err)
	}
	return nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE id = $1`

	faq, err := scanFAQ(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find faq by id: %w", err)
	}
	return faq, nil
}

func (r *FAQRepository) ListActive(ctx context.Context, category string) ([]domain.FAQ, error) {
	query := `SELECT ` + faqColumns + ` FROM faqs WHERE is_active = true`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY display_order, created_at`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query faqs: %w", err)
	}
	defer rows.Close()

	items := make([]domain.FAQ, 0)
	for rows.Next() {
		f, err := scanFAQ(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		items = append(items, *f)
	}
	return items, rows.Err()
}

func (r *FAQRepository) IncrementHelpful(ctx context.Context, id uuid.UUID, helpful bool) error {
	column := "not_helpful_count"
	if helpful {
		column = "helpful_count"
	}
	query := fmt.Sprintf(`UPDATE faqs SET %s = %s + 1 WHERE id = $1`, column, column)

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment faq vote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LegalDocumentRepository - реализация LegalDocumentRepositoryPort для PostgreSQL.
type LegalDocumentRepository struct {
	pool *pgxpool.Pool
}

func NewLegalDocumentRepository(pool *pgxpool.Pool) (*LegalDocumentRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &LegalDocumentRepository{pool: pool}, nil
}

const legalDocColumns = `id, document_type, version, title, content, effective_date, is_active, created_at`

// Save хранит документ с уникальностью пары (тип, версия): повторная
// запись той же версии обновляет содержимое.
func (r *LegalDocumentRepository) Save(ctx context.Context, doc *domain.LegalDocument) error {
	query := `INSERT INTO legal_documents (` + legalDocColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (document_type, version) DO UPDATE SET
			title = EXCLUDED.title,
			content = EXCLUDED.content,
			effective_date = EXCLUDED.effective_date,
			is_active = EXCLUDED.is_active`

	_, err := r.pool.Exec(ctx, query,
		doc.ID, doc.DocumentType, doc.Version, doc.Title, doc.Content,
		doc.EffectiveDate, doc.IsActive, doc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save legal document: %w", err)
	}
	return nil
}

func (r *LegalDocumentRepository) ListActive(ctx context.Context) ([]domain.LegalDocument, error) {
	query := `SELECT ` + legalDocColumns + ` FROM legal_documents
		WHERE is_active = true ORDER BY document_type, effective_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query legal documents: %w", err)
	}
	defer rows.Close()

	docs := make([]domain.LegalDocument, 0)
	for rows.Next() {
		var d domain.LegalDocument
		err := rows.Scan(&d.ID, &d.DocumentType, &d.Version, &d.Title, &d.Content, &d.EffectiveDate, &d.IsActive, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan legal document row: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
