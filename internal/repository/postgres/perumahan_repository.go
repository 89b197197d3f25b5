package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/pkg/errors"
)

const (
	perumahanColumns = `id, name, slug, photo, description, price, address,
		location, polygon, facilities, status, created_at`

	uniqueViolationCode = "23505"
)

type perumahanRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewPerumahanRepository создает новый экземпляр PerumahanRepository
func NewPerumahanRepository(db *DB) repository.PerumahanRepository {
	return &perumahanRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// GetBySlug возвращает объявление по slug
func (r *perumahanRepository) GetBySlug(ctx context.Context, slug string) (*domain.Perumahan, error) {
	query := `SELECT ` + perumahanColumns + ` FROM perumahan WHERE slug = $1`

	var p domain.Perumahan
	err := r.db.GetContext(ctx, &p, query, slug)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPerumahanNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get perumahan by slug", zap.String("slug", slug), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &p, nil
}

// GetByID возвращает объявление по ID
func (r *perumahanRepository) GetByID(ctx context.Context, id int64) (*domain.Perumahan, error) {
	query := `SELECT ` + perumahanColumns + ` FROM perumahan WHERE id = $1`

	var p domain.Perumahan
	err := r.db.GetContext(ctx, &p, query, id)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.ErrPerumahanNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get perumahan by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &p, nil
}

// List возвращает все объявления в порядке вставки
func (r *perumahanRepository) List(ctx context.Context) ([]*domain.Perumahan, error) {
	query := `SELECT ` + perumahanColumns + ` FROM perumahan ORDER BY id`

	items := make([]*domain.Perumahan, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		r.logger.Error("Failed to list perumahan", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}

// Search - список для админки, новые сверху
func (r *perumahanRepository) Search(ctx context.Context, filter repository.PerumahanFilter) ([]*domain.Perumahan, error) {
	var (
		conditions []string
		args       []interface{}
	)

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR address ILIKE $%d)", len(args), len(args)))
	}

	if !filter.CreatedFrom.IsZero() {
		args = append(args, filter.CreatedFrom)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}

	if !filter.CreatedBefore.IsZero() {
		args = append(args, filter.CreatedBefore)
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", len(args)))
	}

	query := `SELECT ` + perumahanColumns + ` FROM perumahan`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	items := make([]*domain.Perumahan, 0)
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		r.logger.Error("Failed to search perumahan",
			zap.String("status", string(filter.Status)),
			zap.String("query", filter.Query),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return items, nil
}

// SlugExists проверяет, занят ли slug другим объявлением
func (r *perumahanRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM perumahan WHERE slug = $1 AND id <> $2)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, slug, excludeID); err != nil {
		r.logger.Error("Failed to check slug", zap.String("slug", slug), zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

// Create вставляет объявление; ID и created_at назначает база
func (r *perumahanRepository) Create(ctx context.Context, p *domain.Perumahan) error {
	query := `
		INSERT INTO perumahan (
			name, slug, photo, description, price, address,
			location, polygon, facilities, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`

	err := r.db.QueryRowxContext(ctx, query,
		p.Name, p.Slug, p.PhotoPath, p.Description, p.Price, p.Address,
		p.Location, p.Polygon, facilitiesArray(p.Facilities), string(p.Status),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.ErrSlugConflict
		}
		r.logger.Error("Failed to create perumahan", zap.String("slug", p.Slug), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// Update перезаписывает изменяемые поля; slug и created_at не трогаются
func (r *perumahanRepository) Update(ctx context.Context, p *domain.Perumahan) error {
	query := `
		UPDATE perumahan SET
			name = $1, photo = $2, description = $3, price = $4, address = $5,
			location = $6, polygon = $7, facilities = $8, status = $9
		WHERE id = $10
	`

	res, err := r.db.ExecContext(ctx, query,
		p.Name, p.PhotoPath, p.Description, p.Price, p.Address,
		p.Location, p.Polygon, facilitiesArray(p.Facilities), string(p.Status),
		p.ID,
	)
	if err != nil {
		r.logger.Error("Failed to update perumahan", zap.Int64("id", p.ID), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return requireAffected(res, r.logger, p.ID)
}

// Delete удаляет объявление
func (r *perumahanRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM perumahan WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete perumahan", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	return requireAffected(res, r.logger, id)
}

func requireAffected(res sql.Result, logger *zap.Logger, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		logger.Error("Failed to read affected rows", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}
	if n == 0 {
		return errors.ErrPerumahanNotFound
	}
	return nil
}

// facilitiesArray - NOT NULL колонка, nil пишем как пустой массив
func facilitiesArray(f pq.StringArray) pq.StringArray {
	if f == nil {
		return pq.StringArray{}
	}
	return f
}

// Драйвер в проде pgx, в тестах lib/pq - проверяем оба типа ошибок
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
