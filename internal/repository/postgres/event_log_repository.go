package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/pkg/errors"
)

type eventLogRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewEventLogRepository создает новый экземпляр EventLogRepository
func NewEventLogRepository(db *DB) repository.EventLogRepository {
	return &eventLogRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Append - идемпотентная запись: стрим доставляет at-least-once
func (r *eventLogRepository) Append(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error {
	query := `
		INSERT INTO perumahan_events (id, type, perumahan_id, slug, status, occurred_at, stream_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query,
		ev.ID, string(ev.Type), ev.PerumahanID, ev.Slug, string(ev.Status), ev.OccurredAt, streamID,
	)
	if err != nil {
		r.logger.Error("Failed to append perumahan event",
			zap.String("event_id", ev.ID.String()),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

// ListByPerumahan - история объявления, новые сверху
func (r *eventLogRepository) ListByPerumahan(ctx context.Context, perumahanID int64, limit int) ([]*domain.EventRecord, error) {
	query := `
		SELECT id, type, perumahan_id, slug, status, occurred_at, stream_id, recorded_at
		FROM perumahan_events
		WHERE perumahan_id = $1
		ORDER BY occurred_at DESC, recorded_at DESC
		LIMIT $2
	`

	records := make([]*domain.EventRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, perumahanID, limit); err != nil {
		r.logger.Error("Failed to list perumahan events",
			zap.Int64("perumahan_id", perumahanID),
			zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return records, nil
}
