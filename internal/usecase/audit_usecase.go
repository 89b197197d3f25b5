package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// AuditUseCase - журнал изменений объявлений
type AuditUseCase struct {
	events repository.EventLogRepository
	logger *zap.Logger
}

// NewAuditUseCase - создание нового AuditUseCase
func NewAuditUseCase(events repository.EventLogRepository, logger *zap.Logger) *AuditUseCase {
	return &AuditUseCase{
		events: events,
		logger: logger,
	}
}

// Record сохраняет событие, прочитанное из стрима
func (uc *AuditUseCase) Record(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error {
	if err := uc.events.Append(ctx, ev, streamID); err != nil {
		return err
	}

	uc.logger.Debug("Perumahan event recorded",
		zap.String("event_id", ev.ID.String()),
		zap.String("type", string(ev.Type)),
		zap.Int64("perumahan_id", ev.PerumahanID))
	return nil
}

// History - последние события объявления; limit <= 0 означает значение по умолчанию
func (uc *AuditUseCase) History(ctx context.Context, perumahanID int64, limit int) ([]*domain.EventRecord, error) {
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}

	return uc.events.ListByPerumahan(ctx, perumahanID, limit)
}
