package repository

import (
	"context"

	"github.com/perumahan-service/internal/domain"
)

// EventLogRepository - журнал аудита изменений объявлений
type EventLogRepository interface {
	// Append записывает событие; повторная запись того же ID игнорируется
	Append(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error

	// ListByPerumahan - история объявления, новые сверху
	ListByPerumahan(ctx context.Context, perumahanID int64, limit int) ([]*domain.EventRecord, error)
}
