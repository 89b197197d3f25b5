package audit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/worker"
)

const (
	defaultBatchSize = 20
	errorBackoff     = time.Second

	// pendingMinIdle - через сколько неподтверждённое сообщение забирается повторно
	pendingMinIdle = 30 * time.Second
)

// EventRecorder - куда пишутся события (usecase.AuditUseCase)
type EventRecorder interface {
	Record(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error
}

// Worker переносит события из stream:perumahan:events в журнал аудита
type Worker struct {
	*worker.StreamWorker
	streamRepo repository.StreamRepository
	recorder   EventRecorder
	batchSize  int
	minIdle    time.Duration
}

// NewWorker создает новый audit Worker
func NewWorker(
	streamRepo repository.StreamRepository,
	recorder EventRecorder,
	stream string,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *Worker {
	if stream == "" {
		stream = domain.StreamPerumahanEvents
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Worker{
		StreamWorker: worker.NewStreamWorker("perumahan-audit", stream, consumerGroup, logger),
		streamRepo:   streamRepo,
		recorder:     recorder,
		batchSize:    batchSize,
		minIdle:      pendingMinIdle,
	}
}

// WithPendingMinIdle меняет порог повторной доставки pending-сообщений
func (w *Worker) WithPendingMinIdle(d time.Duration) *Worker {
	w.minIdle = d
	return w
}

// Start - основной цикл; ConsumeBatch сам ждёт новые сообщения
func (w *Worker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting audit worker",
		zap.String("stream", w.Stream()),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.ConsumerName()),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.Stream(), w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil
		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()
		default:
		}

		if _, err := w.ProcessBatch(ctx); err != nil {
			logger.Error("Failed to process batch", zap.Error(err))
			select {
			case <-time.After(errorBackoff):
			case <-w.StopChan():
			case <-ctx.Done():
			}
		}
	}
}

// ProcessBatch пишет в журнал пачку сообщений: сначала зависшие в pending
// дольше minIdle, а если таких нет - новые. Битые сообщения подтверждаются
// и пропускаются, сообщения с ошибкой записи остаются в pending и будут
// забраны повторно. Возвращает число подтверждённых.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ClaimPending(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.minIdle, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	if len(messages) == 0 {
		messages, err = w.streamRepo.ConsumeBatch(ctx, w.Stream(), w.ConsumerGroup(), w.ConsumerName(), w.batchSize)
		if err != nil {
			return 0, fmt.Errorf("failed to consume batch: %w", err)
		}
	}
	if len(messages) == 0 {
		return 0, nil
	}

	acked := make([]string, 0, len(messages))
	var recordErr error

	for _, msg := range messages {
		ev, err := domain.ParsePerumahanEvent(msg.Data)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			acked = append(acked, msg.ID)
			continue
		}

		if err := w.recorder.Record(ctx, ev, msg.ID); err != nil {
			logger.Error("Failed to record event",
				zap.String("message_id", msg.ID),
				zap.String("event_id", ev.ID.String()),
				zap.Error(err))
			recordErr = err
			continue
		}

		acked = append(acked, msg.ID)
	}

	if len(acked) > 0 {
		if err := w.streamRepo.AckMessages(ctx, w.Stream(), w.ConsumerGroup(), acked); err != nil {
			return 0, err
		}
	}

	logger.Debug("Batch processed",
		zap.Int("received", len(messages)),
		zap.Int("acked", len(acked)))

	if recordErr != nil {
		return len(acked), fmt.Errorf("failed to record %d events: %w", len(messages)-len(acked), recordErr)
	}
	return len(acked), nil
}
