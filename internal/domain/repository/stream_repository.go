package repository

import (
	"context"
	"time"

	"github.com/perumahan-service/internal/domain"
)

// StreamRepository - чтение Redis Streams через consumer group
type StreamRepository interface {
	// CreateConsumerGroup создаёт consumer group (вместе со стримом, если его нет)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch читает до maxCount новых сообщений; пустой срез, если их нет
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// ClaimPending забирает на consumer неподтверждённые сообщения группы,
	// которые висят дольше minIdle (в том числе у consumer'ов, которых уже нет)
	ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error)

	// AckMessages подтверждает обработку сообщений
	AckMessages(ctx context.Context, stream, group string, messageIDs []string) error
}
