package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/perumahan-service/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// streamMaxLen - примерный предел длины стрима (XADD MAXLEN ~)
const streamMaxLen = 10000

type streamPublisher struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamPublisher создает publisher событий поверх Redis Streams
func NewStreamPublisher(client *redis.Client, logger *zap.Logger) repository.EventPublisher {
	return &streamPublisher{
		client: client,
		logger: logger,
	}
}

// PublishToStream публикует JSON в поле "data" сообщения стрима
func (p *streamPublisher) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		p.logger.Error("Failed to marshal data",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()
	if err != nil {
		p.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	p.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", id))
	return nil
}

type noopPublisher struct {
	logger *zap.Logger
}

// NewNoopPublisher - publisher для запуска без Redis, события только логируются
func NewNoopPublisher(logger *zap.Logger) repository.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishToStream(_ context.Context, stream string, data interface{}) error {
	p.logger.Debug("Event publishing disabled, dropping message", zap.String("stream", stream))
	return nil
}
