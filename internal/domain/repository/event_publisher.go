package repository

import "context"

// EventPublisher - публикация событий в стрим
type EventPublisher interface {
	// PublishToStream публикует сообщение в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
