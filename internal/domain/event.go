package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StreamPerumahanEvents - стрим по умолчанию для событий об изменении объявлений
const StreamPerumahanEvents = "stream:perumahan:events"

// EventType - тип изменения
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// PerumahanEvent - событие, публикуемое после записи через админку
type PerumahanEvent struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Type        EventType `db:"type" json:"type"`
	PerumahanID int64     `db:"perumahan_id" json:"perumahan_id"`
	Slug        string    `db:"slug" json:"slug"`
	Status      Status    `db:"status" json:"status"`
	OccurredAt  time.Time `db:"occurred_at" json:"occurred_at"`
}

// NewPerumahanEvent создает событие для объявления
func NewPerumahanEvent(t EventType, p *Perumahan) PerumahanEvent {
	return PerumahanEvent{
		ID:          uuid.New(),
		Type:        t,
		PerumahanID: p.ID,
		Slug:        p.Slug,
		Status:      p.Status,
		OccurredAt:  time.Now().UTC(),
	}
}

// ParsePerumahanEvent разбирает JSON из поля "data" сообщения стрима
func ParsePerumahanEvent(data string) (*PerumahanEvent, error) {
	var ev PerumahanEvent
	if err := json.Unmarshal([]byte(data), &ev); err != nil {
		return nil, fmt.Errorf("unmarshal perumahan event: %w", err)
	}
	if ev.ID == uuid.Nil || ev.Type == "" {
		return nil, fmt.Errorf("perumahan event without id or type")
	}
	return &ev, nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}

// EventRecord - событие в журнале аудита вместе с ID сообщения стрима
type EventRecord struct {
	PerumahanEvent
	StreamID   string    `db:"stream_id" json:"stream_id"`
	RecordedAt time.Time `db:"recorded_at" json:"recorded_at"`
}
