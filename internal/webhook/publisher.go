package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

const (
	webhookQueueKey = "patrol_events"
)

// EventType - тип события для обновления интерфейса диспетчеров
type EventType string

const (
	EventIncidentCreated       EventType = "incident.created"
	EventIncidentStatusChanged EventType = "incident.status_changed"
	EventIncidentDeleted       EventType = "incident.deleted"
	EventScheduleCreated       EventType = "schedule.created"
	EventScheduleStaffChanged  EventType = "schedule.staff_changed"
	EventScheduleStatusChanged EventType = "schedule.status_changed"
)

// Event - структура для данных вебхука
type Event struct {
	Type           EventType  `json:"type"`
	IncidentID     uuid.UUID  `json:"incident_id"`
	ScheduleID     *uuid.UUID `json:"schedule_id,omitempty"`
	Status         string     `json:"status,omitempty"`
	PreviousStatus string     `json:"previous_status,omitempty"`
	Override       bool       `json:"override,omitempty"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая список Redis как очередь
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, используется когда очередь не настроена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
