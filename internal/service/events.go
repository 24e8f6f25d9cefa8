package service

import (
	"context"

	"github.com/shenikar/animal_patrol_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// notify публикует событие; изменение уже зафиксировано, поэтому ошибка только логируется
func notify(ctx context.Context, publisher webhook.Publisher, log *logrus.Entry, event webhook.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish event")
	}
}
