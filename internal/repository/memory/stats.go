package memory

import (
	"context"

	"github.com/shenikar/animal_patrol_system/internal/models"
)

type StatsRepository struct {
	db *Store
}

func NewStatsRepository(db *Store) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountIncidentsByStatus(_ context.Context) (map[models.IncidentStatus]int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[models.IncidentStatus]int)
	for _, incident := range r.db.incidents {
		counts[incident.Status]++
	}
	return counts, nil
}

func (r *StatsRepository) CountSchedulesByStatus(_ context.Context) (map[models.ScheduleStatus]int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[models.ScheduleStatus]int)
	for _, schedule := range r.db.schedules {
		counts[schedule.Status]++
	}
	return counts, nil
}
