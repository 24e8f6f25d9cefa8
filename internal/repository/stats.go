package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/service"
)

type StatsRepository struct {
	db *pgxpool.Pool
}

func NewStatsRepository(db *pgxpool.Pool) service.StatsRepository {
	return &StatsRepository{db: db}
}

// CountIncidentsByStatus считает обращения по статусам на момент запроса
func (r *StatsRepository) CountIncidentsByStatus(ctx context.Context) (map[models.IncidentStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM incidents GROUP BY status;`)
	if err != nil {
		return nil, storageError("failed to count incidents", err)
	}
	defer rows.Close()

	counts := make(map[models.IncidentStatus]int)
	for rows.Next() {
		var (
			status models.IncidentStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan incident count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error incident count iteration", err)
	}
	return counts, nil
}

func (r *StatsRepository) CountSchedulesByStatus(ctx context.Context) (map[models.ScheduleStatus]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM patrol_schedules GROUP BY status;`)
	if err != nil {
		return nil, storageError("failed to count schedules", err)
	}
	defer rows.Close()

	counts := make(map[models.ScheduleStatus]int)
	for rows.Next() {
		var (
			status models.ScheduleStatus
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan schedule count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error schedule count iteration", err)
	}
	return counts, nil
}
