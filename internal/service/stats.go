package service

import (
	"context"
	"fmt"

	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=stats.go -destination=mocks/stats.go -package=mocks

// StatsRepository считает записи по статусам на момент запроса
type StatsRepository interface {
	CountIncidentsByStatus(ctx context.Context) (map[models.IncidentStatus]int, error)
	CountSchedulesByStatus(ctx context.Context) (map[models.ScheduleStatus]int, error)
}

// StatsService пересчитывает сводки при каждом вызове, без накопительных счетчиков
type StatsService interface {
	GetStatusCounts(ctx context.Context) (map[models.IncidentStatus]int, error)
	GetScheduleStatusCounts(ctx context.Context) (map[models.ScheduleStatus]int, error)
	GetSummary(ctx context.Context) (*models.StatusSummary, error)
}

type statsService struct {
	repo   StatsRepository
	logger *logrus.Logger
}

func NewStatsService(repo StatsRepository, logger *logrus.Logger) StatsService {
	return &statsService{repo: repo, logger: logger}
}

// GetStatusCounts возвращает количество обращений по каждому статусу, включая нулевые
func (s *statsService) GetStatusCounts(ctx context.Context) (map[models.IncidentStatus]int, error) {
	raw, err := s.repo.CountIncidentsByStatus(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetStatusCounts").Error("Failed to count incidents")
		return nil, fmt.Errorf("service: could not count incidents: %w", err)
	}

	counts := make(map[models.IncidentStatus]int, len(models.IncidentStatuses))
	for _, status := range models.IncidentStatuses {
		counts[status] = raw[status]
	}
	for status, n := range raw {
		if !status.IsValid() {
			// Неизвестный статус все равно учитывается, чтобы сумма совпадала с общим числом
			s.logger.WithField("status", status).Warn("Unknown incident status in storage")
			counts[status] += n
		}
	}
	return counts, nil
}

func (s *statsService) GetScheduleStatusCounts(ctx context.Context) (map[models.ScheduleStatus]int, error) {
	raw, err := s.repo.CountSchedulesByStatus(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "GetScheduleStatusCounts").Error("Failed to count schedules")
		return nil, fmt.Errorf("service: could not count schedules: %w", err)
	}

	counts := make(map[models.ScheduleStatus]int, len(models.ScheduleStatuses))
	for _, status := range models.ScheduleStatuses {
		counts[status] = raw[status]
	}
	return counts, nil
}

// GetSummary собирает сводку для дашборда
func (s *statsService) GetSummary(ctx context.Context) (*models.StatusSummary, error) {
	incidents, err := s.GetStatusCounts(ctx)
	if err != nil {
		return nil, err
	}
	schedules, err := s.GetScheduleStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.StatusSummary{
		Incidents: incidents,
		Schedules: schedules,
	}
	for _, n := range incidents {
		summary.TotalIncidents += n
	}
	for status, n := range schedules {
		if status.IsActive() {
			summary.ActiveSchedules += n
		}
	}
	return summary, nil
}
