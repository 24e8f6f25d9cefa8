package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

// ConflictDetector проверяет, не заняты ли сотрудники другим активным выездом в тот же день.
// Проверка здесь - ранний понятный отказ; окончательно занятость гарантирует хранилище.
type ConflictDetector struct {
	schedules ScheduleRepository
	loc       *time.Location
}

func NewConflictDetector(schedules ScheduleRepository, loc *time.Location) *ConflictDetector {
	if loc == nil {
		loc = time.UTC
	}
	return &ConflictDetector{schedules: schedules, loc: loc}
}

// PatrolDate возвращает календарный день выезда в часовом поясе диспетчерской
func (d *ConflictDetector) PatrolDate(scheduledAt time.Time) time.Time {
	return models.PatrolDate(scheduledAt, d.loc)
}

// CheckConflict возвращает конфликты для набора сотрудников на дату scheduledAt.
// Пустой срез означает, что все свободны.
func (d *ConflictDetector) CheckConflict(ctx context.Context, staffIDs []uuid.UUID, scheduledAt time.Time) ([]models.Conflict, error) {
	ids, err := normalizeStaffIDs(staffIDs)
	if err != nil {
		return nil, err
	}
	if scheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduled time is required", models.ErrValidation)
	}
	return d.checkDate(ctx, ids, d.PatrolDate(scheduledAt))
}

func (d *ConflictDetector) checkDate(ctx context.Context, staffIDs []uuid.UUID, patrolDate time.Time) ([]models.Conflict, error) {
	conflicts, err := d.schedules.FindConflicts(ctx, staffIDs, patrolDate)
	if err != nil {
		return nil, fmt.Errorf("could not check staff availability: %w", err)
	}
	if conflicts == nil {
		conflicts = make([]models.Conflict, 0)
	}
	models.SortConflicts(conflicts)
	return conflicts, nil
}

// normalizeStaffIDs убирает повторы, сохраняя порядок, и отклоняет пустой набор
func normalizeStaffIDs(staffIDs []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(staffIDs))
	ids := make([]uuid.UUID, 0, len(staffIDs))
	for _, id := range staffIDs {
		if id == uuid.Nil {
			return nil, fmt.Errorf("%w: staff id must not be empty", models.ErrValidation)
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one staff member must be assigned", models.ErrValidation)
	}
	return ids, nil
}
