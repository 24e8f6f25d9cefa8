package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

type ScheduleRepository struct {
	db *Store
}

func NewScheduleRepository(db *Store) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create повторяет все проверки под блокировкой на запись и только потом сохраняет выезд
func (r *ScheduleRepository) Create(_ context.Context, schedule *models.PatrolSchedule) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	incident, ok := r.db.incidents[schedule.IncidentID]
	if !ok {
		return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, schedule.IncidentID)
	}
	if incident.Status.IsTerminal() {
		return fmt.Errorf("%w: cannot schedule a patrol for a %s incident", models.ErrInvalidTransition, incident.Status)
	}
	if r.db.activeScheduleFor(schedule.IncidentID) != nil {
		return models.ErrIncidentHasActiveSchedule
	}
	for _, staffID := range schedule.StaffIDs {
		if _, ok := r.db.staff[staffID]; !ok {
			return fmt.Errorf("%w: staff %s does not exist", models.ErrNotFound, staffID)
		}
	}
	if conflicts := r.db.conflictsLocked(schedule.StaffIDs, schedule.PatrolDate, uuid.Nil); len(conflicts) > 0 {
		return models.NewScheduleConflictError(conflicts)
	}

	now := r.db.now()
	schedule.ID = uuid.New()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	r.db.schedules[schedule.ID] = copySchedule(schedule)
	return nil
}

func (r *ScheduleRepository) GetByID(_ context.Context, id uuid.UUID) (*models.PatrolSchedule, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	schedule, ok := r.db.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, id)
	}
	return copySchedule(schedule), nil
}

func (r *ScheduleRepository) List(_ context.Context, filter models.ScheduleFilter) ([]*models.PatrolSchedule, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	schedules := make([]*models.PatrolSchedule, 0)
	for _, schedule := range r.db.schedules {
		if filter.IncidentID != uuid.Nil && schedule.IncidentID != filter.IncidentID {
			continue
		}
		if filter.Status != "" && schedule.Status != filter.Status {
			continue
		}
		schedules = append(schedules, copySchedule(schedule))
	}
	sort.Slice(schedules, func(i, j int) bool {
		if !schedules[i].ScheduledAt.Equal(schedules[j].ScheduledAt) {
			return schedules[i].ScheduledAt.Before(schedules[j].ScheduledAt)
		}
		return schedules[i].ID.String() < schedules[j].ID.String()
	})
	return schedules, nil
}

func (r *ScheduleRepository) FindConflicts(_ context.Context, staffIDs []uuid.UUID, patrolDate time.Time) ([]models.Conflict, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return r.db.conflictsLocked(staffIDs, patrolDate, uuid.Nil), nil
}

func (r *ScheduleRepository) AddStaff(_ context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	schedule, ok := r.db.schedules[scheduleID]
	if !ok {
		return nil, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, scheduleID)
	}
	if !schedule.Status.IsActive() {
		return nil, fmt.Errorf("%w: staff cannot be added to a %s schedule", models.ErrInvalidTransition, schedule.Status)
	}
	if _, ok := r.db.staff[staffID]; !ok {
		return nil, fmt.Errorf("%w: staff %s does not exist", models.ErrNotFound, staffID)
	}
	if schedule.HasStaff(staffID) {
		return copySchedule(schedule), nil
	}
	if conflicts := r.db.conflictsLocked([]uuid.UUID{staffID}, schedule.PatrolDate, scheduleID); len(conflicts) > 0 {
		return nil, models.NewScheduleConflictError(conflicts)
	}

	schedule.StaffIDs = append(schedule.StaffIDs, staffID)
	schedule.UpdatedAt = updatedAt
	return copySchedule(schedule), nil
}

func (r *ScheduleRepository) RemoveStaff(_ context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	schedule, ok := r.db.schedules[scheduleID]
	if !ok {
		return nil, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, scheduleID)
	}
	if !schedule.HasStaff(staffID) {
		return nil, fmt.Errorf("%w: staff %s is not assigned to schedule %s", models.ErrNotFound, staffID, scheduleID)
	}
	if len(schedule.StaffIDs) <= 1 {
		return nil, models.ErrLastStaff
	}

	remaining := make([]uuid.UUID, 0, len(schedule.StaffIDs)-1)
	for _, id := range schedule.StaffIDs {
		if id != staffID {
			remaining = append(remaining, id)
		}
	}
	schedule.StaffIDs = remaining
	schedule.UpdatedAt = updatedAt
	return copySchedule(schedule), nil
}

func (r *ScheduleRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to models.ScheduleStatus, updatedAt time.Time) (*models.PatrolSchedule, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	schedule, ok := r.db.schedules[id]
	if !ok {
		return nil, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, id)
	}
	if schedule.Status != from {
		return nil, fmt.Errorf("%w: schedule status changed from %s to %s concurrently", models.ErrInvalidTransition, from, schedule.Status)
	}

	schedule.Status = to
	schedule.UpdatedAt = updatedAt
	return copySchedule(schedule), nil
}
