package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=schedule.go -destination=mocks/schedule.go -package=mocks

// ScheduleRepository определяет контракт хранилища выездов.
// Create и AddStaff атомарно повторяют проверку занятости и возвращают *models.ScheduleConflictError.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *models.PatrolSchedule) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolSchedule, error)
	List(ctx context.Context, filter models.ScheduleFilter) ([]*models.PatrolSchedule, error)
	FindConflicts(ctx context.Context, staffIDs []uuid.UUID, patrolDate time.Time) ([]models.Conflict, error)
	AddStaff(ctx context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error)
	RemoveStaff(ctx context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ScheduleStatus, updatedAt time.Time) (*models.PatrolSchedule, error)
}

// ScheduleService определяет контракт для назначения патрулей
type ScheduleService interface {
	ListSchedules(ctx context.Context, filter models.ScheduleFilter) ([]*models.PatrolSchedule, error)
	GetSchedule(ctx context.Context, id uuid.UUID) (*models.PatrolSchedule, error)
	CheckConflict(ctx context.Context, staffIDs []uuid.UUID, scheduledAt time.Time) ([]models.Conflict, error)
	CreateSchedule(ctx context.Context, input models.ScheduleInput) (*models.PatrolSchedule, error)
	AddStaff(ctx context.Context, scheduleID, staffID uuid.UUID) (*models.PatrolSchedule, error)
	RemoveStaff(ctx context.Context, scheduleID, staffID uuid.UUID) (*models.PatrolSchedule, error)
	AdvanceSchedule(ctx context.Context, scheduleID uuid.UUID, status models.ScheduleStatus) (*models.PatrolSchedule, error)
}

type scheduleService struct {
	schedules ScheduleRepository
	incidents IncidentRepository
	staff     StaffRepository
	detector  *ConflictDetector
	logger    *logrus.Logger
	publisher webhook.Publisher
	now       func() time.Time
}

func NewScheduleService(
	schedules ScheduleRepository,
	incidents IncidentRepository,
	staff StaffRepository,
	detector *ConflictDetector,
	logger *logrus.Logger,
	publisher webhook.Publisher,
) ScheduleService {
	return &scheduleService{
		schedules: schedules,
		incidents: incidents,
		staff:     staff,
		detector:  detector,
		logger:    logger,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) ListSchedules(ctx context.Context, filter models.ScheduleFilter) ([]*models.PatrolSchedule, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown schedule status %q", models.ErrValidation, filter.Status)
	}
	schedules, err := s.schedules.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListSchedules").Error("Failed to list schedules from repository")
		return nil, fmt.Errorf("service: could not list schedules: %w", err)
	}
	return schedules, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, id uuid.UUID) (*models.PatrolSchedule, error) {
	schedule, err := s.schedules.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get schedule: %w", err)
	}
	return schedule, nil
}

func (s *scheduleService) CheckConflict(ctx context.Context, staffIDs []uuid.UUID, scheduledAt time.Time) ([]models.Conflict, error) {
	return s.detector.CheckConflict(ctx, staffIDs, scheduledAt)
}

// CreateSchedule назначает сотрудников на выезд по обращению.
// Статус обращения при этом не меняется.
func (s *scheduleService) CreateSchedule(ctx context.Context, input models.ScheduleInput) (*models.PatrolSchedule, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "schedule",
		"method":       "CreateSchedule",
		"incident_id":  input.IncidentID,
		"scheduled_at": input.ScheduledAt,
	})
	log.Info("Attempting to create a patrol schedule")

	staffIDs, err := normalizeStaffIDs(input.StaffIDs)
	if err != nil {
		return nil, err
	}
	if input.ScheduledAt.IsZero() {
		return nil, fmt.Errorf("%w: scheduled time is required", models.ErrValidation)
	}

	incident, err := s.incidents.GetByID(ctx, input.IncidentID)
	if err != nil {
		log.WithError(err).Warn("Failed to load incident for scheduling")
		return nil, fmt.Errorf("service: could not load incident: %w", err)
	}
	if incident.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: cannot schedule a patrol for a %s incident", models.ErrInvalidTransition, incident.Status)
	}

	if err := s.requireActiveStaff(ctx, staffIDs); err != nil {
		log.WithError(err).Warn("Staff validation failed")
		return nil, err
	}

	conflicts, err := s.detector.CheckConflict(ctx, staffIDs, input.ScheduledAt)
	if err != nil {
		log.WithError(err).Error("Failed to check staff conflicts")
		return nil, err
	}
	if len(conflicts) > 0 {
		conflictErr := models.NewScheduleConflictError(conflicts)
		log.WithError(conflictErr).Info("Staff already booked for this date")
		return nil, conflictErr
	}

	schedule := &models.PatrolSchedule{
		IncidentID:  input.IncidentID,
		StaffIDs:    staffIDs,
		ScheduledAt: input.ScheduledAt.UTC(),
		PatrolDate:  s.detector.PatrolDate(input.ScheduledAt),
		Status:      models.ScheduleStatusScheduled,
		Notes:       strings.TrimSpace(input.Notes),
	}
	if err := s.schedules.Create(ctx, schedule); err != nil {
		log.WithError(err).Warn("Failed to create schedule in repository")
		return nil, fmt.Errorf("service: could not create schedule: %w", err)
	}

	log.WithField("schedule_id", schedule.ID).Info("Patrol schedule created successfully")
	s.notify(ctx, log, webhook.EventScheduleCreated, schedule, "")
	return schedule, nil
}

// AddStaff добавляет сотрудника в активный выезд с той же проверкой занятости
func (s *scheduleService) AddStaff(ctx context.Context, scheduleID, staffID uuid.UUID) (*models.PatrolSchedule, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "AddStaff",
		"schedule_id": scheduleID,
		"staff_id":    staffID,
	})

	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get schedule: %w", err)
	}
	if !schedule.Status.IsActive() {
		return nil, fmt.Errorf("%w: staff cannot be added to a %s schedule", models.ErrInvalidTransition, schedule.Status)
	}
	if schedule.HasStaff(staffID) {
		return nil, fmt.Errorf("%w: staff %s is already assigned to this schedule", models.ErrValidation, staffID)
	}
	if err := s.requireActiveStaff(ctx, []uuid.UUID{staffID}); err != nil {
		return nil, err
	}

	conflicts, err := s.detector.checkDate(ctx, []uuid.UUID{staffID}, schedule.PatrolDate)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, models.NewScheduleConflictError(conflicts)
	}

	updated, err := s.schedules.AddStaff(ctx, scheduleID, staffID, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to add staff in repository")
		return nil, fmt.Errorf("service: could not add staff: %w", err)
	}

	log.Info("Staff added to schedule")
	s.notify(ctx, log, webhook.EventScheduleStaffChanged, updated, "")
	return updated, nil
}

// RemoveStaff снимает сотрудника с выезда; последнего снять нельзя
func (s *scheduleService) RemoveStaff(ctx context.Context, scheduleID, staffID uuid.UUID) (*models.PatrolSchedule, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "RemoveStaff",
		"schedule_id": scheduleID,
		"staff_id":    staffID,
	})

	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get schedule: %w", err)
	}
	if !schedule.HasStaff(staffID) {
		return nil, fmt.Errorf("%w: staff %s is not assigned to schedule %s", models.ErrNotFound, staffID, scheduleID)
	}
	if len(schedule.StaffIDs) <= 1 {
		log.Warn("Attempt to remove the last assigned staff member")
		return nil, models.ErrLastStaff
	}

	updated, err := s.schedules.RemoveStaff(ctx, scheduleID, staffID, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to remove staff in repository")
		if errors.Is(err, models.ErrLastStaff) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not remove staff: %w", err)
	}

	log.Info("Staff removed from schedule")
	s.notify(ctx, log, webhook.EventScheduleStaffChanged, updated, "")
	return updated, nil
}

// AdvanceSchedule двигает выезд только вперед: scheduled -> in_progress -> completed
func (s *scheduleService) AdvanceSchedule(ctx context.Context, scheduleID uuid.UUID, status models.ScheduleStatus) (*models.PatrolSchedule, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "schedule",
		"method":      "AdvanceSchedule",
		"schedule_id": scheduleID,
		"status":      status,
	})

	schedule, err := s.schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get schedule: %w", err)
	}
	from := schedule.Status
	if err := checkScheduleAdvance(from, status); err != nil {
		log.WithError(err).Warn("Rejected schedule transition")
		return nil, err
	}

	updated, err := s.schedules.UpdateStatus(ctx, scheduleID, from, status, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to update schedule status in repository")
		return nil, fmt.Errorf("service: could not update schedule status: %w", err)
	}

	log.WithField("from_status", from).Info("Schedule status changed")
	s.notify(ctx, log, webhook.EventScheduleStatusChanged, updated, string(from))
	return updated, nil
}

// requireActiveStaff проверяет, что все сотрудники существуют и активны
func (s *scheduleService) requireActiveStaff(ctx context.Context, staffIDs []uuid.UUID) error {
	staff, err := s.staff.GetByIDs(ctx, staffIDs)
	if err != nil {
		return fmt.Errorf("service: could not load staff: %w", err)
	}
	byID := make(map[uuid.UUID]*models.PatrolStaff, len(staff))
	for _, member := range staff {
		byID[member.ID] = member
	}
	for _, id := range staffIDs {
		member, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: staff %s does not exist", models.ErrNotFound, id)
		}
		if !member.Active {
			return fmt.Errorf("%w: staff %s (%s) is not active", models.ErrValidation, member.Name, id)
		}
	}
	return nil
}

func (s *scheduleService) notify(ctx context.Context, log *logrus.Entry, eventType webhook.EventType, schedule *models.PatrolSchedule, previous string) {
	scheduleID := schedule.ID
	notify(ctx, s.publisher, log, webhook.Event{
		Type:           eventType,
		IncidentID:     schedule.IncidentID,
		ScheduleID:     &scheduleID,
		Status:         string(schedule.Status),
		PreviousStatus: previous,
		OccurredAt:     s.now(),
	})
}
