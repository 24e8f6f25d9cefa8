package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=incident.go -destination=mocks/incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд обращений
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, int, error)
	// Delete отказывает с ErrIncidentHasActiveSchedule, пока на обращение есть активный выезд
	Delete(ctx context.Context, id uuid.UUID) error
	// UpdateStatus сохраняет статус, только если в бд он все еще равен from, и пишет запись журнала
	UpdateStatus(ctx context.Context, incident *models.Incident, from models.IncidentStatus, change *models.StatusChange) error
	ListStatusHistory(ctx context.Context, id uuid.UUID) ([]*models.StatusChange, error)

	GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт для бизнес-логики жизненного цикла обращений
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentPage, error)
	DeleteIncident(ctx context.Context, id uuid.UUID) error
	ApproveIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	RejectIncident(ctx context.Context, id uuid.UUID, reason string) (*models.Incident, error)
	SetIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error)
	GetStatusHistory(ctx context.Context, id uuid.UUID) ([]*models.StatusChange, error)
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher webhook.Publisher
	now       func() time.Time
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher webhook.Publisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateIncident регистрирует новое обращение в статусе pending
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"title":   incident.Title,
	})
	log.Info("Attempting to create a new incident")

	if err := normalizeIncident(incident); err != nil {
		log.WithError(err).Warn("Incident failed validation")
		return err
	}

	incident.Status = models.IncidentStatusPending
	incident.RejectionReason = ""
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	notify(ctx, s.publisher, log, webhook.Event{
		Type:       webhook.EventIncidentCreated,
		IncidentID: incident.ID,
		Status:     string(incident.Status),
		OccurredAt: incident.CreatedAt,
	})
	return nil
}

func normalizeIncident(incident *models.Incident) error {
	incident.Title = strings.TrimSpace(incident.Title)
	incident.Description = strings.TrimSpace(incident.Description)
	incident.LocationText = strings.TrimSpace(incident.LocationText)
	incident.ReporterName = strings.TrimSpace(incident.ReporterName)
	incident.ReporterContact = strings.TrimSpace(incident.ReporterContact)

	var missing []string
	for field, value := range map[string]string{
		"title":            incident.Title,
		"description":      incident.Description,
		"location":         incident.LocationText,
		"reporter_name":    incident.ReporterName,
		"reporter_contact": incident.ReporterContact,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: required fields are missing: %s", models.ErrValidation, strings.Join(missing, ", "))
	}

	if incident.Priority == "" {
		incident.Priority = models.PriorityMedium
	}
	if !incident.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", models.ErrValidation, incident.Priority)
	}

	if (incident.Latitude == nil) != (incident.Longitude == nil) {
		return fmt.Errorf("%w: latitude and longitude must be provided together", models.ErrValidation)
	}
	if incident.Latitude != nil {
		if math.Abs(*incident.Latitude) > 90 || math.Abs(*incident.Longitude) > 180 {
			return fmt.Errorf("%w: coordinates are out of range", models.ErrValidation)
		}
	}
	return nil
}

// GetIncident получает обращение по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Debug("Fetching incident by ID")

	cached, err := s.repo.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to store incident in cache")
	}
	return incident, nil
}

// ListIncidents возвращает страницу обращений с фильтром по статусу и поиском
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) (*models.IncidentPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown incident status %q", models.ErrValidation, filter.Status)
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
		"status":    filter.Status,
	})
	log.Debug("Listing incidents")

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + filter.PageSize - 1) / filter.PageSize
	}
	return &models.IncidentPage{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}, nil
}

// DeleteIncident удаляет обращение без активных выездов
func (s *incidentService) DeleteIncident(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "DeleteIncident",
		"incident_id": id,
	})
	log.Info("Attempting to delete incident")

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident in repository")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}
	s.invalidate(ctx, log, id)

	log.Info("Incident deleted successfully")
	notify(ctx, s.publisher, log, webhook.Event{
		Type:       webhook.EventIncidentDeleted,
		IncidentID: id,
		OccurredAt: s.now(),
	})
	return nil
}

// ApproveIncident подтверждает новое обращение: pending -> verified
func (s *incidentService) ApproveIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ApproveIncident",
		"incident_id": id,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not approve incident: %w", err)
	}
	if err := checkDecision(incident.Status, models.IncidentStatusVerified); err != nil {
		log.WithError(err).Warn("Rejected approve transition")
		return nil, err
	}
	return s.commitTransition(ctx, log, incident, models.IncidentStatusVerified, "", false)
}

// RejectIncident отклоняет новое обращение с обязательной причиной: pending -> rejected
func (s *incidentService) RejectIncident(ctx context.Context, id uuid.UUID, reason string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "RejectIncident",
		"incident_id": id,
	})

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", models.ErrValidation)
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not reject incident: %w", err)
	}
	if err := checkDecision(incident.Status, models.IncidentStatusRejected); err != nil {
		log.WithError(err).Warn("Rejected reject transition")
		return nil, err
	}
	incident.RejectionReason = reason
	return s.commitTransition(ctx, log, incident, models.IncidentStatusRejected, reason, false)
}

// SetIncidentStatus - ручная смена статуса оператором в обход approve/reject
func (s *incidentService) SetIncidentStatus(ctx context.Context, id uuid.UUID, status models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SetIncidentStatus",
		"incident_id": id,
		"status":      status,
	})

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not set incident status: %w", err)
	}
	override, err := checkOverride(incident.Status, status)
	if err != nil {
		log.WithError(err).Warn("Rejected status override")
		return nil, err
	}
	if override {
		log.WithField("from_status", incident.Status).Warn("Operator override outside the standard incident workflow")
	}
	return s.commitTransition(ctx, log, incident, status, "", override)
}

func (s *incidentService) commitTransition(ctx context.Context, log *logrus.Entry, incident *models.Incident, to models.IncidentStatus, reason string, override bool) (*models.Incident, error) {
	from := incident.Status
	now := s.now()

	incident.Status = to
	incident.UpdatedAt = now
	change := &models.StatusChange{
		IncidentID: incident.ID,
		FromStatus: from,
		ToStatus:   to,
		Reason:     reason,
		Override:   override,
		ChangedAt:  now,
	}

	if err := s.repo.UpdateStatus(ctx, incident, from, change); err != nil {
		log.WithError(err).Error("Failed to update incident status in repository")
		if errors.Is(err, models.ErrInvalidTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("service: could not update incident status: %w", err)
	}
	s.invalidate(ctx, log, incident.ID)

	log.WithFields(logrus.Fields{"from_status": from, "to_status": to}).Info("Incident status changed")
	notify(ctx, s.publisher, log, webhook.Event{
		Type:           webhook.EventIncidentStatusChanged,
		IncidentID:     incident.ID,
		Status:         string(to),
		PreviousStatus: string(from),
		Override:       override,
		OccurredAt:     now,
	})
	return incident, nil
}

// GetStatusHistory возвращает журнал смены статусов обращения
func (s *incidentService) GetStatusHistory(ctx context.Context, id uuid.UUID) ([]*models.StatusChange, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	history, err := s.repo.ListStatusHistory(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not list status history: %w", err)
	}
	return history, nil
}

func (s *incidentService) invalidate(ctx context.Context, log *logrus.Entry, id uuid.UUID) {
	if err := s.repo.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}
}
