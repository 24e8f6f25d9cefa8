package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=staff.go -destination=mocks/staff.go -package=mocks

// StaffRepository определяет контракт реестра сотрудников
type StaffRepository interface {
	Create(ctx context.Context, staff *models.PatrolStaff) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolStaff, error)
	// GetByIDs возвращает найденных сотрудников, отсутствующие id пропускаются
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.PatrolStaff, error)
	List(ctx context.Context, activeOnly bool) ([]*models.PatrolStaff, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*models.PatrolStaff, error)
}

type StaffService interface {
	CreateStaff(ctx context.Context, staff *models.PatrolStaff) error
	GetStaff(ctx context.Context, id uuid.UUID) (*models.PatrolStaff, error)
	ListStaff(ctx context.Context, activeOnly bool) ([]*models.PatrolStaff, error)
	SetStaffActive(ctx context.Context, id uuid.UUID, active bool) (*models.PatrolStaff, error)
}

type staffService struct {
	repo   StaffRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewStaffService(repo StaffRepository, logger *logrus.Logger) StaffService {
	return &staffService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *staffService) CreateStaff(ctx context.Context, staff *models.PatrolStaff) error {
	staff.Name = strings.TrimSpace(staff.Name)
	staff.Contact = strings.TrimSpace(staff.Contact)
	if staff.Name == "" {
		return fmt.Errorf("%w: staff name is required", models.ErrValidation)
	}
	staff.Active = true

	if err := s.repo.Create(ctx, staff); err != nil {
		s.logger.WithError(err).WithField("method", "CreateStaff").Error("Failed to create staff in repository")
		return fmt.Errorf("service: could not create staff: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "staff",
		"method":   "CreateStaff",
		"staff_id": staff.ID,
	}).Info("Staff member registered")
	return nil
}

func (s *staffService) GetStaff(ctx context.Context, id uuid.UUID) (*models.PatrolStaff, error) {
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get staff: %w", err)
	}
	return staff, nil
}

func (s *staffService) ListStaff(ctx context.Context, activeOnly bool) ([]*models.PatrolStaff, error) {
	staff, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("service: could not list staff: %w", err)
	}
	return staff, nil
}

// SetStaffActive включает или выключает сотрудника; существующие выезды не затрагиваются
func (s *staffService) SetStaffActive(ctx context.Context, id uuid.UUID, active bool) (*models.PatrolStaff, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "staff",
		"method":   "SetStaffActive",
		"staff_id": id,
		"active":   active,
	})

	staff, err := s.repo.SetActive(ctx, id, active, s.now())
	if err != nil {
		log.WithError(err).Warn("Failed to update staff activity")
		return nil, fmt.Errorf("service: could not update staff: %w", err)
	}
	log.Info("Staff activity updated")
	return staff, nil
}
