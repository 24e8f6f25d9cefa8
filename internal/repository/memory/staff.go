package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

type StaffRepository struct {
	db *Store
}

func NewStaffRepository(db *Store) *StaffRepository {
	return &StaffRepository{db: db}
}

func (r *StaffRepository) Create(_ context.Context, staff *models.PatrolStaff) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	staff.ID = uuid.New()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	r.db.staff[staff.ID] = copyStaff(staff)
	return nil
}

func (r *StaffRepository) GetByID(_ context.Context, id uuid.UUID) (*models.PatrolStaff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	staff, ok := r.db.staff[id]
	if !ok {
		return nil, fmt.Errorf("%w: staff with id %s", models.ErrNotFound, id)
	}
	return copyStaff(staff), nil
}

func (r *StaffRepository) GetByIDs(_ context.Context, ids []uuid.UUID) ([]*models.PatrolStaff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	staff := make([]*models.PatrolStaff, 0, len(ids))
	for _, id := range ids {
		if member, ok := r.db.staff[id]; ok {
			staff = append(staff, copyStaff(member))
		}
	}
	return staff, nil
}

func (r *StaffRepository) List(_ context.Context, activeOnly bool) ([]*models.PatrolStaff, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	staff := make([]*models.PatrolStaff, 0, len(r.db.staff))
	for _, member := range r.db.staff {
		if activeOnly && !member.Active {
			continue
		}
		staff = append(staff, copyStaff(member))
	}
	sort.Slice(staff, func(i, j int) bool {
		if staff[i].Name != staff[j].Name {
			return staff[i].Name < staff[j].Name
		}
		return staff[i].ID.String() < staff[j].ID.String()
	})
	return staff, nil
}

func (r *StaffRepository) SetActive(_ context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*models.PatrolStaff, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	staff, ok := r.db.staff[id]
	if !ok {
		return nil, fmt.Errorf("%w: staff with id %s", models.ErrNotFound, id)
	}
	staff.Active = active
	staff.UpdatedAt = updatedAt
	return copyStaff(staff), nil
}
