package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

type IncidentRepository struct {
	db *Store
}

func NewIncidentRepository(db *Store) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func (r *IncidentRepository) Create(_ context.Context, incident *models.Incident) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	now := r.db.now()
	incident.ID = uuid.New()
	incident.CreatedAt = now
	incident.UpdatedAt = now
	r.db.incidents[incident.ID] = copyIncident(incident)
	return nil
}

func (r *IncidentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Incident, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	incident, ok := r.db.incidents[id]
	if !ok {
		return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
	}
	return copyIncident(incident), nil
}

func (r *IncidentRepository) List(_ context.Context, filter models.IncidentFilter) ([]*models.Incident, int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	matched := make([]*models.Incident, 0)
	for _, incident := range r.db.incidents {
		if filter.Status != "" && incident.Status != filter.Status {
			continue
		}
		if filter.ActiveOnly && incident.Status.IsTerminal() {
			continue
		}
		if search != "" && !matchesSearch(incident, search) {
			continue
		}
		matched = append(matched, incident)
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() < matched[j].ID.String()
	})

	total := len(matched)
	start := filter.Offset()
	if start > total {
		start = total
	}
	end := start + filter.PageSize
	if end > total {
		end = total
	}

	items := make([]*models.Incident, 0, end-start)
	for _, incident := range matched[start:end] {
		items = append(items, copyIncident(incident))
	}
	return items, total, nil
}

func matchesSearch(incident *models.Incident, search string) bool {
	for _, field := range []string{incident.Title, incident.Description, incident.LocationText, incident.ReporterName} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// Delete удаляет обращение вместе с завершенными выездами и журналом
func (r *IncidentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.incidents[id]; !ok {
		return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
	}
	if r.db.activeScheduleFor(id) != nil {
		return models.ErrIncidentHasActiveSchedule
	}

	for scheduleID, schedule := range r.db.schedules {
		if schedule.IncidentID == id {
			delete(r.db.schedules, scheduleID)
		}
	}
	delete(r.db.history, id)
	delete(r.db.incidents, id)
	return nil
}

func (r *IncidentRepository) UpdateStatus(_ context.Context, incident *models.Incident, from models.IncidentStatus, change *models.StatusChange) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	current, ok := r.db.incidents[incident.ID]
	if !ok {
		return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, incident.ID)
	}
	if current.Status != from {
		return fmt.Errorf("%w: incident status changed from %s to %s concurrently", models.ErrInvalidTransition, from, current.Status)
	}

	r.db.incidents[incident.ID] = copyIncident(incident)
	r.db.historySeq++
	change.ID = r.db.historySeq
	stored := *change
	r.db.history[incident.ID] = append(r.db.history[incident.ID], &stored)
	return nil
}

func (r *IncidentRepository) ListStatusHistory(_ context.Context, id uuid.UUID) ([]*models.StatusChange, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	history := make([]*models.StatusChange, 0, len(r.db.history[id]))
	for _, change := range r.db.history[id] {
		c := *change
		history = append(history, &c)
	}
	return history, nil
}

// Хранилище в памяти работает без кеша

func (r *IncidentRepository) GetIncidentFromCache(context.Context, uuid.UUID) (*models.Incident, error) {
	return nil, nil
}

func (r *IncidentRepository) SetIncidentCache(context.Context, *models.Incident) error {
	return nil
}

func (r *IncidentRepository) InvalidateIncidentCache(context.Context, uuid.UUID) error {
	return nil
}
