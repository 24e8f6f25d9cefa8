// Package memory хранит обращения, выезды и сотрудников в памяти процесса.
// Используется для локального запуска (STORAGE_DRIVER=memory) и в тестах.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

// Store - общее состояние всех репозиториев. Одна блокировка на запись
// покрывает проверку занятости и вставку, поэтому двойное назначение невозможно.
type Store struct {
	mu         sync.RWMutex
	incidents  map[uuid.UUID]*models.Incident
	history    map[uuid.UUID][]*models.StatusChange
	historySeq int64
	schedules  map[uuid.UUID]*models.PatrolSchedule
	staff      map[uuid.UUID]*models.PatrolStaff
	now        func() time.Time
}

func NewStore() *Store {
	return &Store{
		incidents: make(map[uuid.UUID]*models.Incident),
		history:   make(map[uuid.UUID][]*models.StatusChange),
		schedules: make(map[uuid.UUID]*models.PatrolSchedule),
		staff:     make(map[uuid.UUID]*models.PatrolStaff),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func copyIncident(in *models.Incident) *models.Incident {
	out := *in
	if in.Latitude != nil {
		lat := *in.Latitude
		out.Latitude = &lat
	}
	if in.Longitude != nil {
		lon := *in.Longitude
		out.Longitude = &lon
	}
	return &out
}

func copySchedule(in *models.PatrolSchedule) *models.PatrolSchedule {
	out := *in
	out.StaffIDs = append([]uuid.UUID(nil), in.StaffIDs...)
	return &out
}

func copyStaff(in *models.PatrolStaff) *models.PatrolStaff {
	out := *in
	return &out
}

// activeScheduleFor возвращает активный выезд обращения; вызывается под блокировкой
func (s *Store) activeScheduleFor(incidentID uuid.UUID) *models.PatrolSchedule {
	for _, schedule := range s.schedules {
		if schedule.IncidentID == incidentID && schedule.Status.IsActive() {
			return schedule
		}
	}
	return nil
}

// conflictsLocked ищет занятость сотрудников на дату, не учитывая выезд skip
func (s *Store) conflictsLocked(staffIDs []uuid.UUID, patrolDate time.Time, skip uuid.UUID) []models.Conflict {
	active := make([]*models.PatrolSchedule, 0, len(s.schedules))
	for _, schedule := range s.schedules {
		if schedule.ID == skip || !schedule.Status.IsActive() {
			continue
		}
		active = append(active, schedule)
	}

	names := make(map[uuid.UUID]string, len(staffIDs))
	for _, id := range staffIDs {
		if member, ok := s.staff[id]; ok {
			names[id] = member.Name
		}
	}
	return models.DetectConflicts(staffIDs, patrolDate, active, names)
}
