package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// ScheduleStatus - статус выезда патруля
type ScheduleStatus string

const (
	ScheduleStatusScheduled  ScheduleStatus = "scheduled"
	ScheduleStatusInProgress ScheduleStatus = "in_progress"
	ScheduleStatusCompleted  ScheduleStatus = "completed"
)

var ScheduleStatuses = []ScheduleStatus{
	ScheduleStatusScheduled,
	ScheduleStatusInProgress,
	ScheduleStatusCompleted,
}

func (s ScheduleStatus) IsValid() bool {
	switch s {
	case ScheduleStatusScheduled, ScheduleStatusInProgress, ScheduleStatusCompleted:
		return true
	}
	return false
}

// IsActive - выезд еще занимает сотрудников
func (s ScheduleStatus) IsActive() bool {
	return s == ScheduleStatusScheduled || s == ScheduleStatusInProgress
}

// Next возвращает единственный допустимый следующий статус
func (s ScheduleStatus) Next() (ScheduleStatus, bool) {
	switch s {
	case ScheduleStatusScheduled:
		return ScheduleStatusInProgress, true
	case ScheduleStatusInProgress:
		return ScheduleStatusCompleted, true
	}
	return "", false
}

type PatrolSchedule struct {
	ID          uuid.UUID      `json:"id"`
	IncidentID  uuid.UUID      `json:"incident_id"`
	StaffIDs    []uuid.UUID    `json:"staff_ids"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	PatrolDate  time.Time      `json:"patrol_date"`
	Status      ScheduleStatus `json:"status"`
	Notes       string         `json:"notes,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (s *PatrolSchedule) HasStaff(staffID uuid.UUID) bool {
	for _, id := range s.StaffIDs {
		if id == staffID {
			return true
		}
	}
	return false
}

// ScheduleFilter - фильтр списка выездов, пустые поля не ограничивают выборку
type ScheduleFilter struct {
	IncidentID uuid.UUID
	Status     ScheduleStatus
}

// ScheduleInput - данные для назначения нового выезда
type ScheduleInput struct {
	IncidentID  uuid.UUID
	StaffIDs    []uuid.UUID
	ScheduledAt time.Time
	Notes       string
}

// Conflict описывает сотрудника, уже занятого активным выездом в этот день
type Conflict struct {
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	ScheduleID  uuid.UUID `json:"schedule_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// PatrolDate возвращает календарный день t в часовом поясе loc как полночь UTC.
// Конфликты определяются с точностью до дня, а не по пересечению интервалов.
func PatrolDate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DetectConflicts ищет среди активных выездов те, что занимают кого-либо из staffIDs в день patrolDate.
// names сопоставляет сотрудника с отображаемым именем.
func DetectConflicts(staffIDs []uuid.UUID, patrolDate time.Time, schedules []*PatrolSchedule, names map[uuid.UUID]string) []Conflict {
	wanted := make(map[uuid.UUID]struct{}, len(staffIDs))
	for _, id := range staffIDs {
		wanted[id] = struct{}{}
	}

	conflicts := make([]Conflict, 0)
	for _, schedule := range schedules {
		if !schedule.Status.IsActive() || !schedule.PatrolDate.Equal(patrolDate) {
			continue
		}
		for _, staffID := range schedule.StaffIDs {
			if _, ok := wanted[staffID]; !ok {
				continue
			}
			conflicts = append(conflicts, Conflict{
				StaffID:     staffID,
				StaffName:   names[staffID],
				ScheduleID:  schedule.ID,
				ScheduledAt: schedule.ScheduledAt,
			})
		}
	}
	SortConflicts(conflicts)
	return conflicts
}

// SortConflicts упорядочивает конфликты по имени сотрудника и идентификатору выезда
func SortConflicts(conflicts []Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		if conflicts[i].StaffName != conflicts[j].StaffName {
			return conflicts[i].StaffName < conflicts[j].StaffName
		}
		return conflicts[i].ScheduleID.String() < conflicts[j].ScheduleID.String()
	})
}
