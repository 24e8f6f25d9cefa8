package models

import (
	"time"

	"github.com/google/uuid"
)

// PatrolStaff - сотрудник или бригада, которую можно назначить на выезд
type PatrolStaff struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusSummary - сводка для дашборда, пересчитывается при каждом запросе
type StatusSummary struct {
	Incidents       map[IncidentStatus]int `json:"incidents"`
	Schedules       map[ScheduleStatus]int `json:"schedules"`
	TotalIncidents  int                    `json:"total_incidents"`
	ActiveSchedules int                    `json:"active_schedules"`
}
