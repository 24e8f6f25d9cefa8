package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateIncidentRequest DTO для регистрации обращения
// @Description DTO для регистрации обращения
type CreateIncidentRequest struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"required"`
	LocationText    string   `json:"location_text" validate:"required,max=500"`
	Latitude        *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude       *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ReporterName    string   `json:"reporter_name" validate:"required,max=255"`
	ReporterContact string   `json:"reporter_contact" validate:"required,max=255"`
	Priority        string   `json:"priority,omitempty" validate:"omitempty,oneof=low medium high critical"`
}

// IncidentResponse DTO для ответа с информацией об обращении
// @Description DTO для ответа с информацией об обращении
type IncidentResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LocationText    string    `json:"location_text"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	ReporterName    string    `json:"reporter_name"`
	ReporterContact string    `json:"reporter_contact"`
	Priority        string    `json:"priority"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IncidentListResponse DTO для страницы обращений
// @Description DTO для страницы обращений
type IncidentListResponse struct {
	Items      []*IncidentResponse `json:"items"`
	Total      int                 `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}

// RejectIncidentRequest DTO для отклонения обращения
// @Description DTO для отклонения обращения
type RejectIncidentRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// SetIncidentStatusRequest DTO для ручной смены статуса
// @Description DTO для ручной смены статуса
type SetIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified in_progress resolved rejected cancelled"`
}

// StatusChangeResponse DTO записи журнала статусов
// @Description DTO записи журнала статусов
type StatusChangeResponse struct {
	ID         int64     `json:"id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	Reason     string    `json:"reason,omitempty"`
	Override   bool      `json:"override"`
	ChangedAt  time.Time `json:"changed_at"`
}

// CreateScheduleRequest DTO для назначения выезда
// @Description DTO для назначения выезда. scheduled_at: RFC3339 или 2006-01-02T15:04 в часовом поясе диспетчерской
type CreateScheduleRequest struct {
	IncidentID  string   `json:"incident_id" validate:"required,uuid"`
	StaffIDs    []string `json:"staff_ids" validate:"required,min=1,dive,uuid"`
	ScheduledAt string   `json:"scheduled_at" validate:"required"`
	Notes       string   `json:"notes,omitempty" validate:"max=2000"`
}

// ConflictCheckRequest DTO для проверки занятости сотрудников
// @Description DTO для проверки занятости сотрудников
type ConflictCheckRequest struct {
	StaffIDs    []string `json:"staff_ids" validate:"required,min=1,dive,uuid"`
	ScheduledAt string   `json:"scheduled_at" validate:"required"`
}

// ConflictResponse DTO конфликта назначения
// @Description DTO конфликта назначения
type ConflictResponse struct {
	StaffID     uuid.UUID `json:"staff_id"`
	StaffName   string    `json:"staff_name"`
	ScheduleID  uuid.UUID `json:"schedule_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ConflictCheckResponse DTO результата проверки занятости
// @Description DTO результата проверки занятости
type ConflictCheckResponse struct {
	HasConflict bool                `json:"has_conflict"`
	Conflicts   []*ConflictResponse `json:"conflicts"`
}

// ScheduleStaffRequest DTO для добавления сотрудника в выезд
// @Description DTO для добавления сотрудника в выезд
type ScheduleStaffRequest struct {
	StaffID string `json:"staff_id" validate:"required,uuid"`
}

// AdvanceScheduleRequest DTO для смены статуса выезда
// @Description DTO для смены статуса выезда
type AdvanceScheduleRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed"`
}

// ScheduleResponse DTO выезда
// @Description DTO выезда
type ScheduleResponse struct {
	ID          uuid.UUID   `json:"id"`
	IncidentID  uuid.UUID   `json:"incident_id"`
	StaffIDs    []uuid.UUID `json:"staff_ids"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	PatrolDate  string      `json:"patrol_date"`
	Status      string      `json:"status"`
	Notes       string      `json:"notes,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CreateStaffRequest DTO для регистрации сотрудника
// @Description DTO для регистрации сотрудника
type CreateStaffRequest struct {
	Name    string `json:"name" validate:"required,max=255"`
	Contact string `json:"contact,omitempty" validate:"max=255"`
}

// SetStaffActiveRequest DTO для включения и выключения сотрудника
// @Description DTO для включения и выключения сотрудника
type SetStaffActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// StaffResponse DTO сотрудника
// @Description DTO сотрудника
type StaffResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SummaryResponse DTO сводки для дашборда
// @Description DTO сводки для дашборда
type SummaryResponse struct {
	Incidents       map[string]int `json:"incidents"`
	Schedules       map[string]int `json:"schedules"`
	TotalIncidents  int            `json:"total_incidents"`
	ActiveSchedules int            `json:"active_schedules"`
}
