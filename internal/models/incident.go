package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentStatus - статус обращения в жизненном цикле
type IncidentStatus string

const (
	IncidentStatusPending    IncidentStatus = "pending"
	IncidentStatusVerified   IncidentStatus = "verified"
	IncidentStatusInProgress IncidentStatus = "in_progress"
	IncidentStatusResolved   IncidentStatus = "resolved"
	IncidentStatusRejected   IncidentStatus = "rejected"
	IncidentStatusCancelled  IncidentStatus = "cancelled"
)

// IncidentStatuses перечисляет все статусы в порядке жизненного цикла
var IncidentStatuses = []IncidentStatus{
	IncidentStatusPending,
	IncidentStatusVerified,
	IncidentStatusInProgress,
	IncidentStatusResolved,
	IncidentStatusRejected,
	IncidentStatusCancelled,
}

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusPending, IncidentStatusVerified, IncidentStatusInProgress,
		IncidentStatusResolved, IncidentStatusRejected, IncidentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal сообщает, что из статуса нет исходящих переходов
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusRejected || s == IncidentStatusCancelled
}

// Priority - приоритет обращения
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type Incident struct {
	ID              uuid.UUID      `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	LocationText    string         `json:"location_text"`
	Latitude        *float64       `json:"latitude,omitempty"`
	Longitude       *float64       `json:"longitude,omitempty"`
	ReporterName    string         `json:"reporter_name"`
	ReporterContact string         `json:"reporter_contact"`
	Priority        Priority       `json:"priority"`
	Status          IncidentStatus `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// StatusChange - запись журнала смены статуса обращения
type StatusChange struct {
	ID         int64          `json:"id"`
	IncidentID uuid.UUID      `json:"incident_id"`
	FromStatus IncidentStatus `json:"from_status"`
	ToStatus   IncidentStatus `json:"to_status"`
	Reason     string         `json:"reason,omitempty"`
	Override   bool           `json:"override"`
	ChangedAt  time.Time      `json:"changed_at"`
}

// IncidentFilter задает фильтр и страницу для списка обращений
type IncidentFilter struct {
	Status     IncidentStatus
	Search     string
	ActiveOnly bool
	Page       int
	PageSize   int
}

// Offset возвращает смещение для текущей страницы
func (f IncidentFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

type IncidentPage struct {
	Items      []*Incident `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}
