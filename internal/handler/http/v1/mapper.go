package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

const patrolDateLayout = "2006-01-02"

// Форматы scheduled_at без зоны трактуются в часовом поясе диспетчерской
var localTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseScheduledAt разбирает время выезда
func parseScheduledAt(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	for _, layout := range localTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: scheduled_at %q must be RFC3339 or YYYY-MM-DDTHH:MM", models.ErrValidation, value)
}

// parseUUIDs разбирает идентификаторы, уже проверенные валидатором
func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid id %q", models.ErrValidation, s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	return &models.Incident{
		Title:           dto.Title,
		Description:     dto.Description,
		LocationText:    dto.LocationText,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		ReporterName:    dto.ReporterName,
		ReporterContact: dto.ReporterContact,
		Priority:        models.Priority(dto.Priority),
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:              model.ID,
		Title:           model.Title,
		Description:     model.Description,
		LocationText:    model.LocationText,
		Latitude:        model.Latitude,
		Longitude:       model.Longitude,
		ReporterName:    model.ReporterName,
		ReporterContact: model.ReporterContact,
		Priority:        string(model.Priority),
		Status:          string(model.Status),
		RejectionReason: model.RejectionReason,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func ModelToIncidentListResponse(page *models.IncidentPage) *IncidentListResponse {
	return &IncidentListResponse{
		Items:      ModelsToIncidentResponses(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func ModelsToStatusChangeResponses(history []*models.StatusChange) []*StatusChangeResponse {
	responses := make([]*StatusChangeResponse, len(history))
	for i, change := range history {
		responses[i] = &StatusChangeResponse{
			ID:         change.ID,
			FromStatus: string(change.FromStatus),
			ToStatus:   string(change.ToStatus),
			Reason:     change.Reason,
			Override:   change.Override,
			ChangedAt:  change.ChangedAt,
		}
	}
	return responses
}

func ModelToScheduleResponse(model *models.PatrolSchedule) *ScheduleResponse {
	staffIDs := model.StaffIDs
	if staffIDs == nil {
		staffIDs = []uuid.UUID{}
	}
	return &ScheduleResponse{
		ID:          model.ID,
		IncidentID:  model.IncidentID,
		StaffIDs:    staffIDs,
		ScheduledAt: model.ScheduledAt,
		PatrolDate:  model.PatrolDate.Format(patrolDateLayout),
		Status:      string(model.Status),
		Notes:       model.Notes,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ModelsToScheduleResponses(schedules []*models.PatrolSchedule) []*ScheduleResponse {
	responses := make([]*ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = ModelToScheduleResponse(schedule)
	}
	return responses
}

func ModelsToConflictResponses(conflicts []models.Conflict) []*ConflictResponse {
	responses := make([]*ConflictResponse, len(conflicts))
	for i, c := range conflicts {
		responses[i] = &ConflictResponse{
			StaffID:     c.StaffID,
			StaffName:   c.StaffName,
			ScheduleID:  c.ScheduleID,
			ScheduledAt: c.ScheduledAt,
		}
	}
	return responses
}

func ModelToStaffResponse(model *models.PatrolStaff) *StaffResponse {
	return &StaffResponse{
		ID:        model.ID,
		Name:      model.Name,
		Contact:   model.Contact,
		Active:    model.Active,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ModelsToStaffResponses(staff []*models.PatrolStaff) []*StaffResponse {
	responses := make([]*StaffResponse, len(staff))
	for i, member := range staff {
		responses[i] = ModelToStaffResponse(member)
	}
	return responses
}

func incidentCountsToMap(counts map[models.IncidentStatus]int) map[string]int {
	out := make(map[string]int, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return out
}

func scheduleCountsToMap(counts map[models.ScheduleStatus]int) map[string]int {
	out := make(map[string]int, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return out
}

func ModelToSummaryResponse(summary *models.StatusSummary) *SummaryResponse {
	return &SummaryResponse{
		Incidents:       incidentCountsToMap(summary.Incidents),
		Schedules:       scheduleCountsToMap(summary.Schedules),
		TotalIncidents:  summary.TotalIncidents,
		ActiveSchedules: summary.ActiveSchedules,
	}
}
