package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

// @Summary List patrol schedules
// @Description List patrol schedules ordered by time. Requires API key.
// @Tags Schedules
// @Produce json
// @Security ApiKeyAuth
// @Param incidentId query string false "Filter by incident ID"
// @Param status query string false "Filter by schedule status"
// @Success 200 {array} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules [get]
func (h *Handler) listSchedules(c *gin.Context) {
	log := h.logger.WithField("method", "listSchedules")

	filter := models.ScheduleFilter{
		Status: models.ScheduleStatus(strings.TrimSpace(c.Query("status"))),
	}
	if raw := strings.TrimSpace(c.Query("incidentId")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid incidentId filter")
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incidentId"})
			return
		}
		filter.IncidentID = id
	}

	schedules, err := h.scheduleService.ListSchedules(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToScheduleResponses(schedules))
}

// @Summary Get patrol schedule by ID
// @Description Get a single patrol schedule. Requires API key.
// @Tags Schedules
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid schedule ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id} [get]
func (h *Handler) getSchedule(c *gin.Context) {
	log := h.logger.WithField("method", "getSchedule")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.GetSchedule(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("schedule_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToScheduleResponse(schedule))
}

// @Summary Check staff availability
// @Description Report which of the given staff already have an active patrol on the same day. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param check body ConflictCheckRequest true "Staff and planned time"
// @Success 200 {object} ConflictCheckResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/conflicts [post]
func (h *Handler) checkConflict(c *gin.Context) {
	var input ConflictCheckRequest
	log := h.logger.WithField("method", "checkConflict")

	if !h.bindJSON(c, log, &input) {
		return
	}

	staffIDs, err := parseUUIDs(input.StaffIDs)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	scheduledAt, err := parseScheduledAt(input.ScheduledAt, h.cfg.Location())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	conflicts, err := h.scheduleService.CheckConflict(c.Request.Context(), staffIDs, scheduledAt)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ConflictCheckResponse{
		HasConflict: len(conflicts) > 0,
		Conflicts:   ModelsToConflictResponses(conflicts),
	})
}

// @Summary Create a patrol schedule
// @Description Assign staff to an incident for a given time. Fails with 409 if any of them is already busy that day. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param schedule body CreateScheduleRequest true "Schedule creation request"
// @Success 201 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident or staff not found"
// @Failure 409 {object} map[string]interface{} "Staff conflict"
// @Failure 422 {object} map[string]string "Incident is closed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules [post]
func (h *Handler) createSchedule(c *gin.Context) {
	var input CreateScheduleRequest
	log := h.logger.WithField("method", "createSchedule")

	if !h.bindJSON(c, log, &input) {
		return
	}

	incidentID, err := uuid.Parse(input.IncidentID)
	if err != nil {
		log.WithError(err).Warn("Invalid incident_id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident_id"})
		return
	}
	staffIDs, err := parseUUIDs(input.StaffIDs)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	scheduledAt, err := parseScheduledAt(input.ScheduledAt, h.cfg.Location())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	schedule, err := h.scheduleService.CreateSchedule(c.Request.Context(), models.ScheduleInput{
		IncidentID:  incidentID,
		StaffIDs:    staffIDs,
		ScheduledAt: scheduledAt,
		Notes:       input.Notes,
	})
	if err != nil {
		h.respondError(c, log.WithField("incident_id", incidentID), err)
		return
	}

	c.JSON(http.StatusCreated, ModelToScheduleResponse(schedule))
}

// @Summary Add staff to a schedule
// @Description Add one staff member to an active schedule, subject to the same-day conflict check. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule ID"
// @Param staff body ScheduleStaffRequest true "Staff to add"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule or staff not found"
// @Failure 409 {object} map[string]interface{} "Staff conflict"
// @Failure 422 {object} map[string]string "Schedule is completed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id}/staff [post]
func (h *Handler) addScheduleStaff(c *gin.Context) {
	log := h.logger.WithField("method", "addScheduleStaff")
	scheduleID, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	var input ScheduleStaffRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	staffID, err := uuid.Parse(input.StaffID)
	if err != nil {
		log.WithError(err).Warn("Invalid staff_id")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid staff_id"})
		return
	}

	schedule, err := h.scheduleService.AddStaff(c.Request.Context(), scheduleID, staffID)
	if err != nil {
		h.respondError(c, log.WithField("schedule_id", scheduleID), err)
		return
	}

	c.JSON(http.StatusOK, ModelToScheduleResponse(schedule))
}

// @Summary Remove staff from a schedule
// @Description Remove one staff member. The last assigned member cannot be removed. Requires API key.
// @Tags Schedules
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule ID"
// @Param staffId path string true "Staff ID"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule not found or staff not assigned"
// @Failure 422 {object} map[string]string "Last staff member"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id}/staff/{staffId} [delete]
func (h *Handler) removeScheduleStaff(c *gin.Context) {
	log := h.logger.WithField("method", "removeScheduleStaff")
	scheduleID, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}
	staffID, ok := h.pathID(c, log, "staffId")
	if !ok {
		return
	}

	schedule, err := h.scheduleService.RemoveStaff(c.Request.Context(), scheduleID, staffID)
	if err != nil {
		h.respondError(c, log.WithField("schedule_id", scheduleID), err)
		return
	}

	c.JSON(http.StatusOK, ModelToScheduleResponse(schedule))
}

// @Summary Advance schedule status
// @Description Move a schedule forward: scheduled, in_progress, completed. Requires API key.
// @Tags Schedules
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Schedule ID"
// @Param status body AdvanceScheduleRequest true "Target status"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Schedule not found"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /schedules/{id}/status [put]
func (h *Handler) advanceSchedule(c *gin.Context) {
	log := h.logger.WithField("method", "advanceSchedule")
	scheduleID, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	var input AdvanceScheduleRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	schedule, err := h.scheduleService.AdvanceSchedule(c.Request.Context(), scheduleID, models.ScheduleStatus(input.Status))
	if err != nil {
		h.respondError(c, log.WithField("schedule_id", scheduleID), err)
		return
	}

	c.JSON(http.StatusOK, ModelToScheduleResponse(schedule))
}
