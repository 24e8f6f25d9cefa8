package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

// @Summary Register a new incident
// @Description Register a citizen report. New incidents start in pending status. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToIncidentModel(input)
	if err := h.incidentService.CreateIncident(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(model))
}

// @Summary Get a list of incidents
// @Description Get a filtered, paginated list of incidents, newest first. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param q query string false "Search in title, description, location and reporter"
// @Param active query bool false "Only non-terminal incidents"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {object} IncidentListResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	filter := models.IncidentFilter{
		Status:     models.IncidentStatus(strings.TrimSpace(c.Query("status"))),
		Search:     c.Query("q"),
		ActiveOnly: activeOnly,
		Page:       page,
		PageSize:   pageSize,
	}

	result, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentListResponse(result))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Delete an incident
// @Description Delete an incident together with its history. Refused while a patrol is still active. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 409 {object} map[string]string "Incident has an active schedule"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [delete]
func (h *Handler) deleteIncident(c *gin.Context) {
	log := h.logger.WithField("method", "deleteIncident")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	if err := h.incidentService.DeleteIncident(c.Request.Context(), id); err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Approve an incident
// @Description Move a pending incident to verified. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/approve [post]
func (h *Handler) approveIncident(c *gin.Context) {
	log := h.logger.WithField("method", "approveIncident")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	incident, err := h.incidentService.ApproveIncident(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Reject an incident
// @Description Move a pending incident to rejected with a mandatory reason. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param rejection body RejectIncidentRequest true "Rejection reason"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Incident is not pending"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/reject [post]
func (h *Handler) rejectIncident(c *gin.Context) {
	log := h.logger.WithField("method", "rejectIncident")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	var input RejectIncidentRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.RejectIncident(c.Request.Context(), id, input.Reason)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Set incident status
// @Description Operator override of the incident status. Terminal incidents cannot be changed. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Param status body SetIncidentStatusRequest true "Target status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 422 {object} map[string]string "Transition not allowed"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [put]
func (h *Handler) setIncidentStatus(c *gin.Context) {
	log := h.logger.WithField("method", "setIncidentStatus")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	var input SetIncidentStatusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	incident, err := h.incidentService.SetIncidentStatus(c.Request.Context(), id, models.IncidentStatus(input.Status))
	if err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident status history
// @Description Get the audit trail of status changes, oldest first. Requires API key.
// @Tags Incidents
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} StatusChangeResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/history [get]
func (h *Handler) getIncidentHistory(c *gin.Context) {
	log := h.logger.WithField("method", "getIncidentHistory")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	history, err := h.incidentService.GetStatusHistory(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelsToStatusChangeResponses(history))
}
