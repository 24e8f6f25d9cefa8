package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/animal_patrol_system/internal/models"
)

// @Summary Register patrol staff
// @Description Register a new field staff member. Requires API key.
// @Tags Staff
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param staff body CreateStaffRequest true "Staff creation request"
// @Success 201 {object} StaffResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /staff [post]
func (h *Handler) createStaff(c *gin.Context) {
	var input CreateStaffRequest
	log := h.logger.WithField("method", "createStaff")

	if !h.bindJSON(c, log, &input) {
		return
	}

	member := &models.PatrolStaff{Name: input.Name, Contact: input.Contact}
	if err := h.staffService.CreateStaff(c.Request.Context(), member); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToStaffResponse(member))
}

// @Summary List patrol staff
// @Description List staff members ordered by name. Requires API key.
// @Tags Staff
// @Produce json
// @Security ApiKeyAuth
// @Param active query bool false "Only active staff"
// @Success 200 {array} StaffResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /staff [get]
func (h *Handler) listStaff(c *gin.Context) {
	log := h.logger.WithField("method", "listStaff")
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active", "false"))

	staff, err := h.staffService.ListStaff(c.Request.Context(), activeOnly)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToStaffResponses(staff))
}

// @Summary Get patrol staff by ID
// @Tags Staff
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Staff ID"
// @Success 200 {object} StaffResponse
// @Failure 400 {object} map[string]string "Invalid staff ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /staff/{id} [get]
func (h *Handler) getStaff(c *gin.Context) {
	log := h.logger.WithField("method", "getStaff")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	member, err := h.staffService.GetStaff(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log.WithField("staff_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToStaffResponse(member))
}

// @Summary Activate or deactivate patrol staff
// @Description Inactive staff cannot be assigned to new patrols. Requires API key.
// @Tags Staff
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Staff ID"
// @Param active body SetStaffActiveRequest true "Active flag"
// @Success 200 {object} StaffResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Staff not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /staff/{id}/active [put]
func (h *Handler) setStaffActive(c *gin.Context) {
	log := h.logger.WithField("method", "setStaffActive")
	id, ok := h.pathID(c, log, "id")
	if !ok {
		return
	}

	var input SetStaffActiveRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	member, err := h.staffService.SetStaffActive(c.Request.Context(), id, *input.Active)
	if err != nil {
		h.respondError(c, log.WithField("staff_id", id), err)
		return
	}

	c.JSON(http.StatusOK, ModelToStaffResponse(member))
}
