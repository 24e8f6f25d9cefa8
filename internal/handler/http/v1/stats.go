package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get incident counts by status
// @Description Count incidents per status. Every known status is present, zero if unused. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]int
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/status-counts [get]
func (h *Handler) getStatusCounts(c *gin.Context) {
	log := h.logger.WithField("method", "getStatusCounts")

	counts, err := h.statsService.GetStatusCounts(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, incidentCountsToMap(counts))
}

// @Summary Get dashboard summary
// @Description Incident and schedule counts for the dispatcher dashboard. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	log := h.logger.WithField("method", "getSummary")

	summary, err := h.statsService.GetSummary(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToSummaryResponse(summary))
}
