package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Обращения граждан и их жизненный цикл
	incidents := secured.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/approve", h.approveIncident)
		incidents.POST("/:id/reject", h.rejectIncident)
		incidents.PUT("/:id/status", h.setIncidentStatus)
		incidents.GET("/:id/history", h.getIncidentHistory)
	}

	// Выезды патрулей
	schedules := secured.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		schedules.POST("", h.createSchedule)
		schedules.POST("/conflicts", h.checkConflict)
		schedules.GET("/:id", h.getSchedule)
		schedules.POST("/:id/staff", h.addScheduleStaff)
		schedules.DELETE("/:id/staff/:staffId", h.removeScheduleStaff)
		schedules.PUT("/:id/status", h.advanceSchedule)
	}

	staff := secured.Group("/staff")
	{
		staff.GET("", h.listStaff)
		staff.POST("", h.createStaff)
		staff.GET("/:id", h.getStaff)
		staff.PUT("/:id/active", h.setStaffActive)
	}

	stats := secured.Group("/stats")
	{
		stats.GET("/status-counts", h.getStatusCounts)
		stats.GET("/summary", h.getSummary)
	}
}
