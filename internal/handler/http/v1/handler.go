package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/config"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService service.IncidentService
	scheduleService service.ScheduleService
	staffService    service.StaffService
	statsService    service.StatsService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	scheduleService service.ScheduleService,
	staffService service.StaffService,
	statsService service.StatsService,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		scheduleService: scheduleService,
		staffService:    staffService,
		statsService:    statsService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// bindJSON читает тело запроса и прогоняет его через валидатор
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func (h *Handler) pathID(c *gin.Context, log *logrus.Entry, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		log.WithError(err).Warnf("Invalid %s format", name)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}

// respondError переводит доменные ошибки в HTTP-статусы
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var conflictErr *models.ScheduleConflictError
	switch {
	case errors.As(err, &conflictErr):
		log.WithError(err).Info("Staff already assigned on this day")
		c.JSON(http.StatusConflict, gin.H{
			"error":     conflictErr.Error(),
			"conflicts": ModelsToConflictResponses(conflictErr.Conflicts),
		})
	case errors.Is(err, models.ErrScheduleConflict):
		log.WithError(err).Info("Staff already assigned on this day")
		c.JSON(http.StatusConflict, gin.H{
			"error":     err.Error(),
			"conflicts": []*ConflictResponse{},
		})
	case errors.Is(err, models.ErrValidation):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidTransition), errors.Is(err, models.ErrLastStaff):
		log.WithError(err).Warn("Operation rejected")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrIncidentHasActiveSchedule):
		log.WithError(err).Warn("Incident still has an active schedule")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrTransient):
		log.WithError(err).Error("Temporary storage failure")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporary storage failure, please retry"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
