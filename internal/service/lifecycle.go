package service

import (
	"fmt"

	"github.com/shenikar/animal_patrol_system/internal/models"
)

// incidentGraph - штатные переходы статусов обращения.
// Решение по новому обращению принимается только через approve/reject,
// остальное операторы выставляют вручную из любого нетерминального статуса.
var incidentGraph = map[models.IncidentStatus][]models.IncidentStatus{
	models.IncidentStatusPending: {
		models.IncidentStatusVerified,
		models.IncidentStatusRejected,
		models.IncidentStatusInProgress,
		models.IncidentStatusResolved,
		models.IncidentStatusCancelled,
	},
	models.IncidentStatusVerified: {
		models.IncidentStatusInProgress,
		models.IncidentStatusResolved,
		models.IncidentStatusCancelled,
	},
	models.IncidentStatusInProgress: {
		models.IncidentStatusResolved,
		models.IncidentStatusCancelled,
	},
}

// onGraph сообщает, входит ли переход в штатный граф
func onGraph(from, to models.IncidentStatus) bool {
	for _, next := range incidentGraph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// checkDecision проверяет первичное решение по обращению (approve/reject)
func checkDecision(from, to models.IncidentStatus) error {
	if from != models.IncidentStatusPending {
		return fmt.Errorf("%w: cannot move incident from %s to %s, only pending incidents can be decided", models.ErrInvalidTransition, from, to)
	}
	return nil
}

// checkOverride проверяет ручную смену статуса оператором.
// Возвращает true, если переход выходит за штатный граф.
func checkOverride(from, to models.IncidentStatus) (bool, error) {
	if !to.IsValid() {
		return false, fmt.Errorf("%w: unknown incident status %q", models.ErrValidation, to)
	}
	if from.IsTerminal() {
		return false, fmt.Errorf("%w: incident is already %s", models.ErrInvalidTransition, from)
	}
	if from == to {
		return false, fmt.Errorf("%w: incident is already %s", models.ErrInvalidTransition, from)
	}
	return !onGraph(from, to), nil
}

// checkScheduleAdvance разрешает только движение вперед: scheduled -> in_progress -> completed
func checkScheduleAdvance(from, to models.ScheduleStatus) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: unknown schedule status %q", models.ErrValidation, to)
	}
	next, ok := from.Next()
	if !ok || next != to {
		return fmt.Errorf("%w: cannot move schedule from %s to %s", models.ErrInvalidTransition, from, to)
	}
	return nil
}
