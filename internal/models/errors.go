package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation                = errors.New("validation error")
	ErrNotFound                  = errors.New("not found")
	ErrInvalidTransition         = errors.New("invalid status transition")
	ErrScheduleConflict          = errors.New("schedule conflict")
	ErrLastStaff                 = errors.New("schedule must keep at least one assigned staff member")
	ErrIncidentHasActiveSchedule = errors.New("incident has an active patrol schedule")

	// ErrTransient помечает сбой хранилища, который можно повторить
	ErrTransient = errors.New("temporary storage failure")
)

// ScheduleConflictError несет список сотрудников, занятых в выбранный день
type ScheduleConflictError struct {
	Conflicts []Conflict
}

func NewScheduleConflictError(conflicts []Conflict) *ScheduleConflictError {
	return &ScheduleConflictError{Conflicts: conflicts}
}

func (e *ScheduleConflictError) Error() string {
	seen := make(map[string]struct{}, len(e.Conflicts))
	names := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		name := c.StaffName
		if name == "" {
			name = c.StaffID.String()
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return fmt.Sprintf("%s: %s already assigned to a patrol on this date", ErrScheduleConflict, strings.Join(names, ", "))
}

func (e *ScheduleConflictError) Unwrap() error {
	return ErrScheduleConflict
}
