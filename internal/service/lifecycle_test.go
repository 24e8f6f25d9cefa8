package service

import (
	"testing"

	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckOverride(t *testing.T) {
	tests := []struct {
		from, to     models.IncidentStatus
		wantOverride bool
		wantErr      error
	}{
		{from: models.IncidentStatusPending, to: models.IncidentStatusVerified},
		{from: models.IncidentStatusPending, to: models.IncidentStatusCancelled},
		{from: models.IncidentStatusVerified, to: models.IncidentStatusInProgress},
		{from: models.IncidentStatusInProgress, to: models.IncidentStatusResolved},
		{from: models.IncidentStatusVerified, to: models.IncidentStatusPending, wantOverride: true},
		{from: models.IncidentStatusInProgress, to: models.IncidentStatusRejected, wantOverride: true},
		{from: models.IncidentStatusInProgress, to: models.IncidentStatusInProgress, wantErr: models.ErrInvalidTransition},
		{from: models.IncidentStatusResolved, to: models.IncidentStatusPending, wantErr: models.ErrInvalidTransition},
		{from: models.IncidentStatusRejected, to: models.IncidentStatusVerified, wantErr: models.ErrInvalidTransition},
		{from: models.IncidentStatusCancelled, to: models.IncidentStatusResolved, wantErr: models.ErrInvalidTransition},
		{from: models.IncidentStatusPending, to: "closed", wantErr: models.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			override, err := checkOverride(tt.from, tt.to)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOverride, override)
		})
	}
}

func TestCheckDecision_OnlyFromPending(t *testing.T) {
	for _, from := range models.IncidentStatuses {
		err := checkDecision(from, models.IncidentStatusVerified)
		if from == models.IncidentStatusPending {
			assert.NoError(t, err)
			continue
		}
		assert.ErrorIs(t, err, models.ErrInvalidTransition, string(from))
	}
}

func TestIncidentGraph_TerminalStatusesHaveNoEdges(t *testing.T) {
	for _, status := range models.IncidentStatuses {
		if status.IsTerminal() {
			assert.Empty(t, incidentGraph[status], string(status))
		}
		for _, next := range incidentGraph[status] {
			assert.True(t, next.IsValid())
			assert.NotEqual(t, status, next)
		}
	}
}

func TestCheckScheduleAdvance(t *testing.T) {
	assert.NoError(t, checkScheduleAdvance(models.ScheduleStatusScheduled, models.ScheduleStatusInProgress))
	assert.NoError(t, checkScheduleAdvance(models.ScheduleStatusInProgress, models.ScheduleStatusCompleted))
	assert.ErrorIs(t, checkScheduleAdvance(models.ScheduleStatusScheduled, models.ScheduleStatusCompleted), models.ErrInvalidTransition)
	assert.ErrorIs(t, checkScheduleAdvance(models.ScheduleStatusCompleted, models.ScheduleStatusScheduled), models.ErrInvalidTransition)
	assert.ErrorIs(t, checkScheduleAdvance(models.ScheduleStatusInProgress, models.ScheduleStatusScheduled), models.ErrInvalidTransition)
	assert.ErrorIs(t, checkScheduleAdvance(models.ScheduleStatusScheduled, "cancelled"), models.ErrValidation)
}
