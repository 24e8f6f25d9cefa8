package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var patrolDay = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

func seedIncident(t *testing.T, repo *IncidentRepository, title string, status models.IncidentStatus) *models.Incident {
	t.Helper()
	incident := &models.Incident{
		Title:           title,
		Description:     "stray dog near the school",
		LocationText:    "Lenina 1",
		ReporterName:    "Ivan",
		ReporterContact: "+7000",
		Priority:        models.PriorityMedium,
		Status:          status,
	}
	require.NoError(t, repo.Create(context.Background(), incident))
	return incident
}

func seedStaff(t *testing.T, repo *StaffRepository, name string) *models.PatrolStaff {
	t.Helper()
	staff := &models.PatrolStaff{Name: name, Active: true}
	require.NoError(t, repo.Create(context.Background(), staff))
	return staff
}

func newSchedule(incidentID uuid.UUID, staff ...uuid.UUID) *models.PatrolSchedule {
	return &models.PatrolSchedule{
		IncidentID:  incidentID,
		StaffIDs:    staff,
		ScheduledAt: patrolDay.Add(9 * time.Hour),
		PatrolDate:  patrolDay,
		Status:      models.ScheduleStatusScheduled,
	}
}

func TestIncidentRepository_ListFiltersAndPages(t *testing.T) {
	store := NewStore()
	repo := NewIncidentRepository(store)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	for i := 0; i < 5; i++ {
		seedIncident(t, repo, fmt.Sprintf("Dog %d", i), models.IncidentStatusPending)
	}
	seedIncident(t, repo, "Injured cat", models.IncidentStatusResolved)

	items, total, err := repo.List(ctx, models.IncidentFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, items, 2)
	assert.Equal(t, "Injured cat", items[0].Title, "newest first")

	items, total, err = repo.List(ctx, models.IncidentFilter{Page: 4, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Empty(t, items)

	items, total, err = repo.List(ctx, models.IncidentFilter{Search: "cat", Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Injured cat", items[0].Title)

	_, total, err = repo.List(ctx, models.IncidentFilter{ActiveOnly: true, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	_, total, err = repo.List(ctx, models.IncidentFilter{Status: models.IncidentStatusResolved, Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestIncidentRepository_UpdateStatusCompareAndSet(t *testing.T) {
	store := NewStore()
	repo := NewIncidentRepository(store)
	ctx := context.Background()
	incident := seedIncident(t, repo, "Dog", models.IncidentStatusPending)

	incident.Status = models.IncidentStatusVerified
	change := &models.StatusChange{IncidentID: incident.ID, FromStatus: models.IncidentStatusPending, ToStatus: models.IncidentStatusVerified}
	require.NoError(t, repo.UpdateStatus(ctx, incident, models.IncidentStatusPending, change))
	assert.Equal(t, int64(1), change.ID)

	// второй писатель все еще думает, что обращение в pending
	stale := *incident
	stale.Status = models.IncidentStatusRejected
	err := repo.UpdateStatus(ctx, &stale, models.IncidentStatusPending, &models.StatusChange{IncidentID: incident.ID})
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	got, err := repo.GetByID(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusVerified, got.Status)

	history, err := repo.ListStatusHistory(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.IncidentStatusVerified, history[0].ToStatus)
}

func TestIncidentRepository_ReturnsCopies(t *testing.T) {
	repo := NewIncidentRepository(NewStore())
	incident := seedIncident(t, repo, "Dog", models.IncidentStatusPending)
	incident.Title = "mutated by caller"

	got, err := repo.GetByID(context.Background(), incident.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dog", got.Title)
}

func TestIncidentRepository_DeleteBlockedByActiveSchedule(t *testing.T) {
	store := NewStore()
	incidents := NewIncidentRepository(store)
	schedules := NewScheduleRepository(store)
	staff := NewStaffRepository(store)
	ctx := context.Background()

	incident := seedIncident(t, incidents, "Dog", models.IncidentStatusVerified)
	member := seedStaff(t, staff, "Anna")
	schedule := newSchedule(incident.ID, member.ID)
	require.NoError(t, schedules.Create(ctx, schedule))

	err := incidents.Delete(ctx, incident.ID)
	assert.ErrorIs(t, err, models.ErrIncidentHasActiveSchedule)

	_, err = schedules.UpdateStatus(ctx, schedule.ID, models.ScheduleStatusScheduled, models.ScheduleStatusCompleted, time.Now())
	require.NoError(t, err)

	require.NoError(t, incidents.Delete(ctx, incident.ID))
	_, err = incidents.GetByID(ctx, incident.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = schedules.GetByID(ctx, schedule.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestScheduleRepository_CreateRechecksInvariants(t *testing.T) {
	store := NewStore()
	incidents := NewIncidentRepository(store)
	schedules := NewScheduleRepository(store)
	staff := NewStaffRepository(store)
	ctx := context.Background()

	first := seedIncident(t, incidents, "Dog", models.IncidentStatusVerified)
	second := seedIncident(t, incidents, "Cat", models.IncidentStatusVerified)
	closed := seedIncident(t, incidents, "Bird", models.IncidentStatusResolved)
	anna := seedStaff(t, staff, "Anna")
	boris := seedStaff(t, staff, "Boris")

	require.NoError(t, schedules.Create(ctx, newSchedule(first.ID, anna.ID)))

	err := schedules.Create(ctx, newSchedule(first.ID, boris.ID))
	assert.ErrorIs(t, err, models.ErrIncidentHasActiveSchedule)

	err = schedules.Create(ctx, newSchedule(second.ID, boris.ID, anna.ID))
	var conflictErr *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "Anna", conflictErr.Conflicts[0].StaffName)

	err = schedules.Create(ctx, newSchedule(closed.ID, boris.ID))
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	err = schedules.Create(ctx, newSchedule(uuid.New(), boris.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	other := newSchedule(second.ID, boris.ID)
	other.PatrolDate = patrolDay.AddDate(0, 0, 1)
	assert.NoError(t, schedules.Create(ctx, other), "another day is free")
}

func TestScheduleRepository_StaffChanges(t *testing.T) {
	store := NewStore()
	incidents := NewIncidentRepository(store)
	schedules := NewScheduleRepository(store)
	staff := NewStaffRepository(store)
	ctx := context.Background()

	incident := seedIncident(t, incidents, "Dog", models.IncidentStatusVerified)
	anna := seedStaff(t, staff, "Anna")
	boris := seedStaff(t, staff, "Boris")
	schedule := newSchedule(incident.ID, anna.ID)
	require.NoError(t, schedules.Create(ctx, schedule))

	_, err := schedules.RemoveStaff(ctx, schedule.ID, anna.ID, time.Now())
	assert.ErrorIs(t, err, models.ErrLastStaff)

	updated, err := schedules.AddStaff(ctx, schedule.ID, boris.ID, time.Now())
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{anna.ID, boris.ID}, updated.StaffIDs)

	updated, err = schedules.RemoveStaff(ctx, schedule.ID, anna.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{boris.ID}, updated.StaffIDs)

	_, err = schedules.RemoveStaff(ctx, schedule.ID, anna.ID, time.Now())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestScheduleRepository_CompletedScheduleReleasesStaff(t *testing.T) {
	store := NewStore()
	incidents := NewIncidentRepository(store)
	schedules := NewScheduleRepository(store)
	staff := NewStaffRepository(store)
	ctx := context.Background()

	incident := seedIncident(t, incidents, "Dog", models.IncidentStatusVerified)
	anna := seedStaff(t, staff, "Anna")
	schedule := newSchedule(incident.ID, anna.ID)
	require.NoError(t, schedules.Create(ctx, schedule))

	conflicts, err := schedules.FindConflicts(ctx, []uuid.UUID{anna.ID}, patrolDay)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	_, err = schedules.UpdateStatus(ctx, schedule.ID, models.ScheduleStatusInProgress, models.ScheduleStatusCompleted, time.Now())
	assert.ErrorIs(t, err, models.ErrInvalidTransition, "stale from status")

	_, err = schedules.UpdateStatus(ctx, schedule.ID, models.ScheduleStatusScheduled, models.ScheduleStatusInProgress, time.Now())
	require.NoError(t, err)
	_, err = schedules.UpdateStatus(ctx, schedule.ID, models.ScheduleStatusInProgress, models.ScheduleStatusCompleted, time.Now())
	require.NoError(t, err)

	conflicts, err = schedules.FindConflicts(ctx, []uuid.UUID{anna.ID}, patrolDay)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestStatsRepository_Counts(t *testing.T) {
	store := NewStore()
	incidents := NewIncidentRepository(store)
	stats := NewStatsRepository(store)

	seedIncident(t, incidents, "a", models.IncidentStatusPending)
	seedIncident(t, incidents, "b", models.IncidentStatusPending)
	seedIncident(t, incidents, "c", models.IncidentStatusRejected)

	counts, err := stats.CountIncidentsByStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[models.IncidentStatus]int{
		models.IncidentStatusPending:  2,
		models.IncidentStatusRejected: 1,
	}, counts)

	scheduleCounts, err := stats.CountSchedulesByStatus(context.Background())
	require.NoError(t, err)
	assert.Empty(t, scheduleCounts)
}
