package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/repository/memory"
	"github.com/shenikar/animal_patrol_system/internal/service/mocks"
	"github.com/shenikar/animal_patrol_system/internal/webhook"
	webhook_mocks "github.com/shenikar/animal_patrol_system/internal/webhook/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	_ IncidentRepository = (*memory.IncidentRepository)(nil)
	_ ScheduleRepository = (*memory.ScheduleRepository)(nil)
	_ StaffRepository    = (*memory.StaffRepository)(nil)
	_ StatsRepository    = (*memory.StatsRepository)(nil)
)

// dispatch собирает все сервисы поверх хранилища в памяти
type dispatch struct {
	incidents IncidentService
	schedules ScheduleService
	staff     StaffService
	stats     StatsService
}

func newDispatch(t *testing.T) *dispatch {
	t.Helper()
	store := memory.NewStore()
	incidentRepo := memory.NewIncidentRepository(store)
	scheduleRepo := memory.NewScheduleRepository(store)
	staffRepo := memory.NewStaffRepository(store)
	logger := newTestLogger()
	publisher := webhook.NopPublisher{}

	return &dispatch{
		incidents: NewIncidentService(incidentRepo, logger, publisher),
		schedules: NewScheduleService(scheduleRepo, incidentRepo, staffRepo, NewConflictDetector(scheduleRepo, time.UTC), logger, publisher),
		staff:     NewStaffService(staffRepo, logger),
		stats:     NewStatsService(memory.NewStatsRepository(store), logger),
	}
}

func (d *dispatch) incident(t *testing.T, title string) *models.Incident {
	t.Helper()
	incident := validIncident()
	incident.Title = title
	require.NoError(t, d.incidents.CreateIncident(context.Background(), incident))
	return incident
}

func (d *dispatch) member(t *testing.T, name string) uuid.UUID {
	t.Helper()
	staff := &models.PatrolStaff{Name: name, Contact: "radio"}
	require.NoError(t, d.staff.CreateStaff(context.Background(), staff))
	return staff.ID
}

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func requireConflict(t *testing.T, err error, staffIDs ...uuid.UUID) {
	t.Helper()
	var conflictErr *models.ScheduleConflictError
	require.True(t, errors.As(err, &conflictErr), "expected schedule conflict, got %v", err)
	assert.ErrorIs(t, err, models.ErrScheduleConflict)

	got := make([]uuid.UUID, 0, len(conflictErr.Conflicts))
	for _, c := range conflictErr.Conflicts {
		got = append(got, c.StaffID)
	}
	assert.ElementsMatch(t, staffIDs, got)
}

func TestCreateSchedule_ConflictIsSymmetric(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	first := d.incident(t, "Собака")
	second := d.incident(t, "Кошка")
	a, b, c := d.member(t, "A"), d.member(t, "B"), d.member(t, "C")

	_, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: first.ID, StaffIDs: []uuid.UUID{a, b}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)

	_, err = d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: second.ID, StaffIDs: []uuid.UUID{b, c}, ScheduledAt: at("2024-01-10T18:30"),
	})
	requireConflict(t, err, b)
	assert.Contains(t, err.Error(), "B")

	conflicts, err := d.schedules.CheckConflict(ctx, []uuid.UUID{c, b}, at("2024-01-10T23:59"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "B", conflicts[0].StaffName)

	conflicts, err = d.schedules.CheckConflict(ctx, []uuid.UUID{b}, at("2024-01-11T00:00"))
	require.NoError(t, err)
	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts, "next day is free")
}

func TestCreateSchedule_ConcurrentRequestsBookStaffOnce(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	a := d.member(t, "A")

	const callers = 8
	incidents := make([]*models.Incident, callers)
	for i := range incidents {
		incidents[i] = d.incident(t, "Обращение")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(incidentID uuid.UUID) {
			defer wg.Done()
			<-start
			_, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
				IncidentID: incidentID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T09:00"),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, models.ErrScheduleConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(incidents[i].ID)
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, callers-1, conflicts)

	active, err := d.schedules.ListSchedules(ctx, models.ScheduleFilter{Status: models.ScheduleStatusScheduled})
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestCreateSchedule_SameIncidentConcurrently(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	incident := d.incident(t, "Собака")
	a := d.member(t, "A")

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
				IncidentID: incident.ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T09:00"),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, rejected int
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		if errors.Is(err, models.ErrScheduleConflict) || errors.Is(err, models.ErrIncidentHasActiveSchedule) {
			rejected++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
}

func TestCreateSchedule_Validation(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	open := d.incident(t, "Открытое")
	closed := d.incident(t, "Закрытое")
	_, err := d.incidents.SetIncidentStatus(ctx, closed.ID, models.IncidentStatusCancelled)
	require.NoError(t, err)

	a := d.member(t, "A")
	retired := d.member(t, "Retired")
	_, err = d.staff.SetStaffActive(ctx, retired, false)
	require.NoError(t, err)

	when := at("2024-01-10T09:00")
	tests := []struct {
		name    string
		input   models.ScheduleInput
		wantErr error
	}{
		{name: "no staff", input: models.ScheduleInput{IncidentID: open.ID, ScheduledAt: when}, wantErr: models.ErrValidation},
		{name: "nil staff id", input: models.ScheduleInput{IncidentID: open.ID, StaffIDs: []uuid.UUID{uuid.Nil}, ScheduledAt: when}, wantErr: models.ErrValidation},
		{name: "zero time", input: models.ScheduleInput{IncidentID: open.ID, StaffIDs: []uuid.UUID{a}}, wantErr: models.ErrValidation},
		{name: "unknown incident", input: models.ScheduleInput{IncidentID: uuid.New(), StaffIDs: []uuid.UUID{a}, ScheduledAt: when}, wantErr: models.ErrNotFound},
		{name: "terminal incident", input: models.ScheduleInput{IncidentID: closed.ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: when}, wantErr: models.ErrInvalidTransition},
		{name: "unknown staff", input: models.ScheduleInput{IncidentID: open.ID, StaffIDs: []uuid.UUID{uuid.New()}, ScheduledAt: when}, wantErr: models.ErrNotFound},
		{name: "inactive staff", input: models.ScheduleInput{IncidentID: open.ID, StaffIDs: []uuid.UUID{retired}, ScheduledAt: when}, wantErr: models.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.schedules.CreateSchedule(ctx, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	schedules, err := d.schedules.ListSchedules(ctx, models.ScheduleFilter{})
	require.NoError(t, err)
	assert.Empty(t, schedules, "no schedule is stored on any error path")
}

func TestCreateSchedule_DeduplicatesStaff(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	incident := d.incident(t, "Собака")
	a := d.member(t, "A")

	schedule, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incident.ID, StaffIDs: []uuid.UUID{a, a}, ScheduledAt: at("2024-01-10T09:00"), Notes: " взять переноску ",
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, schedule.StaffIDs)
	assert.Equal(t, "взять переноску", schedule.Notes)
	assert.Equal(t, models.ScheduleStatusScheduled, schedule.Status)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), schedule.PatrolDate)
}

func TestCreateSchedule_OneActiveSchedulePerIncident(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	incident := d.incident(t, "Собака")
	a, b := d.member(t, "A"), d.member(t, "B")

	_, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incident.ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)

	_, err = d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incident.ID, StaffIDs: []uuid.UUID{b}, ScheduledAt: at("2024-01-12T09:00"),
	})
	assert.ErrorIs(t, err, models.ErrIncidentHasActiveSchedule)
}

func TestCreateSchedule_DoesNotChangeIncidentStatus(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	incident := d.incident(t, "Собака")
	_, err := d.incidents.ApproveIncident(ctx, incident.ID)
	require.NoError(t, err)

	_, err = d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incident.ID, StaffIDs: []uuid.UUID{d.member(t, "A")}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)

	got, err := d.incidents.GetIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusVerified, got.Status)
}

func TestRemoveStaff_KeepsAtLeastOne(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	a, b := d.member(t, "A"), d.member(t, "B")

	single, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: d.incident(t, "1").ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)
	_, err = d.schedules.RemoveStaff(ctx, single.ID, a)
	assert.ErrorIs(t, err, models.ErrLastStaff)

	pair, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: d.incident(t, "2").ID, StaffIDs: []uuid.UUID{b, d.member(t, "C")}, ScheduledAt: at("2024-01-11T09:00"),
	})
	require.NoError(t, err)

	updated, err := d.schedules.RemoveStaff(ctx, pair.ID, b)
	require.NoError(t, err)
	assert.Len(t, updated.StaffIDs, 1)
	assert.False(t, updated.HasStaff(b))

	_, err = d.schedules.RemoveStaff(ctx, pair.ID, updated.StaffIDs[0])
	assert.ErrorIs(t, err, models.ErrLastStaff)

	_, err = d.schedules.RemoveStaff(ctx, pair.ID, b)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAddStaff_ChecksConflictsAndStatus(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	a, b, c := d.member(t, "A"), d.member(t, "B"), d.member(t, "C")

	busy, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: d.incident(t, "1").ID, StaffIDs: []uuid.UUID{b}, ScheduledAt: at("2024-01-10T07:00"),
	})
	require.NoError(t, err)
	schedule, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: d.incident(t, "2").ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)

	_, err = d.schedules.AddStaff(ctx, schedule.ID, b)
	requireConflict(t, err, b)

	_, err = d.schedules.AddStaff(ctx, schedule.ID, a)
	assert.ErrorIs(t, err, models.ErrValidation)

	updated, err := d.schedules.AddStaff(ctx, schedule.ID, c)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, c}, updated.StaffIDs)

	_, err = d.schedules.AdvanceSchedule(ctx, busy.ID, models.ScheduleStatusInProgress)
	require.NoError(t, err)
	_, err = d.schedules.AdvanceSchedule(ctx, busy.ID, models.ScheduleStatusCompleted)
	require.NoError(t, err)

	_, err = d.schedules.AddStaff(ctx, busy.ID, a)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	updated, err = d.schedules.AddStaff(ctx, schedule.ID, b)
	require.NoError(t, err, "completed schedule releases B")
	assert.True(t, updated.HasStaff(b))
}

func TestAdvanceSchedule_OnlyForward(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	schedule, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: d.incident(t, "1").ID, StaffIDs: []uuid.UUID{d.member(t, "A")}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)

	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusCompleted)
	assert.ErrorIs(t, err, models.ErrInvalidTransition, "cannot skip in_progress")

	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusScheduled)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, "paused")
	assert.ErrorIs(t, err, models.ErrValidation)

	updated, err := d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusInProgress, updated.Status)

	updated, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusCompleted, updated.Status)

	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusInProgress)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)

	_, err = d.schedules.AdvanceSchedule(ctx, uuid.New(), models.ScheduleStatusInProgress)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestIncidentLifecycle_EndToEnd(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()
	a, b := d.member(t, "A"), d.member(t, "B")

	incident := d.incident(t, "Собака у школы")
	assert.Equal(t, models.IncidentStatusPending, incident.Status)

	approved, err := d.incidents.ApproveIncident(ctx, incident.ID)
	require.NoError(t, err)
	assert.Equal(t, models.IncidentStatusVerified, approved.Status)

	schedule, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incident.ID, StaffIDs: []uuid.UUID{a, b}, ScheduledAt: at("2024-01-10T09:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleStatusScheduled, schedule.Status)

	other := d.incident(t, "Кошка на дереве")
	_, err = d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: other.ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T14:00"),
	})
	requireConflict(t, err, a)

	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusInProgress)
	require.NoError(t, err)
	_, err = d.schedules.AdvanceSchedule(ctx, schedule.ID, models.ScheduleStatusCompleted)
	require.NoError(t, err)

	again, err := d.schedules.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: other.ID, StaffIDs: []uuid.UUID{a}, ScheduledAt: at("2024-01-10T14:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a}, again.StaffIDs)

	history, err := d.incidents.GetStatusHistory(ctx, incident.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.IncidentStatusVerified, history[0].ToStatus)
}

func TestSetIncidentStatus_TerminalAlwaysFails(t *testing.T) {
	d := newDispatch(t)
	ctx := context.Background()

	for _, terminal := range []models.IncidentStatus{
		models.IncidentStatusResolved,
		models.IncidentStatusRejected,
		models.IncidentStatusCancelled,
	} {
		incident := d.incident(t, string(terminal))
		if terminal == models.IncidentStatusRejected {
			_, err := d.incidents.RejectIncident(ctx, incident.ID, "ложный вызов")
			require.NoError(t, err)
		} else {
			_, err := d.incidents.SetIncidentStatus(ctx, incident.ID, terminal)
			require.NoError(t, err)
		}

		for _, target := range models.IncidentStatuses {
			_, err := d.incidents.SetIncidentStatus(ctx, incident.ID, target)
			assert.ErrorIs(t, err, models.ErrInvalidTransition, "%s -> %s", terminal, target)
		}
		_, err := d.incidents.ApproveIncident(ctx, incident.ID)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		_, err = d.incidents.RejectIncident(ctx, incident.ID, "еще раз")
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	}
}

func TestCreateSchedule_PublishesEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	incidentRepo := mocks.NewMockIncidentRepository(ctrl)
	staffRepo := mocks.NewMockStaffRepository(ctrl)
	publisherMock := webhook_mocks.NewMockPublisher(ctrl)
	ctx := context.Background()

	service := NewScheduleService(scheduleRepo, incidentRepo, staffRepo,
		NewConflictDetector(scheduleRepo, time.UTC), newTestLogger(), publisherMock)

	incidentID, staffID, scheduleID := uuid.New(), uuid.New(), uuid.New()
	scheduledAt := at("2024-01-10T09:00")

	incidentRepo.EXPECT().
		GetByID(ctx, incidentID).
		Return(&models.Incident{ID: incidentID, Status: models.IncidentStatusVerified}, nil)
	staffRepo.EXPECT().
		GetByIDs(ctx, []uuid.UUID{staffID}).
		Return([]*models.PatrolStaff{{ID: staffID, Name: "A", Active: true}}, nil)
	scheduleRepo.EXPECT().
		FindConflicts(ctx, []uuid.UUID{staffID}, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)
	scheduleRepo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, schedule *models.PatrolSchedule) error {
			schedule.ID = scheduleID
			return nil
		})
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.Event) error {
			assert.Equal(t, webhook.EventScheduleCreated, event.Type)
			require.NotNil(t, event.ScheduleID)
			assert.Equal(t, scheduleID, *event.ScheduleID)
			assert.Equal(t, incidentID, event.IncidentID)
			return nil
		})

	schedule, err := service.CreateSchedule(ctx, models.ScheduleInput{
		IncidentID: incidentID, StaffIDs: []uuid.UUID{staffID}, ScheduledAt: scheduledAt,
	})

	require.NoError(t, err)
	assert.Equal(t, scheduleID, schedule.ID)
}

func TestConflictDetector_UsesConfiguredTimezone(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	loc := time.FixedZone("UTC+10", 10*60*60)
	detector := NewConflictDetector(scheduleRepo, loc)
	staffID := uuid.New()

	// 2024-01-10 20:00 UTC - это уже 11 января по местному времени
	scheduleRepo.EXPECT().
		FindConflicts(gomock.Any(), []uuid.UUID{staffID}, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)

	conflicts, err := detector.CheckConflict(context.Background(), []uuid.UUID{staffID}, time.Date(2024, 1, 10, 20, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, conflicts)
	assert.Empty(t, conflicts)
}

func TestConflictDetector_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	scheduleRepo := mocks.NewMockScheduleRepository(ctrl)
	detector := NewConflictDetector(scheduleRepo, nil)

	scheduleRepo.EXPECT().
		FindConflicts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, models.ErrTransient)

	_, err := detector.CheckConflict(context.Background(), []uuid.UUID{uuid.New()}, at("2024-01-10T09:00"))

	assert.ErrorIs(t, err, models.ErrTransient)
}
