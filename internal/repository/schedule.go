package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/service"
)

// errStaffDayTaken - проигранная гонка за уникальный индекс сотрудник-день
var errStaffDayTaken = errors.New("staff day already taken")

const scheduleSelect = `
	SELECT
		s.id,
		s.incident_id,
		s.scheduled_at,
		s.patrol_date,
		s.status,
		s.notes,
		s.created_at,
		s.updated_at,
		COALESCE(
			(SELECT array_agg(ss.staff_id::text ORDER BY ss.position)
			 FROM schedule_staff ss
			 WHERE ss.schedule_id = s.id),
			'{}'
		) AS staff_ids
	FROM patrol_schedules s`

type ScheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) service.ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func scanSchedule(row rowScanner) (*models.PatrolSchedule, error) {
	schedule := &models.PatrolSchedule{}
	var staffIDs []string
	err := row.Scan(
		&schedule.ID,
		&schedule.IncidentID,
		&schedule.ScheduledAt,
		&schedule.PatrolDate,
		&schedule.Status,
		&schedule.Notes,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
		&staffIDs,
	)
	if err != nil {
		return nil, err
	}
	if schedule.StaffIDs, err = parseUUIDs(staffIDs); err != nil {
		return nil, err
	}
	return schedule, nil
}

func getSchedule(ctx context.Context, q querier, id uuid.UUID) (*models.PatrolSchedule, error) {
	schedule, err := scanSchedule(q.QueryRow(ctx, scheduleSelect+` WHERE s.id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, id)
		}
		return nil, storageError("failed to get schedule by id", err)
	}
	return schedule, nil
}

// lockSchedule блокирует строку выезда до конца транзакции
func lockSchedule(ctx context.Context, tx pgx.Tx, id uuid.UUID) (models.ScheduleStatus, time.Time, error) {
	var (
		status     models.ScheduleStatus
		patrolDate time.Time
	)
	err := tx.QueryRow(ctx, `SELECT status, patrol_date FROM patrol_schedules WHERE id = $1 FOR UPDATE;`, id).Scan(&status, &patrolDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, id)
		}
		return "", time.Time{}, storageError("failed to lock schedule", err)
	}
	return status, patrolDate, nil
}

// requireStaff проверяет, что все сотрудники есть в реестре
func requireStaff(ctx context.Context, q querier, staffIDs []uuid.UUID) error {
	rows, err := q.Query(ctx, `SELECT id FROM patrol_staff WHERE id = ANY($1::uuid[]);`, uuidStrings(staffIDs))
	if err != nil {
		return storageError("failed to check staff", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]struct{}, len(staffIDs))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan staff id: %w", err)
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return storageError("error staff iteration", err)
	}
	for _, id := range staffIDs {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: staff %s does not exist", models.ErrNotFound, id)
		}
	}
	return nil
}

// findConflicts ищет активные выезды, занимающие сотрудников в день patrolDate, кроме выезда skip
func findConflicts(ctx context.Context, q querier, staffIDs []uuid.UUID, patrolDate time.Time, skip uuid.UUID) ([]models.Conflict, error) {
	query := `
		SELECT ss.staff_id, st.name, s.id, s.scheduled_at
		FROM schedule_staff ss
		JOIN patrol_schedules s ON s.id = ss.schedule_id
		JOIN patrol_staff st ON st.id = ss.staff_id
		WHERE ss.active
			AND ss.patrol_date = $2
			AND ss.staff_id = ANY($1::uuid[])
			AND s.status IN ('scheduled', 'in_progress')
			AND s.id <> $3
		ORDER BY st.name, s.id;
	`
	rows, err := q.Query(ctx, query, uuidStrings(staffIDs), patrolDate, skip)
	if err != nil {
		return nil, storageError("failed to find schedule conflicts", err)
	}
	defer rows.Close()

	conflicts := make([]models.Conflict, 0)
	for rows.Next() {
		var c models.Conflict
		if err := rows.Scan(&c.StaffID, &c.StaffName, &c.ScheduleID, &c.ScheduledAt); err != nil {
			return nil, fmt.Errorf("failed to scan conflict row: %w", err)
		}
		conflicts = append(conflicts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error conflict iteration", err)
	}
	return conflicts, nil
}

// conflictAfterRace собирает конфликт после нарушения уникального индекса, транзакция к этому моменту откачена
func (r *ScheduleRepository) conflictAfterRace(ctx context.Context, staffIDs []uuid.UUID, patrolDate time.Time, skip uuid.UUID) error {
	conflicts, err := findConflicts(ctx, r.db, staffIDs, patrolDate, skip)
	if err != nil {
		return err
	}
	if len(conflicts) == 0 {
		return fmt.Errorf("%w: staff was booked by a concurrent request", models.ErrScheduleConflict)
	}
	return models.NewScheduleConflictError(conflicts)
}

// Create вставляет выезд и его состав одной транзакцией, повторяя проверки под блокировкой обращения
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.PatrolSchedule) error {
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var status models.IncidentStatus
		err := tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1 FOR UPDATE;`, schedule.IncidentID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, schedule.IncidentID)
			}
			return storageError("failed to lock incident", err)
		}
		if status.IsTerminal() {
			return fmt.Errorf("%w: cannot schedule a patrol for a %s incident", models.ErrInvalidTransition, status)
		}

		active, err := hasActiveSchedule(ctx, tx, schedule.IncidentID)
		if err != nil {
			return err
		}
		if active {
			return models.ErrIncidentHasActiveSchedule
		}
		if err := requireStaff(ctx, tx, schedule.StaffIDs); err != nil {
			return err
		}

		conflicts, err := findConflicts(ctx, tx, schedule.StaffIDs, schedule.PatrolDate, uuid.Nil)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return models.NewScheduleConflictError(conflicts)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO patrol_schedules (incident_id, scheduled_at, patrol_date, status, notes)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at;
		`, schedule.IncidentID, schedule.ScheduledAt, schedule.PatrolDate, schedule.Status, schedule.Notes,
		).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err, constraintActiveSchedulePerCase) {
				return models.ErrIncidentHasActiveSchedule
			}
			return storageError("failed to create schedule", err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO schedule_staff (schedule_id, staff_id, patrol_date, position)
			SELECT $1, t.staff_id, $3, t.ord
			FROM unnest($2::uuid[]) WITH ORDINALITY AS t(staff_id, ord);
		`, schedule.ID, uuidStrings(schedule.StaffIDs), schedule.PatrolDate)
		if err != nil {
			if isUniqueViolation(err, constraintActiveStaffDay) {
				return errStaffDayTaken
			}
			return storageError("failed to assign schedule staff", err)
		}
		return nil
	})
	if errors.Is(err, errStaffDayTaken) {
		return r.conflictAfterRace(ctx, schedule.StaffIDs, schedule.PatrolDate, uuid.Nil)
	}
	return err
}

// GetByID возвращает выезд вместе с составом
func (r *ScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolSchedule, error) {
	return getSchedule(ctx, r.db, id)
}

// List возвращает выезды по фильтру, ближайшие первыми
func (r *ScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]*models.PatrolSchedule, error) {
	var (
		incidentID any
		status     any
	)
	if filter.IncidentID != uuid.Nil {
		incidentID = filter.IncidentID
	}
	if filter.Status != "" {
		status = string(filter.Status)
	}

	query := scheduleSelect + `
		WHERE ($1::uuid IS NULL OR s.incident_id = $1::uuid)
			AND ($2::text IS NULL OR s.status = $2::text)
		ORDER BY s.scheduled_at, s.id;
	`
	rows, err := r.db.Query(ctx, query, incidentID, status)
	if err != nil {
		return nil, storageError("failed to list schedules", err)
	}
	defer rows.Close()

	schedules := make([]*models.PatrolSchedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error schedule iteration", err)
	}
	return schedules, nil
}

func (r *ScheduleRepository) FindConflicts(ctx context.Context, staffIDs []uuid.UUID, patrolDate time.Time) ([]models.Conflict, error) {
	return findConflicts(ctx, r.db, staffIDs, patrolDate, uuid.Nil)
}

// AddStaff добавляет сотрудника в активный выезд под блокировкой строки выезда
func (r *ScheduleRepository) AddStaff(ctx context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error) {
	var (
		result     *models.PatrolSchedule
		patrolDate time.Time
	)
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		var (
			status models.ScheduleStatus
			err    error
		)
		status, patrolDate, err = lockSchedule(ctx, tx, scheduleID)
		if err != nil {
			return err
		}
		if !status.IsActive() {
			return fmt.Errorf("%w: staff cannot be added to a %s schedule", models.ErrInvalidTransition, status)
		}
		if err := requireStaff(ctx, tx, []uuid.UUID{staffID}); err != nil {
			return err
		}

		conflicts, err := findConflicts(ctx, tx, []uuid.UUID{staffID}, patrolDate, scheduleID)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return models.NewScheduleConflictError(conflicts)
		}

		cmdTag, err := tx.Exec(ctx, `
			INSERT INTO schedule_staff (schedule_id, staff_id, patrol_date, position)
			SELECT $1, $2, $3, COALESCE(MAX(position), 0) + 1
			FROM schedule_staff
			WHERE schedule_id = $1
			ON CONFLICT (schedule_id, staff_id) DO NOTHING;
		`, scheduleID, staffID, patrolDate)
		if err != nil {
			if isUniqueViolation(err, constraintActiveStaffDay) {
				return errStaffDayTaken
			}
			return storageError("failed to add schedule staff", err)
		}
		if cmdTag.RowsAffected() > 0 {
			if _, err := tx.Exec(ctx, `UPDATE patrol_schedules SET updated_at = $2 WHERE id = $1;`, scheduleID, updatedAt); err != nil {
				return storageError("failed to touch schedule", err)
			}
		}

		result, err = getSchedule(ctx, tx, scheduleID)
		return err
	})
	if errors.Is(err, errStaffDayTaken) {
		return nil, r.conflictAfterRace(ctx, []uuid.UUID{staffID}, patrolDate, scheduleID)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RemoveStaff снимает сотрудника с выезда; последнего снять нельзя
func (r *ScheduleRepository) RemoveStaff(ctx context.Context, scheduleID, staffID uuid.UUID, updatedAt time.Time) (*models.PatrolSchedule, error) {
	var result *models.PatrolSchedule
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, _, err := lockSchedule(ctx, tx, scheduleID); err != nil {
			return err
		}

		var (
			assigned bool
			size     int
		)
		err := tx.QueryRow(ctx, `
			SELECT COALESCE(bool_or(staff_id = $2), FALSE), COUNT(*)
			FROM schedule_staff
			WHERE schedule_id = $1;
		`, scheduleID, staffID).Scan(&assigned, &size)
		if err != nil {
			return storageError("failed to read schedule staff", err)
		}
		if !assigned {
			return fmt.Errorf("%w: staff %s is not assigned to schedule %s", models.ErrNotFound, staffID, scheduleID)
		}
		if size <= 1 {
			return models.ErrLastStaff
		}

		if _, err := tx.Exec(ctx, `DELETE FROM schedule_staff WHERE schedule_id = $1 AND staff_id = $2;`, scheduleID, staffID); err != nil {
			return storageError("failed to remove schedule staff", err)
		}
		if _, err := tx.Exec(ctx, `UPDATE patrol_schedules SET updated_at = $2 WHERE id = $1;`, scheduleID, updatedAt); err != nil {
			return storageError("failed to touch schedule", err)
		}

		result, err = getSchedule(ctx, tx, scheduleID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus меняет статус выезда, только если он все еще равен from.
// Завершение освобождает дни сотрудников в той же транзакции.
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to models.ScheduleStatus, updatedAt time.Time) (*models.PatrolSchedule, error) {
	var result *models.PatrolSchedule
	err := withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE patrol_schedules SET
				status = $3,
				updated_at = $4
			WHERE id = $1 AND status = $2;
		`, id, from, to, updatedAt)
		if err != nil {
			return storageError("failed to update schedule status", err)
		}
		if cmdTag.RowsAffected() == 0 {
			var current models.ScheduleStatus
			err := tx.QueryRow(ctx, `SELECT status FROM patrol_schedules WHERE id = $1;`, id).Scan(&current)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: schedule with id %s", models.ErrNotFound, id)
			}
			if err != nil {
				return storageError("failed to read schedule status", err)
			}
			return fmt.Errorf("%w: schedule status changed from %s to %s concurrently", models.ErrInvalidTransition, from, current)
		}

		if !to.IsActive() {
			if _, err := tx.Exec(ctx, `UPDATE schedule_staff SET active = FALSE WHERE schedule_id = $1;`, id); err != nil {
				return storageError("failed to release schedule staff", err)
			}
		}

		result, err = getSchedule(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
