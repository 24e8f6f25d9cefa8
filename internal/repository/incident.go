package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/animal_patrol_system/internal/models"
	"github.com/shenikar/animal_patrol_system/internal/service"
)

const incidentColumns = `
	id,
	title,
	description,
	location_text,
	latitude,
	longitude,
	reporter_name,
	reporter_contact,
	priority,
	status,
	rejection_reason,
	created_at,
	updated_at`

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	err := row.Scan(
		&incident.ID,
		&incident.Title,
		&incident.Description,
		&incident.LocationText,
		&incident.Latitude,
		&incident.Longitude,
		&incident.ReporterName,
		&incident.ReporterContact,
		&incident.Priority,
		&incident.Status,
		&incident.RejectionReason,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return incident, nil
}

// Create создает новую запись об обращении в бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (title, description, location_text, latitude, longitude,
			reporter_name, reporter_contact, priority, status, rejection_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Title,
		incident.Description,
		incident.LocationText,
		incident.Latitude,
		incident.Longitude,
		incident.ReporterName,
		incident.ReporterContact,
		incident.Priority,
		incident.Status,
		incident.RejectionReason,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return storageError("failed to create incident", err)
	}
	return nil
}

// GetByID возвращает обращение по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + ` FROM incidents WHERE id = $1;`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
		}
		return nil, storageError("failed to get incident by id", err)
	}
	return incident, nil
}

// List возвращает страницу обращений и общее число подходящих под фильтр
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, int, error) {
	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.ActiveOnly {
		conds = append(conds, "status NOT IN ('resolved', 'rejected', 'cancelled')")
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR location_text ILIKE $%d OR reporter_name ILIKE $%d)",
			n, n, n, n,
		))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents`+where, args...).Scan(&total); err != nil {
		return nil, 0, storageError("failed to count incidents", err)
	}

	args = append(args, filter.PageSize, filter.Offset())
	query := `SELECT` + incidentColumns + ` FROM incidents` + where +
		fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d;", len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, storageError("failed to list incidents", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageError("error list iteration", err)
	}
	return incidents, total, nil
}

// Delete удаляет обращение; выезды и журнал удаляются каскадно
func (r *IncidentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM incidents WHERE id = $1 FOR UPDATE;`, id).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, id)
			}
			return storageError("failed to lock incident", err)
		}

		active, err := hasActiveSchedule(ctx, tx, id)
		if err != nil {
			return err
		}
		if active {
			return models.ErrIncidentHasActiveSchedule
		}

		if _, err := tx.Exec(ctx, `DELETE FROM incidents WHERE id = $1;`, id); err != nil {
			return storageError("failed to delete incident", err)
		}
		return nil
	})
}

func hasActiveSchedule(ctx context.Context, q querier, incidentID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM patrol_schedules WHERE incident_id = $1 AND status <> 'completed');`
	if err := q.QueryRow(ctx, query, incidentID).Scan(&exists); err != nil {
		return false, storageError("failed to check active schedules", err)
	}
	return exists, nil
}

// UpdateStatus меняет статус, только если в бд он все еще равен from, и пишет запись журнала
func (r *IncidentRepository) UpdateStatus(ctx context.Context, incident *models.Incident, from models.IncidentStatus, change *models.StatusChange) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			UPDATE incidents SET
				status = $3,
				rejection_reason = $4,
				updated_at = $5
			WHERE id = $1 AND status = $2;
		`, incident.ID, from, incident.Status, incident.RejectionReason, incident.UpdatedAt)
		if err != nil {
			return storageError("failed to update incident status", err)
		}

		// Ни одной строки: обращения нет или его статус уже сменил другой запрос
		if cmdTag.RowsAffected() == 0 {
			var current models.IncidentStatus
			err := tx.QueryRow(ctx, `SELECT status FROM incidents WHERE id = $1;`, incident.ID).Scan(&current)
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: incident with id %s", models.ErrNotFound, incident.ID)
			}
			if err != nil {
				return storageError("failed to read incident status", err)
			}
			return fmt.Errorf("%w: incident status changed from %s to %s concurrently", models.ErrInvalidTransition, from, current)
		}

		err = tx.QueryRow(ctx, `
			INSERT INTO incident_status_history (incident_id, from_status, to_status, reason, override, changed_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;
		`, change.IncidentID, change.FromStatus, change.ToStatus, change.Reason, change.Override, change.ChangedAt).Scan(&change.ID)
		if err != nil {
			return storageError("failed to write status history", err)
		}
		return nil
	})
}

// ListStatusHistory возвращает журнал смены статусов в порядке записи
func (r *IncidentRepository) ListStatusHistory(ctx context.Context, id uuid.UUID) ([]*models.StatusChange, error) {
	query := `
		SELECT id, incident_id, from_status, to_status, reason, override, changed_at
		FROM incident_status_history
		WHERE incident_id = $1
		ORDER BY changed_at, id;
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, storageError("failed to list status history", err)
	}
	defer rows.Close()

	history := make([]*models.StatusChange, 0)
	for rows.Next() {
		change := &models.StatusChange{}
		if err := rows.Scan(
			&change.ID,
			&change.IncidentID,
			&change.FromStatus,
			&change.ToStatus,
			&change.Reason,
			&change.Override,
			&change.ChangedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan status history row: %w", err)
		}
		history = append(history, change)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error status history iteration", err)
	}
	return history, nil
}

func incidentCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncidentFromCache пытается получить обращение из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет обращение в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет обращение из Redis кеша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}
