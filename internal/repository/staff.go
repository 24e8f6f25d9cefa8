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

const staffColumns = `id, name, contact, active, created_at, updated_at`

type StaffRepository struct {
	db *pgxpool.Pool
}

func NewStaffRepository(db *pgxpool.Pool) service.StaffRepository {
	return &StaffRepository{db: db}
}

func scanStaff(row rowScanner) (*models.PatrolStaff, error) {
	staff := &models.PatrolStaff{}
	if err := row.Scan(
		&staff.ID,
		&staff.Name,
		&staff.Contact,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) Create(ctx context.Context, staff *models.PatrolStaff) error {
	query := `
		INSERT INTO patrol_staff (name, contact, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query, staff.Name, staff.Contact, staff.Active).
		Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
	if err != nil {
		return storageError("failed to create staff", err)
	}
	return nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PatrolStaff, error) {
	staff, err := scanStaff(r.db.QueryRow(ctx, `SELECT `+staffColumns+` FROM patrol_staff WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff with id %s", models.ErrNotFound, id)
		}
		return nil, storageError("failed to get staff by id", err)
	}
	return staff, nil
}

func (r *StaffRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.PatrolStaff, error) {
	query := `SELECT ` + staffColumns + ` FROM patrol_staff WHERE id = ANY($1::uuid[]) ORDER BY name, id;`
	return r.query(ctx, query, uuidStrings(ids))
}

func (r *StaffRepository) List(ctx context.Context, activeOnly bool) ([]*models.PatrolStaff, error) {
	query := `SELECT ` + staffColumns + ` FROM patrol_staff WHERE active OR NOT $1 ORDER BY name, id;`
	return r.query(ctx, query, activeOnly)
}

func (r *StaffRepository) query(ctx context.Context, query string, args ...any) ([]*models.PatrolStaff, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storageError("failed to list staff", err)
	}
	defer rows.Close()

	staff := make([]*models.PatrolStaff, 0)
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, member)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("error staff iteration", err)
	}
	return staff, nil
}

func (r *StaffRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) (*models.PatrolStaff, error) {
	query := `
		UPDATE patrol_staff SET
			active = $2,
			updated_at = $3
		WHERE id = $1
		RETURNING ` + staffColumns + `;`
	staff, err := scanStaff(r.db.QueryRow(ctx, query, id, active, updatedAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: staff with id %s", models.ErrNotFound, id)
		}
		return nil, storageError("failed to update staff", err)
	}
	return staff, nil
}
