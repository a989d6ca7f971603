package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/pkg/cleanup"
	"github.com/ashfall/questlog/pkg/entity"
)

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	row := hr.conn.QueryRow(ctx,
		`INSERT INTO habits (user_id, name, description, frequency, custom_days, recording_type, target_value, color, icon)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.CustomDays,
		habit.RecordingType,
		habit.TargetValue,
		habit.Color,
		habit.Icon,
	)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrOwnerNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	habit.ID = id
	row := hr.conn.QueryRow(ctx,
		`SELECT user_id, name, description, frequency, custom_days, recording_type, target_value, color, icon, is_active, created_at, updated_at
		FROM habits WHERE id = $1;`, id)
	if err := row.Scan(&habit.UserID, &habit.Name, &habit.Description, &habit.Frequency, &habit.CustomDays,
		&habit.RecordingType, &habit.TargetValue, &habit.Color, &habit.Icon, &habit.IsActive, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx,
		`SELECT id, user_id, name, description, frequency, custom_days, recording_type, target_value, color, icon, is_active, created_at, updated_at
		FROM habits WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		err = rows.Scan(&h.ID, &h.UserID, &h.Name, &h.Description, &h.Frequency, &h.CustomDays,
			&h.RecordingType, &h.TargetValue, &h.Color, &h.Icon, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return nil, errors.New("habit row parsing error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected habit rows error: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx,
		`UPDATE habits SET name = $1, description = $2, frequency = $3, custom_days = $4, recording_type = $5, target_value = $6, color = $7, icon = $8, updated_at = NOW()
		WHERE id = $9;`,
		habit.Name, habit.Description, habit.Frequency, habit.CustomDays, habit.RecordingType,
		habit.TargetValue, habit.Color, habit.Icon, habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET is_active = FALSE, updated_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) CountByUserID(ctx context.Context, uid uuid.UUID, activeOnly bool) (int, error) {
	query := `SELECT COUNT(*) FROM habits WHERE user_id = $1;`
	if activeOnly {
		query = `SELECT COUNT(*) FROM habits WHERE user_id = $1 AND is_active = TRUE;`
	}
	row := hr.conn.QueryRow(ctx, query, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting habits: " + err.Error())
	}
	return count, nil
}
