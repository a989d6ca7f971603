package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/pkg/cleanup"
	"github.com/ashfall/questlog/pkg/entity"
)

type HabitLogsRepository struct {
	conn PgConnection
}

func NewHabitLogsRepo(cfg DBConfig) *HabitLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitLogsRepository{
		conn: pool,
	}
}

func NewHabitLogsRepoWithConn(conn PgConnection) *HabitLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitLogsRepo: " + err.Error())
	}
	return &HabitLogsRepository{
		conn: conn,
	}
}

func (lr *HabitLogsRepository) Upsert(ctx context.Context, habitLog *entity.HabitLog) error {
	_, err := lr.conn.Exec(ctx,
		`INSERT INTO habit_logs (habit_id, user_id, log_date, completed, value, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (habit_id, log_date)
		DO UPDATE SET completed = EXCLUDED.completed, value = EXCLUDED.value, notes = EXCLUDED.notes, updated_at = NOW();`,
		habitLog.HabitID,
		habitLog.UserID,
		habitLog.LogDate,
		habitLog.Completed,
		habitLog.Value,
		habitLog.Notes,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrHabitNotFound
			}
		}
		return errors.New("upserting log error: " + err.Error())
	}
	return nil
}

func (lr *HabitLogsRepository) GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitLog, error) {
	var habitLog entity.HabitLog
	row := lr.conn.QueryRow(ctx,
		`SELECT id, habit_id, user_id, log_date, completed, value, notes, created_at, updated_at
		FROM habit_logs WHERE habit_id = $1 AND log_date = $2;`,
		habitID,
		date,
	)
	if err := row.Scan(&habitLog.ID, &habitLog.HabitID, &habitLog.UserID, &habitLog.LogDate,
		&habitLog.Completed, &habitLog.Value, &habitLog.Notes, &habitLog.CreatedAt, &habitLog.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting log error: " + err.Error())
	}
	return &habitLog, nil
}

func (lr *HabitLogsRepository) GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, user_id, log_date, completed, value, notes, created_at, updated_at
		FROM habit_logs WHERE habit_id = $1 AND log_date >= $2 AND log_date <= $3 ORDER BY log_date DESC;`,
		habitID,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting logs for period error: " + err.Error())
	}
	return scanLogs(rows)
}

func (lr *HabitLogsRepository) GetByHabitsAndDate(ctx context.Context, habitIDs []uuid.UUID, date time.Time) ([]entity.HabitLog, error) {
	if len(habitIDs) == 0 {
		return []entity.HabitLog{}, nil
	}
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, user_id, log_date, completed, value, notes, created_at, updated_at
		FROM habit_logs WHERE habit_id = ANY($1) AND log_date = $2;`,
		habitIDs,
		date,
	)
	if err != nil {
		return nil, errors.New("getting logs for day error: " + err.Error())
	}
	return scanLogs(rows)
}

func (lr *HabitLogsRepository) GetByHabitsAndDateRange(ctx context.Context, habitIDs []uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	if len(habitIDs) == 0 {
		return []entity.HabitLog{}, nil
	}
	rows, err := lr.conn.Query(ctx,
		`SELECT id, habit_id, user_id, log_date, completed, value, notes, created_at, updated_at
		FROM habit_logs WHERE habit_id = ANY($1) AND log_date >= $2 AND log_date <= $3;`,
		habitIDs,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting logs for period error: " + err.Error())
	}
	return scanLogs(rows)
}

func (lr *HabitLogsRepository) Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error {
	ct, err := lr.conn.Exec(ctx, `DELETE FROM habit_logs WHERE habit_id = $1 AND log_date = $2;`, habitID, date)
	if err != nil {
		return errors.New("deleting log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrLogNotFound
	}
	return nil
}

func scanLogs(rows pgx.Rows) ([]entity.HabitLog, error) {
	defer rows.Close()
	result := make([]entity.HabitLog, 0, 2)
	for rows.Next() {
		habitLog := entity.HabitLog{}
		err := rows.Scan(&habitLog.ID, &habitLog.HabitID, &habitLog.UserID, &habitLog.LogDate,
			&habitLog.Completed, &habitLog.Value, &habitLog.Notes, &habitLog.CreatedAt, &habitLog.UpdatedAt)
		if err != nil {
			return nil, errors.New("log row parsing error: " + err.Error())
		}
		result = append(result, habitLog)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected log rows error: " + rows.Err().Error())
	}
	return result, nil
}
