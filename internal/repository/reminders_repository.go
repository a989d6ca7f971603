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

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(cfg DBConfig) *RemindersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for remindersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RemindersRepository{
		conn: pool,
	}
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Create(ctx context.Context, reminder *entity.Reminder) (int, error) {
	row := rr.conn.QueryRow(ctx,
		`INSERT INTO reminders (habit_id, user_id, reminder_time, enabled) VALUES ($1, $2, $3, $4) RETURNING id;`,
		reminder.HabitID,
		reminder.UserID,
		reminder.ReminderTime,
		reminder.Enabled,
	)
	var id int
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return 0, errorvalues.ErrHabitNotFound
			}
		}
		return 0, errors.New("creating reminder error: " + err.Error())
	}
	return id, nil
}

func (rr *RemindersRepository) GetByID(ctx context.Context, id int) (*entity.Reminder, error) {
	var reminder entity.Reminder
	reminder.ID = id
	row := rr.conn.QueryRow(ctx,
		`SELECT habit_id, user_id, reminder_time, enabled FROM reminders WHERE id = $1;`, id)
	if err := row.Scan(&reminder.HabitID, &reminder.UserID, &reminder.ReminderTime, &reminder.Enabled); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReminderNotFound
		}
		return nil, errors.New("getting reminder by id error: " + err.Error())
	}
	return &reminder, nil
}

func (rr *RemindersRepository) ListByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.Reminder, error) {
	rows, err := rr.conn.Query(ctx,
		`SELECT id, habit_id, user_id, reminder_time, enabled FROM reminders WHERE habit_id = $1 ORDER BY reminder_time ASC;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("listing reminders error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Reminder, 0, 2)
	for rows.Next() {
		r := entity.Reminder{}
		err = rows.Scan(&r.ID, &r.HabitID, &r.UserID, &r.ReminderTime, &r.Enabled)
		if err != nil {
			return nil, errors.New("reminder row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected reminder rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (rr *RemindersRepository) Update(ctx context.Context, reminder *entity.Reminder) error {
	ct, err := rr.conn.Exec(ctx,
		`UPDATE reminders SET reminder_time = $1, enabled = $2, updated_at = NOW() WHERE id = $3;`,
		reminder.ReminderTime,
		reminder.Enabled,
		reminder.ID,
	)
	if err != nil {
		return errors.New("updating reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderNotFound
	}
	return nil
}

func (rr *RemindersRepository) Delete(ctx context.Context, id int) error {
	ct, err := rr.conn.Exec(ctx, `DELETE FROM reminders WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting reminder error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrReminderNotFound
	}
	return nil
}
