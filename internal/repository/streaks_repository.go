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

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) Create(ctx context.Context, habitID, userID uuid.UUID) error {
	_, err := sr.conn.Exec(ctx,
		`INSERT INTO habit_streaks (habit_id, user_id, current_streak, longest_streak) VALUES ($1, $2, 0, 0);`,
		habitID,
		userID,
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
		return errors.New("creating streak error: " + err.Error())
	}
	return nil
}

func (sr *StreaksRepository) GetByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.HabitStreak, error) {
	var streak entity.HabitStreak
	row := sr.conn.QueryRow(ctx,
		`SELECT habit_id, user_id, current_streak, longest_streak, last_completed_date FROM habit_streaks WHERE habit_id = $1;`,
		habitID,
	)
	if err := row.Scan(&streak.HabitID, &streak.UserID, &streak.CurrentStreak, &streak.LongestStreak, &streak.LastCompletedDate); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}

func (sr *StreaksRepository) GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]entity.HabitStreak, error) {
	if len(habitIDs) == 0 {
		return []entity.HabitStreak{}, nil
	}
	rows, err := sr.conn.Query(ctx,
		`SELECT habit_id, user_id, current_streak, longest_streak, last_completed_date FROM habit_streaks WHERE habit_id = ANY($1);`,
		habitIDs,
	)
	if err != nil {
		return nil, errors.New("getting streaks error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.HabitStreak, 0, len(habitIDs))
	for rows.Next() {
		streak := entity.HabitStreak{}
		err = rows.Scan(&streak.HabitID, &streak.UserID, &streak.CurrentStreak, &streak.LongestStreak, &streak.LastCompletedDate)
		if err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		result = append(result, streak)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *StreaksRepository) Update(ctx context.Context, streak *entity.HabitStreak) error {
	ct, err := sr.conn.Exec(ctx,
		`UPDATE habit_streaks SET current_streak = $1, longest_streak = $2, last_completed_date = $3, updated_at = NOW() WHERE habit_id = $4;`,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastCompletedDate,
		streak.HabitID,
	)
	if err != nil {
		return errors.New("updating streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
