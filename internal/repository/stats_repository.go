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

type StatsRepository struct {
	conn PgConnection
}

func NewStatsRepo(cfg DBConfig) *StatsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for statsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StatsRepository{
		conn: pool,
	}
}

func NewStatsRepoWithConn(conn PgConnection) *StatsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for statsRepo: " + err.Error())
	}
	return &StatsRepository{
		conn: conn,
	}
}

func (str *StatsRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	var stats entity.UserStats
	row := str.conn.QueryRow(ctx,
		`SELECT user_id, xp, level, total_habits_completed, current_streak, longest_streak FROM user_stats WHERE user_id = $1;`,
		uid,
	)
	if err := row.Scan(&stats.UserID, &stats.XP, &stats.Level, &stats.TotalHabitsCompleted, &stats.CurrentStreak, &stats.LongestStreak); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrStatsNotFound
		}
		return nil, errors.New("getting stats error: " + err.Error())
	}
	return &stats, nil
}

func (str *StatsRepository) Create(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	_, err := str.conn.Exec(ctx,
		`INSERT INTO user_stats (user_id, xp, level, total_habits_completed, current_streak, longest_streak) VALUES ($1, 0, 1, 0, 0, 0);`,
		uid,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: created concurrently, read it back below
			case "23505":
				return str.GetByUserID(ctx, uid)
			// FK violation
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating stats error: " + err.Error())
	}
	return &entity.UserStats{
		UserID: uid,
		XP:     0,
		Level:  1,
	}, nil
}

func (str *StatsRepository) Update(ctx context.Context, stats *entity.UserStats) error {
	ct, err := str.conn.Exec(ctx,
		`UPDATE user_stats SET xp = $1, level = $2, total_habits_completed = $3, current_streak = $4, longest_streak = $5, updated_at = NOW() WHERE user_id = $6;`,
		stats.XP,
		stats.Level,
		stats.TotalHabitsCompleted,
		stats.CurrentStreak,
		stats.LongestStreak,
		stats.UserID,
	)
	if err != nil {
		return errors.New("updating stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStatsNotFound
	}
	return nil
}
