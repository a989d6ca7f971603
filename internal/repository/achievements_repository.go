package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/pkg/cleanup"
	"github.com/ashfall/questlog/pkg/entity"
)

type AchievementsRepository struct {
	conn PgConnection
}

func NewAchievementsRepo(cfg DBConfig) *AchievementsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for achievementsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AchievementsRepository{
		conn: pool,
	}
}

func NewAchievementsRepoWithConn(conn PgConnection) *AchievementsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for achievementsRepo: " + err.Error())
	}
	return &AchievementsRepository{
		conn: conn,
	}
}

func (ar *AchievementsRepository) ListCatalog(ctx context.Context) ([]entity.Achievement, error) {
	rows, err := ar.conn.Query(ctx,
		`SELECT id, name, description, icon, requirement_type, requirement_value, xp_reward
		FROM achievements ORDER BY requirement_value ASC;`)
	if err != nil {
		return nil, errors.New("listing achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Achievement, 0, 16)
	for rows.Next() {
		a := entity.Achievement{}
		err = rows.Scan(&a.ID, &a.Name, &a.Description, &a.Icon, &a.RequirementType, &a.RequirementValue, &a.XPReward)
		if err != nil {
			return nil, errors.New("achievement row parsing error: " + err.Error())
		}
		result = append(result, a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *AchievementsRepository) ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error) {
	rows, err := ar.conn.Query(ctx,
		`SELECT user_id, achievement_id, earned_at FROM user_achievements WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("listing earned achievements error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.UserAchievement, 0, 8)
	for rows.Next() {
		ua := entity.UserAchievement{}
		err = rows.Scan(&ua.UserID, &ua.AchievementID, &ua.EarnedAt)
		if err != nil {
			return nil, errors.New("earned achievement row parsing error: " + err.Error())
		}
		result = append(result, ua)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected earned achievement rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *AchievementsRepository) Grant(ctx context.Context, uid, achievementID uuid.UUID) error {
	_, err := ar.conn.Exec(ctx,
		`INSERT INTO user_achievements (user_id, achievement_id) VALUES ($1, $2);`,
		uid,
		achievementID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: granted by a concurrent pass
			case "23505":
				return errorvalues.ErrAchievementEarned
			// FK violation
			case "23503":
				return errorvalues.ErrAchievementNotFound
			}
		}
		return errors.New("granting achievement error: " + err.Error())
	}
	return nil
}
