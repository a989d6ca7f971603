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

type ChallengesRepository struct {
	conn PgConnection
}

func NewChallengesRepo(cfg DBConfig) *ChallengesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for challengesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ChallengesRepository{
		conn: pool,
	}
}

func NewChallengesRepoWithConn(conn PgConnection) *ChallengesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for challengesRepo: " + err.Error())
	}
	return &ChallengesRepository{
		conn: conn,
	}
}

func (cr *ChallengesRepository) Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error) {
	row := cr.conn.QueryRow(ctx,
		`INSERT INTO challenges (creator_id, name, description, habit_name, start_date, end_date, target_days, is_public)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		challenge.CreatorID,
		challenge.Name,
		challenge.Description,
		challenge.HabitName,
		challenge.StartDate,
		challenge.EndDate,
		challenge.TargetDays,
		challenge.IsPublic,
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
		return uuid.UUID{}, errors.New("creating challenge db error: " + err.Error())
	}
	return id, nil
}

func (cr *ChallengesRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var ch entity.Challenge
	ch.ID = id
	row := cr.conn.QueryRow(ctx,
		`SELECT creator_id, name, description, habit_name, start_date, end_date, target_days, is_public, created_at, updated_at
		FROM challenges WHERE id = $1;`, id)
	if err := row.Scan(&ch.CreatorID, &ch.Name, &ch.Description, &ch.HabitName, &ch.StartDate, &ch.EndDate,
		&ch.TargetDays, &ch.IsPublic, &ch.CreatedAt, &ch.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrChallengeNotFound
		}
		return nil, errors.New("getting challenge by id error: " + err.Error())
	}
	return &ch, nil
}

func (cr *ChallengesRepository) ListPublic(ctx context.Context, limit, offset int) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT id, creator_id, name, description, habit_name, start_date, end_date, target_days, is_public, created_at, updated_at
		FROM challenges WHERE is_public = TRUE ORDER BY created_at DESC LIMIT $1 OFFSET $2;`, limit, offset)
	if err != nil {
		return nil, errors.New("listing public challenges error: " + err.Error())
	}
	return scanChallenges(rows)
}

func (cr *ChallengesRepository) ListJoinedByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT c.id, c.creator_id, c.name, c.description, c.habit_name, c.start_date, c.end_date, c.target_days, c.is_public, c.created_at, c.updated_at
		FROM challenges c JOIN challenge_participants cp ON cp.challenge_id = c.id
		WHERE cp.user_id = $1 ORDER BY cp.joined_at DESC;`, uid)
	if err != nil {
		return nil, errors.New("listing joined challenges error: " + err.Error())
	}
	return scanChallenges(rows)
}

func (cr *ChallengesRepository) AddParticipant(ctx context.Context, challengeID, uid uuid.UUID) error {
	_, err := cr.conn.Exec(ctx,
		`INSERT INTO challenge_participants (challenge_id, user_id, days_completed) VALUES ($1, $2, 0);`,
		challengeID,
		uid,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAlreadyJoined
			// FK violation
			case "23503":
				return errorvalues.ErrChallengeNotFound
			}
		}
		return errors.New("adding participant error: " + err.Error())
	}
	return nil
}

func (cr *ChallengesRepository) RemoveParticipant(ctx context.Context, challengeID, uid uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx,
		`DELETE FROM challenge_participants WHERE challenge_id = $1 AND user_id = $2;`,
		challengeID,
		uid,
	)
	if err != nil {
		return errors.New("removing participant error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrNotJoined
	}
	return nil
}

func (cr *ChallengesRepository) ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeParticipant, error) {
	rows, err := cr.conn.Query(ctx,
		`SELECT challenge_id, user_id, days_completed, joined_at FROM challenge_participants
		WHERE challenge_id = $1 ORDER BY days_completed DESC;`, challengeID)
	if err != nil {
		return nil, errors.New("listing participants error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ChallengeParticipant, 0, 4)
	for rows.Next() {
		p := entity.ChallengeParticipant{}
		err = rows.Scan(&p.ChallengeID, &p.UserID, &p.DaysCompleted, &p.JoinedAt)
		if err != nil {
			return nil, errors.New("participant row parsing error: " + err.Error())
		}
		result = append(result, p)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected participant rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *ChallengesRepository) CountParticipants(ctx context.Context, challengeIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(challengeIDs))
	if len(challengeIDs) == 0 {
		return counts, nil
	}
	rows, err := cr.conn.Query(ctx,
		`SELECT challenge_id, COUNT(*) FROM challenge_participants WHERE challenge_id = ANY($1) GROUP BY challenge_id;`,
		challengeIDs,
	)
	if err != nil {
		return nil, errors.New("counting participants error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var count int
		if err = rows.Scan(&id, &count); err != nil {
			return nil, errors.New("participant count row parsing error: " + err.Error())
		}
		counts[id] = count
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected participant count rows error: " + rows.Err().Error())
	}
	return counts, nil
}

func (cr *ChallengesRepository) CountCreatedBy(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM challenges WHERE creator_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting created challenges: " + err.Error())
	}
	return count, nil
}

func (cr *ChallengesRepository) CountJoinedBy(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM challenge_participants WHERE user_id = $1;`, uid)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting joined challenges: " + err.Error())
	}
	return count, nil
}

func scanChallenges(rows pgx.Rows) ([]*entity.Challenge, error) {
	defer rows.Close()
	challenges := make([]*entity.Challenge, 0)
	for rows.Next() {
		ch := entity.Challenge{}
		err := rows.Scan(&ch.ID, &ch.CreatorID, &ch.Name, &ch.Description, &ch.HabitName, &ch.StartDate,
			&ch.EndDate, &ch.TargetDays, &ch.IsPublic, &ch.CreatedAt, &ch.UpdatedAt)
		if err != nil {
			return nil, errors.New("challenge row parsing error: " + err.Error())
		}
		challenges = append(challenges, &ch)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected challenge rows error: " + rows.Err().Error())
	}
	return challenges, nil
}
