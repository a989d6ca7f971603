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

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for profilesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProfilesRepository{
		conn: pool,
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if profile == nil {
		return errors.New("profile is nil")
	}
	_, err := pr.conn.Exec(ctx, `INSERT INTO profiles (username, password_hash, role) VALUES ($1, $2, $3);`,
		profile.Username, profile.PasswordHash, profile.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrUserExists
			}
		}
		return errors.New("creating profile db error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profile entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, username, password_hash, role FROM profiles WHERE username = $1;`, username)
	if err := row.Scan(&profile.ID, &profile.Username, &profile.PasswordHash, &profile.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching profile by username error: " + err.Error())
	}
	return &profile, nil
}

func (pr *ProfilesRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	row := pr.conn.QueryRow(ctx, `SELECT id, username, password_hash, role FROM profiles WHERE id = $1;`, uid)
	if err := row.Scan(&profile.ID, &profile.Username, &profile.PasswordHash, &profile.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching profile by id error: " + err.Error())
	}
	return &profile, nil
}

func (pr *ProfilesRepository) ListUsernames(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID]string, error) {
	usernames := make(map[uuid.UUID]string, len(uids))
	if len(uids) == 0 {
		return usernames, nil
	}
	rows, err := pr.conn.Query(ctx, `SELECT id, username FROM profiles WHERE id = ANY($1);`, uids)
	if err != nil {
		return nil, errors.New("listing usernames error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		var username string
		if err = rows.Scan(&id, &username); err != nil {
			return nil, errors.New("username row parsing error: " + err.Error())
		}
		usernames[id] = username
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected usernames rows error: " + rows.Err().Error())
	}
	return usernames, nil
}

func (pr *ProfilesRepository) UpdateRole(ctx context.Context, uid uuid.UUID, role entity.Role) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE profiles SET role = $1, updated_at = NOW() WHERE id = $2;`, role, uid)
	if err != nil {
		return errors.New("updating profile role error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (pr *ProfilesRepository) Delete(ctx context.Context, uid uuid.UUID) error {
	ct, err := pr.conn.Exec(ctx, `DELETE FROM profiles WHERE id = $1;`, uid)
	if err != nil {
		return errors.New("deleting profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}
