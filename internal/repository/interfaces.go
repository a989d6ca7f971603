package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ashfall/questlog/pkg/entity"
)


type ProfilesRepositoryI interface {
	// Creates new profile in database
	Create(ctx context.Context, profile *entity.Profile) error
	// Looks up profile by username. Can be used for login
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	// Looks up profile by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Provides usernames for a batch of uids
	ListUsernames(ctx context.Context, uids []uuid.UUID) (map[uuid.UUID]string, error)
	// Changes profile's role
	UpdateRole(ctx context.Context, uid uuid.UUID, role entity.Role) error
	// Deletes profile
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit in database. Returns generated id
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id, inactive included
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists active habits owned by user with uid, newest first
	GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Marks habit inactive. Habits are never hard-deleted
	SoftDelete(ctx context.Context, id uuid.UUID) error
	// Counts habits owned by uid, optionally active only
	CountByUserID(ctx context.Context, uid uuid.UUID, activeOnly bool) (int, error)
}

type HabitLogsRepositoryI interface {
	// Inserts or overwrites the log for (log.HabitID, log.LogDate)
	Upsert(ctx context.Context, log *entity.HabitLog) error
	// Returns the log for a habit and day, nil when absent
	GetByHabitAndDate(ctx context.Context, habitID uuid.UUID, date time.Time) (*entity.HabitLog, error)
	// Provides logs of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	// Batch: logs of several habits for one day
	GetByHabitsAndDate(ctx context.Context, habitIDs []uuid.UUID, date time.Time) ([]entity.HabitLog, error)
	// Batch: logs of several habits for a period
	GetByHabitsAndDateRange(ctx context.Context, habitIDs []uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	// Deletes the log for a habit and day
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
}

type StreaksRepositoryI interface {
	// Initializes a zero streak row for a new habit
	Create(ctx context.Context, habitID, userID uuid.UUID) error
	// Returns the streak record for a habit, nil when absent
	GetByHabitID(ctx context.Context, habitID uuid.UUID) (*entity.HabitStreak, error)
	// Batch lookup for the day view
	GetByHabitIDs(ctx context.Context, habitIDs []uuid.UUID) ([]entity.HabitStreak, error)
	// Overwrites current/longest/last_completed_date for streak.HabitID
	Update(ctx context.Context, streak *entity.HabitStreak) error
}

type StatsRepositoryI interface {
	// Returns stats row for uid, ErrStatsNotFound when absent
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Creates a zero stats row for uid
	Create(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Overwrites xp/level/counters for stats.UserID
	Update(ctx context.Context, stats *entity.UserStats) error
}

type AchievementsRepositoryI interface {
	// Full catalog ordered by requirement_value ascending
	ListCatalog(ctx context.Context) ([]entity.Achievement, error)
	// Achievements already earned by uid
	ListEarned(ctx context.Context, uid uuid.UUID) ([]entity.UserAchievement, error)
	// Grants achievement to uid. ErrAchievementEarned on repeat
	Grant(ctx context.Context, uid, achievementID uuid.UUID) error
}

type ChallengesRepositoryI interface {
	// Creates new challenge. Returns generated id
	Create(ctx context.Context, challenge *entity.Challenge) (uuid.UUID, error)
	// Searches challenge with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)
	// Lists public challenges, newest first. Requires pagination params
	ListPublic(ctx context.Context, limit, offset int) ([]*entity.Challenge, error)
	// Lists challenges uid participates in
	ListJoinedByUser(ctx context.Context, uid uuid.UUID) ([]*entity.Challenge, error)
	// Adds uid as participant. ErrAlreadyJoined on repeat
	AddParticipant(ctx context.Context, challengeID, uid uuid.UUID) error
	// Removes uid from participants. ErrNotJoined when absent
	RemoveParticipant(ctx context.Context, challengeID, uid uuid.UUID) error
	// Participants of challengeID ordered by days_completed descending
	ListParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeParticipant, error)
	// Batch participant counts for several challenges
	CountParticipants(ctx context.Context, challengeIDs []uuid.UUID) (map[uuid.UUID]int, error)
	// Counts challenges created by uid
	CountCreatedBy(ctx context.Context, uid uuid.UUID) (int, error)
	// Counts challenges joined by uid
	CountJoinedBy(ctx context.Context, uid uuid.UUID) (int, error)
}

type RemindersRepositoryI interface {
	// Creates new reminder. Returns generated id
	Create(ctx context.Context, reminder *entity.Reminder) (int, error)
	// Searches reminder with given id
	GetByID(ctx context.Context, id int) (*entity.Reminder, error)
	// Lists reminders of a habit ordered by reminder_time
	ListByHabitID(ctx context.Context, habitID uuid.UUID) ([]entity.Reminder, error)
	// Updates reminder time and enabled flag
	Update(ctx context.Context, reminder *entity.Reminder) error
	// Deletes reminder with id
	Delete(ctx context.Context, id int) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
