package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ashfall/questlog/pkg/entity"
)


type RegisterRequest struct {
	Username string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type HabitRequest struct {
	Name          string               `validate:"required,min=1,max=100"`
	Description   string               `validate:"max=500"`
	Frequency     entity.Frequency     `validate:"required,oneof=daily weekly custom"`
	CustomDays    []int                `validate:"omitempty,max=7,dive,min=0,max=6"`
	RecordingType entity.RecordingType `validate:"required,oneof=check counter duration"`
	TargetValue   *int                 `validate:"omitempty,min=1"`
	Color         string               `validate:"omitempty,hexcolor"`
	Icon          string               `validate:"max=50"`
}

type ChallengeRequest struct {
	Name        string    `validate:"required,min=1,max=100"`
	Description string    `validate:"max=500"`
	HabitName   string    `validate:"required,min=1,max=100"`
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required"`
	TargetDays  int       `validate:"required,min=1"`
	IsPublic    bool
}

type ReminderRequest struct {
	ReminderTime string `validate:"required,datetime=15:04"`
	Enabled      bool
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type UserServiceI interface {
	// Validates user's credentials, creates new profile row. Returns profile with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.Profile, error)
	// Compares given credentials. If ok, gives back profile with ID
	Login(ctx context.Context, username, password string) (*entity.Profile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	// Removes the caller's profile after re-checking the password
	DeleteAccount(ctx context.Context, uid uuid.UUID, password string) error
	// Changes target's role. Only admins may call this
	ChangeRole(ctx context.Context, actorID, targetID uuid.UUID, role entity.Role) error
}

// StatsLedgerI holds a user's cumulative XP, level, completion count and
// user-level streaks. Every operation is a fresh read followed by an
// unconditional write: concurrent callers can lose updates, there is no
// optimistic concurrency on the stats row.
type StatsLedgerI interface {
	// Returns the stats row, creating a zero row at first read
	GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
	// Adds amount to xp and recomputes level. No cap on either
	AwardXP(ctx context.Context, uid uuid.UUID, amount int) error
	// Increments total_habits_completed by 1
	RecordCompletion(ctx context.Context, uid uuid.UUID) error
	// Raises current_streak to at least candidate, then longest_streak
	// to at least current_streak. Never lowers either
	RaiseStreak(ctx context.Context, uid uuid.UUID, candidate int) error
	// Polls for the stats row provisioned on signup until it appears,
	// the attempt budget is spent or ctx is cancelled
	AwaitProvisioned(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error)
}

// AchievementEvaluatorI runs the achievement pass: grants every
// unearned catalog entry whose metric crossed its threshold. Safe to
// invoke repeatedly, an achievement is granted at most once.
type AchievementEvaluatorI interface {
	// Returns ids of achievements granted by this pass
	Evaluate(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error)
	// Catalog with earned flag and progress percentage for display
	ListWithStatus(ctx context.Context, uid uuid.UUID) ([]entity.AchievementWithStatus, error)
}

type CompletionServiceI interface {
	// Marks a habit done or undone for a calendar day: upserts the log,
	// updates the habit and user streaks, awards XP and runs the
	// achievement pass on a fresh completion
	LogHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool, value *int, notes string) error
	// Provides logs of a habit for a period
	GetLogs(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error)
	// Removes the log for a day. Streaks, XP and achievements are not
	// recomputed or revoked
	DeleteLog(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error
}

type HabitsServiceI interface {
	// Validates and creates a habit with a zero streak row, then runs
	// the achievement pass
	CreateHabit(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *HabitRequest) error
	// Marks the habit inactive, logs and streaks stay
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
	// Active habits joined with streaks and the day's logs
	GetUserHabitsForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.HabitDayView, error)
}

type ChallengesServiceI interface {
	// Creates a challenge, auto-joins the creator, runs the achievement pass
	CreateChallenge(ctx context.Context, uid uuid.UUID, req *ChallengeRequest) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, id uuid.UUID) (*entity.ChallengeWithDetails, error)
	ListPublic(ctx context.Context, pagination PaginationOpts) ([]entity.ChallengeWithDetails, error)
	ListJoined(ctx context.Context, uid uuid.UUID) ([]entity.ChallengeWithDetails, error)
	Join(ctx context.Context, challengeID, uid uuid.UUID) error
	Leave(ctx context.Context, challengeID, uid uuid.UUID) error
	GetParticipants(ctx context.Context, challengeID uuid.UUID) ([]entity.ChallengeParticipant, error)
}

type DailyStat struct {
	Date           time.Time `json:"date"`
	Completed      int       `json:"completed"`
	Total          int       `json:"total"`
	CompletionRate float64   `json:"completion_rate"`
}

type WeekdayStat struct {
	DayName        string  `json:"day_name"`
	DayNumber      int     `json:"day_number"`
	CompletionRate float64 `json:"completion_rate"`
	TotalHabits    int     `json:"total_habits"`
}

type AnalyticsServiceI interface {
	// Per-day completion counts over active habits for a period
	DailyStats(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]DailyStat, error)
	// Completion rate per weekday over the last 90 days
	WeeklyBreakdown(ctx context.Context, uid uuid.UUID) ([]WeekdayStat, error)
}

type RemindersServiceI interface {
	CreateReminder(ctx context.Context, habitID, userID uuid.UUID, req *ReminderRequest) (*entity.Reminder, error)
	GetHabitReminders(ctx context.Context, habitID, userID uuid.UUID) ([]entity.Reminder, error)
	UpdateReminder(ctx context.Context, reminderID int, userID uuid.UUID, req *ReminderRequest) error
	DeleteReminder(ctx context.Context, reminderID int, userID uuid.UUID) error
}
