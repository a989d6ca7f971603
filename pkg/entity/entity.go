package entity

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

type RecordingType string

const (
	RecordingCheck    RecordingType = "check"
	RecordingCounter  RecordingType = "counter"
	RecordingDuration RecordingType = "duration"
)

type RequirementType string

const (
	RequirementTotalCompleted    RequirementType = "total_completed"
	RequirementStreak            RequirementType = "streak"
	RequirementLevel             RequirementType = "level"
	RequirementXP                RequirementType = "xp"
	RequirementHabitsCreated     RequirementType = "habits_created"
	RequirementChallengesCreated RequirementType = "challenges_created"
	RequirementChallengesJoined  RequirementType = "challenges_joined"
	RequirementActiveHabits      RequirementType = "active_habits"
	// Reserved: no tracked metric yet, the evaluator skips them
	RequirementPerfectDays      RequirementType = "perfect_days"
	RequirementEarlyCompletions RequirementType = "early_completions"
	RequirementComebacks        RequirementType = "comebacks"
)

type Profile struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserStats struct {
	UserID               uuid.UUID `json:"uid"`
	XP                   int       `json:"xp"`
	Level                int       `json:"level"`
	TotalHabitsCompleted int       `json:"total_habits_completed"`
	CurrentStreak        int       `json:"current_streak"`
	LongestStreak        int       `json:"longest_streak"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type Habit struct {
	ID            uuid.UUID     `json:"id"`
	UserID        uuid.UUID     `json:"uid"`
	Name          string        `json:"name"`
	Description   string        `json:"desc"`
	Frequency     Frequency     `json:"frequency"`
	CustomDays    []int         `json:"custom_days,omitempty"`
	RecordingType RecordingType `json:"recording_type"`
	TargetValue   *int          `json:"target_value,omitempty"`
	Color         string        `json:"color"`
	Icon          string        `json:"icon,omitempty"`
	IsActive      bool          `json:"is_active"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// HabitLog is unique per (HabitID, LogDate). LogDate carries a calendar
// day only, the time component is always midnight UTC.
type HabitLog struct {
	ID        int       `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	UserID    uuid.UUID `json:"uid"`
	LogDate   time.Time `json:"log_date"`
	Completed bool      `json:"completed"`
	Value     *int      `json:"value,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type HabitStreak struct {
	HabitID           uuid.UUID  `json:"habit_id"`
	UserID            uuid.UUID  `json:"uid"`
	CurrentStreak     int        `json:"current_streak"`
	LongestStreak     int        `json:"longest_streak"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Achievement rows are immutable catalog data seeded by migrations.
type Achievement struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"desc"`
	Icon             string          `json:"icon"`
	RequirementType  RequirementType `json:"requirement_type"`
	RequirementValue int             `json:"requirement_value"`
	XPReward         int             `json:"xp_reward"`
}

type UserAchievement struct {
	UserID        uuid.UUID `json:"uid"`
	AchievementID uuid.UUID `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"`
}

type AchievementWithStatus struct {
	Achievement
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
	Progress int        `json:"progress"`
}

type Challenge struct {
	ID          uuid.UUID `json:"id"`
	CreatorID   uuid.UUID `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"desc"`
	HabitName   string    `json:"habit_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TargetDays  int       `json:"target_days"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ChallengeParticipant struct {
	ChallengeID   uuid.UUID `json:"challenge_id"`
	UserID        uuid.UUID `json:"uid"`
	DaysCompleted int       `json:"days_completed"`
	JoinedAt      time.Time `json:"joined_at"`
}

type ChallengeWithDetails struct {
	Challenge
	ParticipantCount int    `json:"participant_count"`
	CreatorUsername  string `json:"creator_username,omitempty"`
}

type Reminder struct {
	ID           int       `json:"id"`
	HabitID      uuid.UUID `json:"habit_id"`
	UserID       uuid.UUID `json:"uid"`
	ReminderTime string    `json:"reminder_time"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HabitDayView is a habit joined with its streak record and the log
// for one requested day, assembled in memory by the habits service.
type HabitDayView struct {
	Habit
	Streak *HabitStreak `json:"streak,omitempty"`
	DayLog *HabitLog    `json:"day_log,omitempty"`
}
