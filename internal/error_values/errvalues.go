package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrNotAdmin         = errors.New("operation requires admin role")
	ErrInvalidToken     = errors.New("invalid token")
	ErrInvalidData      = errors.New("invalid request data")

	ErrHabitNotFound     = errors.New("habit doesn't exist")
	ErrWrongOwner        = errors.New("resource has different owner")
	ErrOwnerNotFound     = errors.New("owner doesn't exist")
	ErrLogNotFound       = errors.New("habit log doesn't exist")
	ErrLogDateNotAllowed = errors.New("log date is not allowed")

	ErrStatsNotFound       = errors.New("user stats don't exist")
	ErrStatsNotProvisioned = errors.New("user stats not provisioned yet")

	ErrAchievementNotFound = errors.New("achievement doesn't exist")
	ErrAchievementEarned   = errors.New("achievement already earned")

	ErrChallengeNotFound = errors.New("challenge doesn't exist")
	ErrAlreadyJoined     = errors.New("challenge already joined")
	ErrNotJoined         = errors.New("challenge is not joined")

	ErrReminderNotFound = errors.New("reminder doesn't exist")
)
