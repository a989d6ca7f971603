package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

// XP for a fresh habit completion
const CompletionXP = 10

type CompletionService struct {
	habitsRepo   repository.HabitsRepositoryI
	logsRepo     repository.HabitLogsRepositoryI
	streaksRepo  repository.StreaksRepositoryI
	stats        StatsLedgerI
	achievements AchievementEvaluatorI
}

func NewCompletionService(
	habitsRepo repository.HabitsRepositoryI,
	logsRepo repository.HabitLogsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	stats StatsLedgerI,
	achievements AchievementEvaluatorI,
) *CompletionService {
	if habitsRepo == nil || logsRepo == nil || streaksRepo == nil || stats == nil || achievements == nil {
		log.Fatal("on completion service provided nil dependencies")
	}
	return &CompletionService{
		habitsRepo:   habitsRepo,
		logsRepo:     logsRepo,
		streaksRepo:  streaksRepo,
		stats:        stats,
		achievements: achievements,
	}
}

// LogHabit runs the completion workflow for one user action. Steps run
// in order and a failed step aborts the rest without rolling back the
// ones already committed: a persisted log with a stale streak is
// possible and tolerated, every record stays individually well-formed.
func (cs *CompletionService) LogHabit(ctx context.Context, habitID, userID uuid.UUID, date time.Time, completed bool, value *int, notes string) error {
	habit, err := cs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	day := DateOnly(date)
	if day.After(DateOnly(time.Now())) {
		return errorvalues.ErrLogDateNotAllowed
	}

	prior, err := cs.logsRepo.GetByHabitAndDate(ctx, habitID, day)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	// The day was already marked done: the upsert below still
	// overwrites value/notes, but XP, the completion counter and the
	// achievement pass must not fire twice
	alreadyCompleted := prior != nil && prior.Completed

	err = cs.logsRepo.Upsert(ctx, &entity.HabitLog{
		HabitID:   habitID,
		UserID:    userID,
		LogDate:   day,
		Completed: completed,
		Value:     value,
		Notes:     notes,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}

	streak, err := cs.streaksRepo.GetByHabitID(ctx, habitID)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	// A missing streak row is a tolerated precondition violation, the
	// streak step is silently skipped
	if streak != nil {
		next := NextStreak(*streak, day, completed)
		if err = cs.streaksRepo.Update(ctx, &next); err != nil {
			return errors.New("repository error: " + err.Error())
		}
		if completed {
			if err = cs.stats.RaiseStreak(ctx, userID, next.CurrentStreak); err != nil {
				return err
			}
		}
	}

	if completed && !alreadyCompleted {
		if err = cs.stats.AwardXP(ctx, userID, CompletionXP); err != nil {
			return err
		}
		if err = cs.stats.RecordCompletion(ctx, userID); err != nil {
			return err
		}
		if _, err = cs.achievements.Evaluate(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

func (cs *CompletionService) GetLogs(ctx context.Context, habitID, userID uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	habit, err := cs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	logs, err := cs.logsRepo.GetByHabitAndDateRange(ctx, habitID, DateOnly(from), DateOnly(to))
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return logs, nil
}

// DeleteLog removes the day's log only. Earned XP, achievements and
// recorded streaks stay as they are.
func (cs *CompletionService) DeleteLog(ctx context.Context, habitID, userID uuid.UUID, date time.Time) error {
	habit, err := cs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = cs.logsRepo.Delete(ctx, habitID, DateOnly(date))
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}
