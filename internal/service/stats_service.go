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

// 100 XP per level
const xpPerLevel = 100

func LevelForXP(xp int) int {
	return xp/xpPerLevel + 1
}

type StatsService struct {
	repo repository.StatsRepositoryI
}

func NewStatsService(statsRepo repository.StatsRepositoryI) *StatsService {
	if statsRepo == nil {
		log.Fatal("provided nil statsRepo")
	}
	return &StatsService{
		repo: statsRepo,
	}
}

func (ss *StatsService) GetOrCreate(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	stats, err := ss.repo.GetByUserID(ctx, uid)
	if err == nil {
		return stats, nil
	}
	if !errors.Is(err, errorvalues.ErrStatsNotFound) {
		return nil, errors.New("stats repository error: " + err.Error())
	}
	stats, err = ss.repo.Create(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("stats repository error: " + err.Error())
	}
	return stats, nil
}

func (ss *StatsService) AwardXP(ctx context.Context, uid uuid.UUID, amount int) error {
	stats, err := ss.GetOrCreate(ctx, uid)
	if err != nil {
		return err
	}
	stats.XP += amount
	stats.Level = LevelForXP(stats.XP)
	if err = ss.repo.Update(ctx, stats); err != nil {
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}

func (ss *StatsService) RecordCompletion(ctx context.Context, uid uuid.UUID) error {
	stats, err := ss.GetOrCreate(ctx, uid)
	if err != nil {
		return err
	}
	stats.TotalHabitsCompleted++
	if err = ss.repo.Update(ctx, stats); err != nil {
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}

// RaiseStreak ratchets the user-level streak up to the best habit
// streak. candidate below the current value changes nothing.
func (ss *StatsService) RaiseStreak(ctx context.Context, uid uuid.UUID, candidate int) error {
	stats, err := ss.GetOrCreate(ctx, uid)
	if err != nil {
		return err
	}
	if candidate > stats.CurrentStreak {
		stats.CurrentStreak = candidate
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	if err = ss.repo.Update(ctx, stats); err != nil {
		return errors.New("stats repository error: " + err.Error())
	}
	return nil
}

var (
	provisionAttempts = 5
	provisionInterval = 200 * time.Millisecond
)

// AwaitProvisioned waits for the stats row to appear, polling at a
// fixed interval. Returns ErrStatsNotProvisioned once the attempt
// budget is spent, or ctx's error on cancellation.
func (ss *StatsService) AwaitProvisioned(ctx context.Context, uid uuid.UUID) (*entity.UserStats, error) {
	for attempt := 0; attempt < provisionAttempts; attempt++ {
		stats, err := ss.repo.GetByUserID(ctx, uid)
		if err == nil {
			return stats, nil
		}
		if !errors.Is(err, errorvalues.ErrStatsNotFound) {
			return nil, errors.New("stats repository error: " + err.Error())
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(provisionInterval):
		}
	}
	return nil, errorvalues.ErrStatsNotProvisioned
}
