package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

// StatsSnapshot is the metrics view one achievement pass evaluates
// against. It is assembled once per pass: XP awarded by grants inside
// the pass is only visible to the next pass.
type StatsSnapshot struct {
	TotalCompleted    int
	LongestStreak     int
	Level             int
	XP                int
	HabitsCreated     int
	ChallengesCreated int
	ChallengesJoined  int
	ActiveHabits      int
}

// metricFor maps a requirement type to its snapshot metric. Reserved
// types (perfect_days, early_completions, comebacks) have no tracked
// metric and report false.
func metricFor(requirement entity.RequirementType, snap StatsSnapshot) (int, bool) {
	switch requirement {
	case entity.RequirementTotalCompleted:
		return snap.TotalCompleted, true
	case entity.RequirementStreak:
		return snap.LongestStreak, true
	case entity.RequirementLevel:
		return snap.Level, true
	case entity.RequirementXP:
		return snap.XP, true
	case entity.RequirementHabitsCreated:
		return snap.HabitsCreated, true
	case entity.RequirementChallengesCreated:
		return snap.ChallengesCreated, true
	case entity.RequirementChallengesJoined:
		return snap.ChallengesJoined, true
	case entity.RequirementActiveHabits:
		return snap.ActiveHabits, true
	}
	return 0, false
}

func Qualifies(a entity.Achievement, snap StatsSnapshot) bool {
	metric, tracked := metricFor(a.RequirementType, snap)
	return tracked && metric >= a.RequirementValue
}

// Progress is the display percentage towards an unearned achievement,
// clamped to [0, 100]. Untracked requirement types report 0.
func Progress(a entity.Achievement, snap StatsSnapshot) int {
	metric, tracked := metricFor(a.RequirementType, snap)
	if !tracked || a.RequirementValue <= 0 {
		return 0
	}
	progress := metric * 100 / a.RequirementValue
	if progress > 100 {
		return 100
	}
	return progress
}

type AchievementsService struct {
	achievementsRepo repository.AchievementsRepositoryI
	habitsRepo       repository.HabitsRepositoryI
	challengesRepo   repository.ChallengesRepositoryI
	stats            StatsLedgerI
}

func NewAchievementsService(
	achievementsRepo repository.AchievementsRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	challengesRepo repository.ChallengesRepositoryI,
	stats StatsLedgerI,
) *AchievementsService {
	if achievementsRepo == nil || habitsRepo == nil || challengesRepo == nil || stats == nil {
		log.Fatal("on achievements service provided nil dependencies")
	}
	return &AchievementsService{
		achievementsRepo: achievementsRepo,
		habitsRepo:       habitsRepo,
		challengesRepo:   challengesRepo,
		stats:            stats,
	}
}

// Evaluate grants every unearned achievement whose metric reached its
// threshold and awards the XP rewards through the stats ledger. The
// earned set is re-read at the start of each pass, so repeated calls
// never double-grant; a concurrent grant surfacing as
// ErrAchievementEarned is swallowed.
func (as *AchievementsService) Evaluate(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error) {
	catalog, err := as.achievementsRepo.ListCatalog(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	earned, err := as.earnedSet(ctx, uid)
	if err != nil {
		return nil, err
	}
	snap, err := as.snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	granted := make([]uuid.UUID, 0)
	for _, a := range catalog {
		if _, ok := earned[a.ID]; ok {
			continue
		}
		if !Qualifies(a, *snap) {
			continue
		}
		err = as.achievementsRepo.Grant(ctx, uid, a.ID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrAchievementEarned) {
				continue
			}
			return granted, errors.New("achievements repository error: " + err.Error())
		}
		if err = as.stats.AwardXP(ctx, uid, a.XPReward); err != nil {
			return granted, err
		}
		granted = append(granted, a.ID)
	}
	return granted, nil
}

func (as *AchievementsService) ListWithStatus(ctx context.Context, uid uuid.UUID) ([]entity.AchievementWithStatus, error) {
	catalog, err := as.achievementsRepo.ListCatalog(ctx)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	earnedList, err := as.achievementsRepo.ListEarned(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	earned := make(map[uuid.UUID]entity.UserAchievement, len(earnedList))
	for _, ua := range earnedList {
		earned[ua.AchievementID] = ua
	}
	snap, err := as.snapshot(ctx, uid)
	if err != nil {
		return nil, err
	}
	result := make([]entity.AchievementWithStatus, 0, len(catalog))
	for _, a := range catalog {
		status := entity.AchievementWithStatus{Achievement: a}
		if ua, ok := earned[a.ID]; ok {
			earnedAt := ua.EarnedAt
			status.Earned = true
			status.EarnedAt = &earnedAt
			status.Progress = 100
		} else {
			status.Progress = Progress(a, *snap)
		}
		result = append(result, status)
	}
	return result, nil
}

func (as *AchievementsService) earnedSet(ctx context.Context, uid uuid.UUID) (map[uuid.UUID]struct{}, error) {
	earnedList, err := as.achievementsRepo.ListEarned(ctx, uid)
	if err != nil {
		return nil, errors.New("achievements repository error: " + err.Error())
	}
	earned := make(map[uuid.UUID]struct{}, len(earnedList))
	for _, ua := range earnedList {
		earned[ua.AchievementID] = struct{}{}
	}
	return earned, nil
}

func (as *AchievementsService) snapshot(ctx context.Context, uid uuid.UUID) (*StatsSnapshot, error) {
	stats, err := as.stats.GetOrCreate(ctx, uid)
	if err != nil {
		return nil, err
	}
	habitsCreated, err := as.habitsRepo.CountByUserID(ctx, uid, false)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	activeHabits, err := as.habitsRepo.CountByUserID(ctx, uid, true)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	challengesCreated, err := as.challengesRepo.CountCreatedBy(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	challengesJoined, err := as.challengesRepo.CountJoinedBy(ctx, uid)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	return &StatsSnapshot{
		TotalCompleted:    stats.TotalHabitsCompleted,
		LongestStreak:     stats.LongestStreak,
		Level:             stats.Level,
		XP:                stats.XP,
		HabitsCreated:     habitsCreated,
		ChallengesCreated: challengesCreated,
		ChallengesJoined:  challengesJoined,
		ActiveHabits:      activeHabits,
	}, nil
}
