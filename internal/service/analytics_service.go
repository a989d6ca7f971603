package service

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

const breakdownWindowDays = 90

var weekdayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type AnalyticsService struct {
	habitsRepo repository.HabitsRepositoryI
	logsRepo   repository.HabitLogsRepositoryI
}

func NewAnalyticsService(habitsRepo repository.HabitsRepositoryI, logsRepo repository.HabitLogsRepositoryI) *AnalyticsService {
	if habitsRepo == nil || logsRepo == nil {
		log.Fatal("on analytics service provided nil repos")
	}
	return &AnalyticsService{
		habitsRepo: habitsRepo,
		logsRepo:   logsRepo,
	}
}

func (ans *AnalyticsService) DailyStats(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]DailyStat, error) {
	logs, err := ans.userLogs(ctx, uid, DateOnly(from), DateOnly(to))
	if err != nil {
		return nil, err
	}
	type bucket struct {
		completed int
		total     int
	}
	byDate := make(map[time.Time]bucket)
	for _, l := range logs {
		day := DateOnly(l.LogDate)
		b := byDate[day]
		if l.Completed {
			b.completed++
		}
		b.total++
		byDate[day] = b
	}
	stats := make([]DailyStat, 0, len(byDate))
	for day, b := range byDate {
		rate := 0.0
		if b.total > 0 {
			rate = float64(b.completed) / float64(b.total) * 100
		}
		stats = append(stats, DailyStat{
			Date:           day,
			Completed:      b.completed,
			Total:          b.total,
			CompletionRate: rate,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date.Before(stats[j].Date) })
	return stats, nil
}

func (ans *AnalyticsService) WeeklyBreakdown(ctx context.Context, uid uuid.UUID) ([]WeekdayStat, error) {
	to := DateOnly(time.Now())
	from := to.AddDate(0, 0, -breakdownWindowDays)
	logs, err := ans.userLogs(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	var completed, total [7]int
	for _, l := range logs {
		weekday := int(DateOnly(l.LogDate).Weekday())
		if l.Completed {
			completed[weekday]++
		}
		total[weekday]++
	}
	breakdown := make([]WeekdayStat, 0, 7)
	for day := 0; day < 7; day++ {
		rate := 0.0
		if total[day] > 0 {
			rate = float64(completed[day]) / float64(total[day]) * 100
		}
		breakdown = append(breakdown, WeekdayStat{
			DayName:        weekdayNames[day],
			DayNumber:      day,
			CompletionRate: rate,
			TotalHabits:    total[day],
		})
	}
	return breakdown, nil
}

func (ans *AnalyticsService) userLogs(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.HabitLog, error) {
	habits, err := ans.habitsRepo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	logs, err := ans.logsRepo.GetByHabitsAndDateRange(ctx, ids, from, to)
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	return logs, nil
}
