package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/pkg/entity"
)

const defaultHabitColor = "#10b981"

type HabitsService struct {
	habitsRepo   repository.HabitsRepositoryI
	streaksRepo  repository.StreaksRepositoryI
	logsRepo     repository.HabitLogsRepositoryI
	achievements AchievementEvaluatorI
}

func NewHabitsService(
	habitsRepo repository.HabitsRepositoryI,
	streaksRepo repository.StreaksRepositoryI,
	logsRepo repository.HabitLogsRepositoryI,
	achievements AchievementEvaluatorI,
) *HabitsService {
	if habitsRepo == nil || streaksRepo == nil || logsRepo == nil || achievements == nil {
		log.Fatal("on habits service provided nil dependencies")
	}
	return &HabitsService{
		habitsRepo:   habitsRepo,
		streaksRepo:  streaksRepo,
		logsRepo:     logsRepo,
		achievements: achievements,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error) {
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	color := req.Color
	if color == "" {
		color = defaultHabitColor
	}
	id, err := hs.habitsRepo.Create(ctx, &entity.Habit{
		UserID:        uid,
		Name:          req.Name,
		Description:   req.Description,
		Frequency:     req.Frequency,
		CustomDays:    req.CustomDays,
		RecordingType: req.RecordingType,
		TargetValue:   req.TargetValue,
		Color:         color,
		Icon:          req.Icon,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	// New habits start with a zero streak record
	if err = hs.streaksRepo.Create(ctx, id, uid); err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if _, err = hs.achievements.Evaluate(ctx, uid); err != nil {
		return nil, err
	}
	habit, err := hs.habitsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *HabitRequest) error {
	if err := validateStruct(*req); err != nil {
		return err
	}
	habit, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return err
	}
	habit.Name = req.Name
	habit.Description = req.Description
	habit.Frequency = req.Frequency
	habit.CustomDays = req.CustomDays
	habit.RecordingType = req.RecordingType
	habit.TargetValue = req.TargetValue
	if req.Color != "" {
		habit.Color = req.Color
	}
	habit.Icon = req.Icon
	if err = hs.habitsRepo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	err := hs.habitsRepo.SoftDelete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

// GetUserHabitsForDay assembles the dashboard view: active habits with
// their streak records and the day's logs, fetched in three batch
// queries and joined in memory.
func (hs *HabitsService) GetUserHabitsForDay(ctx context.Context, uid uuid.UUID, day time.Time) ([]entity.HabitDayView, error) {
	habits, err := hs.habitsRepo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(habits))
	for _, h := range habits {
		ids = append(ids, h.ID)
	}
	streaks, err := hs.streaksRepo.GetByHabitIDs(ctx, ids)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	logs, err := hs.logsRepo.GetByHabitsAndDate(ctx, ids, DateOnly(day))
	if err != nil {
		return nil, errors.New("logs repository error: " + err.Error())
	}
	streaksByHabit := make(map[uuid.UUID]entity.HabitStreak, len(streaks))
	for _, s := range streaks {
		streaksByHabit[s.HabitID] = s
	}
	logsByHabit := make(map[uuid.UUID]entity.HabitLog, len(logs))
	for _, l := range logs {
		logsByHabit[l.HabitID] = l
	}
	views := make([]entity.HabitDayView, 0, len(habits))
	for _, h := range habits {
		view := entity.HabitDayView{Habit: *h}
		if s, ok := streaksByHabit[h.ID]; ok {
			streak := s
			view.Streak = &streak
		}
		if l, ok := logsByHabit[h.ID]; ok {
			dayLog := l
			view.DayLog = &dayLog
		}
		views = append(views, view)
	}
	return views, nil
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidData
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	return nil
}
