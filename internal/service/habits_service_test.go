package service_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/service"
	"github.com/ashfall/questlog/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

func intPtr(v int) *int {
	return &v
}

type habitsFixture struct {
	svc         *service.HabitsService
	habitsRepo  *habitsRepoMock
	streaksRepo *streaksRepoMock
	logsRepo    *logsRepoMock
	evaluator   *evaluatorRecorder
	userID      uuid.UUID
}

func newHabitsFixture() *habitsFixture {
	f := &habitsFixture{
		habitsRepo:  newHabitsRepoMock(),
		streaksRepo: newStreaksRepoMock(),
		logsRepo:    newLogsRepoMock(),
		evaluator:   &evaluatorRecorder{},
		userID:      uuid.New(),
	}
	f.svc = service.NewHabitsService(f.habitsRepo, f.streaksRepo, f.logsRepo, f.evaluator)
	return f
}

func habitRequest() *service.HabitRequest {
	return &service.HabitRequest{
		Name:          "morning run",
		Frequency:     entity.FrequencyDaily,
		RecordingType: entity.RecordingCheck,
	}
}

func TestCreateHabit(t *testing.T) {
	f := newHabitsFixture()

	habit, err := f.svc.CreateHabit(context.Background(), f.userID, habitRequest())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, habit.ID)
	assert.Equal(t, f.userID, habit.UserID)
	assert.True(t, habit.IsActive)
	assert.Equal(t, "#10b981", habit.Color)

	// a zero streak record appears alongside the habit
	streak, err := f.streaksRepo.GetByHabitID(context.Background(), habit.ID)
	require.NoError(t, err)
	require.NotNil(t, streak)
	assert.Zero(t, streak.CurrentStreak)
	assert.Equal(t, 1, f.evaluator.calls)
}

func TestCreateHabitKeepsGivenColor(t *testing.T) {
	f := newHabitsFixture()
	req := habitRequest()
	req.Color = "#ff0000"

	habit, err := f.svc.CreateHabit(context.Background(), f.userID, req)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", habit.Color)
}

func TestCreateHabitValidation(t *testing.T) {
	f := newHabitsFixture()
	testCases := []struct {
		Name    string
		Prepare func(req *service.HabitRequest)
	}{
		{"empty name", func(req *service.HabitRequest) {
			req.Name = ""
		}},
		{"unknown frequency", func(req *service.HabitRequest) {
			req.Frequency = "hourly"
		}},
		{"custom frequency without days", func(req *service.HabitRequest) {
			req.Frequency = entity.FrequencyCustom
		}},
		{"custom days without custom frequency", func(req *service.HabitRequest) {
			req.CustomDays = []int{1, 3, 5}
		}},
		{"custom day out of range", func(req *service.HabitRequest) {
			req.Frequency = entity.FrequencyCustom
			req.CustomDays = []int{7}
		}},
		{"counter without target value", func(req *service.HabitRequest) {
			req.RecordingType = entity.RecordingCounter
		}},
		{"duration without target value", func(req *service.HabitRequest) {
			req.RecordingType = entity.RecordingDuration
		}},
		{"check with target value", func(req *service.HabitRequest) {
			req.TargetValue = intPtr(10)
		}},
		{"bad color", func(req *service.HabitRequest) {
			req.Color = "green"
		}},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := habitRequest()
			tc.Prepare(req)
			_, err := f.svc.CreateHabit(context.Background(), f.userID, req)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidData)
		})
	}
	assert.Empty(t, f.habitsRepo.habits)
	assert.Zero(t, f.evaluator.calls)
}

func TestGetHabitOwnership(t *testing.T) {
	f := newHabitsFixture()
	created, err := f.svc.CreateHabit(context.Background(), f.userID, habitRequest())
	require.NoError(t, err)

	habit, err := f.svc.GetHabit(context.Background(), created.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, habit.ID)

	_, err = f.svc.GetHabit(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)

	_, err = f.svc.GetHabit(context.Background(), uuid.New(), f.userID)
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
}

func TestUpdateHabit(t *testing.T) {
	f := newHabitsFixture()
	created, err := f.svc.CreateHabit(context.Background(), f.userID, habitRequest())
	require.NoError(t, err)

	update := habitRequest()
	update.Name = "evening run"
	update.RecordingType = entity.RecordingDuration
	update.TargetValue = intPtr(30)
	require.NoError(t, f.svc.UpdateHabit(context.Background(), created.ID, f.userID, update))

	habit, err := f.svc.GetHabit(context.Background(), created.ID, f.userID)
	require.NoError(t, err)
	assert.Equal(t, "evening run", habit.Name)
	assert.Equal(t, entity.RecordingDuration, habit.RecordingType)
	require.NotNil(t, habit.TargetValue)
	assert.Equal(t, 30, *habit.TargetValue)
	// empty color keeps the stored one
	assert.Equal(t, "#10b981", habit.Color)

	err = f.svc.UpdateHabit(context.Background(), created.ID, uuid.New(), update)
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
}

func TestDeleteHabit(t *testing.T) {
	f := newHabitsFixture()
	created, err := f.svc.CreateHabit(context.Background(), f.userID, habitRequest())
	require.NoError(t, err)

	err = f.svc.DeleteHabit(context.Background(), created.ID, uuid.New())
	assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)

	require.NoError(t, f.svc.DeleteHabit(context.Background(), created.ID, f.userID))

	// soft delete keeps the row but hides it from the day view
	habit, err := f.svc.GetHabit(context.Background(), created.ID, f.userID)
	require.NoError(t, err)
	assert.False(t, habit.IsActive)

	views, err := f.svc.GetUserHabitsForDay(context.Background(), f.userID, time.Now())
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestGetUserHabitsForDay(t *testing.T) {
	f := newHabitsFixture()
	logged, err := f.svc.CreateHabit(context.Background(), f.userID, habitRequest())
	require.NoError(t, err)
	fresh := habitRequest()
	fresh.Name = "stretch"
	unlogged, err := f.svc.CreateHabit(context.Background(), f.userID, fresh)
	require.NoError(t, err)

	today := day("2026-04-10")
	require.NoError(t, f.streaksRepo.Update(context.Background(), &entity.HabitStreak{
		HabitID:           logged.ID,
		UserID:            f.userID,
		CurrentStreak:     4,
		LongestStreak:     6,
		LastCompletedDate: dayPtr("2026-04-10"),
	}))
	require.NoError(t, f.logsRepo.Upsert(context.Background(), &entity.HabitLog{
		HabitID:   logged.ID,
		UserID:    f.userID,
		LogDate:   today,
		Completed: true,
	}))

	views, err := f.svc.GetUserHabitsForDay(context.Background(), f.userID, today)
	require.NoError(t, err)
	require.Len(t, views, 2)
	byID := make(map[uuid.UUID]entity.HabitDayView)
	for _, v := range views {
		byID[v.ID] = v
	}

	withLog := byID[logged.ID]
	require.NotNil(t, withLog.Streak)
	assert.Equal(t, 4, withLog.Streak.CurrentStreak)
	require.NotNil(t, withLog.DayLog)
	assert.True(t, withLog.DayLog.Completed)

	without := byID[unlogged.ID]
	require.NotNil(t, without.Streak)
	assert.Zero(t, without.Streak.CurrentStreak)
	assert.Nil(t, without.DayLog)
}
