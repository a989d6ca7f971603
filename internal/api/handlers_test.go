package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashfall/questlog/internal/api"
	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/service"
	"github.com/ashfall/questlog/internal/service/mocks"
	"github.com/ashfall/questlog/pkg/entity"
	jwtservice "github.com/ashfall/questlog/pkg/jwt_service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	username = "test_user"
	password = "test_password"
	userID   = uuid.New()
)

func authorized(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), "User-ID", userID))
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	sService := mocks.NewMockStatsLedgerI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService:  uService,
		StatsService: sService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.RegisterRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	profile := &entity.Profile{ID: userID, Username: username, Role: entity.RoleUser}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), &service.RegisterRequest{
					Username: username,
					Password: password,
				}).Return(profile, nil)
				sService.EXPECT().AwaitProvisioned(gomock.Any(), userID).
					Return(&entity.UserStats{UserID: userID, Level: 1}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(profile, nil)
				sService.EXPECT().AwaitProvisioned(gomock.Any(), userID).
					Return(nil, errorvalues.ErrStatsNotProvisioned)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/register", tc.Body)
		serv.Register(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ExpectedCode == http.StatusCreated {
			result := make(map[string]any)
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
			assert.Equal(t, userID.String(), result["uid"])
		}
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwtservice.New("secret"),
	})
	body, err := sonic.ConfigDefault.Marshal(api.LoginRequest{
		Username: username,
		Password: password,
	})
	require.NoError(t, err)
	profile := &entity.Profile{ID: userID, Username: username, Role: entity.RoleUser}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).Return(profile, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).
					Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).
					Return(nil, errorvalues.ErrWrongCredentials)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().Login(gomock.Any(), username, password).
					Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/v1/login", tc.Body)
		serv.Login(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		if tc.ExpectedCode == http.StatusOK {
			result := make(map[string]any)
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&result))
			token, ok := result["token"].(string)
			assert.True(t, ok)
			assert.NotEmpty(t, token)
		}
	}
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body, err := sonic.ConfigDefault.Marshal(api.DeleteAccountRequest{Password: password})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).Return(nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).
					Return(errorvalues.ErrWrongCredentials)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().DeleteAccount(gomock.Any(), userID, password).
					Return(errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, "/api/v1/profile", tc.Body))
		serv.DeleteAccount(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestChangeRoleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	targetID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.ChangeRoleRequest{Role: "admin"})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				uService.EXPECT().ChangeRole(gomock.Any(), userID, targetID, entity.RoleAdmin).Return(nil)
			},
			PathID: targetID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusForbidden,
			MockPrepFunc: func() {
				uService.EXPECT().ChangeRole(gomock.Any(), userID, targetID, entity.RoleAdmin).
					Return(errorvalues.ErrNotAdmin)
			},
			PathID: targetID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().ChangeRole(gomock.Any(), userID, targetID, entity.RoleAdmin).
					Return(errorvalues.ErrInvalidData)
			},
			PathID: targetID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				uService.EXPECT().ChangeRole(gomock.Any(), userID, targetID, entity.RoleAdmin).
					Return(errorvalues.ErrUserNotFound)
			},
			PathID: targetID.String(),
			Body:   bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-a-uuid",
			Body:         bytes.NewReader(body),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPut, "/api/v1/users/"+tc.PathID+"/role", tc.Body))
		r.SetPathValue("id", tc.PathID)
		serv.ChangeRole(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateHabit(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habit := api.HabitRequest{
		Name:          "morning run",
		Frequency:     "daily",
		RecordingType: "check",
	}
	body, err := sonic.ConfigDefault.Marshal(habit)
	require.NoError(t, err)
	habitID := uuid.New()
	serviceReq := &service.HabitRequest{
		Name:          habit.Name,
		Frequency:     entity.FrequencyDaily,
		RecordingType: entity.RecordingCheck,
	}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, serviceReq).
					Return(&entity.Habit{
						ID:            habitID,
						UserID:        userID,
						Name:          habit.Name,
						Frequency:     entity.FrequencyDaily,
						RecordingType: entity.RecordingCheck,
						Color:         "#10b981",
						IsActive:      true,
					}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, serviceReq).
					Return(nil, errorvalues.ErrInvalidData)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, serviceReq).
					Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, serviceReq).
					Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits", tc.Body))
		serv.CreateHabit(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetHabits(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	views := []entity.HabitDayView{
		{Habit: entity.Habit{ID: uuid.New(), UserID: userID, Name: "run", IsActive: true}},
		{Habit: entity.Habit{ID: uuid.New(), UserID: userID, Name: "read", IsActive: true}},
	}

	t.Run("success", func(t *testing.T) {
		hService.EXPECT().GetUserHabitsForDay(gomock.Any(), userID, day).Return(views, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits?date=2026-04-10", nil))
		serv.GetHabits(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.GetHabitsResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, userID.String(), resp.UserID)
		assert.Equal(t, "2026-04-10", resp.Date)
		assert.Len(t, resp.Habits, 2)
	})
	t.Run("invalid date param", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits?date=tomorrow", nil))
		serv.GetHabits(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)
		serv.GetHabits(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		hService.EXPECT().GetUserHabitsForDay(gomock.Any(), userID, gomock.Any()).
			Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil))
		serv.GetHabits(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetHabitByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habitID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				hService.EXPECT().GetHabit(gomock.Any(), habitID, userID).
					Return(&entity.Habit{ID: habitID, UserID: userID, Name: "run"}, nil)
			},
			PathID: habitID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				hService.EXPECT().GetHabit(gomock.Any(), habitID, userID).
					Return(nil, errorvalues.ErrHabitNotFound)
			},
			PathID: habitID.String(),
		},
		{
			// foreign habits are indistinguishable from missing ones
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				hService.EXPECT().GetHabit(gomock.Any(), habitID, userID).
					Return(nil, errorvalues.ErrWrongOwner)
			},
			PathID: habitID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "not-a-uuid",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits/"+tc.PathID, nil))
		r.SetPathValue("id", tc.PathID)
		serv.GetHabit(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestLogHabit(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCompletionServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CompletionService: cService,
	})
	habitID := uuid.New()
	day := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	body, err := sonic.ConfigDefault.Marshal(api.LogHabitRequest{
		Date:      "2026-04-10",
		Completed: true,
		Notes:     "easy one",
	})
	require.NoError(t, err)

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				cService.EXPECT().LogHabit(gomock.Any(), habitID, userID, day, true, (*int)(nil), "easy one").
					Return(nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				cService.EXPECT().LogHabit(gomock.Any(), habitID, userID, day, true, (*int)(nil), "easy one").
					Return(errorvalues.ErrLogDateNotAllowed)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().LogHabit(gomock.Any(), habitID, userID, day, true, (*int)(nil), "easy one").
					Return(errorvalues.ErrHabitNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				cService.EXPECT().LogHabit(gomock.Any(), habitID, userID, day, true, (*int)(nil), "easy one").
					Return(errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte(`{"date": "next tuesday"}`)),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/logs", tc.Body))
		r.SetPathValue("id", habitID.String())
		serv.LogHabit(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockStatsLedgerI(ctrl)
	serv := api.New(&api.ServicesList{
		StatsService: sService,
	})
	t.Run("success", func(t *testing.T) {
		sService.EXPECT().GetOrCreate(gomock.Any(), userID).
			Return(&entity.UserStats{UserID: userID, XP: 230, Level: 3, TotalHabitsCompleted: 23}, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var stats entity.UserStats
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats))
		assert.Equal(t, 3, stats.Level)
	})
	t.Run("service error", func(t *testing.T) {
		sService.EXPECT().GetOrCreate(gomock.Any(), userID).
			Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
		serv.GetStats(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetAchievements(t *testing.T) {
	ctrl := gomock.NewController(t)
	aService := mocks.NewMockAchievementEvaluatorI(ctrl)
	serv := api.New(&api.ServicesList{
		AchievementsService: aService,
	})
	t.Run("success", func(t *testing.T) {
		aService.EXPECT().ListWithStatus(gomock.Any(), userID).
			Return([]entity.AchievementWithStatus{
				{Achievement: entity.Achievement{ID: uuid.New(), Name: "First Step"}, Earned: true, Progress: 100},
				{Achievement: entity.Achievement{ID: uuid.New(), Name: "Week Warrior"}, Progress: 40},
			}, nil)
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil))
		serv.GetAchievements(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})
	t.Run("service error", func(t *testing.T) {
		aService.EXPECT().ListWithStatus(gomock.Any(), userID).
			Return(nil, errors.New("service error"))
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodGet, "/api/v1/achievements", nil))
		serv.GetAchievements(rr, r)
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestJoinChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	chService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: chService,
	})
	challengeID := uuid.New()

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				chService.EXPECT().Join(gomock.Any(), challengeID, userID).Return(nil)
			},
			PathID: challengeID.String(),
		},
		{
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				chService.EXPECT().Join(gomock.Any(), challengeID, userID).
					Return(errorvalues.ErrAlreadyJoined)
			},
			PathID: challengeID.String(),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				chService.EXPECT().Join(gomock.Any(), challengeID, userID).
					Return(errorvalues.ErrChallengeNotFound)
			},
			PathID: challengeID.String(),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "42",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/challenges/"+tc.PathID+"/join", nil))
		r.SetPathValue("id", tc.PathID)
		serv.JoinChallenge(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestGetChallenges(t *testing.T) {
	ctrl := gomock.NewController(t)
	chService := mocks.NewMockChallengesServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ChallengesService: chService,
	})
	details := []entity.ChallengeWithDetails{
		{Challenge: entity.Challenge{ID: uuid.New(), Name: "30 days of reading"}, ParticipantCount: 3},
	}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Limit        string
		Page         string
	}{
		{
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				chService.EXPECT().ListPublic(gomock.Any(), service.PaginationOpts{Limit: 5, Offset: 5}).
					Return(details, nil)
			},
			Limit: "5",
			Page:  "2",
		},
		{
			// out-of-range limit falls back to the default
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				chService.EXPECT().ListPublic(gomock.Any(), service.PaginationOpts{Limit: 10, Offset: 0}).
					Return(details, nil)
			},
			Limit: "500",
			Page:  "1",
		},
		{
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				chService.EXPECT().ListPublic(gomock.Any(), service.PaginationOpts{Limit: 10, Offset: 0}).
					Return(nil, errors.New("service error"))
			},
			Limit: "10",
			Page:  "1",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/challenges", nil)
		q := r.URL.Query()
		q.Add("limit", tc.Limit)
		q.Add("page", tc.Page)
		r.URL.RawQuery = q.Encode()
		r = authorized(r)
		serv.GetChallenges(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestCreateReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRemindersServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RemindersService: rService,
	})
	habitID := uuid.New()
	body, err := sonic.ConfigDefault.Marshal(api.ReminderRequest{
		ReminderTime: "07:30",
		Enabled:      true,
	})
	require.NoError(t, err)
	serviceReq := &service.ReminderRequest{ReminderTime: "07:30", Enabled: true}

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReminder(gomock.Any(), habitID, userID, serviceReq).
					Return(&entity.Reminder{ID: 1, HabitID: habitID, UserID: userID, ReminderTime: "07:30", Enabled: true}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReminder(gomock.Any(), habitID, userID, serviceReq).
					Return(nil, errorvalues.ErrInvalidData)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				rService.EXPECT().CreateReminder(gomock.Any(), habitID, userID, serviceReq).
					Return(nil, errorvalues.ErrWrongOwner)
			},
			Body: bytes.NewReader(body),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/reminders", tc.Body))
		r.SetPathValue("id", habitID.String())
		serv.CreateReminder(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}

func TestDeleteReminder(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockRemindersServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		RemindersService: rService,
	})
	reminderID := 7

	testCases := []struct {
		ExpectedCode int
		MockPrepFunc func()
		PathID       string
	}{
		{
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				rService.EXPECT().DeleteReminder(gomock.Any(), reminderID, userID).Return(nil)
			},
			PathID: strconv.Itoa(reminderID),
		},
		{
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				rService.EXPECT().DeleteReminder(gomock.Any(), reminderID, userID).
					Return(errorvalues.ErrReminderNotFound)
			},
			PathID: strconv.Itoa(reminderID),
		},
		{
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			PathID:       "seven",
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, "/api/v1/reminders/"+tc.PathID, nil))
		r.SetPathValue("id", tc.PathID)
		serv.DeleteReminder(rr, r)
		assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
	}
}
