package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/ashfall/questlog/internal/error_values"
	"github.com/ashfall/questlog/internal/service"
	"github.com/ashfall/questlog/pkg/httputil"
)

type ChallengeRequest struct {
	Name        string `json:"name"`
	Description string `json:"desc"`
	HabitName   string `json:"habit_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TargetDays  int    `json:"target_days"`
	IsPublic    bool   `json:"is_public"`
}

func (s *Server) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("create challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ChallengeRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create challenge error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	startDate, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		logger.Error("create challenge error: invalid start date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid start_date, want YYYY-MM-DD", nil)
		return
	}
	endDate, err := time.Parse(time.DateOnly, req.EndDate)
	if err != nil {
		logger.Error("create challenge error: invalid end date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid end_date, want YYYY-MM-DD", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.CreateChallenge(ctx, uid, &service.ChallengeRequest{
		Name:        req.Name,
		Description: req.Description,
		HabitName:   req.HabitName,
		StartDate:   startDate,
		EndDate:     endDate,
		TargetDays:  req.TargetDays,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidData):
			logger.Error("create challenge error: invalid challenge data", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge data", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create challenge error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create challenge: user doesn't exists", nil)
		default:
			logger.Error("create challenge error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating challenge", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, challenge)
	logger.Info("challenge created")
}

func (s *Server) GetChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.ListPublic(ctx, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		logger.Error("get challenges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting challenges list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"page":       page,
		"limit":      limit,
		"challenges": challenges,
	})
	logger.Info("challenges provided")
}

func (s *Server) GetJoinedChallenges(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get joined challenges error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	challenges, err := s.challengesService.ListJoined(ctx, uid)
	if err != nil {
		logger.Error("get joined challenges error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting joined challenges", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":        uid.String(),
		"challenges": challenges,
	})
	logger.Info("joined challenges provided")
}

func (s *Server) GetChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	challenge, err := s.challengesService.GetChallenge(ctx, id)
	if err != nil {
		writeChallengeError(w, logger, "get challenge", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, challenge)
	logger.Info("challenge provided")
}

func (s *Server) JoinChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("join challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("join challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.Join(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyJoined) {
			logger.Error("join challenge error: already joined")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenge already joined", nil)
			return
		}
		writeChallengeError(w, logger, "join challenge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("challenge joined")
}

func (s *Server) LeaveChallenge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("leave challenge error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("leave challenge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.challengesService.Leave(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotJoined) {
			logger.Error("leave challenge error: not joined")
			httputil.WriteErrorResponse(w, http.StatusConflict, "challenge is not joined", nil)
			return
		}
		writeChallengeError(w, logger, "leave challenge", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("challenge left")
}

func (s *Server) GetChallengeParticipants(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	_, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get participants error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get participants error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid challenge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	participants, err := s.challengesService.GetParticipants(ctx, id)
	if err != nil {
		writeChallengeError(w, logger, "get participants", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"challenge_id": id.String(),
		"participants": participants,
	})
	logger.Info("participants provided")
}

func writeChallengeError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrChallengeNotFound):
		logger.Error(action + " error: unexist challenge")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "challenge doesn't exist", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}
