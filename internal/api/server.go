package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ashfall/questlog/internal/service"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	habitsService       service.HabitsServiceI
	completionService   service.CompletionServiceI
	statsService        service.StatsLedgerI
	achievementsService service.AchievementEvaluatorI
	challengesService   service.ChallengesServiceI
	analyticsService    service.AnalyticsServiceI
	remindersService    service.RemindersServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	HabitsService       service.HabitsServiceI
	CompletionService   service.CompletionServiceI
	StatsService        service.StatsLedgerI
	AchievementsService service.AchievementEvaluatorI
	ChallengesService   service.ChallengesServiceI
	AnalyticsService    service.AnalyticsServiceI
	RemindersService    service.RemindersServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		habitsService:       servicesOptions.HabitsService,
		completionService:   servicesOptions.CompletionService,
		statsService:        servicesOptions.StatsService,
		achievementsService: servicesOptions.AchievementsService,
		challengesService:   servicesOptions.ChallengesService,
		analyticsService:    servicesOptions.AnalyticsService,
		remindersService:    servicesOptions.RemindersService,
		jwtService:          servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Get("/{id}", s.GetHabit)
				r.Put("/{id}", s.UpdateHabit)
				r.Delete("/{id}", s.DeleteHabit)
				r.Put("/{id}/logs", s.LogHabit)
				r.Get("/{id}/logs", s.GetHabitLogs)
				r.Delete("/{id}/logs", s.DeleteHabitLog)
				r.Post("/{id}/reminders", s.CreateReminder)
				r.Get("/{id}/reminders", s.GetHabitReminders)
			})
			r.Put("/reminders/{id}", s.UpdateReminder)
			r.Delete("/reminders/{id}", s.DeleteReminder)
			r.Delete("/profile", s.DeleteAccount)
			r.Put("/users/{id}/role", s.ChangeRole)
			r.Get("/stats", s.GetStats)
			r.Get("/achievements", s.GetAchievements)
			r.Route("/challenges", func(r chi.Router) {
				r.Post("/", s.CreateChallenge)
				r.Get("/", s.GetChallenges)
				r.Get("/joined", s.GetJoinedChallenges)
				r.Get("/{id}", s.GetChallenge)
				r.Post("/{id}/join", s.JoinChallenge)
				r.Delete("/{id}/leave", s.LeaveChallenge)
				r.Get("/{id}/participants", s.GetChallengeParticipants)
			})
			r.Get("/analytics/daily", s.GetDailyStats)
			r.Get("/analytics/weekly", s.GetWeeklyBreakdown)
		})
	})
}

func (s *Server) Run(address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server.ListenAndServe()
}
