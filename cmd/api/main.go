// @title Questlog API
// @description API for gamified habit-tracker app "Questlog"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/ashfall/questlog/internal/api"
	"github.com/ashfall/questlog/internal/repository"
	"github.com/ashfall/questlog/internal/service"
	"github.com/ashfall/questlog/pkg/cleanup"
	"github.com/ashfall/questlog/pkg/config"
	jwtservice "github.com/ashfall/questlog/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	defer cleanup.CleanUp()
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.MustString(config.KeyDBAddress),
		Username: cfg.MustString(config.KeyDBUser),
		Password: cfg.MustString(config.KeyDBPassword),
		DB:       cfg.MustString(config.KeyDBName),
	}
	profilesRepo := repository.NewProfilesRepo(&dbCfg)
	habitsRepo := repository.NewHabitsRepo(&dbCfg)
	logsRepo := repository.NewHabitLogsRepo(&dbCfg)
	streaksRepo := repository.NewStreaksRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)
	achievementsRepo := repository.NewAchievementsRepo(&dbCfg)
	challengesRepo := repository.NewChallengesRepo(&dbCfg)
	remindersRepo := repository.NewRemindersRepo(&dbCfg)

	statsService := service.NewStatsService(statsRepo)
	achievementsService := service.NewAchievementsService(achievementsRepo, habitsRepo, challengesRepo, statsService)
	serv := api.New(&api.ServicesList{
		UserService:         service.NewUserService(profilesRepo),
		HabitsService:       service.NewHabitsService(habitsRepo, streaksRepo, logsRepo, achievementsService),
		CompletionService:   service.NewCompletionService(habitsRepo, logsRepo, streaksRepo, statsService, achievementsService),
		StatsService:        statsService,
		AchievementsService: achievementsService,
		ChallengesService:   service.NewChallengesService(challengesRepo, profilesRepo, achievementsService),
		AnalyticsService:    service.NewAnalyticsService(habitsRepo, logsRepo),
		RemindersService:    service.NewRemindersService(habitsRepo, remindersRepo),
		JwtService:          jwtservice.New(cfg.MustString(config.KeyJWTSecret)),
	})
	err := serv.Run(cfg.GetString(config.KeyAPIAddress))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
