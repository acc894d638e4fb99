// File: studycompass/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studycompass/config"
	"studycompass/cron"
	"studycompass/database"
	eventRepoPkg "studycompass/database/repository/event"
	orgRepoPkg "studycompass/database/repository/org"
	pollRepoPkg "studycompass/database/repository/poll"
	roomRepoPkg "studycompass/database/repository/room"
	userRepoPkg "studycompass/database/repository/user"
	"studycompass/handlers"
	"studycompass/middleware"
	"studycompass/routes"
	"studycompass/services/availability"
	"studycompass/services/conflict"
	"studycompass/services/poll"
	"studycompass/services/user"
	"studycompass/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	roomRepo := roomRepoPkg.NewMongoRoomRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()
	orgRepo := orgRepoPkg.NewMongoOrgRepo()
	pollRepo := pollRepoPkg.NewMongoPollRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		RoomRepo:  roomRepo,
		EventRepo: eventRepo,
		Calc:      availability.Calculator{LookaheadMinutes: config.AppConfig.LookaheadMinutes},
		Cache:     utils.GetCacheClient(),
		CacheTTL:  time.Duration(config.AppConfig.ScheduleCacheTTLMin) * time.Minute,
	}

	conflictService := conflict.NewDefaultConflictService(eventRepo, userRepo, orgRepo)

	pollService := &poll.DefaultPollService{
		Repo: pollRepo,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	conflictHandler := handlers.NewConflictHandler(conflictService)
	pollHandler := handlers.NewPollHandler(pollService)
	userHandler := handlers.NewUserHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Availability endpoints.
		RoomFreeStatusHandler: availabilityHandler.RoomFreeStatusHandler,
		FreeRoomsHandler:      availabilityHandler.FreeRoomsHandler,
		CheckRoomHandler:      availabilityHandler.CheckRoomHandler,

		// Conflict endpoints.
		DetectConflictsHandler: conflictHandler.DetectConflictsHandler,

		// Poll endpoints.
		CreatePollHandler:     pollHandler.CreatePollHandler,
		RespondHandler:        pollHandler.RespondHandler,
		OverlapsHandler:       pollHandler.OverlapsHandler,
		ValidateBlocksHandler: pollHandler.ValidateBlocksHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitScheduleWarmWorker(availabilityService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
