package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookline/config"
	"bookline/handlers"
	"bookline/middleware"
	"bookline/routes"
	"bookline/services/calendar"
	"bookline/services/conversation"
	"bookline/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Calendar provider.
	var provider calendar.Provider
	switch config.AppConfig.CalendarBackend {
	case "google":
		gp, err := calendar.NewGoogleProvider(
			context.Background(),
			config.AppConfig.GoogleCalendarID,
			config.AppConfig.GoogleTokenFile,
		)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Google Calendar provider: %v", err)
		}
		provider = gp
	default:
		provider = &calendar.StaticProvider{}
	}

	// Session store.
	var store conversation.SessionStore
	if config.AppConfig.SessionBackend == "redis" {
		utils.InitSessionCache()
		ttl := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
		store = conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), ttl)
	} else {
		store = conversation.NewMemorySessionStore()
	}

	conversationService := &conversation.DefaultConversationService{
		Store:    store,
		Calendar: provider,
		Hours: conversation.WorkingHours{
			StartHour: config.AppConfig.WorkStartHour,
			EndHour:   config.AppConfig.WorkEndHour,
		},
		CalendarTimeout: time.Duration(config.AppConfig.CalendarTimeoutSecs) * time.Second,
	}

	chatHandler := handlers.NewChatHandler(conversationService)
	routes.RegisterRoutes(router, chatHandler)

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
