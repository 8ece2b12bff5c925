package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymcoach/platform/internal/api"
	"gymcoach/platform/internal/config"
	"gymcoach/platform/internal/service"
	"gymcoach/platform/internal/storage"
	"gymcoach/platform/internal/store"
	mongostore "gymcoach/platform/internal/store/mongo"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Info("Starting Gym Coach Platform API...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	// --- Database Connection ---
	// A missing or unreachable database does not prevent startup: the
	// storage-backed endpoints fail per request with 503 instead.
	var st store.Store = store.Unavailable{}
	if cfg.Database.URI == "" {
		log.Warn("database URI not set, storage endpoints degraded")
	} else if dbClient, err := mongostore.ConnectDB(cfg.Database.URI); err != nil {
		log.Errorf("could not connect to MongoDB, storage endpoints degraded: %v", err)
	} else {
		defer func() {
			log.Info("Disconnecting MongoDB...")
			if err := mongostore.DisconnectDB(dbClient); err != nil {
				log.Errorf("failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		st = mongostore.New(appDB)
		log.Info("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			if err := mongostore.EnsureIndexes(ctx, appDB); err != nil {
				log.Warnf("failed to create indexes: %v", err)
			}
		}()
	}

	// --- Avatar Storage (optional) ---
	var fileStorage storage.FileStorage
	if cfg.S3.BucketName != "" {
		fileStorage, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %v", err)
		}
	} else {
		log.Warn("no S3 bucket configured, avatar uploads disabled")
	}

	// --- Services ---
	userService := service.NewUserService(st)
	planService := service.NewPlanService(st)
	chatService := service.NewChatService(st)
	logService := service.NewLogService(st)
	dashboardService := service.NewDashboardService(st)

	// --- Router ---
	router := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowCredentials = false
	router.Use(cors.New(corsConfig))

	api.SetupRoutes(router, st, cfg.Database.Name, cfg.Database.URI != "",
		userService, planService, chatService, logService, dashboardService, fileStorage)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}
