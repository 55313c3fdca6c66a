package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devlearn/backend/internal/config"
	"devlearn/backend/internal/database"
	"devlearn/backend/internal/handlers"
	"devlearn/backend/internal/logger"
	"devlearn/backend/internal/middleware"
	"devlearn/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	// Best effort; without a .env file the platform environment is used.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.IsProduction())
	defer log.Sync()

	// Connect to the store. A failure here degrades persistence endpoints
	// instead of aborting: the diagnostic endpoint must stay reachable.
	var client *mongo.Client
	if cfg.MongoURI == "" {
		log.Warn("MONGO_URI not set, starting without a database")
	} else {
		var err error
		client, err = database.Connect(cfg.MongoURI)
		if err != nil {
			log.Warn("Could not connect to MongoDB, starting degraded", zap.Error(err))
			client = nil
		} else {
			log.Info("Connected to MongoDB", zap.String("database", cfg.DBName))
		}
	}

	st := store.New(client, cfg.DBName)

	authHandler := handlers.NewAuthHandler(st, log)
	noteHandler := handlers.NewNoteHandler(st, log)
	progressHandler := handlers.NewProgressHandler(st, log)
	videoHandler := handlers.NewVideoHandler()
	aiHandler := handlers.NewAIHandler()
	healthHandler := handlers.NewHealthHandler(st, cfg.DBName, cfg.MongoURI != "")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSAllowOrigins))

	router.GET("/", healthHandler.Root)
	router.GET("/test", healthHandler.DBTest)

	api := router.Group("/api")
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/notes", noteHandler.ListNotes)
		api.POST("/notes", noteHandler.CreateNote)

		api.GET("/progress/:user_id", progressHandler.GetProgress)
		api.POST("/progress", progressHandler.UpdateProgress)

		api.GET("/videos", videoHandler.ListVideos)

		api.POST("/ai/mentor", aiHandler.Mentor)
		api.POST("/ai/convert", aiHandler.Convert)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to run server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}
	if err := database.Disconnect(client); err != nil {
		log.Error("MongoDB disconnect failed", zap.Error(err))
	}
}
