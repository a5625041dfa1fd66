package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srgjo27/apsrtc_booking/internal/adapter/catalog"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/handler"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/notifier"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/file"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/memory"
	mongostore "github.com/srgjo27/apsrtc_booking/internal/adapter/repository/mongo"
	"github.com/srgjo27/apsrtc_booking/internal/adapter/repository/postgres"
	redisstore "github.com/srgjo27/apsrtc_booking/internal/adapter/repository/redis"
	"github.com/srgjo27/apsrtc_booking/internal/config"
	"github.com/srgjo27/apsrtc_booking/internal/core/ports"
	"github.com/srgjo27/apsrtc_booking/internal/core/services"
	"github.com/srgjo27/apsrtc_booking/internal/platform/database"
	"github.com/srgjo27/apsrtc_booking/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logr, err := logger.NewNamed(cfg.Server.Environment, cfg.Server.LogLevel, "apsrtc-booking")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logr.Sync() }()

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	blobs, closeStore, err := openBlobStore(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open booking store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	defer closeStore()

	notify, closeNotifier := buildNotifier(cfg, logr)
	defer closeNotifier()

	seed := cfg.Store.SeatSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	clock := services.SystemClock{}
	cat := catalog.NewStatic()
	store := services.NewBookingStore(blobs, clock, logr.Named("store"))
	wizard := services.NewWizard(
		cat,
		services.NewSeatMapGenerator(services.NewLockedRand(seed)),
		store,
		notify,
		clock,
		logr.Named("wizard"),
	)
	sessions := services.NewWizardSessions(cfg.Session.TTL, clock, logr.Named("sessions"))
	history := services.NewHistoryService(store, notify, clock, logr.Named("history"))

	go sessions.RunBackgroundCleanup(ctx, cfg.Session.SweepInterval)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handler.RequestLogger(logr.Named("http")))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"backend":  cfg.Store.Backend,
			"sessions": sessions.Len(),
		})
	})

	handler.RegisterRoutes(
		router.Group("/api/v1"),
		handler.NewCatalogHandler(cat),
		handler.NewSessionHandler(wizard, sessions, logr.Named("sessions")),
		handler.NewBookingHandler(history, logr.Named("bookings")),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("backend", cfg.Store.Backend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server startup failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logr.Info("shutting down server")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}

	logr.Info("server exiting")
}

// openBlobStore connects the configured backend. The returned func releases
// its connection.
func openBlobStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (ports.BlobStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		logr.Warn("using in-memory booking store, bookings are lost on restart")
		return memory.NewBlobStore(), noop, nil

	case config.BackendFile:
		store, err := file.NewBlobStore(cfg.Store.DataDir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case config.BackendRedis:
		client, err := database.NewRedisClient(ctx, database.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logr)
		if err != nil {
			return nil, noop, err
		}
		return redisstore.NewBlobStore(client, cfg.Redis.KeyPrefix), func() { _ = client.Close() }, nil

	case config.BackendPostgres:
		db, err := database.NewPostgresDB(database.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
			MaxRetries:      cfg.Postgres.MaxRetries,
			RetryDelay:      2 * time.Second,
		}, logr)
		if err != nil {
			return nil, noop, err
		}
		store := postgres.NewBlobStore(db)
		if err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("failed to migrate kv_store: %w", err)
		}
		return store, func() { _ = db.Close() }, nil

	case config.BackendMongo:
		client, err := database.NewMongoClient(ctx, database.MongoConfig{
			URI:        cfg.Mongo.URI,
			Database:   cfg.Mongo.Database,
			Collection: cfg.Mongo.Collection,
		}, logr)
		if err != nil {
			return nil, noop, err
		}
		coll := client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection)
		return mongostore.NewBlobStore(coll), func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(dctx)
		}, nil
	}

	return nil, noop, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
}

// buildNotifier always logs notifications and also publishes them to Kafka
// when brokers are configured.
func buildNotifier(cfg *config.Config, logr *zap.Logger) (ports.Notifier, func()) {
	fanout := notifier.Fanout{notifier.NewLogNotifier(logr.Named("notify"))}
	if len(cfg.Kafka.Brokers) == 0 {
		return fanout, func() {}
	}

	kafka := notifier.NewKafkaNotifier(cfg.Kafka.Brokers, cfg.Kafka.Topic, logr.Named("kafka"))
	logr.Info("publishing notifications to kafka",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
	)
	return append(fanout, kafka), func() {
		if err := kafka.Close(); err != nil {
			logr.Warn("failed to close kafka writer", zap.Error(err))
		}
	}
}
