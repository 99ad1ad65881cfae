package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/snapscape.net/internal/adapter/crypto"
	"gitlab.com/snapscape.net/internal/adapter/logging"
	"gitlab.com/snapscape.net/internal/adapter/postgres"
	"gitlab.com/snapscape.net/internal/adapter/postgres/competitionrepository"
	"gitlab.com/snapscape.net/internal/adapter/postgres/resultrepository"
	"gitlab.com/snapscape.net/internal/adapter/postgres/submissionrepository"
	"gitlab.com/snapscape.net/internal/adapter/redis/achievementcache"
	"gitlab.com/snapscape.net/internal/adapter/redis/medalnotifier"
	"gitlab.com/snapscape.net/internal/config"
	"gitlab.com/snapscape.net/internal/core/services/achievement"
	"gitlab.com/snapscape.net/internal/core/services/lifecycle"
	logger2 "gitlab.com/snapscape.net/internal/global/logger"
	http2 "gitlab.com/snapscape.net/internal/http"
	"gitlab.com/snapscape.net/internal/schedulerengine"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sysCfg := config.NewSystemConfig()

	logger := logging.NewZapLogger(sysCfg.DebugMode)
	logger2.Logger = logger
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting snapscape achievements service")

	ctxBg, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := setupDatabase(ctxBg, sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctxBg).Err(); err != nil {
		// The cache and notifications degrade; ranking still works
		logger.Warn("Redis unreachable", "addr", sysCfg.RedisConfig.Url, "error", err)
	}

	// SECONDARY PORTS
	schema := sysCfg.PostgresConfig.Schema
	submissionRepo := submissionrepository.NewSubmissionRepository(db, logger, schema)
	resultRepo := resultrepository.NewResultRepository(db, logger, schema)
	competitionRepo := competitionrepository.NewCompetitionRepository(db, logger, schema)
	achievementCache := achievementcache.NewAchievementCache(redisClient, logger, sysCfg.SyncConfig.CacheTTL)
	medalNotifier := medalnotifier.NewMedalNotifier(redisClient, logger)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	achievementSvc := achievement.NewAchievementService(
		submissionRepo, resultRepo, competitionRepo, achievementCache, medalNotifier, logger, sysCfg.SyncConfig,
	)
	achievementSvc.SetCacheInvalidator(achievementCache.Invalidate)
	lifecycleSvc := lifecycle.NewLifecycleService(competitionRepo, achievementSvc, logger)
	serviceProvider := http2.NewServiceProvider(achievementSvc, lifecycleSvc, jwtProvider, sysCfg.CronConfig.SecretHash)

	//server
	httpServer := http2.NewServer(sysCfg.HTTPConfig.Port, "snapscape", *serviceProvider, logger)
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}
	httpServer.Start(ctxBg)

	schedulerSvc := schedulerengine.NewSchedulerEngine(sysCfg.ScheduleSvcCfg, lifecycleSvc, achievementSvc, logger)
	if !sysCfg.DebugMode {
		schedulerSvc.Start(ctxBg)
	}

	<-quit
	logger.Info("Shutting down server...")

	ctx, cacel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cacel()
	httpServer.Stop(ctx)
	cancel()
	schedulerSvc.Wait()
	achievementSvc.Wait()

	logger.Info("successfully shutdown server")
}

// setupDatabase opens the PostgreSQL connection and makes sure the tables exist
func setupDatabase(ctx context.Context, cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := postgres.CreateSchema(ctx, db, cfg.Schema); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// InitReader loads <env>.env named by the first argument. Without an
// argument, or when the file is absent, the process environment is used.
func InitReader() {
	if len(os.Args) < 2 {
		logger2.Warn("Env not supplied in argument, using process environment")
		return
	}
	environment := os.Args[1]

	err := godotenv.Load(environment + ".env")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger2.Warn("Env file not found, using process environment", "file", environment+".env")
			return
		}
		logger2.Error("Error loading env file", "file", environment+".env", "error", err)
		os.Exit(1)
	}
}
