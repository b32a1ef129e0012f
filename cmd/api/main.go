// @title                       ZeroSmoke Health Portal API
// @version                     1.0
// @description                 Content, contact and account API for the ZeroSmoke public health site.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	_ "github.com/zerosmoke/health-portal/docs"
	"github.com/zerosmoke/health-portal/internal/api"
	"github.com/zerosmoke/health-portal/internal/api/handler"
	"github.com/zerosmoke/health-portal/internal/auth"
	"github.com/zerosmoke/health-portal/internal/core/domain"
	"github.com/zerosmoke/health-portal/internal/core/ports"
	"github.com/zerosmoke/health-portal/internal/core/service"
	mongodb "github.com/zerosmoke/health-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/zerosmoke/health-portal/internal/infrastructure/db/redis"
	"github.com/zerosmoke/health-portal/internal/infrastructure/email"
	"github.com/zerosmoke/health-portal/internal/infrastructure/queue"
	"github.com/zerosmoke/health-portal/internal/pkg/config"
	"github.com/zerosmoke/health-portal/pkg/logger"
)

//go:generate swag init --dir ../.. --generalInfo cmd/api/main.go --output ../../docs --outputTypes go

const shutdownTimeout = 30 * time.Second

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "health-portal",
	})
	log.Info().Str("env", cfg.Env).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	userRepo := mongodb.NewUserRepository(db)
	articleRepo := mongodb.NewArticleRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	faqRepo := mongodb.NewFAQRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, articleRepo, messageRepo, faqRepo); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure indexes")
	}

	// --- Outbound mail ---
	mailer, err := newMailer(ctx, cfg, logger.Component("mailer"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise mailer")
	}
	dispatcher := queue.NewDispatcher(cfg.Email.Workers, mailer, logger.Component("reply-queue"))
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	dispatcher.Start(workerCtx)

	// --- Services ---
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise token service")
	}
	userService := service.NewUserService(userRepo, log)
	deps := api.Dependencies{
		Auth:     service.NewAuthService(userRepo, tokens, log),
		Users:    userService,
		Articles: service.NewArticleService(articleRepo, log),
		Messages: service.NewMessageService(messageRepo, redisdb.NewContactDedup(rdb, cfg.Contact.DedupWindow), dispatcher, log),
		FAQs:     service.NewFAQService(faqRepo, log),
		Tokens:   tokens,
		Health:   handler.NewHealthHandler(db, rdb),
		Logger:   log,

		CORSOrigins: cfg.CORSOrigins,
	}

	if err := ensureAdmin(ctx, userService, cfg.Admin, log); err != nil {
		log.Error().Err(err).Msg("failed to ensure admin user")
	}

	e := api.NewRouter(deps)
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	dispatcher.Stop()
	cancelWorkers()
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close error")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect error")
	}

	log.Info().Msg("server stopped gracefully")
}

func newMailer(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.Mailer, error) {
	from := email.Sender{Name: cfg.Email.FromName, Address: cfg.Email.From}
	if cfg.Email.Provider == config.EmailProviderSES {
		return email.NewSESMailer(ctx, cfg.Email.AWSRegion, from, log)
	}
	return email.NewLogMailer(from, log), nil
}

// ensureAdmin creates the first administrator when ADMIN_EMAIL is set.
func ensureAdmin(ctx context.Context, users ports.UserService, admin config.AdminConfig, log zerolog.Logger) error {
	if admin.Email == "" {
		return nil
	}
	_, err := users.Create(ctx, ports.CreateUserInput{
		Name:     "Admin",
		Email:    admin.Email,
		Password: admin.Password,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, domain.ErrUserExists) {
		log.Info().Msg("admin user already exists")
		return nil
	}
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("admin user created")
	return nil
}
