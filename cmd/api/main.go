package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/lighthouse-program/lighthouse-api/internal/assistant"
	"github.com/lighthouse-program/lighthouse-api/internal/config"
	"github.com/lighthouse-program/lighthouse-api/internal/handler"
	"github.com/lighthouse-program/lighthouse-api/internal/infra/postgresql"
	"github.com/lighthouse-program/lighthouse-api/internal/infra/postgresql/migrations"
	infraredis "github.com/lighthouse-program/lighthouse-api/internal/infra/redis"
	"github.com/lighthouse-program/lighthouse-api/internal/mailer"
	"github.com/lighthouse-program/lighthouse-api/internal/observability"
	"github.com/lighthouse-program/lighthouse-api/internal/repository"
	"github.com/lighthouse-program/lighthouse-api/internal/service"
	"github.com/lighthouse-program/lighthouse-api/internal/storage"
	"github.com/lighthouse-program/lighthouse-api/internal/transport"
	"go.uber.org/zap"
)

const (
	shutdownTimeout  = 10 * time.Second
	bootstrapTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres initialization failed", zap.Error(err))
	}

	if err := migrations.Migrate(db); err != nil {
		logger.Fatal("database migrations failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("postgres underlying db init failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	limiter, err := infraredis.NewRedisRateLimiter(rdb, cfg.RateLimitPerMin)
	if err != nil {
		logger.Fatal("rate limiter initialization failed", zap.Error(err))
	}

	sessions, err := infraredis.NewSessionStore(rdb, time.Duration(cfg.SessionTTLMin)*time.Minute)
	if err != nil {
		logger.Fatal("session store initialization failed", zap.Error(err))
	}

	mail, err := mailer.NewHTTPMailer(cfg.MailAPIURL, cfg.MailAPIKey)
	if err != nil {
		logger.Fatal("mailer initialization failed", zap.Error(err))
	}

	llm, err := assistant.NewClient(cfg.LLMAPIURL, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		logger.Fatal("assistant client initialization failed", zap.Error(err))
	}

	uploader, err := storage.NewS3Uploader(context.Background(), cfg.S3Bucket, cfg.S3Region, cfg.AssetBaseURL)
	if err != nil {
		logger.Fatal("s3 uploader initialization failed", zap.Error(err))
	}

	metrics := observability.NewMetrics()

	contactService, err := service.NewContactService(
		repository.NewGormContactRepo(db),
		mail,
		metrics,
		logger,
		service.MailSettings{
			From:            cfg.MailFrom,
			FallbackReplyTo: cfg.MailFallbackReply,
			AdminRecipients: cfg.AdminRecipients(),
		},
	)
	if err != nil {
		logger.Fatal("contact service initialization failed", zap.Error(err))
	}

	guideService, err := service.NewGuideService(repository.NewGormGuideRepo(db), logger)
	if err != nil {
		logger.Fatal("guide service initialization failed", zap.Error(err))
	}

	qnaService, err := service.NewQnaService(repository.NewGormQnaRepo(db), logger)
	if err != nil {
		logger.Fatal("qna service initialization failed", zap.Error(err))
	}

	bannerService, err := service.NewBannerService(repository.NewGormBannerInquiryRepo(db), logger)
	if err != nil {
		logger.Fatal("banner service initialization failed", zap.Error(err))
	}

	chatService, err := service.NewChatService(repository.NewGormFaqRepo(db), llm, metrics, logger)
	if err != nil {
		logger.Fatal("chat service initialization failed", zap.Error(err))
	}

	authService, err := service.NewAuthService(repository.NewGormAdminRepo(db), sessions, logger)
	if err != nil {
		logger.Fatal("auth service initialization failed", zap.Error(err))
	}

	bootstrapCtx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	err = authService.EnsureBootstrapAdmin(bootstrapCtx, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	cancel()
	if err != nil {
		logger.Fatal("bootstrap admin seeding failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: transport.ErrorHandler(logger),
	})
	app.Use(metrics.HTTPMiddleware())

	handler.RegisterHealthRoutes(app, sqlDB, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	rateLimit := transport.RateLimitMiddleware(limiter, logger)

	v1 := app.Group("/v1")
	if err := handler.RegisterPublicContactRoutes(v1, contactService, rateLimit); err != nil {
		logger.Fatal("contact routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterPublicGuideRoutes(v1, guideService); err != nil {
		logger.Fatal("guide routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterPublicQnaRoutes(v1, qnaService); err != nil {
		logger.Fatal("qna routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterPublicBannerRoutes(v1, bannerService, rateLimit); err != nil {
		logger.Fatal("banner routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterChatRoutes(v1, chatService, rateLimit); err != nil {
		logger.Fatal("chat routes registration failed", zap.Error(err))
	}

	admin := app.Group("/v1/admin")
	if err := handler.RegisterLoginRoute(admin, authService); err != nil {
		logger.Fatal("login route registration failed", zap.Error(err))
	}

	admin.Use(transport.AuthMiddleware(sessions))
	if err := handler.RegisterLogoutRoute(admin, authService); err != nil {
		logger.Fatal("logout route registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdminContactRoutes(admin, contactService); err != nil {
		logger.Fatal("admin contact routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdminGuideRoutes(admin, guideService); err != nil {
		logger.Fatal("admin guide routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdminQnaRoutes(admin, qnaService); err != nil {
		logger.Fatal("admin qna routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterAdminBannerRoutes(admin, bannerService); err != nil {
		logger.Fatal("admin banner routes registration failed", zap.Error(err))
	}
	if err := handler.RegisterUploadRoutes(admin, uploader); err != nil {
		logger.Fatal("upload routes registration failed", zap.Error(err))
	}

	go func() {
		logger.Info("lighthouse api started", zap.Int("port", cfg.APIPort))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.APIPort)); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
