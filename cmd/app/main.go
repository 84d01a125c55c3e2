package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	apiHttp "github.com/maslahat/backend/internal/api/http"
	"github.com/maslahat/backend/internal/cache"
	"github.com/maslahat/backend/internal/config"
	"github.com/maslahat/backend/internal/db"
	"github.com/maslahat/backend/internal/queue/asynqserver"
	queueClient "github.com/maslahat/backend/internal/queue/client"
	"github.com/maslahat/backend/internal/repository"
	"github.com/maslahat/backend/internal/server"
	"github.com/maslahat/backend/internal/service"
	"github.com/maslahat/backend/internal/worker"
	"github.com/maslahat/backend/pkg/auth"
	"github.com/maslahat/backend/pkg/email"
	"github.com/maslahat/backend/pkg/email/smtp"
	"github.com/maslahat/backend/pkg/hash"
	"github.com/maslahat/backend/pkg/logger"
	"github.com/maslahat/backend/pkg/otp"
	"github.com/maslahat/backend/pkg/sms"
	"github.com/maslahat/backend/pkg/sms/eskiz"
)

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env)
	defer appLogger.Sync() //nolint:errcheck

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Error("mysql connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		appLogger.Error("redis connect problem", zap.Error(err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			appLogger.Error("error when closing redis", zap.Error(err))
		}
	}()
	appLogger.Info("redis connection done")

	hasher := hash.NewSHA256Hasher(cfg.Auth.PasswordSalt)

	// The gateway client needs credentials, so it is only built when SMS
	// dispatch is enabled. The worker skips sends when it is not.
	var smsSender sms.Sender
	if cfg.SMS.Enabled {
		smsSender, err = eskiz.NewClient(cfg.SMS.BaseURL, cfg.SMS.Token, cfg.SMS.From)
		if err != nil {
			appLogger.Error("sms client creation failed", zap.Error(err))
			return
		}
	}

	var emailSender email.Sender
	if cfg.Email.Enabled {
		emailSender, err = smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
		if err != nil {
			appLogger.Error("smtp sender creation failed", zap.Error(err))
			return
		}
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		appLogger.Error("auth manager creation err", zap.Error(err))
		return
	}

	otpGenerator := otp.NewGOTPGenerator(cfg.Auth.VerificationCodeLength)

	// Task queue
	queue := queueClient.New(asynqserver.RedisOptions(cfg.Cache))
	defer func() {
		if err := queue.Close(); err != nil {
			appLogger.Error("error when closing queue client", zap.Error(err))
		}
	}()

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	throttle := cache.NewResendThrottle(redisClient, cfg.Auth.ResendWindow, cfg.Auth.MaxResends)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Queue:        queue,
		Throttle:     throttle,
		Repos:        repos,
	})
	handlers := apiHttp.NewHandlers(services, tokenManager, cfg)

	// Background workers
	workers := worker.NewWorkers(worker.Deps{
		SMSSender:   smsSender,
		EmailSender: emailSender,
		Config:      cfg,
	})
	asynqSrv, mux := asynqserver.New(cfg.Cache, workers)
	go func() {
		if err := asynqSrv.Run(mux); err != nil {
			appLogger.Error("error occurred while running asynq server", zap.Error(err))
		}
	}()
	appLogger.Info("asynq server started")

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	asynqSrv.Shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
