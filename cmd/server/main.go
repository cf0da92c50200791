package main

import (
	"context"                             // Shutdown and Redis ping contexts
	"errors"                              // Error matching
	"event_ticketing/internal/api"        // Custom package for API handlers
	"event_ticketing/internal/config"     // Custom package for configuration
	"event_ticketing/internal/db"         // Database connection
	"event_ticketing/internal/mailer"     // SMTP delivery
	"event_ticketing/internal/repository" // GORM stores
	"event_ticketing/internal/service"    // OTP manager and wallet ledger
	"event_ticketing/internal/utils"      // Redis helpers
	"net/http"                            // HTTP server
	"os"                                  // Signals and upload dir
	"os/signal"                           // Graceful shutdown
	"syscall"                             // SIGTERM
	"time"                                // Shutdown timeout

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// setupLogger configures logrus from the loaded configuration
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Main function to set up and run the server
func main() {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	setupLogger(cfg)

	// Connect to the database
	conn, err := db.Open(cfg.DB.DSN(), cfg.IsProd)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr, // Redis server address
		Password: cfg.Redis.Pass, // Redis password
		DB:       cfg.Redis.DB,   // Redis database number
	})
	defer redisClient.Close()

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("failed to create upload dir: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	users := repository.NewUserRepository(conn)
	smtp := mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From)

	r, err := api.NewRouter(api.Dependencies{
		Users:   users,
		Events:  repository.NewEventRepository(conn),
		Tickets: repository.NewTicketRepository(conn),
		Ledger:  service.NewLedger(repository.NewWalletRepository(conn)),
		OTP:     service.NewOTPManager(users, smtp, cfg.OTP.TTL),
		Sessions: &api.Sessions{
			Secret:   cfg.JWTSecret,
			TTL:      cfg.Cookie.TokenTTL,
			Secure:   cfg.Cookie.Secure,
			Domain:   cfg.Cookie.Domain,
			Denylist: utils.NewRedisDenylist(redisClient),
		},
		Cache:       utils.NewRedisCache(redisClient),
		OTPCooldown: utils.NewRedisCooldown(redisClient, "otp:cooldown:", cfg.OTP.ResendCooldown),
		UploadDir:   cfg.UploadDir,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("server forced to shutdown: %v", err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
