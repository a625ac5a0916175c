package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/cafedelight/menu-backend/internal/config"
	"github.com/cafedelight/menu-backend/internal/database"
	"github.com/cafedelight/menu-backend/internal/events"
	"github.com/cafedelight/menu-backend/internal/http/handlers"
	mw "github.com/cafedelight/menu-backend/internal/http/middleware"
	"github.com/cafedelight/menu-backend/internal/logger"
	"github.com/cafedelight/menu-backend/internal/mailer"
	"github.com/cafedelight/menu-backend/internal/menu"
	"github.com/cafedelight/menu-backend/internal/otp"
	"github.com/cafedelight/menu-backend/internal/repo/postgres"
)

func main() {
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// Event bus is optional; without a NATS URL mutations just aren't
	// broadcast.
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL)
		if err != nil {
			logger.Error("Failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		publisher = natsPub
	}
	defer publisher.Close()

	menuRepo := postgres.NewMenuRepo(pool)
	otpRepo := postgres.NewOTPRepo(pool)

	menuService := menu.NewService(menuRepo, publisher)
	if err := menuService.Seed(ctx); err != nil {
		logger.Error("Failed to seed menu", "error", err)
		os.Exit(1)
	}

	otpManager := otp.NewManager(otpRepo, pickMailer(cfg), publisher, cfg.Auth.AdminEmail, cfg.Auth.OTPTTL)

	authHandler := handlers.NewAuthHandler(otpManager, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	menuHandler := handlers.NewMenuHandler(menuService)

	otpLimiter := mw.NewRateLimiter(pool, mw.RateLimitConfig{
		Requests: 5,
		Window:   15 * time.Minute,
	})

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(otpLimiter.Middleware()).Post("/send-otp", authHandler.SendOTP)
			r.Post("/verify-otp", authHandler.VerifyOTP)
		})

		r.Mount("/menu", menuHandler.PublicRoutes())

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.RequireAdmin(cfg.Auth.JWTSecret, cfg.Auth.AdminEmail))
			r.Mount("/menu", menuHandler.AdminRoutes())
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Shutdown error", "error", err)
		}
	}()

	logger.Info("Starting menu API", "port", cfg.Server.Port, "admin", cfg.Auth.AdminEmail)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// pickMailer chooses the delivery backend: MailerSend when an API key is
// configured, SMTP when a host is, otherwise log-only dev mail.
func pickMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	case cfg.Email.SMTPHost != "":
		return mailer.NewSMTPMailer(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.FromEmail,
			cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS,
		)
	default:
		if !cfg.Email.DevMode {
			logger.Warn("No mail provider configured; falling back to dev mailer")
		}
		return mailer.NewDevMailer()
	}
}
