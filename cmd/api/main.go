package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"techtalks/config"
	_ "techtalks/docs"
	"techtalks/internal/adapters/auth"
	"techtalks/internal/adapters/email"
	"techtalks/internal/adapters/onlineweb"
	httpdelivery "techtalks/internal/delivery/http"
	"techtalks/internal/delivery/http/controllers"
	"techtalks/internal/repository/postgres"
	"techtalks/internal/services"
)

const shutdownTimeout = 15 * time.Second

// @title Tech Talks API
// @version 1.0
// @description Registration, verification and administration API for the Tech Talks career event.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin token.
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		logger.Error("connect database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	sponsorRepo := postgres.NewSponsorRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	programRepo := postgres.NewProgramRepository(db)

	mailer, err := email.NewMailer(cfg.Email, logger)
	if err != nil {
		logger.Error("configure mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	jwt := auth.NewJWT(cfg.JWTSecret)
	directory := onlineweb.NewCompanyDirectory(&http.Client{Timeout: cfg.RequestTimeout}, cfg.CompanyDirectoryURL)

	eventService := services.NewEventService(eventRepo, registrationRepo, sponsorRepo, programRepo, cfg.RequestTimeout)
	registrationService := services.NewRegistrationService(registrationRepo, emailService, logger, cfg.VerifyURL, cfg.RequestTimeout, cfg.NotificationTimeout)
	verificationService := services.NewVerificationService(registrationRepo, cfg.RequestTimeout)
	adminAuthService := services.NewAdminAuthService(cfg.AdminUsername, cfg.AdminPasswordHash, auth.NewBcryptHasher(bcrypt.DefaultCost), jwt, cfg.AdminTokenTTL)
	companyService := services.NewCompanyService(companyRepo, sponsorRepo, eventRepo, directory, cfg.RequestTimeout)
	roomService := services.NewRoomService(roomRepo, cfg.RequestTimeout)
	programService := services.NewProgramService(programRepo, sponsorRepo, roomRepo, cfg.RequestTimeout)

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Home:         controllers.NewHomeController(logger, eventService),
		Registration: controllers.NewRegistrationController(logger, eventService, registrationService, verificationService),
		AdminAuth:    controllers.NewAdminAuthController(logger, adminAuthService, jwt, cfg.AdminTokenTTL),
		Event:        controllers.NewEventController(logger, eventService, registrationService),
		Company:      controllers.NewCompanyController(logger, companyService),
		Room:         controllers.NewRoomController(logger, roomService),
		Program:      controllers.NewProgramController(logger, programService),
	}, jwt, httpdelivery.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	registrationService.Wait()
	logger.Info("server stopped")
}
