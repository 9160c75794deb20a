package main

import (
	"log"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/example/numetry/internal/config"
	"github.com/example/numetry/internal/database"
	applog "github.com/example/numetry/internal/logger"
	"github.com/example/numetry/internal/routes"
	"github.com/example/numetry/internal/services"
	"github.com/example/numetry/internal/store"
)

func main() {
	cfg := config.Load()

	zapLogger, err := applog.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	credentials := store.New(db)
	mailer := services.NewSMTPMailer(cfg.MailServer, cfg.MailPort, cfg.MailUsername, cfg.MailPassword)
	sms := services.NewTwilioSMSService(services.TwilioConfig{
		BaseURL:    cfg.TwilioBaseURL,
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		FromNumber: cfg.TwilioFromNumber,
	}, zapLogger)
	telegram := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat, zapLogger)

	app := routes.NewApp(zapLogger)
	app.Use(logger.New())

	routes.Register(app, routes.Services{
		Auth:      services.NewAuthService(credentials, cfg.JWTSecret, cfg.TokenExpires, zapLogger),
		Reset:     services.NewPasswordResetService(credentials, mailer, zapLogger),
		Enquiries: services.NewEnquiryService(credentials, sms, telegram, zapLogger),
	}, cfg)

	zapLogger.Info("starting server", zap.String("port", cfg.AppPort))
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		zapLogger.Fatal("fiber.Listen error", zap.Error(err))
	}
}
