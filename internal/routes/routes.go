package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"go.uber.org/zap"

	"github.com/example/numetry/internal/config"
	"github.com/example/numetry/internal/handlers"
	"github.com/example/numetry/internal/middleware"
	"github.com/example/numetry/internal/services"
	"github.com/example/numetry/internal/views"
)

// Services are the domain services the HTTP layer calls into.
type Services struct {
	Auth      *services.AuthService
	Reset     *services.PasswordResetService
	Enquiries *services.EnquiryService
}

// NewApp builds the fiber app with views, the error page and panic recovery.
func NewApp(log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Numetry Technology",
		Views:        views.New(),
		ErrorHandler: handlers.ErrorHandler(log),
	})
	app.Use(recover.New())
	return app
}

// Register wires up all HTTP routes.
func Register(app *fiber.App, svc Services, cfg *config.Config) {
	sessions := session.New(session.Config{
		Expiration:     cfg.SessionTTL,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.CookieSecure,
		CookieSameSite: fiber.CookieSameSiteLaxMode,
	})
	web := handlers.NewWeb(sessions)

	authHandler := handlers.NewAuthHandler(web, svc.Auth, cfg)
	resetHandler := handlers.NewPasswordResetHandler(web, svc.Reset)
	enquiryHandler := handlers.NewEnquiryHandler(web, svc.Enquiries)
	pageHandler := handlers.NewPageHandler(web)

	app.Static("/static", cfg.StaticDir)

	if cfg.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:_csrf",
			CookieName:     "csrf_",
			CookieSameSite: fiber.CookieSameSiteLaxMode,
			CookieSecure:   cfg.CookieSecure,
			CookieHTTPOnly: true,
			Expiration:     time.Hour,
			ContextKey:     handlers.CSRFContextKey,
		}))
	}

	// Static pages
	app.Get("/", pageHandler.Home())
	app.Get("/overview", pageHandler.Overview())
	app.Get("/courses", pageHandler.Courses())
	app.Get("/faqs", pageHandler.FAQs())
	app.Get("/contact", pageHandler.Contact())

	// Accounts
	app.Get("/register", authHandler.ShowRegister)
	app.Post("/register", authHandler.Register)
	app.Get("/login", authHandler.ShowLogin)
	app.Post("/login", authHandler.Login)
	app.Get("/logout", authHandler.Logout)

	// Password reset
	app.Get("/forgot_password", resetHandler.ShowForgotPassword)
	app.Post("/forgot_password", resetHandler.ForgotPassword)
	app.Get("/enter_otp", resetHandler.ShowEnterOTP)
	app.Post("/enter_otp", resetHandler.EnterOTP)
	app.Get("/reset_password", resetHandler.ShowResetPassword)
	app.Post("/reset_password", resetHandler.ResetPassword)

	// Enquiries
	app.Get("/enquiry", enquiryHandler.ShowEnquiry)
	app.Post("/enquiry", enquiryHandler.SubmitEnquiry)

	// Protected routes
	app.Get("/dashboard", middleware.AuthMiddleware(cfg.JWTSecret, "/login"), authHandler.Dashboard)
}
