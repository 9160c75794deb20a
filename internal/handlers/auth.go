package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/example/numetry/internal/config"
	"github.com/example/numetry/internal/middleware"
	"github.com/example/numetry/internal/services"
	"github.com/example/numetry/internal/store"
)

const (
	msgRegistered     = "Registration successful!"
	msgEmailTaken     = "An account with that email already exists."
	msgLoginFailed    = "Login Unsuccessful. Please check email and password"
	msgLoggedOut      = "You have been logged out."
	dashboardGreeting = "Welcome to Numetry Technology!"
)

// AuthHandler bundles dependencies for registration, login and the dashboard.
type AuthHandler struct {
	*Web
	auth *services.AuthService
	cfg  *config.Config
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(web *Web, auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Web: web, auth: auth, cfg: cfg}
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderRegister(c, sess, fiber.StatusOK, registerForm{}, nil)
}

// Register creates a new user account.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var form registerForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderRegister(c, sess, fiber.StatusUnprocessableEntity, form, formErrors(err))
	}

	_, err = h.auth.Register(c.UserContext(), services.RegisterInput{
		Name:     form.Name,
		Email:    form.Email,
		Contact:  form.Contact,
		Password: form.Password,
	})
	if errors.Is(err, store.ErrDuplicateEmail) {
		addFlash(sess, flashDanger, msgEmailTaken)
		return h.renderRegister(c, sess, fiber.StatusOK, form, nil)
	}
	if err != nil {
		return err
	}

	return h.redirect(c, sess, "/login", flashSuccess, msgRegistered)
}

func (h *AuthHandler) renderRegister(c *fiber.Ctx, sess *session.Session, status int, form registerForm, errs map[string]string) error {
	form.Password, form.ConfirmPassword = "", ""
	return h.render(c, sess, status, "register", fiber.Map{
		"Title":  "Register",
		"Form":   form,
		"Errors": errs,
	})
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderLogin(c, sess, fiber.StatusOK, loginForm{}, nil)
}

// Login authenticates an existing user and sets the session cookie.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var form loginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderLogin(c, sess, fiber.StatusUnprocessableEntity, form, formErrors(err))
	}

	_, token, err := h.auth.Login(c.UserContext(), form.Email, form.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		addFlash(sess, flashDanger, msgLoginFailed)
		return h.renderLogin(c, sess, fiber.StatusOK, form, nil)
	}
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.AuthCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.TokenExpires),
		HTTPOnly: true,
		Secure:   h.cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	if err := sess.Regenerate(); err != nil {
		return err
	}
	return h.redirect(c, sess, "/dashboard", "", "")
}

func (h *AuthHandler) renderLogin(c *fiber.Ctx, sess *session.Session, status int, form loginForm, errs map[string]string) error {
	form.Password = ""
	return h.render(c, sess, status, "login", fiber.Map{
		"Title":  "Login",
		"Form":   form,
		"Errors": errs,
	})
}

// Logout drops the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.AuthCookieName)

	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.redirect(c, sess, "/login", flashInfo, msgLoggedOut)
}

// Dashboard greets an authenticated user.
func (h *AuthHandler) Dashboard(c *fiber.Ctx) error {
	if _, ok := middleware.GetCurrentUserID(c); !ok {
		return c.Redirect("/login")
	}
	return c.SendString(dashboardGreeting)
}
