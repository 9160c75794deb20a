package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/example/numetry/internal/services"
	"github.com/example/numetry/internal/store"
)

const (
	msgOTPSent         = "An email has been sent with the OTP."
	msgNoAccount       = "No account found with that email."
	msgOTPVerified     = "OTP verified successfully!"
	msgOTPInvalid      = "Invalid OTP. Please try again."
	msgPasswordUpdated = "Your password has been updated!"
	msgResetFirst      = "Please request a password reset and verify the OTP first."
)

// PasswordResetHandler manages the forgot-password pages. The reset state is
// kept in the browser session and handed to the service on every step.
type PasswordResetHandler struct {
	*Web
	reset *services.PasswordResetService
}

// NewPasswordResetHandler constructs a PasswordResetHandler.
func NewPasswordResetHandler(web *Web, reset *services.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{Web: web, reset: reset}
}

// ShowForgotPassword renders the email form.
func (h *PasswordResetHandler) ShowForgotPassword(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderForgot(c, sess, fiber.StatusOK, forgotPasswordForm{}, nil)
}

// ForgotPassword issues and mails a one-time code.
func (h *PasswordResetHandler) ForgotPassword(c *fiber.Ctx) error {
	var form forgotPasswordForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderForgot(c, sess, fiber.StatusUnprocessableEntity, form, formErrors(err))
	}

	rs := loadResetSession(sess)
	err = h.reset.RequestReset(c.UserContext(), &rs, form.Email)
	if errors.Is(err, services.ErrNoSuchAccount) {
		addFlash(sess, flashDanger, msgNoAccount)
		return h.renderForgot(c, sess, fiber.StatusOK, form, nil)
	}
	storeResetSession(sess, rs)
	if err != nil {
		if saveErr := sess.Save(); saveErr != nil {
			return saveErr
		}
		return err
	}

	return h.redirect(c, sess, "/enter_otp", flashInfo, msgOTPSent)
}

func (h *PasswordResetHandler) renderForgot(c *fiber.Ctx, sess *session.Session, status int, form forgotPasswordForm, errs map[string]string) error {
	return h.render(c, sess, status, "forgot_password", fiber.Map{
		"Title":  "Forgot password",
		"Form":   form,
		"Errors": errs,
	})
}

// ShowEnterOTP renders the code form.
func (h *PasswordResetHandler) ShowEnterOTP(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderOTP(c, sess, fiber.StatusOK, nil)
}

// EnterOTP checks the submitted code against the session.
func (h *PasswordResetHandler) EnterOTP(c *fiber.Ctx) error {
	var form enterOTPForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderOTP(c, sess, fiber.StatusUnprocessableEntity, formErrors(err))
	}

	rs := loadResetSession(sess)
	err = h.reset.VerifyOTP(&rs, form.OTP)
	storeResetSession(sess, rs)
	if errors.Is(err, services.ErrInvalidOTP) {
		addFlash(sess, flashDanger, msgOTPInvalid)
		return h.renderOTP(c, sess, fiber.StatusOK, nil)
	}
	if err != nil {
		return err
	}

	return h.redirect(c, sess, "/reset_password", flashSuccess, msgOTPVerified)
}

func (h *PasswordResetHandler) renderOTP(c *fiber.Ctx, sess *session.Session, status int, errs map[string]string) error {
	return h.render(c, sess, status, "enter_otp", fiber.Map{
		"Title":  "Enter OTP",
		"Errors": errs,
	})
}

// ShowResetPassword renders the new-password form.
func (h *PasswordResetHandler) ShowResetPassword(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return err
	}
	return h.renderReset(c, sess, fiber.StatusOK, nil)
}

// ResetPassword stores the new password and ends the reset.
func (h *PasswordResetHandler) ResetPassword(c *fiber.Ctx) error {
	var form resetPasswordForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form body")
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return h.renderReset(c, sess, fiber.StatusUnprocessableEntity, formErrors(err))
	}

	rs := loadResetSession(sess)
	err = h.reset.CompleteReset(c.UserContext(), &rs, form.Password)
	switch {
	case errors.Is(err, services.ErrResetNotVerified):
		return h.redirect(c, sess, "/forgot_password", flashDanger, msgResetFirst)
	case errors.Is(err, store.ErrNotFound):
		addFlash(sess, flashDanger, msgNoAccount)
		return h.renderReset(c, sess, fiber.StatusOK, nil)
	case err != nil:
		return err
	}

	storeResetSession(sess, rs)
	return h.redirect(c, sess, "/login", flashSuccess, msgPasswordUpdated)
}

func (h *PasswordResetHandler) renderReset(c *fiber.Ctx, sess *session.Session, status int, errs map[string]string) error {
	return h.render(c, sess, status, "reset_password", fiber.Map{
		"Title":  "Reset password",
		"Errors": errs,
	})
}
