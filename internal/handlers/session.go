package handlers

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/example/numetry/internal/services"
)

// Session keys.
const (
	keyOTP         = "otp"
	keyResetEmail  = "reset_email"
	keyOTPVerified = "otp_verified"
	keyFlashes     = "_flashes"
)

// CSRFContextKey is the c.Locals key the csrf middleware stores its token under.
const CSRFContextKey = "csrf"

// Flash categories.
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashWarning = "warning"
	flashDanger  = "danger"
)

// Flash is a one-shot message shown on the next rendered page.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

// Web holds the session store shared by the HTML handlers.
type Web struct {
	sessions *session.Store
}

// NewWeb constructs a Web.
func NewWeb(sessions *session.Store) *Web {
	return &Web{sessions: sessions}
}

func (w *Web) session(c *fiber.Ctx) (*session.Session, error) {
	return w.sessions.Get(c)
}

func loadResetSession(sess *session.Session) services.ResetSession {
	var rs services.ResetSession
	if v, ok := sess.Get(keyOTP).(string); ok {
		rs.OTP = v
	}
	if v, ok := sess.Get(keyResetEmail).(string); ok {
		rs.Email = v
	}
	if v, ok := sess.Get(keyOTPVerified).(bool); ok {
		rs.Verified = v
	}
	return rs
}

func storeResetSession(sess *session.Session, rs services.ResetSession) {
	if !rs.Active() {
		sess.Delete(keyOTP)
		sess.Delete(keyResetEmail)
		sess.Delete(keyOTPVerified)
		return
	}
	sess.Set(keyOTP, rs.OTP)
	sess.Set(keyResetEmail, rs.Email)
	sess.Set(keyOTPVerified, rs.Verified)
}

func addFlash(sess *session.Session, category, message string) {
	flashes := peekFlashes(sess)
	flashes = append(flashes, Flash{Category: category, Message: message})
	if data, err := json.Marshal(flashes); err == nil {
		sess.Set(keyFlashes, string(data))
	}
}

func peekFlashes(sess *session.Session) []Flash {
	raw, ok := sess.Get(keyFlashes).(string)
	if !ok || raw == "" {
		return nil
	}
	var flashes []Flash
	if err := json.Unmarshal([]byte(raw), &flashes); err != nil {
		return nil
	}
	return flashes
}

func popFlashes(sess *session.Session) []Flash {
	flashes := peekFlashes(sess)
	sess.Delete(keyFlashes)
	return flashes
}

// render pops pending flashes into data and renders view with status.
func (w *Web) render(c *fiber.Ctx, sess *session.Session, status int, view string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flashes"] = popFlashes(sess)
	if token, ok := c.Locals(CSRFContextKey).(string); ok {
		data["CSRFToken"] = token
	}
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Status(status).Render(view, data)
}

// redirect flashes message and sends the browser to location.
func (w *Web) redirect(c *fiber.Ctx, sess *session.Session, location, category, message string) error {
	if message != "" {
		addFlash(sess, category, message)
	}
	if err := sess.Save(); err != nil {
		return err
	}
	return c.Redirect(location)
}

// formErrors extracts per-field messages from err, or nil when err is not a
// validation failure.
func formErrors(err error) map[string]string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return nil
}
