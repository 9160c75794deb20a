package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/numetry/internal/utils"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/private", AuthMiddleware("secret", "/login"), func(c *fiber.Ctx) error {
		id, ok := GetCurrentUserID(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.SendString(id.String())
	})
	return app
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	resp, err := newProtectedApp().Test(httptest.NewRequest(http.MethodGet, "/private", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	id := uuid.New()
	token, err := utils.GenerateToken("secret", id, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	resp, err := newProtectedApp().Test(req, -1)
	require.NoError(t, err)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, id.String(), string(body))
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	id := uuid.New()
	token, err := utils.GenerateToken("secret", id, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := newProtectedApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddleware_BadToken(t *testing.T) {
	token, err := utils.GenerateToken("other-secret", uuid.New(), time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: token})
	resp, err := newProtectedApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
