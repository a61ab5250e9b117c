package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakery-api/middleware"
	"bakery-api/models"
	"bakery-api/utils"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "rahasia-test")

	middleware.UserLookup = func(email string) (*models.User, error) {
		if email == "admin@sae-bakery.local" || email == "staff@sae-bakery.local" {
			return &models.User{Email: email}, nil
		}
		return nil, nil
	}
	t.Cleanup(func() { middleware.UserLookup = nil })

	app := fiber.New()
	app.Use(middleware.JWTMiddleware)
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"role": c.Locals("userRole")})
	})
	app.Get("/admin-only", middleware.RoleGuard("admin"), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "ok"})
	})
	return app
}

func TestJWTMiddleware_TanpaToken(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token tidak ditemukan")
}

func TestJWTMiddleware_TokenRusak(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bukan.token.jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddleware_HeaderBearer(t *testing.T) {
	app := newTestApp(t)

	token, err := utils.GenerateToken("admin@sae-bakery.local", "admin", "Administrator")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"role":"admin"`)
}

func TestJWTMiddleware_TokenViaQuery(t *testing.T) {
	app := newTestApp(t)

	token, err := utils.GenerateToken("admin@sae-bakery.local", "admin", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestJWTMiddleware_UserSudahDihapus(t *testing.T) {
	app := newTestApp(t)

	token, err := utils.GenerateToken("mantan@sae-bakery.local", "staff", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "User tidak ditemukan")
}

func TestRoleGuard_StaffDitolak(t *testing.T) {
	app := newTestApp(t)

	token, err := utils.GenerateToken("staff@sae-bakery.local", "staff", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Akses ditolak")
}

func TestRoleGuard_AdminLolos(t *testing.T) {
	app := newTestApp(t)

	token, err := utils.GenerateToken("admin@sae-bakery.local", "admin", "")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
