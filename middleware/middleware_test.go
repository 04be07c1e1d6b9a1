package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/models"
	"github.com/Modeva-Ecommerce/modeva-restaurant-cms/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, services.InitJWTService("middleware-secret"))

	r := gin.New()
	r.PATCH("/customers/:id", AdminAuthMiddleware(), RequireWriteRoleMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "ok", c.GetString("adminEmail")))
	})
	return r
}

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := services.GetJWTService().GenerateAdminJWT("a1", "host@bistro.example", role, time.Hour)
	require.NoError(t, err)
	return tok
}

func patch(r *gin.Engine, header, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/customers/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "admin_token", Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminAuth(t *testing.T) {
	r := newAuthRouter(t)

	assert.Equal(t, http.StatusUnauthorized, patch(r, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, patch(r, "Token abc", "").Code)
	assert.Equal(t, http.StatusUnauthorized, patch(r, "Bearer not-a-jwt", "").Code)
	assert.Equal(t, http.StatusForbidden, patch(r, "Bearer "+token(t, services.RoleViewer), "").Code)

	w := patch(r, "Bearer "+token(t, services.RoleAdmin), "")
	require.Equal(t, http.StatusOK, w.Code)
	var body models.ApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "host@bistro.example", body.Data)

	assert.Equal(t, http.StatusOK, patch(r, "", token(t, services.RoleSuperAdmin)).Code)
}

func TestRateState(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	rate := rateState(3, 42*time.Second, 100, time.Minute, now)
	assert.Equal(t, 100, rate.Limit)
	assert.Equal(t, 97, rate.Remaining)
	assert.Equal(t, 42, rate.ResetInSeconds)
	assert.Equal(t, now.Add(42*time.Second), rate.ResetAt)

	rate = rateState(150, -1, 100, time.Minute, now)
	assert.Equal(t, 0, rate.Remaining)
	assert.Equal(t, 60, rate.ResetInSeconds)
}
