package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"bmb-admin/config"
	"bmb-admin/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Admin: config.AdminConfig{
			Username:      "admin",
			Password:      "admin123",
			SessionSecret: "test-secret",
		},
		Display: config.DisplayConfig{
			Timezone:       "Asia/Kolkata",
			CurrencySymbol: "₹",
			ItemsPerPage:   20,
		},
	}

	h := NewHandler(cfg, nil, service.NewOrderService(nil, nil), nil)

	router := gin.New()
	router.Use(sessions.Sessions("bmbadmin", cookie.NewStore([]byte(cfg.Admin.SessionSecret))))
	router.LoadHTMLGlob("../../templates/*")
	h.SetupRoutes(router)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDashboardRequiresLogin(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
	assert.Contains(t, w.Body.String(), "Invalid admin credentials")
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/admin/login", url.Values{
		"username": {"   "},
		"password": {""},
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Username and password are required")
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	router := setupTestRouter(t)

	w := postForm(router, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	require.NotEmpty(t, w.Result().Cookies())
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	router := setupTestRouter(t)

	login := postForm(router, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	require.Equal(t, http.StatusFound, login.Code)
	cookies := login.Result().Cookies()

	w := postForm(router, "/admin/order/42/update-status", url.Values{
		"status": {"   "},
		"notes":  {"irrelevant"},
	}, cookies)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Status is required", resp.Message)
}

func TestUpdateStatusRejectsBadOrderID(t *testing.T) {
	router := setupTestRouter(t)

	login := postForm(router, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"admin123"},
	}, nil)
	cookies := login.Result().Cookies()

	w := postForm(router, "/admin/order/not-a-number/update-status", url.Values{
		"status": {"confirmed"},
	}, cookies)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid order ID", resp.Message)
}

func TestReadinessEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ready")
}
