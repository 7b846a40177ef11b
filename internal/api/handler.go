package api

import (
	"net/http"
	"strings"
	"time"

	"bmb-admin/config"
	"bmb-admin/internal/models"
	"bmb-admin/internal/service"
	"bmb-admin/internal/store"
	"bmb-admin/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Handler contains the HTTP handlers for the admin panel.
type Handler struct {
	cfg    *config.Config
	store  *store.Store
	orders *service.OrderService
	stats  *service.StatsService
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *config.Config, st *store.Store, orders *service.OrderService, stats *service.StatsService) *Handler {
	return &Handler{
		cfg:    cfg,
		store:  st,
		orders: orders,
		stats:  stats,
		logger: util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ready", h.readinessCheck)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/login")
	})

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{"message": "Page not found"})
	})

	admin := router.Group("/admin")
	{
		admin.GET("", h.adminIndex)
		admin.GET("/login", h.loginPage)
		admin.POST("/login", h.login)
		admin.GET("/logout", h.logout)
		admin.GET("/health", h.healthCheck)

		authed := admin.Group("")
		authed.Use(requireAdmin())
		{
			authed.GET("/dashboard", h.dashboardPage)
			authed.GET("/orders", h.ordersPage)
			authed.GET("/order/:id", h.orderDetails)
			authed.GET("/order/:id/payment", h.orderPayment)
			authed.GET("/order/:id/customer", h.orderCustomer)
			authed.POST("/order/:id/update-status", h.updateOrderStatus)
			authed.GET("/customers", h.customersPage)
			authed.GET("/statistics", h.statisticsPage)
			authed.GET("/api/statistics", h.apiStatistics)
			authed.GET("/items", h.itemsPage)
		}
	}
}

func (h *Handler) adminIndex(c *gin.Context) {
	sess := sessions.Default(c)
	if loggedIn, ok := sess.Get(sessionKeyLoggedIn).(bool); ok && loggedIn {
		c.Redirect(http.StatusFound, "/admin/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/admin/login")
}

// loginPage renders the login form.
func (h *Handler) loginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", gin.H{
		"flashes": popFlashes(c),
	})
}

// login validates credentials and establishes the admin session.
func (h *Handler) login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	if username == "" || password == "" {
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"flashes": []flash{{Category: "error", Message: "Username and password are required"}},
		})
		return
	}

	if username != h.cfg.Admin.Username || password != h.cfg.Admin.Password {
		util.AdminLoginsTotal.WithLabelValues("failure").Inc()
		h.logger.Warn("Failed admin login attempt", zap.String("username", username))
		c.HTML(http.StatusOK, "admin_login.html", gin.H{
			"flashes": []flash{{Category: "error", Message: "Invalid admin credentials"}},
		})
		return
	}

	sess := sessions.Default(c)
	sess.Set(sessionKeyLoggedIn, true)
	sess.Set(sessionKeyUsername, username)
	sess.Set(sessionKeyLoginTime, util.ISTNow().Format(time.RFC3339))
	sess.AddFlash("Admin login successful!", "success")
	if err := sess.Save(); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err))
	}

	util.AdminLoginsTotal.WithLabelValues("success").Inc()
	h.logger.Info("Admin logged in", zap.String("username", username))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// logout clears the session.
func (h *Handler) logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.AddFlash("Logged out successfully", "success")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// healthCheck reports liveness plus database connectivity.
func (h *Handler) healthCheck(c *gin.Context) {
	dbStatus := "connected"
	if h.store != nil {
		if err := h.store.Health(c.Request.Context()); err != nil {
			dbStatus = "error: " + err.Error()
		}
	} else {
		dbStatus = "not_configured"
	}

	status := "healthy"
	code := http.StatusOK
	if dbStatus != "connected" {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"service":   "Bite Me Buddy Admin",
		"database":  dbStatus,
		"timestamp": util.ISTNow().Format(time.RFC3339),
		"timezone":  h.cfg.Display.Timezone,
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// dashboardPage shows today's orders with summary stats and charts.
func (h *Handler) dashboardPage(c *gin.Context) {
	ctx := c.Request.Context()

	todaysOrders, err := h.store.GetTodaysOrders(ctx)
	if err != nil {
		h.logger.Error("Failed to load today's orders", zap.Error(err))
		todaysOrders = []models.OrderSummary{}
	}

	statsResult, chartData, err := h.stats.GetStatistics(ctx, "today")
	if err != nil {
		h.logger.Error("Failed to load dashboard statistics", zap.Error(err))
		statsResult = &models.OrderStatistics{}
	}

	dashStats, err := h.store.GetDashboardStats(ctx)
	if err != nil {
		h.logger.Error("Failed to load dashboard counters", zap.Error(err))
		dashStats = &models.DashboardStats{}
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"flashes":      popFlashes(c),
		"admin":        adminUsername(c),
		"overview":     h.overview(c),
		"todaysOrders": orderRows(todaysOrders),
		"todayStats":   dashStats,
		"revenueToday": util.FormatCurrency(dashStats.TotalRevenue),
		"avgOrder":     util.FormatCurrency(dashStats.AvgOrderValue),
		"chartData":    chartData,
		"totals":       statsResult.Totals,
	})
}
