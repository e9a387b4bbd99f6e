package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ArowuTest/luckygen/internal/auth"
	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/metrics"
	"github.com/ArowuTest/luckygen/internal/models"
)

// BatchStore persists generated batches.
type BatchStore interface {
	SaveBatch(ctx context.Context, batch *models.GeneratedBatch) error
	ListBatches(ctx context.Context, limit int) ([]models.GeneratedBatch, error)
	GetBatch(ctx context.Context, id uuid.UUID) (models.GeneratedBatch, error)
}

// DrawStore persists imported historical draws.
type DrawStore interface {
	AppendDraws(ctx context.Context, draws [][]int, importedBy *uuid.UUID) (int, error)
	ListDraws(ctx context.Context, limit int) ([]models.HistoricalDraw, error)
}

// UserStore persists admin users.
type UserStore interface {
	FindUserByUsername(ctx context.Context, username string) (models.AdminUser, error)
	CreateUser(ctx context.Context, user *models.AdminUser) error
	ListUsers(ctx context.Context) ([]models.AdminUser, error)
}

// Handler serves the HTTP API. The stores are nil when the database is
// disabled; the endpoints that need them answer 503.
type Handler struct {
	Generator *generator.Generator
	History   *history.Holder
	Batches   BatchStore
	Draws     DrawStore
	Users     UserStore
	Signer    *auth.Signer
	Log       logrus.FieldLogger
}

// Register mounts every route on r.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	{
		// Auth
		api.POST("/admin/login", h.Login)

		users := api.Group("/admin/users", h.RequireAuth(models.RoleSuperAdmin))
		{
			users.POST("", h.CreateUser)
			users.GET("", h.ListUsers)
		}

		games := api.Group("/games")
		{
			games.POST("/batch", h.GenerateBatch)
			games.POST("/single", h.GenerateSingle)
		}

		batches := api.Group("/batches")
		{
			batches.GET("", h.ListBatches)
			batches.GET("/:id", h.GetBatch)
		}

		hist := api.Group("/history")
		{
			hist.GET("/frequencies", h.Frequencies)
			hist.GET("/draws", h.ListDraws)
			hist.POST("/draws", h.RequireAuth(models.RoleSuperAdmin, models.RoleAdmin), h.ImportDraws)
		}
	}
}

// Health handles GET /healthz
func (h *Handler) Health(c *gin.Context) {
	snap := h.History.Get()
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"history": snap.Status,
	})
}

func databaseDisabled(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database is disabled on this server"})
}

// queryLimit reads ?limit=, defaulting to def and capping at 500.
func queryLimit(c *gin.Context, def int) int {
	v := c.Query("limit")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	if n > 500 {
		n = 500
	}
	return n
}
