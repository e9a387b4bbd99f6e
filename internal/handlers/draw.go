package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/grid"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/models"
)

// maxImportBytes bounds an uploaded history document.
const maxImportBytes = 4 << 20

// Frequencies handles GET /api/v1/history/frequencies
func (h *Handler) Frequencies(c *gin.Context) {
	snap := h.History.Get()

	all := make([]int, grid.MaxNumber)
	for i := range all {
		all[i] = i + 1
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      snap.Status,
		"warning":     snap.Warning,
		"source":      snap.Source,
		"draws":       snap.Draws,
		"skipped":     snap.Skipped,
		"loaded_at":   snap.LoadedAt,
		"last_draw":   nonNil(snap.LastDraw),
		"threshold":   h.Generator.Settings().FrequencyThreshold,
		"frequencies": generator.Annotate(all, snap.Frequencies),
	})
}

// ListDraws handles GET /api/v1/history/draws
func (h *Handler) ListDraws(c *gin.Context) {
	if h.Draws == nil {
		databaseDisabled(c)
		return
	}
	draws, err := h.Draws.ListDraws(c.Request.Context(), queryLimit(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch draws: " + err.Error()})
		return
	}

	resp := make([]gin.H, 0, len(draws))
	for _, d := range draws {
		resp = append(resp, gin.H{
			"id":         d.ID,
			"sequence":   d.Sequence,
			"numbers":    models.Ints(d.Numbers),
			"created_at": d.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ImportDraws handles POST /api/v1/history/draws. The body is a JSON array
// of draws, oldest first. Imported draws are used from the next session on;
// the running snapshot is left alone.
func (h *Handler) ImportDraws(c *gin.Context) {
	if h.Draws == nil {
		databaseDisabled(c)
		return
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read body"})
		return
	}
	draws, skipped, err := history.ParseDraws(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(draws) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No valid draws in payload", "skipped": skipped})
		return
	}

	var importedBy *uuid.UUID
	if id, err := uuid.Parse(c.GetString("user_id")); err == nil {
		importedBy = &id
	}

	n, err := h.Draws.AppendDraws(c.Request.Context(), draws, importedBy)
	if err != nil {
		h.Log.WithError(err).Error("draw import failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save draws"})
		return
	}
	h.Log.WithFields(logrus.Fields{
		"imported": n,
		"skipped":  skipped,
	}).Info("historical draws imported")

	c.JSON(http.StatusCreated, gin.H{
		"imported": n,
		"skipped":  skipped,
		"message":  "Draws saved; they apply from the next session",
	})
}

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
