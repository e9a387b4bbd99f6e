package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/metrics"
	"github.com/ArowuTest/luckygen/internal/models"
	"github.com/ArowuTest/luckygen/internal/store"
)

// batchRequest is the optional JSON payload for generating a batch.
type batchRequest struct {
	Games  *int  `json:"games"`
	Unique *bool `json:"unique"`
}

type gameResponse struct {
	Position   int                  `json:"position"`
	Numbers    []int                `json:"numbers"`
	Balls      []generator.Ball     `json:"balls"`
	Provenance generator.Provenance `json:"provenance"`
	Attempts   int                  `json:"attempts"`
	Stats      generator.Stats      `json:"stats"`
}

type historyStatus struct {
	Status  history.Status `json:"status"`
	Warning string         `json:"warning,omitempty"`
	Draws   int            `json:"draws"`
}

func statusOf(snap history.Snapshot) historyStatus {
	return historyStatus{Status: snap.Status, Warning: snap.Warning, Draws: snap.Draws}
}

func toGameResponse(pos int, res generator.Result, freq generator.Frequencies) gameResponse {
	return gameResponse{
		Position:   pos,
		Numbers:    res.Numbers,
		Balls:      generator.Annotate(res.Numbers, freq),
		Provenance: res.Provenance,
		Attempts:   res.Attempts,
		Stats:      res.Stats,
	}
}

// GenerateBatch handles POST /api/v1/games/batch
func (h *Handler) GenerateBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload: " + err.Error()})
		return
	}

	settings := h.Generator.Settings()
	games := settings.BatchSize
	if req.Games != nil {
		games = *req.Games
	}
	unique := settings.UniqueAcrossBatch
	if req.Unique != nil {
		unique = *req.Unique
	}
	if games < 1 || games > settings.MaxBatchSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "games must be between 1 and " + strconv.Itoa(settings.MaxBatchSize)})
		return
	}

	// one snapshot for the whole batch
	snap := h.History.Get()
	batch, err := h.Generator.Batch(games, unique, snap.History())
	if err != nil {
		h.Log.WithError(err).Error("batch generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed: " + err.Error()})
		return
	}
	metrics.RecordBatch(batch)

	resp := gin.H{
		"requested": batch.Requested,
		"unique":    batch.Unique,
		"partial":   batch.Partial(),
		"warnings":  append([]string{}, batch.Warnings...),
		"history":   statusOf(snap),
		"saved":     false,
	}

	if h.Batches != nil {
		rec := store.NewBatchRecord(batch, snap.Status)
		if err := h.Batches.SaveBatch(c.Request.Context(), &rec); err != nil {
			h.Log.WithError(err).Warn("failed to save batch")
			resp["warnings"] = append(resp["warnings"].([]string), "batch was not saved")
		} else {
			resp["batch_id"] = rec.ID
			resp["saved"] = true
		}
	}

	out := make([]gameResponse, len(batch.Games))
	for i, g := range batch.Games {
		out[i] = toGameResponse(i+1, g, snap.Frequencies)
	}
	resp["games"] = out

	c.JSON(http.StatusOK, resp)
}

// GenerateSingle handles POST /api/v1/games/single
func (h *Handler) GenerateSingle(c *gin.Context) {
	snap := h.History.Get()
	res, err := h.Generator.Game(generator.FullPool(), snap.History())
	if err != nil {
		h.Log.WithError(err).Error("game generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Generation failed: " + err.Error()})
		return
	}
	metrics.RecordGame(res)

	c.JSON(http.StatusOK, gin.H{
		"game":    toGameResponse(1, res, snap.Frequencies),
		"history": statusOf(snap),
	})
}

// ListBatches handles GET /api/v1/batches
func (h *Handler) ListBatches(c *gin.Context) {
	if h.Batches == nil {
		databaseDisabled(c)
		return
	}
	batches, err := h.Batches.ListBatches(c.Request.Context(), queryLimit(c, 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch batches: " + err.Error()})
		return
	}
	if batches == nil {
		batches = []models.GeneratedBatch{}
	}
	c.JSON(http.StatusOK, batches)
}

// GetBatch handles GET /api/v1/batches/:id
func (h *Handler) GetBatch(c *gin.Context) {
	if h.Batches == nil {
		databaseDisabled(c)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID"})
		return
	}
	batch, err := h.Batches.GetBatch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error fetching batch"})
		}
		return
	}
	c.JSON(http.StatusOK, batch)
}
