package api

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/reddit-data-collector/internal/models"
	"github.com/rs/zerolog"
)

// Runner runs one full collection and returns its result
type Runner interface {
	Run(ctx context.Context) *models.CollectionResult
}

// CollectionHandler handles collection endpoints. It keeps the latest
// result in memory; runs are never persisted.
type CollectionHandler struct {
	runner Runner
	log    zerolog.Logger

	mu      sync.Mutex
	running bool
	latest  *models.CollectionResult
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(runner Runner, log zerolog.Logger) *CollectionHandler {
	return &CollectionHandler{
		runner: runner,
		log:    log.With().Str("handler", "collection").Logger(),
	}
}

// StartCollection handles POST /v1/collections. A single run may be in
// flight at a time; concurrent triggers get 409.
func (h *CollectionHandler) StartCollection(c *gin.Context) {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "a collection run is already in progress"})
		return
	}
	h.running = true
	h.mu.Unlock()

	h.log.Info().Msg("Collection run triggered via API")

	go func() {
		// The router's recovery middleware does not cover this
		// goroutine; a panicking run must still release the slot.
		defer func() {
			if r := recover(); r != nil {
				h.log.Error().Interface("error", r).Msg("Collection run panicked")
			}
			h.mu.Lock()
			h.running = false
			h.mu.Unlock()
		}()

		result := h.runner.Run(context.Background())

		h.mu.Lock()
		h.latest = result
		h.mu.Unlock()

		h.log.Info().
			Str("run_id", result.Metadata.RunID).
			Int("successful", result.Summary.SuccessfulSubreddits).
			Int("failed", result.Summary.FailedSubreddits).
			Msg("Collection run finished")
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Collection started",
		"status":  "processing",
	})
}

// Status handles GET /v1/collections
func (h *CollectionHandler) Status(c *gin.Context) {
	h.mu.Lock()
	running := h.running
	hasResult := h.latest != nil
	h.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"running":    running,
		"has_result": hasResult,
	})
}

// GetLatest handles GET /v1/collections/latest
func (h *CollectionHandler) GetLatest(c *gin.Context) {
	h.mu.Lock()
	latest := h.latest
	h.mu.Unlock()

	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no collection has completed yet"})
		return
	}
	c.JSON(http.StatusOK, latest)
}

// GetLatestSummary handles GET /v1/collections/latest/summary
func (h *CollectionHandler) GetLatestSummary(c *gin.Context) {
	h.mu.Lock()
	latest := h.latest
	h.mu.Unlock()

	if latest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no collection has completed yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metadata": latest.Metadata,
		"summary":  latest.Summary,
	})
}
