package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodmirror/mirror-match/app/cfg"
	"github.com/moodmirror/mirror-match/app/feed"
	"github.com/moodmirror/mirror-match/app/metrics"
	"github.com/moodmirror/mirror-match/app/prompt"
)

// DegradedHeader carries the internal failure class when the caller still
// receives HTTP 200 with the synthetic error feed, so monitoring can tell
// "the model answered oddly" from "the call failed" without a contract
// change.
const DegradedHeader = "X-Feed-Degraded"

const (
	degradedGeneration = "generation_failure"
	degradedSchema     = "schema_violation"
)

func NewHandler(builder *prompt.Builder, generator GeneratorInterface,
	assembler AssemblerInterface, apiKey string) *Handler {
	return &Handler{
		builder:   builder,
		generator: generator,
		assembler: assembler,
		apiKey:    apiKey,
	}
}

// Recommend handles POST /recommend: prompt construction, one generation
// round trip, feed assembly. The only HTTP-level failures are a malformed
// body and a missing credential; everything downstream degrades to the
// error feed with status 200.
func (h *Handler) Recommend(c *gin.Context) {
	var request prompt.MoodRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		metrics.RecommendRequests.WithLabelValues("bad_request").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body: text_input is required."})
		return
	}

	if h.apiKey == "" {
		slog.Error("Recommendation rejected, Gemini API key not configured")
		metrics.RecommendRequests.WithLabelValues("unconfigured").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Gemini API key is not configured on the server."})
		return
	}

	systemPrompt := h.builder.Run(request)

	draft, err := h.generator.Generate(c.Request.Context(), systemPrompt)
	if err != nil {
		slog.Error("Generation call failed", "intent", request.MoodIntent, "error", err)
		h.degraded(c, degradedGeneration, err)
		return
	}

	result, err := h.assembler.Run(c.Request.Context(), *draft)
	if err != nil {
		slog.Error("Draft feed rejected", "intent", request.MoodIntent, "error", err)
		h.degraded(c, degradedSchema, err)
		return
	}

	metrics.RecommendRequests.WithLabelValues("ok").Inc()
	c.Header("X-Feed-Items", strconv.Itoa(len(result.Items)))
	c.JSON(http.StatusOK, result)
}

// degraded answers with the synthetic error feed. The status stays 200 so
// callers never need a separate error branch for upstream failures.
func (h *Handler) degraded(c *gin.Context, reason string, err error) {
	metrics.GenerationFailures.WithLabelValues(reason).Inc()
	metrics.RecommendRequests.WithLabelValues("degraded").Inc()

	c.Header(DegradedHeader, reason)
	c.JSON(http.StatusOK, feed.ErrorFeed(err))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   cfg.GetVersion(),
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":     "MoodMirror Backend",
		"version":     cfg.GetVersion(),
		"description": "Mood-based recommendation relay",
		"endpoints": map[string]string{
			"recommend": "/recommend (POST)",
			"health":    "/health",
			"metrics":   "/metrics",
		},
	})
}
