// README: Usage stats handler.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatsProvider exposes the current month's outcome counters.
type StatsProvider interface {
	MonthlyStats(ctx context.Context) (map[string]int64, error)
}

type UsageHandler struct {
	usage StatsProvider
}

func NewUsageHandler(usage StatsProvider) *UsageHandler {
	return &UsageHandler{usage: usage}
}

// Stats serves GET /api/usage/stats.
func (h *UsageHandler) Stats(c *gin.Context) {
	stats, err := h.usage.MonthlyStats(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, stats)
}
