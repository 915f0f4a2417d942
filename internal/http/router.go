// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rupeetravel/internal/http/handlers"
	"rupeetravel/internal/http/middleware"
)

// NewRouter assembles the gin engine. The transcript endpoint is the whole
// product; health and usage stats exist for operators.
func NewRouter(planner handlers.Planner, usage handlers.StatsProvider, logger *zap.Logger, mode string) http.Handler {
	if mode != "" {
		gin.SetMode(mode)
	}
	r := gin.New()
	r.Use(middleware.Logging(logger), middleware.Recovery(logger))

	transcriptHandler := handlers.NewTranscriptHandler(planner, logger)
	r.POST("/transcript", transcriptHandler.Handle)

	usageHandler := handlers.NewUsageHandler(usage)
	r.GET("/api/usage/stats", usageHandler.Stats)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "RupeeTravel RAG Backend is running"})
	})

	return r
}
