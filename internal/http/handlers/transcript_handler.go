// README: Transcript handler — maps the planner's outcomes onto the public
// wire format.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rupeetravel/internal/service"
	"rupeetravel/internal/types"
)

// planTimeout bounds one request end to end; the extractor call dominates it.
const planTimeout = 30 * time.Second

// User-facing strings, kept stable because voice clients read them aloud.
const (
	msgOutOfDomain   = "This assistant can only help with flight-related queries."
	msgNoFlights     = "I searched, but couldn't find any flights matching your criteria."
	msgMisunderstood = "I'm sorry, I couldn't understand your request. Please make sure to state your origin, destination, and if it's a one-way or round trip."
	msgInternalError = "Sorry, I encountered an internal error. Please try again."
)

// Planner is the single entry point the transport depends on.
type Planner interface {
	Plan(ctx context.Context, queryText string, today types.Date) service.PlanOutcome
}

type TranscriptHandler struct {
	planner Planner
	logger  *zap.Logger
}

func NewTranscriptHandler(planner Planner, logger *zap.Logger) *TranscriptHandler {
	return &TranscriptHandler{planner: planner, logger: logger}
}

type transcriptReq struct {
	Text string `json:"text"`
}

// Handle serves POST /transcript.
func (h *TranscriptHandler) Handle(c *gin.Context) {
	var req transcriptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		writeError(c, http.StatusBadRequest, "missing text")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), planTimeout)
	defer cancel()

	today := types.DateOf(time.Now())
	outcome := h.planner.Plan(ctx, req.Text, today)
	writeJSON(c, http.StatusOK, toAPIResponse(outcome))
}

// toAPIResponse maps outcomes onto the stable wire envelope. All planner
// outcomes are HTTP 200: "no flights" and "please restate" are answers, not
// transport failures.
func toAPIResponse(out service.PlanOutcome) apiResponse {
	switch out.Kind {
	case service.OutcomeRejected:
		return apiResponse{Status: "success", QueryType: "other", Data: msgOutOfDomain}
	case service.OutcomeMisunderstood:
		return apiResponse{Status: "error", QueryType: "understanding_error", Data: msgMisunderstood}
	case service.OutcomeClarify:
		return apiResponse{Status: "success", QueryType: "clarification", Data: out.Question}
	case service.OutcomeEmpty:
		return apiResponse{Status: "success", QueryType: "flight_related", Data: msgNoFlights}
	case service.OutcomeFlights:
		return apiResponse{Status: "success", QueryType: "flight_related", Data: out.Flights}
	default:
		return apiResponse{Status: "error", QueryType: "server_error", Data: msgInternalError}
	}
}
