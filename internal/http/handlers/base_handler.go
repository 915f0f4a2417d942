// README: Base handler utilities (JSON helpers, response envelope).
package handlers

import "github.com/gin-gonic/gin"

// apiResponse is the wire envelope for every endpoint. query_type mirrors the
// planner's outcome taxonomy; data carries either the flight list or a
// user-facing message.
type apiResponse struct {
	Status    string `json:"status"`
	QueryType string `json:"query_type"`
	Data      any    `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}
