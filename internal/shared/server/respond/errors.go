package respond

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"screener-backend/internal/llm"
	"screener-backend/internal/shared/telemetry"
)

// ErrorResponse is the wire shape for every error: a single human-readable
// message. The machine code travels in logs, not in the body, because the
// extension only ever displays the message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends a standardized error response and logs it.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// PipelineError maps a pipeline failure to a 500, surfacing provider status
// and message when the failure came from upstream.
func PipelineError(c *gin.Context, err error) {
	var upstream *llm.UpstreamError
	if errors.As(err, &upstream) {
		message := fmt.Sprintf("LLM provider error: %s", upstream.Message)
		if upstream.StatusCode > 0 {
			message = fmt.Sprintf("LLM provider error (status %d): %s", upstream.StatusCode, upstream.Message)
		}
		Error(c, http.StatusInternalServerError, "upstream_error", message)
		return
	}
	Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error")
}
