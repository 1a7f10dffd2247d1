package filters

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"screener-backend/internal/shared/server/respond"
	"screener-backend/internal/shared/util"
)

// Handler serves the generate-filters endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-filters", h.generateFilters)
}

type generateRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) generateFilters(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing jobDescription")
		return
	}

	jobDescription := util.Normalize(req.JobDescription)
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing jobDescription")
		return
	}

	result, err := h.svc.Generate(c.Request.Context(), jobDescription)
	if err != nil {
		respond.PipelineError(c, err)
		return
	}
	respond.OK(c, result)
}
