package screening

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"screener-backend/internal/extract"
	"screener-backend/internal/shared/server/respond"
	"screener-backend/internal/shared/util"
)

const maxUploadBytes = 5 << 20

// Handler serves the score-candidate endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/score-candidate", h.scoreCandidate)
}

func (h *Handler) scoreCandidate(c *gin.Context) {
	jobDescription := util.Normalize(c.PostForm("jobDescription"))
	if jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Missing jobDescription")
		return
	}

	var fileData []byte
	var mimeType, fileName string
	if fileHeader, err := c.FormFile("resumeFile"); err == nil && fileHeader != nil {
		if fileHeader.Size > maxUploadBytes {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Resume file too large")
			return
		}
		f, err := fileHeader.Open()
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read resume file")
			return
		}
		fileData, err = io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		f.Close()
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to read resume file")
			return
		}
		mimeType = fileHeader.Header.Get("Content-Type")
		fileName = fileHeader.Filename
	}

	resumeText, err := extract.ComposeResume(c.PostForm("resumeText"), fileData, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrMissingInput) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "Missing resume text")
			return
		}
		respond.Error(c, http.StatusInternalServerError, "extraction_error", "Failed to extract text from resume file")
		return
	}

	result, err := h.svc.Score(c.Request.Context(), resumeText, jobDescription)
	if err != nil {
		respond.PipelineError(c, err)
		return
	}
	respond.OK(c, result)
}
