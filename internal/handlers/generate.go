package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jilali-elhamidi/generate-video-ai/internal/assemble"
	pkgerrors "github.com/jilali-elhamidi/generate-video-ai/internal/pkg/errors"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pkg/logger"
	"github.com/jilali-elhamidi/generate-video-ai/internal/pipeline"
	"github.com/jilali-elhamidi/generate-video-ai/internal/platform/apierr"
)

// VideoGenerator is the pipeline capability the handler depends on.
type VideoGenerator interface {
	Generate(ctx context.Context, req pipeline.Request) (string, error)
}

type GenerateHandler struct {
	log       *logger.Logger
	generator VideoGenerator
}

func NewGenerateHandler(generator VideoGenerator, log *logger.Logger) *GenerateHandler {
	return &GenerateHandler{
		log:       log.With("handler", "Generate"),
		generator: generator,
	}
}

func (h *GenerateHandler) Generate(c *gin.Context) {
	var req struct {
		Script               string         `json:"script"`
		Title                string         `json:"title"`
		Explanations         []string       `json:"explanations"`
		ExplanationsShowText *bool          `json:"explanationsShowText"`
		ExplanationsDisplay  []*bool        `json:"explanationsDisplay"`
		Style                assemble.Style `json:"style"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Script) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "script field is required"})
		return
	}

	title := req.Title
	if title == "" {
		title = "Explanation"
	}
	show := len(req.Explanations) > 0
	if req.ExplanationsShowText != nil {
		show = *req.ExplanationsShowText
	}

	path, err := h.generator.Generate(c.Request.Context(), pipeline.Request{
		Script:           req.Script,
		Title:            title,
		Explanations:     req.Explanations,
		ShowExplanations: show,
		DisplayFlags:     req.ExplanationsDisplay,
		Style:            req.Style,
	})
	if err != nil {
		// Full detail stays server-side; the client gets the summary only.
		h.log.Error("video generation failed", "error", err)
		apiErr := toAPIError(err)
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"videoUrl": path, "message": "Video generated successfully"})
}

func toAPIError(err error) *apierr.Error {
	status := http.StatusInternalServerError
	if errors.Is(err, pkgerrors.ErrInvalidArgument) || errors.Is(err, pkgerrors.ErrNoContent) {
		status = http.StatusBadRequest
	}
	return apierr.New(status, "generation_failed", err)
}
