package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/biz"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/httputils"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// ImageHandler handles image generation requests.
type ImageHandler struct {
	svc *biz.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(svc *biz.ImageService) *ImageHandler {
	return &ImageHandler{svc: svc}
}

// Generate produces an image for the submitted prompt.
func (h *ImageHandler) Generate(c *gin.Context) {
	userID := auth.SubjectFromContext(c.Request.Context())
	if userID == "" {
		httputils.WriteError(c, apierrors.ErrInvalidToken)
		return
	}

	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteError(c, apierrors.ErrBadRequest.WithMessage("%s", bindingMessage(err)))
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), userID, &req)
	if err != nil {
		logger.Warnw("generation request failed", "user", userID, "error", err)
		// An exhausted balance keeps the standard failure shape but adds
		// the remaining balance for the client to display.
		if errors.Is(err, apierrors.ErrNoCredits) && resp != nil {
			c.JSON(apierrors.ErrNoCredits.HTTP, resp)
			return
		}
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, resp)
}
