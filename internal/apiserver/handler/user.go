package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/biz"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/httputils"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// UserHandler handles user account requests.
type UserHandler struct {
	svc *biz.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *biz.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Credits returns the authenticated user's credit balance.
func (h *UserHandler) Credits(c *gin.Context) {
	userID := auth.SubjectFromContext(c.Request.Context())
	if userID == "" {
		httputils.WriteError(c, apierrors.ErrInvalidToken)
		return
	}

	resp, err := h.svc.Credits(c.Request.Context(), userID)
	if err != nil {
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, resp)
}
