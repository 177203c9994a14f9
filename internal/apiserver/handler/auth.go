// Package handler translates HTTP requests into business service calls.
package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/biz"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/httputils"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// bindingMessage derives the client-facing message for a failed request
// binding. Validation failures name the offending field; anything else
// (malformed JSON, wrong types) gets the generic message.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("Missing Details: %s", verrs[0].Field())
	}
	return "Missing Details"
}

// AuthHandler handles authentication requests.
type AuthHandler struct {
	svc *biz.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *biz.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteError(c, apierrors.ErrBadRequest.WithMessage("%s", bindingMessage(err)))
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		logger.Warnw("login failed", "email", req.Email)
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, resp)
}

// Register handles user registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputils.WriteError(c, apierrors.ErrBadRequest.WithMessage("%s", bindingMessage(err)))
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		logger.Warnw("registration failed", "email", req.Email, "error", err)
		httputils.WriteError(c, err)
		return
	}

	httputils.WriteResponse(c, nil, resp)
}
