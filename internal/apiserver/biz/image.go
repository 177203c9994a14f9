package biz

import (
	"context"

	"github.com/kart-io/logger"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/internal/pkg/imagegen"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// generationCost is the number of credits one image generation consumes.
const generationCost = 1

// ImageService handles image generation business logic.
type ImageService struct {
	store     store.Factory
	generator imagegen.Generator
}

// NewImageService creates a new ImageService.
func NewImageService(store store.Factory, generator imagegen.Generator) *ImageService {
	return &ImageService{
		store:     store,
		generator: generator,
	}
}

// Generate produces an image for the prompt and charges the user one
// credit. A user with no credits is refused before the provider is
// called, and the credit is only deducted after a successful generation.
func (s *ImageService) Generate(ctx context.Context, userID string, req *model.GenerateRequest) (*model.GenerateResponse, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.CreditBalance < generationCost {
		// The failure payload still carries the balance so the client can
		// render it next to the refusal.
		resp := &model.GenerateResponse{
			Success:       false,
			Message:       apierrors.ErrNoCredits.Message,
			CreditBalance: user.CreditBalance,
		}
		return resp, apierrors.ErrNoCredits
	}

	image, err := s.generator.Generate(ctx, req.Prompt)
	if err != nil {
		logger.Errorw("image generation failed", "user", userID, "error", err)
		return nil, apierrors.ErrInternal.WithCause(err)
	}

	user, err = s.store.Users().DeductCredits(ctx, userID, generationCost)
	if err != nil {
		return nil, err
	}

	return &model.GenerateResponse{
		Success:       true,
		Message:       "Image Generated",
		CreditBalance: user.CreditBalance,
		ResultImage:   image,
	}, nil
}
