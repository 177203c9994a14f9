package biz

import (
	"context"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
)

// UserService handles user account business logic.
type UserService struct {
	store store.Factory
}

// NewUserService creates a new UserService.
func NewUserService(store store.Factory) *UserService {
	return &UserService{store: store}
}

// Credits returns the current credit balance for the user.
func (s *UserService) Credits(ctx context.Context, userID string) (*model.CreditsResponse, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.CreditsResponse{
		Success: true,
		Credits: user.CreditBalance,
		User:    &model.UserName{Name: user.Name},
	}, nil
}
