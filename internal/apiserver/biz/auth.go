// Package biz contains the business logic of the API server.
package biz

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// AuthService handles authentication business logic.
type AuthService struct {
	authn auth.Authenticator
	store store.Factory
}

// NewAuthService creates a new AuthService.
func NewAuthService(authn auth.Authenticator, store store.Factory) *AuthService {
	return &AuthService{
		authn: authn,
		store: store,
	}
}

// Login authenticates a user and returns a signed token alongside the
// public user view. A missing user and a wrong password fail identically
// so the endpoint cannot be used to probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.store.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apierrors.ErrUserNotFound) {
			return nil, apierrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierrors.ErrInvalidCredentials
	}

	token, err := s.authn.Sign(ctx, user.ID.Hex())
	if err != nil {
		return nil, apierrors.ErrInternal.WithCause(err)
	}

	return &model.AuthResponse{
		Success: true,
		Token:   token.GetAccessToken(),
		User:    user.PublicView(),
	}, nil
}

// Register creates a user with the default credit balance and signs them
// in immediately.
func (s *AuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierrors.ErrInternal.WithCause(err)
	}

	user := &model.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      string(hashedPassword),
		CreditBalance: model.DefaultCreditBalance,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.authn.Sign(ctx, user.ID.Hex())
	if err != nil {
		return nil, apierrors.ErrInternal.WithCause(err)
	}

	return &model.AuthResponse{
		Success: true,
		Token:   token.GetAccessToken(),
		User:    user.PublicView(),
	}, nil
}
