// Package store defines the storage interfaces for the API server and
// their MongoDB implementation.
package store

import (
	"context"

	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
)

// Factory defines the factory interface for creating stores.
type Factory interface {
	Users() UserStore
	Close() error
}

// UserStore defines the user storage interface.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	// DeductCredits atomically subtracts amount from the user's balance
	// and returns the updated user. It fails when the balance is lower
	// than amount, leaving the balance untouched.
	DeductCredits(ctx context.Context, id string, amount int) (*model.User, error)
}
