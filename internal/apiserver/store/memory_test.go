package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

func TestMemoryStore_CreateAndGet(t *testing.T) {
	factory := NewMemoryFactory()
	ctx := context.Background()

	user := &model.User{
		Name:          "Ann",
		Email:         "ann@example.com",
		Password:      "hashed",
		CreditBalance: 5,
	}
	require.NoError(t, factory.Users().Create(ctx, user))
	assert.False(t, user.ID.IsZero())
	assert.NotZero(t, user.CreatedAt)

	byEmail, err := factory.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := factory.Users().GetByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", byID.Email)
}

func TestMemoryStore_CreateDuplicateEmail(t *testing.T) {
	factory := NewMemoryFactory()
	ctx := context.Background()

	first := &model.User{Name: "Ann", Email: "ann@example.com"}
	require.NoError(t, factory.Users().Create(ctx, first))

	second := &model.User{Name: "Other Ann", Email: "ann@example.com"}
	assert.ErrorIs(t, factory.Users().Create(ctx, second), apierrors.ErrUserExists)
}

func TestMemoryStore_GetMisses(t *testing.T) {
	factory := NewMemoryFactory()
	ctx := context.Background()

	_, err := factory.Users().GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, apierrors.ErrUserNotFound)

	_, err = factory.Users().GetByID(ctx, "652f1a2b3c4d5e6f70718293")
	assert.ErrorIs(t, err, apierrors.ErrUserNotFound)
}

func TestMemoryStore_DeductCredits(t *testing.T) {
	factory := NewMemoryFactory()
	ctx := context.Background()

	user := &model.User{Name: "Ann", Email: "ann@example.com", CreditBalance: 2}
	require.NoError(t, factory.Users().Create(ctx, user))

	updated, err := factory.Users().DeductCredits(ctx, user.ID.Hex(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.CreditBalance)

	updated, err = factory.Users().DeductCredits(ctx, user.ID.Hex(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.CreditBalance)

	_, err = factory.Users().DeductCredits(ctx, user.ID.Hex(), 1)
	assert.ErrorIs(t, err, apierrors.ErrNoCredits)

	stored, err := factory.Users().GetByID(ctx, user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 0, stored.CreditBalance)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	factory := NewMemoryFactory()
	ctx := context.Background()

	user := &model.User{Name: "Ann", Email: "ann@example.com", CreditBalance: 5}
	require.NoError(t, factory.Users().Create(ctx, user))

	got, err := factory.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	got.CreditBalance = 0

	again, err := factory.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, 5, again.CreditBalance)
}
