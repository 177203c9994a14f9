package biz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

// fakeGenerator returns a fixed image or a fixed error and counts calls.
type fakeGenerator struct {
	image string
	err   error
	calls int
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.image, nil
}

func seedUser(t *testing.T, factory store.Factory, credits int) *model.User {
	t.Helper()
	user := &model.User{
		Name:          "Ann",
		Email:         "ann@example.com",
		Password:      "hashed",
		CreditBalance: credits,
	}
	require.NoError(t, factory.Users().Create(context.Background(), user))
	return user
}

func TestImageService_Generate(t *testing.T) {
	factory := store.NewMemoryFactory()
	user := seedUser(t, factory, 3)
	gen := &fakeGenerator{image: "data:image/png;base64,aGVsbG8="}
	svc := NewImageService(factory, gen)

	resp, err := svc.Generate(context.Background(), user.ID.Hex(), &model.GenerateRequest{Prompt: "a red cat"})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "data:image/png;base64,aGVsbG8=", resp.ResultImage)
	assert.Equal(t, 2, resp.CreditBalance)
	assert.Equal(t, 1, gen.calls)
}

func TestImageService_GenerateNoCredits(t *testing.T) {
	factory := store.NewMemoryFactory()
	user := seedUser(t, factory, 0)
	gen := &fakeGenerator{image: "data:image/png;base64,aGVsbG8="}
	svc := NewImageService(factory, gen)

	resp, err := svc.Generate(context.Background(), user.ID.Hex(), &model.GenerateRequest{Prompt: "a red cat"})
	assert.ErrorIs(t, err, apierrors.ErrNoCredits)
	// The provider is never called for an exhausted balance.
	assert.Equal(t, 0, gen.calls)

	// The failure payload still reports the remaining balance.
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	assert.Equal(t, 0, resp.CreditBalance)
	assert.Empty(t, resp.ResultImage)
}

func TestImageService_GenerateProviderFailureKeepsBalance(t *testing.T) {
	factory := store.NewMemoryFactory()
	user := seedUser(t, factory, 3)
	gen := &fakeGenerator{err: errors.New("provider down")}
	svc := NewImageService(factory, gen)

	_, err := svc.Generate(context.Background(), user.ID.Hex(), &model.GenerateRequest{Prompt: "a red cat"})
	assert.Error(t, err)

	stored, err := factory.Users().GetByID(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 3, stored.CreditBalance)
}

func TestImageService_GenerateUnknownUser(t *testing.T) {
	factory := store.NewMemoryFactory()
	gen := &fakeGenerator{image: "data:image/png;base64,aGVsbG8="}
	svc := NewImageService(factory, gen)

	_, err := svc.Generate(context.Background(), "652f1a2b3c4d5e6f70718293", &model.GenerateRequest{Prompt: "a red cat"})
	assert.ErrorIs(t, err, apierrors.ErrUserNotFound)
	assert.Equal(t, 0, gen.calls)
}

func TestUserService_Credits(t *testing.T) {
	factory := store.NewMemoryFactory()
	user := seedUser(t, factory, 5)
	svc := NewUserService(factory)

	resp, err := svc.Credits(context.Background(), user.ID.Hex())
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.Credits)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Ann", resp.User.Name)
}

func TestUserService_CreditsUnknownUser(t *testing.T) {
	factory := store.NewMemoryFactory()
	svc := NewUserService(factory)

	_, err := svc.Credits(context.Background(), "652f1a2b3c4d5e6f70718293")
	assert.ErrorIs(t, err, apierrors.ErrUserNotFound)
}
