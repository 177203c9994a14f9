package biz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Afzalshaikh78/ImageGenerator/internal/apiserver/store"
	"github.com/Afzalshaikh78/ImageGenerator/internal/model"
	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth/jwt"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
)

const testSigningKey = "test-signing-key-with-32-chars!!"

func newAuthService(t *testing.T) (*AuthService, store.Factory) {
	t.Helper()
	jwtAuth, err := jwt.New(jwt.WithKey(testSigningKey))
	require.NoError(t, err)
	factory := store.NewMemoryFactory()
	return NewAuthService(jwtAuth, factory), factory
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	registerResp, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.True(t, registerResp.Success)
	assert.NotEmpty(t, registerResp.Token)
	require.NotNil(t, registerResp.User)
	assert.Equal(t, "Ann", registerResp.User.Name)
	assert.Equal(t, model.DefaultCreditBalance, registerResp.User.CreditBalance)

	loginResp, err := svc.Login(ctx, &model.LoginRequest{
		Email:    "ann@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.True(t, loginResp.Success)
	assert.NotEmpty(t, loginResp.Token)
	require.NotNil(t, loginResp.User)
	assert.Equal(t, "ann@example.com", loginResp.User.Email)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	tests := []struct {
		name    string
		request *model.LoginRequest
	}{
		{
			name: "unknown email",
			request: &model.LoginRequest{
				Email:    "nobody@example.com",
				Password: "s3cretpass",
			},
		},
		{
			name: "wrong password",
			request: &model.LoginRequest{
				Email:    "ann@example.com",
				Password: "wrongpass1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), tt.request)
			assert.Nil(t, resp)
			// Unknown emails and wrong passwords fail identically.
			assert.ErrorIs(t, err, apierrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	req := &model.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "s3cretpass",
	}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	resp, err := svc.Register(ctx, req)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apierrors.ErrUserExists)
}

func TestAuthService_PasswordIsHashed(t *testing.T) {
	svc, factory := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	stored, err := factory.Users().GetByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cretpass")))
}

func TestAuthService_TokenSubjectIsUserID(t *testing.T) {
	jwtAuth, err := jwt.New(jwt.WithKey(testSigningKey))
	require.NoError(t, err)
	factory := store.NewMemoryFactory()
	svc := NewAuthService(jwtAuth, factory)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	claims, err := jwtAuth.Verify(ctx, resp.Token)
	require.NoError(t, err)

	stored, err := factory.Users().GetByID(ctx, claims.Subject)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", stored.Email)
}
