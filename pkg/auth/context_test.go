package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjectAuth(t *testing.T) {
	claims := &Claims{Subject: "user-42", ExpiresAt: time.Now().Add(time.Hour).Unix()}
	ctx := InjectAuth(context.Background(), claims, "raw-token")

	assert.Equal(t, "user-42", SubjectFromContext(ctx))
	assert.Equal(t, "raw-token", TokenFromContext(ctx))

	got := ClaimsFromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, "user-42", got.Subject)
}

func TestContextAccessorsEmpty(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, SubjectFromContext(ctx))
	assert.Empty(t, TokenFromContext(ctx))
	assert.Nil(t, ClaimsFromContext(ctx))
}

func TestClaims_IsExpired(t *testing.T) {
	expired := &Claims{ExpiresAt: time.Now().Add(-time.Minute).Unix()}
	assert.True(t, expired.IsExpired())

	fresh := &Claims{ExpiresAt: time.Now().Add(time.Hour).Unix()}
	assert.False(t, fresh.IsExpired())

	// Zero means no expiry claim.
	unset := &Claims{}
	assert.False(t, unset.IsExpired())
}

func TestClaims_GetExtraString(t *testing.T) {
	claims := &Claims{Extra: map[string]interface{}{
		"role":  "admin",
		"count": 3,
	}}

	assert.Equal(t, "admin", claims.GetExtraString("role"))
	assert.Empty(t, claims.GetExtraString("count"))
	assert.Empty(t, claims.GetExtraString("missing"))
}
