package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerOptions_Defaults(t *testing.T) {
	opts := NewServerOptions()

	assert.Equal(t, ":4000", opts.HTTPOptions.Addr)
	assert.NotEmpty(t, opts.CORSOptions.AllowOrigins)
	assert.True(t, opts.CORSOptions.AllowCredentials)
}

func TestServerOptions_CompleteFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CLIENT_URL", "https://client.example.com")
	t.Setenv("MONGODB_URI", "mongodb://db.example.com:27017")
	t.Setenv("JWT_SECRET", "env-signing-key-with-32-chars!!!")
	t.Setenv("CLIPDROP_API", "env-api-key")

	opts := NewServerOptions()
	require.NoError(t, opts.Complete())

	assert.Equal(t, ":8080", opts.HTTPOptions.Addr)
	assert.Contains(t, opts.CORSOptions.AllowOrigins, "https://client.example.com")
	assert.Equal(t, "mongodb://db.example.com:27017", opts.MongoOptions.URI)
	assert.Equal(t, "env-signing-key-with-32-chars!!!", opts.JWTOptions.Key)
	assert.Equal(t, "env-api-key", opts.ImageGenOptions.APIKey)
}

func TestServerOptions_ValidateRequiresSecrets(t *testing.T) {
	opts := NewServerOptions()
	require.NoError(t, opts.Complete())

	// No JWT key or provider API key configured.
	err := opts.Validate()
	assert.Error(t, err)
}

func TestServerOptions_ValidateComplete(t *testing.T) {
	opts := NewServerOptions()
	opts.JWTOptions.Key = "test-signing-key-with-32-chars!!"
	opts.ImageGenOptions.APIKey = "test-api-key"
	require.NoError(t, opts.Complete())

	assert.NoError(t, opts.Validate())

	cfg, err := opts.Config()
	require.NoError(t, err)
	assert.Equal(t, opts.HTTPOptions, cfg.HTTPOptions)
	assert.Equal(t, opts.CORSOptions, cfg.CORSOptions)
}
