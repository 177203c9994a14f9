package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Password string `binding:"omitempty,password"`
}

func TestPasswordRule(t *testing.T) {
	Register()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"letters and digits", "s3cretpass", true},
		{"exactly eight chars", "abcdefg1", true},
		{"empty passes through", "", true},
		{"too short", "abc1", false},
		{"digits only", "12345678", false},
		{"letters only", "abcdefgh", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(credentials{Password: tt.password})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
