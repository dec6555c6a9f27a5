package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/funnel-metrics-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func newTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Auth: config.Auth{
			Secret:            "test_secret",
			AdminEmail:        "Admin@Example.com",
			AdminPasswordHash: string(hash),
			TokenTTLHours:     1,
		},
	}
}

func TestLoginAndValidateToken(t *testing.T) {
	service := NewService(newTestConfig(t, "senha-forte"))

	token, err := service.Login("admin@example.com", "senha-forte")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.UserEmail)
}

func TestLoginFailures(t *testing.T) {
	service := NewService(newTestConfig(t, "senha-forte"))

	tests := []struct {
		name     string
		email    string
		password string
		expected error
	}{
		{
			name:     "Email desconhecido",
			email:    "outro@example.com",
			password: "senha-forte",
			expected: ErrInvalidCredentials,
		},
		{
			name:     "Senha incorreta",
			email:    "admin@example.com",
			password: "errada",
			expected: ErrInvalidCredentials,
		},
		{
			name:     "Email vazio",
			email:    "",
			password: "senha-forte",
			expected: ErrMissingRequiredData,
		},
		{
			name:     "Senha vazia",
			email:    "admin@example.com",
			password: "",
			expected: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(tt.email, tt.password)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestValidateTokenRejectsForeignSignature(t *testing.T) {
	service := NewService(newTestConfig(t, "senha-forte"))

	other := NewService(&config.Config{
		Auth: config.Auth{
			Secret:            "outro_segredo",
			AdminEmail:        "admin@example.com",
			AdminPasswordHash: newTestConfig(t, "senha-forte").Auth.AdminPasswordHash,
			TokenTTLHours:     1,
		},
	})

	token, err := other.Login("admin@example.com", "senha-forte")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	service := NewService(newTestConfig(t, "senha-forte"))

	_, err := service.ValidateToken("nao-e-um-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
