package secrets_test

import (
	"context"
	"testing"

	"github.com/straye-as/bizdesk-api/internal/secrets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestResolveSource(t *testing.T) {
	tests := []struct {
		source      secrets.SecretSource
		environment string
		expected    secrets.SecretSource
	}{
		{secrets.SourceAuto, "development", secrets.SourceEnvironment},
		{secrets.SourceAuto, "", secrets.SourceEnvironment},
		{secrets.SourceAuto, "test", secrets.SourceEnvironment},
		{secrets.SourceAuto, "production", secrets.SourceVault},
		{secrets.SourceAuto, "staging", secrets.SourceVault},
		{secrets.SourceEnvironment, "production", secrets.SourceEnvironment},
		{secrets.SourceVault, "development", secrets.SourceVault},
	}

	for _, tt := range tests {
		t.Run(string(tt.source)+"/"+tt.environment, func(t *testing.T) {
			assert.Equal(t, tt.expected, secrets.ResolveSource(tt.source, tt.environment))
		})
	}
}

func TestNewProvider_VaultRequiresName(t *testing.T) {
	_, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceVault}, zap.NewNop())

	assert.Error(t, err)
}

func TestProvider_Environment(t *testing.T) {
	ctx := context.Background()
	p, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceAuto, Environment: "development"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, secrets.SourceEnvironment, p.Source())

	t.Setenv("BIZDESK_TEST_SECRET", "from-env")
	value, err := p.GetSecret(ctx, "BIZDESK_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)

	_, err = p.GetSecret(ctx, "BIZDESK_TEST_MISSING")
	assert.Error(t, err)
}

func TestProvider_GetSecretOrEnvPrefersOverride(t *testing.T) {
	p, err := secrets.NewProvider(&secrets.ProviderConfig{Source: secrets.SourceEnvironment}, zap.NewNop())
	require.NoError(t, err)

	t.Setenv("API_KEY", "override")
	value, err := p.GetSecretOrEnv(context.Background(), "genai-api-key", "API_KEY")

	require.NoError(t, err)
	assert.Equal(t, "override", value)
}
