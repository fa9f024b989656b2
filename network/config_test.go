package network

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfig_Preset(t *testing.T) {
	cfg, err := ResolveConfig(nil, nil, "solo")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8669", cfg.URL)
	assert.Equal(t, "solo", cfg.Network)
}

func TestResolveConfig_NetworkFromEnv(t *testing.T) {
	env := map[string]string{"THOR_NETWORK": "testnet"}
	cfg, err := ResolveConfig(nil, env, "")
	require.NoError(t, err)
	assert.Equal(t, "testnet", cfg.Network)
	assert.Equal(t, "https://testnet.veblocks.net", cfg.URL)
}

func TestResolveConfig_EnvOverridesPreset(t *testing.T) {
	env := map[string]string{"THOR_NODE_URL": "http://node.internal:8669"}
	cfg, err := ResolveConfig(nil, env, "solo")
	require.NoError(t, err)
	assert.Equal(t, "http://node.internal:8669", cfg.URL)
}

func TestResolveConfig_FlagsOverrideEnv(t *testing.T) {
	env := map[string]string{"THOR_NODE_URL": "http://node.internal:8669"}
	flags := &Config{URL: "http://flagged:8669", Timeout: 5 * time.Second}
	cfg, err := ResolveConfig(flags, env, "testnet")
	require.NoError(t, err)
	assert.Equal(t, "http://flagged:8669", cfg.URL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestResolveConfig_MainnetRequiresExplicitURL(t *testing.T) {
	_, err := ResolveConfig(nil, nil, "mainnet")
	require.Error(t, err)

	cfg, err := ResolveConfig(&Config{URL: "https://mainnet.example.org"}, nil, "mainnet")
	require.NoError(t, err)
	assert.Equal(t, "https://mainnet.example.org", cfg.URL)
}
