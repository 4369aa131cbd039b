package envfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_TaggedStruct(t *testing.T) {
	env, err := ParseEnvironment(
		"API_KEY=some-secret\nONBOARDING_ENABLED=true\nNETWORK_RETRIES=3\nNETWORK_TIMEOUT=10.5\n",
		Options{Lookup: lookupMap(nil, nil)},
	)
	require.NoError(t, err)

	type config struct {
		APIKey            string  `env:"API_KEY"`
		OnboardingEnabled bool    `env:"ONBOARDING_ENABLED"`
		NetworkRetries    int     `env:"NETWORK_RETRIES"`
		NetworkTimeout    float64 `env:"NETWORK_TIMEOUT"`
	}

	var cfg config
	require.NoError(t, env.Decode(&cfg))
	assert.Equal(t, "some-secret", cfg.APIKey)
	assert.True(t, cfg.OnboardingEnabled)
	assert.Equal(t, 3, cfg.NetworkRetries)
	assert.Equal(t, 10.5, cfg.NetworkTimeout)
}

func TestDecode_WeakTyping(t *testing.T) {
	env, err := ParseEnvironment("PORT=8080\n", Options{Lookup: lookupMap(nil, nil)})
	require.NoError(t, err)

	// An integer entry can populate a string field and vice versa.
	type config struct {
		Port string `env:"PORT"`
	}
	var cfg config
	require.NoError(t, env.Decode(&cfg))
	assert.Equal(t, "8080", cfg.Port)
}

func TestDecode_IntoMap(t *testing.T) {
	env, err := ParseEnvironment("A=1\nB=two\n", Options{Lookup: lookupMap(nil, nil)})
	require.NoError(t, err)

	out := make(map[string]any)
	require.NoError(t, env.Decode(&out))
	assert.EqualValues(t, 1, out["A"])
	assert.Equal(t, "two", out["B"])
}
