package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SKIP_AUTH", "true")
	t.Setenv("SANKHYA_TOKEN", "tok")
	t.Setenv("SANKHYA_APPKEY", "key")
	t.Setenv("SANKHYA_USERNAME", "user")
	t.Setenv("SANKHYA_PASSWORD", "pass")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.SkipAuth)
	assert.Equal(t, "https://api.sandbox.sankhya.com.br", cfg.Sankhya.BaseURL)
	assert.Equal(t, SankhyaConfig{
		BaseURL:  "https://api.sandbox.sankhya.com.br",
		Token:    "tok",
		AppKey:   "key",
		Username: "user",
		Password: "pass",
	}, cfg.Sankhya)
}

func TestGetEnv_Fallback(t *testing.T) {
	assert.Equal(t, "fallback", getEnv("SANKHYA_CRM_UNSET_KEY_FOR_TEST", "fallback"))

	t.Setenv("SANKHYA_CRM_EMPTY_KEY_FOR_TEST", "")
	assert.Equal(t, "", getEnv("SANKHYA_CRM_EMPTY_KEY_FOR_TEST", "fallback"))
}
